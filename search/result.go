package search

// Result is the outcome of a FindMotifs call: a list of motif-vertex-ID
// to host-vertex-ID mappings, or, when WithCountOnly was given, only
// their count (spec.md §6).
type Result struct {
	// Mappings holds one entry per completion, unless countOnly was set,
	// in which case it is always nil.
	Mappings []map[string]string

	// Count is the number of completions found. It is always populated,
	// even when Mappings is also populated, so callers never need to
	// branch on countOnly to learn how many results there were.
	Count int

	countOnly bool
}

// Len returns the number of completions represented by this Result,
// regardless of whether WithCountOnly was used.
func (r Result) Len() int {
	if r.countOnly {
		return r.Count
	}
	return len(r.Mappings)
}

// CountOnly reports whether this Result was produced by a search that used
// WithCountOnly, meaning Mappings is always empty and only Count (and Len)
// carry information.
func (r Result) CountOnly() bool {
	return r.countOnly
}
