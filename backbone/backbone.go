package backbone

import "sort"

// Pair is one (motif vertex, host vertex) assignment within a Backbone.
type Pair struct {
	Motif string
	Host  string
}

// Backbone is an immutable partial injective mapping from motif vertex IDs
// to host vertex IDs. The zero value is not valid; use Empty.
type Backbone struct {
	pairs []Pair // sorted by Motif, ascending
}

// Empty returns a Backbone with no assignments — the size-0 seed every
// search that ignores hints starts from conceptually, before the first
// motif vertex is chosen.
func Empty() *Backbone {
	return &Backbone{}
}

// Len returns the number of motif vertices currently assigned.
func (b *Backbone) Len() int {
	if b == nil {
		return 0
	}
	return len(b.pairs)
}

// Get returns the host vertex assigned to motif vertex m, if any.
func (b *Backbone) Get(m string) (string, bool) {
	if b == nil {
		return "", false
	}
	i := sort.Search(len(b.pairs), func(i int) bool { return b.pairs[i].Motif >= m })
	if i < len(b.pairs) && b.pairs[i].Motif == m {
		return b.pairs[i].Host, true
	}
	return "", false
}

// HasHost reports whether some motif vertex is already mapped to host
// vertex h — the injectivity check of spec.md §3.
func (b *Backbone) HasHost(h string) bool {
	if b == nil {
		return false
	}
	for _, p := range b.pairs {
		if p.Host == h {
			return true
		}
	}
	return false
}

// Extend returns a new Backbone with motif vertex m additionally mapped to
// host vertex h. It does not check injectivity or any other invariant —
// callers (the search engine) are expected to have already filtered
// candidates per spec.md §4.5.2 step 4 before calling Extend. m must not
// already be present in b.
func (b *Backbone) Extend(m, h string) *Backbone {
	old := b.pairsOrNil()
	next := make([]Pair, len(old)+1)
	i := sort.Search(len(old), func(i int) bool { return old[i].Motif >= m })
	copy(next, old[:i])
	next[i] = Pair{Motif: m, Host: h}
	copy(next[i+1:], old[i:])
	return &Backbone{pairs: next}
}

func (b *Backbone) pairsOrNil() []Pair {
	if b == nil {
		return nil
	}
	return b.pairs
}

// Pairs returns a copy of the backbone's (motif, host) pairs, sorted by
// motif vertex ID.
func (b *Backbone) Pairs() []Pair {
	old := b.pairsOrNil()
	out := make([]Pair, len(old))
	copy(out, old)
	return out
}

// ToMap materializes the backbone as a motif-vertex-ID -> host-vertex-ID
// map, the representation spec.md §6 defines for a completion.
func (b *Backbone) ToMap() map[string]string {
	old := b.pairsOrNil()
	out := make(map[string]string, len(old))
	for _, p := range old {
		out[p.Motif] = p.Host
	}
	return out
}

// Domain returns the sorted motif vertex IDs currently assigned.
func (b *Backbone) Domain() []string {
	old := b.pairsOrNil()
	out := make([]string, len(old))
	for i, p := range old {
		out[i] = p.Motif
	}
	return out
}
