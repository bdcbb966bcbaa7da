package match

import "sync"

// cacheKey identifies one memoized predicate call by its caller-chosen
// key strings, opaque to Cache itself.
type cacheKey struct{ A, B string }

// Cache memoizes attribute-predicate results for the lifetime of one
// search, per spec.md §3 ("Attribute-match cache") and §5 ("a concurrent
// mapping suffices" for the parallel case). It is keyed on plain strings
// rather than vertex/edge IDs directly, so one Cache can serve both the
// node-attribute predicate (keys like "node:m") and the edge-attribute
// predicate (keys like "edge:mu>mv") without colliding. A Cache must not
// be reused across searches: predicates are pure per search but the
// engine makes no promise they stay pure across two different calls to
// FindMotifs with different arguments.
type Cache struct {
	entries sync.Map // cacheKey -> bool
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{}
}

// GetOrCompute returns the memoized result for (key1, key2), computing
// and storing it via compute if this is the first call for that pair.
// Concurrent calls for the same pair may both invoke compute; the spec
// explicitly tolerates this ("benign duplicate predicate calls are
// acceptable") in exchange for not needing a per-key lock.
func (c *Cache) GetOrCompute(key1, key2 string, compute func() bool) bool {
	key := cacheKey{A: key1, B: key2}
	if v, ok := c.entries.Load(key); ok {
		return v.(bool)
	}
	result := compute()
	c.entries.Store(key, result)
	return result
}
