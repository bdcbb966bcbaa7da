// Package backbone implements the partial-mapping value type the search
// engine grows one vertex at a time (spec.md §3, §9).
//
// A Backbone is represented as a sorted slice of (motif, host) pairs
// rather than a hash map: spec.md §9 calls out that motifs are small, so
// per-backbone hash-map overhead would dominate actual work. Extend
// copies the underlying slice — an O(size) operation, but size is bounded
// by the motif's vertex count, which is small by assumption throughout
// this system.
package backbone
