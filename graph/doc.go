// Package graph is the Graph Adapter: a read-only-from-the-search-engine's
// perspective, thread-safe container for the motif and host graphs the
// search engine operates over.
//
// A Graph is directed or undirected at construction time and never
// changes. Vertices and edges carry an attrs.Bag of attributes. HasEdge,
// DegreeIn and DegreeOut are O(1) amortized (backed by maps); the
// neighbor lists and Vertices are sorted on every call, in a stable
// order so that repeated searches over the
// same graph produce the same seed and candidate ordering, per spec.md
// §4.1's "stable iteration order within a single search" guarantee.
//
// Graphs are simple: no parallel edges, no self-loops. Motifs and hosts in
// the reference system are assumed simple (spec.md §9), and dropping
// multi-edge support keeps HasEdge and attribute lookup O(1) instead of
// O(edges between u and v).
package graph
