// Package search implements the branch-and-bound subgraph matching
// engine: given a motif graph and a host graph, it enumerates every
// injective mapping from motif vertices to host vertices that preserves
// motif's edge structure.
//
// FindMotifs and FindMotifsIter build a partial mapping (a
// backbone.Backbone) one motif vertex at a time, always extending the
// most interesting motif vertex adjacent to what has already been placed
// (or the most interesting unplaced vertex, if none is adjacent), and
// pruning any candidate host vertex that fails the structural,
// node-attribute, or edge-attribute predicates in package match. The
// order backbones are popped from the work queue (package queue) —
// depth-first by default — determines memory use, not correctness: every
// valid mapping is found exactly once regardless of queue policy.
package search
