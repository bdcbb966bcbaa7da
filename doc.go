// Package grandiso implements subgraph matching between a small motif
// graph and a larger host graph: enumerating every way the motif's
// vertices can be injectively mapped onto the host's vertices while
// preserving (monomorphism) or exactly reproducing (induced isomorphism)
// the motif's edge structure.
//
// The search proceeds by branch-and-bound over partial mappings, called
// backbones: starting from the most "interesting" motif vertex, it
// repeatedly picks the most interesting unassigned motif vertex adjacent
// to what has already been placed, narrows the host candidates down to those
// satisfying every predicate, and either completes a mapping or pushes
// each surviving partial mapping back onto a work queue.
//
// The engine is split across small packages, each owning one piece of
// that pipeline:
//
//	attrs/     — typed vertex/edge attribute values
//	graph/     — the directed-or-undirected graph type motifs and hosts share
//	match/     — structural and attribute predicates, with memoization
//	interest/  — vertex expansion ordering
//	backbone/  — the immutable partial-mapping value type
//	queue/     — pluggable BFS/DFS/instrumented work queues
//	search/    — the engine itself: FindMotifs, FindMotifsIter, and options
//
// Start with search.FindMotifs for a one-shot call, or
// search.FindMotifsIter to stream results as they are found.
package grandiso
