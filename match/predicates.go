package match

import "github.com/graphmotif/grandiso/graph"

// StructuralMatchFunc reports whether host vertex h is a structurally
// admissible image for motif vertex m: informally, whether h's
// neighborhood is at least as large as m's in every direction the graph
// distinguishes.
type StructuralMatchFunc func(motif, host *graph.Graph, m, h string) bool

// DefaultStructuralMatch implements spec.md §4.2's structural predicate:
// for directed graphs, h must have at least m's in-degree and at least
// m's out-degree; for undirected graphs, h's degree must be at least m's.
// A host vertex with less capacity than the motif vertex it would host can
// never accommodate that motif vertex's full neighborhood, so it is
// pruned here rather than discovered later as a dead end.
func DefaultStructuralMatch(motif, host *graph.Graph, m, h string) bool {
	if motif.Directed() {
		return host.DegreeIn(h) >= motif.DegreeIn(m) && host.DegreeOut(h) >= motif.DegreeOut(m)
	}
	return host.Degree(h) >= motif.Degree(m)
}

// NodeAttrMatch reports whether host vertex h may host motif vertex m,
// based on their attribute bags.
type NodeAttrMatch func(motif, host *graph.Graph, m, h string) bool

// DefaultNodeAttrMatch requires that every attribute key present on the
// motif vertex is present on the host vertex with an equal value.
// Attributes the motif vertex does not set impose no constraint on the
// host vertex.
func DefaultNodeAttrMatch(motif, host *graph.Graph, m, h string) bool {
	mBag, ok := motif.VertexAttrs(m)
	if !ok || len(mBag) == 0 {
		return true
	}
	hBag, ok := host.VertexAttrs(h)
	if !ok {
		return false
	}
	for k, v := range mBag {
		hv, ok := hBag.Get(k)
		if !ok || !v.Equal(hv) {
			return false
		}
	}
	return true
}

// EdgeAttrMatch reports whether the host edge (hu, hv) may realize the
// motif edge (mu, mv).
type EdgeAttrMatch func(motif, host *graph.Graph, mu, mv, hu, hv string) bool

// DefaultEdgeAttrMatch requires that every attribute on the motif edge
// exists with an equal value on the host edge.
func DefaultEdgeAttrMatch(motif, host *graph.Graph, mu, mv, hu, hv string) bool {
	mBag, ok := motif.EdgeAttrs(mu, mv)
	if !ok || len(mBag) == 0 {
		return true
	}
	hBag, ok := host.EdgeAttrs(hu, hv)
	if !ok {
		return false
	}
	for k, v := range mBag {
		hv, ok := hBag.Get(k)
		if !ok || !v.Equal(hv) {
			return false
		}
	}
	return true
}
