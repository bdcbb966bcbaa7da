package graph

import "sort"

// ToUndirectedView returns a new, independent Graph with the same
// vertices and attribute bags as g, but with every edge collapsed to an
// undirected one. It does not mutate g. This is how the search engine
// implements spec.md §6's directed=false override: rather than threading
// an "effective directedness" flag through every predicate and traversal
// call, it materializes an undirected copy once per search and operates
// on that, the same way the teacher's core.UnweightedView and
// core.InducedSubgraph package non-mutating graph transforms as small,
// self-contained copies.
//
// If g already has two directed edges between the same pair (u->v and
// v->u, which the directed Graph model permits as distinct edges), the
// collapse keeps whichever edge's attribute bag was inserted first in
// lexicographic (from, to) order and drops the other, since an undirected
// simple graph cannot represent both.
func ToUndirectedView(g *Graph) *Graph {
	out := NewGraph(WithDirected(false))

	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id, bag := range g.vertices {
		ids = append(ids, id)
		out.vertices[id] = bag
		out.out[id] = make(map[string]struct{})
		out.in[id] = make(map[string]struct{})
	}
	g.muVert.RUnlock()
	sort.Strings(ids) // ensure deterministic first-writer-wins below

	g.muEdge.RLock()
	keys := make([]edgeKey, 0, len(g.edges))
	for k := range g.edges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].From != keys[j].From {
			return keys[i].From < keys[j].From
		}
		return keys[i].To < keys[j].To
	})
	for _, k := range keys {
		_ = out.AddEdge(k.From, k.To, g.edges[k]) // ignore ErrEdgeExists from the reverse-direction duplicate
	}
	g.muEdge.RUnlock()

	return out
}
