package graph

import (
	"sort"

	"github.com/graphmotif/grandiso/attrs"
)

// AddVertex inserts a vertex with the given attribute bag. attrs may be
// nil, which is equivalent to an empty Bag.
//
// Complexity: O(1).
func (g *Graph) AddVertex(id string, bag attrs.Bag) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if bag == nil {
		bag = attrs.Bag{}
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if _, ok := g.vertices[id]; ok {
		return ErrVertexExists
	}
	g.vertices[id] = bag
	g.out[id] = make(map[string]struct{})
	g.in[id] = make(map[string]struct{})
	return nil
}

// AddEdge inserts an edge from `from` to `to` with the given attribute
// bag. Both endpoints must already exist. For undirected graphs, the edge
// is reachable in either direction from NeighborsOut/NeighborsIn.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, bag attrs.Bag) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrSelfLoop
	}
	if bag == nil {
		bag = attrs.Bag{}
	}

	g.muVert.RLock()
	_, fromOK := g.vertices[from]
	_, toOK := g.vertices[to]
	g.muVert.RUnlock()
	if !fromOK || !toOK {
		return ErrVertexNotFound
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	key := edgeKey{From: from, To: to}
	if _, ok := g.edges[key]; ok {
		return ErrEdgeExists
	}
	if !g.directed {
		if _, ok := g.edges[edgeKey{From: to, To: from}]; ok {
			return ErrEdgeExists
		}
	}
	g.edges[key] = bag
	g.out[from][to] = struct{}{}
	g.in[to][from] = struct{}{}
	if !g.directed {
		g.out[to][from] = struct{}{}
		g.in[from][to] = struct{}{}
	}
	return nil
}

// Vertices returns every vertex ID in the graph, sorted lexicographically
// ascending for deterministic iteration order across searches.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NeighborsOut returns the sorted IDs reachable from id along an outgoing
// edge (or any incident edge, if the graph is undirected).
//
// Complexity: O(d log d), d = out-degree of id.
func (g *Graph) NeighborsOut(id string) []string {
	return g.sortedNeighbors(g.out, id)
}

// NeighborsIn returns the sorted IDs from which id is reachable along an
// incoming edge (or any incident edge, if the graph is undirected).
//
// Complexity: O(d log d), d = in-degree of id.
func (g *Graph) NeighborsIn(id string) []string {
	return g.sortedNeighbors(g.in, id)
}

func (g *Graph) sortedNeighbors(index map[string]map[string]struct{}, id string) []string {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	set := index[id]
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// DegreeOut returns the out-degree of id (equal to Degree for undirected
// graphs).
func (g *Graph) DegreeOut(id string) int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.out[id])
}

// DegreeIn returns the in-degree of id (equal to Degree for undirected
// graphs).
func (g *Graph) DegreeIn(id string) int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.in[id])
}

// Degree returns the undirected degree of id. For a directed graph this is
// the size of the union of in- and out-neighbors (an edge to and from the
// same neighbor counts once), matching networkx's convention for a
// directed graph's `degree` view used as the fallback structural bound in
// the reference implementation.
func (g *Graph) Degree(id string) int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	if !g.directed {
		return len(g.out[id])
	}
	union := make(map[string]struct{}, len(g.out[id])+len(g.in[id]))
	for n := range g.out[id] {
		union[n] = struct{}{}
	}
	for n := range g.in[id] {
		union[n] = struct{}{}
	}
	return len(union)
}

// HasEdge reports whether an edge from u to v exists (in either direction,
// for undirected graphs).
//
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	_, ok := g.out[u][v]
	return ok
}

// VertexAttrs returns the attribute bag for id, and whether id exists.
func (g *Graph) VertexAttrs(id string) (attrs.Bag, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	bag, ok := g.vertices[id]
	return bag, ok
}

// EdgeAttrs returns the attribute bag stored for the edge inserted as
// (u, v), and whether such an edge exists. For undirected graphs, the bag
// is stored once under the insertion order and returned for either query
// direction.
func (g *Graph) EdgeAttrs(u, v string) (attrs.Bag, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	if bag, ok := g.edges[edgeKey{From: u, To: v}]; ok {
		return bag, true
	}
	if !g.directed {
		if bag, ok := g.edges[edgeKey{From: v, To: u}]; ok {
			return bag, true
		}
	}
	return nil, false
}
