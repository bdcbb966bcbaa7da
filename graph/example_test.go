package graph_test

import (
	"fmt"

	"github.com/graphmotif/grandiso/graph"
)

// Example builds a small directed triangle A->B->C->A and inspects its
// adjacency, mirroring the shape of graphs the search engine expects both
// its motif and host to be.
func Example() {
	g := graph.NewGraph(graph.WithDirected(true))
	for _, v := range []string{"A", "B", "C"} {
		_ = g.AddVertex(v, nil)
	}
	_ = g.AddEdge("A", "B", nil)
	_ = g.AddEdge("B", "C", nil)
	_ = g.AddEdge("C", "A", nil)

	fmt.Println(g.Vertices())
	fmt.Println(g.NeighborsOut("A"))
	fmt.Println(g.DegreeOut("A"), g.DegreeIn("A"))
	// Output:
	// [A B C]
	// [B]
	// 1 1
}
