package search_test

import (
	"fmt"
	"testing"

	"github.com/graphmotif/grandiso/graph"
	"github.com/graphmotif/grandiso/search"
)

func buildCompleteGraph(n int) *graph.Graph {
	g := graph.NewGraph()
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("v%d", i)
		_ = g.AddVertex(ids[i], nil)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_ = g.AddEdge(ids[i], ids[j], nil)
		}
	}
	return g
}

func buildTriangleMotif() *graph.Graph {
	g := graph.NewGraph()
	for _, v := range []string{"A", "B", "C"} {
		_ = g.AddVertex(v, nil)
	}
	_ = g.AddEdge("A", "B", nil)
	_ = g.AddEdge("B", "C", nil)
	_ = g.AddEdge("C", "A", nil)
	return g
}

func BenchmarkFindMotifsTriangleInK8(b *testing.B) {
	motif := buildTriangleMotif()
	host := buildCompleteGraph(8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.FindMotifs(motif, host, search.WithCountOnly())
	}
}

func BenchmarkFindMotifsTriangleInK8Parallel(b *testing.B) {
	motif := buildTriangleMotif()
	host := buildCompleteGraph(8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.FindMotifs(motif, host, search.WithCountOnly(), search.WithWorkers(4))
	}
}
