package graph_test

import (
	"testing"

	"github.com/graphmotif/grandiso/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUndirectedViewCollapsesDirection(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(true))
	require.NoError(t, g.AddVertex("a", nil))
	require.NoError(t, g.AddVertex("b", nil))
	require.NoError(t, g.AddEdge("a", "b", nil))

	u := graph.ToUndirectedView(g)
	assert.False(t, u.Directed())
	assert.True(t, u.HasEdge("a", "b"))
	assert.True(t, u.HasEdge("b", "a"))
	assert.Equal(t, 1, u.Degree("a"))
	assert.Equal(t, 1, u.Degree("b"))

	// original graph is untouched
	assert.True(t, g.Directed())
	assert.False(t, g.HasEdge("b", "a"))
}

func TestToUndirectedViewDropsDuplicateReverseEdge(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(true))
	require.NoError(t, g.AddVertex("a", nil))
	require.NoError(t, g.AddVertex("b", nil))
	require.NoError(t, g.AddEdge("a", "b", nil))
	require.NoError(t, g.AddEdge("b", "a", nil))

	u := graph.ToUndirectedView(g)
	assert.Equal(t, 1, u.Degree("a"))
	assert.True(t, u.HasEdge("a", "b"))
}
