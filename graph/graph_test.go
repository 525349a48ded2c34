package graph_test

import (
	"testing"

	"github.com/lvlath-labs/pcstfast/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVertexRejectsNegativePrize(t *testing.T) {
	g := graph.New()
	_, err := g.AddVertex(-1)
	assert.ErrorIs(t, err, graph.ErrNegativePrize)
}

func TestAddEdgeRejectsNegativeCost(t *testing.T) {
	g := graph.New()
	a, _ := g.AddVertex(0)
	b, _ := g.AddVertex(0)
	_, err := g.AddEdge(a, b, -1)
	assert.ErrorIs(t, err, graph.ErrNegativeCost)
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	g := graph.New()
	a, _ := g.AddVertex(0)
	_, err := g.AddEdge(a, a, 1)
	assert.ErrorIs(t, err, graph.ErrLoopNotAllowed)
}

func TestAddEdgeRejectsUnknownVertex(t *testing.T) {
	g := graph.New()
	a, _ := g.AddVertex(0)
	_, err := g.AddEdge(a, 5, 1)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestSnapshotsReflectInsertionOrder(t *testing.T) {
	g := graph.New()
	a, err := g.AddVertex(1)
	require.NoError(t, err)
	b, err := g.AddVertex(2)
	require.NoError(t, err)
	eID, err := g.AddEdge(a, b, 3)
	require.NoError(t, err)

	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
	assert.Equal(t, 0, eID)
	assert.Equal(t, []float64{1, 2}, g.Prizes())
	assert.Equal(t, []float64{3}, g.Costs())
	assert.Equal(t, []graph.Edge{{ID: 0, U: 0, V: 1, Cost: 3}}, g.Edges())
}
