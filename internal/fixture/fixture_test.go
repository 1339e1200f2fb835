package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layoutkit/bkcoord"
)

func TestBuildAssignsRanksAcrossEdges(t *testing.T) {
	g, err := Build(Spec{
		Nodes: []string{"a", "b", "c"},
		Edges: []Edge{{From: "a", To: "b"}, {From: "b", To: "c"}},
		Attrs: bkcoord.GraphAttrs{NodeSep: 50, EdgeSep: 10},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, g.Node("a").Rank)
	assert.Equal(t, 1, g.Node("b").Rank)
	assert.Equal(t, 2, g.Node("c").Rank)
}

func TestBuildInsertsDummiesForLongEdges(t *testing.T) {
	g, err := Build(Spec{
		Nodes: []string{"a", "b", "c", "d"},
		Edges: []Edge{
			{From: "a", To: "b"},
			{From: "b", To: "c"},
			{From: "c", To: "d"},
			{From: "a", To: "d"}, // spans 3 ranks, needs 2 dummies
		},
		Attrs: bkcoord.GraphAttrs{NodeSep: 50, EdgeSep: 10},
	})
	require.NoError(t, err)

	dummyCount := 0
	for _, id := range g.Nodes() {
		if g.Node(id).Dummy.IsDummy() {
			dummyCount++
		}
	}
	assert.Equal(t, 2, dummyCount, "one per intermediate rank of a->d")
}

func TestBuildProducesAValidLayeringForPositionX(t *testing.T) {
	g, err := Build(Spec{
		Nodes: []string{"a", "b", "c", "d", "e"},
		Edges: []Edge{
			{From: "a", To: "c"},
			{From: "b", To: "c"},
			{From: "a", To: "d"},
			{From: "b", To: "e"},
		},
		Attrs: bkcoord.GraphAttrs{NodeSep: 50, EdgeSep: 10},
	})
	require.NoError(t, err)

	xs, err := bkcoord.PositionX(g)
	require.NoError(t, err)
	assert.Len(t, xs, len(g.Nodes()))
}

func TestRenderProducesStraightEdgePaths(t *testing.T) {
	res, err := BuildFull(Spec{
		Nodes: []string{"a", "b", "c", "d"},
		Edges: []Edge{
			{From: "a", To: "b"},
			{From: "b", To: "c"},
			{From: "c", To: "d"},
			{From: "a", To: "d"}, // long edge through 2 dummies
		},
		Attrs: bkcoord.GraphAttrs{NodeSep: 50, EdgeSep: 10},
	})
	require.NoError(t, err)

	xs, err := bkcoord.PositionX(res.Graph)
	require.NoError(t, err)

	points, edgePaths := Render(res.Graph, xs, 100, res.Chains)
	assert.Len(t, points, len(res.Graph.Nodes()))
	require.Len(t, edgePaths, 4, "one per original edge")

	var longChain []Point
	for _, path := range edgePaths {
		if len(path) == 4 { // a -> dummy -> dummy -> d
			longChain = path
		}
	}
	require.NotNil(t, longChain, "expected one 4-point path for the long a->d edge")
	assert.Equal(t, 0.0, longChain[0].Y)
	assert.Equal(t, 300.0, longChain[len(longChain)-1].Y)
}
