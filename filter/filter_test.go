package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arcsynth/graph"
)

func buildLine(t *testing.T, colors []graph.Color) *graph.Graph {
	t.Helper()
	g := graph.New(len(colors), 1, graph.WithBackground(0))
	var prev *graph.Node
	for i, c := range colors {
		n, ok := g.AddNode(graph.Coordinate{Pri: i, Sec: 0}, 1)
		require.True(t, ok)
		require.NoError(t, n.SetSubnode(0, graph.Subnode{Coord: n.Coord, Color: c}))
		if prev != nil {
			require.True(t, g.AddEdge(prev, n, graph.Horizontal))
		}
		prev = n
	}

	return g
}

func TestByColorMatchesAndExcludes(t *testing.T) {
	g := buildLine(t, []graph.Color{0, 5, 0})
	middle, _ := g.GetNode(graph.Coordinate{Pri: 1, Sec: 0})

	assert.True(t, Matches(g, middle, ByColor(5, false)))
	assert.False(t, Matches(g, middle, ByColor(5, true)))
}

func TestByColorResolvesBackgroundSentinelFromDeclaredField(t *testing.T) {
	g := buildLine(t, []graph.Color{3, 3, 3})
	// Background declared as 0, but no pixel is actually 0; the
	// background filter must still key off the declared field, not a
	// derived histogram value.
	n, _ := g.GetNode(graph.Coordinate{Pri: 0, Sec: 0})
	assert.False(t, Matches(g, n, ByColor(graph.Background, false)))
}

func TestBySizeOddAndDerived(t *testing.T) {
	g := graph.New(2, 1)
	a, _ := g.AddNode(graph.Coordinate{Pri: 0, Sec: 0}, 1)
	b, _ := g.AddNode(graph.Coordinate{Pri: 1, Sec: 0}, 2)
	require.True(t, g.SetSubnodes(b, []graph.Subnode{
		{Coord: graph.Coordinate{Pri: 1, Sec: 0}, Color: 1},
		{Coord: graph.Coordinate{Pri: 1, Sec: 0}, Color: 1},
	}))

	assert.True(t, Matches(g, a, BySize(SizeOdd, false)))
	assert.False(t, Matches(g, b, BySize(SizeOdd, false)))
	assert.True(t, Matches(g, b, BySize(SizeMax, false)))
	assert.True(t, Matches(g, a, BySize(SizeMin, false)))
}

func TestByDegreeAndNeighborVariants(t *testing.T) {
	g := buildLine(t, []graph.Color{1, 2, 3})
	left, _ := g.GetNode(graph.Coordinate{Pri: 0, Sec: 0})
	middle, _ := g.GetNode(graph.Coordinate{Pri: 1, Sec: 0})

	assert.True(t, Matches(g, left, ByDegree(1, false)))
	assert.True(t, Matches(g, middle, ByDegree(2, false)))

	assert.True(t, Matches(g, left, ByNeighborColor(2, false)))
	assert.False(t, Matches(g, left, ByNeighborColor(9, false)))
	assert.True(t, Matches(g, left, ByNeighborColor(9, true)))
}

func TestChainIsConjunctive(t *testing.T) {
	g := buildLine(t, []graph.Color{1, 2, 3})
	middle, _ := g.GetNode(graph.Coordinate{Pri: 1, Sec: 0})

	assert.True(t, Matches(g, middle, ByColor(2, false), ByDegree(2, false)))
	assert.False(t, Matches(g, middle, ByColor(2, false), ByDegree(9, false)))
}
