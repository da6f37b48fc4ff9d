package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNodeAndGetNode(t *testing.T) {
	g := New(3, 3)

	n, ok := g.AddNode(Coordinate{Pri: 1, Sec: 1}, 1)
	require.True(t, ok)
	require.NoError(t, n.SetSubnode(0, Subnode{Coord: Coordinate{Pri: 1, Sec: 1}, Color: 5}))

	got, ok := g.GetNode(Coordinate{Pri: 1, Sec: 1})
	require.True(t, ok)
	assert.Same(t, n, got)

	_, ok = g.GetNode(Coordinate{Pri: 2, Sec: 2})
	assert.False(t, ok)
}

func TestAddEdgeIsSymmetric(t *testing.T) {
	g := New(2, 1)
	a, _ := g.AddNode(Coordinate{Pri: 0, Sec: 0}, 1)
	b, _ := g.AddNode(Coordinate{Pri: 1, Sec: 0}, 1)

	ok := g.AddEdge(a, b, Horizontal)
	require.True(t, ok)

	assert.True(t, g.HasEdge(a, b))
	assert.True(t, g.HasEdge(b, a))
	assert.Equal(t, 1, a.Degree())
	assert.Equal(t, 1, b.Degree())

	edgesOfA := a.Edges()
	require.Len(t, edgesOfA, 1)
	assert.Same(t, b, edgesOfA[0].Peer)
	assert.Equal(t, Horizontal, edgesOfA[0].Direction)
}

func TestRemoveEdgeClearsBothSides(t *testing.T) {
	g := New(2, 1)
	a, _ := g.AddNode(Coordinate{Pri: 0, Sec: 0}, 1)
	b, _ := g.AddNode(Coordinate{Pri: 1, Sec: 0}, 1)
	require.True(t, g.AddEdge(a, b, Horizontal))

	removed := g.RemoveEdge(a, b)
	assert.True(t, removed)
	assert.False(t, g.HasEdge(a, b))
	assert.False(t, g.HasEdge(b, a))
	assert.Equal(t, 0, a.Degree())
	assert.Equal(t, 0, b.Degree())
}

func TestRemoveNodeFreesItsEdges(t *testing.T) {
	g := New(3, 1)
	a, _ := g.AddNode(Coordinate{Pri: 0, Sec: 0}, 1)
	b, _ := g.AddNode(Coordinate{Pri: 1, Sec: 0}, 1)
	c, _ := g.AddNode(Coordinate{Pri: 2, Sec: 0}, 1)
	require.True(t, g.AddEdge(a, b, Horizontal))
	require.True(t, g.AddEdge(b, c, Horizontal))

	g.RemoveNode(b)

	assert.Equal(t, 2, g.NumNodes())
	assert.Equal(t, 0, a.Degree())
	assert.Equal(t, 0, c.Degree())
	_, ok := g.GetNode(Coordinate{Pri: 1, Sec: 0})
	assert.False(t, ok)
}

func TestSubnodeRoundTrip(t *testing.T) {
	g := New(1, 1)
	n, ok := g.AddNode(Coordinate{Pri: 0, Sec: 0}, 1)
	require.True(t, ok)

	require.NoError(t, n.SetSubnode(0, Subnode{Coord: Coordinate{Pri: 0, Sec: 0}, Color: 7}))
	got, err := n.GetSubnode(0)
	require.NoError(t, err)
	assert.EqualValues(t, 7, got.Color)

	_, err = n.GetSubnode(1)
	assert.ErrorIs(t, err, ErrSubnodeOutOfRange)
}

func TestSetSubnodesSpansMultipleBlocks(t *testing.T) {
	g := New(20, 1)
	n, ok := g.AddNode(Coordinate{Pri: 0, Sec: 0}, 0)
	require.True(t, ok)

	subs := make([]Subnode, SubnodeBlockSize+3)
	for i := range subs {
		subs[i] = Subnode{Coord: Coordinate{Pri: i, Sec: 0}, Color: Color(i % 10)}
	}
	require.True(t, g.SetSubnodes(n, subs))
	assert.Equal(t, len(subs), n.NumSubnodes())

	last, err := n.GetSubnode(len(subs) - 1)
	require.NoError(t, err)
	assert.Equal(t, subs[len(subs)-1], last)
}

func TestDerivedPropertiesCacheInvalidatesOnMutation(t *testing.T) {
	g := New(2, 1)
	a, _ := g.AddNode(Coordinate{Pri: 0, Sec: 0}, 1)
	require.NoError(t, a.SetSubnode(0, Subnode{Coord: a.Coord, Color: 0}))

	props := g.DerivedProperties()
	assert.Equal(t, 1, props.MaxSize)

	b, _ := g.AddNode(Coordinate{Pri: 1, Sec: 0}, 3)
	require.True(t, g.SetSubnodes(b, []Subnode{
		{Coord: Coordinate{Pri: 1, Sec: 0}, Color: 2},
		{Coord: Coordinate{Pri: 1, Sec: 0}, Color: 2},
		{Coord: Coordinate{Pri: 1, Sec: 0}, Color: 2},
	}))

	props = g.DerivedProperties()
	assert.Equal(t, 3, props.MaxSize)
	assert.Equal(t, 1, props.MinSize)
}

func TestLeastCommonColorDefaultsToZeroWhenAbsent(t *testing.T) {
	// Colour 0 never appears, yet the histogram scan seeds its running
	// minimum from colour 0's (zero) count and never revisits index 0,
	// so LeastCommon still reports 0. This mirrors the source's
	// preserved quirk rather than a "true" least-common colour.
	g := New(3, 1)
	n, _ := g.AddNode(Coordinate{Pri: 0, Sec: 0}, 3)
	require.True(t, g.SetSubnodes(n, []Subnode{
		{Coord: Coordinate{Pri: 0, Sec: 0}, Color: 2},
		{Coord: Coordinate{Pri: 1, Sec: 0}, Color: 2},
		{Coord: Coordinate{Pri: 2, Sec: 0}, Color: 3},
	}))

	props := g.DerivedProperties()
	assert.EqualValues(t, 0, props.LeastCommon)
}

func TestAddNodeRejectsBeyondArenaCeiling(t *testing.T) {
	g := New(1, 1)
	// Drain the node pool by allocating its full ceiling.
	for i := 0; i < NodesAlloc; i++ {
		_, ok := g.AddNode(Coordinate{Pri: i, Sec: 0}, 1)
		require.True(t, ok)
	}

	_, ok := g.AddNode(Coordinate{Pri: NodesAlloc, Sec: 0}, 1)
	assert.False(t, ok)
}
