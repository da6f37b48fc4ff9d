package abstraction

import (
	"errors"

	"github.com/katalvlaran/arcsynth/graph"
)

// Sentinel errors for grid and abstraction construction.
var (
	ErrEmptyGrid          = errors.New("abstraction: grid has no rows or columns")
	ErrNonRectangularGrid = errors.New("abstraction: grid rows have differing lengths")
)

// Func converts one graph into another — a pixel-grid graph into a
// node-per-region graph, or vice versa for UndoAbstraction.
type Func func(in *graph.Graph) (*graph.Graph, error)

// Entry names a registered abstraction, mirroring the abstractions[]
// table of the system this package is grounded on.
type Entry struct {
	Name  string
	Apply Func
}

// Registry lists every abstraction candidate enumeration may try, in
// a fixed order so program search is deterministic.
var Registry = []Entry{
	{Name: "no abstraction", Apply: NoAbstraction},
	{Name: "connected components", Apply: ConnectedComponents()},
	{Name: "connected, background corners removed", Apply: ConnectedComponents(RemoveBackgroundCorners())},
	{Name: "connected, background edges removed", Apply: ConnectedComponents(RemoveBackgroundEdges())},
	{Name: "connected, background removed", Apply: ConnectedComponents(RemoveBackgroundAll())},
}

// NoAbstraction collapses every pixel into a single node whose
// subnodes are the input graph's pixels in allocation order. It never
// links edges — a single node has no peers.
func NoAbstraction(in *graph.Graph) (*graph.Graph, error) {
	out := graph.New(in.Width, in.Height)

	node, ok := out.AddNode(graph.Coordinate{}, in.NumNodes())
	if !ok {
		return nil, graph.ErrArenaExhausted
	}

	for i, n := range in.Nodes() {
		sub, err := n.GetSubnode(0)
		if err != nil {
			return nil, err
		}
		if err := node.SetSubnode(i, sub); err != nil {
			return nil, err
		}
	}

	return out, nil
}
