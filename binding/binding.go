package binding

import (
	"github.com/katalvlaran/arcsynth/filter"
	"github.com/katalvlaran/arcsynth/graph"
)

// Call selects a single node, or reports that no node matched.
type Call func(g *graph.Graph, node *graph.Node) (*graph.Node, bool)

// Resolve invokes call, naming the operation after get_binding_node
// in the system this package is grounded on.
func Resolve(call Call, g *graph.Graph, node *graph.Node) (*graph.Node, bool) {
	return call(g, node)
}

// Matches reports whether call would select a node at all.
func Matches(call Call, g *graph.Graph, node *graph.Node) bool {
	_, ok := call(g, node)

	return ok
}

// NodeBySize returns the first node in allocation order whose size
// matches. The node argument is not used, so the node the binding is
// evaluated from can itself be returned.
func NodeBySize(size int, exclude bool) Call {
	pred := filter.BySize(size, exclude)

	return func(g *graph.Graph, _ *graph.Node) (*graph.Node, bool) {
		for _, n := range g.Nodes() {
			if pred(g, n) {
				return n, true
			}
		}

		return nil, false
	}
}

// NeighborBySize returns the first neighbour of node whose size
// matches.
func NeighborBySize(size int, exclude bool) Call {
	pred := filter.BySize(size, exclude)

	return func(g *graph.Graph, node *graph.Node) (*graph.Node, bool) {
		for _, e := range node.Edges() {
			if pred(g, e.Peer) {
				return e.Peer, true
			}
		}

		return nil, false
	}
}

// NeighborByColor returns the first neighbour of node whose colour
// matches.
func NeighborByColor(color graph.Color, exclude bool) Call {
	pred := filter.ByColor(color, exclude)

	return func(g *graph.Graph, node *graph.Node) (*graph.Node, bool) {
		for _, e := range node.Edges() {
			if pred(g, e.Peer) {
				return e.Peer, true
			}
		}

		return nil, false
	}
}

// NeighborByDegree returns the first neighbour of node whose degree
// matches.
func NeighborByDegree(degree int, exclude bool) Call {
	pred := filter.ByDegree(degree, exclude)

	return func(g *graph.Graph, node *graph.Node) (*graph.Node, bool) {
		for _, e := range node.Edges() {
			if pred(g, e.Peer) {
				return e.Peer, true
			}
		}

		return nil, false
	}
}
