package abstraction

import "github.com/katalvlaran/arcsynth/graph"

// linkNodesWithoutIntermediary adds an edge between two out-nodes
// whenever a straight line of pixels connects them in the original
// pixel-grid graph in with nothing but background pixels along the
// way — the "visibility" relation built between components once
// their pixels have been computed.
func linkNodesWithoutIntermediary(out, in *graph.Graph) {
	nodes := out.Nodes()
	for i, node1 := range nodes {
		for _, node2 := range nodes[i+1:] {
			linkPair(out, in, node1, node2)
		}
	}
}

// linkPair looks for a shared row or column between any subnode of
// node1 and any subnode of node2 with an unobstructed gap, adding the
// first such edge it finds and stopping — matching the "first match
// wins" behaviour of the source this is grounded on.
func linkPair(out, in *graph.Graph, node1, node2 *graph.Node) {
	for s1 := 0; s1 < node1.NumSubnodes(); s1++ {
		sub1, err := node1.GetSubnode(s1)
		if err != nil {
			return
		}
		for s2 := 0; s2 < node2.NumSubnodes(); s2++ {
			sub2, err := node2.GetSubnode(s2)
			if err != nil {
				return
			}

			if sub1.Coord.Pri == sub2.Coord.Pri {
				lo, hi := sub1.Coord.Sec, sub2.Coord.Sec
				if lo > hi {
					lo, hi = hi, lo
				}
				if !obstructed(in, sub1.Coord.Pri, lo, hi, true) {
					out.AddEdge(node1, node2, graph.Vertical)

					return
				}
			} else if sub1.Coord.Sec == sub2.Coord.Sec {
				lo, hi := sub1.Coord.Pri, sub2.Coord.Pri
				if lo > hi {
					lo, hi = hi, lo
				}
				if !obstructed(in, sub1.Coord.Sec, lo, hi, false) {
					out.AddEdge(node1, node2, graph.Horizontal)

					return
				}
			}
		}
	}
}

// obstructed reports whether any pixel strictly between lo and hi
// along the fixed axis is a non-background colour. fixed is pri when
// alongSec is true (scanning sec from lo+1..hi-1), else fixed is sec
// (scanning pri).
func obstructed(in *graph.Graph, fixed, lo, hi int, alongSec bool) bool {
	for v := lo + 1; v < hi; v++ {
		var coord graph.Coordinate
		if alongSec {
			coord = graph.Coordinate{Pri: fixed, Sec: v}
		} else {
			coord = graph.Coordinate{Pri: v, Sec: fixed}
		}
		node, ok := in.GetNode(coord)
		if !ok {
			continue
		}
		sub, err := node.GetSubnode(0)
		if err != nil {
			continue
		}
		if sub.Color != in.BackgroundColor {
			return true
		}
	}

	return false
}
