package transform

import "github.com/katalvlaran/arcsynth/graph"

func inBounds(g *graph.Graph, c graph.Coordinate) bool {
	return c.Pri >= 0 && c.Sec >= 0 && c.Pri < g.Width && c.Sec < g.Height
}

// occupied reports whether any node other than self has a subnode at
// coord.
func occupied(g *graph.Graph, self *graph.Node, coord graph.Coordinate) bool {
	for _, other := range g.Nodes() {
		if other == self {
			continue
		}
		for i := 0; i < other.NumSubnodes(); i++ {
			sub, err := other.GetSubnode(i)
			if err != nil {
				continue
			}
			if sub.Coord == coord {
				return true
			}
		}
	}

	return false
}

func snapshot(node *graph.Node) []graph.Subnode {
	out := make([]graph.Subnode, node.NumSubnodes())
	for i := range out {
		out[i], _ = node.GetSubnode(i)
	}

	return out
}

// UpdateColor recolours every subnode of node to color.
func UpdateColor(g *graph.Graph, node *graph.Node, color graph.Color) {
	color = resolveColor(g, color)
	for i := 0; i < node.NumSubnodes(); i++ {
		sub, err := node.GetSubnode(i)
		if err != nil {
			continue
		}
		sub.Color = color
		_ = node.SetSubnode(i, sub)
	}
}

// MoveNode translates every subnode of node by one unit step in
// direction, without any bounds or collision check.
func MoveNode(g *graph.Graph, node *graph.Node, direction Direction) {
	d := deltas[direction]
	for i := 0; i < node.NumSubnodes(); i++ {
		sub, err := node.GetSubnode(i)
		if err != nil {
			continue
		}
		sub.Coord.Pri += d.dx
		sub.Coord.Sec += d.dy
		_ = node.SetSubnode(i, sub)
	}
}

// ExtendNode walks every original subnode of node in direction,
// adding a trailing subnode at every step until it runs off the grid
// or — unless overlap is set — would collide with another node's
// subnode. The node's subnode list is replaced wholesale.
func ExtendNode(g *graph.Graph, node *graph.Node, direction Direction, overlap bool) bool {
	d := deltas[direction]
	maxRange := g.Width
	if g.Height > maxRange {
		maxRange = g.Height
	}

	var extended []graph.Subnode
	for _, sub := range snapshot(node) {
		cur := sub.Coord
		for r := 0; r < maxRange; r++ {
			extended = append(extended, graph.Subnode{Coord: cur, Color: sub.Color})

			next := graph.Coordinate{Pri: cur.Pri + d.dx, Sec: cur.Sec + d.dy}
			if !inBounds(g, next) {
				break
			}
			if !overlap && occupied(g, node, next) {
				break
			}
			cur = next
		}
	}

	return g.SetSubnodes(node, extended)
}

// MoveNodeMax translates node by the largest number of unit steps in
// direction such that no subnode would leave the grid or collide with
// another node.
func MoveNodeMax(g *graph.Graph, node *graph.Node, direction Direction) bool {
	d := deltas[direction]
	subs := snapshot(node)

	n := 0
	for {
		candidate := n + 1
		ok := true
		for _, s := range subs {
			nc := graph.Coordinate{
				Pri: s.Coord.Pri + d.dx*candidate,
				Sec: s.Coord.Sec + d.dy*candidate,
			}
			if !inBounds(g, nc) || occupied(g, node, nc) {
				ok = false

				break
			}
		}
		if !ok {
			break
		}
		n = candidate
	}

	moved := make([]graph.Subnode, len(subs))
	for i, s := range subs {
		moved[i] = graph.Subnode{
			Coord: graph.Coordinate{Pri: s.Coord.Pri + d.dx*n, Sec: s.Coord.Sec + d.dy*n},
			Color: s.Color,
		}
	}

	return g.SetSubnodes(node, moved)
}

// RotateNode rotates every subnode of node 90 degrees (clockwise or
// counter-clockwise) or 180 degrees around the node's centroid. A
// rotated subnode that lands outside the grid is dropped rather than
// clamped.
func RotateNode(g *graph.Graph, node *graph.Node, rotation Rotation) bool {
	subs := snapshot(node)
	if len(subs) == 0 {
		return true
	}

	sumPri, sumSec := 0, 0
	for _, s := range subs {
		sumPri += s.Coord.Pri
		sumSec += s.Coord.Sec
	}
	cx, cy := sumPri/len(subs), sumSec/len(subs)

	var survivors []graph.Subnode
	for _, s := range subs {
		dx, dy := s.Coord.Pri-cx, s.Coord.Sec-cy

		var ndx, ndy int
		switch rotation {
		case ClockWise:
			ndx, ndy = -dy, dx
		case CounterClockWise:
			ndx, ndy = dy, -dx
		case DoubleClockWise:
			ndx, ndy = -dx, -dy
		}

		nc := graph.Coordinate{Pri: cx + ndx, Sec: cy + ndy}
		if !inBounds(g, nc) {
			continue
		}
		survivors = append(survivors, graph.Subnode{Coord: nc, Color: s.Color})
	}

	return g.SetSubnodes(node, survivors)
}
