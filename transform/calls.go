package transform

import (
	"github.com/katalvlaran/arcsynth/binding"
	"github.com/katalvlaran/arcsynth/graph"
)

// Kind names which of the five mutations a Call applies.
type Kind int

const (
	UpdateColorKind Kind = iota
	MoveNodeKind
	ExtendNodeKind
	MoveNodeMaxKind
	RotateNodeKind
)

// Call bundles a transform's constant arguments with an optional
// dynamic override for each slot: a nil binding uses the constant
// value, a non-nil one resolves against the node the call is applied
// to. Only Color and Direction can be bound dynamically — the only
// two dynamic slots any of the five kept transforms consume.
type Call struct {
	Kind Kind

	Color         graph.Color
	ColorBinding  binding.Call
	Direction     Direction
	DirectionBinding binding.Call
	Overlap       bool
	Rotation      Rotation
}

// ApplyBinding resolves any dynamic slots Call declares against node,
// returning the concrete (color, direction) pair to use. ok is false
// if a bound colour selector found no node, or a bound direction
// resolves to NoDirection — per spec, apply_binding fails outright in
// either case.
func (c Call) ApplyBinding(g *graph.Graph, node *graph.Node) (color graph.Color, direction Direction, ok bool) {
	color = resolveColor(g, c.Color)
	if c.ColorBinding != nil {
		peer, found := binding.Resolve(c.ColorBinding, g, node)
		if !found {
			return 0, 0, false
		}
		sub, err := peer.GetSubnode(0)
		if err != nil {
			return 0, 0, false
		}
		color = sub.Color
	}

	direction = c.Direction
	if c.DirectionBinding != nil {
		peer, found := binding.Resolve(c.DirectionBinding, g, node)
		if !found {
			return 0, 0, false
		}
		direction = RelativePosition(node, peer)
		if direction == NoDirection {
			return 0, 0, false
		}
	}

	return color, direction, true
}

// Apply resolves c's dynamic arguments against node and mutates it in
// place. ok is false if argument resolution fails or the underlying
// mutation ran out of arena capacity.
func (c Call) Apply(g *graph.Graph, node *graph.Node) bool {
	color, direction, ok := c.ApplyBinding(g, node)
	if !ok {
		return false
	}

	switch c.Kind {
	case UpdateColorKind:
		UpdateColor(g, node, color)

		return true
	case MoveNodeKind:
		MoveNode(g, node, direction)

		return true
	case ExtendNodeKind:
		return ExtendNode(g, node, direction, c.Overlap)
	case MoveNodeMaxKind:
		return MoveNodeMax(g, node, direction)
	case RotateNodeKind:
		return RotateNode(g, node, c.Rotation)
	default:
		return false
	}
}
