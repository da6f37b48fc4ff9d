package transform

import "github.com/katalvlaran/arcsynth/graph"

// Direction is a unit step on the 8-connected grid, or NoDirection
// when two nodes share no row or column.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	DownLeft
	UpRight
	DownRight
)

// NoDirection marks a direction binding that could not be resolved.
const NoDirection Direction = -1

type delta struct{ dx, dy int }

// deltas maps each Direction to its (pri, sec) step, preserving the
// order of the source's deltas table.
var deltas = [8]delta{
	Up:         {0, -1},
	Down:       {0, 1},
	Left:       {-1, 0},
	Right:      {1, 0},
	UpLeft:     {-1, -1},
	DownLeft:   {-1, 1},
	UpRight:    {1, -1},
	DownRight:  {1, 1},
}

// Rotation picks how far and which way RotateNode turns a node.
type Rotation int

const (
	ClockWise Rotation = iota
	CounterClockWise
	DoubleClockWise
)

// resolveColor turns a derived-colour sentinel into a concrete
// palette colour, leaving an already-concrete colour untouched.
func resolveColor(g *graph.Graph, color graph.Color) graph.Color {
	switch color {
	case graph.Background:
		return g.DerivedProperties().Background
	case graph.MostCommon:
		return g.DerivedProperties().MostCommon
	case graph.LeastCommon:
		return g.DerivedProperties().LeastCommon
	default:
		return color
	}
}
