package candidate

import (
	"github.com/katalvlaran/arcsynth/abstraction"
	"github.com/katalvlaran/arcsynth/task"
	"github.com/katalvlaran/arcsynth/transform"
)

var allDirections = []transform.Direction{
	transform.Up, transform.Down, transform.Left, transform.Right,
	transform.UpLeft, transform.DownLeft, transform.UpRight, transform.DownRight,
}

var allRotations = []transform.Rotation{
	transform.ClockWise, transform.CounterClockWise, transform.DoubleClockWise,
}

// EnumerateTransforms builds one transform.Call per combination of
// operator kind and constant or binding-resolved argument, crossing
// the bindings EnumerateBindings would produce into every dynamic
// colour or direction slot.
func EnumerateTransforms(t *task.Task, ab abstraction.Func) ([]transform.Call, error) {
	bindings, err := EnumerateBindings(t, ab)
	if err != nil {
		return nil, err
	}
	colors := colorValues()

	var calls []transform.Call

	for _, c := range colors {
		calls = append(calls, transform.Call{Kind: transform.UpdateColorKind, Color: c})
	}
	for _, b := range bindings {
		calls = append(calls, transform.Call{Kind: transform.UpdateColorKind, ColorBinding: b})
	}

	for _, d := range allDirections {
		calls = append(calls, transform.Call{Kind: transform.MoveNodeKind, Direction: d})
	}
	for _, b := range bindings {
		calls = append(calls, transform.Call{Kind: transform.MoveNodeKind, DirectionBinding: b})
	}

	for _, d := range allDirections {
		for _, overlap := range boolValues {
			calls = append(calls, transform.Call{Kind: transform.ExtendNodeKind, Direction: d, Overlap: overlap})
		}
	}
	for _, b := range bindings {
		for _, overlap := range boolValues {
			calls = append(calls, transform.Call{Kind: transform.ExtendNodeKind, DirectionBinding: b, Overlap: overlap})
		}
	}

	for _, d := range allDirections {
		calls = append(calls, transform.Call{Kind: transform.MoveNodeMaxKind, Direction: d})
	}
	for _, b := range bindings {
		calls = append(calls, transform.Call{Kind: transform.MoveNodeMaxKind, DirectionBinding: b})
	}

	for _, r := range allRotations {
		calls = append(calls, transform.Call{Kind: transform.RotateNodeKind, Rotation: r})
	}

	return calls, nil
}
