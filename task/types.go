package task

import (
	"errors"

	"github.com/katalvlaran/arcsynth/graph"
)

// Per-task bounds, preserved from the system this package is grounded
// on.
const (
	MaxTrainExamples = 10
	MaxTestInputs    = 5
)

// Sentinel errors for task loading.
var (
	ErrEmptyGrid          = errors.New("task: grid has no rows or columns")
	ErrNonRectangularGrid = errors.New("task: grid rows have differing lengths")
	ErrColorOutOfRange    = errors.New("task: colour value outside 0-9")
	ErrTooManyTrain       = errors.New("task: too many training examples")
	ErrTooManyTest        = errors.New("task: too many test inputs")
	ErrNoTasks            = errors.New("task: no .json files found in directory")
)

// Grid is a rectangular block of palette colours, indexed
// grid[row][col].
type Grid [][]graph.Color

// Example pairs one training or test input with its expected output.
// Test examples in the wild may omit Output; callers that need it
// present should check len(Output) themselves.
type Example struct {
	Input  Grid
	Output Grid
}

// Task is one named ARC puzzle: a handful of training examples
// demonstrating a transformation, plus test inputs to apply it to.
type Task struct {
	Name  string
	Train []Example
	Test  []Example
}
