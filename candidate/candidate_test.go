package candidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arcsynth/abstraction"
	"github.com/katalvlaran/arcsynth/graph"
	"github.com/katalvlaran/arcsynth/task"
)

func taskFromInts(t *testing.T, trainInputs [][][]int) *task.Task {
	t.Helper()

	tk := &task.Task{Name: "test"}
	for _, rows := range trainInputs {
		grid := make(task.Grid, len(rows))
		for r, row := range rows {
			line := make([]graph.Color, len(row))
			for c, v := range row {
				line[c] = graph.Color(v)
			}
			grid[r] = line
		}
		tk.Train = append(tk.Train, task.Example{Input: grid})
	}

	return tk
}

func TestEnumerateFiltersKeepsColorPredicateMatchingAllTraining(t *testing.T) {
	tk := taskFromInts(t, [][][]int{
		{{2, 2}, {0, 1}},
		{{2, 0}, {2, 1}},
	})

	preds, err := EnumerateFilters(tk, abstraction.NoAbstraction)
	require.NoError(t, err)
	assert.NotEmpty(t, preds)
}

func TestEnumerateBindingsReturnsCallsMatchingEveryTrainingGraph(t *testing.T) {
	tk := taskFromInts(t, [][][]int{
		{{1, 1}, {1, 1}},
	})

	calls, err := EnumerateBindings(tk, abstraction.NoAbstraction)
	require.NoError(t, err)
	assert.NotEmpty(t, calls)
}

func TestEnumerateTransformsIncludesLiteralAndBoundVariants(t *testing.T) {
	tk := taskFromInts(t, [][][]int{
		{{1, 1}, {2, 2}},
	})

	calls, err := EnumerateTransforms(tk, abstraction.NoAbstraction)
	require.NoError(t, err)

	hasLiteral, hasBound := false, false
	for _, c := range calls {
		if c.ColorBinding != nil {
			hasBound = true
		} else {
			hasLiteral = true
		}
	}
	assert.True(t, hasLiteral)
	assert.True(t, hasBound)
}
