package driver

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arcsynth/graph"
	"github.com/katalvlaran/arcsynth/guide"
	"github.com/katalvlaran/arcsynth/task"
)

func identityTask() *task.Task {
	grid := func() task.Grid {
		return task.Grid{
			{graph.Color(1), graph.Color(1)},
			{graph.Color(2), graph.Color(2)},
		}
	}

	return &task.Task{
		Name: "identity",
		Train: []task.Example{
			{Input: grid(), Output: grid()},
		},
	}
}

func TestRunProducesOneSamplePerIteration(t *testing.T) {
	g := BuildGuide(guide.NewUniformBackbone(), 0.1)
	tasks := []*task.Task{identityTask()}
	rng := rand.New(rand.NewSource(7))

	result := Run(context.Background(), tasks, g, rng, 5)
	assert.Len(t, result.Samples, 5)
}

func TestRunWithNoTasksProducesNoSamples(t *testing.T) {
	g := BuildGuide(guide.NewUniformBackbone(), 0.1)
	rng := rand.New(rand.NewSource(8))

	result := Run(context.Background(), nil, g, rng, 3)
	assert.Empty(t, result.Samples)
}

func TestWriteCSVWritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	result := Result{Samples: []Sample{
		{Task: "t", Example: 0, Loss: 0.5, Reconstructed: true, Abstraction: "no abstraction", Filter: 1, Transform: 2},
	}}
	require.NoError(t, WriteCSV(path, result))
	require.NoError(t, WriteCSV(path, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := 0
	for _, b := range data {
		if b == '\n' {
			lines++
		}
	}
	assert.Equal(t, 3, lines) // one header + two appended rows
}

func TestLoadConfigAppliesDefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
