package task

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/arcsynth/graph"
)

// wireExample mirrors the on-disk {"input": grid, "output": grid}
// shape before colours are validated and converted.
type wireExample struct {
	Input  [][]int `json:"input"`
	Output [][]int `json:"output"`
}

type wireTask struct {
	Train []wireExample `json:"train"`
	Test  []wireExample `json:"test"`
}

func toGrid(rows [][]int) (Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(rows[0])
	if width == 0 {
		return nil, ErrEmptyGrid
	}

	grid := make(Grid, len(rows))
	for r, row := range rows {
		if len(row) != width {
			return nil, ErrNonRectangularGrid
		}
		grid[r] = make([]graph.Color, width)
		for c, v := range row {
			if v < 0 || v > 9 {
				return nil, ErrColorOutOfRange
			}
			grid[r][c] = graph.Color(v)
		}
	}

	return grid, nil
}

func toExample(w wireExample) (Example, error) {
	in, err := toGrid(w.Input)
	if err != nil {
		return Example{}, fmt.Errorf("input: %w", err)
	}

	var out Grid
	if w.Output != nil {
		out, err = toGrid(w.Output)
		if err != nil {
			return Example{}, fmt.Errorf("output: %w", err)
		}
	}

	return Example{Input: in, Output: out}, nil
}

// Load reads a single task JSON file. The task's Name is the file's
// base name with the .json suffix stripped.
func Load(path string) (*Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wire wireTask
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("task: %s: %w", path, err)
	}
	if len(wire.Train) > MaxTrainExamples {
		return nil, ErrTooManyTrain
	}
	if len(wire.Test) > MaxTestInputs {
		return nil, ErrTooManyTest
	}

	t := &Task{
		Name:  strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Train: make([]Example, len(wire.Train)),
		Test:  make([]Example, len(wire.Test)),
	}
	for i, w := range wire.Train {
		ex, err := toExample(w)
		if err != nil {
			return nil, fmt.Errorf("task: %s: train[%d]: %w", path, i, err)
		}
		t.Train[i] = ex
	}
	for i, w := range wire.Test {
		ex, err := toExample(w)
		if err != nil {
			return nil, fmt.Errorf("task: %s: test[%d]: %w", path, i, err)
		}
		t.Test[i] = ex
	}

	return t, nil
}

// LoadDirectory loads every *.json file directly under dir, sorted by
// file name for deterministic iteration order.
func LoadDirectory(dir string) ([]*Task, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, ErrNoTasks
	}
	sort.Strings(names)

	tasks := make([]*Task, len(names))
	for i, name := range names {
		t, err := Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		tasks[i] = t
	}

	return tasks, nil
}
