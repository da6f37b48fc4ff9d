package task

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTaskFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

func TestLoadParsesTrainAndTest(t *testing.T) {
	dir := t.TempDir()
	path := writeTaskFile(t, dir, "example.json", `{
		"train": [{"input": [[1,2],[3,4]], "output": [[4,3],[2,1]]}],
		"test": [{"input": [[0,0]]}]
	}`)

	tk, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "example", tk.Name)
	require.Len(t, tk.Train, 1)
	assert.EqualValues(t, 1, tk.Train[0].Input[0][0])
	assert.EqualValues(t, 4, tk.Train[0].Output[0][0])
	require.Len(t, tk.Test, 1)
	assert.Nil(t, tk.Test[0].Output)
}

func TestLoadRejectsNonRectangularGrid(t *testing.T) {
	dir := t.TempDir()
	path := writeTaskFile(t, dir, "bad.json", `{"train": [{"input": [[1,2],[3]], "output": [[1]]}], "test": []}`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNonRectangularGrid)
}

func TestLoadRejectsColorOutOfRange(t *testing.T) {
	dir := t.TempDir()
	path := writeTaskFile(t, dir, "bad.json", `{"train": [{"input": [[10]], "output": [[0]]}], "test": []}`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrColorOutOfRange)
}

func TestLoadRejectsTooManyTrainExamples(t *testing.T) {
	dir := t.TempDir()
	examples := ""
	for i := 0; i < MaxTrainExamples+1; i++ {
		if i > 0 {
			examples += ","
		}
		examples += `{"input": [[0]], "output": [[0]]}`
	}
	path := writeTaskFile(t, dir, "bad.json", `{"train": [`+examples+`], "test": []}`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrTooManyTrain)
}

func TestLoadDirectorySortsAndLoadsAll(t *testing.T) {
	dir := t.TempDir()
	writeTaskFile(t, dir, "b.json", `{"train": [{"input": [[1]], "output": [[1]]}], "test": []}`)
	writeTaskFile(t, dir, "a.json", `{"train": [{"input": [[2]], "output": [[2]]}], "test": []}`)
	writeTaskFile(t, dir, "ignored.txt", "not json")

	tasks, err := LoadDirectory(dir)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "a", tasks[0].Name)
	assert.Equal(t, "b", tasks[1].Name)
}

func TestLoadDirectoryErrorsWhenEmpty(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadDirectory(dir)
	assert.ErrorIs(t, err, ErrNoTasks)
}
