// Command arcsynth runs the program-synthesis driver loop against ARC
// task files: with no arguments it lists the tasks found under the
// data directory; with one argument it loads and runs that task;
// an optional second argument appends a training-sample CSV there.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/arcsynth/driver"
	"github.com/katalvlaran/arcsynth/guide"
	"github.com/katalvlaran/arcsynth/task"
)

const dataDir = "data"

const defaultIterations = 1000

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := run(os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("arcsynth: run failed")
		os.Exit(1)
	}
}

func run(args []string) error {
	switch len(args) {
	case 0:
		return listTasks()
	case 1:
		return runTask(args[0], "")
	default:
		return runTask(args[0], args[1])
	}
}

func listTasks() error {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return fmt.Errorf("arcsynth: reading %s: %w", dataDir, err)
	}

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		fmt.Println(e.Name()[:len(e.Name())-len(filepath.Ext(e.Name()))])
	}

	return nil
}

func runTask(name, csvPath string) error {
	runID := uuid.New().String()
	logger := log.With().Str("run_id", runID).Str("task", name).Logger()

	path := filepath.Join(dataDir, name+".json")
	t, err := task.Load(path)
	if err != nil {
		return fmt.Errorf("arcsynth: loading task %s: %w", name, err)
	}

	cfg, err := driver.LoadConfig("")
	if err != nil {
		return fmt.Errorf("arcsynth: loading config: %w", err)
	}

	backbone := guide.NewLoggingBackbone(guide.NewUniformBackbone(), logger)
	g := driver.BuildGuide(backbone, cfg.Epsilon)
	rng := rand.New(rand.NewSource(cfg.Seed))

	result := driver.Run(context.Background(), []*task.Task{t}, g, rng, defaultIterations)
	logger.Info().Int("samples", len(result.Samples)).Msg("run complete")

	if csvPath != "" {
		if err := driver.WriteCSV(csvPath, result); err != nil {
			return fmt.Errorf("arcsynth: writing csv: %w", err)
		}
	}

	return nil
}
