package driver

import (
	"encoding/csv"
	"fmt"
	"os"
)

// csvHeader is written once when path doesn't already exist.
var csvHeader = []string{"task", "example", "loss", "reconstructed", "abstraction", "filter", "transform"}

// WriteCSV appends result's samples to path, writing the header first
// if the file is new. Opens in append mode so repeated runs against
// the same path accumulate.
func WriteCSV(path string, result Result) error {
	_, statErr := os.Stat(path)
	needsHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("driver: opening csv %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if needsHeader {
		if err := w.Write(csvHeader); err != nil {
			return err
		}
	}

	for _, s := range result.Samples {
		row := []string{
			s.Task,
			fmt.Sprint(s.Example),
			fmt.Sprint(s.Loss),
			fmt.Sprint(s.Reconstructed),
			s.Abstraction,
			fmt.Sprint(s.Filter),
			fmt.Sprint(s.Transform),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
