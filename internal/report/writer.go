// Package report persists aggregation results as delimited files.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/zizevskikh-dev/wiki-animals-parser/pkg/models"
)

// Writer serializes aggregation rows to a CSV file in a fixed directory.
// Existing files are never overwritten: report.csv, report(1).csv,
// report(2).csv and so on.
type Writer struct {
	dir      string
	basename string
	logger   zerolog.Logger
}

// NewWriter creates a Writer targeting dir/basename.csv.
func NewWriter(dir, basename string, logger zerolog.Logger) *Writer {
	return &Writer{
		dir:      dir,
		basename: basename,
		logger:   logger,
	}
}

// Write saves the rows as a two-column CSV file (letter, count) with no
// header and no index column, and returns the path written. Empty input is
// a deliberate no-op: no file is created and the returned path is empty.
func (w *Writer) Write(rows []models.AggregationRow) (string, error) {
	if len(rows) == 0 {
		w.logger.Warn().Msg("Aggregation is empty, report will not be written")
		return "", nil
	}

	path, err := w.uniquePath()
	if err != nil {
		return "", err
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	for _, row := range rows {
		if err := cw.Write([]string{row.Letter, strconv.Itoa(row.Count)}); err != nil {
			return "", fmt.Errorf("failed to write report row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("failed to flush report: %w", err)
	}

	w.logger.Info().Str("path", path).Int("rows", len(rows)).Msg("Report saved")
	return path, nil
}

// uniquePath creates the report directory if needed and probes for the
// first unused filename.
func (w *Writer) uniquePath() (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	path := filepath.Join(w.dir, w.basename+".csv")
	for counter := 1; ; counter++ {
		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to probe report path: %w", err)
		}
		path = filepath.Join(w.dir, fmt.Sprintf("%s(%d).csv", w.basename, counter))
	}
}
