package csvio

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mikey/tweet-spam-sweeper/internal/core"
	"go.uber.org/zap"
)

// StdoutLocation makes the saver write to standard output
const StdoutLocation = "-"

// Saver writes a dataset to a CSV file with a header row and no index column
type Saver struct {
	path   string
	stdout io.Writer
	logger *zap.Logger
}

// NewSaver creates a new CSV saver writing to path, or stdout for "-"
func NewSaver(path string, logger *zap.Logger) *Saver {
	return &Saver{
		path:   path,
		stdout: os.Stdout,
		logger: logger,
	}
}

// Save writes ds to the configured path, replacing any existing file
func (s *Saver) Save(ctx context.Context, ds core.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.path == "" {
		return fmt.Errorf("failed to save dataset: no output path configured")
	}
	if s.path == StdoutLocation {
		return Write(s.stdout, ds)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := Write(f, ds); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	s.logger.Info("Saved cleaned dataset",
		zap.String("file", s.path),
		zap.Int("records", ds.Len()))
	return nil
}

// Write encodes ds as CSV to w
func Write(w io.Writer, ds core.Dataset) error {
	header, rows := ds.Table()

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}
