package factory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mikey/tweet-spam-sweeper/internal/adapters/csvio"
	"github.com/mikey/tweet-spam-sweeper/internal/adapters/sink"
	"github.com/mikey/tweet-spam-sweeper/internal/config"
	"github.com/mikey/tweet-spam-sweeper/internal/core"
	"go.uber.org/zap"
)

// stopper is implemented by sinks holding a connection
type stopper interface {
	Stop()
}

// SinkFactory creates the dataset saver based on configuration
type SinkFactory struct {
	cfg      *config.Config
	logger   *zap.Logger
	stoppers []stopper
}

// NewSinkFactory creates a new sink factory
func NewSinkFactory(cfg *config.Config, logger *zap.Logger) *SinkFactory {
	return &SinkFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateSaver creates a saver for output.type. The "none" type returns a nil
// saver, which makes the sweep skip saving.
func (f *SinkFactory) CreateSaver(ctx context.Context) (core.DatasetSaver, error) {
	out := f.cfg.GetOutput()

	switch out.Type {
	case "csv":
		path := out.Path
		if path == "" {
			path = csvio.StdoutLocation
		}
		return csvio.NewSaver(path, f.logger), nil
	case "memory":
		return sink.NewMemorySink(f.logger), nil
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(out.SQLitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}
		s, err := sink.NewSQLiteSink(out.SQLitePath, out.Table, f.logger)
		if err != nil {
			return nil, err
		}
		f.stoppers = append(f.stoppers, s)
		return s, nil
	case "mysql":
		if out.MySQLDSN == "" {
			return nil, fmt.Errorf("output.mysql_dsn is required for the mysql output")
		}
		s, err := sink.NewMySQLSink(out.MySQLDSN, out.Table, f.logger)
		if err != nil {
			return nil, err
		}
		f.stoppers = append(f.stoppers, s)
		return s, nil
	case "sheets":
		s, err := sink.NewSheetsSink(ctx,
			out.Sheets.SpreadsheetID,
			out.Sheets.SheetName,
			out.Sheets.CredentialsFile,
			f.logger,
		)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported output type: %s", out.Type)
	}
}

// Close releases connections held by created sinks
func (f *SinkFactory) Close() {
	for _, s := range f.stoppers {
		s.Stop()
	}
	f.stoppers = nil
}
