package sink

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/mikey/tweet-spam-sweeper/internal/core"
	"go.uber.org/zap"
)

// SQLiteSink writes cleaned datasets into a SQLite table
type SQLiteSink struct {
	db     *sql.DB
	table  string
	logger *zap.Logger
}

// NewSQLiteSink opens dbPath and creates the table if needed
func NewSQLiteSink(dbPath, table string, logger *zap.Logger) (*SQLiteSink, error) {
	if err := validateTable(table); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS ` + table + ` (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			author TEXT NOT NULL,
			full_text TEXT,
			posted_at TIMESTAMP,
			post_date TEXT
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_` + table + `_author ON ` + table + `(author)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	return &SQLiteSink{
		db:     db,
		table:  table,
		logger: logger,
	}, nil
}

// Save replaces the table contents with ds
func (s *SQLiteSink) Save(ctx context.Context, ds core.Dataset) error {
	if err := replaceRows(ctx, s.db, s.table, ds); err != nil {
		return err
	}

	s.logger.Info("Saved cleaned dataset to SQLite",
		zap.String("table", s.table),
		zap.Int("records", ds.Len()))
	return nil
}

// DB exposes the underlying connection for inspection
func (s *SQLiteSink) DB() *sql.DB {
	return s.db
}

// Stop closes the database connection
func (s *SQLiteSink) Stop() {
	if err := s.db.Close(); err != nil {
		s.logger.Error("Failed to close SQLite database", zap.Error(err))
	}
}
