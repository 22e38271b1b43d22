package sink

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/mikey/tweet-spam-sweeper/internal/core"
	"go.uber.org/zap"
)

// MySQLSink writes cleaned datasets into a MySQL table
type MySQLSink struct {
	db     *sql.DB
	table  string
	logger *zap.Logger
}

// NewMySQLSink connects to dsn and creates the table if needed
func NewMySQLSink(dsn, table string, logger *zap.Logger) (*MySQLSink, error) {
	if err := validateTable(table); err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS ` + table + ` (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			author VARCHAR(255) NOT NULL,
			full_text TEXT,
			posted_at DATETIME,
			post_date DATE,
			INDEX idx_author (author),
			INDEX idx_post_date (post_date)
		) DEFAULT CHARSET=utf8mb4
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &MySQLSink{
		db:     db,
		table:  table,
		logger: logger,
	}, nil
}

// Save replaces the table contents with ds
func (s *MySQLSink) Save(ctx context.Context, ds core.Dataset) error {
	if err := replaceRows(ctx, s.db, s.table, ds); err != nil {
		return err
	}

	s.logger.Info("Saved cleaned dataset to MySQL",
		zap.String("table", s.table),
		zap.Int("records", ds.Len()))
	return nil
}

// Stop closes the database connection
func (s *MySQLSink) Stop() {
	if err := s.db.Close(); err != nil {
		s.logger.Error("Failed to close MySQL database", zap.Error(err))
	}
}
