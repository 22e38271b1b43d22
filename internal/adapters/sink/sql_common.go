package sink

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/mikey/tweet-spam-sweeper/internal/core"
)

var tableNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

func validateTable(table string) error {
	if !tableNameRegex.MatchString(table) {
		return fmt.Errorf("invalid table name: %q", table)
	}
	return nil
}

// replaceRows swaps the table contents for ds inside one transaction
func replaceRows(ctx context.Context, db *sql.DB, table string, ds core.Dataset) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("failed to clear table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO `+table+` (author, full_text, posted_at, post_date)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range ds.Records {
		_, err := stmt.ExecContext(ctx,
			r.Author,
			r.FullText,
			r.Timestamp.UTC().Format(core.TimestampLayout),
			r.PostDate.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
