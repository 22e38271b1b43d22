package csvio

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mikey/tweet-spam-sweeper/internal/core"
	"github.com/mikey/tweet-spam-sweeper/internal/ports"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// Loader reads a delimited tweet export into a core.Dataset. Rows that
// cannot be parsed are skipped and reported instead of failing the load.
type Loader struct {
	source   ports.Source
	logger   *zap.Logger
	location *time.Location
}

// NewLoader creates a new CSV loader reading through source. Timestamps
// without an explicit offset are read as UTC.
func NewLoader(source ports.Source, logger *zap.Logger) *Loader {
	return &Loader{
		source:   source,
		logger:   logger,
		location: time.UTC,
	}
}

// Load opens location and parses it
func (l *Loader) Load(ctx context.Context, location string) (*core.LoadResult, error) {
	rc, err := l.source.Open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return l.Parse(rc)
}

// Parse reads a CSV export with a header row naming at least the Author,
// Full Text and Date columns
func (l *Loader) Parse(r io.Reader) (*core.LoadResult, error) {
	reader := csv.NewReader(stripBOM(r))

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("failed to read header: empty input: %w", core.ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols, err := core.ResolveColumns(header)
	if err != nil {
		return nil, err
	}

	result := &core.LoadResult{
		Dataset: core.Dataset{Columns: header, Records: []core.Record{}},
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			l.skip(result, lineOf(err), err)
			continue
		}

		line, _ := reader.FieldPos(0)
		if strings.TrimSpace(row[cols.Author]) == "" {
			l.skip(result, line, errors.New("empty author"))
			continue
		}
		ts, err := l.parseTimestamp(row[cols.Date])
		if err != nil {
			l.skip(result, line, err)
			continue
		}

		rec := core.NewRecord(row[cols.Author], row[cols.FullText], ts)
		rec.Row = row
		result.Dataset.Records = append(result.Dataset.Records, rec)
	}

	l.logger.Debug("Parsed dataset",
		zap.Int("records", result.Dataset.Len()),
		zap.Int("skipped", result.Skipped))

	return result, nil
}

func (l *Loader) parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty date")
	}
	ts, err := cast.ToTimeInDefaultLocationE(value, l.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return ts, nil
}

func (l *Loader) skip(result *core.LoadResult, line int, err error) {
	result.Skipped++
	result.Issues = append(result.Issues, &core.MalformedRowError{Line: line, Err: err})
	l.logger.Debug("Skipping malformed row", zap.Int("line", line), zap.Error(err))
}

func lineOf(err error) int {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return perr.StartLine
	}
	return 0
}

// stripBOM drops a leading UTF-8 byte order mark
func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	rn, _, err := br.ReadRune()
	if err != nil {
		return br
	}
	if rn != '\uFEFF' {
		_ = br.UnreadRune()
	}
	return br
}
