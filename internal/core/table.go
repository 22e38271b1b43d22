package core

import (
	"fmt"
	"slices"
	"strings"
)

// TimestampLayout is used when a record has no raw Date value to write back
const TimestampLayout = "2006-01-02 15:04:05"

// ColumnIndex locates the known columns in a header. PostDate is -1 when the
// header has no derived day column.
type ColumnIndex struct {
	Author   int
	FullText int
	Date     int
	PostDate int
}

// ResolveColumns finds the Author, Full Text and Date columns in header.
// Matching ignores case, spaces and underscores.
func ResolveColumns(header []string) (ColumnIndex, error) {
	idx := ColumnIndex{Author: -1, FullText: -1, Date: -1, PostDate: -1}
	for i, name := range header {
		switch normalizeColumn(name) {
		case "author":
			idx.Author = i
		case "fulltext":
			idx.FullText = i
		case "date":
			idx.Date = i
		case "tweetdate":
			idx.PostDate = i
		}
	}

	var missing []string
	if idx.Author < 0 {
		missing = append(missing, "Author")
	}
	if idx.FullText < 0 {
		missing = append(missing, "Full Text")
	}
	if idx.Date < 0 {
		missing = append(missing, "Date")
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

func normalizeColumn(name string) string {
	name = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
	return strings.NewReplacer(" ", "", "_", "").Replace(strings.ToLower(name))
}

// Table renders the dataset as a header plus rows of strings, appending the
// derived day column when the header does not already carry one. Raw row
// values are preserved; the known columns are refreshed from the record.
func (d Dataset) Table() ([]string, [][]string) {
	columns := d.Columns
	idx, err := ResolveColumns(columns)
	if err != nil {
		columns = DefaultColumns
		idx, _ = ResolveColumns(columns)
	}

	header := slices.Clone(columns)
	if idx.PostDate < 0 {
		idx.PostDate = len(header)
		header = append(header, PostDateColumn)
	}

	rows := make([][]string, 0, len(d.Records))
	for _, r := range d.Records {
		row := make([]string, len(header))
		if len(r.Row) == len(columns) {
			copy(row, r.Row)
		}
		row[idx.Author] = r.Author
		row[idx.FullText] = r.FullText
		if row[idx.Date] == "" && !r.Timestamp.IsZero() {
			row[idx.Date] = r.Timestamp.Format(TimestampLayout)
		}
		row[idx.PostDate] = r.PostDate.String()
		rows = append(rows, row)
	}
	return header, rows
}
