package sink

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikey/tweet-spam-sweeper/internal/core"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsSink publishes cleaned datasets to a Google Sheets tab
type SheetsSink struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
	logger        *zap.Logger
}

// NewSheetsSink authenticates with a service account credentials file
func NewSheetsSink(ctx context.Context, spreadsheetID, sheetName, credentialsFile string, logger *zap.Logger) (*SheetsSink, error) {
	if credentialsFile == "" {
		return nil, errors.New("sheets credentials file is required")
	}

	srv, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	return NewSheetsSinkWithService(srv, spreadsheetID, sheetName, logger)
}

// NewSheetsSinkWithService wraps an already configured Sheets service
func NewSheetsSinkWithService(srv *sheets.Service, spreadsheetID, sheetName string, logger *zap.Logger) (*SheetsSink, error) {
	if spreadsheetID == "" {
		return nil, errors.New("spreadsheet ID is required")
	}
	if sheetName == "" {
		sheetName = "Cleaned"
	}

	return &SheetsSink{
		service:       srv,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		logger:        logger,
	}, nil
}

// Save clears the tab and writes the header and rows of ds
func (s *SheetsSink) Save(ctx context.Context, ds core.Dataset) error {
	_, err := s.service.Spreadsheets.Values.
		Clear(s.spreadsheetID, s.sheetName, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to clear sheet: %w", err)
	}

	header, rows := ds.Table()
	values := make([][]any, 0, len(rows)+1)
	values = append(values, toCells(header))
	for _, row := range rows {
		values = append(values, toCells(row))
	}

	_, err = s.service.Spreadsheets.Values.
		Update(s.spreadsheetID, s.sheetName+"!A1", &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to write sheet: %w", err)
	}

	s.logger.Info("Saved cleaned dataset to Google Sheets",
		zap.String("spreadsheet_id", s.spreadsheetID),
		zap.String("sheet", s.sheetName),
		zap.Int("records", ds.Len()))
	return nil
}

func toCells(row []string) []any {
	cells := make([]any, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}
