package config

import (
	"fmt"

	"github.com/mikey/tweet-spam-sweeper/internal/core"
)

// InputConfig represents where the tweet export is read from
type InputConfig struct {
	Path     string
	S3Region string
}

// SheetsConfig represents the Google Sheets destination
type SheetsConfig struct {
	SpreadsheetID   string
	CredentialsFile string
	SheetName       string
}

// OutputConfig represents where the cleaned dataset is written
type OutputConfig struct {
	Type       string
	Path       string
	SQLitePath string
	MySQLDSN   string
	Table      string
	Sheets     SheetsConfig
}

// DetectConfig represents the detection settings
type DetectConfig struct {
	Threshold int
	From      string
	To        string
	Allowlist []string
}

// CurateConfig represents manual edits applied after detection
type CurateConfig struct {
	Add    []string
	Remove []string
}

// ReviewConfig represents the candidate review settings
type ReviewConfig struct {
	Mode        string
	SampleLimit int
	PreviewSize int
	ChartDir    string
}

// GetInput returns the input configuration
func (c *Config) GetInput() InputConfig {
	return InputConfig{
		Path:     c.GetString("input.path"),
		S3Region: c.GetString("input.s3_region"),
	}
}

// GetOutput returns the output configuration
func (c *Config) GetOutput() OutputConfig {
	return OutputConfig{
		Type:       c.GetString("output.type"),
		Path:       c.GetString("output.path"),
		SQLitePath: c.GetString("output.sqlite_path"),
		MySQLDSN:   c.GetString("output.mysql_dsn"),
		Table:      c.GetString("output.table"),
		Sheets: SheetsConfig{
			SpreadsheetID:   c.GetString("output.sheets.spreadsheet_id"),
			CredentialsFile: c.GetString("output.sheets.credentials_file"),
			SheetName:       c.GetString("output.sheets.sheet_name"),
		},
	}
}

// GetDetect returns the detection configuration
func (c *Config) GetDetect() DetectConfig {
	return DetectConfig{
		Threshold: c.GetInt("detect.threshold"),
		From:      c.GetString("detect.from"),
		To:        c.GetString("detect.to"),
		Allowlist: c.GetStringSlice("detect.allowlist"),
	}
}

// GetCurate returns the curation configuration
func (c *Config) GetCurate() CurateConfig {
	return CurateConfig{
		Add:    c.GetStringSlice("curate.add"),
		Remove: c.GetStringSlice("curate.remove"),
	}
}

// GetReview returns the review configuration
func (c *Config) GetReview() ReviewConfig {
	return ReviewConfig{
		Mode:        c.GetString("review.mode"),
		SampleLimit: c.GetInt("review.sample_limit"),
		PreviewSize: c.GetInt("review.preview_size"),
		ChartDir:    c.GetString("review.chart_dir"),
	}
}

// DetectOptions converts the detection settings into core options. Empty
// bounds fall back to the dataset's own date range.
func (d DetectConfig) DetectOptions() (core.DetectOptions, error) {
	opts := core.DetectOptions{Threshold: d.Threshold}
	if opts.Threshold <= 0 {
		opts.Threshold = core.DefaultThreshold
	}

	if d.From != "" {
		from, err := core.ParseDay(d.From)
		if err != nil {
			return opts, fmt.Errorf("invalid detect.from: %w", err)
		}
		opts.From = from
	}
	if d.To != "" {
		to, err := core.ParseDay(d.To)
		if err != nil {
			return opts, fmt.Errorf("invalid detect.to: %w", err)
		}
		opts.To = to
	}
	if !opts.From.IsZero() && !opts.To.IsZero() && opts.To.Before(opts.From) {
		return opts, fmt.Errorf("detect.to %s is before detect.from %s", opts.To, opts.From)
	}

	return opts, nil
}
