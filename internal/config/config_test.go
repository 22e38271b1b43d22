package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mikey/tweet-spam-sweeper/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	out := cfg.GetOutput()
	assert.Equal(t, "csv", out.Type)
	assert.Equal(t, "tweets", out.Table)
	assert.Equal(t, "Cleaned", out.Sheets.SheetName)

	assert.Equal(t, 10, cfg.GetDetect().Threshold)
	assert.Empty(t, cfg.GetDetect().Allowlist)
	assert.Equal(t, "auto", cfg.GetReview().Mode)
	assert.Equal(t, 5, cfg.GetReview().SampleLimit)
	assert.Equal(t, "us-east-1", cfg.GetInput().S3Region)
	assert.Equal(t, "console", cfg.GetString("logging.format"))
	assert.False(t, cfg.GetBool("logging.verbose"))
}

func TestGetBool_Env(t *testing.T) {
	t.Setenv("SPAM_SWEEPER_LOGGING_VERBOSE", "true")

	cfg := NewFromViper(NewEmptyViper())
	assert.True(t, cfg.GetBool("logging.verbose"))
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
input:
  path: s3://exports/tweets.csv
output:
  type: sqlite
  sqlite_path: /tmp/out.db
detect:
  threshold: 20
  from: "2021-09-01"
  allowlist: [nasa, esa]
curate:
  add: [bot1]
  remove: [fan]
review:
  mode: cli
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "s3://exports/tweets.csv", cfg.GetInput().Path)
	assert.Equal(t, "sqlite", cfg.GetOutput().Type)
	assert.Equal(t, "/tmp/out.db", cfg.GetOutput().SQLitePath)
	assert.Equal(t, []string{"nasa", "esa"}, cfg.GetDetect().Allowlist)
	assert.Equal(t, CurateConfig{Add: []string{"bot1"}, Remove: []string{"fan"}}, cfg.GetCurate())
	assert.Equal(t, "cli", cfg.GetReview().Mode)

	opts, err := cfg.GetDetect().DetectOptions()
	require.NoError(t, err)
	assert.Equal(t, 20, opts.Threshold)
	assert.Equal(t, "2021-09-01", opts.From.String())
	assert.True(t, opts.To.IsZero())
}

func TestNewFromFile_Missing(t *testing.T) {
	_, err := NewFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SPAM_SWEEPER_DETECT_THRESHOLD", "7")
	t.Setenv("SPAM_SWEEPER_OUTPUT_TYPE", "memory")

	cfg := NewFromViper(NewEmptyViper())
	assert.Equal(t, 7, cfg.GetDetect().Threshold)
	assert.Equal(t, "memory", cfg.GetOutput().Type)
}

func TestSetOverridesFile(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())
	cfg.Set("detect.threshold", 3)
	assert.Equal(t, 3, cfg.GetDetect().Threshold)
}

func TestDetectOptions(t *testing.T) {
	tests := []struct {
		name    string
		cfg     DetectConfig
		want    int
		wantErr bool
	}{
		{name: "zero threshold falls back", cfg: DetectConfig{}, want: core.DefaultThreshold},
		{name: "explicit threshold", cfg: DetectConfig{Threshold: 4}, want: 4},
		{name: "bad from", cfg: DetectConfig{From: "01/09/2021"}, wantErr: true},
		{name: "bad to", cfg: DetectConfig{To: "soon"}, wantErr: true},
		{name: "inverted window", cfg: DetectConfig{From: "2021-09-05", To: "2021-09-01"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := tt.cfg.DetectOptions()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, opts.Threshold)
		})
	}
}
