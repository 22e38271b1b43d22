package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const export = "Author,Full Text,Date\n" +
	"bot,buy now,2021-09-01 10:00:00\n" +
	"bot,buy now,2021-09-01 10:01:00\n" +
	"bot,click here,2021-09-01 10:02:00\n" +
	"fan,love it,2021-09-01 11:00:00\n" +
	"fan,again,2021-09-02 11:00:00\n"

func writeExport(t *testing.T) string {
	t.Helper()
	t.Setenv("AWS_PROFILE", "does-not-exist")

	path := filepath.Join(t.TempDir(), "tweets.csv")
	require.NoError(t, os.WriteFile(path, []byte(export), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSweepCommand(t *testing.T) {
	input := writeExport(t)
	output := filepath.Join(t.TempDir(), "cleaned.csv")

	_, err := execute(t, "sweep", "--input", input, "--output", output, "--threshold", "3")
	require.NoError(t, err)

	b, err := os.ReadFile(output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Author,Full Text,Date,Tweet_Date", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "fan,"))
	assert.NotContains(t, string(b), "bot,")
}

func TestDetectCommand(t *testing.T) {
	input := writeExport(t)

	out, err := execute(t, "detect", "--input", input, "--threshold", "3")
	require.NoError(t, err)
	assert.Equal(t, "bot\n", out)
}

func TestSampleCommand_BadDate(t *testing.T) {
	input := writeExport(t)

	_, err := execute(t, "sample", "bot", "Sept 1", "--input", input)
	assert.Error(t, err)
}

func TestSweepCommand_MissingInput(t *testing.T) {
	writeExport(t)

	_, err := execute(t, "sweep", "--input", "", "--output-type", "none")
	assert.Error(t, err)
}

func TestSampleCommand_BadMode(t *testing.T) {
	input := writeExport(t)

	_, err := execute(t, "sample", "bot", "2021-09-01", "--mode", "middle", "--input", input)
	assert.Error(t, err)
}

func TestDailyCommand_Chart(t *testing.T) {
	input := writeExport(t)
	dir := t.TempDir()

	_, err := execute(t, "daily", "bot", "--input", input, "--chart", "--chart-dir", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "daily_bot.html"))
}

func TestSweepCommand_CliReviewWithStdin(t *testing.T) {
	writeExport(t)
	sweep, _, err := rootCmd.Find([]string{"sweep"})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sweep.Flags().Set("review", "auto")
		_ = sweep.Flags().Set("output-type", "csv")
		_ = rootCmd.PersistentFlags().Set("input", "")
	})

	_, err = execute(t, "sweep", "--input", "-", "--review", "cli", "--output-type", "none")
	assert.ErrorContains(t, err, "cannot be used with input")
}
