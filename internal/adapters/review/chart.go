package review

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/mikey/tweet-spam-sweeper/internal/core"
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// DailyChart builds a bar chart of an author's posts per day
func DailyChart(author string, counts []core.DateCount) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Daily posts",
			Subtitle: author,
		}),
	)

	days := make([]string, 0, len(counts))
	data := make([]opts.BarData, 0, len(counts))
	for _, c := range counts {
		days = append(days, c.Date.String())
		data = append(data, opts.BarData{Value: c.Count})
	}
	bar.SetXAxis(days).AddSeries("Posts", data)

	return bar
}

// RenderDailyChart writes the chart page for author to w
func RenderDailyChart(w io.Writer, author string, counts []core.DateCount) error {
	return DailyChart(author, counts).Render(w)
}

// WriteDailyChart renders the chart into dir and returns the file path
func WriteDailyChart(dir, author string, counts []core.DateCount) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create chart directory: %w", err)
	}

	path := filepath.Join(dir, "daily_"+unsafeFileChars.ReplaceAllString(author, "_")+".html")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := RenderDailyChart(f, author, counts); err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	return path, nil
}
