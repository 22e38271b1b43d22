package review

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mikey/tweet-spam-sweeper/internal/core"
	"github.com/mikey/tweet-spam-sweeper/internal/utils"
	"go.uber.org/zap"
)

// CliReviewer walks an operator through each candidate and asks whether to
// keep it. Pressing enter keeps the candidate.
type CliReviewer struct {
	in          *bufio.Reader
	out         io.Writer
	reporter    *Reporter
	logger      *zap.Logger
	sampleLimit int
	chartDir    string
}

// NewCliReviewer creates a new interactive reviewer
func NewCliReviewer(in io.Reader, out io.Writer, text *utils.TextProcessor, logger *zap.Logger, sampleLimit, previewSize int) *CliReviewer {
	return &CliReviewer{
		in:          bufio.NewReader(in),
		out:         out,
		reporter:    NewReporter(out, text, previewSize),
		logger:      logger,
		sampleLimit: sampleLimit,
	}
}

// WithChartDir makes the reviewer render a daily chart per candidate into dir
func (r *CliReviewer) WithChartDir(dir string) *CliReviewer {
	r.chartDir = dir
	return r
}

// Review shows each candidate's activity and drops the ones the operator
// rejects. When input ends, remaining candidates are kept.
func (r *CliReviewer) Review(ctx context.Context, ds core.Dataset, candidates core.SpammerList) (core.SpammerList, error) {
	list := candidates
	authors := candidates.Authors()

	for i, author := range authors {
		if err := ctx.Err(); err != nil {
			return list, err
		}

		fmt.Fprintf(r.out, "\n%s\n", r.reporter.styles.Subtle.Render(fmt.Sprintf("[%d/%d]", i+1, len(authors))))
		r.show(ds, author)

		keep, err := r.ask(author)
		if errors.Is(err, io.EOF) {
			r.logger.Info("Review input closed, keeping remaining candidates",
				zap.Int("remaining", len(authors)-i))
			return list, nil
		}
		if err != nil {
			return list, fmt.Errorf("failed to read answer: %w", err)
		}

		if !keep {
			list, _ = core.Remove(list, author)
			r.logger.Info("Candidate rejected during review", zap.String("author", author))
		}
	}

	return list, nil
}

func (r *CliReviewer) show(ds core.Dataset, author string) {
	counts := core.DailyCounts(ds, author)
	r.reporter.Daily(author, counts)

	if r.chartDir != "" {
		path, err := WriteDailyChart(r.chartDir, author, counts)
		if err != nil {
			r.logger.Warn("Failed to write daily chart", zap.String("author", author), zap.Error(err))
		} else {
			fmt.Fprintln(r.out, r.reporter.styles.Subtle.Render("Chart: "+path))
		}
	}

	peak, ok := core.PeakDay(counts)
	if !ok {
		return
	}
	samples := core.SampleContent(ds, author, peak.Date, core.SampleHead, r.sampleLimit)
	r.reporter.Samples(author, peak.Date, core.SampleHead, samples)
}

func (r *CliReviewer) ask(author string) (bool, error) {
	for {
		fmt.Fprint(r.out, r.reporter.styles.Prompt.Render(
			fmt.Sprintf("Keep %s in the spammer list? [Y/n]", author))+" ")

		line, err := r.in.ReadString('\n')
		if err != nil && line == "" {
			return true, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		if err != nil {
			return true, err
		}
		fmt.Fprintln(r.out, r.reporter.styles.Warning.Render("Please answer y or n"))
	}
}
