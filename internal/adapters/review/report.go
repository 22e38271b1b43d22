package review

import (
	"fmt"
	"io"
	"strings"

	"github.com/mikey/tweet-spam-sweeper/internal/core"
	"github.com/mikey/tweet-spam-sweeper/internal/utils"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Reporter prints inspection tables and sweep summaries for humans
type Reporter struct {
	out         io.Writer
	styles      Styles
	printer     *message.Printer
	text        *utils.TextProcessor
	previewSize int
}

// NewReporter creates a reporter writing to out. Sample texts are folded
// and cut to previewSize runes.
func NewReporter(out io.Writer, text *utils.TextProcessor, previewSize int) *Reporter {
	return &Reporter{
		out:         out,
		styles:      NewStyles(out),
		printer:     message.NewPrinter(language.English),
		text:        text,
		previewSize: previewSize,
	}
}

// Daily prints an author's per-day post counts and marks the peak day
func (r *Reporter) Daily(author string, counts []core.DateCount) {
	fmt.Fprintln(r.out, r.styles.Title.Render("Daily posts for "+author))

	if len(counts) == 0 {
		fmt.Fprintln(r.out, r.styles.Subtle.Render("No posts found"))
		return
	}

	peak, _ := core.PeakDay(counts)
	total := 0
	for _, c := range counts {
		total += c.Count
		line := c.Date.String() + " " + r.styles.Count.Render(r.printer.Sprintf("%d", c.Count))
		if c.Date == peak.Date {
			line += " " + r.styles.Warning.Render("peak")
		}
		fmt.Fprintln(r.out, line)
	}

	fmt.Fprintln(r.out, r.styles.Subtle.Render(
		r.printer.Sprintf("%d posts over %d days", total, len(counts))))
}

// Samples prints the ranked texts an author posted on one day
func (r *Reporter) Samples(author string, day core.Day, mode core.SampleMode, samples []core.TextCount) {
	fmt.Fprintln(r.out, r.styles.Title.Render(
		fmt.Sprintf("Content posted by %s on %s (%s)", author, day, mode)))

	if len(samples) == 0 {
		fmt.Fprintln(r.out, r.styles.Subtle.Render("No posts found"))
		return
	}

	for _, s := range samples {
		fmt.Fprintln(r.out, r.styles.Count.Render(r.printer.Sprintf("%dx", s.Count))+"  "+
			r.text.Preview(s.Text, r.previewSize))
	}
}

// Summary prints the outcome of a sweep
func (r *Reporter) Summary(result *core.SweepResult) {
	fmt.Fprintln(r.out, r.styles.Title.Render("Sweep summary"))

	r.row("Loaded", r.printer.Sprintf("%d tweets", result.Loaded))
	if result.Skipped > 0 {
		r.row("Skipped", r.styles.Warning.Render(r.printer.Sprintf("%d malformed rows", result.Skipped)))
	}
	r.row("Candidates", r.printer.Sprintf("%d", result.Candidates.Len()))
	r.row("Spammers", strings.Join(result.Final.Authors(), ", "))
	if len(result.MissingRemovals) > 0 {
		r.row("Not listed", r.styles.Warning.Render(strings.Join(result.MissingRemovals, ", ")))
	}

	before, after := result.Report.Before, result.Report.After
	r.row("Before", r.printer.Sprintf("%d tweets, %d authors, ratio %s",
		before.Tweets, before.Authors, core.FormatRatio(before)))
	r.row("After", r.printer.Sprintf("%d tweets, %d authors, ratio %s",
		after.Tweets, after.Authors, core.FormatRatio(after)))
	r.row("Removed", r.printer.Sprintf("%d tweets", result.Report.Removed()))

	if result.Saved {
		r.row("Saved", r.styles.Success.Render("yes"))
	} else {
		r.row("Saved", r.styles.Subtle.Render("no"))
	}
}

func (r *Reporter) row(label, value string) {
	fmt.Fprintf(r.out, "%s %s\n", r.styles.Header.Render(fmt.Sprintf("%-11s", label+":")), value)
}
