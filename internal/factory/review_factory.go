package factory

import (
	"fmt"
	"io"
	"os"

	"github.com/mikey/tweet-spam-sweeper/internal/adapters/review"
	"github.com/mikey/tweet-spam-sweeper/internal/adapters/source"
	"github.com/mikey/tweet-spam-sweeper/internal/config"
	"github.com/mikey/tweet-spam-sweeper/internal/core"
	"github.com/mikey/tweet-spam-sweeper/internal/utils"
	"go.uber.org/zap"
)

// ReviewFactory creates candidate reviewers based on configuration
type ReviewFactory struct {
	cfg    *config.Config
	logger *zap.Logger
	text   *utils.TextProcessor
	in     io.Reader
	out    io.Writer
}

// NewReviewFactory creates a new review factory using the process's
// standard streams
func NewReviewFactory(cfg *config.Config, logger *zap.Logger, text *utils.TextProcessor) *ReviewFactory {
	return &ReviewFactory{
		cfg:    cfg,
		logger: logger,
		text:   text,
		in:     os.Stdin,
		out:    os.Stderr,
	}
}

// CreateReviewer creates a reviewer for review.mode. Interactive review
// reads answers from stdin, so it cannot be combined with a stdin export.
func (f *ReviewFactory) CreateReviewer() (core.Reviewer, error) {
	rc := f.cfg.GetReview()

	switch rc.Mode {
	case "auto", "":
		return review.NewAutoReviewer(f.logger), nil
	case "cli":
		if f.cfg.GetInput().Path == source.StdinLocation {
			return nil, fmt.Errorf("cli review reads answers from stdin and cannot be used with input %q", source.StdinLocation)
		}
		return review.NewCliReviewer(f.in, f.out, f.text, f.logger, rc.SampleLimit, rc.PreviewSize).
			WithChartDir(rc.ChartDir), nil
	default:
		return nil, fmt.Errorf("unsupported review mode: %s", rc.Mode)
	}
}

// CreateReporter creates a reporter for inspection and summary output
func (f *ReviewFactory) CreateReporter() *review.Reporter {
	return review.NewReporter(f.out, f.text, f.cfg.GetReview().PreviewSize)
}
