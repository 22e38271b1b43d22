package review

import (
	"context"

	"github.com/mikey/tweet-spam-sweeper/internal/core"
	"go.uber.org/zap"
)

// AutoReviewer accepts the detected candidates as they are
type AutoReviewer struct {
	logger *zap.Logger
}

// NewAutoReviewer creates a new non-interactive reviewer
func NewAutoReviewer(logger *zap.Logger) *AutoReviewer {
	return &AutoReviewer{logger: logger}
}

// Review returns candidates unchanged
func (r *AutoReviewer) Review(ctx context.Context, _ core.Dataset, candidates core.SpammerList) (core.SpammerList, error) {
	if err := ctx.Err(); err != nil {
		return candidates, err
	}
	r.logger.Debug("Accepting candidates without review", zap.Int("candidates", candidates.Len()))
	return candidates, nil
}
