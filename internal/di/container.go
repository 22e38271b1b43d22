package di

import (
	"context"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/tweet-spam-sweeper/internal/allowlist"
	"github.com/mikey/tweet-spam-sweeper/internal/config"
	"github.com/mikey/tweet-spam-sweeper/internal/core"
	"github.com/mikey/tweet-spam-sweeper/internal/factory"
)

// BuildContainer creates and configures a dependency injection container
// for the full sweep pipeline
func BuildContainer(ctx context.Context, cfg *config.Config) (*dig.Container, error) {
	container, err := BuildInspectContainer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewSinkFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewReviewFactory); err != nil {
		return nil, err
	}

	// Register dataset saver
	if err := container.Provide(func(ctx context.Context, f *factory.SinkFactory) (core.DatasetSaver, error) {
		return f.CreateSaver(ctx)
	}); err != nil {
		return nil, err
	}

	// Register reviewer
	if err := container.Provide(func(f *factory.ReviewFactory) (core.Reviewer, error) {
		return f.CreateReviewer()
	}); err != nil {
		return nil, err
	}

	// Register allowlist
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) core.CandidateFilter {
		return allowlist.NewChecker(cfg.GetDetect().Allowlist, logger)
	}); err != nil {
		return nil, err
	}

	// Register detection options
	if err := container.Provide(func(cfg *config.Config) (core.DetectOptions, error) {
		return cfg.GetDetect().DetectOptions()
	}); err != nil {
		return nil, err
	}

	// Register sweep service
	if err := container.Provide(core.NewSweepService); err != nil {
		return nil, err
	}

	return container, nil
}
