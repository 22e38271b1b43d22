package di

import (
	"context"
	"os"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/tweet-spam-sweeper/internal/adapters/csvio"
	"github.com/mikey/tweet-spam-sweeper/internal/adapters/review"
	"github.com/mikey/tweet-spam-sweeper/internal/config"
	"github.com/mikey/tweet-spam-sweeper/internal/core"
	"github.com/mikey/tweet-spam-sweeper/internal/factory"
	"github.com/mikey/tweet-spam-sweeper/internal/logging"
	"github.com/mikey/tweet-spam-sweeper/internal/ports"
	"github.com/mikey/tweet-spam-sweeper/internal/utils"
)

// BuildInspectContainer creates a container with what the read-only
// commands need: configuration, logging, the input source and the loader
func BuildInspectContainer(ctx context.Context, cfg *config.Config) (*dig.Container, error) {
	container := dig.New()

	// Register context and configuration
	if err := container.Provide(func() context.Context { return ctx }); err != nil {
		return nil, err
	}
	if err := container.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(utils.NewTextProcessor); err != nil {
		return nil, err
	}

	// Register input source
	if err := container.Provide(factory.NewSourceFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.SourceFactory) ports.Source {
		return f.CreateSource()
	}); err != nil {
		return nil, err
	}

	// Register dataset loader
	if err := container.Provide(func(src ports.Source, logger *zap.Logger) core.DatasetLoader {
		return csvio.NewLoader(src, logger)
	}); err != nil {
		return nil, err
	}

	// Register reporter for inspection output
	if err := container.Provide(func(cfg *config.Config, text *utils.TextProcessor) *review.Reporter {
		return review.NewReporter(os.Stdout, text, cfg.GetReview().PreviewSize)
	}); err != nil {
		return nil, err
	}

	return container, nil
}
