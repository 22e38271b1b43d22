package factory

import (
	"github.com/mikey/tweet-spam-sweeper/internal/adapters/source"
	"github.com/mikey/tweet-spam-sweeper/internal/config"
	"github.com/mikey/tweet-spam-sweeper/internal/ports"
	"go.uber.org/zap"
)

// SourceFactory creates the input source based on configuration
type SourceFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewSourceFactory creates a new source factory
func NewSourceFactory(cfg *config.Config, logger *zap.Logger) *SourceFactory {
	return &SourceFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateSource returns a router that reads local paths and stdin directly
// and s3://bucket/key locations through S3. AWS is not contacted until an
// s3:// location is opened.
func (f *SourceFactory) CreateSource() ports.Source {
	router := source.NewRouter(source.NewFileSource(f.logger))
	router.Register(source.S3Scheme, source.NewLazyS3Source(f.cfg.GetInput().S3Region, f.logger))
	return router
}
