package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// StdinLocation makes the file source read from standard input
const StdinLocation = "-"

// FileSource opens exports from the local filesystem
type FileSource struct {
	logger *zap.Logger
	stdin  io.Reader
}

// NewFileSource creates a new file source
func NewFileSource(logger *zap.Logger) *FileSource {
	return &FileSource{
		logger: logger,
		stdin:  os.Stdin,
	}
}

// Open opens the file at location, or stdin for "-"
func (s *FileSource) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if location == StdinLocation {
		s.logger.Debug("Reading dataset from stdin")
		return io.NopCloser(s.stdin), nil
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	s.logger.Debug("Reading dataset from file", zap.String("file", location))
	return f, nil
}
