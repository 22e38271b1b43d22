package sink

import (
	"context"
	"slices"
	"sync"

	"github.com/mikey/tweet-spam-sweeper/internal/core"
	"go.uber.org/zap"
)

// MemorySink keeps saved datasets in memory. It backs dry runs and tests.
type MemorySink struct {
	saved  []core.Dataset
	mu     sync.RWMutex
	logger *zap.Logger
}

// NewMemorySink creates a new in-memory sink
func NewMemorySink(logger *zap.Logger) *MemorySink {
	return &MemorySink{
		logger: logger,
	}
}

// Save stores a copy of ds
func (s *MemorySink) Save(ctx context.Context, ds core.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.saved = append(s.saved, core.Dataset{
		Columns: slices.Clone(ds.Columns),
		Records: slices.Clone(ds.Records),
	})

	s.logger.Debug("Kept cleaned dataset in memory", zap.Int("records", ds.Len()))
	return nil
}

// Last returns the most recently saved dataset
func (s *MemorySink) Last() (core.Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.saved) == 0 {
		return core.Dataset{}, false
	}
	return s.saved[len(s.saved)-1], true
}

// Count returns how many datasets were saved
func (s *MemorySink) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.saved)
}
