package ports

import (
	"context"
	"io"
)

// Source defines the interface for opening raw export bytes by location
type Source interface {
	// Open returns a reader for location. The caller closes it.
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}
