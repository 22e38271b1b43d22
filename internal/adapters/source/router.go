package source

import (
	"context"
	"io"
	"strings"

	"github.com/mikey/tweet-spam-sweeper/internal/ports"
)

// Router dispatches a location to the source registered for its scheme.
// Locations without a scheme go to the fallback source.
type Router struct {
	fallback ports.Source
	schemes  map[string]ports.Source
}

// NewRouter creates a router that uses fallback for plain paths
func NewRouter(fallback ports.Source) *Router {
	return &Router{
		fallback: fallback,
		schemes:  make(map[string]ports.Source),
	}
}

// Register routes locations of the form scheme://... to src
func (r *Router) Register(scheme string, src ports.Source) {
	r.schemes[strings.ToLower(scheme)] = src
}

// Open opens location with the matching source
func (r *Router) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if scheme, _, ok := strings.Cut(location, "://"); ok {
		if src, found := r.schemes[strings.ToLower(scheme)]; found {
			return src.Open(ctx, location)
		}
	}
	return r.fallback.Open(ctx, location)
}
