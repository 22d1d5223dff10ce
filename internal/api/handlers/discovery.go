package handlers

import (
	"log/slog"
	"time"

	"github.com/clareta27/vinyl-backend/internal/engine"
)

const defaultTrendingLimit = 20

// DiscoveryHandler exposes the engine operations over HTTP.
type DiscoveryHandler struct {
	svc           engine.Discovery
	log           *slog.Logger
	trendingLimit int
	nowFunc       func() time.Time
}

// DiscoveryOption configures the DiscoveryHandler.
type DiscoveryOption func(*DiscoveryHandler)

// WithLogger sets the logger used for failed operations.
func WithLogger(l *slog.Logger) DiscoveryOption {
	return func(h *DiscoveryHandler) {
		h.log = l
	}
}

// WithTrendingLimit sets the trending size used when the caller omits limit.
func WithTrendingLimit(n int) DiscoveryOption {
	return func(h *DiscoveryHandler) {
		if n > 0 {
			h.trendingLimit = n
		}
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) DiscoveryOption {
	return func(h *DiscoveryHandler) {
		h.nowFunc = f
	}
}

// NewDiscoveryHandler creates a new DiscoveryHandler.
func NewDiscoveryHandler(svc engine.Discovery, opts ...DiscoveryOption) *DiscoveryHandler {
	h := &DiscoveryHandler{
		svc:           svc,
		log:           slog.Default(),
		trendingLimit: defaultTrendingLimit,
		nowFunc:       time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
