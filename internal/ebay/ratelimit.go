package ebay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/clareta27/vinyl-backend/internal/metrics"
)

// ErrDailyLimitReached is returned when the daily API call limit has been exhausted.
var ErrDailyLimitReached = errors.New("daily API limit reached")

const quotaWindow = 24 * time.Hour

// Quota is a point-in-time view of the daily call budget.
type Quota struct {
	Used      int64
	Limit     int64
	Remaining int64
	ResetAt   time.Time
}

// RateLimiter paces upstream calls with a token bucket and enforces a
// daily budget over a rolling 24-hour window. The window starts when the
// limiter is created and restarts on the first call after it lapses.
// A maxDaily of zero or less disables the daily budget.
type RateLimiter struct {
	limiter  *rate.Limiter
	maxDaily int64
	nowFunc  func() time.Time

	mu      sync.Mutex
	used    int64
	resetAt time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a rate limiter with the given per-second rate,
// burst size and daily limit.
func NewRateLimiter(
	perSecond float64,
	burst int,
	maxDaily int64,
	opts ...RateLimiterOption,
) *RateLimiter {
	r := &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nowFunc().Add(quotaWindow)
	return r
}

// Wait reserves one call from the daily budget and then blocks until the
// token bucket admits it or ctx is done. It returns ErrDailyLimitReached
// without blocking once the budget is spent.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.reserve(); err != nil {
		metrics.UpstreamDailyLimitHits.Inc()
		return err
	}

	if err := r.limiter.Wait(ctx); err != nil {
		r.release()
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

func (r *RateLimiter) reserve() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rollLocked()
	if r.maxDaily > 0 && r.used >= r.maxDaily {
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, r.used, r.maxDaily)
	}
	r.used++
	metrics.UpstreamDailyUsage.Set(float64(r.used))
	return nil
}

func (r *RateLimiter) release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.used > 0 {
		r.used--
		metrics.UpstreamDailyUsage.Set(float64(r.used))
	}
}

func (r *RateLimiter) rollLocked() {
	if now := r.nowFunc(); now.After(r.resetAt) {
		r.used = 0
		r.resetAt = now.Add(quotaWindow)
	}
}

// DailyCount returns the number of calls made in the current window.
func (r *RateLimiter) DailyCount() int64 {
	return r.Quota().Used
}

// Quota returns the current budget usage.
func (r *RateLimiter) Quota() Quota {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rollLocked()
	q := Quota{Used: r.used, Limit: r.maxDaily, ResetAt: r.resetAt}
	if r.maxDaily > 0 {
		q.Remaining = max(r.maxDaily-r.used, 0)
	}
	return q
}
