// Package cache provides the in-memory result cache used in front of the
// marketplace APIs. Entries carry their own TTL and are evicted lazily: an
// expired entry is removed by the lookup that finds it. There is no size
// bound and no background sweep.
package cache

import (
	"strings"
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a concurrency-safe key/value store with per-entry expiry.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	nowFunc func() time.Time
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	nowFunc func() time.Time
}

// WithNowFunc overrides the clock used for expiry decisions.
func WithNowFunc(f func() time.Time) Option {
	return func(o *options) {
		o.nowFunc = f
	}
}

// New creates an empty Cache.
func New[V any](opts ...Option) *Cache[V] {
	o := options{nowFunc: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[V]{
		entries: make(map[string]entry[V]),
		nowFunc: o.nowFunc,
	}
}

// Get returns the value stored under key. An expired entry is deleted and
// reported as absent.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return zero, false
	}

	now := c.nowFunc()
	if now.Before(e.expiresAt) {
		return e.value, true
	}

	c.mu.Lock()
	// Re-check under the write lock; a concurrent Set may have refreshed it.
	if cur, exists := c.entries[key]; exists && !now.Before(cur.expiresAt) {
		delete(c.entries, key)
	}
	c.mu.Unlock()

	return zero, false
}

// Set stores value under key for ttl. A non-positive ttl stores nothing.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	c.mu.Lock()
	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: c.nowFunc().Add(ttl),
	}
	c.mu.Unlock()
}

// Len returns the number of stored entries, expired ones included until
// their next lookup.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// BuildKey joins key parts with "|". Parts are used verbatim, so callers
// must not rely on "|" appearing inside a part.
func BuildKey(parts ...string) string {
	return strings.Join(parts, "|")
}
