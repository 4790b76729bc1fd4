// ABOUTME: In-memory cache with TTL-based expiration
// ABOUTME: Generic and thread-safe, backed by sync.Map with periodic cleanup

package cache

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const cleanupInterval = 1 * time.Minute

type entry[T any] struct {
	data      T
	expiresAt time.Time
}

// Cache holds values of one type for a fixed TTL
type Cache[T any] struct {
	store sync.Map
	ttl   time.Duration
	size  atomic.Int64
}

// New creates a cache whose cleanup loop runs until ctx is done
func New[T any](ctx context.Context, ttl time.Duration) *Cache[T] {
	c := &Cache[T]{
		ttl: ttl,
	}
	go c.startCleanup(ctx)
	return c
}

func (c *Cache[T]) Get(key string) (T, bool) {
	var zero T
	val, ok := c.store.Load(key)
	if !ok {
		slog.Debug("Cache miss", "key", key)
		return zero, false
	}

	e := val.(entry[T])
	if time.Now().After(e.expiresAt) {
		c.delete(key)
		slog.Debug("Cache expired", "key", key)
		return zero, false
	}

	slog.Debug("Cache hit", "key", key)
	return e.data, true
}

func (c *Cache[T]) Set(key string, value T) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL
func (c *Cache[T]) SetWithTTL(key string, value T, ttl time.Duration) {
	e := entry[T]{
		data:      value,
		expiresAt: time.Now().Add(ttl),
	}
	if _, loaded := c.store.Swap(key, e); !loaded {
		c.size.Add(1)
	}
	slog.Debug("Cache set", "key", key, "ttl", ttl)
}

func (c *Cache[T]) Clear(key string) {
	c.delete(key)
}

// Len is the number of stored entries, including expired ones not yet swept
func (c *Cache[T]) Len() int {
	return int(c.size.Load())
}

func (c *Cache[T]) delete(key string) {
	if _, loaded := c.store.LoadAndDelete(key); loaded {
		c.size.Add(-1)
	}
}

func (c *Cache[T]) sweep(now time.Time) {
	c.store.Range(func(key, val any) bool {
		if now.After(val.(entry[T]).expiresAt) {
			c.delete(key.(string))
		}
		return true
	})
}

func (c *Cache[T]) startCleanup(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			c.sweep(now)
		}
	}
}
