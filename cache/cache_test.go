package cache

import (
	"context"
	"testing"
	"time"
)

func newTestCache[T any](t *testing.T, ttl time.Duration) *Cache[T] {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return New[T](ctx, ttl)
}

func TestCache_SetAndGet(t *testing.T) {
	c := newTestCache[string](t, 1*time.Second)

	c.Set("key1", "value1")

	val, found := c.Get("key1")
	if !found {
		t.Error("Expected to find key1")
	}
	if val != "value1" {
		t.Errorf("Expected value1, got %v", val)
	}
}

func TestCache_MissReturnsZeroValue(t *testing.T) {
	c := newTestCache[*int](t, 1*time.Second)

	val, found := c.Get("missing")
	if found {
		t.Error("Expected miss")
	}
	if val != nil {
		t.Errorf("Expected nil, got %v", val)
	}
}

func TestCache_Expiration(t *testing.T) {
	c := newTestCache[string](t, 100*time.Millisecond)

	c.Set("key1", "value1")

	// Should exist immediately
	_, found := c.Get("key1")
	if !found {
		t.Error("Expected to find key1 immediately")
	}

	// Wait for expiration
	time.Sleep(150 * time.Millisecond)

	_, found = c.Get("key1")
	if found {
		t.Error("Expected key1 to be expired")
	}
	if c.Len() != 0 {
		t.Errorf("Expected expired entry to be removed, got len %d", c.Len())
	}
}

func TestCache_SetWithTTL(t *testing.T) {
	c := newTestCache[int](t, 1*time.Hour)

	c.SetWithTTL("short", 1, 50*time.Millisecond)
	c.Set("long", 2)

	time.Sleep(100 * time.Millisecond)

	if _, found := c.Get("short"); found {
		t.Error("Expected short-lived key to be expired")
	}
	if v, found := c.Get("long"); !found || v != 2 {
		t.Errorf("Expected long=2, got %v (found=%v)", v, found)
	}
}

func TestCache_Clear(t *testing.T) {
	c := newTestCache[string](t, 1*time.Second)

	c.Set("key1", "value1")
	c.Clear("key1")

	_, found := c.Get("key1")
	if found {
		t.Error("Expected key1 to be cleared")
	}
}

func TestCache_LenCountsDistinctKeys(t *testing.T) {
	c := newTestCache[string](t, 1*time.Second)

	c.Set("a", "1")
	c.Set("a", "2")
	c.Set("b", "3")

	if c.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", c.Len())
	}
}

func TestCache_Sweep(t *testing.T) {
	c := newTestCache[string](t, 1*time.Second)

	c.SetWithTTL("old", "x", -time.Second)
	c.Set("fresh", "y")

	c.sweep(time.Now())

	if c.Len() != 1 {
		t.Errorf("Expected 1 entry after sweep, got %d", c.Len())
	}
}
