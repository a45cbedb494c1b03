package state

import (
	"slices"
	"sync"
	"time"
)

// ListCache holds the result of the last list fetch until it is invalidated.
type ListCache[T any] struct {
	mu        sync.RWMutex
	items     []T
	valid     bool
	fetchedAt time.Time
	now       func() time.Time
}

func NewListCache[T any]() *ListCache[T] {
	return &ListCache[T]{now: time.Now}
}

// Get returns a copy of the cached items; ok is false when nothing valid is
// cached.
func (c *ListCache[T]) Get() (items []T, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.valid {
		return nil, false
	}
	return slices.Clone(c.items), true
}

func (c *ListCache[T]) Set(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = slices.Clone(items)
	c.valid = true
	c.fetchedAt = c.now()
}

// Invalidate marks the cache stale; the next reader must refetch.
func (c *ListCache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.valid = false
}

// FetchedAt reports when the cache was last filled. Zero if never.
func (c *ListCache[T]) FetchedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fetchedAt
}
