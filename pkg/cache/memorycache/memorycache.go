package memorycache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/asakaida/prodattr/pkg/cache"
)

// entry represents a cache entry with value and metadata
type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
	size      int64
}

// Cache is a size-bounded LRU cache with per-entry TTL.
type Cache[V any] struct {
	mu sync.Mutex

	items     map[string]*list.Element
	evictList *list.List // front = most recent

	maxSize     int64
	currentSize int64
	sizeOf      func(key string, value V) int64
	now         func() time.Time

	metrics *cache.Metrics
}

// Config holds configuration for the memory cache.
type Config[V any] struct {
	// MaxSizeBytes is the maximum total estimated size of cached entries.
	// Least recently used entries are evicted when it is exceeded.
	MaxSizeBytes int64

	// SizeOf estimates the memory footprint of an entry.
	// Defaults to a flat 100 bytes plus the key length.
	SizeOf func(key string, value V) int64

	// EnableMetrics enables collection of cache metrics.
	EnableMetrics bool
}

// New creates a new memory cache with the given configuration.
func New[V any](config *Config[V]) *Cache[V] {
	c := &Cache[V]{
		items:     make(map[string]*list.Element),
		evictList: list.New(),
		maxSize:   config.MaxSizeBytes,
		sizeOf:    config.SizeOf,
		now:       time.Now,
	}
	if c.sizeOf == nil {
		c.sizeOf = func(key string, _ V) int64 { return int64(100 + len(key)) }
	}
	if config.EnableMetrics {
		c.metrics = &cache.Metrics{}
	}
	return c
}

// Get retrieves a value from cache.
func (c *Cache[V]) Get(ctx context.Context, key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	elem, ok := c.items[key]
	if !ok {
		c.recordMiss()
		return zero, false
	}

	ent := elem.Value.(*entry[V])
	if c.now().After(ent.expiresAt) {
		c.removeElement(elem)
		c.recordMiss()
		return zero, false
	}

	c.evictList.MoveToFront(elem)
	if c.metrics != nil {
		c.metrics.Hits++
	}
	return ent.value, true
}

// Set stores a value in cache with the specified TTL.
func (c *Cache[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	size := c.sizeOf(key, value)
	expiresAt := c.now().Add(ttl)

	if elem, ok := c.items[key]; ok {
		ent := elem.Value.(*entry[V])
		c.currentSize += size - ent.size
		ent.value = value
		ent.size = size
		ent.expiresAt = expiresAt
		c.evictList.MoveToFront(elem)
	} else {
		elem := c.evictList.PushFront(&entry[V]{key: key, value: value, expiresAt: expiresAt, size: size})
		c.items[key] = elem
		c.currentSize += size
		if c.metrics != nil {
			c.metrics.KeysAdded++
		}
	}

	for c.maxSize > 0 && c.currentSize > c.maxSize && c.evictList.Len() > 1 {
		c.removeElement(c.evictList.Back())
		if c.metrics != nil {
			c.metrics.KeysEvicted++
		}
	}

	return nil
}

// Delete removes a value from cache.
func (c *Cache[V]) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
	}
	return nil
}

// Close releases resources (no-op for memory cache).
func (c *Cache[V]) Close() error {
	return nil
}

// Metrics returns a snapshot of cache statistics.
func (c *Cache[V]) Metrics() *cache.Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.metrics == nil {
		return &cache.Metrics{}
	}
	snapshot := *c.metrics
	return &snapshot
}

// Len returns the current number of items in cache.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictList.Len()
}

// Size returns the current total estimated size in bytes.
func (c *Cache[V]) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentSize
}

func (c *Cache[V]) recordMiss() {
	if c.metrics != nil {
		c.metrics.Misses++
	}
}

// removeElement must be called with the lock held
func (c *Cache[V]) removeElement(elem *list.Element) {
	c.evictList.Remove(elem)
	ent := elem.Value.(*entry[V])
	delete(c.items, ent.key)
	c.currentSize -= ent.size
}
