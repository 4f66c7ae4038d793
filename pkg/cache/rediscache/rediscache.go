// Package rediscache implements cache.Cache on top of Redis so that several
// server replicas share one cached copy and one invalidation.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/asakaida/prodattr/pkg/cache"
	"github.com/redis/go-redis/v9"
)

// Cache stores JSON-encoded values in Redis.
type Cache[V any] struct {
	client redis.UniversalClient
	prefix string

	hits      atomic.Uint64
	misses    atomic.Uint64
	keysAdded atomic.Uint64
}

// New creates a Redis-backed cache. Every key is stored under prefix.
func New[V any](client redis.UniversalClient, prefix string) *Cache[V] {
	return &Cache[V]{client: client, prefix: prefix}
}

// Get retrieves and decodes a value. Redis and decoding errors count as misses.
func (c *Cache[V]) Get(ctx context.Context, key string) (V, bool) {
	var value V

	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		c.misses.Add(1)
		return value, false
	}
	if err := json.Unmarshal(data, &value); err != nil {
		c.misses.Add(1)
		var zero V
		return zero, false
	}

	c.hits.Add(1)
	return value, true
}

// Set encodes value as JSON and stores it with TTL.
func (c *Cache[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	if err := c.client.Set(ctx, c.key(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache value: %w", err)
	}
	c.keysAdded.Add(1)
	return nil
}

// Delete removes a value from cache.
func (c *Cache[V]) Delete(ctx context.Context, key string) error {
	err := c.client.Del(ctx, c.key(key)).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to delete cache value: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (c *Cache[V]) Close() error {
	return c.client.Close()
}

// Metrics returns statistics observed by this process.
func (c *Cache[V]) Metrics() *cache.Metrics {
	return &cache.Metrics{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		KeysAdded: c.keysAdded.Load(),
	}
}

func (c *Cache[V]) key(key string) string {
	return c.prefix + key
}
