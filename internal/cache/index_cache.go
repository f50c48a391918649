// Package cache keeps rendered pages of the students index in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	indexKeyPrefix  = "users:index:"        // Page key: users:index:v{version}:{page}:{size}
	versionKey      = "users:index:version" // Bumped to orphan every cached page
	DefaultIndexTTL = 60 * time.Second
)

// ErrMiss is returned by Get when no page is cached.
var ErrMiss = errors.New("index cache miss")

// IndexCache stores index pages as JSON under a versioned key.
type IndexCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIndexCache creates an IndexCache. A non-positive ttl uses DefaultIndexTTL.
func NewIndexCache(client *redis.Client, ttl time.Duration) *IndexCache {
	if ttl <= 0 {
		ttl = DefaultIndexTTL
	}
	return &IndexCache{
		client: client,
		ttl:    ttl,
	}
}

// Get decodes the cached page into dest or returns ErrMiss. The returned
// version is the one the lookup ran against; a page rebuilt after a miss
// must be stored with Set under that version.
func (c *IndexCache) Get(ctx context.Context, page, size int, dest interface{}) (int64, error) {
	version, err := c.version(ctx)
	if err != nil {
		return 0, err
	}

	data, err := c.client.Get(ctx, pageKey(version, page, size)).Bytes()
	if err == redis.Nil {
		return version, ErrMiss
	}
	if err != nil {
		return version, fmt.Errorf("failed to get index page: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return version, fmt.Errorf("failed to unmarshal index page: %w", err)
	}
	return version, nil
}

// Set stores value as the cached page of the given version. A page built
// before an Invalidate lands under the superseded version and is never read.
func (c *IndexCache) Set(ctx context.Context, version int64, page, size int, value interface{}) error {
	key := pageKey(version, page, size)

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal index page: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set index page: %w", err)
	}
	return nil
}

// Invalidate drops every cached page by moving to a new key version.
// Old pages expire on their own.
func (c *IndexCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate index cache: %w", err)
	}
	return nil
}

func (c *IndexCache) version(ctx context.Context) (int64, error) {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil && err != redis.Nil {
		return 0, fmt.Errorf("failed to read index cache version: %w", err)
	}
	return version, nil
}

func pageKey(version int64, page, size int) string {
	return fmt.Sprintf("%sv%d:%d:%d", indexKeyPrefix, version, page, size)
}
