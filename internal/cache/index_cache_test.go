package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type page struct {
	Names []string `json:"names"`
}

func setupCache(t *testing.T, ttl time.Duration) (*IndexCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
	})

	return NewIndexCache(client, ttl), mr
}

func TestIndexCache_MissThenHit(t *testing.T) {
	c, _ := setupCache(t, time.Minute)
	ctx := context.Background()

	var got page
	version, err := c.Get(ctx, 1, 20, &got)
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, c.Set(ctx, version, 1, 20, page{Names: []string{"alice", "bob"}}))

	_, err = c.Get(ctx, 1, 20, &got)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, got.Names)

	// Other page sizes are separate entries.
	_, err = c.Get(ctx, 1, 10, &got)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestIndexCache_Invalidate(t *testing.T) {
	c, _ := setupCache(t, time.Minute)
	ctx := context.Background()

	var got page
	version, err := c.Get(ctx, 1, 20, &got)
	assert.ErrorIs(t, err, ErrMiss)
	require.NoError(t, c.Set(ctx, version, 1, 20, page{Names: []string{"alice"}}))
	require.NoError(t, c.Invalidate(ctx))

	next, err := c.Get(ctx, 1, 20, &got)
	assert.ErrorIs(t, err, ErrMiss)
	assert.Greater(t, next, version)

	require.NoError(t, c.Set(ctx, next, 1, 20, page{Names: []string{"bob"}}))
	_, err = c.Get(ctx, 1, 20, &got)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, got.Names)
}

func TestIndexCache_SetUnderSupersededVersionIsNeverRead(t *testing.T) {
	c, _ := setupCache(t, time.Minute)
	ctx := context.Background()

	var got page
	version, err := c.Get(ctx, 1, 20, &got)
	assert.ErrorIs(t, err, ErrMiss)

	// An invalidation lands while the page is being rebuilt.
	require.NoError(t, c.Invalidate(ctx))
	require.NoError(t, c.Set(ctx, version, 1, 20, page{Names: []string{"stale"}}))

	_, err = c.Get(ctx, 1, 20, &got)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestIndexCache_Expires(t *testing.T) {
	c, mr := setupCache(t, 30*time.Second)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 0, 2, 5, page{Names: []string{"carol"}}))
	mr.FastForward(31 * time.Second)

	var got page
	_, err := c.Get(ctx, 2, 5, &got)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestIndexCache_RedisDown(t *testing.T) {
	c, mr := setupCache(t, time.Minute)
	mr.Close()

	var got page
	_, err := c.Get(context.Background(), 1, 20, &got)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMiss)
}
