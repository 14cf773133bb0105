package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/questdeckhq/questdeck/internal/cache"
)

func TestSetGetDelete(t *testing.T) {
	c := cache.NewInMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	_, found := c.Get(ctx, "missing")
	assert.False(t, found)

	c.Set(ctx, "key", "value")
	got, found := c.Get(ctx, "key")
	assert.True(t, found)
	assert.Equal(t, "value", got)

	c.Delete(ctx, "key")
	_, found = c.Get(ctx, "key")
	assert.False(t, found)
}

func TestExpiry(t *testing.T) {
	c := cache.NewInMemoryCache(10*time.Millisecond, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "key", "value")
	_, found := c.Get(ctx, "key")
	assert.True(t, found)

	time.Sleep(20 * time.Millisecond)

	_, found = c.Get(ctx, "key")
	assert.False(t, found, "expired entries must not be served")
}

func TestOverwriteResetsTTL(t *testing.T) {
	c := cache.NewInMemoryCache(30*time.Millisecond, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "key", "one")
	time.Sleep(20 * time.Millisecond)
	c.Set(ctx, "key", "two")
	time.Sleep(20 * time.Millisecond)

	got, found := c.Get(ctx, "key")
	assert.True(t, found)
	assert.Equal(t, "two", got)
}

func TestStopCleanupIsIdempotent(t *testing.T) {
	c := cache.NewInMemoryCache(time.Minute, time.Millisecond)
	c.StartCleanup(context.Background())
	c.StopCleanup()
	c.StopCleanup()
}
