package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppliedTxCache_MarkAndCheck(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewAppliedTxCache(client)
	ctx := context.Background()

	applied, err := cache.IsApplied(ctx, "tx1")
	require.NoError(t, err)
	assert.False(t, applied)

	require.NoError(t, cache.MarkApplied(ctx, "tx1", time.Hour))

	applied, err = cache.IsApplied(ctx, "tx1")
	require.NoError(t, err)
	assert.True(t, applied)

	// Other transactions are unaffected.
	applied, err = cache.IsApplied(ctx, "tx2")
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestAppliedTxCache_Clear(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewAppliedTxCache(client)
	ctx := context.Background()

	require.NoError(t, cache.MarkApplied(ctx, "tx1", time.Hour))
	require.NoError(t, cache.Clear(ctx, "tx1"))

	applied, err := cache.IsApplied(ctx, "tx1")
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestAppliedTxCache_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewAppliedTxCache(client)
	ctx := context.Background()

	require.NoError(t, cache.MarkApplied(ctx, "tx1", time.Minute))

	s.FastForward(2 * time.Minute)

	applied, err := cache.IsApplied(ctx, "tx1")
	require.NoError(t, err)
	assert.False(t, applied)
}
