package repos_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"github.com/throttled/throttled/v2"

	"github.com/architeacher/devicedomains/internal/adapters/repos"
)

func TestRateLimitStore_RawOperations(t *testing.T) {
	t.Parallel()

	miniRedis := miniredis.RunT(t)
	client := newKeydbClient(miniRedis.Addr())
	t.Cleanup(func() { _ = client.Close() })

	store := repos.NewRateLimitStore(client)
	ctx := context.Background()

	value, _, err := store.GetWithTime(ctx, "client-a")
	require.NoError(t, err)
	require.Equal(t, int64(-1), value)

	set, err := store.SetIfNotExistsWithTTL(ctx, "client-a", 10, time.Minute)
	require.NoError(t, err)
	require.True(t, set)
	require.True(t, miniRedis.Exists("ratelimit:client-a"))

	set, err = store.SetIfNotExistsWithTTL(ctx, "client-a", 20, time.Minute)
	require.NoError(t, err)
	require.False(t, set)

	swapped, err := store.CompareAndSwapWithTTL(ctx, "client-a", 99, 30, time.Minute)
	require.NoError(t, err)
	require.False(t, swapped)

	swapped, err = store.CompareAndSwapWithTTL(ctx, "client-a", 10, 30, time.Minute)
	require.NoError(t, err)
	require.True(t, swapped)

	value, _, err = store.GetWithTime(ctx, "client-a")
	require.NoError(t, err)
	require.Equal(t, int64(30), value)
}

func TestRateLimitStore_WithGCRALimiter(t *testing.T) {
	t.Parallel()

	miniRedis := miniredis.RunT(t)
	client := newKeydbClient(miniRedis.Addr())
	t.Cleanup(func() { _ = client.Close() })

	limiter, err := throttled.NewGCRARateLimiterCtx(repos.NewRateLimitStore(client), throttled.RateQuota{
		MaxRate:  throttled.PerMin(1),
		MaxBurst: 0,
	})
	require.NoError(t, err)

	ctx := context.Background()

	limited, _, err := limiter.RateLimitCtx(ctx, "203.0.113.7", 1)
	require.NoError(t, err)
	require.False(t, limited)

	limited, result, err := limiter.RateLimitCtx(ctx, "203.0.113.7", 1)
	require.NoError(t, err)
	require.True(t, limited)
	require.Positive(t, result.RetryAfter)

	limited, _, err = limiter.RateLimitCtx(ctx, "198.51.100.1", 1)
	require.NoError(t, err)
	require.False(t, limited, "budgets are per key")
}
