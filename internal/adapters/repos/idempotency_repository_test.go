package repos_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/architeacher/devicedomains/internal/adapters/repos"
	"github.com/architeacher/devicedomains/internal/ports"
	"github.com/architeacher/devicedomains/pkg/idempotency"
)

func TestIdempotencyRepository(t *testing.T) {
	t.Parallel()

	miniRedis := miniredis.RunT(t)
	client := newKeydbClient(miniRedis.Addr())
	t.Cleanup(func() { _ = client.Close() })

	repo := repos.NewIdempotencyRepository(client)
	ctx := context.Background()
	key := idempotency.BuildCacheKey(http.MethodPost, "/api/device-domain/", "key-1")

	t.Run("miss", func(t *testing.T) {
		got, err := repo.Get(ctx, key)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("stores the response", func(t *testing.T) {
		response := &ports.CachedResponse{
			StatusCode:  http.StatusOK,
			Headers:     map[string]string{"Content-Type": "application/json"},
			Body:        []byte(`{"id":1}`),
			Fingerprint: idempotency.Fingerprint([]byte(`{"name":"a"}`)),
			CreatedAt:   time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		}

		require.NoError(t, repo.Set(ctx, key, response, time.Hour))

		got, err := repo.Get(ctx, key)
		require.NoError(t, err)
		require.Equal(t, response, got)
		require.Equal(t, time.Hour, miniRedis.TTL(key))
	})

	t.Run("lock is exclusive until released", func(t *testing.T) {
		acquired, err := repo.SetLock(ctx, key, time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		acquired, err = repo.SetLock(ctx, key, time.Minute)
		require.NoError(t, err)
		require.False(t, acquired)

		require.NoError(t, repo.ReleaseLock(ctx, key))

		acquired, err = repo.SetLock(ctx, key, time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)
	})
}
