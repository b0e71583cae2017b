package repos

import (
	"context"
	"time"

	"github.com/throttled/throttled/v2"

	"github.com/architeacher/devicedomains/internal/infrastructure"
)

const rateLimitKeyPrefix = "ratelimit:"

// RateLimitStore keeps GCRA limiter state in KeyDB/Redis so every replica
// shares one budget per client.
type RateLimitStore struct {
	client *infrastructure.KeydbClient
	prefix string
}

var _ throttled.GCRAStoreCtx = (*RateLimitStore)(nil)

func NewRateLimitStore(client *infrastructure.KeydbClient) *RateLimitStore {
	return &RateLimitStore{
		client: client,
		prefix: rateLimitKeyPrefix,
	}
}

func (s *RateLimitStore) GetWithTime(ctx context.Context, key string) (int64, time.Time, error) {
	return s.client.GetInt64(ctx, s.prefix+key)
}

func (s *RateLimitStore) SetIfNotExistsWithTTL(ctx context.Context, key string, value int64, ttl time.Duration) (bool, error) {
	return s.client.SetInt64NX(ctx, s.prefix+key, value, ttl)
}

func (s *RateLimitStore) CompareAndSwapWithTTL(ctx context.Context, key string, old, new int64, ttl time.Duration) (bool, error) {
	return s.client.CompareAndSwapInt64(ctx, s.prefix+key, old, new, ttl)
}
