//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

//counterfeiter:generate -o ../mocks/device_domains_cache.go . DeviceDomainsCache
//counterfeiter:generate -o ../mocks/idempotency_cache.go . IdempotencyCache

import (
	"context"
	"time"

	"github.com/architeacher/devicedomains/internal/domain/model"
)

type (
	// CachedResponse is a stored HTTP response replayed for a repeated
	// Idempotency-Key.
	CachedResponse struct {
		StatusCode  int               `json:"status_code"`
		Headers     map[string]string `json:"headers"`
		Body        []byte            `json:"body"`
		Fingerprint string            `json:"fingerprint"`
		CreatedAt   time.Time         `json:"created_at"`
	}

	IdempotencyCache interface {
		// Get returns nil, nil when nothing is stored under key.
		Get(ctx context.Context, key string) (*CachedResponse, error)
		Set(ctx context.Context, key string, response *CachedResponse, ttl time.Duration) error
		// SetLock reports false when another request already holds the lock.
		SetLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
		ReleaseLock(ctx context.Context, key string) error
	}

	DeviceDomainsCache interface {
		// GetDeviceDomain reports a miss with a nil record and no error.
		GetDeviceDomain(ctx context.Context, id model.DeviceDomainID) (*model.DeviceDomain, error)
		SetDeviceDomain(ctx context.Context, deviceDomain *model.DeviceDomain, ttl time.Duration) error
		InvalidateDeviceDomain(ctx context.Context, id model.DeviceDomainID) error
	}
)
