package decorator

import (
	"context"
	"fmt"
	"time"

	"github.com/architeacher/devicedomains/pkg/metrics"
)

type (
	// CacheStatus is the outcome of a cached lookup, reported as a metric.
	CacheStatus string

	// CacheConfig holds configuration for the caching decorator.
	CacheConfig struct {
		Name    string
		Enabled bool
		TTL     time.Duration
	}

	CacheGetter[Q Query, R Result] interface {
		Get(ctx context.Context, query Q) (R, bool, error)
	}

	CacheSetter[Q Query, R Result] interface {
		Set(ctx context.Context, query Q, result R, ttl time.Duration) error
	}

	Cache[Q Query, R Result] interface {
		CacheGetter[Q, R]
		CacheSetter[Q, R]
	}

	queryCachingDecorator[Q Query, R Result] struct {
		base          QueryHandler[Q, R]
		cache         Cache[Q, R]
		config        CacheConfig
		metricsClient metrics.Client
	}
)

const (
	CacheStatusHit    CacheStatus = "hit"
	CacheStatusMiss   CacheStatus = "miss"
	CacheStatusBypass CacheStatus = "bypass"
	CacheStatusError  CacheStatus = "error"
)

// NewQueryCachingDecorator serves results from cache when possible and
// populates it on a miss. Cache failures never fail the query; the base
// handler answers instead.
func NewQueryCachingDecorator[Q Query, R Result](
	base QueryHandler[Q, R],
	cache Cache[Q, R],
	config CacheConfig,
	metricsClient metrics.Client,
) QueryHandler[Q, R] {
	return queryCachingDecorator[Q, R]{
		base:          base,
		cache:         cache,
		config:        config,
		metricsClient: metricsClient,
	}
}

func (d queryCachingDecorator[Q, R]) Execute(ctx context.Context, query Q) (R, error) {
	if !d.config.Enabled || d.cache == nil {
		d.report(ctx, CacheStatusBypass)

		return d.base.Execute(ctx, query)
	}

	cached, hit, err := d.cache.Get(ctx, query)

	switch {
	case err != nil:
		d.report(ctx, CacheStatusError)
	case hit:
		d.report(ctx, CacheStatusHit)

		return cached, nil
	default:
		d.report(ctx, CacheStatusMiss)
	}

	result, err := d.base.Execute(ctx, query)
	if err != nil {
		var zero R

		return zero, err
	}

	if setErr := d.cache.Set(ctx, query, result, d.config.TTL); setErr != nil {
		d.report(ctx, CacheStatusError)
	}

	return result, nil
}

func (d queryCachingDecorator[Q, R]) report(ctx context.Context, status CacheStatus) {
	if d.metricsClient == nil {
		return
	}

	name := d.config.Name
	if name == "" {
		name = generateActionName(d.base)
	}

	d.metricsClient.Inc(ctx, fmt.Sprintf("cache.%s.%s", name, status), int64(1))
}
