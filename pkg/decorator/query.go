package decorator

import (
	"context"

	otelTrace "go.opentelemetry.io/otel/trace"

	"github.com/architeacher/devicedomains/pkg/logger"
	"github.com/architeacher/devicedomains/pkg/metrics"
)

type (
	Query  any
	Result any

	QueryHandler[Q Query, R Result] interface {
		Execute(ctx context.Context, query Q) (R, error)
	}

	// QueryHandlerFunc lets a plain function serve as a QueryHandler.
	QueryHandlerFunc[Q Query, R Result] func(ctx context.Context, query Q) (R, error)

	// QueryOption wraps the bare handler before the observability layers are
	// applied, so whatever it adds runs inside the query span.
	QueryOption[Q Query, R Result] func(QueryHandler[Q, R]) QueryHandler[Q, R]
)

func (f QueryHandlerFunc[Q, R]) Execute(ctx context.Context, query Q) (R, error) {
	return f(ctx, query)
}

// WithQueryCache puts a read-through cache in front of the handler.
func WithQueryCache[Q Query, R Result](
	cache Cache[Q, R],
	config CacheConfig,
	metricsClient metrics.Client,
) QueryOption[Q, R] {
	return func(next QueryHandler[Q, R]) QueryHandler[Q, R] {
		return NewQueryCachingDecorator[Q, R](next, cache, config, metricsClient)
	}
}

// ApplyQueryDecorators returns handler wrapped, from the outside in, by the
// logging, metrics and tracing layers. Options are applied to handler first.
func ApplyQueryDecorators[Q Query, R Result](
	handler QueryHandler[Q, R],
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
	opts ...QueryOption[Q, R],
) QueryHandler[Q, R] {
	for _, opt := range opts {
		handler = opt(handler)
	}

	handler = queryTracingDecorator[Q, R]{base: handler, tracerProvider: tracerProvider}
	handler = queryMetricsDecorator[Q, R]{base: handler, client: metricsClient}

	return queryLoggingDecorator[Q, R]{base: handler, logger: log}
}
