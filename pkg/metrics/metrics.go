package metrics

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type (
	// Client records measurements by name. Integer values are added to a
	// counter, floating point values and durations land in a histogram.
	Client interface {
		Inc(ctx context.Context, key string, value any, attributes ...attribute.KeyValue)
		Handler() http.Handler
		Shutdown(ctx context.Context) error
	}

	// Descriptor defines metadata used when registering OTEL instruments.
	Descriptor struct {
		Description string
		Unit        string
	}
)

// RegisterInt64Counter creates an Int64 counter described by descriptor.
func RegisterInt64Counter(m metric.Meter, descriptor Descriptor, name string) (metric.Int64Counter, error) {
	return register(name, func() (metric.Int64Counter, error) {
		return m.Int64Counter(
			name,
			metric.WithDescription(descriptor.Description),
			metric.WithUnit(descriptor.Unit),
		)
	})
}

// RegisterFloat64Histogram creates a Float64 histogram described by descriptor.
func RegisterFloat64Histogram(m metric.Meter, descriptor Descriptor, name string) (metric.Float64Histogram, error) {
	return register(name, func() (metric.Float64Histogram, error) {
		return m.Float64Histogram(
			name,
			metric.WithDescription(descriptor.Description),
			metric.WithUnit(descriptor.Unit),
		)
	})
}

// RegisterInt64Gauge creates an Int64 gauge described by descriptor.
func RegisterInt64Gauge(m metric.Meter, descriptor Descriptor, name string) (metric.Int64Gauge, error) {
	return register(name, func() (metric.Int64Gauge, error) {
		return m.Int64Gauge(
			name,
			metric.WithDescription(descriptor.Description),
			metric.WithUnit(descriptor.Unit),
		)
	})
}

func register[I any](name string, create func() (I, error)) (I, error) {
	instrument, err := create()
	if err != nil {
		var zero I

		return zero, fmt.Errorf("failed to create %s instrument: %w", name, err)
	}

	return instrument, nil
}
