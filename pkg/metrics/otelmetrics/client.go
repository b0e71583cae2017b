// Package otelmetrics implements metrics.Client on top of the OpenTelemetry
// metric SDK. Instruments are created lazily the first time a key is seen.
package otelmetrics

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.32.0"

	"github.com/architeacher/devicedomains/pkg/metrics"
)

const (
	meterName             = "github.com/architeacher/devicedomains"
	defaultExportInterval = 15 * time.Second
)

type (
	Config struct {
		ServiceName    string
		ServiceVersion string
		Endpoint       string
		Insecure       bool
		ExportInterval time.Duration
	}

	Client struct {
		provider *sdkmetric.MeterProvider
		meter    metric.Meter

		mu         sync.Mutex
		counters   map[string]metric.Int64Counter
		histograms map[string]metric.Float64Histogram
	}
)

var _ metrics.Client = (*Client)(nil)

// New exports measurements to an OTLP gRPC collector every ExportInterval.
func New(ctx context.Context, cfg Config) (*Client, error) {
	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}

	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
	}

	interval := cfg.ExportInterval
	if interval <= 0 {
		interval = defaultExportInterval
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics resource: %w", err)
	}

	return NewWithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval)), res), nil
}

// NewWithReader builds a client around an arbitrary reader.
func NewWithReader(reader sdkmetric.Reader, res *resource.Resource) *Client {
	opts := []sdkmetric.Option{sdkmetric.WithReader(reader)}
	if res != nil {
		opts = append(opts, sdkmetric.WithResource(res))
	}

	provider := sdkmetric.NewMeterProvider(opts...)

	return &Client{
		provider:   provider,
		meter:      provider.Meter(meterName),
		counters:   make(map[string]metric.Int64Counter),
		histograms: make(map[string]metric.Float64Histogram),
	}
}

func (c *Client) Inc(ctx context.Context, key string, value any, attributes ...attribute.KeyValue) {
	opt := metric.WithAttributes(attributes...)

	switch v := value.(type) {
	case int:
		c.add(ctx, key, int64(v), opt)
	case int64:
		c.add(ctx, key, v, opt)
	case uint64:
		c.add(ctx, key, int64(v), opt)
	case float64:
		c.observe(ctx, key, v, opt)
	case time.Duration:
		c.observe(ctx, key, v.Seconds(), opt)
	}
}

// Handler returns 404: measurements are pushed, there is nothing to scrape.
func (c *Client) Handler() http.Handler {
	return http.NotFoundHandler()
}

func (c *Client) Shutdown(ctx context.Context) error {
	return c.provider.Shutdown(ctx)
}

func (c *Client) add(ctx context.Context, key string, value int64, opt metric.AddOption) {
	c.mu.Lock()
	counter, ok := c.counters[key]
	if !ok {
		var err error

		counter, err = metrics.RegisterInt64Counter(c.meter, metrics.Descriptor{Unit: "1"}, key)
		if err != nil {
			c.mu.Unlock()

			return
		}

		c.counters[key] = counter
	}
	c.mu.Unlock()

	counter.Add(ctx, value, opt)
}

func (c *Client) observe(ctx context.Context, key string, value float64, opt metric.RecordOption) {
	c.mu.Lock()
	histogram, ok := c.histograms[key]
	if !ok {
		var err error

		histogram, err = metrics.RegisterFloat64Histogram(c.meter, metrics.Descriptor{Unit: "s"}, key)
		if err != nil {
			c.mu.Unlock()

			return
		}

		c.histograms[key] = histogram
	}
	c.mu.Unlock()

	histogram.Record(ctx, value, opt)
}
