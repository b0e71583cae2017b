package otelmetrics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/architeacher/devicedomains/pkg/metrics/otelmetrics"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	byName := make(map[string]metricdata.Metrics)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			byName[m.Name] = m
		}
	}

	return byName
}

func TestClientInc(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	client := otelmetrics.NewWithReader(reader, nil)

	t.Cleanup(func() {
		_ = client.Shutdown(context.Background())
	})

	ctx := context.Background()
	attrs := attribute.String("http.method", "GET")

	client.Inc(ctx, "http_requests_total", int64(1), attrs)
	client.Inc(ctx, "http_requests_total", 2, attrs)
	client.Inc(ctx, "http_request_duration_seconds", 0.25, attrs)
	client.Inc(ctx, "http_request_duration_seconds", 500*time.Millisecond, attrs)
	client.Inc(ctx, "ignored", "not a number")

	got := collect(t, reader)

	sum, ok := got["http_requests_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	require.Equal(t, int64(3), sum.DataPoints[0].Value)

	histogram, ok := got["http_request_duration_seconds"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, histogram.DataPoints, 1)
	require.Equal(t, uint64(2), histogram.DataPoints[0].Count)
	require.InDelta(t, 0.75, histogram.DataPoints[0].Sum, 1e-9)

	require.NotContains(t, got, "ignored")
}
