package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/architeacher/devicedomains/pkg/metrics"
)

const (
	httpMethodKey     = "http.method"
	httpRouteKey      = "http.route"
	httpStatusCodeKey = "http.status_code"

	httpRequestTotal    = "http_requests_total"
	httpRequestDuration = "http_request_duration_seconds"
	httpRequestSize     = "http_request_size_bytes"
	httpResponseSize    = "http_response_size_bytes"
)

type MetricsMiddleware struct {
	metricsClient metrics.Client
}

func NewMetricsMiddleware(metricsClient metrics.Client) *MetricsMiddleware {
	return &MetricsMiddleware{metricsClient: metricsClient}
}

func (m *MetricsMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := NewStatusRecorder(w)

		next.ServeHTTP(wrapped, r)

		m.record(r.Context(), r.Method, routePattern(r), wrapped.StatusCode(), time.Since(start),
			clampToInt64(r.ContentLength), int64(wrapped.BytesWritten()))
	})
}

func (m *MetricsMiddleware) record(
	ctx context.Context,
	method, route string,
	statusCode int,
	duration time.Duration,
	requestSize, responseSize int64,
) {
	attrs := []attribute.KeyValue{
		attribute.String(httpMethodKey, method),
		attribute.String(httpRouteKey, route),
		attribute.String(httpStatusCodeKey, strconv.Itoa(statusCode)),
	}

	m.metricsClient.Inc(ctx, httpRequestTotal, int64(1), attrs...)
	m.metricsClient.Inc(ctx, httpRequestDuration, duration.Seconds(), attrs...)
	m.metricsClient.Inc(ctx, httpRequestSize, requestSize, attrs[:2]...)
	m.metricsClient.Inc(ctx, httpResponseSize, responseSize, attrs...)
}

// routePattern keeps label cardinality bounded by reporting the matched chi
// pattern instead of the raw path.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}

	return "unmatched"
}

func clampToInt64(value int64) int64 {
	if value > 0 {
		return value
	}

	return 0
}
