package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/architeacher/devicedomains/pkg/logger"
)

type skipAccessLogKey struct{}

var healthEndpoints = []string{
	"/health",
	"/health/liveness",
	"/health/readiness",
}

// HealthCheckFilter marks probe requests so AccessLogger stays quiet about
// them unless logHealthChecks is set.
type HealthCheckFilter struct {
	logHealthChecks bool
}

func NewHealthCheckFilter(logHealthChecks bool) *HealthCheckFilter {
	return &HealthCheckFilter{logHealthChecks: logHealthChecks}
}

func (h *HealthCheckFilter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.logHealthChecks || !isHealthEndpoint(r.URL.Path) {
			next.ServeHTTP(w, r)

			return
		}

		ctx := context.WithValue(r.Context(), skipAccessLogKey{}, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func isHealthEndpoint(path string) bool {
	path = strings.TrimSuffix(path, "/")

	for _, endpoint := range healthEndpoints {
		if path == endpoint {
			return true
		}
	}

	return false
}

func shouldSkipAccessLog(ctx context.Context) bool {
	skip, ok := ctx.Value(skipAccessLogKey{}).(bool)

	return ok && skip
}

// AccessLogger writes one entry per request, at warn for 4xx and error for
// 5xx responses.
func AccessLogger(log logger.Logger, includeQueryParams bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if shouldSkipAccessLog(r.Context()) {
				next.ServeHTTP(w, r)

				return
			}

			start := time.Now()
			wrapped := NewStatusRecorder(w)

			next.ServeHTTP(wrapped, r)

			reqLogger := log.WithContext(r.Context()).
				With().
				Str("component", "http").
				Logger()

			event := reqLogger.Info()

			switch status := wrapped.StatusCode(); {
			case status >= http.StatusInternalServerError:
				event = reqLogger.Error()
			case status >= http.StatusBadRequest:
				event = reqLogger.Warn()
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote_addr", r.RemoteAddr).
				Str("user_agent", r.UserAgent()).
				Str("proto", r.Proto).
				Int("status", wrapped.StatusCode()).
				Uint64("bytes", wrapped.BytesWritten()).
				Int64("duration_ms", time.Since(start).Milliseconds())

			if includeQueryParams && r.URL.RawQuery != "" {
				event.Str("query", r.URL.RawQuery)
			}

			event.Msg("request completed")
		})
	}
}
