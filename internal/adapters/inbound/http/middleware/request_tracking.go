package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/architeacher/devicedomains/pkg/logger"
)

const (
	RequestIDHeader     = "Request-Id"
	CorrelationIDHeader = "Correlation-Id"
)

// RequestTracking propagates the caller's request and correlation ids, minting
// new ones when absent, and echoes both on the response.
func RequestTracking() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			correlationID := r.Header.Get(CorrelationIDHeader)
			if correlationID == "" {
				correlationID = uuid.New().String()
			}

			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			ctx := logger.ContextWithCorrelationID(r.Context(), correlationID)
			ctx = logger.ContextWithRequestID(ctx, requestID)

			w.Header().Set(CorrelationIDHeader, correlationID)
			w.Header().Set(RequestIDHeader, requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
