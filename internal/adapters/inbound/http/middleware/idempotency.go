package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/architeacher/devicedomains/internal/config"
	"github.com/architeacher/devicedomains/internal/ports"
	"github.com/architeacher/devicedomains/pkg/idempotency"
	"github.com/architeacher/devicedomains/pkg/logger"
)

const (
	codeInvalidIdempotencyKey = "INVALID_IDEMPOTENCY_KEY"
	codeIdempotencyKeyReused  = "IDEMPOTENCY_KEY_REUSED"
	codeRequestInProgress     = "REQUEST_IN_PROGRESS"
	codeCacheUnavailable      = "CACHE_UNAVAILABLE"
)

// Idempotency replays the first successful response for a repeated
// Idempotency-Key on POST requests. Requests without the header pass through.
func Idempotency(cache ports.IdempotencyCache, cfg config.Idempotency, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(idempotency.HeaderKey)
			if !cfg.Enabled || r.Method != http.MethodPost || key == "" {
				next.ServeHTTP(w, r)

				return
			}

			if err := idempotency.Validate(key); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidIdempotencyKey, err.Error())

				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidJSON, "invalid request body")

				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))

			ctx := r.Context()
			reqLogger := log.WithContext(ctx).With().Str("idempotency_key", key).Logger()
			cacheKey := idempotency.BuildCacheKey(r.Method, r.URL.Path, key)
			fingerprint := idempotency.Fingerprint(body)

			degrade := func(err error, msg string) {
				reqLogger.Warn().Err(err).Msg(msg)

				if cfg.GracefulDegraded {
					next.ServeHTTP(w, r)

					return
				}

				writeError(w, http.StatusServiceUnavailable, codeCacheUnavailable,
					"idempotency service temporarily unavailable")
			}

			cached, err := cache.Get(ctx, cacheKey)
			if err != nil {
				degrade(err, "idempotency cache lookup failed")

				return
			}

			if cached != nil {
				if cached.Fingerprint != "" && cached.Fingerprint != fingerprint {
					writeError(w, http.StatusUnprocessableEntity, codeIdempotencyKeyReused,
						"idempotency key was already used with a different request body")

					return
				}

				writeCachedResponse(w, cached)

				return
			}

			acquired, err := cache.SetLock(ctx, cacheKey, cfg.LockTTL)
			if err != nil {
				degrade(err, "idempotency lock failed")

				return
			}

			if !acquired {
				writeError(w, http.StatusConflict, codeRequestInProgress,
					"a request with this idempotency key is already being processed")

				return
			}

			defer func() {
				if err := cache.ReleaseLock(ctx, cacheKey); err != nil {
					reqLogger.Warn().Err(err).Msg("failed to release idempotency lock")
				}
			}()

			recorder := newResponseRecorder(w)
			next.ServeHTTP(recorder, r.WithContext(idempotency.WithKey(ctx, key)))

			if recorder.statusCode < http.StatusOK || recorder.statusCode >= http.StatusMultipleChoices {
				return
			}

			response := &ports.CachedResponse{
				StatusCode:  recorder.statusCode,
				Headers:     recorder.capturedHeaders(),
				Body:        recorder.body.Bytes(),
				Fingerprint: fingerprint,
				CreatedAt:   time.Now().UTC(),
			}

			if err := cache.Set(ctx, cacheKey, response, cfg.CacheTTL); err != nil {
				reqLogger.Warn().Err(err).Msg("failed to cache idempotent response")
			}
		})
	}
}

func writeCachedResponse(w http.ResponseWriter, cached *ports.CachedResponse) {
	for key, value := range cached.Headers {
		w.Header().Set(key, value)
	}

	w.Header().Set(idempotency.HeaderReplayed, "true")
	w.WriteHeader(cached.StatusCode)
	_, _ = w.Write(cached.Body)
}

// responseRecorder tees the response so it can be stored after it was sent.
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func newResponseRecorder(w http.ResponseWriter) *responseRecorder {
	return &responseRecorder{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (r *responseRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)

	return r.ResponseWriter.Write(b)
}

var replayableHeaders = []string{contentTypeHeader, "Location"}

func (r *responseRecorder) capturedHeaders() map[string]string {
	headers := make(map[string]string, len(replayableHeaders))

	for _, key := range replayableHeaders {
		if value := r.ResponseWriter.Header().Get(key); value != "" {
			headers[key] = value
		}
	}

	return headers
}
