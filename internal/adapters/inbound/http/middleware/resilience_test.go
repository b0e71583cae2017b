package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
	"github.com/throttled/throttled/v2/store/memstore"
	"go.opentelemetry.io/otel/attribute"

	"github.com/architeacher/devicedomains/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/devicedomains/internal/config"
	"github.com/architeacher/devicedomains/internal/mocks"
	"github.com/architeacher/devicedomains/internal/ports"
	"github.com/architeacher/devicedomains/pkg/idempotency"
	"github.com/architeacher/devicedomains/pkg/logger"
)

const (
	validIdempotencyKey = "create-device-domain-0001"
	createPath          = "/api/device-domain/"
	createBody          = `{"name":"Pixel","brand":"Google"}`
)

var errStoreDown = errors.New("store down")

type failingStore struct{}

func (failingStore) GetWithTime(context.Context, string) (int64, time.Time, error) {
	return 0, time.Time{}, errStoreDown
}

func (failingStore) SetIfNotExistsWithTTL(context.Context, string, int64, time.Duration) (bool, error) {
	return false, errStoreDown
}

func (failingStore) CompareAndSwapWithTTL(context.Context, string, int64, int64, time.Duration) (bool, error) {
	return false, errStoreDown
}

func rateLimitConfig(rps, burst uint, graceful bool) config.RateLimiting {
	cfg := config.RateLimiting{}
	cfg.Enabled = true
	cfg.RequestsPerSecond = rps
	cfg.BurstSize = burst
	cfg.MaxKeys = 100
	cfg.SkipPaths = []string{"/health/liveness"}
	cfg.GracefulDegraded = graceful

	return cfg
}

func TestRateLimiting(t *testing.T) {
	t.Parallel()

	store, err := memstore.NewCtx(100)
	require.NoError(t, err)

	mw, err := middleware.RateLimiting(rateLimitConfig(1, 1, true), store, logger.NewTestLogger())
	require.NoError(t, err)

	handler := mw(okHandler(`{}`))

	send := func(path, remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = remoteAddr

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec
	}

	first := send("/api/device-domain/", "10.0.0.1:5000")
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, "2", first.Header().Get(middleware.RateLimitLimitHeader))
	require.NotEmpty(t, first.Header().Get(middleware.RateLimitResetHeader))

	require.Equal(t, http.StatusOK, send("/api/device-domain/", "10.0.0.1:5001").Code)

	limited := send("/api/device-domain/", "10.0.0.1:5002")
	require.Equal(t, http.StatusTooManyRequests, limited.Code)
	require.Equal(t, "RATE_LIMIT_EXCEEDED", decodeCode(t, limited))
	require.NotEmpty(t, limited.Header().Get(middleware.RetryAfterHeader))
	require.Equal(t, "0", limited.Header().Get(middleware.RateLimitRemainingHeader))

	require.Equal(t, http.StatusOK, send("/api/device-domain/", "10.0.0.2:5000").Code, "budget is per client ip")

	skipped := send("/health/liveness", "10.0.0.1:5003")
	require.Equal(t, http.StatusOK, skipped.Code)
	require.Empty(t, skipped.Header().Get(middleware.RateLimitLimitHeader))
}

func TestRateLimiting_StoreFailure(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name           string
		graceful       bool
		expectedStatus int
	}{
		{name: "graceful degradation lets requests through", graceful: true, expectedStatus: http.StatusOK},
		{name: "strict mode rejects requests", graceful: false, expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mw, err := middleware.RateLimiting(rateLimitConfig(10, 10, tc.graceful), failingStore{}, logger.NewTestLogger())
			require.NoError(t, err)

			rec := httptest.NewRecorder()
			mw(okHandler(`{}`)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/device-domain/", nil))

			require.Equal(t, tc.expectedStatus, rec.Code)

			if tc.expectedStatus == http.StatusServiceUnavailable {
				require.Equal(t, "RATE_LIMITER_UNAVAILABLE", decodeCode(t, rec))
			}
		})
	}
}

func idempotencyConfig(graceful bool) config.Idempotency {
	cfg := config.Idempotency{}
	cfg.Enabled = true
	cfg.CacheTTL = time.Hour
	cfg.LockTTL = 30 * time.Second
	cfg.GracefulDegraded = graceful

	return cfg
}

func createdHandler(calls *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++

		body, _ := io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Debug", "not replayed")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
}

func postWithKey(key, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, createPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if key != "" {
		req.Header.Set(idempotency.HeaderKey, key)
	}

	return req
}

func TestIdempotency(t *testing.T) {
	t.Parallel()

	cacheKey := idempotency.BuildCacheKey(http.MethodPost, createPath, validIdempotencyKey)
	fingerprint := idempotency.Fingerprint([]byte(createBody))

	cases := []struct {
		name             string
		key              string
		graceful         bool
		setup            func(cache *mocks.FakeIdempotencyCache)
		expectedStatus   int
		expectedCode     string
		expectedCalls    int
		expectedLocked   bool
		expectedStored   bool
		expectedReleased bool
		replayed         bool
		failing          bool
	}{
		{
			name:           "no key passes through",
			setup:          func(*mocks.FakeIdempotencyCache) {},
			expectedStatus: http.StatusOK,
			expectedCalls:  1,
		},
		{
			name:           "malformed key is rejected",
			key:            "short",
			setup:          func(*mocks.FakeIdempotencyCache) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_IDEMPOTENCY_KEY",
		},
		{
			name: "first request is processed and stored",
			key:  validIdempotencyKey,
			setup: func(cache *mocks.FakeIdempotencyCache) {
				cache.SetLockReturns(true, nil)
			},
			expectedStatus:   http.StatusOK,
			expectedCalls:    1,
			expectedLocked:   true,
			expectedStored:   true,
			expectedReleased: true,
		},
		{
			name: "stored response is replayed",
			key:  validIdempotencyKey,
			setup: func(cache *mocks.FakeIdempotencyCache) {
				cache.GetReturns(&ports.CachedResponse{
					StatusCode:  http.StatusOK,
					Headers:     map[string]string{"Content-Type": "application/json"},
					Body:        []byte(createBody),
					Fingerprint: fingerprint,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			replayed:       true,
		},
		{
			name: "key reused with another body",
			key:  validIdempotencyKey,
			setup: func(cache *mocks.FakeIdempotencyCache) {
				cache.GetReturns(&ports.CachedResponse{
					StatusCode:  http.StatusOK,
					Body:        []byte(`{}`),
					Fingerprint: "another",
				}, nil)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "IDEMPOTENCY_KEY_REUSED",
		},
		{
			name: "concurrent request holds the lock",
			key:  validIdempotencyKey,
			setup: func(cache *mocks.FakeIdempotencyCache) {
				cache.SetLockReturns(false, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "REQUEST_IN_PROGRESS",
			expectedLocked: true,
		},
		{
			name:     "cache outage degrades gracefully",
			key:      validIdempotencyKey,
			graceful: true,
			setup: func(cache *mocks.FakeIdempotencyCache) {
				cache.GetReturns(nil, errStoreDown)
			},
			expectedStatus: http.StatusOK,
			expectedCalls:  1,
		},
		{
			name: "cache outage in strict mode",
			key:  validIdempotencyKey,
			setup: func(cache *mocks.FakeIdempotencyCache) {
				cache.GetReturns(nil, errStoreDown)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   "CACHE_UNAVAILABLE",
		},
		{
			name: "failed responses are not stored",
			key:  validIdempotencyKey,
			setup: func(cache *mocks.FakeIdempotencyCache) {
				cache.SetLockReturns(true, nil)
			},
			expectedStatus:   http.StatusBadRequest,
			expectedCalls:    1,
			expectedLocked:   true,
			expectedReleased: true,
			failing:          true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cache := &mocks.FakeIdempotencyCache{}
			tc.setup(cache)

			calls := 0
			next := createdHandler(&calls)

			if tc.failing {
				next = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					calls++
					w.WriteHeader(http.StatusBadRequest)
				})
			}

			handler := middleware.Idempotency(cache, idempotencyConfig(tc.graceful), logger.NewTestLogger())(next)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, postWithKey(tc.key, createBody))

			require.Equal(t, tc.expectedStatus, rec.Code)
			require.Equal(t, tc.expectedCalls, calls)

			if tc.expectedCode != "" {
				require.Equal(t, tc.expectedCode, decodeCode(t, rec))
			}

			if tc.replayed {
				require.Equal(t, "true", rec.Header().Get(idempotency.HeaderReplayed))
				require.Equal(t, createBody, rec.Body.String())
			} else {
				require.Empty(t, rec.Header().Get(idempotency.HeaderReplayed))
			}

			if tc.key == validIdempotencyKey {
				require.Equal(t, 1, cache.GetCallCount())
				_, key := cache.GetArgsForCall(0)
				require.Equal(t, cacheKey, key)
			} else {
				require.Zero(t, cache.GetCallCount())
			}

			if tc.expectedLocked {
				require.Equal(t, 1, cache.SetLockCallCount())
				_, key, ttl := cache.SetLockArgsForCall(0)
				require.Equal(t, cacheKey, key)
				require.Equal(t, 30*time.Second, ttl)
			} else {
				require.Zero(t, cache.SetLockCallCount())
			}

			if tc.expectedStored {
				require.Equal(t, 1, cache.SetCallCount())
				_, key, response, ttl := cache.SetArgsForCall(0)
				require.Equal(t, cacheKey, key)
				require.Equal(t, time.Hour, ttl)
				require.Equal(t, http.StatusOK, response.StatusCode)
				require.JSONEq(t, createBody, string(response.Body))
				require.Equal(t, fingerprint, response.Fingerprint)
				require.Equal(t, map[string]string{"Content-Type": "application/json"}, response.Headers)
			} else {
				require.Zero(t, cache.SetCallCount())
			}

			if tc.expectedReleased {
				require.Equal(t, 1, cache.ReleaseLockCallCount())
				_, key := cache.ReleaseLockArgsForCall(0)
				require.Equal(t, cacheKey, key)
			} else {
				require.Zero(t, cache.ReleaseLockCallCount())
			}
		})
	}
}

func TestIdempotency_IgnoresNonPostRequests(t *testing.T) {
	t.Parallel()

	cache := &mocks.FakeIdempotencyCache{}

	calls := 0
	handler := middleware.Idempotency(cache, idempotencyConfig(false), logger.NewTestLogger())(createdHandler(&calls))

	req := httptest.NewRequest(http.MethodPut, "/api/device-domain/1", strings.NewReader(createBody))
	req.Header.Set(idempotency.HeaderKey, validIdempotencyKey)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, calls)
	require.Empty(t, cache.Invocations())
}

type recordingMetrics struct {
	mu     sync.Mutex
	totals map[string]int64
}

func (m *recordingMetrics) Inc(_ context.Context, key string, value any, _ ...attribute.KeyValue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := value.(int64); ok {
		m.totals[key] += v
	}
}

func (m *recordingMetrics) Handler() http.Handler {
	return http.NotFoundHandler()
}

func (m *recordingMetrics) Shutdown(context.Context) error {
	return nil
}

func compressionConfig() config.Compression {
	cfg := config.Compression{}
	cfg.Enabled = true
	cfg.Level = 5
	cfg.MinSize = 64

	return cfg
}

func decompress(t *testing.T, encoding string, body []byte) string {
	t.Helper()

	var reader io.Reader

	switch encoding {
	case "gzip":
		gz, err := gzip.NewReader(bytes.NewReader(body))
		require.NoError(t, err)

		defer gz.Close()

		reader = gz
	case "br":
		reader = brotli.NewReader(bytes.NewReader(body))
	default:
		return string(body)
	}

	out, err := io.ReadAll(reader)
	require.NoError(t, err)

	return string(out)
}

func TestCompression(t *testing.T) {
	t.Parallel()

	large := `{"items":"` + strings.Repeat("device-domain ", 40) + `"}`

	cases := []struct {
		name             string
		acceptEncoding   string
		contentType      string
		status           int
		body             string
		expectedEncoding string
	}{
		{name: "gzip", acceptEncoding: "gzip", contentType: "application/json", status: http.StatusOK, body: large, expectedEncoding: "gzip"},
		{name: "brotli", acceptEncoding: "br", contentType: "application/json", status: http.StatusOK, body: large, expectedEncoding: "br"},
		{name: "weighted preference", acceptEncoding: "gzip;q=0.5, br;q=0.9", contentType: "application/json", status: http.StatusOK, body: large, expectedEncoding: "br"},
		{name: "tie prefers gzip", acceptEncoding: "br, gzip", contentType: "application/json", status: http.StatusOK, body: large, expectedEncoding: "gzip"},
		{name: "wildcard", acceptEncoding: "*", contentType: "application/json", status: http.StatusOK, body: large, expectedEncoding: "gzip"},
		{name: "plain text", acceptEncoding: "gzip", contentType: "text/plain; charset=utf-8", status: http.StatusOK, body: large, expectedEncoding: "gzip"},
		{name: "no accept encoding", contentType: "application/json", status: http.StatusOK, body: large},
		{name: "identity only", acceptEncoding: "gzip;q=0", contentType: "application/json", status: http.StatusOK, body: large},
		{name: "small body", acceptEncoding: "gzip", contentType: "application/json", status: http.StatusOK, body: `{"id":1}`},
		{name: "binary content type", acceptEncoding: "gzip", contentType: "image/png", status: http.StatusOK, body: large},
		{name: "error responses are compressed too", acceptEncoding: "gzip", contentType: "application/json", status: http.StatusNotFound, body: large, expectedEncoding: "gzip"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mc := &recordingMetrics{totals: map[string]int64{}}

			handler := middleware.Compression(compressionConfig(), mc)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", tc.contentType)
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/device-domain/", nil)
			if tc.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tc.acceptEncoding)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, tc.status, rec.Code)
			require.Equal(t, tc.expectedEncoding, rec.Header().Get("Content-Encoding"))
			require.Equal(t, tc.body, decompress(t, tc.expectedEncoding, rec.Body.Bytes()))

			if tc.expectedEncoding == "" {
				require.Empty(t, mc.totals)

				return
			}

			require.Contains(t, rec.Header().Values("Vary"), "Accept-Encoding")
			require.Equal(t, int64(1), mc.totals["http_compression_total"])
			require.Equal(t, int64(len(tc.body)), mc.totals["http_compression_original_bytes"])
			require.Equal(t, int64(rec.Body.Len()), mc.totals["http_compression_compressed_bytes"])
		})
	}
}

func TestCompression_Disabled(t *testing.T) {
	t.Parallel()

	cfg := compressionConfig()
	cfg.Enabled = false

	body := strings.Repeat("a", 4096)

	handler := middleware.Compression(cfg, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(body))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Empty(t, rec.Header().Get("Content-Encoding"))
	require.Equal(t, body, rec.Body.String())
}
