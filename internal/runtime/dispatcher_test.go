package runtime

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/architeacher/devicedomains/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates service context with default values", func(t *testing.T) {
		t.Parallel()

		serviceCtx := New()

		require.NotNil(t, serviceCtx)
		require.NotNil(t, serviceCtx.shutdownChannel)
		require.Nil(t, serviceCtx.deps)
		require.Nil(t, serviceCtx.serverReady)
	})

	t.Run("creates service context with options", func(t *testing.T) {
		t.Parallel()

		ch := make(chan os.Signal, 1)
		serviceCtx := New(
			WithServiceTermination(ch),
			WithWaitingForServer(),
		)

		require.NotNil(t, serviceCtx)
		require.Equal(t, ch, serviceCtx.shutdownChannel)
		require.NotNil(t, serviceCtx.serverReady)
	})
}

func TestServiceCtx_GracePeriod(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		opts       []ServiceOption
		configured time.Duration
		expected   time.Duration
	}{
		{name: "falls back to the default", expected: defaultShutdownTimeout},
		{name: "uses the configured timeout", configured: 10 * time.Second, expected: 10 * time.Second},
		{
			name:       "option wins over configuration",
			opts:       []ServiceOption{WithShutdownTimeout(3 * time.Second)},
			configured: 10 * time.Second,
			expected:   3 * time.Second,
		},
		{
			name:       "non-positive option is ignored",
			opts:       []ServiceOption{WithShutdownTimeout(-time.Second)},
			configured: 10 * time.Second,
			expected:   10 * time.Second,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, New(tc.opts...).gracePeriod(tc.configured))
		})
	}
}

func TestDependencies_CleanupRunsInReverseOrder(t *testing.T) {
	t.Parallel()

	deps := &dependencies{}
	deps.infra.logger = logger.NewTestLogger()

	var released []string

	for _, resource := range []string{"storage", "cache", "http server"} {
		deps.onCleanup(resource, func(context.Context) error {
			released = append(released, resource)

			if resource == "cache" {
				return errors.New("already closed")
			}

			return nil
		})
	}

	deps.cleanup(t.Context())
	require.Equal(t, []string{"http server", "cache", "storage"}, released)

	deps.cleanup(t.Context())
	require.Len(t, released, 3, "cleanups run once")
}

func TestNamedPinger(t *testing.T) {
	t.Parallel()

	pingErr := errors.New("connection refused")
	pinger := namedPinger{name: "storage", ping: func(context.Context) error { return pingErr }}

	require.Equal(t, "storage", pinger.Name())
	require.ErrorIs(t, pinger.Ping(t.Context()), pingErr)
}

func TestInitializeDependencies_SQLite(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", ":memory:")
	t.Setenv("GRPC_SERVER_ENABLED", "false")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("EVENTS_DRIVER", "none")
	t.Setenv("LOG_LEVEL", "error")

	deps, err := initializeDependencies(t.Context())
	require.NoError(t, err)

	t.Cleanup(func() { deps.cleanup(context.Background()) })

	require.NotNil(t, deps.app)
	require.NotNil(t, deps.infra.httpServer)
	require.Nil(t, deps.infra.grpcServer)
	require.Nil(t, deps.configLoader)
	require.Equal(t, "0.0.0.0:8080", deps.infra.httpServer.Addr)

	handler := deps.infra.httpServer.Handler

	create := httptest.NewRequest(http.MethodPost, "/api/device-domain/",
		strings.NewReader(`{"name":"Sensor","brand":"Acme","state":"AVAILABLE"}`))
	create.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, create)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/device-domain/byBrand?brand=Acm", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"name":"Sensor"`)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/readiness", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestInitializeDependencies_RejectsUnknownStorage(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongodb")

	_, err := initializeDependencies(t.Context())
	require.Error(t, err)
}
