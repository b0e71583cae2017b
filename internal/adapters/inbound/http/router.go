package http

import (
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/throttled/throttled/v2"
	"github.com/throttled/throttled/v2/store/memstore"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/architeacher/devicedomains/internal/adapters/inbound/http/handlers"
	"github.com/architeacher/devicedomains/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/devicedomains/internal/config"
	"github.com/architeacher/devicedomains/internal/ports"
	"github.com/architeacher/devicedomains/internal/usecases"
	"github.com/architeacher/devicedomains/pkg/logger"
	"github.com/architeacher/devicedomains/pkg/metrics"
)

type RouterConfig struct {
	App           *usecases.Application
	Logger        logger.Logger
	MetricsClient metrics.Client
	Config        *config.ServiceConfig
	// IdempotencyCache is nil when no shared cache is configured, which turns
	// idempotent replay off.
	IdempotencyCache ports.IdempotencyCache
	// RateLimitStore defaults to an in-process store when nil.
	RateLimitStore throttled.GCRAStoreCtx
}

func NewRouter(cfg RouterConfig) (http.Handler, error) {
	serviceConfig := cfg.Config
	router := chi.NewRouter()

	router.Use(middleware.RequestTracking())
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.NewHealthCheckFilter(serviceConfig.HTTPServer.AccessLogHealthChecks).Middleware)
	router.Use(middleware.AccessLogger(cfg.Logger, serviceConfig.HTTPServer.AccessLogQueryParams))
	router.Use(middleware.Recovery(cfg.Logger))

	if serviceConfig.Telemetry.Metrics.Enabled {
		router.Use(middleware.NewMetricsMiddleware(cfg.MetricsClient).Middleware)
		cfg.Logger.Info().Msg("HTTP metrics collection enabled")
	}

	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(serviceConfig.HTTPServer.CORSAllowedOrigins))
	router.Use(middleware.Compression(serviceConfig.Compression, cfg.MetricsClient))

	if serviceConfig.HTTPServer.RequestTimeout > 0 {
		router.Use(chimiddleware.Timeout(serviceConfig.HTTPServer.RequestTimeout))
	}

	if serviceConfig.RateLimiting.Enabled {
		rateLimiting, err := newRateLimiting(cfg)
		if err != nil {
			return nil, err
		}

		router.Use(rateLimiting)
	}

	healthHandler := handlers.NewHealthHandler(cfg.App, cfg.Logger)
	router.Get("/health", healthHandler.Health)
	router.Get("/health/liveness", healthHandler.Liveness)
	router.Get("/health/readiness", healthHandler.Readiness)

	deviceDomainHandler := handlers.NewDeviceDomainHandler(cfg.App, cfg.Logger)
	basePath := serviceConfig.App.BasePath

	var requestValidator func(http.Handler) http.Handler
	if serviceConfig.HTTPServer.RequestValidation {
		swagger, err := LoadSwagger(basePath)
		if err != nil {
			return nil, err
		}

		requestValidator, err = middleware.OapiRequestValidator(swagger, &middleware.RequestValidatorOptions{
			Options: openapi3filter.Options{
				AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
			},
			BasePath: basePath,
		})
		if err != nil {
			return nil, err
		}
	}

	router.Route(basePath, func(r chi.Router) {
		if serviceConfig.HTTPServer.MaxRequestBodyBytes > 0 {
			r.Use(chimiddleware.RequestSize(serviceConfig.HTTPServer.MaxRequestBodyBytes))
		}

		if requestValidator != nil {
			r.Use(requestValidator)
		}

		r.Use(middleware.ConditionalGET())

		if cfg.IdempotencyCache != nil && serviceConfig.Idempotency.Enabled {
			r.Use(middleware.Idempotency(cfg.IdempotencyCache, serviceConfig.Idempotency, cfg.Logger))
		}

		r.Get("/", deviceDomainHandler.ListDeviceDomains)
		r.Post("/", deviceDomainHandler.CreateDeviceDomain)
		r.Get("/byBrand", deviceDomainHandler.ListDeviceDomainsByBrand)
		r.Get("/byState", deviceDomainHandler.ListDeviceDomainsByState)
		r.Get("/{id}", deviceDomainHandler.GetDeviceDomain)
		r.Put("/{id}", deviceDomainHandler.UpdateDeviceDomain)
		r.Delete("/{id}", deviceDomainHandler.DeleteDeviceDomain)
	})

	if !serviceConfig.Telemetry.Traces.Enabled {
		return router, nil
	}

	cfg.Logger.Info().Msg("distributed tracing enabled")

	return otelhttp.NewHandler(router, serviceConfig.App.ServiceName,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return "HTTP " + r.Method
		}),
	), nil
}

func newRateLimiting(cfg RouterConfig) (func(http.Handler) http.Handler, error) {
	store := cfg.RateLimitStore
	if store == nil {
		memStore, err := memstore.NewCtx(int(cfg.Config.RateLimiting.MaxKeys))
		if err != nil {
			return nil, fmt.Errorf("creating in-memory rate limit store: %w", err)
		}

		store = memStore
	}

	return middleware.RateLimiting(cfg.Config.RateLimiting, store, cfg.Logger)
}
