package runtime

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/hashicorp/vault/api"

	inboundgrpc "github.com/architeacher/devicedomains/internal/adapters/inbound/grpc"
	inboundhttp "github.com/architeacher/devicedomains/internal/adapters/inbound/http"
	"github.com/architeacher/devicedomains/internal/adapters/outbound/events"
	"github.com/architeacher/devicedomains/internal/adapters/repos"
	"github.com/architeacher/devicedomains/internal/config"
	"github.com/architeacher/devicedomains/internal/infrastructure"
	"github.com/architeacher/devicedomains/internal/infrastructure/postgres"
	"github.com/architeacher/devicedomains/internal/infrastructure/sqlite"
	"github.com/architeacher/devicedomains/internal/ports"
	"github.com/architeacher/devicedomains/internal/services"
	"github.com/architeacher/devicedomains/internal/usecases"
	"github.com/architeacher/devicedomains/pkg/circuitbreaker"
	"github.com/architeacher/devicedomains/pkg/decorator"
	"github.com/architeacher/devicedomains/pkg/logger"
	"github.com/architeacher/devicedomains/pkg/metrics/noop"
	"github.com/architeacher/devicedomains/pkg/metrics/otelmetrics"
)

const (
	storageResource = "storage"
	cacheResource   = "cache"
	eventsResource  = "events"

	deviceDomainCacheName = "device_domain"
)

func defaultOptions(ctx context.Context) []DependencyOption {
	return []DependencyOption{
		WithConfig(),
		WithLogger(),
		WithSecretsRepository(),
		WithConfigLoader(ctx),
		WithTracing(ctx),
		WithMetrics(ctx),
		WithStorage(ctx),
		WithCache(),
		WithEventPublisher(),
		WithDeviceDomainsService(),
		WithHealthChecker(),
		WithApplication(),
		WithHTTPServer(),
		WithGRPCServer(),
	}
}

func WithConfig() DependencyOption {
	return func(d *dependencies) error {
		cfg, err := config.Init()
		if err != nil {
			return fmt.Errorf("initializing configuration: %w", err)
		}

		d.config = cfg

		return nil
	}
}

func WithLogger() DependencyOption {
	return func(d *dependencies) error {
		d.infra.logger = logger.New(d.config.Logging.Level, d.config.Logging.Format).
			WithService(d.config.App.ServiceName, d.config.App.ServiceVersion)

		return nil
	}
}

func WithSecretsRepository() DependencyOption {
	return func(d *dependencies) error {
		storage := d.config.SecretsStorage
		if !storage.Enabled {
			return nil
		}

		vaultConfig := api.DefaultConfig()
		vaultConfig.Address = storage.Address
		vaultConfig.Timeout = storage.Timeout

		if storage.TLSSkipVerify {
			vaultConfig.HttpClient.Transport = &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // opt-in for local Vault
			}
		}

		client, err := api.NewClient(vaultConfig)
		if err != nil {
			return fmt.Errorf("creating Vault client: %w", err)
		}

		if storage.Namespace != "" {
			client.SetNamespace(storage.Namespace)
		}

		d.repos.secretsRepo = repos.NewVaultRepository(client)

		return nil
	}
}

// WithConfigLoader applies the Vault secrets before any connection is opened
// and keeps the loader for SIGHUP reloads.
func WithConfigLoader(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if d.repos.secretsRepo == nil {
			return nil
		}

		loader := config.NewLoader(d.config, d.repos.secretsRepo, 0)

		version, err := loader.Load(ctx)
		if err != nil {
			return fmt.Errorf("loading secrets from Vault: %w", err)
		}

		d.infra.logger.Info().Uint("version", version).Msg("secrets loaded from Vault")

		d.configLoader = loader

		return nil
	}
}

func WithTracing(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Telemetry.Enabled || !d.config.Telemetry.Traces.Enabled {
			d.infra.tracerProvider = infrastructure.NewNoopTracerProvider()

			return nil
		}

		tp, shutdown, err := infrastructure.NewTracerProvider(ctx, d.config.App, d.config.Telemetry)
		if err != nil {
			return fmt.Errorf("initializing tracer: %w", err)
		}

		d.infra.tracerProvider = tp
		d.onCleanup("tracer", shutdown)

		return nil
	}
}

func WithMetrics(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Telemetry.Enabled || !d.config.Telemetry.Metrics.Enabled {
			d.infra.metricsClient = noop.NewMetricsClient()

			return nil
		}

		client, err := otelmetrics.New(ctx, otelmetrics.Config{
			ServiceName:    d.config.App.ServiceName,
			ServiceVersion: d.config.App.ServiceVersion,
			Endpoint:       d.config.Telemetry.OTLPEndpoint,
			Insecure:       true,
			ExportInterval: d.config.Telemetry.Metrics.ExportInterval,
		})
		if err != nil {
			return fmt.Errorf("initializing metrics: %w", err)
		}

		d.infra.metricsClient = client
		d.onCleanup("metrics", client.Shutdown)

		return nil
	}
}

// WithStorage opens the configured store, applies the migrations and guards
// the repository with the storage circuit breaker.
func WithStorage(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		log := d.infra.logger

		var repo ports.DeviceDomainRepository

		switch d.config.Storage.Driver {
		case config.StorageDriverPostgres:
			pool, err := postgres.NewPool(ctx, d.config.Database, d.config.Backoff, log)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}

			d.onCleanup(storageResource, func(context.Context) error {
				pool.Close()

				return nil
			})

			if d.config.Database.MigrateOnStart {
				if err := postgres.Migrate(ctx, pool, log); err != nil {
					return fmt.Errorf("migrating database: %w", err)
				}
			}

			repo = repos.NewDeviceDomainsRepository(
				pool,
				repos.NewPgxScanner(),
				repos.NewCriteriaTranslator(repos.DialectPostgres, &log),
				log,
			)
			d.repos.storageChecker = namedPinger{name: storageResource, ping: pool.Ping}

		case config.StorageDriverSQLite:
			db, err := sqlite.Open(d.config.SQLite)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}

			d.onCleanup(storageResource, func(context.Context) error {
				return db.Close()
			})

			if err := db.Migrate(ctx, log); err != nil {
				return fmt.Errorf("migrating database: %w", err)
			}

			repo = repos.NewSQLiteDeviceDomainsRepository(db, repos.NewCriteriaTranslator(repos.DialectSQLite, &log), log)
			d.repos.storageChecker = db

		default:
			return fmt.Errorf("unsupported storage driver %q", d.config.Storage.Driver)
		}

		breakerConfig := d.config.CircuitBreaker
		breaker := circuitbreaker.New(circuitbreaker.Config{
			Name:             storageResource,
			Enabled:          breakerConfig.Enabled,
			MaxRequests:      breakerConfig.MaxRequests,
			Interval:         breakerConfig.Interval,
			Timeout:          breakerConfig.Timeout,
			FailureThreshold: breakerConfig.FailureThreshold,
			IsSuccessful:     repos.IsStoreHealthy,
			OnStateChange: func(name, from, to string) {
				log.Warn().
					Str("breaker", name).
					Str("from", from).
					Str("to", to).
					Msg("circuit breaker state changed")
			},
		})

		d.repos.deviceDomainRepo = repos.NewResilientRepository(repo, breaker)

		return nil
	}
}

// WithCache connects KeyDB when enabled. The record cache, idempotent
// replay and the shared rate limit budget all hang off this connection.
func WithCache() DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Cache.Enabled {
			return nil
		}

		client := infrastructure.NewKeyDBClient(d.config.Cache, d.infra.logger)
		d.onCleanup(cacheResource, func(context.Context) error {
			return client.Close()
		})

		d.infra.cacheClient = client
		d.repos.idempotencyRepo = repos.NewIdempotencyRepository(client)
		d.repos.rateLimitStore = repos.NewRateLimitStore(client)

		if d.config.DeviceDomainsCache.Enabled {
			d.repos.deviceDomainsCache = repos.NewDeviceDomainsCacheRepository(client, d.infra.logger)
		}

		return nil
	}
}

func WithEventPublisher() DependencyOption {
	return func(d *dependencies) error {
		publisher, err := events.NewPublisher(d.config.Events, d.infra.logger)
		if err != nil {
			return fmt.Errorf("creating event publisher: %w", err)
		}

		d.services.eventPublisher = publisher
		d.onCleanup(eventsResource, func(context.Context) error {
			return publisher.Close()
		})

		return nil
	}
}

func WithDeviceDomainsService() DependencyOption {
	return func(d *dependencies) error {
		d.services.deviceDomains = services.NewDeviceDomainsService(
			d.repos.deviceDomainRepo,
			d.services.eventPublisher,
			d.repos.deviceDomainsCache,
			d.infra.logger,
		)

		return nil
	}
}

// WithHealthChecker makes storage a required dependency. Cache and broker
// failures only degrade the service.
func WithHealthChecker() DependencyOption {
	return func(d *dependencies) error {
		checker := services.NewHealthChecker(d.config.App).Require(d.repos.storageChecker)

		if d.infra.cacheClient != nil {
			checker.Optional(d.infra.cacheClient)
		} else {
			checker.Disabled(cacheResource)
		}

		if broker, ok := d.services.eventPublisher.(ports.DependencyChecker); ok {
			checker.Optional(broker)
		}

		d.services.healthChecker = checker

		return nil
	}
}

func WithApplication() DependencyOption {
	return func(d *dependencies) error {
		var cache usecases.GetDeviceDomainCache
		if d.repos.deviceDomainsCache != nil {
			cache = repos.NewGetDeviceDomainCacheAdapter(d.repos.deviceDomainsCache)
		}

		d.app = usecases.NewApplication(
			d.services.deviceDomains,
			d.services.healthChecker,
			cache,
			decorator.CacheConfig{
				Name:    deviceDomainCacheName,
				Enabled: cache != nil,
				TTL:     d.config.DeviceDomainsCache.DeviceDomainTTL,
			},
			d.infra.logger,
			d.infra.metricsClient,
			d.infra.tracerProvider,
		)

		return nil
	}
}

func WithHTTPServer() DependencyOption {
	return func(d *dependencies) error {
		router, err := inboundhttp.NewRouter(inboundhttp.RouterConfig{
			App:              d.app,
			Logger:           d.infra.logger,
			MetricsClient:    d.infra.metricsClient,
			Config:           d.config,
			IdempotencyCache: d.repos.idempotencyRepo,
			RateLimitStore:   d.repos.rateLimitStore,
		})
		if err != nil {
			return fmt.Errorf("building http router: %w", err)
		}

		cfg := d.config.HTTPServer
		d.infra.httpServer = &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.FormatUint(uint64(cfg.Port), 10)),
			Handler:           router,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		}

		d.onCleanup("http server", func(ctx context.Context) error {
			if err := d.infra.httpServer.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}

			return nil
		})

		return nil
	}
}

func WithGRPCServer() DependencyOption {
	return func(d *dependencies) error {
		if !d.config.GRPCServer.Enabled {
			return nil
		}

		d.infra.healthServer = inboundgrpc.NewHealthServer(
			d.app,
			d.config.App.ServiceName,
			d.config.GRPCServer.HealthProbeInterval,
			d.infra.logger,
		)
		d.infra.grpcServer = inboundgrpc.NewServer(d.config, d.infra.healthServer, d.infra.logger)

		d.onCleanup("grpc server", func(ctx context.Context) error {
			stopped := make(chan struct{})

			go func() {
				d.infra.grpcServer.GracefulStop()
				close(stopped)
			}()

			select {
			case <-stopped:
				return nil
			case <-ctx.Done():
				d.infra.grpcServer.Stop()

				return ctx.Err()
			}
		})

		return nil
	}
}
