package runtime

import (
	"context"
	"fmt"
	"net/http"

	"github.com/throttled/throttled/v2"
	otelTrace "go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"

	inboundgrpc "github.com/architeacher/devicedomains/internal/adapters/inbound/grpc"
	"github.com/architeacher/devicedomains/internal/config"
	"github.com/architeacher/devicedomains/internal/infrastructure"
	"github.com/architeacher/devicedomains/internal/ports"
	"github.com/architeacher/devicedomains/internal/services"
	"github.com/architeacher/devicedomains/internal/usecases"
	"github.com/architeacher/devicedomains/pkg/logger"
	"github.com/architeacher/devicedomains/pkg/metrics"
)

type (
	infrastructureDep struct {
		httpServer     *http.Server
		grpcServer     *grpc.Server
		healthServer   *inboundgrpc.HealthServer
		cacheClient    *infrastructure.KeydbClient
		logger         logger.Logger
		metricsClient  metrics.Client
		tracerProvider otelTrace.TracerProvider
	}

	repositories struct {
		secretsRepo        ports.SecretsRepository
		deviceDomainRepo   ports.DeviceDomainRepository
		storageChecker     ports.DependencyChecker
		deviceDomainsCache ports.DeviceDomainsCache
		idempotencyRepo    ports.IdempotencyCache
		rateLimitStore     throttled.GCRAStoreCtx
	}

	servicesDep struct {
		deviceDomains  ports.DeviceDomainsService
		healthChecker  *services.HealthChecker
		eventPublisher ports.EventPublisher
	}

	cleanup struct {
		resource string
		fn       func(ctx context.Context) error
	}

	dependencies struct {
		config       *config.ServiceConfig
		configLoader *config.Loader

		infra infrastructureDep

		repos repositories

		services servicesDep

		app *usecases.Application

		cleanups []cleanup
	}

	DependencyOption func(*dependencies) error
)

func initializeDependencies(ctx context.Context, opts ...DependencyOption) (*dependencies, error) {
	deps := &dependencies{}

	allOpts := append(defaultOptions(ctx), opts...)

	for _, opt := range allOpts {
		if err := opt(deps); err != nil {
			deps.cleanup(ctx)

			return nil, fmt.Errorf("failed to apply dependency option: %w", err)
		}
	}

	return deps, nil
}

// onCleanup registers fn to release resource at shutdown. Resources are
// released in reverse registration order, so servers stop before the stores
// they use.
func (d *dependencies) onCleanup(resource string, fn func(ctx context.Context) error) {
	d.cleanups = append(d.cleanups, cleanup{resource: resource, fn: fn})
}

func (d *dependencies) cleanup(ctx context.Context) {
	for i := len(d.cleanups) - 1; i >= 0; i-- {
		c := d.cleanups[i]

		if err := c.fn(ctx); err != nil {
			d.infra.logger.Error().
				Err(err).
				Str("resource", c.resource).
				Msg("failed to shutdown the resource gracefully")
		}
	}

	d.cleanups = nil
}

// namedPinger lets a plain ping function take part in readiness checks.
type namedPinger struct {
	name string
	ping func(ctx context.Context) error
}

func (p namedPinger) Name() string {
	return p.name
}

func (p namedPinger) Ping(ctx context.Context) error {
	return p.ping(ctx)
}
