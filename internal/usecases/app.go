package usecases

import (
	otelTrace "go.opentelemetry.io/otel/trace"

	"github.com/architeacher/devicedomains/internal/domain/model"
	"github.com/architeacher/devicedomains/internal/ports"
	"github.com/architeacher/devicedomains/internal/usecases/commands"
	"github.com/architeacher/devicedomains/internal/usecases/queries"
	"github.com/architeacher/devicedomains/pkg/decorator"
	"github.com/architeacher/devicedomains/pkg/logger"
	"github.com/architeacher/devicedomains/pkg/metrics"
)

type (
	Commands struct {
		CreateDeviceDomain commands.CreateDeviceDomainCommandHandler
		UpdateDeviceDomain commands.UpdateDeviceDomainCommandHandler
		DeleteDeviceDomain commands.DeleteDeviceDomainCommandHandler
	}

	Queries struct {
		GetDeviceDomain          queries.GetDeviceDomainQueryHandler
		ListDeviceDomains        queries.ListDeviceDomainsQueryHandler
		ListDeviceDomainsByBrand queries.ListDeviceDomainsByBrandQueryHandler
		ListDeviceDomainsByState queries.ListDeviceDomainsByStateQueryHandler
		FetchLiveness            queries.FetchLivenessQueryHandler
		FetchReadiness           queries.FetchReadinessQueryHandler
		FetchHealthReport        queries.FetchHealthReportQueryHandler
	}

	Application struct {
		Commands Commands
		Queries  Queries
	}

	// GetDeviceDomainCache backs the single-record lookup. Nil disables caching.
	GetDeviceDomainCache = decorator.Cache[queries.GetDeviceDomainQuery, *model.DeviceDomain]
)

func NewApplication(
	svc ports.DeviceDomainsService,
	healthChecker ports.HealthChecker,
	cache GetDeviceDomainCache,
	cacheConfig decorator.CacheConfig,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) *Application {
	getDeviceDomain := queries.NewGetDeviceDomainQueryHandler(svc, log, metricsClient, tracerProvider)
	if cache != nil && cacheConfig.Enabled {
		getDeviceDomain = queries.NewGetDeviceDomainQueryHandlerWithCache(svc, cache, cacheConfig, log, metricsClient, tracerProvider)
	}

	return &Application{
		Commands: Commands{
			CreateDeviceDomain: commands.NewCreateDeviceDomainCommandHandler(svc, log, metricsClient, tracerProvider),
			UpdateDeviceDomain: commands.NewUpdateDeviceDomainCommandHandler(svc, log, metricsClient, tracerProvider),
			DeleteDeviceDomain: commands.NewDeleteDeviceDomainCommandHandler(svc, log, metricsClient, tracerProvider),
		},
		Queries: Queries{
			GetDeviceDomain:          getDeviceDomain,
			ListDeviceDomains:        queries.NewListDeviceDomainsQueryHandler(svc, log, metricsClient, tracerProvider),
			ListDeviceDomainsByBrand: queries.NewListDeviceDomainsByBrandQueryHandler(svc, log, metricsClient, tracerProvider),
			ListDeviceDomainsByState: queries.NewListDeviceDomainsByStateQueryHandler(svc, log, metricsClient, tracerProvider),
			FetchLiveness:            queries.NewFetchLivenessQueryHandler(healthChecker, log, metricsClient, tracerProvider),
			FetchReadiness:           queries.NewFetchReadinessQueryHandler(healthChecker, log, metricsClient, tracerProvider),
			FetchHealthReport:        queries.NewFetchHealthReportQueryHandler(healthChecker, log, metricsClient, tracerProvider),
		},
	}
}
