package queries

import (
	"context"

	otelTrace "go.opentelemetry.io/otel/trace"

	"github.com/architeacher/devicedomains/internal/domain/model"
	"github.com/architeacher/devicedomains/internal/ports"
	"github.com/architeacher/devicedomains/pkg/decorator"
	"github.com/architeacher/devicedomains/pkg/logger"
	"github.com/architeacher/devicedomains/pkg/metrics"
)

type (
	GetDeviceDomainQuery struct {
		ID model.DeviceDomainID
	}

	GetDeviceDomainQueryHandler = decorator.QueryHandler[GetDeviceDomainQuery, *model.DeviceDomain]

	getDeviceDomainQueryHandler struct {
		deviceDomainsService ports.DeviceDomainsService
	}
)

func NewGetDeviceDomainQueryHandler(
	svc ports.DeviceDomainsService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) GetDeviceDomainQueryHandler {
	return decorator.ApplyQueryDecorators[GetDeviceDomainQuery, *model.DeviceDomain](
		getDeviceDomainQueryHandler{deviceDomainsService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

// NewGetDeviceDomainQueryHandlerWithCache serves single records from cache,
// filling it on a miss.
func NewGetDeviceDomainQueryHandlerWithCache(
	svc ports.DeviceDomainsService,
	cache decorator.Cache[GetDeviceDomainQuery, *model.DeviceDomain],
	cacheConfig decorator.CacheConfig,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) GetDeviceDomainQueryHandler {
	return decorator.ApplyQueryDecorators[GetDeviceDomainQuery, *model.DeviceDomain](
		getDeviceDomainQueryHandler{deviceDomainsService: svc},
		log,
		metricsClient,
		tracerProvider,
		decorator.WithQueryCache[GetDeviceDomainQuery, *model.DeviceDomain](cache, cacheConfig, metricsClient),
	)
}

func (h getDeviceDomainQueryHandler) Execute(ctx context.Context, query GetDeviceDomainQuery) (*model.DeviceDomain, error) {
	return h.deviceDomainsService.GetDeviceDomain(ctx, query.ID)
}
