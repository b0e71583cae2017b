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
	ListDeviceDomainsQuery struct{}

	ListDeviceDomainsQueryHandler = decorator.QueryHandler[ListDeviceDomainsQuery, []*model.DeviceDomain]

	listDeviceDomainsQueryHandler struct {
		deviceDomainsService ports.DeviceDomainsService
	}

	// ListDeviceDomainsByBrandQuery matches Brand as a case-sensitive substring.
	ListDeviceDomainsByBrandQuery struct {
		Brand string
	}

	ListDeviceDomainsByBrandQueryHandler = decorator.QueryHandler[ListDeviceDomainsByBrandQuery, []*model.DeviceDomain]

	listDeviceDomainsByBrandQueryHandler struct {
		deviceDomainsService ports.DeviceDomainsService
	}

	ListDeviceDomainsByStateQuery struct {
		State model.State
	}

	ListDeviceDomainsByStateQueryHandler = decorator.QueryHandler[ListDeviceDomainsByStateQuery, []*model.DeviceDomain]

	listDeviceDomainsByStateQueryHandler struct {
		deviceDomainsService ports.DeviceDomainsService
	}
)

func NewListDeviceDomainsQueryHandler(
	svc ports.DeviceDomainsService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ListDeviceDomainsQueryHandler {
	return decorator.ApplyQueryDecorators[ListDeviceDomainsQuery, []*model.DeviceDomain](
		listDeviceDomainsQueryHandler{deviceDomainsService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h listDeviceDomainsQueryHandler) Execute(ctx context.Context, _ ListDeviceDomainsQuery) ([]*model.DeviceDomain, error) {
	return h.deviceDomainsService.ListDeviceDomains(ctx)
}

func NewListDeviceDomainsByBrandQueryHandler(
	svc ports.DeviceDomainsService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ListDeviceDomainsByBrandQueryHandler {
	return decorator.ApplyQueryDecorators[ListDeviceDomainsByBrandQuery, []*model.DeviceDomain](
		listDeviceDomainsByBrandQueryHandler{deviceDomainsService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h listDeviceDomainsByBrandQueryHandler) Execute(ctx context.Context, query ListDeviceDomainsByBrandQuery) ([]*model.DeviceDomain, error) {
	return h.deviceDomainsService.ListDeviceDomainsByBrand(ctx, query.Brand)
}

func NewListDeviceDomainsByStateQueryHandler(
	svc ports.DeviceDomainsService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ListDeviceDomainsByStateQueryHandler {
	return decorator.ApplyQueryDecorators[ListDeviceDomainsByStateQuery, []*model.DeviceDomain](
		listDeviceDomainsByStateQueryHandler{deviceDomainsService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h listDeviceDomainsByStateQueryHandler) Execute(ctx context.Context, query ListDeviceDomainsByStateQuery) ([]*model.DeviceDomain, error) {
	return h.deviceDomainsService.ListDeviceDomainsByState(ctx, query.State)
}
