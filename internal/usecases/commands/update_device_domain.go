package commands

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
	// UpdateDeviceDomainCommand changes only the fields set in Input.
	UpdateDeviceDomainCommand struct {
		ID    model.DeviceDomainID
		Input model.UpdateDeviceDomainInput
	}

	UpdateDeviceDomainCommandHandler = decorator.CommandHandler[UpdateDeviceDomainCommand, *model.DeviceDomain]

	updateDeviceDomainCommandHandler struct {
		deviceDomainsService ports.DeviceDomainsService
	}
)

func NewUpdateDeviceDomainCommandHandler(
	svc ports.DeviceDomainsService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) UpdateDeviceDomainCommandHandler {
	return decorator.ApplyCommandDecorators[UpdateDeviceDomainCommand, *model.DeviceDomain](
		updateDeviceDomainCommandHandler{deviceDomainsService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h updateDeviceDomainCommandHandler) Handle(ctx context.Context, cmd UpdateDeviceDomainCommand) (*model.DeviceDomain, error) {
	return h.deviceDomainsService.UpdateDeviceDomain(ctx, cmd.ID, cmd.Input)
}
