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
	DeleteDeviceDomainCommand struct {
		ID model.DeviceDomainID
	}

	DeleteDeviceDomainResult struct {
		Success bool
	}

	DeleteDeviceDomainCommandHandler = decorator.CommandHandler[DeleteDeviceDomainCommand, DeleteDeviceDomainResult]

	deleteDeviceDomainCommandHandler struct {
		deviceDomainsService ports.DeviceDomainsService
	}
)

func NewDeleteDeviceDomainCommandHandler(
	svc ports.DeviceDomainsService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) DeleteDeviceDomainCommandHandler {
	return decorator.ApplyCommandDecorators[DeleteDeviceDomainCommand, DeleteDeviceDomainResult](
		deleteDeviceDomainCommandHandler{deviceDomainsService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h deleteDeviceDomainCommandHandler) Handle(ctx context.Context, cmd DeleteDeviceDomainCommand) (DeleteDeviceDomainResult, error) {
	if err := h.deviceDomainsService.DeleteDeviceDomain(ctx, cmd.ID); err != nil {
		return DeleteDeviceDomainResult{Success: false}, err
	}

	return DeleteDeviceDomainResult{Success: true}, nil
}
