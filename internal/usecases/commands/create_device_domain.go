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
	CreateDeviceDomainCommand struct {
		Name  string
		Brand string
		State string
	}

	CreateDeviceDomainCommandHandler = decorator.CommandHandler[CreateDeviceDomainCommand, *model.DeviceDomain]

	createDeviceDomainCommandHandler struct {
		deviceDomainsService ports.DeviceDomainsService
	}
)

func NewCreateDeviceDomainCommandHandler(
	svc ports.DeviceDomainsService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) CreateDeviceDomainCommandHandler {
	return decorator.ApplyCommandDecorators[CreateDeviceDomainCommand, *model.DeviceDomain](
		createDeviceDomainCommandHandler{deviceDomainsService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h createDeviceDomainCommandHandler) Handle(ctx context.Context, cmd CreateDeviceDomainCommand) (*model.DeviceDomain, error) {
	return h.deviceDomainsService.CreateDeviceDomain(ctx, model.CreateDeviceDomainInput{
		Name:  cmd.Name,
		Brand: cmd.Brand,
		State: cmd.State,
	})
}
