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

// The three health queries differ only in which checker report they return.
type (
	FetchLivenessQuery     struct{}
	FetchReadinessQuery    struct{}
	FetchHealthReportQuery struct{}

	FetchLivenessQueryHandler     = decorator.QueryHandler[FetchLivenessQuery, *model.HealthReport]
	FetchReadinessQueryHandler    = decorator.QueryHandler[FetchReadinessQuery, *model.HealthReport]
	FetchHealthReportQueryHandler = decorator.QueryHandler[FetchHealthReportQuery, *model.HealthReport]
)

func NewFetchLivenessQueryHandler(
	healthChecker ports.HealthChecker,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) FetchLivenessQueryHandler {
	return newHealthReportHandler[FetchLivenessQuery](healthChecker.Liveness, log, metricsClient, tracerProvider)
}

func NewFetchReadinessQueryHandler(
	healthChecker ports.HealthChecker,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) FetchReadinessQueryHandler {
	return newHealthReportHandler[FetchReadinessQuery](healthChecker.Readiness, log, metricsClient, tracerProvider)
}

func NewFetchHealthReportQueryHandler(
	healthChecker ports.HealthChecker,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) FetchHealthReportQueryHandler {
	return newHealthReportHandler[FetchHealthReportQuery](healthChecker.Health, log, metricsClient, tracerProvider)
}

func newHealthReportHandler[Q decorator.Query](
	report func(context.Context) (*model.HealthReport, error),
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) decorator.QueryHandler[Q, *model.HealthReport] {
	return decorator.ApplyQueryDecorators[Q, *model.HealthReport](
		decorator.QueryHandlerFunc[Q, *model.HealthReport](func(ctx context.Context, _ Q) (*model.HealthReport, error) {
			return report(ctx)
		}),
		log,
		metricsClient,
		tracerProvider,
	)
}
