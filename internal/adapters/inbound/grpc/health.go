package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/architeacher/devicedomains/internal/domain/model"
	"github.com/architeacher/devicedomains/internal/usecases"
	"github.com/architeacher/devicedomains/internal/usecases/queries"
	"github.com/architeacher/devicedomains/pkg/logger"
)

const defaultProbeInterval = 10 * time.Second

// HealthServer serves grpc.health.v1.Health with the status of the readiness
// probe, for the whole server ("") and for serviceName.
type HealthServer struct {
	server        *health.Server
	app           *usecases.Application
	serviceName   string
	probeInterval time.Duration
	logger        logger.Logger
}

func NewHealthServer(app *usecases.Application, serviceName string, probeInterval time.Duration, log logger.Logger) *HealthServer {
	if probeInterval <= 0 {
		probeInterval = defaultProbeInterval
	}

	server := health.NewServer()
	server.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	server.SetServingStatus(serviceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &HealthServer{
		server:        server,
		app:           app,
		serviceName:   serviceName,
		probeInterval: probeInterval,
		logger:        log,
	}
}

func (s *HealthServer) Register(registrar grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(registrar, s.server)
}

// Refresh runs the readiness probe once and publishes the outcome. A degraded
// report still serves.
func (s *HealthServer) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	servingStatus := healthpb.HealthCheckResponse_SERVING

	report, err := s.app.Queries.FetchReadiness.Execute(ctx, queries.FetchReadinessQuery{})
	if err != nil || report == nil || report.Status == model.HealthStatusDown {
		servingStatus = healthpb.HealthCheckResponse_NOT_SERVING
	}

	if err != nil {
		s.logger.Warn().Err(err).Msg("readiness probe failed")
	}

	s.server.SetServingStatus("", servingStatus)
	s.server.SetServingStatus(s.serviceName, servingStatus)

	return servingStatus
}

// Watch refreshes the status every probe interval until ctx ends, then marks
// every service as not serving.
func (s *HealthServer) Watch(ctx context.Context) {
	s.Refresh(ctx)

	ticker := time.NewTicker(s.probeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.server.Shutdown()

			return
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}
