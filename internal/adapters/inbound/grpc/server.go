package grpc

import (
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/architeacher/devicedomains/internal/config"
	"github.com/architeacher/devicedomains/pkg/logger"
)

// NewServer builds the gRPC server carrying the health service.
func NewServer(cfg *config.ServiceConfig, healthServer *HealthServer, log logger.Logger) *grpc.Server {
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			ContextExtractorInterceptor(),
			AccessLogInterceptor(log, cfg.HTTPServer.AccessLogHealthChecks),
		),
	}

	if cfg.Telemetry.Traces.Enabled {
		opts = append(opts, grpc.StatsHandler(otelgrpc.NewServerHandler()))
	}

	server := grpc.NewServer(opts...)

	healthServer.Register(server)
	reflection.Register(server)

	return server
}
