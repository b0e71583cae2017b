package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/architeacher/devicedomains/pkg/logger"
)

const (
	MetadataKeyRequestID     = "request-id"
	MetadataKeyCorrelationID = "correlation-id"

	healthServicePrefix = "/grpc.health.v1.Health/"
)

// ContextExtractorInterceptor moves request and correlation ids from the
// incoming metadata into the context, generating a request id when the
// caller sent none.
func ContextExtractorInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		_ *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		var requestID string

		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if requestIDs := md.Get(MetadataKeyRequestID); len(requestIDs) > 0 {
				requestID = requestIDs[0]
			}

			if correlationIDs := md.Get(MetadataKeyCorrelationID); len(correlationIDs) > 0 {
				ctx = logger.ContextWithCorrelationID(ctx, correlationIDs[0])
			}
		}

		if requestID == "" {
			requestID = uuid.New().String()
		}

		return handler(logger.ContextWithRequestID(ctx, requestID), req)
	}
}

// AccessLogInterceptor logs one entry per call. Health probes are skipped
// unless logHealthChecks is set.
func AccessLogInterceptor(log logger.Logger, logHealthChecks bool) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if !logHealthChecks && isHealthCheck(info.FullMethod) {
			return handler(ctx, req)
		}

		start := time.Now()
		resp, err := handler(ctx, req)

		reqLogger := log.WithContext(ctx).With().Str("component", "grpc").Logger()

		if err != nil {
			st, _ := status.FromError(err)
			reqLogger.Warn().
				Str("method", info.FullMethod).
				Dur("duration", time.Since(start)).
				Str("grpc_code", st.Code().String()).
				Str("error", st.Message()).
				Msg("gRPC request failed")

			return resp, err
		}

		reqLogger.Info().
			Str("method", info.FullMethod).
			Dur("duration", time.Since(start)).
			Msg("gRPC request completed")

		return resp, nil
	}
}

func isHealthCheck(fullMethod string) bool {
	return strings.HasPrefix(fullMethod, healthServicePrefix)
}
