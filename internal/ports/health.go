//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

//counterfeiter:generate -o ../mocks/dependency_checker.go . DependencyChecker
//counterfeiter:generate -o ../mocks/health_checker.go . HealthChecker

import (
	"context"

	"github.com/architeacher/devicedomains/internal/domain/model"
)

// DependencyChecker probes one external dependency for the health endpoints.
type DependencyChecker interface {
	Name() string
	Ping(ctx context.Context) error
}

type HealthChecker interface {
	Liveness(ctx context.Context) (*model.HealthReport, error)
	Readiness(ctx context.Context) (*model.HealthReport, error)
	Health(ctx context.Context) (*model.HealthReport, error)
}
