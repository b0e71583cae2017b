package services

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/architeacher/devicedomains/internal/config"
	"github.com/architeacher/devicedomains/internal/domain/model"
	"github.com/architeacher/devicedomains/internal/ports"
)

const dependencyCheckTimeout = 2 * time.Second

type (
	dependency struct {
		checker  ports.DependencyChecker
		required bool
	}

	// HealthChecker reports liveness of the process and readiness of its
	// dependencies. A failing required dependency takes the service down; a
	// failing optional one only degrades it.
	HealthChecker struct {
		app          config.App
		dependencies []dependency
		disabled     []string
		startTime    time.Time
		now          func() time.Time
	}
)

var _ ports.HealthChecker = (*HealthChecker)(nil)

func NewHealthChecker(app config.App) *HealthChecker {
	return &HealthChecker{
		app:       app,
		startTime: time.Now(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (h *HealthChecker) Require(checker ports.DependencyChecker) *HealthChecker {
	h.dependencies = append(h.dependencies, dependency{checker: checker, required: true})

	return h
}

func (h *HealthChecker) Optional(checker ports.DependencyChecker) *HealthChecker {
	h.dependencies = append(h.dependencies, dependency{checker: checker})

	return h
}

// Disabled lists a dependency that is switched off by configuration.
func (h *HealthChecker) Disabled(name string) *HealthChecker {
	h.disabled = append(h.disabled, name)

	return h
}

func (h *HealthChecker) Liveness(context.Context) (*model.HealthReport, error) {
	return &model.HealthReport{
		Status:    model.HealthStatusOK,
		Timestamp: h.now(),
		Version:   h.app.ServiceVersion,
	}, nil
}

func (h *HealthChecker) Readiness(ctx context.Context) (*model.HealthReport, error) {
	checks, status := h.check(ctx)

	return &model.HealthReport{
		Status:    status,
		Timestamp: h.now(),
		Version:   h.app.ServiceVersion,
		Checks:    checks,
	}, nil
}

func (h *HealthChecker) Health(ctx context.Context) (*model.HealthReport, error) {
	checks, status := h.check(ctx)

	return &model.HealthReport{
		Status:    status,
		Timestamp: h.now(),
		Version:   h.app.ServiceVersion,
		CommitSHA: h.app.CommitSHA,
		Uptime:    time.Since(h.startTime),
		Checks:    checks,
	}, nil
}

func (h *HealthChecker) check(ctx context.Context) (map[string]model.DependencyCheck, model.HealthStatus) {
	var (
		mu     sync.Mutex
		checks = make(map[string]model.DependencyCheck, len(h.dependencies)+len(h.disabled))
		status = model.HealthStatusOK
	)

	group, groupCtx := errgroup.WithContext(ctx)

	for _, dep := range h.dependencies {
		group.Go(func() error {
			result := h.probe(groupCtx, dep.checker)

			mu.Lock()
			defer mu.Unlock()

			checks[dep.checker.Name()] = result

			if result.Status == model.DependencyStatusDown {
				switch {
				case dep.required:
					status = model.HealthStatusDown
				case status == model.HealthStatusOK:
					status = model.HealthStatusDegraded
				}
			}

			return nil
		})
	}

	_ = group.Wait()

	for _, name := range h.disabled {
		checks[name] = model.DependencyCheck{
			Status:      model.DependencyStatusDisabled,
			LastChecked: h.now(),
		}
	}

	return checks, status
}

func (h *HealthChecker) probe(ctx context.Context, checker ports.DependencyChecker) model.DependencyCheck {
	ctx, cancel := context.WithTimeout(ctx, dependencyCheckTimeout)
	defer cancel()

	start := time.Now()
	err := checker.Ping(ctx)
	latency := time.Since(start)

	result := model.DependencyCheck{
		Status:      model.DependencyStatusUp,
		LatencyMs:   uint64(latency.Milliseconds()),
		Message:     "ok",
		LastChecked: h.now(),
	}

	if err != nil {
		result.Status = model.DependencyStatusDown
		result.Message = err.Error()
	}

	return result
}
