package model

import "time"

type (
	HealthStatus string

	DependencyStatus string

	DependencyCheck struct {
		Status      DependencyStatus
		LatencyMs   uint64
		Message     string
		LastChecked time.Time
	}

	HealthReport struct {
		Status    HealthStatus
		Timestamp time.Time
		Version   string
		CommitSHA string
		Uptime    time.Duration
		Checks    map[string]DependencyCheck
	}
)

const (
	HealthStatusOK       HealthStatus = "ok"
	HealthStatusDegraded HealthStatus = "degraded"
	HealthStatusDown     HealthStatus = "down"

	DependencyStatusUp       DependencyStatus = "up"
	DependencyStatusDown     DependencyStatus = "down"
	DependencyStatusDisabled DependencyStatus = "disabled"
)
