package handlers

import (
	"net/http"
	"time"

	"github.com/architeacher/devicedomains/internal/domain/model"
	"github.com/architeacher/devicedomains/internal/usecases"
	"github.com/architeacher/devicedomains/internal/usecases/queries"
	"github.com/architeacher/devicedomains/pkg/logger"
)

type (
	dependencyCheckResponse struct {
		Status      string    `json:"status"`
		LatencyMs   uint64    `json:"latencyMs"`
		Message     string    `json:"message,omitempty"`
		LastChecked time.Time `json:"lastChecked"`
	}

	healthResponse struct {
		Status    string                             `json:"status"`
		Timestamp time.Time                          `json:"timestamp"`
		Version   string                             `json:"version"`
		CommitSHA string                             `json:"commitSha,omitempty"`
		Uptime    string                             `json:"uptime,omitempty"`
		Checks    map[string]dependencyCheckResponse `json:"checks,omitempty"`
	}

	HealthHandler struct {
		app    *usecases.Application
		logger logger.Logger
	}
)

func NewHealthHandler(app *usecases.Application, log logger.Logger) *HealthHandler {
	return &HealthHandler{
		app:    app,
		logger: log,
	}
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	report, err := h.app.Queries.FetchLiveness.Execute(r.Context(), queries.FetchLivenessQuery{})
	h.writeReport(w, r, report, err)
}

func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	report, err := h.app.Queries.FetchReadiness.Execute(r.Context(), queries.FetchReadinessQuery{})
	h.writeReport(w, r, report, err)
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	report, err := h.app.Queries.FetchHealthReport.Execute(r.Context(), queries.FetchHealthReportQuery{})
	h.writeReport(w, r, report, err)
}

// writeReport answers 503 only when the service is down; a degraded optional
// dependency still reports 200.
func (h *HealthHandler) writeReport(w http.ResponseWriter, r *http.Request, report *model.HealthReport, err error) {
	if err != nil {
		reqLogger := h.logger.WithContext(r.Context())
		reqLogger.Error().Err(err).Msg("health probe failed")

		writeErrorResponse(w, http.StatusServiceUnavailable, codeServiceUnavailable, msgServiceUnavailable)

		return
	}

	status := http.StatusOK
	if report.Status == model.HealthStatusDown {
		status = http.StatusServiceUnavailable
	}

	writeJSONResponse(w, status, toHealthResponse(report))
}

func toHealthResponse(report *model.HealthReport) healthResponse {
	response := healthResponse{
		Status:    string(report.Status),
		Timestamp: report.Timestamp,
		Version:   report.Version,
		CommitSHA: report.CommitSHA,
	}

	if report.Uptime > 0 {
		response.Uptime = report.Uptime.Round(time.Second).String()
	}

	if len(report.Checks) > 0 {
		response.Checks = make(map[string]dependencyCheckResponse, len(report.Checks))
		for name, check := range report.Checks {
			response.Checks[name] = dependencyCheckResponse{
				Status:      string(check.Status),
				LatencyMs:   check.LatencyMs,
				Message:     check.Message,
				LastChecked: check.LastChecked,
			}
		}
	}

	return response
}
