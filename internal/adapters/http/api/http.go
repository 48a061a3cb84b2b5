// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/jobpulse/internal/domain/status"
	"github.com/okian/jobpulse/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Statuses lists the statuses present in the data.
	Statuses(ctx context.Context) ([]status.Status, error)

	// Read operations over the filtered applications.
	StatusChart(ctx context.Context, filter []status.Status) ([]types.StatusCount, error)
	Timeline(ctx context.Context, filter []status.Status) (types.Timeline, error)
	Summary(ctx context.Context, filter []status.Status) (types.Summary, error)
	Roles(ctx context.Context, filter []status.Status) (types.RolesReport, error)
}

// Server wires HTTP routes for the dashboard API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	chartsHandler    *ChartsHandler
	summaryHandler   *SummaryHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates a new API server with all handlers.
// When statsProvider also implements ReadinessChecker, /healthz reports
// 503 until it is ready.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	ready, _ := statsProvider.(ReadinessChecker)
	return &Server{
		healthHandler:    NewHealthHandler(ready),
		statsHandler:     NewStatsHandler(statsProvider),
		chartsHandler:    NewChartsHandler(deps),
		summaryHandler:   NewSummaryHandler(deps),
		dashboardHandler: newdashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", MetricsMiddleware(s.dashboardHandler.HandleDashboard, "dashboard"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/statuses", MetricsMiddleware(s.chartsHandler.HandleStatuses, "statuses"))
	mux.HandleFunc("/api/charts/status", MetricsMiddleware(s.chartsHandler.HandleStatusChart, "status_chart"))
	mux.HandleFunc("/api/charts/timeline", MetricsMiddleware(s.chartsHandler.HandleTimeline, "timeline_chart"))
	mux.HandleFunc("/api/summary", MetricsMiddleware(s.summaryHandler.HandleSummary, "summary"))
	mux.HandleFunc("/api/roles", MetricsMiddleware(s.summaryHandler.HandleRoles, "roles"))
}

type statusesResponse struct {
	Statuses []status.Status `json:"statuses"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
