// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// ChartsHandler serves the status filter options and chart data.
type ChartsHandler struct {
	deps Dependencies
}

// NewChartsHandler creates a new charts handler.
func NewChartsHandler(deps Dependencies) *ChartsHandler {
	return &ChartsHandler{deps: deps}
}

// HandleStatuses handles GET /api/statuses requests.
func (h *ChartsHandler) HandleStatuses(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_statuses"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	statuses, err := h.deps.Statuses(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, statusesResponse{Statuses: statuses})
}

// HandleStatusChart handles GET /api/charts/status?status=... requests.
func (h *ChartsHandler) HandleStatusChart(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_status_chart"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	filter, err := statusFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	counts, err := h.deps.StatusChart(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// HandleTimeline handles GET /api/charts/timeline?status=... requests.
func (h *ChartsHandler) HandleTimeline(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_timeline"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	filter, err := statusFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	timeline, err := h.deps.Timeline(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, timeline)
}
