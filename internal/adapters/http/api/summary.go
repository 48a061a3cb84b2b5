// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// SummaryHandler serves the summary panel and the role breakdown.
type SummaryHandler struct {
	deps Dependencies
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(deps Dependencies) *SummaryHandler {
	return &SummaryHandler{deps: deps}
}

// HandleSummary handles GET /api/summary?status=... requests.
func (h *SummaryHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_summary"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	filter, err := statusFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	summary, err := h.deps.Summary(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// HandleRoles handles GET /api/roles?status=... requests.
func (h *SummaryHandler) HandleRoles(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_roles"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	filter, err := statusFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	report, err := h.deps.Roles(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, report)
}
