package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/jobpulse/pkg/metrics"
)

// ReadinessChecker reports whether the dashboard has a dataset to serve.
type ReadinessChecker interface {
	Ready() bool
}

// HealthHandler serves the metrics registry once the service is ready.
type HealthHandler struct {
	ready   ReadinessChecker
	metrics http.Handler
}

// NewHealthHandler creates a new health handler. A nil checker means always ready.
func NewHealthHandler(ready ReadinessChecker) *HealthHandler {
	return &HealthHandler{
		ready:   ready,
		metrics: promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}),
	}
}

// HandleHealth handles GET /healthz requests.
// Before a dataset is loaded it answers 503 with a JSON error.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	if h.ready != nil && !h.ready.Ready() {
		writeError(w, http.StatusServiceUnavailable, "not_ready", nil)
		return
	}
	h.metrics.ServeHTTP(w, r)
}
