// Package metrics provides Prometheus metrics for the jobpulse dashboard.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus collector of the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Dataset
	datasetRecords   prometheus.Gauge
	datasetLoads     *prometheus.CounterVec
	datasetLoadMs    prometheus.Histogram
	recordsPerStatus *prometheus.GaugeVec

	// Role extraction
	roleExtractionMs       prometheus.Histogram
	roleExtractionFailures *prometheus.CounterVec
	roleClusters           prometheus.Gauge

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "jobpulse",
		subsystem:        "dashboard",
		histogramBuckets: []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		constLabels:      prometheus.Labels{},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for all collectors
	auto := promauto.With(m.registry)

	m.datasetRecords = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_records",
		Help:        "Number of application records in the loaded dataset",
		ConstLabels: m.constLabels,
	})

	m.datasetLoads = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_loads_total",
		Help:        "Dataset load attempts by source format and result",
		ConstLabels: m.constLabels,
	}, []string{"format", "result"})

	m.datasetLoadMs = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_load_duration_milliseconds",
		Help:        "Time spent reading and classifying the source spreadsheet",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})

	m.recordsPerStatus = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "records_per_status",
		Help:        "Number of loaded applications per derived status",
		ConstLabels: m.constLabels,
	}, []string{"status"})

	m.roleExtractionMs = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "role_extraction_duration_milliseconds",
		Help:        "Time spent vectorizing and clustering job titles",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})

	m.roleExtractionFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "role_extraction_failures_total",
		Help:        "Role extractions that degraded to an empty result, by reason",
		ConstLabels: m.constLabels,
	}, []string{"reason"})

	m.roleClusters = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "role_clusters",
		Help:        "Number of distinct role labels in the latest extraction",
		ConstLabels: m.constLabels,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_requests_total",
		Help:        "Total number of HTTP requests by endpoint and method",
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_request_duration_milliseconds",
		Help:        "HTTP request duration in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})

	m.errorRateByType = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "errors_by_type_total",
		Help:        "Errors by type and severity",
		ConstLabels: m.constLabels,
	}, []string{"error_type", "severity"})

	m.errorRateByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "errors_by_endpoint_total",
		Help:        "Errors by endpoint, method and type",
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "system_memory_usage_bytes",
		Help:        "Heap bytes allocated",
		ConstLabels: m.constLabels,
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "system_goroutine_count",
		Help:        "Number of goroutines",
		ConstLabels: m.constLabels,
	})
}

// UpdateDatasetRecords sets the loaded record count.
func UpdateDatasetRecords(count int) {
	globalManager.datasetRecords.Set(float64(count))
}

// RecordDatasetLoad counts one load attempt.
func RecordDatasetLoad(format, result string) {
	globalManager.datasetLoads.WithLabelValues(format, result).Inc()
}

// RecordDatasetLoadDuration records how long a load took.
func RecordDatasetLoadDuration(durationMs float64) {
	globalManager.datasetLoadMs.Observe(durationMs)
}

// UpdateStatusCount sets the number of records with the given status.
func UpdateStatusCount(status string, count int) {
	globalManager.recordsPerStatus.WithLabelValues(status).Set(float64(count))
}

// RecordRoleExtractionDuration records one extraction run.
func RecordRoleExtractionDuration(durationMs float64) {
	globalManager.roleExtractionMs.Observe(durationMs)
}

// RecordRoleExtractionFailure counts an extraction that returned no roles
// because of an error.
func RecordRoleExtractionFailure(reason string) {
	globalManager.roleExtractionFailures.WithLabelValues(reason).Inc()
}

// UpdateRoleClusters sets the number of labels from the latest extraction.
func UpdateRoleClusters(count int) {
	globalManager.roleClusters.Set(float64(count))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the heap usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
