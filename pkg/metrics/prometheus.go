// Package metrics provides Prometheus metrics for the lead intelligence service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values for boolean dimensions.
const (
	labelTrue  = "true"
	labelFalse = "false"
)

// Manager manages all Prometheus metrics for the lead intelligence service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Enrichment path
	enrichments     *prometheus.CounterVec
	enrichLatency   prometheus.Histogram
	providerLatency *prometheus.HistogramVec
	fieldsEnriched  prometheus.Histogram
	historyEntries  prometheus.Gauge

	// Batch enrichment
	batchSize       prometheus.Histogram
	batchQueueDepth prometheus.Gauge
	batchRejected   prometheus.Counter
	workerJobs      *prometheus.CounterVec

	// Outreach path
	quickReplies          *prometheus.CounterVec
	rankingFallbacks      prometheus.Counter
	personalizationErrors *prometheus.CounterVec
	templateCandidates    prometheus.Histogram
	catalogTemplates      prometheus.Gauge

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorRateByComponent *prometheus.CounterVec
	errorRateByType      *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec
	errorLatency         *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "leadintel",
		subsystem:        "engine",
		histogramBuckets: []float64{1, 5, 10, 25, 50, 100, 150, 250, 500, 1000, 2500},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, Buckets: buckets}
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every metric definition
	auto := promauto.With(m.registry)

	m.enrichments = auto.NewCounterVec(
		m.counterOpts("enrichments_total", "Total number of enrichment runs by outcome status"),
		[]string{"status"},
	)
	m.enrichLatency = auto.NewHistogram(
		m.histogramOpts("enrichment_duration_milliseconds", "End-to-end enrichment duration in milliseconds", m.histogramBuckets),
	)
	m.providerLatency = auto.NewHistogramVec(
		m.histogramOpts("provider_latency_milliseconds", "Profile provider call latency in milliseconds", m.histogramBuckets),
		[]string{"provider", "success"},
	)
	m.fieldsEnriched = auto.NewHistogram(
		m.histogramOpts("fields_enriched", "Number of logical field groups filled per enrichment", []float64{0, 1, 2, 3, 4, 5}),
	)
	m.historyEntries = auto.NewGauge(
		m.gaugeOpts("history_entries", "Number of entries in the enrichment history log"),
	)

	m.batchSize = auto.NewHistogram(
		m.histogramOpts("batch_size", "Number of contacts per batch enrichment", []float64{1, 5, 10, 25, 50, 100, 250}),
	)
	m.batchQueueDepth = auto.NewGauge(
		m.gaugeOpts("batch_queue_depth", "Contacts waiting in the batch enrichment queue"),
	)
	m.batchRejected = auto.NewCounter(
		m.counterOpts("batch_jobs_rejected_total", "Batch jobs the queue refused"),
	)
	m.workerJobs = auto.NewCounterVec(
		m.counterOpts("worker_jobs_total", "Batch jobs processed by enrichment workers by outcome status"),
		[]string{"status"},
	)

	m.quickReplies = auto.NewCounterVec(
		m.counterOpts("quick_replies_total", "Total number of quick reply generations by fallback usage"),
		[]string{"fallback"},
	)
	m.rankingFallbacks = auto.NewCounter(
		m.counterOpts("ranking_fallbacks_total", "Rankings that fell back to the unfiltered follow-up and objection templates"),
	)
	m.personalizationErrors = auto.NewCounterVec(
		m.counterOpts("personalization_errors_total", "Templates dropped because placeholders were left unresolved"),
		[]string{"template_id"},
	)
	m.templateCandidates = auto.NewHistogram(
		m.histogramOpts("template_candidates", "Number of templates scored per ranking", []float64{0, 1, 2, 5, 10, 20, 50}),
	)
	m.catalogTemplates = auto.NewGauge(
		m.gaugeOpts("catalog_templates", "Number of templates in the loaded catalog"),
	)

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByComponent = auto.NewCounterVec(
		m.counterOpts("errors_by_component_total", "Total number of errors by component"),
		[]string{"component", "error_type"},
	)
	m.errorRateByType = auto.NewCounterVec(
		m.counterOpts("errors_by_type_total", "Total number of errors by type"),
		[]string{"error_type", "severity"},
	)
	m.errorRateByEndpoint = auto.NewCounterVec(
		m.counterOpts("errors_by_endpoint_total", "Total number of errors by endpoint"),
		[]string{"endpoint", "method", "error_type"},
	)
	m.errorLatency = auto.NewHistogramVec(
		m.histogramOpts("error_latency_milliseconds", "Latency of operations that resulted in errors", m.histogramBuckets),
		[]string{"component", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes", "System memory usage in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count", "Number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(
		m.histogramOpts("system_gc_pause_time_milliseconds", "GC pause time in milliseconds",
			[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000}),
	)
}

// RecordEnrichment records one enrichment run.
func RecordEnrichment(status string, fields int, durationMs float64) {
	globalManager.enrichments.WithLabelValues(status).Inc()
	globalManager.fieldsEnriched.Observe(float64(fields))
	globalManager.enrichLatency.Observe(durationMs)
}

// RecordProviderLatency records one profile provider call.
func RecordProviderLatency(provider string, success bool, latencyMs float64) {
	globalManager.providerLatency.WithLabelValues(provider, boolLabel(success)).Observe(latencyMs)
}

// UpdateHistoryEntries sets the history log size.
func UpdateHistoryEntries(count int) {
	globalManager.historyEntries.Set(float64(count))
}

// RecordBatch records the size of one batch enrichment.
func RecordBatch(size int) {
	globalManager.batchSize.Observe(float64(size))
}

// UpdateBatchQueueDepth sets the number of queued batch jobs.
func UpdateBatchQueueDepth(depth int) {
	globalManager.batchQueueDepth.Set(float64(depth))
}

// RecordBatchRejected counts a job the batch queue refused.
func RecordBatchRejected() {
	globalManager.batchRejected.Inc()
}

// RecordWorkerJob counts one job finished by a worker.
func RecordWorkerJob(status string) {
	globalManager.workerJobs.WithLabelValues(status).Inc()
}

// RecordQuickReplies records one quick reply generation.
func RecordQuickReplies(fallback bool) {
	globalManager.quickReplies.WithLabelValues(boolLabel(fallback)).Inc()
	if fallback {
		globalManager.rankingFallbacks.Inc()
	}
}

// RecordPersonalizationError counts a template dropped by the personalizer.
func RecordPersonalizationError(templateID string) {
	globalManager.personalizationErrors.WithLabelValues(templateID).Inc()
}

// RecordTemplateCandidates records how many templates a ranking scored.
func RecordTemplateCandidates(count int) {
	globalManager.templateCandidates.Observe(float64(count))
}

// UpdateCatalogTemplates sets the loaded catalog size.
func UpdateCatalogTemplates(count int) {
	globalManager.catalogTemplates.Set(float64(count))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records the latency of an operation that resulted in an error.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

func boolLabel(b bool) string {
	if b {
		return labelTrue
	}
	return labelFalse
}
