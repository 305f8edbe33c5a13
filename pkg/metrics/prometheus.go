// Package metrics provides Prometheus metrics for the gloomboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Refresh cycle metrics.
	refreshTotal     prometheus.Counter
	refreshErrors    prometheus.Counter
	refreshDuration  prometheus.Histogram
	snapshotLastUnix prometheus.Gauge

	// Pipeline metrics.
	pipelineDuration   prometheus.Histogram
	fallbackSelections prometheus.Counter
	teamsTracked       prometheus.Gauge

	// Feed metrics.
	feedErrors *prometheus.CounterVec

	// HTTP metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics.
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "gloomboard",
		subsystem:        "dashboard",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.refreshTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_total",
		Help:      "Number of snapshot refresh cycles attempted.",
	})
	m.refreshErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_errors_total",
		Help:      "Number of refresh cycles that failed to produce a snapshot.",
	})
	m.refreshDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_duration_ms",
		Help:      "Duration of a full refresh cycle in milliseconds.",
		Buckets:   m.histogramBuckets,
	})
	m.snapshotLastUnix = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_last_unix",
		Help:      "Unix timestamp of the most recent successful snapshot.",
	})

	m.pipelineDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pipeline_duration_ms",
		Help:      "Duration of the presentation pipeline over one snapshot in milliseconds.",
		Buckets:   m.histogramBuckets,
	})
	m.fallbackSelections = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fallback_selections_total",
		Help:      "Number of mood selections that fell back to the symbolic icon.",
	})
	m.teamsTracked = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "teams_tracked",
		Help:      "Number of teams in the current snapshot.",
	})

	m.feedErrors = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "feed_errors_total",
		Help:      "Upstream feed failures by endpoint.",
	}, []string{"endpoint"})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method, and status.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds.",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.systemMemoryUsage = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Allocated heap bytes.",
	})
	m.systemGoroutineCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current goroutine count.",
	})
}

// GetRegistry returns the registry backing the global manager, for serving
// via promhttp.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level record helpers operating on the global manager.

// RecordRefresh records one completed refresh cycle.
func RecordRefresh(durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.refreshTotal.Inc()
	globalManager.refreshDuration.Observe(durationMs)
}

// RecordRefreshError records a refresh cycle that failed entirely.
func RecordRefreshError() {
	if !globalManager.enabled {
		return
	}
	globalManager.refreshErrors.Inc()
}

// UpdateSnapshotTime marks when the latest snapshot was taken.
func UpdateSnapshotTime(unix float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.snapshotLastUnix.Set(unix)
}

// RecordPipelineDuration records how long one pipeline pass took.
func RecordPipelineDuration(durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.pipelineDuration.Observe(durationMs)
}

// RecordFallbackSelection counts a mood selection served by the symbolic icon.
func RecordFallbackSelection() {
	if !globalManager.enabled {
		return
	}
	globalManager.fallbackSelections.Inc()
}

// UpdateTeamsTracked sets the team count of the current snapshot.
func UpdateTeamsTracked(n int) {
	if !globalManager.enabled {
		return
	}
	globalManager.teamsTracked.Set(float64(n))
}

// RecordFeedError counts an upstream feed failure for an endpoint.
func RecordFeedError(endpoint string) {
	if !globalManager.enabled {
		return
	}
	globalManager.feedErrors.WithLabelValues(endpoint).Inc()
}

// RecordHTTPRequest counts one served HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records the latency of one HTTP request.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
}

// UpdateSystemMemoryUsage sets the allocated heap gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(n int) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemGoroutineCount.Set(float64(n))
}
