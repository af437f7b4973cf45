// Package metrics provides Prometheus metrics for the slate pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the slate service.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	enabled          bool
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Provider metrics
	fetchRequests *prometheus.CounterVec
	fetchLatency  *prometheus.HistogramVec
	fetchErrors   *prometheus.CounterVec
	gamesFetched  *prometheus.CounterVec

	// Data quality
	duplicatesDropped prometheus.Counter
	invalidRecords    prometheus.Counter
	unrankedLookups   prometheus.Counter

	// Pipeline output
	teamsRated      prometheus.Gauge
	matchupsByTier  *prometheus.GaugeVec
	pipelineRuns    *prometheus.CounterVec
	pipelineLatency prometheus.Histogram
	lastRunUnix     prometheus.Gauge

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// subsystem groups every collector under <namespace>_pipeline_.
const subsystem = "pipeline"

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// Init replaces the global manager with one built from opts on a fresh
// registry. Call it once at startup, before recorders run concurrently.
func Init(opts ...Option) {
	registry := prometheus.NewRegistry()
	all := append(append([]Option(nil), opts...), WithPrometheusRegistry(registry))
	globalManager = NewManager(all...)
	customRegistry = registry
}

// NewManager creates a new metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "slate",
		histogramBuckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		enabled:          true,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) histogramOpts(name, help string) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
		Buckets:     m.histogramBuckets,
	}
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.fetchRequests = auto.NewCounterVec(
		m.counterOpts("fetch_requests_total", "Upstream requests by provider and endpoint"),
		[]string{"provider", "endpoint"},
	)
	m.fetchLatency = auto.NewHistogramVec(
		m.histogramOpts("fetch_latency_milliseconds", "Upstream request latency in milliseconds"),
		[]string{"provider", "endpoint"},
	)
	m.fetchErrors = auto.NewCounterVec(
		m.counterOpts("fetch_errors_total", "Upstream failures by provider and reason"),
		[]string{"provider", "reason"},
	)
	m.gamesFetched = auto.NewCounterVec(
		m.counterOpts("games_fetched_total", "Game records returned by providers"),
		[]string{"provider", "kind"},
	)

	m.duplicatesDropped = auto.NewCounter(
		m.counterOpts("duplicate_games_total", "Game records dropped as duplicates of an earlier record"),
	)
	m.invalidRecords = auto.NewCounter(
		m.counterOpts("invalid_records_total", "Game records skipped because they could not be parsed or failed validation"),
	)
	m.unrankedLookups = auto.NewCounter(
		m.counterOpts("unranked_lookups_total", "Matchup sides scored with the neutral default"),
	)

	m.teamsRated = auto.NewGauge(
		m.gaugeOpts("teams_rated", "Teams in the latest power table"),
	)
	m.matchupsByTier = auto.NewGaugeVec(
		m.gaugeOpts("matchups", "Scored matchups in the latest run by tier"),
		[]string{"tier"},
	)
	m.pipelineRuns = auto.NewCounterVec(
		m.counterOpts("runs_total", "Pipeline runs by outcome"),
		[]string{"outcome"},
	)
	m.pipelineLatency = auto.NewHistogram(
		m.histogramOpts("run_duration_milliseconds", "Pipeline run duration in milliseconds"),
	)
	m.lastRunUnix = auto.NewGauge(
		m.gaugeOpts("last_run_unix", "Unix timestamp of the last completed run"),
	)

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds"),
		[]string{"endpoint", "method", "status_code"},
	)
}

// RecordFetch records one upstream request and its latency.
func (m *Manager) RecordFetch(provider, endpoint string, latencyMs float64) {
	if !m.enabled {
		return
	}
	m.fetchRequests.WithLabelValues(provider, endpoint).Inc()
	m.fetchLatency.WithLabelValues(provider, endpoint).Observe(latencyMs)
}

// RecordFetchError counts a failed upstream request.
func (m *Manager) RecordFetchError(provider, reason string) {
	if !m.enabled {
		return
	}
	m.fetchErrors.WithLabelValues(provider, reason).Inc()
}

// RecordGamesFetched adds n game records of kind ("results" or "schedule").
func (m *Manager) RecordGamesFetched(provider, kind string, n int) {
	if !m.enabled || n <= 0 {
		return
	}
	m.gamesFetched.WithLabelValues(provider, kind).Add(float64(n))
}

// RecordDuplicates adds n dropped duplicate games.
func (m *Manager) RecordDuplicates(n int) {
	if !m.enabled || n <= 0 {
		return
	}
	m.duplicatesDropped.Add(float64(n))
}

// RecordInvalidRecord counts one skipped malformed or invalid record.
func (m *Manager) RecordInvalidRecord() {
	if !m.enabled {
		return
	}
	m.invalidRecords.Inc()
}

// RecordUnrankedLookup counts one side scored with the neutral default.
func (m *Manager) RecordUnrankedLookup() {
	if !m.enabled {
		return
	}
	m.unrankedLookups.Inc()
}

// UpdateTeamsRated sets the size of the latest power table.
func (m *Manager) UpdateTeamsRated(n int) {
	if !m.enabled {
		return
	}
	m.teamsRated.Set(float64(n))
}

// UpdateMatchupsByTier replaces the per-tier matchup gauges.
func (m *Manager) UpdateMatchupsByTier(counts map[string]int) {
	if !m.enabled {
		return
	}
	m.matchupsByTier.Reset()
	for tier, n := range counts {
		m.matchupsByTier.WithLabelValues(tier).Set(float64(n))
	}
}

// RecordPipelineRun records a finished run with its outcome and duration.
func (m *Manager) RecordPipelineRun(outcome string, durationMs float64, finishedUnix int64) {
	if !m.enabled {
		return
	}
	m.pipelineRuns.WithLabelValues(outcome).Inc()
	m.pipelineLatency.Observe(durationMs)
	m.lastRunUnix.Set(float64(finishedUnix))
}

// RecordHTTPRequest records an HTTP request and its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// Package-level recorders backed by the global manager.

// RecordFetch records one upstream request on the global manager.
func RecordFetch(provider, endpoint string, latencyMs float64) {
	globalManager.RecordFetch(provider, endpoint, latencyMs)
}

// RecordFetchError counts a failed upstream request.
func RecordFetchError(provider, reason string) { globalManager.RecordFetchError(provider, reason) }

// RecordGamesFetched adds n fetched game records.
func RecordGamesFetched(provider, kind string, n int) {
	globalManager.RecordGamesFetched(provider, kind, n)
}

// RecordDuplicates adds n dropped duplicate games.
func RecordDuplicates(n int) { globalManager.RecordDuplicates(n) }

// RecordInvalidRecord counts one skipped malformed or invalid record.
func RecordInvalidRecord() { globalManager.RecordInvalidRecord() }

// RecordUnrankedLookup counts one side scored with the neutral default.
func RecordUnrankedLookup() { globalManager.RecordUnrankedLookup() }

// UpdateTeamsRated sets the size of the latest power table.
func UpdateTeamsRated(n int) { globalManager.UpdateTeamsRated(n) }

// UpdateMatchupsByTier replaces the per-tier matchup gauges.
func UpdateMatchupsByTier(counts map[string]int) { globalManager.UpdateMatchupsByTier(counts) }

// RecordPipelineRun records a finished run.
func RecordPipelineRun(outcome string, durationMs float64, finishedUnix int64) {
	globalManager.RecordPipelineRun(outcome, durationMs, finishedUnix)
}

// RecordHTTPRequest records an HTTP request and its duration.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
