// Package metrics provides Prometheus metrics for ticket loading and analysis.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeError   = "error"
)

// Manager manages all Prometheus metrics for the ticket analyses.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         *prometheus.Registry

	// Loader Metrics
	ticketsLoaded prometheus.Gauge
	loadLatency   prometheus.Histogram
	loadErrors    *prometheus.CounterVec

	// Analysis Metrics
	ticketsMatched   *prometheus.GaugeVec
	analysisRuns     *prometheus.CounterVec
	analysisLatency  *prometheus.HistogramVec
	carriersReported prometheus.Gauge
	priceDifference  prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "tickets",
		subsystem:        "analysis",
		histogramBuckets: prometheus.DefBuckets,
		constLabels:      map[string]string{},
		registry:         prometheus.NewRegistry(),
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.ticketsLoaded = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "tickets_loaded",
		Help:        "Number of tickets in the last loaded collection",
		ConstLabels: m.constLabels,
	})

	m.loadLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "load_latency_milliseconds",
		Help:        "Histogram of ticket file load latency in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})

	m.loadErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "load_errors_total",
			Help:        "Total number of failed ticket loads by kind (io, decode)",
			ConstLabels: m.constLabels,
		},
		[]string{"kind"},
	)

	m.ticketsMatched = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "tickets_matched",
			Help:        "Number of tickets matching the route in the last run of an analysis",
			ConstLabels: m.constLabels,
		},
		[]string{"analysis"},
	)

	m.analysisRuns = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "runs_total",
			Help:        "Total number of analysis runs by analysis and outcome",
			ConstLabels: m.constLabels,
		},
		[]string{"analysis", "outcome"},
	)

	m.analysisLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "run_latency_milliseconds",
			Help:        "Histogram of analysis run latency in milliseconds",
			Buckets:     m.histogramBuckets,
			ConstLabels: m.constLabels,
		},
		[]string{"analysis"},
	)

	m.carriersReported = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "carriers_reported",
		Help:        "Number of carriers in the last minimum flight time report",
		ConstLabels: m.constLabels,
	})

	m.priceDifference = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "price_mean_median_difference",
		Help:        "Mean minus median ticket price in the last price report",
		ConstLabels: m.constLabels,
	})
}

// Registry returns the registry the manager's metrics are registered on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all metrics of the manager to path in the text
// exposition format, for the node exporter textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteTextfile, err)
	}
	return nil
}

// Loader Metrics Functions.

// UpdateTicketsLoaded sets the size of the last loaded collection.
func UpdateTicketsLoaded(count int) {
	globalManager.ticketsLoaded.Set(float64(count))
}

// RecordLoadLatency records a ticket file load latency.
func RecordLoadLatency(latencyMs float64) {
	globalManager.loadLatency.Observe(latencyMs)
}

// RecordLoadError increments the load error counter for kind.
func RecordLoadError(kind string) {
	globalManager.loadErrors.WithLabelValues(kind).Inc()
}

// Analysis Metrics Functions.

// UpdateTicketsMatched sets the number of route-matching tickets for analysis.
func UpdateTicketsMatched(analysis string, count int) {
	globalManager.ticketsMatched.WithLabelValues(analysis).Set(float64(count))
}

// RecordAnalysisRun increments the run counter for analysis and outcome.
func RecordAnalysisRun(analysis, outcome string) {
	globalManager.analysisRuns.WithLabelValues(analysis, outcome).Inc()
}

// RecordAnalysisLatency records the latency of one analysis run.
func RecordAnalysisLatency(analysis string, latencyMs float64) {
	globalManager.analysisLatency.WithLabelValues(analysis).Observe(latencyMs)
}

// UpdateCarriersReported sets the carrier count of the last duration report.
func UpdateCarriersReported(count int) {
	globalManager.carriersReported.Set(float64(count))
}

// UpdatePriceDifference sets the mean minus median of the last price report.
func UpdatePriceDifference(diff float64) {
	globalManager.priceDifference.Set(diff)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// WriteTextfile writes the global metrics to path.
func WriteTextfile(path string) error {
	return globalManager.WriteTextfile(path)
}
