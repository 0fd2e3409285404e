package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Graph Metrics
	GraphNodesTotal   prometheus.Gauge
	GraphEdgesTotal   prometheus.Gauge
	GraphDensity      prometheus.Gauge
	GraphComponents   prometheus.Gauge
	GraphAvgDegree    prometheus.Gauge

	// Analysis Metrics
	AnalysesTotal      *prometheus.CounterVec
	AnalysisDuration   *prometheus.HistogramVec
	AnalysisNodesSwept *prometheus.HistogramVec
	SlowAnalyses       *prometheus.CounterVec
	CliquesFound       prometheus.Gauge
	CommunitiesFound   prometheus.Gauge
	ModularityScore    prometheus.Gauge

	// Loader Metrics
	LoaderRunsTotal    *prometheus.CounterVec
	LoaderEdgesTotal   *prometheus.CounterVec
	LoaderDuration     *prometheus.HistogramVec
	LoaderBytesRead    prometheus.Counter

	// System Metrics
	UptimeSeconds    prometheus.Gauge
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge
	MemorySysBytes   prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initGraphMetrics()
	r.initAnalysisMetrics()
	r.initLoaderMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
