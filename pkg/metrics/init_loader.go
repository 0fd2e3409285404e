package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initLoaderMetrics() {
	r.LoaderRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "sociograph_loader_runs_total",
			Help: "Total number of graph load runs",
		},
		[]string{"source", "status"},
	)

	r.LoaderEdgesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "sociograph_loader_edges_total",
			Help: "Edges processed during loading",
		},
		[]string{"outcome"},
	)

	r.LoaderDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sociograph_loader_duration_seconds",
			Help:    "Graph load duration in seconds",
			Buckets: []float64{0.01, 0.1, 0.5, 1.0, 5.0, 30.0, 120.0},
		},
		[]string{"source"},
	)

	r.LoaderBytesRead = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "sociograph_loader_bytes_read_total",
			Help: "Bytes read from edge list sources",
		},
	)
}
