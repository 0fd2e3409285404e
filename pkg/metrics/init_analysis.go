package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.AnalysesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "sociograph_analyses_total",
			Help: "Total number of analysis runs",
		},
		[]string{"algorithm", "status"},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sociograph_analysis_duration_seconds",
			Help:    "Analysis run duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1.0, 5.0, 30.0, 120.0},
		},
		[]string{"algorithm"},
	)

	r.AnalysisNodesSwept = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sociograph_analysis_nodes_swept",
			Help:    "Number of nodes visited per analysis run",
			Buckets: prometheus.ExponentialBuckets(10, 10, 7),
		},
		[]string{"algorithm"},
	)

	r.SlowAnalyses = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "sociograph_slow_analyses_total",
			Help: "Analysis runs that took longer than the slow threshold",
		},
		[]string{"algorithm"},
	)

	r.CliquesFound = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "sociograph_cliques_found",
			Help: "Maximal cliques found in the last enumeration",
		},
	)

	r.CommunitiesFound = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "sociograph_communities_found",
			Help: "Communities found in the last detection run",
		},
	)

	r.ModularityScore = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "sociograph_modularity_score",
			Help: "Modularity of the last detected partition",
		},
	)
}
