package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "sociograph_graph_nodes_total",
			Help: "Total number of nodes in the loaded graph",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "sociograph_graph_edges_total",
			Help: "Total number of edges in the loaded graph",
		},
	)

	r.GraphDensity = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "sociograph_graph_density",
			Help: "Edge density of the loaded graph",
		},
	)

	r.GraphComponents = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "sociograph_graph_components",
			Help: "Number of connected components in the loaded graph",
		},
	)

	r.GraphAvgDegree = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "sociograph_graph_avg_degree",
			Help: "Average node degree of the loaded graph",
		},
	)
}
