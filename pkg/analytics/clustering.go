package analytics

import (
	"github.com/tburke/sociograph/pkg/graph"
)

// Triangles counts the triangles each node participates in.
func Triangles(g *graph.Graph) map[graph.NodeID]int {
	counts := make(map[graph.NodeID]int, g.NodeCount())

	for _, u := range g.Nodes() {
		neighbors, _ := g.Neighbors(u)
		triangles := 0
		for i := 0; i < len(neighbors); i++ {
			for j := i + 1; j < len(neighbors); j++ {
				if g.HasEdge(neighbors[i], neighbors[j]) {
					triangles++
				}
			}
		}
		counts[u] = triangles
	}

	return counts
}

// ClusteringCoefficient computes the local clustering coefficient of every
// node: the fraction of a node's neighbor pairs that are themselves
// adjacent. Nodes with fewer than two neighbors score 0.
func ClusteringCoefficient(g *graph.Graph) map[graph.NodeID]float64 {
	triangles := Triangles(g)
	coefficients := make(map[graph.NodeID]float64, len(triangles))

	for _, u := range g.Nodes() {
		k := g.AdjacencyDegree(u)
		if k < 2 {
			coefficients[u] = 0
			continue
		}
		possible := k * (k - 1) / 2
		coefficients[u] = float64(triangles[u]) / float64(possible)
	}

	return coefficients
}

// AverageClusteringCoefficient returns the mean local clustering
// coefficient, or 0 for an empty graph.
func AverageClusteringCoefficient(g *graph.Graph) float64 {
	coefficients := ClusteringCoefficient(g)
	if len(coefficients) == 0 {
		return 0
	}

	sum := 0.0
	for _, c := range coefficients {
		sum += c
	}
	return sum / float64(len(coefficients))
}
