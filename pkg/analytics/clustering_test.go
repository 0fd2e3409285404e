package analytics

import (
	"math"
	"testing"

	"github.com/tburke/sociograph/pkg/graph"
)

func TestTriangles(t *testing.T) {
	g := exampleGraph(t)

	counts := Triangles(g)
	for _, u := range []graph.NodeID{1, 2, 3} {
		if counts[u] != 1 {
			t.Errorf("Triangle member %d should count 1, got %d", u, counts[u])
		}
	}
	if counts[4] != 0 || counts[5] != 0 {
		t.Errorf("Pair nodes should count 0 triangles, got %d, %d", counts[4], counts[5])
	}
}

func TestClusteringCoefficient_Triangle(t *testing.T) {
	g := buildGraph(t, [][2]graph.NodeID{{1, 2}, {2, 3}, {3, 1}})

	for u, c := range ClusteringCoefficient(g) {
		if c != 1.0 {
			t.Errorf("Triangle node %d should score 1, got %f", u, c)
		}
	}
}

func TestClusteringCoefficient_Star(t *testing.T) {
	g := starGraph(t, 4)

	coefficients := ClusteringCoefficient(g)
	// No two leaves are adjacent, so every node scores 0
	for u, c := range coefficients {
		if c != 0 {
			t.Errorf("Star node %d should score 0, got %f", u, c)
		}
	}
}

func TestClusteringCoefficient_PartialNeighborhood(t *testing.T) {
	// Node 1's neighbors are 2, 3, 4; only (2,3) adjacent: 1/3
	g := buildGraph(t, [][2]graph.NodeID{
		{1, 2}, {1, 3}, {1, 4}, {2, 3},
	})

	coefficients := ClusteringCoefficient(g)
	if math.Abs(coefficients[1]-1.0/3.0) > 1e-12 {
		t.Errorf("Expected 1/3 for node 1, got %f", coefficients[1])
	}
}

func TestAverageClusteringCoefficient(t *testing.T) {
	if AverageClusteringCoefficient(graph.New()) != 0 {
		t.Error("Empty graph average should be 0")
	}

	g := buildGraph(t, [][2]graph.NodeID{{1, 2}, {2, 3}, {3, 1}})
	if avg := AverageClusteringCoefficient(g); avg != 1.0 {
		t.Errorf("Triangle average should be 1, got %f", avg)
	}
}
