package analytics

import (
	"math"
	"testing"

	"github.com/tburke/sociograph/pkg/graph"
)

// twoCliqueBridge builds two K4s joined by a single bridge edge, the
// canonical two-community graph.
func twoCliqueBridge(t *testing.T) *graph.Graph {
	t.Helper()

	g := graph.New()
	left := []graph.NodeID{1, 2, 3, 4}
	right := []graph.NodeID{5, 6, 7, 8}
	for _, group := range [][]graph.NodeID{left, right} {
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if err := g.AddEdge(group[i], group[j]); err != nil {
					t.Fatalf("AddEdge failed: %v", err)
				}
			}
		}
	}
	g.AddEdge(4, 5) // bridge
	return g
}

func TestBestPartition_CoversEveryNodeOnce(t *testing.T) {
	g := twoCliqueBridge(t)

	result := BestPartition(g, DefaultCommunityOptions())

	if len(result.NodeCommunity) != g.NodeCount() {
		t.Errorf("Partition covers %d nodes, graph has %d", len(result.NodeCommunity), g.NodeCount())
	}

	seen := make(map[graph.NodeID]bool)
	for _, c := range result.Communities {
		if c.Size != len(c.Nodes) {
			t.Errorf("Community %d size mismatch: %d vs %d", c.ID, c.Size, len(c.Nodes))
		}
		for _, u := range c.Nodes {
			if seen[u] {
				t.Errorf("Node %d appears in two communities", u)
			}
			seen[u] = true
			if result.NodeCommunity[u] != c.ID {
				t.Errorf("Node %d labeled %d but listed under community %d", u, result.NodeCommunity[u], c.ID)
			}
		}
	}
	if len(seen) != g.NodeCount() {
		t.Errorf("Communities cover %d nodes, graph has %d", len(seen), g.NodeCount())
	}
}

func TestBestPartition_TwoCliques(t *testing.T) {
	g := twoCliqueBridge(t)

	result := BestPartition(g, DefaultCommunityOptions())

	if len(result.Communities) != 2 {
		t.Fatalf("Expected 2 communities, got %d", len(result.Communities))
	}

	// The cliques must not be split across communities
	for _, group := range [][]graph.NodeID{{1, 2, 3, 4}, {5, 6, 7, 8}} {
		label := result.NodeCommunity[group[0]]
		for _, u := range group[1:] {
			if result.NodeCommunity[u] != label {
				t.Errorf("Clique member %d separated from its community", u)
			}
		}
	}

	if result.Modularity <= 0 {
		t.Errorf("Expected positive modularity, got %f", result.Modularity)
	}
}

func TestBestPartition_DisconnectedComponents(t *testing.T) {
	g := exampleGraph(t)

	result := BestPartition(g, DefaultCommunityOptions())

	// Separate components can never share a community
	if result.NodeCommunity[1] == result.NodeCommunity[4] {
		t.Error("Nodes in different components share a community")
	}
	// The triangle stays together
	if result.NodeCommunity[1] != result.NodeCommunity[2] ||
		result.NodeCommunity[2] != result.NodeCommunity[3] {
		t.Error("Triangle should form one community")
	}
	if result.NodeCommunity[4] != result.NodeCommunity[5] {
		t.Error("The (4,5) pair should form one community")
	}
}

func TestBestPartition_ReportsLevels(t *testing.T) {
	g := twoCliqueBridge(t)

	result := BestPartition(g, DefaultCommunityOptions())

	if result.Levels < 1 {
		t.Errorf("An optimizing run should report at least one level, got %d", result.Levels)
	}
}

func TestBestPartition_EdgelessGraph(t *testing.T) {
	g := graph.New()
	g.AddNode(1)
	g.AddNode(2)
	g.AddNode(3)

	result := BestPartition(g, DefaultCommunityOptions())

	if len(result.Communities) != 3 {
		t.Fatalf("Expected singleton communities, got %d", len(result.Communities))
	}
	if result.Modularity != 0 {
		t.Errorf("Edgeless graph modularity should be 0, got %f", result.Modularity)
	}
	if result.Levels != 0 {
		t.Errorf("Edgeless graph runs no levels, got %d", result.Levels)
	}
}

func TestBestPartition_EmptyGraph(t *testing.T) {
	result := BestPartition(graph.New(), DefaultCommunityOptions())
	if len(result.Communities) != 0 || len(result.NodeCommunity) != 0 {
		t.Errorf("Empty graph should yield an empty partition, got %+v", result)
	}
}

func TestBestPartition_Reproducible(t *testing.T) {
	build := func() *graph.Graph {
		g := graph.New()
		edges := [][2]graph.NodeID{
			{1, 2}, {2, 3}, {3, 1}, {3, 4}, {4, 5}, {5, 6}, {6, 4},
		}
		for _, e := range edges {
			g.AddEdge(e[0], e[1])
		}
		return g
	}

	first := BestPartition(build(), DefaultCommunityOptions())
	for i := 0; i < 3; i++ {
		again := BestPartition(build(), DefaultCommunityOptions())
		for u, label := range first.NodeCommunity {
			if again.NodeCommunity[u] != label {
				t.Fatalf("Insertion-order run not reproducible for node %d", u)
			}
		}
	}
}

func TestBestPartition_SeededIsValid(t *testing.T) {
	g := twoCliqueBridge(t)

	result := BestPartition(g, CommunityOptions{Seed: 99})

	if len(result.NodeCommunity) != g.NodeCount() {
		t.Error("Seeded run must still label every node")
	}
	if len(result.Communities) != 2 {
		t.Errorf("Seeded run should still find the 2 cliques, got %d communities", len(result.Communities))
	}
}

func TestModularity_KnownValue(t *testing.T) {
	// Two disjoint edges, each its own community:
	// Q = sum_c [1/2 - (2/4)^2] = 2 * (0.5 - 0.25) = 0.5
	g := buildGraph(t, [][2]graph.NodeID{{1, 2}, {3, 4}})
	partition := map[graph.NodeID]int{1: 0, 2: 0, 3: 1, 4: 1}

	q := Modularity(g, partition)
	if math.Abs(q-0.5) > 1e-12 {
		t.Errorf("Expected modularity 0.5, got %f", q)
	}
}

func TestModularity_AllInOneCommunity(t *testing.T) {
	g := buildGraph(t, [][2]graph.NodeID{{1, 2}, {2, 3}, {3, 1}})
	partition := map[graph.NodeID]int{1: 0, 2: 0, 3: 0}

	// A single community holding everything always scores 0
	if q := Modularity(g, partition); math.Abs(q) > 1e-12 {
		t.Errorf("Expected modularity 0, got %f", q)
	}
}

func TestModularity_PartitionBeatsSingletons(t *testing.T) {
	g := twoCliqueBridge(t)

	good := BestPartition(g, DefaultCommunityOptions())

	singletons := make(map[graph.NodeID]int)
	for i, u := range g.Nodes() {
		singletons[u] = i
	}

	if good.Modularity <= Modularity(g, singletons) {
		t.Errorf("Detected partition (%f) should beat singletons (%f)",
			good.Modularity, Modularity(g, singletons))
	}
}
