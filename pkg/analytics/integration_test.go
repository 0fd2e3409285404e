package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tburke/sociograph/pkg/graph"
)

// TestCompleteAnalysisWorkflow walks the full analysis pipeline over one
// graph the way a batch run does: structure, paths, centrality, cliques,
// communities.
func TestCompleteAnalysisWorkflow(t *testing.T) {
	t.Log("=== Analysis workflow: triangle plus pair ===")

	g := graph.New()
	edges := [][2]graph.NodeID{{1, 2}, {2, 3}, {3, 1}, {4, 5}}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	t.Log("Step 1: Structure")
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.InDelta(t, 0.4, g.Density(), 1e-12)

	t.Log("Step 2: Components")
	components := ConnectedComponents(g)
	require.Len(t, components, 2)
	assert.Equal(t, 3, components[0].Size)
	assert.Equal(t, 2, components[1].Size)
	assert.False(t, IsConnected(g))

	t.Log("Step 3: Shortest paths")
	path, err := ShortestPath(g, 1, 3)
	require.NoError(t, err)
	assert.Len(t, path, 2)
	_, err = ShortestPath(g, 1, 5)
	assert.ErrorIs(t, err, ErrNoPath)

	t.Log("Step 4: Centrality")
	result, err := ComputeAllCentrality(g, DefaultBetweennessOptions())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, result.Degree[1], 1e-12)
	assert.InDelta(t, 0.5, result.Closeness[1], 1e-12)
	assert.InDelta(t, 0.25, result.Closeness[4], 1e-12)
	for u, s := range result.Betweenness {
		assert.GreaterOrEqual(t, s, 0.0, "betweenness of %d", u)
		assert.LessOrEqual(t, s, 1.0, "betweenness of %d", u)
	}

	t.Log("Step 5: Cliques")
	cliques := FindCliques(g)
	require.Len(t, cliques, 2)
	sizes := map[int]int{}
	for _, c := range cliques {
		sizes[len(c)]++
	}
	assert.Equal(t, map[int]int{3: 1, 2: 1}, sizes)

	t.Log("Step 6: Communities")
	partition := BestPartition(g, DefaultCommunityOptions())
	assert.Len(t, partition.NodeCommunity, 5)
	assert.NotEqual(t, partition.NodeCommunity[1], partition.NodeCommunity[4])
	assert.Greater(t, partition.Modularity, 0.0)

	t.Log("Step 7: Clustering")
	coefficients := ClusteringCoefficient(g)
	assert.Equal(t, 1.0, coefficients[1])
	assert.Equal(t, 0.0, coefficients[4])
}

// TestWorkflowKarateStyle exercises the pipeline on a denser two-faction
// graph and checks the measures agree with each other.
func TestWorkflowKarateStyle(t *testing.T) {
	g := graph.New()
	factionA := []graph.NodeID{1, 2, 3, 4, 5}
	factionB := []graph.NodeID{6, 7, 8, 9, 10}
	for _, faction := range [][]graph.NodeID{factionA, factionB} {
		for i := 0; i < len(faction); i++ {
			for j := i + 1; j < len(faction); j++ {
				require.NoError(t, g.AddEdge(faction[i], faction[j]))
			}
		}
	}
	// Two bridges between factions
	require.NoError(t, g.AddEdge(5, 6))
	require.NoError(t, g.AddEdge(1, 10))

	require.True(t, IsConnected(g))

	result, err := ComputeAllCentrality(g, DefaultBetweennessOptions())
	require.NoError(t, err)

	// Bridge endpoints must carry the betweenness
	for _, bridge := range []graph.NodeID{1, 5, 6, 10} {
		for _, interior := range []graph.NodeID{2, 3, 4, 7, 8, 9} {
			assert.Greater(t, result.Betweenness[bridge], result.Betweenness[interior],
				"bridge %d should outrank interior %d", bridge, interior)
		}
	}

	partition := BestPartition(g, DefaultCommunityOptions())
	assert.Len(t, partition.Communities, 2)
	for _, faction := range [][]graph.NodeID{factionA, factionB} {
		label := partition.NodeCommunity[faction[0]]
		for _, u := range faction[1:] {
			assert.Equal(t, label, partition.NodeCommunity[u],
				"faction member %d split off", u)
		}
	}

	avg, err := AverageShortestPathLength(g)
	require.NoError(t, err)
	d, err := Diameter(g)
	require.NoError(t, err)
	assert.LessOrEqual(t, avg, float64(d))
	assert.Equal(t, 3, d)
}
