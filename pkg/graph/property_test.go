package graph

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// pairUp turns a flat ID stream into edge pairs, consuming two IDs per edge.
func pairUp(ids []int) [][2]int64 {
	pairs := make([][2]int64, 0, len(ids)/2)
	for i := 0; i+1 < len(ids); i += 2 {
		pairs = append(pairs, [2]int64{int64(ids[i]), int64(ids[i+1])})
	}
	return pairs
}

// graphFromPairs builds a graph from generated pairs, skipping self-loops.
func graphFromPairs(pairs [][2]int64) *Graph {
	g := New()
	for _, p := range pairs {
		if p[0] == p[1] {
			continue
		}
		g.AddEdge(NodeID(p[0]), NodeID(p[1]))
	}
	return g
}

// genIDStream generates random ID sequences over a small space so that
// duplicate edges and dense subgraphs actually occur.
func genIDStream() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, 15))
}

// TestGraphProperties verifies structural invariants that must hold for any
// sequence of edge insertions.
func TestGraphProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// Density is always within [0, 1]
	properties.Property("density in unit interval", prop.ForAll(
		func(ids []int) bool {
			g := graphFromPairs(pairUp(ids))
			d := g.Density()
			return d >= 0 && d <= 1
		},
		genIDStream(),
	))

	// Sum of degrees equals twice the edge count (handshake lemma)
	properties.Property("degree sum equals 2m", prop.ForAll(
		func(ids []int) bool {
			g := graphFromPairs(pairUp(ids))
			sum := 0
			for _, u := range g.Nodes() {
				deg, err := g.Degree(u)
				if err != nil {
					return false
				}
				sum += deg
			}
			return sum == 2*g.EdgeCount()
		},
		genIDStream(),
	))

	// Adjacency is symmetric
	properties.Property("adjacency symmetric", prop.ForAll(
		func(ids []int) bool {
			g := graphFromPairs(pairUp(ids))
			for _, u := range g.Nodes() {
				neighbors, err := g.Neighbors(u)
				if err != nil {
					return false
				}
				for _, v := range neighbors {
					if !g.HasEdge(v, u) {
						return false
					}
				}
			}
			return true
		},
		genIDStream(),
	))

	// Inserting the same edge list twice changes nothing
	properties.Property("bulk load idempotent", prop.ForAll(
		func(ids []int) bool {
			pairs := pairUp(ids)
			g := graphFromPairs(pairs)
			n, m := g.NodeCount(), g.EdgeCount()
			for _, p := range pairs {
				if p[0] == p[1] {
					continue
				}
				g.AddEdge(NodeID(p[0]), NodeID(p[1]))
			}
			return g.NodeCount() == n && g.EdgeCount() == m
		},
		genIDStream(),
	))

	properties.TestingRun(t)
}
