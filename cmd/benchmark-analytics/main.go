package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/tburke/sociograph/pkg/analytics"
	"github.com/tburke/sociograph/pkg/graph"
)

func main() {
	nodes := flag.Int("nodes", 1000, "Number of nodes to create")
	edges := flag.Int("edges", 3000, "Number of edges to create")
	sample := flag.Int("sample", 0, "Betweenness source sample size (0 = exact)")
	workers := flag.Int("workers", 4, "Workers for parallel betweenness")
	seed := flag.Int64("seed", 42, "RNG seed for graph generation")
	flag.Parse()

	fmt.Printf("sociograph - Analytics Benchmark\n")
	fmt.Printf("================================\n\n")
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Nodes: %d\n", *nodes)
	fmt.Printf("  Edges: %d\n", *edges)
	fmt.Printf("  Sample: %d\n", *sample)
	fmt.Printf("  Workers: %d\n\n", *workers)

	// Build a random graph
	fmt.Printf("Building random graph...\n")
	start := time.Now()

	rng := rand.New(rand.NewSource(*seed))
	g := graph.New()
	for i := 0; i < *nodes; i++ {
		g.AddNode(graph.NodeID(i))
	}
	created := 0
	for created < *edges {
		u := graph.NodeID(rng.Intn(*nodes))
		v := graph.NodeID(rng.Intn(*nodes))
		if u == v {
			continue
		}
		if g.HasEdge(u, v) {
			continue
		}
		if err := g.AddEdge(u, v); err != nil {
			log.Fatalf("Failed to add edge: %v", err)
		}
		created++
	}
	fmt.Printf("Built %d nodes, %d edges in %v\n", g.NodeCount(), g.EdgeCount(), time.Since(start))

	// Benchmark 1: Connected Components
	fmt.Printf("\nBenchmark 1: Connected Components\n")
	start = time.Now()
	components := analytics.ConnectedComponents(g)
	fmt.Printf("Completed in %v\n", time.Since(start))
	fmt.Printf("  Components: %d\n", len(components))
	fmt.Printf("  Largest: %d nodes\n", largestComponent(components))

	// Benchmark 2: Degree Centrality
	fmt.Printf("\nBenchmark 2: Degree Centrality\n")
	start = time.Now()
	degree := analytics.DegreeCentrality(g)
	fmt.Printf("Completed in %v\n", time.Since(start))
	printTop("Degree", degree)

	// Benchmark 3: Closeness Centrality
	fmt.Printf("\nBenchmark 3: Closeness Centrality\n")
	start = time.Now()
	closeness := analytics.ClosenessCentrality(g)
	fmt.Printf("Completed in %v\n", time.Since(start))
	printTop("Closeness", closeness)

	// Benchmark 4: Betweenness Centrality
	fmt.Printf("\nBenchmark 4: Betweenness Centrality\n")
	start = time.Now()
	betweenness, err := analytics.BetweennessCentrality(g, analytics.BetweennessOptions{
		Normalized: true,
		SampleK:    *sample,
		Workers:    *workers,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatalf("Betweenness Centrality failed: %v", err)
	}
	fmt.Printf("Completed in %v\n", time.Since(start))
	printTop("Betweenness", betweenness)

	// Benchmark 5: Clustering Coefficient
	fmt.Printf("\nBenchmark 5: Clustering Coefficient\n")
	start = time.Now()
	avgCluster := analytics.AverageClusteringCoefficient(g)
	fmt.Printf("Completed in %v\n", time.Since(start))
	fmt.Printf("  Average: %.6f\n", avgCluster)

	// Benchmark 6: Maximal Cliques
	fmt.Printf("\nBenchmark 6: Maximal Cliques\n")
	start = time.Now()
	cliques := analytics.FindCliques(g)
	fmt.Printf("Completed in %v\n", time.Since(start))
	fmt.Printf("  Cliques: %d\n", len(cliques))
	fmt.Printf("  Largest: %d nodes\n", largestClique(cliques))

	// Benchmark 7: Louvain Communities
	fmt.Printf("\nBenchmark 7: Louvain Communities\n")
	start = time.Now()
	partition := analytics.BestPartition(g, analytics.DefaultCommunityOptions())
	fmt.Printf("Completed in %v\n", time.Since(start))
	fmt.Printf("  Communities: %d\n", len(partition.Communities))
	fmt.Printf("  Modularity: %.4f\n", partition.Modularity)
	fmt.Printf("  Levels: %d\n", partition.Levels)

	// Summary
	fmt.Printf("\nSummary\n")
	fmt.Printf("=======\n")
	fmt.Printf("Graph with %d nodes and %d edges:\n", *nodes, *edges)
	fmt.Printf("  Components: %d separate subgraphs\n", len(components))
	fmt.Printf("  Clustering: %.2f%% local connectivity\n", avgCluster*100)
	fmt.Printf("  Communities: %d detected via Louvain\n", len(partition.Communities))

	fmt.Printf("\nBenchmark complete\n")
}

func printTop(measure string, scores map[graph.NodeID]float64) {
	fmt.Printf("  Top 5 nodes by %s:\n", measure)
	for i, node := range analytics.TopNodes(scores, 5) {
		fmt.Printf("    %d. Node %d (score: %.6f)\n", i+1, node.NodeID, node.Score)
	}
}

func largestComponent(components []*analytics.Component) int {
	maxSize := 0
	for _, c := range components {
		if c.Size > maxSize {
			maxSize = c.Size
		}
	}
	return maxSize
}

func largestClique(cliques [][]graph.NodeID) int {
	maxSize := 0
	for _, c := range cliques {
		if len(c) > maxSize {
			maxSize = len(c)
		}
	}
	return maxSize
}
