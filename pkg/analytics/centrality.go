package analytics

import (
	"fmt"
	"math/rand"

	"github.com/tburke/sociograph/pkg/graph"
	"github.com/tburke/sociograph/pkg/parallel"
)

// DegreeCentrality computes degree / (n-1) for every node. Scores are in
// [0, 1]; a score of 1 means the node is adjacent to every other node.
// Graphs with a single node score 0.
func DegreeCentrality(g *graph.Graph) map[graph.NodeID]float64 {
	nodes := g.Nodes()
	n := len(nodes)
	scores := make(map[graph.NodeID]float64, n)

	for _, u := range nodes {
		if n > 1 {
			scores[u] = float64(g.AdjacencyDegree(u)) / float64(n-1)
		} else {
			scores[u] = 0
		}
	}

	return scores
}

// ClosenessCentrality computes closeness for every node using the
// Wasserman-Faust adjustment for disconnected graphs:
//
//	c(u) = (r-1) / sum(d(u, y))  scaled by  (r-1) / (n-1)
//
// where r is the size of u's reachable set including u itself. The scaling
// weights each score by the fraction of the graph the node can reach, so
// scores remain comparable across components. Isolated nodes score 0.
func ClosenessCentrality(g *graph.Graph) map[graph.NodeID]float64 {
	nodes := g.Nodes()
	n := len(nodes)
	scores := make(map[graph.NodeID]float64, n)

	for _, u := range nodes {
		distances := bfsDistances(g, u)
		r := len(distances)

		total := 0
		for _, d := range distances {
			total += d
		}

		if total > 0 && n > 1 {
			scores[u] = (float64(r-1) / float64(total)) * (float64(r-1) / float64(n-1))
		} else {
			scores[u] = 0
		}
	}

	return scores
}

// BetweennessOptions controls the betweenness computation.
type BetweennessOptions struct {
	// Normalized divides scores by (n-1)(n-2)/2, the number of node pairs a
	// node can mediate in an undirected graph, bounding scores to [0, 1].
	Normalized bool

	// SampleK, when positive, accumulates from that many randomly chosen
	// source nodes instead of all of them and scales the result by n/k.
	// Trades accuracy for runtime on large graphs. Zero means exact.
	SampleK int

	// Workers splits the per-source accumulation across a worker pool when
	// greater than 1. Results are merged by summation and are identical to
	// the serial pass.
	Workers int

	// Seed drives source sampling. Fixed seed, fixed sample.
	Seed int64
}

// DefaultBetweennessOptions returns exact, normalized, single-threaded
// computation.
func DefaultBetweennessOptions() BetweennessOptions {
	return BetweennessOptions{Normalized: true}
}

// BetweennessCentrality computes betweenness for every node with Brandes'
// algorithm: one BFS plus dependency back-propagation per source node.
// Fails with ErrInvalidSampleSize for negative SampleK.
func BetweennessCentrality(g *graph.Graph, opts BetweennessOptions) (map[graph.NodeID]float64, error) {
	if opts.SampleK < 0 {
		return nil, fmt.Errorf("betweenness centrality: sample_k %d: %w", opts.SampleK, ErrInvalidSampleSize)
	}

	nodes := g.Nodes()
	n := len(nodes)

	scores := make(map[graph.NodeID]float64, n)
	for _, u := range nodes {
		scores[u] = 0
	}

	sources := nodes
	if opts.SampleK > 0 && opts.SampleK < n {
		sources = sampleSources(nodes, opts.SampleK, opts.Seed)
	}

	if opts.Workers > 1 {
		accumulateParallel(g, sources, scores, opts.Workers)
	} else {
		for _, source := range sources {
			brandesAccumulate(g, source, scores)
		}
	}

	// Raw scores count ordered pairs: each unordered pair (s, t) contributes
	// from both directions in an undirected graph.
	if opts.SampleK > 0 && opts.SampleK < n {
		scale := float64(n) / float64(len(sources))
		for u := range scores {
			scores[u] *= scale
		}
	}

	if opts.Normalized {
		if n > 2 {
			factor := 1.0 / float64((n-1)*(n-2))
			for u := range scores {
				scores[u] *= factor
			}
		}
	} else {
		// Report unordered pair counts
		for u := range scores {
			scores[u] /= 2
		}
	}

	return scores, nil
}

// sampleSources picks k distinct sources with a seeded partial shuffle.
func sampleSources(nodes []graph.NodeID, k int, seed int64) []graph.NodeID {
	shuffled := make([]graph.NodeID, len(nodes))
	copy(shuffled, nodes)

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[:k]
}

// accumulateParallel splits sources across a worker pool. Each task owns a
// private accumulator; merging by summation happens after the pool drains.
func accumulateParallel(g *graph.Graph, sources []graph.NodeID, scores map[graph.NodeID]float64, workers int) {
	pool := parallel.NewWorkerPool(workers)

	chunks := chunkSources(sources, workers)
	partials := make([]map[graph.NodeID]float64, len(chunks))

	for i, chunk := range chunks {
		i, chunk := i, chunk
		partials[i] = make(map[graph.NodeID]float64)
		pool.Submit(func() {
			for _, source := range chunk {
				brandesAccumulate(g, source, partials[i])
			}
		})
	}

	pool.Wait()

	for _, partial := range partials {
		for u, s := range partial {
			scores[u] += s
		}
	}
}

// chunkSources splits sources into at most n contiguous chunks.
func chunkSources(sources []graph.NodeID, n int) [][]graph.NodeID {
	if n > len(sources) {
		n = len(sources)
	}
	if n < 1 {
		n = 1
	}

	chunks := make([][]graph.NodeID, 0, n)
	size := (len(sources) + n - 1) / n
	for start := 0; start < len(sources); start += size {
		end := start + size
		if end > len(sources) {
			end = len(sources)
		}
		chunks = append(chunks, sources[start:end])
	}
	return chunks
}

// brandesAccumulate runs a single-source Brandes pass and adds the
// dependency of every node on paths from source into scores.
func brandesAccumulate(g *graph.Graph, source graph.NodeID, scores map[graph.NodeID]float64) {
	stack := make([]graph.NodeID, 0, g.NodeCount())
	preds := make(map[graph.NodeID][]graph.NodeID)
	sigma := map[graph.NodeID]float64{source: 1}
	dist := map[graph.NodeID]int{source: 0}

	queue := []graph.NodeID{source}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		stack = append(stack, v)

		g.EachNeighbor(v, func(w graph.NodeID) {
			if _, seen := dist[w]; !seen {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
			if dist[w] == dist[v]+1 {
				sigma[w] += sigma[v]
				preds[w] = append(preds[w], v)
			}
		})
	}

	// Back-propagation in reverse BFS order
	delta := make(map[graph.NodeID]float64, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, v := range preds[w] {
			delta[v] += (sigma[v] / sigma[w]) * (1 + delta[w])
		}
		if w != source {
			scores[w] += delta[w]
		}
	}
}

// CentralityResult bundles all node centrality measures for the report
// layer.
type CentralityResult struct {
	Degree      map[graph.NodeID]float64
	Closeness   map[graph.NodeID]float64
	Betweenness map[graph.NodeID]float64

	TopByDegree      []RankedNode
	TopByCloseness   []RankedNode
	TopByBetweenness []RankedNode
}

// topNSize is how many ranked nodes each measure keeps for reporting.
const topNSize = 10

// ComputeAllCentrality computes degree, closeness and betweenness in one
// call, with top-N rankings attached.
func ComputeAllCentrality(g *graph.Graph, opts BetweennessOptions) (*CentralityResult, error) {
	betweenness, err := BetweennessCentrality(g, opts)
	if err != nil {
		return nil, err
	}

	degree := DegreeCentrality(g)
	closeness := ClosenessCentrality(g)

	return &CentralityResult{
		Degree:           degree,
		Closeness:        closeness,
		Betweenness:      betweenness,
		TopByDegree:      TopNodes(degree, topNSize),
		TopByCloseness:   TopNodes(closeness, topNSize),
		TopByBetweenness: TopNodes(betweenness, topNSize),
	}, nil
}
