package analytics

import (
	"math/rand"

	"github.com/tburke/sociograph/pkg/graph"
)

// Community is a detected group of nodes.
type Community struct {
	ID    int
	Nodes []graph.NodeID
	Size  int
}

// PartitionResult contains a community partition of the whole node set.
type PartitionResult struct {
	Communities   []*Community
	NodeCommunity map[graph.NodeID]int // node -> community label
	Modularity    float64              // quality of the partition
	Levels        int                  // contraction levels the optimization ran
}

// CommunityOptions controls Louvain community detection.
type CommunityOptions struct {
	// Seed, when non-zero, shuffles the node sweep order with a seeded RNG.
	// Zero keeps insertion order, which makes partitions reproducible for a
	// fixed load order. Tie-breaking between equal-gain moves follows the
	// sweep order either way.
	Seed int64

	// MaxLevels bounds the number of contraction levels. Zero means no
	// bound; Louvain converges on its own when a level stops improving
	// modularity.
	MaxLevels int
}

// DefaultCommunityOptions returns insertion-order sweeps with no level bound.
func DefaultCommunityOptions() CommunityOptions {
	return CommunityOptions{}
}

// minGain is the modularity improvement below which a level is considered
// converged. Guards against endless loops on floating-point noise.
const minGain = 1e-9

// levelGraph is the weighted multigraph Louvain contracts between levels.
// Nodes are dense ints. loops[i] holds the internal weight folded into node
// i by contraction (each internal edge counted once).
type levelGraph struct {
	n       int
	weights []map[int]float64 // i -> j -> edge weight, j != i
	loops   []float64
	degrees []float64 // k_i = sum of incident weight, loops counted twice
	total   float64   // m = total edge weight, loops included once
}

// BestPartition detects communities by greedy modularity optimization
// (Louvain): repeated local-move sweeps until no node moves, then
// contraction of each community into a super-node, repeated until a full
// level yields no modularity improvement. The result maps every original
// node to exactly one community label.
func BestPartition(g *graph.Graph, opts CommunityOptions) *PartitionResult {
	nodes := g.Nodes()
	n := len(nodes)

	// Edgeless graphs: every node is its own community
	if g.EdgeCount() == 0 {
		return singletonPartition(nodes)
	}

	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	lg := levelFromGraph(g, nodes)

	// membership[i] is the current community of original node i (as an
	// index into the level graph's community labels)
	membership := make([]int, n)
	for i := range membership {
		membership[i] = i
	}

	levels := 0
	prevQ := lg.modularity(identity(lg.n))

	for {
		comm, improved := lg.localMove(rng)
		levels++

		// Relabel communities densely and fold into the membership of the
		// original nodes
		labels, count := denseLabels(comm)
		for i := range membership {
			membership[i] = labels[comm[membership[i]]]
		}

		q := lg.modularity(comm)
		if !improved || q-prevQ < minGain {
			break
		}
		prevQ = q

		if opts.MaxLevels > 0 && levels >= opts.MaxLevels {
			break
		}

		lg = lg.contract(comm, labels, count)
	}

	return assemblePartition(g, nodes, membership, levels)
}

// singletonPartition labels each node as its own community.
func singletonPartition(nodes []graph.NodeID) *PartitionResult {
	result := &PartitionResult{
		Communities:   make([]*Community, 0, len(nodes)),
		NodeCommunity: make(map[graph.NodeID]int, len(nodes)),
	}
	for i, u := range nodes {
		result.NodeCommunity[u] = i
		result.Communities = append(result.Communities, &Community{
			ID:    i,
			Nodes: []graph.NodeID{u},
			Size:  1,
		})
	}
	return result
}

// levelFromGraph builds the level-0 weighted graph: every edge weight 1.
func levelFromGraph(g *graph.Graph, nodes []graph.NodeID) *levelGraph {
	index := make(map[graph.NodeID]int, len(nodes))
	for i, u := range nodes {
		index[u] = i
	}

	lg := &levelGraph{
		n:       len(nodes),
		weights: make([]map[int]float64, len(nodes)),
		loops:   make([]float64, len(nodes)),
		degrees: make([]float64, len(nodes)),
	}

	for i, u := range nodes {
		lg.weights[i] = make(map[int]float64, g.AdjacencyDegree(u))
		g.EachNeighbor(u, func(v graph.NodeID) {
			lg.weights[i][index[v]] = 1
		})
		lg.degrees[i] = float64(g.AdjacencyDegree(u))
	}
	lg.total = float64(g.EdgeCount())

	return lg
}

// localMove runs phase 1: sweep all nodes, moving each to the neighboring
// community with the largest positive modularity gain, until a full sweep
// moves nothing. Returns the final assignment and whether any move happened.
func (lg *levelGraph) localMove(rng *rand.Rand) (comm []int, improved bool) {
	comm = identity(lg.n)

	// sumTot[c] is the total degree of community c
	sumTot := make([]float64, lg.n)
	copy(sumTot, lg.degrees)

	order := identity(lg.n)
	if rng != nil {
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}

	m2 := 2 * lg.total

	for {
		moved := false

		for _, i := range order {
			current := comm[i]
			ki := lg.degrees[i]

			// Weight from i to each neighboring community
			links := make(map[int]float64, len(lg.weights[i]))
			neighborOrder := make([]int, 0, len(lg.weights[i]))
			for j, w := range lg.weights[i] {
				c := comm[j]
				if _, seen := links[c]; !seen {
					neighborOrder = append(neighborOrder, c)
				}
				links[c] += w
			}
			// Map iteration order is random; fix it for deterministic
			// tie-breaking
			sortInts(neighborOrder)

			// Remove i from its community before comparing gains
			sumTot[current] -= ki

			bestComm := current
			bestGain := links[current] - sumTot[current]*ki/m2

			for _, c := range neighborOrder {
				if c == current {
					continue
				}
				gain := links[c] - sumTot[c]*ki/m2
				if gain > bestGain {
					bestGain = gain
					bestComm = c
				}
			}

			sumTot[bestComm] += ki
			if bestComm != current {
				comm[i] = bestComm
				moved = true
				improved = true
			}
		}

		if !moved {
			return comm, improved
		}
	}
}

// contract builds the next level: one node per community, inter-community
// weights summed, intra-community weights folded into loops.
func (lg *levelGraph) contract(comm []int, labels map[int]int, count int) *levelGraph {
	next := &levelGraph{
		n:       count,
		weights: make([]map[int]float64, count),
		loops:   make([]float64, count),
		degrees: make([]float64, count),
		total:   lg.total,
	}
	for i := range next.weights {
		next.weights[i] = make(map[int]float64)
	}

	for i := 0; i < lg.n; i++ {
		ci := labels[comm[i]]
		next.loops[ci] += lg.loops[i]
		next.degrees[ci] += lg.degrees[i]

		for j, w := range lg.weights[i] {
			cj := labels[comm[j]]
			if ci == cj {
				// Each intra-community edge appears from both endpoints;
				// halve to count it once
				next.loops[ci] += w / 2
			} else {
				next.weights[ci][cj] += w
			}
		}
	}

	return next
}

// modularity computes Q for an assignment on this level:
// Q = sum_c [ in_c/m - (tot_c/2m)^2 ] with in_c the intra-community weight.
func (lg *levelGraph) modularity(comm []int) float64 {
	in := make(map[int]float64)
	tot := make(map[int]float64)

	for i := 0; i < lg.n; i++ {
		c := comm[i]
		tot[c] += lg.degrees[i]
		in[c] += lg.loops[i]
		for j, w := range lg.weights[i] {
			if comm[j] == c {
				in[c] += w / 2
			}
		}
	}

	m := lg.total
	q := 0.0
	for c := range tot {
		q += in[c]/m - (tot[c]/(2*m))*(tot[c]/(2*m))
	}
	return q
}

// assemblePartition unrolls the membership of original nodes into the
// public result, with community labels renumbered in first-seen node order.
func assemblePartition(g *graph.Graph, nodes []graph.NodeID, membership []int, levels int) *PartitionResult {
	relabel := make(map[int]int)
	result := &PartitionResult{
		NodeCommunity: make(map[graph.NodeID]int, len(nodes)),
		Levels:        levels,
	}

	for i, u := range nodes {
		label, ok := relabel[membership[i]]
		if !ok {
			label = len(relabel)
			relabel[membership[i]] = label
			result.Communities = append(result.Communities, &Community{ID: label})
		}
		result.NodeCommunity[u] = label
		c := result.Communities[label]
		c.Nodes = append(c.Nodes, u)
		c.Size++
	}

	result.Modularity = Modularity(g, result.NodeCommunity)
	return result
}

// Modularity computes the quality Q of a partition of g: the fraction of
// edges inside communities minus the expectation under the configuration
// model. Zero edges yields Q = 0.
func Modularity(g *graph.Graph, nodeCommunity map[graph.NodeID]int) float64 {
	m := float64(g.EdgeCount())
	if m == 0 {
		return 0
	}

	intra := make(map[int]float64)
	degree := make(map[int]float64)

	for _, u := range g.Nodes() {
		c := nodeCommunity[u]
		degree[c] += float64(g.AdjacencyDegree(u))
		g.EachNeighbor(u, func(v graph.NodeID) {
			if nodeCommunity[v] == c {
				// Counted from both endpoints; halve below
				intra[c]++
			}
		})
	}

	q := 0.0
	for c, deg := range degree {
		q += (intra[c]/2)/m - (deg/(2*m))*(deg/(2*m))
	}
	return q
}

// identity returns [0, 1, ..., n-1].
func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// denseLabels renumbers an assignment's labels to 0..count-1 in order of
// first appearance.
func denseLabels(comm []int) (map[int]int, int) {
	labels := make(map[int]int)
	for _, c := range comm {
		if _, ok := labels[c]; !ok {
			labels[c] = len(labels)
		}
	}
	return labels, len(labels)
}

// sortInts is an insertion sort: neighbor community lists are tiny and this
// avoids pulling in sort for a hot loop.
func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
