package analytics

import (
	"fmt"

	"github.com/tburke/sociograph/pkg/graph"
)

// bfsDistances computes hop counts from source to every reachable node.
// Neighbors expand in adjacency insertion order, so distances and discovery
// order are deterministic for a fixed load order.
func bfsDistances(g *graph.Graph, source graph.NodeID) map[graph.NodeID]int {
	distances := map[graph.NodeID]int{source: 0}
	queue := []graph.NodeID{source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		g.EachNeighbor(u, func(v graph.NodeID) {
			if _, seen := distances[v]; !seen {
				distances[v] = distances[u] + 1
				queue = append(queue, v)
			}
		})
	}

	return distances
}

// ShortestPath returns one shortest path from u to v as an ordered node
// sequence, both endpoints included. Ties break toward the first path
// discovered in BFS frontier order. Fails with ErrNodeNotFound for unknown
// endpoints and ErrNoPath when v is unreachable from u.
func ShortestPath(g *graph.Graph, u, v graph.NodeID) ([]graph.NodeID, error) {
	if !g.HasNode(u) {
		return nil, graph.NodeNotFoundError("ShortestPath", u)
	}
	if !g.HasNode(v) {
		return nil, graph.NodeNotFoundError("ShortestPath", v)
	}
	if u == v {
		return []graph.NodeID{u}, nil
	}

	parent := map[graph.NodeID]graph.NodeID{u: u}
	queue := []graph.NodeID{u}
	found := false

	for len(queue) > 0 && !found {
		current := queue[0]
		queue = queue[1:]

		g.EachNeighbor(current, func(w graph.NodeID) {
			if found {
				return
			}
			if _, seen := parent[w]; seen {
				return
			}
			parent[w] = current
			if w == v {
				found = true
				return
			}
			queue = append(queue, w)
		})
	}

	if !found {
		return nil, fmt.Errorf("shortest path %d -> %d: %w", u, v, ErrNoPath)
	}

	// Walk parents back from v, then reverse
	path := []graph.NodeID{v}
	for node := v; node != u; {
		node = parent[node]
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// ShortestPathLengths returns hop counts from source to every reachable
// node, source included at distance 0. Fails with ErrNodeNotFound for an
// unknown source.
func ShortestPathLengths(g *graph.Graph, source graph.NodeID) (map[graph.NodeID]int, error) {
	if !g.HasNode(source) {
		return nil, graph.NodeNotFoundError("ShortestPathLengths", source)
	}
	return bfsDistances(g, source), nil
}

// AverageShortestPathLength returns the mean of d(i, j) over all ordered
// pairs i != j. The metric is undefined on disconnected graphs and fails
// with ErrDisconnected rather than averaging within components. Graphs with
// fewer than two nodes have no pairs and return 0.
func AverageShortestPathLength(g *graph.Graph) (float64, error) {
	nodes := g.Nodes()
	n := len(nodes)
	if n < 2 {
		return 0, nil
	}

	total := 0
	for _, u := range nodes {
		distances := bfsDistances(g, u)
		if len(distances) != n {
			return 0, fmt.Errorf("average shortest path length: %w", ErrDisconnected)
		}
		for _, d := range distances {
			total += d
		}
	}

	return float64(total) / float64(n*(n-1)), nil
}

// Diameter returns the longest geodesic in the graph: the maximum shortest
// path length over all pairs. Fails with ErrDisconnected on graphs with
// more than one component. Graphs with fewer than two nodes have diameter 0.
func Diameter(g *graph.Graph) (int, error) {
	nodes := g.Nodes()
	n := len(nodes)
	if n < 2 {
		return 0, nil
	}

	diameter := 0
	for _, u := range nodes {
		distances := bfsDistances(g, u)
		if len(distances) != n {
			return 0, fmt.Errorf("diameter: %w", ErrDisconnected)
		}
		for _, d := range distances {
			if d > diameter {
				diameter = d
			}
		}
	}

	return diameter, nil
}
