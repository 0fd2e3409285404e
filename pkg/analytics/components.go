// Package analytics implements the graph statistics of the engine: connected
// components, shortest paths, centrality measures, maximal cliques and
// modularity communities. Every routine treats the graph as read-only and is
// deterministic for a fixed edge insertion order.
package analytics

import (
	"github.com/tburke/sociograph/pkg/graph"
)

// Component is a maximal set of mutually reachable nodes.
type Component struct {
	ID    int
	Nodes []graph.NodeID
	Size  int
}

// ConnectedComponents partitions all nodes into components via BFS from
// each unvisited node. Components are returned in discovery order and nodes
// within a component in BFS visit order.
func ConnectedComponents(g *graph.Graph) []*Component {
	visited := make(map[graph.NodeID]bool, g.NodeCount())
	components := make([]*Component, 0)

	for _, start := range g.Nodes() {
		if visited[start] {
			continue
		}

		component := &Component{
			ID:    len(components),
			Nodes: make([]graph.NodeID, 0),
		}

		queue := []graph.NodeID{start}
		visited[start] = true

		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			component.Nodes = append(component.Nodes, u)

			g.EachNeighbor(u, func(v graph.NodeID) {
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
				}
			})
		}

		component.Size = len(component.Nodes)
		components = append(components, component)
	}

	return components
}

// IsConnected reports whether every node is reachable from every other.
// Empty and single-node graphs count as connected.
func IsConnected(g *graph.Graph) bool {
	nodes := g.Nodes()
	if len(nodes) < 2 {
		return true
	}
	return len(bfsDistances(g, nodes[0])) == len(nodes)
}
