package graph

// NodeID identifies a node. IDs come straight from the source dataset
// (typically relational primary keys) and are opaque to the engine.
type NodeID int64

// Graph is an undirected, unweighted graph held entirely in memory.
//
// The graph is built once by bulk-loading edges and is then treated as
// read-only by every analysis routine. Nodes and neighbor lists iterate in
// insertion order, which makes every algorithm in pkg/analytics
// deterministic for a fixed load order.
type Graph struct {
	nodes  []NodeID
	adj    map[NodeID][]NodeID
	adjSet map[NodeID]map[NodeID]struct{}
	edges  int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		adj:    make(map[NodeID][]NodeID),
		adjSet: make(map[NodeID]map[NodeID]struct{}),
	}
}

// AddNode inserts a node with no edges. Returns true if the node was new.
// Adding an existing node is a no-op.
func (g *Graph) AddNode(id NodeID) bool {
	if _, ok := g.adjSet[id]; ok {
		return false
	}
	g.nodes = append(g.nodes, id)
	g.adjSet[id] = make(map[NodeID]struct{})
	return true
}

// AddEdge inserts the undirected edge (u, v), creating either endpoint if it
// does not exist yet. Inserting an existing edge is a no-op. Self-loops are
// rejected with ErrSelfLoop: a tie in a social graph always connects two
// distinct actors, and dropping malformed input silently would hide data
// problems from the caller.
func (g *Graph) AddEdge(u, v NodeID) error {
	if u == v {
		return selfLoopError(u)
	}

	g.AddNode(u)
	g.AddNode(v)

	if _, ok := g.adjSet[u][v]; ok {
		return nil
	}

	g.adjSet[u][v] = struct{}{}
	g.adjSet[v][u] = struct{}{}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edges++
	return nil
}

// HasNode reports whether id exists in the graph.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.adjSet[id]
	return ok
}

// HasEdge reports whether the undirected edge (u, v) exists.
func (g *Graph) HasEdge(u, v NodeID) bool {
	set, ok := g.adjSet[u]
	if !ok {
		return false
	}
	_, ok = set[v]
	return ok
}

// Nodes returns all node IDs in insertion order. The slice is a copy and is
// safe for the caller to modify.
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Neighbors returns the nodes adjacent to u in insertion order. Fails with
// ErrNodeNotFound if u is unknown. The slice is a copy.
func (g *Graph) Neighbors(u NodeID) ([]NodeID, error) {
	if !g.HasNode(u) {
		return nil, NodeNotFoundError("Neighbors", u)
	}
	out := make([]NodeID, len(g.adj[u]))
	copy(out, g.adj[u])
	return out, nil
}

// Degree returns the number of edges incident to u. Fails with
// ErrNodeNotFound if u is unknown.
func (g *Graph) Degree(u NodeID) (int, error) {
	if !g.HasNode(u) {
		return 0, NodeNotFoundError("Degree", u)
	}
	return len(g.adj[u]), nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Density returns edgeCount / (n*(n-1)/2), the fraction of possible edges
// that exist. Defined as 0 for graphs with fewer than two nodes.
func (g *Graph) Density() float64 {
	n := len(g.nodes)
	if n < 2 {
		return 0
	}
	return float64(g.edges) / (float64(n) * float64(n-1) / 2)
}

// AverageDegree returns 2m/n, or 0 for an empty graph.
func (g *Graph) AverageDegree() float64 {
	if len(g.nodes) == 0 {
		return 0
	}
	return 2 * float64(g.edges) / float64(len(g.nodes))
}

// AdjacencyDegree returns len(adj[u]) without an existence check. Callers
// that already validated u (or iterate Nodes()) use this to skip the error
// path.
func (g *Graph) AdjacencyDegree(u NodeID) int {
	return len(g.adj[u])
}

// EachNeighbor visits u's neighbors in insertion order without allocating.
// Unknown nodes visit nothing.
func (g *Graph) EachNeighbor(u NodeID, fn func(NodeID)) {
	for _, v := range g.adj[u] {
		fn(v)
	}
}
