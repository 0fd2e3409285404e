package analytics

import (
	"sync"

	"github.com/tburke/sociograph/pkg/graph"
)

// nodeSet is an ordered set: membership checks through the map, iteration
// through the slice so candidate order stays deterministic.
type nodeSet struct {
	order   []graph.NodeID
	members map[graph.NodeID]struct{}
}

func newNodeSet(nodes []graph.NodeID) *nodeSet {
	s := &nodeSet{
		order:   nodes,
		members: make(map[graph.NodeID]struct{}, len(nodes)),
	}
	for _, u := range nodes {
		s.members[u] = struct{}{}
	}
	return s
}

func (s *nodeSet) contains(u graph.NodeID) bool {
	_, ok := s.members[u]
	return ok
}

func (s *nodeSet) empty() bool {
	return len(s.members) == 0
}

func (s *nodeSet) remove(u graph.NodeID) {
	delete(s.members, u)
}

func (s *nodeSet) add(u graph.NodeID) {
	if _, ok := s.members[u]; ok {
		return
	}
	s.order = append(s.order, u)
	s.members[u] = struct{}{}
}

// live returns the members still present, in insertion order.
func (s *nodeSet) live() []graph.NodeID {
	out := make([]graph.NodeID, 0, len(s.members))
	for _, u := range s.order {
		if _, ok := s.members[u]; ok {
			out = append(out, u)
		}
	}
	return out
}

// intersectNeighbors builds the subset of s adjacent to u, ordered by u's
// adjacency insertion order.
func intersectNeighbors(g *graph.Graph, s *nodeSet, u graph.NodeID) *nodeSet {
	kept := make([]graph.NodeID, 0)
	g.EachNeighbor(u, func(v graph.NodeID) {
		if s.contains(v) {
			kept = append(kept, v)
		}
	})
	return newNodeSet(kept)
}

// CliqueIterator produces maximal cliques lazily. It is single-consumption:
// once Next returns false the sequence is exhausted and cannot be restarted.
// Callers abandoning the iterator early must call Close to release the
// producing goroutine.
type CliqueIterator struct {
	cliques  chan []graph.NodeID
	stop     chan struct{}
	stopOnce sync.Once
}

// Cliques enumerates all maximal cliques of g using Bron-Kerbosch with
// pivoting. The order of cliques is unspecified but deterministic for a
// fixed edge insertion order. An empty graph yields an empty sequence;
// isolated nodes yield singleton cliques.
func Cliques(g *graph.Graph) *CliqueIterator {
	it := &CliqueIterator{
		cliques: make(chan []graph.NodeID),
		stop:    make(chan struct{}),
	}

	go func() {
		defer close(it.cliques)
		p := newNodeSet(g.Nodes())
		x := newNodeSet(nil)
		bronKerbosch(g, nil, p, x, it)
	}()

	return it
}

// Next returns the next maximal clique, or false when the sequence is done.
func (it *CliqueIterator) Next() ([]graph.NodeID, bool) {
	clique, ok := <-it.cliques
	return clique, ok
}

// Close abandons the enumeration. Safe to call multiple times and after
// exhaustion.
func (it *CliqueIterator) Close() {
	it.stopOnce.Do(func() { close(it.stop) })
}

// emit delivers a clique to the consumer. Returns false if the iterator was
// closed, which aborts the recursion.
func (it *CliqueIterator) emit(clique []graph.NodeID) bool {
	select {
	case it.cliques <- clique:
		return true
	case <-it.stop:
		return false
	}
}

// bronKerbosch expands the current clique r by candidates p, excluding x.
// The pivot is chosen from p and x to maximize the candidates pruned from
// the branching set. Returns false when enumeration was aborted.
func bronKerbosch(g *graph.Graph, r []graph.NodeID, p, x *nodeSet, it *CliqueIterator) bool {
	if p.empty() && x.empty() {
		clique := make([]graph.NodeID, len(r))
		copy(clique, r)
		return it.emit(clique)
	}

	pivot := choosePivot(g, p, x)

	// Branch on candidates not adjacent to the pivot; the pivot's neighbors
	// are covered by the pivot's own branch.
	for _, v := range p.live() {
		if g.HasEdge(pivot, v) {
			continue
		}

		if !bronKerbosch(g, append(r, v),
			intersectNeighbors(g, p, v),
			intersectNeighbors(g, x, v),
			it) {
			return false
		}

		p.remove(v)
		x.add(v)
	}

	return true
}

// choosePivot picks the node from p union x with the most candidates in p.
func choosePivot(g *graph.Graph, p, x *nodeSet) graph.NodeID {
	var pivot graph.NodeID
	best := -1

	consider := func(u graph.NodeID) {
		count := 0
		g.EachNeighbor(u, func(v graph.NodeID) {
			if p.contains(v) {
				count++
			}
		})
		if count > best {
			best = count
			pivot = u
		}
	}

	for _, u := range p.live() {
		consider(u)
	}
	for _, u := range x.live() {
		consider(u)
	}

	return pivot
}

// FindCliques drains a full enumeration into a slice. Convenience for small
// graphs and the report layer.
func FindCliques(g *graph.Graph) [][]graph.NodeID {
	it := Cliques(g)
	defer it.Close()

	cliques := make([][]graph.NodeID, 0)
	for {
		clique, ok := it.Next()
		if !ok {
			return cliques
		}
		cliques = append(cliques, clique)
	}
}
