// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves node order, edge order, per-node adjacency order and highlights,
//     so running the matching engine on a clone yields the same result as on the source.
// Concurrency:
//   - Clone holds the source read lock; Clear holds the write lock.

package core

// Clone returns a deep copy of the graph.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.nodes), len(g.edges)))
	for _, id := range g.order {
		n := *g.nodes[id]
		clone.nodes[id] = &n
		clone.order = append(clone.order, id)
		clone.adj[id] = append([]string(nil), g.adj[id]...)
	}
	for _, k := range g.edgeOrder {
		e := *g.edges[k]
		clone.edges[k] = &e
		clone.edgeOrder = append(clone.edgeOrder, k)
	}

	return clone
}

// Clear removes all nodes and edges, returning the graph to its empty state.
//
// Complexity: O(1) for map reallocation; no iteration over existing entries.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[string]*Node)
	g.order = nil
	g.edges = make(map[edgeKey]*Edge)
	g.edgeOrder = nil
	g.adj = make(map[string][]string)
}
