// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, Degree, AdjacencyList).
// Determinism:
//   - NeighborIDs() follows the insertion order of the incident edges.
//   - AdjacencyList() uses the same per-node order; map iteration order is irrelevant to callers.
// Concurrency:
//   - Read lock only. Returned slices never alias internal storage.
// AI-HINT (file):
//   - The matching engine iterates NeighborIDs in this order; changing it changes which
//     maximum matching is returned (never its size).

package core

// NeighborIDs returns the IDs adjacent to id in edge-insertion order.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Copy adj[id] so callers can retain the result after unlock.
//
// Returns:
//   - []string: neighbor IDs; nil when id is absent or isolated.
//
// Determinism:
//   - Removing an edge keeps the relative order of the remaining neighbors.
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (g *Graph) NeighborIDs(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbs := g.adj[id]
	if len(nbs) == 0 {
		return nil
	}

	return append([]string(nil), nbs...)
}

// Degree returns the number of edges incident to id and whether id exists.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return 0, false
	}

	return len(g.adj[id]), true
}

// AdjacencyList returns a copy of the adjacency map: node ID → neighbor IDs.
// Every node is present, isolated nodes map to an empty slice.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.nodes))
	for _, id := range g.order {
		out[id] = append(make([]string, 0, len(g.adj[id])), g.adj[id]...)
	}

	return out
}
