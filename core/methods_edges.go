// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/HighlightOf/EdgeOf/Edges/EdgeCount,
//       plus ResetHighlights.
// Determinism:
//   - Edges() returns edges in insertion order.
// Concurrency:
//   - Mutations under g.mu write lock, queries under g.mu read lock.
// AI-HINT (file):
//   - AddEdge is the only place the bipartite rule is enforced.
//   - Edges are orientation-free: (a,b) and (b,a) name the same edge.

package core

// AddEdge connects id1 and id2.
//
// AI-HINT:
//   - Missing endpoint(s) → *UnknownNodeError listing all of them (Is ErrUnknownNode).
//   - Same partition, including id1 == id2 → *SameFractionError (Is ErrSameFraction).
//   - Existing edge in either orientation → nil, highlight untouched.
//
// Steps:
//  1. Validate IDs are non-empty.
//  2. Lock; collect missing endpoints.
//  3. Compare partitions (bipartite rule).
//  4. Return early if the canonical key already exists.
//  5. Store the edge, append to insertion order, mirror adjacency.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(id1, id2 string) error {
	if id1 == "" || id2 == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n1, ok1 := g.nodes[id1]
	n2, ok2 := g.nodes[id2]
	if !ok1 || !ok2 {
		missing := make([]string, 0, 2)
		if !ok1 {
			missing = append(missing, id1)
		}
		if !ok2 && id2 != id1 {
			missing = append(missing, id2)
		}

		return &UnknownNodeError{IDs: missing}
	}

	// A node's partition trivially equals its own, so self-loops stop here too.
	if n1.Partition == n2.Partition {
		return &SameFractionError{ID1: id1, ID2: id2, Partition: n1.Partition}
	}

	k := keyOf(id1, id2)
	if _, exists := g.edges[k]; exists {
		return nil
	}

	g.edges[k] = &Edge{U: id1, V: id2, Highlight: HighlightNormal}
	g.edgeOrder = append(g.edgeOrder, k)
	g.adj[id1] = append(g.adj[id1], id2)
	g.adj[id2] = append(g.adj[id2], id1)

	return nil
}

// RemoveEdge deletes the edge between id1 and id2 if present (idempotent).
//
// Complexity: O(deg(id1) + deg(id2) + E) for order-preserving compaction.
func (g *Graph) RemoveEdge(id1, id2 string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	k := keyOf(id1, id2)
	if _, exists := g.edges[k]; !exists {
		return
	}

	delete(g.edges, k)
	g.adj[id1] = removeID(g.adj[id1], id2)
	g.adj[id2] = removeID(g.adj[id2], id1)
	for i, cur := range g.edgeOrder {
		if cur == k {
			g.edgeOrder = append(g.edgeOrder[:i], g.edgeOrder[i+1:]...)
			break
		}
	}
}

// HasEdge reports whether id1 and id2 are adjacent, in either orientation.
// Complexity: O(1).
func (g *Graph) HasEdge(id1, id2 string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[keyOf(id1, id2)]

	return ok
}

// HighlightOf returns the edge's highlight and whether the edge exists.
// Complexity: O(1).
func (g *Graph) HighlightOf(id1, id2 string) (Highlight, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[keyOf(id1, id2)]
	if !ok {
		return HighlightNormal, false
	}

	return e.Highlight, true
}

// EdgeOf returns a copy of the stored edge between id1 and id2, in its stored
// orientation, and whether it exists.
// Complexity: O(1).
func (g *Graph) EdgeOf(id1, id2 string) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[keyOf(id1, id2)]
	if !ok {
		return Edge{}, false
	}

	return *e, true
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesLocked()
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// ResetHighlights sets every edge back to HighlightNormal. Topology is untouched.
// Complexity: O(E).
func (g *Graph) ResetHighlights() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetHighlightsLocked()
}

func (g *Graph) resetHighlightsLocked() {
	for _, e := range g.edges {
		e.Highlight = HighlightNormal
	}
}

// edgesLocked copies the edge catalog in insertion order; caller holds g.mu.
func (g *Graph) edgesLocked() []Edge {
	out := make([]Edge, 0, len(g.edgeOrder))
	for _, k := range g.edgeOrder {
		out = append(out, *g.edges[k])
	}

	return out
}

// compactEdgeOrder drops keys no longer present in g.edges in one pass.
func (g *Graph) compactEdgeOrder() {
	kept := g.edgeOrder[:0]
	for _, k := range g.edgeOrder {
		if _, ok := g.edges[k]; ok {
			kept = append(kept, k)
		}
	}
	g.edgeOrder = kept
}
