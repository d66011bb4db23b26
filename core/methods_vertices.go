// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - NodeIDs()/Nodes() return nodes in insertion order.
//
// Concurrency:
//   - Mutations under g.mu write lock, queries under g.mu read lock.
//
// AI-Hints (file):
//   - AddNode never infers a partition; the caller must pass PartitionA or PartitionB.
//   - RemoveNode is idempotent and drops every incident edge in the same critical section.
package core

// AddNode inserts a node with an immutable partition tag.
//
// Implementation:
//   - Stage 1: Validate id (ErrEmptyNodeID) and p (ErrInvalidPartition) without locking.
//   - Stage 2: Under the write lock, reject an existing id with *DuplicateNodeError.
//   - Stage 3: Register the node, append it to the insertion order, bootstrap its adjacency.
//
// Behavior highlights:
//   - Not idempotent: re-adding an id fails even with the same partition, and the
//     existing node keeps its original partition.
//   - Rejections have no side effects.
//
// Errors:
//   - ErrEmptyNodeID, ErrInvalidPartition, *DuplicateNodeError (Is ErrDuplicateNode).
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(id string, p Partition) error {
	// AI-HINT: duplicate → *DuplicateNodeError; use errors.As to read the ID back.
	if id == "" {
		return ErrEmptyNodeID
	}
	if !p.Valid() {
		return ErrInvalidPartition
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return &DuplicateNodeError{ID: id}
	}

	g.nodes[id] = &Node{ID: id, Partition: p}
	g.order = append(g.order, id)
	g.adj[id] = nil

	return nil
}

// RemoveNode deletes the node and every edge incident to it.
//
// Implementation:
//   - Stage 1: Under the write lock, return early if id is absent (idempotent).
//   - Stage 2: For each neighbor, drop the edge record and the mirrored adjacency entry.
//   - Stage 3: Compact the edge insertion order once, then drop the node itself.
//
// Behavior highlights:
//   - Absent or empty id is a no-op, never an error.
//   - The whole removal happens in one critical section; no reader can observe
//     the node without its edges or dangling edges without the node.
//
// Complexity:
//   - Time O(V + E + Σdeg(neighbors)), Space O(1) extra.
func (g *Graph) RemoveNode(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; !exists {
		return
	}

	for _, nb := range g.adj[id] {
		delete(g.edges, keyOf(id, nb))
		g.adj[nb] = removeID(g.adj[nb], id)
	}
	if len(g.adj[id]) > 0 {
		g.compactEdgeOrder()
	}

	delete(g.adj, id)
	delete(g.nodes, id)
	g.order = removeID(g.order, id)
}

// HasNode reports whether the node exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// PartitionOf returns the node's partition and whether the node exists.
// Complexity: O(1).
func (g *Graph) PartitionOf(id string) (Partition, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.partitionOf(id)
}

// NodeIDs returns node IDs in insertion order. The slice is a fresh copy.
// Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]string(nil), g.order...)
}

// Nodes returns copies of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodesLocked()
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// partitionOf is the lock-free lookup shared by Graph and Tx.
func (g *Graph) partitionOf(id string) (Partition, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return PartitionUnknown, false
	}

	return n.Partition, true
}

// nodesLocked copies the node catalog in insertion order; caller holds g.mu.
func (g *Graph) nodesLocked() []Node {
	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.nodes[id])
	}

	return out
}

// removeID deletes the first occurrence of id from ids, preserving order.
func removeID(ids []string, id string) []string {
	for i, cur := range ids {
		if cur == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}
