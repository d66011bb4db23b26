// SPDX-License-Identifier: MIT
//
// File: tx.go
// Role: Callback-scoped access to the graph under its lock (Update / View).
// Policy:
//   - A Tx is valid only inside the callback that received it.
//   - Read methods return live internal slices; treat them as read-only and do not retain them.
//   - The callback must finish validating before it mutates: the lock makes the step atomic
//     for observers, but there is no rollback.

package core

// Tx exposes lock-free reads and highlight writes while the owning Graph lock is held.
type Tx struct {
	g        *Graph
	writable bool
}

// Update runs fn with the graph write lock held for its whole duration.
// The error returned by fn is returned unchanged.
func (g *Graph) Update(fn func(tx *Tx) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return fn(&Tx{g: g, writable: true})
}

// View runs fn with the graph read lock held. Mutating Tx methods return ErrReadOnlyTx.
func (g *Graph) View(fn func(tx *Tx) error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return fn(&Tx{g: g})
}

// NodeIDs returns node IDs in insertion order (live slice).
func (tx *Tx) NodeIDs() []string { return tx.g.order }

// PartitionOf returns the node's partition and whether it exists.
func (tx *Tx) PartitionOf(id string) (Partition, bool) { return tx.g.partitionOf(id) }

// NeighborIDs returns neighbors in edge-insertion order (live slice).
func (tx *Tx) NeighborIDs(id string) []string { return tx.g.adj[id] }

// HasEdge reports whether id1 and id2 are adjacent.
func (tx *Tx) HasEdge(id1, id2 string) bool {
	_, ok := tx.g.edges[keyOf(id1, id2)]
	return ok
}

// ResetHighlights sets every edge to HighlightNormal.
func (tx *Tx) ResetHighlights() error {
	if !tx.writable {
		return ErrReadOnlyTx
	}
	tx.g.resetHighlightsLocked()

	return nil
}

// SetHighlight flags the edge between id1 and id2.
func (tx *Tx) SetHighlight(id1, id2 string, h Highlight) error {
	if !tx.writable {
		return ErrReadOnlyTx
	}
	e, ok := tx.g.edges[keyOf(id1, id2)]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Highlight = h

	return nil
}
