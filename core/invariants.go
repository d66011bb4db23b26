// File: invariants.go
// Role: Exhaustive consistency check of the store (bipartite and referential rules, adjacency mirror).
//
// AddEdge/RemoveNode keep these invariants incrementally; CheckInvariants exists for
// tests and health probes and is never on the mutation path.

package core

import (
	"errors"
	"fmt"
)

// ErrCorruptAdjacency indicates adjacency lists disagree with the edge catalog.
var ErrCorruptAdjacency = errors.New("core: adjacency out of sync with edges")

// CheckInvariants scans the whole graph and returns the first violation found:
//
//   - referential: an edge endpoint missing from the node set → wraps ErrUnknownNode.
//   - bipartite: an edge joining two nodes of the same partition → wraps ErrNotBipartite.
//   - order/adjacency drift (counts, mirrors, duplicates) → wraps ErrCorruptAdjacency.
//
// Complexity: O(V + E).
func (g *Graph) CheckInvariants() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.order) != len(g.nodes) {
		return fmt.Errorf("node order has %d entries for %d nodes: %w",
			len(g.order), len(g.nodes), ErrCorruptAdjacency)
	}
	if len(g.edgeOrder) != len(g.edges) {
		return fmt.Errorf("edge order has %d entries for %d edges: %w",
			len(g.edgeOrder), len(g.edges), ErrCorruptAdjacency)
	}

	for _, k := range g.edgeOrder {
		e, ok := g.edges[k]
		if !ok {
			return fmt.Errorf("edge order references (%s,%s): %w", k.lo, k.hi, ErrCorruptAdjacency)
		}
		pu, okU := g.partitionOf(e.U)
		pv, okV := g.partitionOf(e.V)
		if !okU || !okV {
			return fmt.Errorf("edge (%s,%s) dangles: %w", e.U, e.V, ErrUnknownNode)
		}
		if pu == pv {
			return fmt.Errorf("edge (%s,%s) inside partition %s: %w", e.U, e.V, pu, ErrNotBipartite)
		}
	}

	half := 0
	for id, nbs := range g.adj {
		if _, ok := g.nodes[id]; !ok {
			return fmt.Errorf("adjacency for missing node %q: %w", id, ErrCorruptAdjacency)
		}
		seen := make(map[string]struct{}, len(nbs))
		for _, nb := range nbs {
			if _, dup := seen[nb]; dup {
				return fmt.Errorf("node %q lists %q twice: %w", id, nb, ErrCorruptAdjacency)
			}
			seen[nb] = struct{}{}
			if _, ok := g.edges[keyOf(id, nb)]; !ok {
				return fmt.Errorf("adjacency %q→%q has no edge: %w", id, nb, ErrCorruptAdjacency)
			}
		}
		half += len(nbs)
	}
	if half != 2*len(g.edges) {
		return fmt.Errorf("adjacency holds %d half-edges for %d edges: %w",
			half, len(g.edges), ErrCorruptAdjacency)
	}

	return nil
}
