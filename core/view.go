// File: view.go
// Role: Non-mutating read models of the graph (Snapshot).
// Determinism:
//   - Snapshot.Nodes in node-insertion order, Snapshot.Edges in edge-insertion order.
// Concurrency:
//   - Built under a single read lock, so nodes and edges are mutually consistent.
// AI-HINT (file):
//   - Snapshot is the "enumerate" operation; presentation layers render from it and
//     never need to hold graph locks.

package core

// Snapshot is a consistent, detached copy of the graph contents.
type Snapshot struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

// Snapshot enumerates nodes with partitions and edges with highlight flags.
// Complexity: O(V + E).
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return &Snapshot{Nodes: g.nodesLocked(), Edges: g.edgesLocked()}
}

// Matched returns the edges flagged HighlightMatched, in snapshot order.
func (s *Snapshot) Matched() []Edge {
	var out []Edge
	for _, e := range s.Edges {
		if e.Highlight == HighlightMatched {
			out = append(out, e)
		}
	}

	return out
}

// PartitionCounts returns how many nodes sit in A and in B.
func (s *Snapshot) PartitionCounts() (a, b int) {
	for _, n := range s.Nodes {
		switch n.Partition {
		case PartitionA:
			a++
		case PartitionB:
			b++
		}
	}

	return a, b
}
