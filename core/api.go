// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic read-only summaries of a Graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.
// AI-HINT (file):
//   - Stats() is an O(V+E) snapshot; use it for diagnostics and metrics gauges.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	NodeCount    int `json:"node_count"`
	EdgeCount    int `json:"edge_count"`
	CountA       int `json:"count_a"`
	CountB       int `json:"count_b"`
	MatchedEdges int `json:"matched_edges"`
}

// MaxMatchingBound returns min(|A|, |B|), the upper bound on any matching size.
func (s *GraphStats) MaxMatchingBound() int {
	if s.CountA < s.CountB {
		return s.CountA
	}

	return s.CountB
}

// Stats produces a read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Count nodes per partition and edges per highlight in one pass each.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		NodeCount: len(g.nodes),
		EdgeCount: len(g.edges),
	}
	for _, n := range g.nodes {
		if n.Partition == PartitionA {
			stats.CountA++
		} else {
			stats.CountB++
		}
	}
	for _, e := range g.edges {
		if e.Highlight == HighlightMatched {
			stats.MatchedEdges++
		}
	}

	return &stats
}
