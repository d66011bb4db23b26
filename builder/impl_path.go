// SPDX-License-Identifier: MIT
// Package: bimatch/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Vertex i lands in A when i is even, B when odd.
//   - Emits edges (i-1, i) for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.

package builder

import "github.com/katalvlaran/bimatch/core"

// Path returns a Constructor that builds a simple path P_n with alternating partitions.
// Its maximum matching has ⌊n/2⌋ edges.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			if err := addNodes(g, MethodPath, []string{cfg.idFn(i)}, parity(i)); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, MethodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
