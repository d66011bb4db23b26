// SPDX-License-Identifier: MIT
// Package: bimatch/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex IDs "r,c", row-major. Checkerboard colouring: (r+c) even → A, odd → B.
//   • For each (r,c) emit Right then Bottom edge if present.
//
// Complexity:
//   • Time: O(rows*cols) vertices + O(rows*cols) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bimatch/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
// Its maximum matching has ⌊rows·cols/2⌋ edges.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addNodes(g, MethodGrid, []string{gridVertexID(r, c)}, parity(r+c)); err != nil {
					return err
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridVertexID(r, c)
				if c+1 < cols {
					if err := addEdge(g, MethodGrid, u, gridVertexID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, MethodGrid, u, gridVertexID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
