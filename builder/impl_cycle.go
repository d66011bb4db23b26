// SPDX-License-Identifier: MIT
// Package: bimatch/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices) and n even (else ErrOddCycle).
//   - Vertex i via cfg.idFn(i); even i in A, odd i in B.
//   - Edges (i, i+1 mod n) for i=0..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bimatch/core"
)

// Cycle returns a Constructor that builds the even cycle C_n.
// It has exactly two perfect matchings.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		if n%2 != 0 {
			return fmt.Errorf("%s: n=%d: %w", MethodCycle, n, ErrOddCycle)
		}

		for i := 0; i < n; i++ {
			if err := addNodes(g, MethodCycle, []string{cfg.idFn(i)}, parity(i)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, MethodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
