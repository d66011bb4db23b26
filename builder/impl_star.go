// SPDX-License-Identifier: MIT
// Package: bimatch/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub CenterVertexID in A; leaves cfg.idFn(1..n-1) in B.
//   - Spokes emitted by increasing leaf index.

package builder

import "github.com/katalvlaran/bimatch/core"

// Star returns a Constructor for K_{1,n-1}. Any maximum matching has size 1.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		if err := addNodes(g, MethodStar, []string{CenterVertexID}, core.PartitionA); err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := addNodes(g, MethodStar, []string{leaf}, core.PartitionB); err != nil {
				return err
			}
			if err := addEdge(g, MethodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
