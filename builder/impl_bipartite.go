// SPDX-License-Identifier: MIT
// Package: bimatch/builder
//
// impl_bipartite.go — CompleteBipartite(n1,n2) and RandomBipartite(n1,n2,p).
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • A side IDs "{prefixA}{i}", i=0..n1-1; B side IDs "{prefixB}{j}", j=0..n2-1.
//     (Prefixes are resolved in newBuilderConfig; empty → defaults "L"/"R".)
//   • All A nodes are inserted before all B nodes.
//
// Determinism:
//   • Edge emission order: i asc over A, inner j asc over B.
//   • RandomBipartite draws exactly one rng.Float64() per (i,j) trial in that order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bimatch/core"
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
// Complexity: O(n1+n2) nodes + O(n1·n2) edges.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
			return err
		}
		left, right, err := addSides(g, MethodCompleteBipartite, cfg, n1, n2)
		if err != nil {
			return err
		}

		for _, u := range left {
			for _, v := range right {
				if err = addEdge(g, MethodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomBipartite returns a Constructor that includes each of the n1·n2 cross
// pairs independently with probability p.
//
// Contract:
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng required when 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1} is deterministic.
//
// Complexity: O(n1·n2) Bernoulli trials.
func RandomBipartite(n1, n2 int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validatePartition(MethodRandomBipartite, n1, n2); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomBipartite, p); err != nil {
			return err
		}
		rng := cfg.rng
		if rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomBipartite, ErrNeedRandSource)
		}

		left, right, err := addSides(g, MethodRandomBipartite, cfg, n1, n2)
		if err != nil {
			return err
		}
		if p == MinProbability {
			return nil
		}

		for _, u := range left {
			for _, v := range right {
				// Float64 ∈ [0,1): p == 1 always includes, independent of the draw.
				if rng != nil && rng.Float64() >= p {
					continue
				}
				if err = addEdge(g, MethodRandomBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// addSides inserts the prefixed A and B sides and returns their IDs.
func addSides(g *core.Graph, method string, cfg builderConfig, n1, n2 int) (sideA, sideB []string, err error) {
	sideA = makeIDs(cfg.prefixA, n1)
	sideB = makeIDs(cfg.prefixB, n2)
	if err = addNodes(g, method, sideA, core.PartitionA); err != nil {
		return nil, nil, err
	}
	if err = addNodes(g, method, sideB, core.PartitionB); err != nil {
		return nil, nil, err
	}

	return sideA, sideB, nil
}
