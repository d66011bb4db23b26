// SPDX-License-Identifier: MIT
// Package: bimatch/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Every constructor declares each node's partition explicitly; core.Graph rejects the rest.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose constructors in BuildGraph to assemble fixtures (disjoint ID schemes required).
//   - Use WithSeed(...) to freeze RandomBipartite.
//   - WithPartitionPrefix(a, b) names the A/B sides of CompleteBipartite/RandomBipartite.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bimatch/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Place every node in core.PartitionA or core.PartitionB before adding edges.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partially built graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against builder
//     sentinels (ErrTooFewVertices, ErrInvalidProbability, ...) or core sentinels.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Populate runs cons against an existing graph, e.g. the live store of a service.
// Unlike BuildGraph, nodes already present cause core.ErrDuplicateNode.
func Populate(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Populate: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Populate: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Populate: %w", err)
		}
	}

	return nil
}
