// SPDX-License-Identifier: MIT
// File: apply.go
// Role: find_matching as a single atomic graph step, plus matching validation.

package matching

import (
	"fmt"

	"github.com/katalvlaran/bimatch/core"
)

// Compute runs the algorithm named by s.
func Compute(src Source, s Strategy, opts ...Option) (*Result, error) {
	switch s {
	case StrategyKuhn:
		return Maximum(src, opts...)
	case StrategyGreedy:
		return Greedy(src, opts...)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
	}
}

// Apply computes a matching of g and records it as edge highlights.
//
// Implementation:
//   - Stage 1: Take the graph write lock (core.Graph.Update).
//   - Stage 2: Compute with the selected strategy; on error return it, highlights untouched.
//   - Stage 3: Reset every edge to HighlightNormal, then flag the result pairs HighlightMatched.
//
// No other goroutine observes the graph between Stage 2 and Stage 3.
func Apply(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilSource
	}
	o := buildOptions(opts)

	var res *Result
	err := g.Update(func(tx *core.Tx) error {
		r, err := Compute(tx, o.Strategy, opts...)
		if err != nil {
			return err
		}
		if err = tx.ResetHighlights(); err != nil {
			return err
		}
		for _, p := range r.Pairs {
			if err = tx.SetHighlight(p.A, p.B, core.HighlightMatched); err != nil {
				return fmt.Errorf("matching: tag (%s,%s): %w", p.A, p.B, err)
			}
		}
		res = r

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Validate reports whether pairs is a matching of src: every pair joins an A node to an
// adjacent B node and no node appears twice.
func Validate(src Source, pairs []Pair) error {
	if src == nil {
		return ErrNilSource
	}
	used := make(map[string]struct{}, 2*len(pairs))
	for _, p := range pairs {
		pa, okA := src.PartitionOf(p.A)
		pb, okB := src.PartitionOf(p.B)
		if !okA || !okB || pa != core.PartitionA || pb != core.PartitionB {
			return fmt.Errorf("%w: pair (%s,%s) is not A→B", ErrInvalidMatching, p.A, p.B)
		}
		if !adjacent(src, p.A, p.B) {
			return fmt.Errorf("%w: (%s,%s) is not an edge", ErrInvalidMatching, p.A, p.B)
		}
		for _, id := range [2]string{p.A, p.B} {
			if _, dup := used[id]; dup {
				return fmt.Errorf("%w: node %s matched twice", ErrInvalidMatching, id)
			}
			used[id] = struct{}{}
		}
	}

	return nil
}

func adjacent(src Source, a, b string) bool {
	for _, nb := range src.NeighborIDs(a) {
		if nb == b {
			return true
		}
	}

	return false
}
