// SPDX-License-Identifier: MIT
// File: greedy.go
// Role: Single-pass maximal matching.

package matching

import (
	"time"

	"go.uber.org/zap"
)

// Greedy matches each A node, in insertion order, to its first free neighbor.
// The result is maximal (no edge can be added) but may be smaller than Maximum's:
// on a-b, a-d, c-b it pairs (a,b) and leaves c unmatched.
//
// Complexity: O(V + E).
func Greedy(src Source, opts ...Option) (*Result, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	o := buildOptions(opts)
	start := time.Now()

	roots := aSide(src, src.NodeIDs())
	mate := make(map[string]string, len(roots))
	var stats Stats
	var path [1]Pair

	for _, v := range roots {
		stats.Attempts++
		for _, to := range src.NeighborIDs(v) {
			stats.Visits++
			if err := checkOpposite(src, v, to); err != nil {
				o.Logger.Error("matching aborted",
					zap.String("strategy", StrategyGreedy.String()),
					zap.String("root", v),
					zap.Error(err))

				return nil, err
			}
			if _, taken := mate[to]; taken {
				continue
			}
			mate[to] = v
			stats.Augmentations++
			if o.OnAugment != nil {
				path[0] = Pair{A: v, B: to}
				o.OnAugment(v, path[:])
			}
			break
		}
	}

	res := collect(roots, mate, stats)
	o.Logger.Debug("matching computed",
		zap.String("strategy", StrategyGreedy.String()),
		zap.Int("size", res.Stats.Size),
		zap.Duration("elapsed", time.Since(start)))

	return res, nil
}
