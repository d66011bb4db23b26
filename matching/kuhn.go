// SPDX-License-Identifier: MIT
// File: kuhn.go
// Role: Maximum matching via Kuhn's augmenting paths, iterative walker.

package matching

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/bimatch/core"
)

// frame is one level of the augmenting-path search: an A node and the index of the
// next neighbor to examine.
type frame struct {
	v      string
	nbs    []string
	cursor int
}

// kuhnWalker encapsulates state during one Maximum run.
type kuhnWalker struct {
	src     Source
	opts    Options
	mate    map[string]string   // B node → A node
	visited map[string]struct{} // A nodes entered during the current attempt
	stack   []frame
	path    []Pair
	stats   Stats
}

// Maximum computes a maximum matching of src.
//
// Implementation:
//   - Stage 1: Collect A-side roots in insertion order.
//   - Stage 2: For each root, clear the visited set and search for an augmenting path.
//   - Stage 3: Report pairs ordered by the A node's insertion order.
//
// Complexity: O(V·E) time, O(V) memory.
func Maximum(src Source, opts ...Option) (*Result, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	o := buildOptions(opts)
	start := time.Now()

	ids := src.NodeIDs()
	roots := aSide(src, ids)
	w := &kuhnWalker{
		src:     src,
		opts:    o,
		mate:    make(map[string]string, len(roots)),
		visited: make(map[string]struct{}, len(roots)),
	}

	for _, root := range roots {
		w.stats.Attempts++
		ok, err := w.augment(root)
		if err != nil {
			o.Logger.Error("matching aborted",
				zap.String("strategy", StrategyKuhn.String()),
				zap.String("root", root),
				zap.Error(err))

			return nil, err
		}
		if ok {
			w.stats.Augmentations++
		}
	}

	res := collect(roots, w.mate, w.stats)
	o.Logger.Debug("matching computed",
		zap.String("strategy", StrategyKuhn.String()),
		zap.Int("size", res.Stats.Size),
		zap.Int("attempts", res.Stats.Attempts),
		zap.Int("visits", res.Stats.Visits),
		zap.Duration("elapsed", time.Since(start)))

	return res, nil
}

// augment searches for an augmenting path from root and flips it when found.
// It explores exactly the order a recursive tryAugment would.
func (w *kuhnWalker) augment(root string) (bool, error) {
	clear(w.visited)
	w.visited[root] = struct{}{}
	w.stack = append(w.stack[:0], frame{v: root, nbs: w.src.NeighborIDs(root)})

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.cursor == len(top.nbs) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		to := top.nbs[top.cursor]
		top.cursor++
		w.stats.Visits++

		if err := checkOpposite(w.src, top.v, to); err != nil {
			return false, err
		}

		a, taken := w.mate[to]
		if !taken {
			w.flip()
			return true, nil
		}
		if _, seen := w.visited[a]; seen {
			continue
		}
		w.visited[a] = struct{}{}
		w.stack = append(w.stack, frame{v: a, nbs: w.src.NeighborIDs(a)})
	}

	return false, nil
}

// flip rematches every frame's current neighbor to the frame's node, top to bottom.
func (w *kuhnWalker) flip() {
	for i := len(w.stack) - 1; i >= 0; i-- {
		f := w.stack[i]
		w.mate[f.nbs[f.cursor-1]] = f.v
	}
	if w.opts.OnAugment == nil {
		return
	}
	w.path = w.path[:0]
	for _, f := range w.stack {
		w.path = append(w.path, Pair{A: f.v, B: f.nbs[f.cursor-1]})
	}
	w.opts.OnAugment(w.stack[0].v, w.path)
}

// aSide filters ids down to PartitionA nodes, preserving order.
func aSide(src Source, ids []string) []string {
	out := make([]string, 0, len(ids)/2+1)
	for _, id := range ids {
		if p, ok := src.PartitionOf(id); ok && p == core.PartitionA {
			out = append(out, id)
		}
	}

	return out
}

// checkOpposite fails with ErrNotBipartite unless to is a B node adjacent to A node v.
func checkOpposite(src Source, v, to string) error {
	p, ok := src.PartitionOf(to)
	if !ok {
		return fmt.Errorf("matching: neighbor %q of %q has no partition: %w", to, v, ErrNotBipartite)
	}
	if p != core.PartitionB {
		return fmt.Errorf("matching: edge (%q,%q) inside partition %s: %w", v, to, p, ErrNotBipartite)
	}

	return nil
}

// collect turns the B→A mate map into pairs ordered by root order.
func collect(roots []string, mate map[string]string, stats Stats) *Result {
	byA := make(map[string]string, len(mate))
	for b, a := range mate {
		byA[a] = b
	}
	pairs := make([]Pair, 0, len(byA))
	for _, a := range roots {
		if b, ok := byA[a]; ok {
			pairs = append(pairs, Pair{A: a, B: b})
		}
	}
	stats.Size = len(pairs)

	return &Result{Pairs: pairs, Stats: stats}
}
