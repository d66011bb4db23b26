// SPDX-License-Identifier: MIT
package matching_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/matching"
)

// edgeSpec is one undirected edge in insertion order.
type edgeSpec struct{ u, v string }

// buildGraph adds aIDs to A, bIDs to B (A first), then edges in order.
func buildGraph(t testing.TB, aIDs, bIDs []string, edges []edgeSpec) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range aIDs {
		require.NoError(t, g.AddNode(id, core.PartitionA))
	}
	for _, id := range bIDs {
		require.NoError(t, g.AddNode(id, core.PartitionB))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v))
	}

	return g
}

// squareGraph is a(A)-b(B), b-c(A), c-d(B).
func squareGraph(t testing.TB) *core.Graph {
	return buildGraph(t, []string{"a", "c"}, []string{"b", "d"},
		[]edgeSpec{{"a", "b"}, {"b", "c"}, {"c", "d"}})
}

// randomGraph draws a seeded bipartite graph with nA+nB nodes and edge probability p.
func randomGraph(t testing.TB, rng *rand.Rand, nA, nB int, p float64) *core.Graph {
	t.Helper()
	aIDs := make([]string, nA)
	bIDs := make([]string, nB)
	for i := range aIDs {
		aIDs[i] = fmt.Sprintf("a%d", i)
	}
	for i := range bIDs {
		bIDs[i] = fmt.Sprintf("b%d", i)
	}
	var edges []edgeSpec
	for _, a := range aIDs {
		for _, b := range bIDs {
			if rng.Float64() < p {
				edges = append(edges, edgeSpec{a, b})
			}
		}
	}
	// Shuffle so adjacency order differs from lexical order.
	rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	return buildGraph(t, aIDs, bIDs, edges)
}

// bruteForceMax returns the exact maximum matching size by exhaustive search.
// Only suitable for tiny graphs.
func bruteForceMax(src matching.Source) int {
	var as []string
	for _, id := range src.NodeIDs() {
		if p, _ := src.PartitionOf(id); p == core.PartitionA {
			as = append(as, id)
		}
	}
	used := map[string]bool{}
	var best func(i int) int
	best = func(i int) int {
		if i == len(as) {
			return 0
		}
		res := best(i + 1)
		for _, b := range src.NeighborIDs(as[i]) {
			if used[b] {
				continue
			}
			used[b] = true
			if r := 1 + best(i+1); r > res {
				res = r
			}
			used[b] = false
		}

		return res
	}

	return best(0)
}

// fakeSource is a hand-built Source that can violate the bipartite invariant.
type fakeSource struct {
	ids   []string
	parts map[string]core.Partition
	adj   map[string][]string
}

func (f *fakeSource) NodeIDs() []string { return f.ids }

func (f *fakeSource) PartitionOf(id string) (core.Partition, bool) {
	p, ok := f.parts[id]
	return p, ok
}

func (f *fakeSource) NeighborIDs(id string) []string { return f.adj[id] }
