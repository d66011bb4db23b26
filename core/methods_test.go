// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in node/edge lifecycle rules and the bipartite invariant at insertion time.
//   - Prove that rejected operations have no side effects and removals are idempotent.
//   - Anchor the insertion-order guarantees the matching engine depends on.

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bimatch/core"
)

// TestGraph_AddNode VERIFIES AddNode validation and duplicate rejection.
func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddNode(NodeEmpty, core.PartitionA), core.ErrEmptyNodeID)
	require.ErrorIs(t, g.AddNode(NodeX, core.PartitionUnknown), core.ErrInvalidPartition)
	require.ErrorIs(t, g.AddNode(NodeX, core.Partition(7)), core.ErrInvalidPartition)
	assert.Equal(t, 0, g.NodeCount(), "invalid input must not create nodes")

	require.NoError(t, g.AddNode(NodeX, core.PartitionA))
	assert.True(t, g.HasNode(NodeX))
	assert.False(t, g.HasNode(NodeEmpty))

	// Scenario: add_node("x", A) then add_node("x", B) → DuplicateNode("x"); x stays in A.
	err := g.AddNode(NodeX, core.PartitionB)
	require.ErrorIs(t, err, core.ErrDuplicateNode)
	var dup *core.DuplicateNodeError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, NodeX, dup.ID)

	p, ok := g.PartitionOf(NodeX)
	require.True(t, ok)
	assert.Equal(t, core.PartitionA, p)
	assert.Equal(t, 1, g.NodeCount())
}

// TestGraph_AddEdgeValidation VERIFIES UnknownNode / SameFraction rejection and idempotent re-adds.
func TestGraph_AddEdgeValidation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(NodeA, core.PartitionA))
	require.NoError(t, g.AddNode(NodeB, core.PartitionA))
	require.NoError(t, g.AddNode(NodeC, core.PartitionB))

	t.Run("empty id", func(t *testing.T) {
		require.ErrorIs(t, g.AddEdge(NodeEmpty, NodeA), core.ErrEmptyNodeID)
	})

	t.Run("one unknown endpoint", func(t *testing.T) {
		err := g.AddEdge(NodeA, NodeX)
		require.ErrorIs(t, err, core.ErrUnknownNode)
		var unk *core.UnknownNodeError
		require.True(t, errors.As(err, &unk))
		assert.Equal(t, []string{NodeX}, unk.IDs)
	})

	t.Run("both unknown endpoints", func(t *testing.T) {
		var unk *core.UnknownNodeError
		require.ErrorAs(t, g.AddEdge(NodeX, NodeY), &unk)
		assert.Equal(t, []string{NodeX, NodeY}, unk.IDs)
	})

	t.Run("unknown self-loop lists the id once", func(t *testing.T) {
		var unk *core.UnknownNodeError
		require.ErrorAs(t, g.AddEdge(NodeX, NodeX), &unk)
		assert.Equal(t, []string{NodeX}, unk.IDs)
	})

	t.Run("same fraction", func(t *testing.T) {
		// Scenario: a(A), b(A); add_edge(a,b) → SameFraction; edge count stays 0.
		err := g.AddEdge(NodeA, NodeB)
		require.ErrorIs(t, err, core.ErrSameFraction)
		var sf *core.SameFractionError
		require.ErrorAs(t, err, &sf)
		assert.Equal(t, NodeA, sf.ID1)
		assert.Equal(t, NodeB, sf.ID2)
		assert.Equal(t, core.PartitionA, sf.Partition)
		assert.Equal(t, 0, g.EdgeCount())
	})

	t.Run("self-loop", func(t *testing.T) {
		require.ErrorIs(t, g.AddEdge(NodeC, NodeC), core.ErrSameFraction)
		assert.False(t, g.HasEdge(NodeC, NodeC))
	})

	t.Run("accepted and idempotent", func(t *testing.T) {
		require.NoError(t, g.AddEdge(NodeA, NodeC))
		require.NoError(t, g.AddEdge(NodeA, NodeC))
		require.NoError(t, g.AddEdge(NodeC, NodeA), "reverse orientation names the same edge")
		assert.Equal(t, 1, g.EdgeCount())
		assert.True(t, g.HasEdge(NodeC, NodeA))
		assert.Equal(t, []string{NodeC}, g.NeighborIDs(NodeA))
		assert.Equal(t, []string{NodeA}, g.NeighborIDs(NodeC))
	})
}

// TestGraph_ReAddKeepsHighlight VERIFIES that re-adding a matched edge does not reset its flag.
func TestGraph_ReAddKeepsHighlight(t *testing.T) {
	g := NewSquare(t)
	require.NoError(t, g.Update(func(tx *core.Tx) error {
		return tx.SetHighlight(NodeA, NodeB, core.HighlightMatched)
	}))

	require.NoError(t, g.AddEdge(NodeB, NodeA))
	h, ok := g.HighlightOf(NodeA, NodeB)
	require.True(t, ok)
	assert.Equal(t, core.HighlightMatched, h)
}

// TestGraph_EdgeOf VERIFIES the stored orientation survives a reversed re-add.
func TestGraph_EdgeOf(t *testing.T) {
	g := NewSquare(t)
	require.NoError(t, g.AddEdge(NodeB, NodeA))

	e, ok := g.EdgeOf(NodeB, NodeA)
	require.True(t, ok)
	assert.Equal(t, core.Edge{U: NodeA, V: NodeB, Highlight: core.HighlightNormal}, e)

	_, ok = g.EdgeOf(NodeA, NodeD)
	assert.False(t, ok)
}

// TestGraph_RejectionHasNoSideEffects VERIFIES every rejected call leaves the snapshot identical.
func TestGraph_RejectionHasNoSideEffects(t *testing.T) {
	g := NewSquare(t)
	before := g.Snapshot()

	rejected := []func() error{
		func() error { return g.AddNode(NodeA, core.PartitionB) },
		func() error { return g.AddNode(NodeEmpty, core.PartitionA) },
		func() error { return g.AddNode(NodeX, core.PartitionUnknown) },
		func() error { return g.AddEdge(NodeA, NodeC) },
		func() error { return g.AddEdge(NodeB, NodeD) },
		func() error { return g.AddEdge(NodeA, NodeA) },
		func() error { return g.AddEdge(NodeA, NodeX) },
		func() error { return g.AddEdge(NodeX, NodeY) },
	}
	for i, op := range rejected {
		require.Error(t, op(), "op %d must be rejected", i)
		RequireSameSnapshot(t, before, g.Snapshot(), "after rejected op")
	}
}

// TestGraph_RemoveNode VERIFIES cascading edge removal and idempotence.
func TestGraph_RemoveNode(t *testing.T) {
	g := NewSquare(t)

	g.RemoveNode(NodeB)
	assert.False(t, g.HasNode(NodeB))
	assert.False(t, g.HasEdge(NodeA, NodeB))
	assert.False(t, g.HasEdge(NodeB, NodeC))
	assert.True(t, g.HasEdge(NodeC, NodeD))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Empty(t, g.NeighborIDs(NodeA))
	assert.Equal(t, []string{NodeD}, g.NeighborIDs(NodeC))
	assert.Equal(t, []string{NodeA, NodeC, NodeD}, g.NodeIDs())
	RequireInvariants(t, g, "after RemoveNode")

	// Idempotence: absent target leaves the graph observably unchanged; twice == once.
	before := g.Snapshot()
	g.RemoveNode(NodeB)
	g.RemoveNode(NodeX)
	g.RemoveNode(NodeEmpty)
	RequireSameSnapshot(t, before, g.Snapshot(), "RemoveNode on absent id")
}

// TestGraph_RemoveEdge VERIFIES orientation-free removal and idempotence.
func TestGraph_RemoveEdge(t *testing.T) {
	g := NewSquare(t)

	g.RemoveEdge(NodeC, NodeB)
	assert.False(t, g.HasEdge(NodeB, NodeC))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []string{NodeA}, g.NeighborIDs(NodeB))
	RequireInvariants(t, g, "after RemoveEdge")

	before := g.Snapshot()
	g.RemoveEdge(NodeB, NodeC)
	g.RemoveEdge(NodeA, NodeX)
	RequireSameSnapshot(t, before, g.Snapshot(), "RemoveEdge on absent edge")
}

// TestGraph_InsertionOrder VERIFIES the enumeration orders the matching engine relies on.
func TestGraph_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	ids := []string{"z", "m", "a", "q"}
	for i, id := range ids {
		p := core.PartitionA
		if i%2 == 1 {
			p = core.PartitionB
		}
		require.NoError(t, g.AddNode(id, p))
	}
	require.NoError(t, g.AddEdge("z", "q"))
	require.NoError(t, g.AddEdge("z", "m"))
	require.NoError(t, g.AddEdge("a", "m"))
	require.NoError(t, g.AddEdge("a", "q"))

	assert.Equal(t, ids, g.NodeIDs(), "nodes keep insertion order, not lexical order")
	assert.Equal(t, []string{"q", "m"}, g.NeighborIDs("z"))
	assert.Equal(t, []string{"z", "a"}, g.NeighborIDs("m"))

	edges := g.Edges()
	require.Len(t, edges, 4)
	assert.Equal(t, core.Edge{U: "z", V: "q"}, edges[0])
	assert.Equal(t, core.Edge{U: "a", V: "q"}, edges[3])

	// Removing a middle edge keeps the relative order of the rest.
	g.RemoveEdge("m", "z")
	assert.Equal(t, []string{"q"}, g.NeighborIDs("z"))
	assert.Equal(t, []core.Edge{{U: "z", V: "q"}, {U: "a", V: "m"}, {U: "a", V: "q"}}, g.Edges())
}

// TestGraph_ResetHighlights VERIFIES reset clears flags without touching topology.
func TestGraph_ResetHighlights(t *testing.T) {
	g := NewSquare(t)
	require.NoError(t, g.Update(func(tx *core.Tx) error {
		if err := tx.SetHighlight(NodeA, NodeB, core.HighlightMatched); err != nil {
			return err
		}
		return tx.SetHighlight(NodeD, NodeC, core.HighlightMatched)
	}))
	assert.Len(t, g.Snapshot().Matched(), 2)
	assert.Equal(t, 2, g.Stats().MatchedEdges)

	nodesBefore := g.Nodes()
	g.ResetHighlights()

	s := g.Snapshot()
	assert.Empty(t, s.Matched())
	assert.Equal(t, nodesBefore, s.Nodes)
	assert.Len(t, s.Edges, 3)
}

// TestGraph_Tx VERIFIES Update/View semantics.
func TestGraph_Tx(t *testing.T) {
	g := NewSquare(t)

	err := g.View(func(tx *core.Tx) error {
		assert.Equal(t, []string{NodeA, NodeB, NodeC, NodeD}, tx.NodeIDs())
		assert.Equal(t, []string{NodeA, NodeC}, tx.NeighborIDs(NodeB))
		p, ok := tx.PartitionOf(NodeD)
		assert.True(t, ok)
		assert.Equal(t, core.PartitionB, p)
		assert.True(t, tx.HasEdge(NodeD, NodeC))
		require.ErrorIs(t, tx.ResetHighlights(), core.ErrReadOnlyTx)

		return tx.SetHighlight(NodeA, NodeB, core.HighlightMatched)
	})
	require.ErrorIs(t, err, core.ErrReadOnlyTx)
	assert.Empty(t, g.Snapshot().Matched())

	err = g.Update(func(tx *core.Tx) error {
		return tx.SetHighlight(NodeA, NodeD, core.HighlightMatched)
	})
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.Equal(t, core.KindUnknownNode, core.KindOf(err))
}

// TestGraph_CloneAndClear VERIFIES deep copies and full reset.
func TestGraph_CloneAndClear(t *testing.T) {
	g := NewSquare(t)
	clone := g.Clone()
	RequireSameSnapshot(t, g.Snapshot(), clone.Snapshot(), "clone")
	assert.Equal(t, g.AdjacencyList(), clone.AdjacencyList())

	// Mutating the clone must not leak into the source.
	clone.RemoveNode(NodeB)
	require.NoError(t, clone.Update(func(tx *core.Tx) error {
		return tx.SetHighlight(NodeC, NodeD, core.HighlightMatched)
	}))
	assert.True(t, g.HasNode(NodeB))
	h, _ := g.HighlightOf(NodeC, NodeD)
	assert.Equal(t, core.HighlightNormal, h)

	g.Clear()
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.NodeIDs())
	RequireInvariants(t, g, "after Clear")

	// A cleared graph is fully reusable, including previously used IDs.
	require.NoError(t, g.AddNode(NodeA, core.PartitionB))
	p, _ := g.PartitionOf(NodeA)
	assert.Equal(t, core.PartitionB, p)
}

// TestGraph_DegreeAndStats VERIFIES counters.
func TestGraph_DegreeAndStats(t *testing.T) {
	g := NewSquare(t)

	d, ok := g.Degree(NodeB)
	assert.True(t, ok)
	assert.Equal(t, 2, d)
	_, ok = g.Degree(NodeX)
	assert.False(t, ok)

	s := g.Stats()
	assert.Equal(t, core.GraphStats{NodeCount: 4, EdgeCount: 3, CountA: 2, CountB: 2}, *s)
	assert.Equal(t, 2, s.MaxMatchingBound())
}
