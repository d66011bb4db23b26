// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for bimatch/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep fixture IDs and sizes named (no magic values in test bodies).

package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bimatch/core"
)

// Common node IDs used across core tests.
const (
	NodeEmpty = ""

	NodeA = "a"
	NodeB = "b"
	NodeC = "c"
	NodeD = "d"
	NodeX = "x"
	NodeY = "y"
)

// Common sizes used across core tests.
const (
	NConcurrentNodes  = 200
	NConcurrentRounds = 100
	NReaders          = 50
	NRandomSteps      = 2000
	NRandomIDs        = 12
)

// NewSquare RETURNS the four-node fixture used by most tests:
//
//	a(A) ── b(B)
//	         │
//	c(A) ── d(B)
//
// Edges are inserted in the order (a,b), (b,c), (c,d).
func NewSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddNode(NodeA, core.PartitionA))
	require.NoError(t, g.AddNode(NodeB, core.PartitionB))
	require.NoError(t, g.AddNode(NodeC, core.PartitionA))
	require.NoError(t, g.AddNode(NodeD, core.PartitionB))
	require.NoError(t, g.AddEdge(NodeA, NodeB))
	require.NoError(t, g.AddEdge(NodeB, NodeC))
	require.NoError(t, g.AddEdge(NodeC, NodeD))

	return g
}

// MustAddNodes adds every id → partition entry, failing the test on error.
// Map order is irrelevant for tests that do not assert on insertion order.
func MustAddNodes(t *testing.T, g *core.Graph, nodes map[string]core.Partition) {
	t.Helper()
	for id, p := range nodes {
		require.NoError(t, g.AddNode(id, p), "AddNode(%s,%s)", id, p)
	}
}

// RequireSameSnapshot FAILS the test if the two snapshots differ, printing a cmp diff.
func RequireSameSnapshot(t *testing.T, want, got *core.Snapshot, msg string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("%s: snapshot mismatch (-want +got):\n%s", msg, diff)
	}
}

// RequireInvariants FAILS the test if CheckInvariants reports a violation.
func RequireInvariants(t *testing.T, g *core.Graph, msg string) {
	t.Helper()
	require.NoError(t, g.CheckInvariants(), msg)
}
