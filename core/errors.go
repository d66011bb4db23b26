// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors, the typed errors returned by rejected mutations, and
//       the Kind classification consumed by presentation layers.
// Policy:
//   - Typed errors carry the offending IDs; each one matches its sentinel via errors.Is.
//   - Messages are for logs. User-facing text belongs to the caller (see KindOf).

package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrInvalidPartition indicates a partition other than PartitionA/PartitionB.
	ErrInvalidPartition = errors.New("core: invalid partition")

	// ErrDuplicateNode indicates AddNode on an ID that already exists.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrUnknownNode indicates an edge operation referenced a missing node.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrSameFraction indicates an edge whose endpoints share a partition.
	ErrSameFraction = errors.New("core: endpoints share a partition")

	// ErrEdgeNotFound indicates Tx.SetHighlight on an absent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNotBipartite indicates an edge joining two same-partition nodes was found at rest.
	// AddEdge makes this unreachable; seeing it means an invariant was broken upstream.
	ErrNotBipartite = errors.New("core: graph is not bipartite")

	// ErrReadOnlyTx indicates a mutation attempted through a Tx obtained from View.
	ErrReadOnlyTx = errors.New("core: transaction is read-only")
)

// DuplicateNodeError is returned by AddNode when ID is already present.
type DuplicateNodeError struct {
	ID string
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("core: duplicate node %q", e.ID)
}

// Is makes errors.Is(err, ErrDuplicateNode) hold.
func (e *DuplicateNodeError) Is(target error) bool { return target == ErrDuplicateNode }

// UnknownNodeError is returned by AddEdge when one or both endpoints are absent.
// IDs lists every missing endpoint in argument order.
type UnknownNodeError struct {
	IDs []string
}

func (e *UnknownNodeError) Error() string {
	quoted := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		quoted[i] = fmt.Sprintf("%q", id)
	}

	return "core: unknown node " + strings.Join(quoted, ", ")
}

// Is makes errors.Is(err, ErrUnknownNode) hold.
func (e *UnknownNodeError) Is(target error) bool { return target == ErrUnknownNode }

// SameFractionError is returned by AddEdge when both endpoints are in Partition.
// A self-loop request (ID1 == ID2) is reported with this error as well.
type SameFractionError struct {
	ID1, ID2  string
	Partition Partition
}

func (e *SameFractionError) Error() string {
	return fmt.Sprintf("core: %q and %q are both in partition %s", e.ID1, e.ID2, e.Partition)
}

// Is makes errors.Is(err, ErrSameFraction) hold.
func (e *SameFractionError) Is(target error) bool { return target == ErrSameFraction }

// Kind classifies an error returned across the operation API.
type Kind uint8

const (
	// KindNone is the classification of a nil error.
	KindNone Kind = iota
	// KindInvalidInput covers malformed arguments (empty IDs, bad partitions).
	KindInvalidInput
	// KindDuplicateNode maps ErrDuplicateNode.
	KindDuplicateNode
	// KindUnknownNode maps ErrUnknownNode and ErrEdgeNotFound.
	KindUnknownNode
	// KindSameFraction maps ErrSameFraction.
	KindSameFraction
	// KindNotBipartite maps ErrNotBipartite.
	KindNotBipartite
	// KindInternal is everything else.
	KindInternal
)

var kindNames = [...]string{
	KindNone:          "none",
	KindInvalidInput:  "invalid_input",
	KindDuplicateNode: "duplicate_node",
	KindUnknownNode:   "unknown_node",
	KindSameFraction:  "same_fraction",
	KindNotBipartite:  "not_bipartite",
	KindInternal:      "internal",
}

// String returns a stable snake_case label suitable for metrics and JSON.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return kindNames[KindInternal]
}

// KindOf classifies err. Wrapped errors are unwrapped via errors.Is.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrDuplicateNode):
		return KindDuplicateNode
	case errors.Is(err, ErrUnknownNode), errors.Is(err, ErrEdgeNotFound):
		return KindUnknownNode
	case errors.Is(err, ErrSameFraction):
		return KindSameFraction
	case errors.Is(err, ErrNotBipartite):
		return KindNotBipartite
	case errors.Is(err, ErrEmptyNodeID), errors.Is(err, ErrInvalidPartition):
		return KindInvalidInput
	default:
		return KindInternal
	}
}
