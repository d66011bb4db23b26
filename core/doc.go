// Package core provides a thread-safe in-memory undirected graph that is kept
// bipartite by construction.
//
// Every node carries an immutable Partition tag (PartitionA or PartitionB)
// assigned when it is added. AddEdge refuses any edge whose endpoints share a
// partition, so the bipartite invariant is enforced incrementally and never has
// to be recomputed by a global scan:
//
//	bipartite:   for every edge (u,v): PartitionOf(u) != PartitionOf(v)
//	referential: every edge endpoint is a node of the graph
//
// Edges are unordered pairs (at most one per pair) and carry a Highlight flag
// (HighlightNormal or HighlightMatched). The flag is written only by the matching
// workflow (see package matching) and by ResetHighlights; it never affects the bipartite rule.
//
// Determinism:
//
//   - NodeIDs() and Nodes() enumerate in node-insertion order.
//   - Edges() enumerates in edge-insertion order.
//   - NeighborIDs(id) enumerates in the order the incident edges were inserted.
//
// These orders are what makes the matching engine deterministic: the same
// sequence of operations always yields the same matching.
//
// Concurrency:
//
// A single sync.RWMutex guards the whole aggregate. Every public method holds it
// for its full duration, so validation and mutation of one operation are atomic
// to concurrent readers. Update/View hand a *Tx to a callback that runs under the
// write/read lock, which lets callers compose several reads and writes into one
// atomic step (matching.Apply computes and tags a matching this way).
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id string, p Partition) error  // O(1); *DuplicateNodeError if present
//	RemoveNode(id string)                  // O(V+E); idempotent, drops incident edges
//	HasNode(id string) bool                // O(1)
//	PartitionOf(id string) (Partition, bool)
//
//	// Edge lifecycle
//	AddEdge(id1, id2 string) error         // O(1)†; *UnknownNodeError / *SameFractionError
//	RemoveEdge(id1, id2 string)            // O(deg+E); idempotent
//	HasEdge(id1, id2 string) bool          // O(1), orientation-free
//
//	// Highlights
//	ResetHighlights()                      // O(E)
//	HighlightOf(id1, id2 string) (Highlight, bool)
//	EdgeOf(id1, id2 string) (Edge, bool)
//
//	// Enumeration
//	NodeIDs() []string, Nodes() []Node, Edges() []Edge, NeighborIDs(id) []string
//	Snapshot() *Snapshot                   // nodes + edges under one read lock
//	Stats() *GraphStats
//
//	// Maintenance
//	Clear(), Clone() *Graph, CheckInvariants() error
//	Update(fn func(*Tx) error) error, View(fn func(*Tx) error) error
//
// † amortized: map insertion + slice append.
//
// Errors:
//
//	ErrEmptyNodeID      – zero-length node ID
//	ErrInvalidPartition – partition is neither A nor B
//	ErrDuplicateNode    – matched by *DuplicateNodeError
//	ErrUnknownNode      – matched by *UnknownNodeError
//	ErrSameFraction     – matched by *SameFractionError (also self-loops)
//	ErrEdgeNotFound     – Tx.SetHighlight on an absent edge
//	ErrNotBipartite     – a same-partition edge observed at rest (internal bug)
//	ErrReadOnlyTx       – mutation attempted inside View
//
// Use errors.Is for branching and KindOf to classify an error for presentation.
package core
