// Package core defines the central Graph, Node, and Edge types together with
// the Partition and Highlight tags, and the NewGraph constructor.
//
// This file declares the value types, the Graph aggregate, and GraphOption.
// Sentinel and typed errors live in errors.go.
package core

import (
	"fmt"
	"strings"
	"sync"
)

// Partition is one of the two disjoint node classes of a bipartite graph.
// The zero value is PartitionUnknown and is rejected by AddNode.
type Partition uint8

const (
	// PartitionUnknown is the invalid zero value.
	PartitionUnknown Partition = iota
	// PartitionA is the side the matching engine starts augmenting paths from.
	PartitionA
	// PartitionB is the opposite side.
	PartitionB
)

// String returns "A", "B" or "unknown".
func (p Partition) String() string {
	switch p {
	case PartitionA:
		return "A"
	case PartitionB:
		return "B"
	default:
		return "unknown"
	}
}

// Valid reports whether p is PartitionA or PartitionB.
func (p Partition) Valid() bool { return p == PartitionA || p == PartitionB }

// Opposite returns the other side; PartitionUnknown maps to itself.
func (p Partition) Opposite() Partition {
	switch p {
	case PartitionA:
		return PartitionB
	case PartitionB:
		return PartitionA
	default:
		return PartitionUnknown
	}
}

// ParsePartition accepts "A"/"B" in any letter case, surrounding spaces ignored.
func ParsePartition(s string) (Partition, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return PartitionA, nil
	case "B":
		return PartitionB, nil
	default:
		return PartitionUnknown, fmt.Errorf("core: parse partition %q: %w", s, ErrInvalidPartition)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Partition) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, ErrInvalidPartition
	}

	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Partition) UnmarshalText(text []byte) error {
	parsed, err := ParsePartition(string(text))
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}

// Highlight is the presentation flag carried by every edge.
type Highlight uint8

const (
	// HighlightNormal is the default state of a freshly added edge.
	HighlightNormal Highlight = iota
	// HighlightMatched marks an edge that belongs to the last computed matching.
	HighlightMatched
)

// String returns "normal" or "matched".
func (h Highlight) String() string {
	if h == HighlightMatched {
		return "matched"
	}

	return "normal"
}

// MarshalText implements encoding.TextMarshaler.
func (h Highlight) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Highlight) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "normal":
		*h = HighlightNormal
	case "matched":
		*h = HighlightMatched
	default:
		return fmt.Errorf("core: unknown highlight %q", text)
	}

	return nil
}

// Node is a graph vertex. Both fields are immutable while the node exists.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string `json:"id" yaml:"id" toml:"id"`

	// Partition is fixed at creation time.
	Partition Partition `json:"partition" yaml:"partition" toml:"partition"`
}

// Edge is an unordered pair of nodes.
//
// U and V keep the orientation of the AddEdge call that created the edge;
// HasEdge/RemoveEdge/HighlightOf accept either orientation.
type Edge struct {
	U string `json:"u" yaml:"u" toml:"u"`
	V string `json:"v" yaml:"v" toml:"v"`

	// Highlight is HighlightMatched iff the edge belongs to the last applied matching.
	Highlight Highlight `json:"highlight" yaml:"highlight" toml:"highlight"`
}

// Other returns the endpoint opposite to id, or "" when id is not an endpoint.
func (e Edge) Other(id string) string {
	switch id {
	case e.U:
		return e.V
	case e.V:
		return e.U
	default:
		return ""
	}
}

// edgeKey is the canonical (orientation-free) identity of an edge.
type edgeKey struct {
	lo, hi string
}

// keyOf orders the endpoints lexicographically so (a,b) and (b,a) collide.
func keyOf(a, b string) edgeKey {
	if b < a {
		a, b = b, a
	}

	return edgeKey{lo: a, hi: b}
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node and edge catalogs. Negative hints are ignored.
func WithCapacity(nodes, edges int) GraphOption {
	return func(g *Graph) {
		if nodes > 0 {
			g.nodes = make(map[string]*Node, nodes)
			g.adj = make(map[string][]string, nodes)
			g.order = make([]string, 0, nodes)
		}
		if edges > 0 {
			g.edges = make(map[edgeKey]*Edge, edges)
			g.edgeOrder = make([]edgeKey, 0, edges)
		}
	}
}

// Graph is the bipartite graph store.
//
// mu guards every field below; there is exactly one lock so an operation's
// validation and mutation are observed atomically.
type Graph struct {
	mu sync.RWMutex

	nodes map[string]*Node // node ID → Node
	order []string         // node IDs in insertion order

	edges     map[edgeKey]*Edge // canonical pair → Edge
	edgeOrder []edgeKey         // edge keys in insertion order

	// adj[id] lists neighbor IDs in the order the incident edges were inserted.
	adj map[string][]string
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[edgeKey]*Edge),
		adj:   make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
