// SPDX-License-Identifier: MIT
// File: types.go
// Role: Public types of the matching engine: Source, Pair, Result, Stats, Strategy and options.

package matching

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/bimatch/core"
)

var (
	// ErrNilSource is returned when a nil Source or *core.Graph is passed in.
	ErrNilSource = errors.New("matching: source is nil")

	// ErrNotBipartite is core.ErrNotBipartite, re-exported so callers need only this package.
	ErrNotBipartite = core.ErrNotBipartite

	// ErrUnknownStrategy is returned by ParseStrategy and Apply for unsupported strategies.
	ErrUnknownStrategy = errors.New("matching: unknown strategy")

	// ErrInvalidMatching is returned by Validate.
	ErrInvalidMatching = errors.New("matching: invalid matching")
)

// Source is the read surface the engine needs. *core.Graph and *core.Tx both satisfy it.
type Source interface {
	// NodeIDs returns every node in insertion order.
	NodeIDs() []string
	// PartitionOf returns the node's partition and whether it exists.
	PartitionOf(id string) (core.Partition, bool)
	// NeighborIDs returns neighbors in edge-insertion order.
	NeighborIDs(id string) []string
}

// Pair is one matched edge, A-side node first.
type Pair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Stats are per-run counters.
type Stats struct {
	// Attempts is the number of A nodes an augmenting path was searched from.
	Attempts int `json:"attempts"`
	// Augmentations is the number of successful searches.
	Augmentations int `json:"augmentations"`
	// Visits counts neighbor examinations across all searches.
	Visits int `json:"visits"`
	// Size is len(Result.Pairs).
	Size int `json:"size"`
}

// Result is the outcome of a matching run.
type Result struct {
	Pairs []Pair `json:"pairs"`
	Stats Stats  `json:"stats"`
}

// Strategy selects the algorithm used by Apply.
type Strategy uint8

const (
	// StrategyKuhn computes a maximum matching (default).
	StrategyKuhn Strategy = iota
	// StrategyGreedy computes a maximal matching in a single pass.
	StrategyGreedy
)

// String returns "kuhn" or "greedy".
func (s Strategy) String() string {
	switch s {
	case StrategyKuhn:
		return "kuhn"
	case StrategyGreedy:
		return "greedy"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// ParseStrategy maps "kuhn"/"greedy" (any case) to a Strategy. The empty string is StrategyKuhn.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "kuhn", "maximum":
		return StrategyKuhn, nil
	case "greedy":
		return StrategyGreedy, nil
	default:
		return StrategyKuhn, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Option configures a matching run.
type Option func(*Options)

// Options holds the configurable parameters of a run.
type Options struct {
	// Logger receives run summaries at debug level and invariant breaches at error level.
	Logger *zap.Logger

	// OnAugment, if non-nil, is called after every successful augmentation with the root
	// and the pairs now matched along the path, root first.
	// The slice is reused between calls; copy it to retain it.
	OnAugment func(root string, path []Pair)

	// Strategy is consulted by Apply only.
	Strategy Strategy
}

// DefaultOptions returns Options with a no-op logger, no hook and StrategyKuhn.
func DefaultOptions() Options {
	return Options{
		Logger:   zap.NewNop(),
		Strategy: StrategyKuhn,
	}
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnAugment installs fn as the post-augmentation hook.
func WithOnAugment(fn func(root string, path []Pair)) Option {
	return func(o *Options) {
		o.OnAugment = fn
	}
}

// WithStrategy selects the algorithm used by Apply.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return o
}
