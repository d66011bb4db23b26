// SPDX-License-Identifier: MIT
// Package: bimatch/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn        = DefaultIDFn        ("0","1","2",...)
//   • rng         = nil                 (pure/deterministic unless seeded)
//   • prefixA/B   = "L" / "R"

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// A-side / B-side ID prefixes. Empty → defaults resolved below.
	prefixA string
	prefixB string
}

const (
	defaultPrefixA = "L"
	defaultPrefixB = "R"
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    DefaultIDFn,
		prefixA: defaultPrefixA,
		prefixB: defaultPrefixB,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.prefixA == "" {
		cfg.prefixA = defaultPrefixA
	}
	if cfg.prefixB == "" {
		cfg.prefixB = defaultPrefixB
	}

	return cfg
}
