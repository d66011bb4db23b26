// SPDX-License-Identifier: MIT
// Package: bimatch/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructor behavior by mutating a builderConfig
// before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPartitionPrefix sets the A-side and B-side ID prefixes.
// Empty values mean “use defaults”, not an error.
func WithPartitionPrefix(a, b string) BuilderOption {
	return func(c *builderConfig) {
		c.prefixA, c.prefixB = a, b
	}
}
