// SPDX-License-Identifier: MIT
// Package: bimatch/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Implementations attach context with `%w`.
//   • Errors from core.Graph (duplicate IDs when composing constructors) pass through wrapped.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error such as a nil constructor or nil graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOddCycle indicates a cycle length that admits no two-colouring.
var ErrOddCycle = errors.New("builder: odd cycle is not bipartite")
