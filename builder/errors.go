// SPDX-License-Identifier: MIT
// Package: usunplanning/builder
//
// errors.go: sentinel errors for the builder package.
//
// Callers branch with errors.Is. Constructors attach the method name and the
// offending parameters with %w; option constructors panic on nonsense input
// instead of returning these.
package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not be applied at all,
// for example a nil Constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a configured function produced an unusable
// value at build time, such as a WeightFn returning a weight below 1.
var ErrOptionViolation = errors.New("builder: invalid option value")
