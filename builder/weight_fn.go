// SPDX-License-Identifier: MIT
// Package: usunplanning/builder
//
// weight_fn.go: edge weight distributions.
//
// A core.WeightedGraph stores weights as matrix cells where 0 means "no edge",
// so every distribution yields integers ≥ 1. Stochastic distributions fall
// back to DefaultEdgeWeight when no RNG is configured.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// WeightFn produces one edge weight. It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics if value < 1.
func ConstantWeightFn(value int) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}

	return func(_ *rand.Rand) int { return value }
}

// UniformWeightFn samples uniformly from [min, max]. Panics unless 1 ≤ min ≤ max.
func UniformWeightFn(min, max int) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return min + rng.Intn(max-min+1)
	}
}

// NormalWeightFn samples N(mean, stddev), rounds to the nearest integer and
// clamps the result at 1. Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %g", stddev))
	}

	return func(rng *rand.Rand) int {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return clampWeight(math.Round(mean + stddev*rng.NormFloat64()))
	}
}

// ExponentialWeightFn samples 1 + ⌊Exp(rate)⌋. Panics if rate ≤ 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}

	return func(rng *rand.Rand) int {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return clampWeight(1 + math.Floor(rng.ExpFloat64()/rate))
	}
}

// clampWeight converts x to an int in [1, math.MaxInt32].
func clampWeight(x float64) int {
	switch {
	case x < 1 || math.IsNaN(x):
		return 1
	case x > math.MaxInt32:
		return math.MaxInt32
	default:
		return int(x)
	}
}
