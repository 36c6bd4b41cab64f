// SPDX-License-Identifier: MIT
// Package: usunplanning/builder
//
// options.go: functional options for BuildGraph.
//
// WithIDScheme and WithRand ignore a nil argument and keep the current
// setting. WithWeightFn and WithPartitionPrefix validate eagerly and panic on
// a nil function or unusable prefixes. Either way a resolved builderConfig is
// always usable.

package builder

import "math/rand"

// BuilderOption mutates a builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. A nil fn is ignored.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand installs r as the random source. A nil r is ignored.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed installs a fresh random source seeded with seed, making
// stochastic constructors reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight generator. Panics if fn is nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithDirected makes every constructor emit one-way edges.
func WithDirected() BuilderOption {
	return func(c *builderConfig) {
		c.directed = true
	}
}

// WithPartitionPrefix sets the ID prefixes of the two CompleteBipartite sides.
// Panics if either prefix is empty or both are equal.
func WithPartitionPrefix(left, right string) BuilderOption {
	if left == "" || right == "" || left == right {
		panic("builder: WithPartitionPrefix needs two distinct non-empty prefixes")
	}

	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}
