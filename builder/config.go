// SPDX-License-Identifier: MIT
// Package: usunplanning/builder
//
// config.go: the resolved configuration shared by every constructor of one build.

package builder

import "math/rand"

// builderConfig is immutable once BuildGraph has resolved it.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand // nil keeps deterministic constructors deterministic
	weightFn WeightFn
	directed bool

	leftPrefix  string
	rightPrefix string
}

// newBuilderConfig applies opts over the defaults: decimal IDs, no RNG,
// unit weights, bidirectional edges and "L"/"R" bipartite prefixes.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
