// SPDX-License-Identifier: MIT
// Package: usunplanning/builder
//
// api.go: the Constructor contract and the BuildGraph entry point.

package builder

import (
	"fmt"

	"github.com/usun/usunplanning/core"
)

// Graph is the concrete graph every constructor populates: string keys,
// string payloads, int edge weights.
type Graph = core.WeightedGraph[string, string]

// Constructor adds vertices and edges to g according to cfg.
//
// Contract:
//   - Existing vertices with the same ID are reused, so constructors compose.
//   - Every emitted edge weighs cfg.weightFn(cfg.rng) and is bidirectional
//     unless WithDirected was given, in which case it points along the
//     constructor's canonical orientation (lower index to higher index, or
//     hub to leaf).
//   - Errors carry the method name and wrap a sentinel from errors.go or core.
type Constructor func(g *Graph, cfg builderConfig) error

// BuildGraph creates a weighted graph with the given capacity hint and graph
// options, resolves the builder options once and applies each constructor in
// order. The first failure aborts the build.
//
// Example:
//
//	g, err := builder.BuildGraph(16, nil, []builder.BuilderOption{builder.WithSeed(7)},
//		builder.Cycle(5), builder.Star(4))
func BuildGraph(capacity int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*Graph, error) {
	g, err := core.NewWeightedGraph[string, string](capacity, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("BuildGraph: constructor #%d is nil: %w", i, ErrConstructFailed)
		}
		if err = c(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
