// SPDX-License-Identifier: MIT

// Package builder generates canonical topologies into a
// core.WeightedGraph[string, string] for tests, benchmarks, demos and the
// graphplan CLI.
//
// A build is one call to BuildGraph with a capacity hint, graph options,
// builder options and a list of Constructors applied in order:
//
//	g, err := builder.BuildGraph(32, nil,
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//		builder.Grid(3, 4),
//	)
//
// Constructors: Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid
// and RandomSparse. They reuse vertices that already exist, so several
// constructors can be layered onto one graph.
//
// Options:
//   - ID schemes: WithDefaultIDs, WithSymbolIDs, WithExcelColumnIDs,
//     WithAlphanumericIDs, WithHexIDs, WithSymbNumb, WithIDScheme.
//   - Randomness: WithSeed, WithRand. Only RandomSparse and the stochastic
//     weight functions consult the RNG.
//   - Weights: WithWeightFn with DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, NormalWeightFn or ExponentialWeightFn. Weights are
//     integers ≥ 1 because a zero cell means "no edge".
//   - Direction: edges are bidirectional unless WithDirected is given.
//
// Errors are wrapped with the constructor name and match the sentinels in
// errors.go (or core's) under errors.Is.
package builder
