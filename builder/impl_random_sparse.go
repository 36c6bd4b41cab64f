// SPDX-License-Identifier: MIT
// Package: usunplanning/builder
//
// impl_random_sparse.go: Erdős–Rényi G(n, p).
//
// Contract:
//   - n ≥ MinRandomNodes, p ∈ [0,1].
//   - An RNG is required only when 0 < p < 1; p = 0 yields no edges and
//     p = 1 the complete graph without touching the RNG.
//   - Bidirectional builds trial unordered pairs i<j; directed builds trial
//     every ordered pair i≠j. Self-loops are never produced.
//
// Determinism:
//   - Pairs are visited i ascending then j ascending, one Float64 per pair,
//     so a fixed seed reproduces the same graph.

package builder

import "fmt"

// RandomSparse returns a Constructor including each candidate edge with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < MinRandomNodes {
			return tooFew(MethodRandomSparse, n, MinRandomNodes)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, MethodRandomSparse, n)
		if err != nil {
			return err
		}

		var i, j int
		for i = 0; i < n; i++ {
			j = i + 1
			if cfg.directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j || !trial(cfg, p) {
					continue
				}
				if err = connect(g, cfg, MethodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial reports whether a Bernoulli(p) draw succeeds.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case MinProbability:
		return false
	case MaxProbability:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
