// SPDX-License-Identifier: MIT
// Package: usunplanning/builder
//
// impl_complete.go: Complete(n) and CompleteBipartite(n1, n2).
//
// Determinism:
//   - Pairs are emitted with the outer index ascending, then the inner one.
//   - Directed builds orient every edge from the lower to the higher index,
//     or from the left side to the right side, so both yield DAGs.

package builder

import "fmt"

// Complete returns a Constructor for K_n. Requires n ≥ MinCompleteNodes.
// Complexity: O(n²) edges.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return tooFew(MethodComplete, n, MinCompleteNodes)
		}
		ids, err := addVertices(g, cfg, MethodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = connect(g, cfg, MethodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2}. The sides are keyed
// leftPrefix+i and rightPrefix+j ("L0".., "R0".. by default, see
// WithPartitionPrefix). Requires both sizes ≥ MinPartitionSize.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}
		left, err := addVertices(g, builderConfigWithIDs(cfg, SymbolNumberIDFn(cfg.leftPrefix)), MethodCompleteBipartite, n1)
		if err != nil {
			return err
		}
		right, err := addVertices(g, builderConfigWithIDs(cfg, SymbolNumberIDFn(cfg.rightPrefix)), MethodCompleteBipartite, n2)
		if err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err = connect(g, cfg, MethodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// builderConfigWithIDs returns a copy of cfg using fn for vertex IDs.
func builderConfigWithIDs(cfg builderConfig, fn IDFn) builderConfig {
	cfg.idFn = fn
	return cfg
}
