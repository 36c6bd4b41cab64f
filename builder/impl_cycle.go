// SPDX-License-Identifier: MIT
// Package: usunplanning/builder
//
// impl_cycle.go: Path(n) and Cycle(n).
//
// Contract:
//   - Vertices cfg.idFn(0..n-1) in ascending order.
//   - Edges i→i+1 in ascending i; Cycle closes with (n-1)→0.
//
// Complexity: O(n) time, O(n) space for the ID slice.

package builder

// Path returns a Constructor for the simple path P_n. Requires n ≥ MinPathNodes.
// With WithDirected the path is a chain usable as a dependency order.
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return tooFew(MethodPath, n, MinPathNodes)
		}

		return chain(g, cfg, MethodPath, n, false)
	}
}

// Cycle returns a Constructor for the simple cycle C_n. Requires n ≥ MinCycleNodes.
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return tooFew(MethodCycle, n, MinCycleNodes)
		}

		return chain(g, cfg, MethodCycle, n, true)
	}
}

func chain(g *Graph, cfg builderConfig, method string, n int, closed bool) error {
	ids, err := addVertices(g, cfg, method, n)
	if err != nil {
		return err
	}
	for i := 0; i+1 < n; i++ {
		if err = connect(g, cfg, method, ids[i], ids[i+1]); err != nil {
			return err
		}
	}
	if closed {
		return connect(g, cfg, method, ids[n-1], ids[0])
	}

	return nil
}
