// SPDX-License-Identifier: MIT
package builder

// Star returns a Constructor for the star S_n: CenterVertexID joined to
// n-1 leaves cfg.idFn(1..n-1). Requires n ≥ MinStarNodes. Directed spokes
// point from the hub outward.
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return tooFew(MethodStar, n, MinStarNodes)
		}
		if err := ensureVertex(g, MethodStar, CenterVertexID); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := ensureVertex(g, MethodStar, leaf); err != nil {
				return err
			}
			if err := connect(g, cfg, MethodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor for the wheel W_n: a rim Cycle(n-1) over
// cfg.idFn(0..n-2) plus a spoke from CenterVertexID to every rim vertex.
// Requires n ≥ MinWheelNodes.
func Wheel(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return tooFew(MethodWheel, n, MinWheelNodes)
		}
		if err := chain(g, cfg, MethodWheel, n-1, true); err != nil {
			return err
		}
		if err := ensureVertex(g, MethodWheel, CenterVertexID); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := connect(g, cfg, MethodWheel, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
