// SPDX-License-Identifier: MIT
package builder

import "fmt"

// Grid returns a Constructor for the rows×cols lattice. Vertices are keyed
// "r,c" regardless of the ID scheme and added row by row. Each cell links to
// its right neighbor, then to the one below; directed grids therefore flow
// right and down. Requires rows, cols ≥ MinGridDim.
func Grid(rows, cols int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				if err := ensureVertex(g, MethodGrid, gridVertexID(r, c)); err != nil {
					return err
				}
			}
		}

		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u := gridVertexID(r, c)
				if c+1 < cols {
					if err := connect(g, cfg, MethodGrid, u, gridVertexID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, MethodGrid, u, gridVertexID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
