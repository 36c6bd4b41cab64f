// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Warshall transitive closure over a Square adjacency matrix.
//   - Always computed on a copy; the input is never mutated.
//
// Contract:
//   - 0 means "not adjacent"; any other value means "adjacent".
//   - Output cells are 0 (unreachable) or 1 (reachable via ≥ 1 edge).

package matrix

const opTransitiveClosure = "TransitiveClosure"

// TransitiveClosure computes all-pairs reachability with Warshall's algorithm.
//
// For every intermediate vertex k (outer loop), if i→k and k→j are both marked,
// i→j is marked. Loop order is fixed (k → i → j).
//
// The diagonal is only marked when a vertex lies on a cycle (including a self-loop);
// reaching yourself through zero edges is not reachability here.
//
// Errors:
//   - ErrNilMatrix: m == nil.
//
// Complexity: Time O(n³), Space O(n²) for the copy.
func TransitiveClosure(m *Square) (*Square, error) {
	if m == nil {
		return nil, validatorErrorf(opTransitiveClosure, ErrNilMatrix)
	}

	// Normalize a copy to 0/1 so weights do not leak into the closure.
	c := m.Clone()
	n := c.Order()
	var (
		k, i, j int
		rowI    []int
		rowK    []int
	)
	for i = 0; i < n; i++ {
		rowI = c.rows[i]
		for j = 0; j < n; j++ {
			if rowI[j] != 0 {
				rowI[j] = 1
			}
		}
	}

	for k = 0; k < n; k++ {
		rowK = c.rows[k]
		for i = 0; i < n; i++ {
			rowI = c.rows[i]
			if rowI[k] == 0 { // i cannot reach k; nothing to propagate
				continue
			}
			for j = 0; j < n; j++ {
				if rowK[j] != 0 {
					rowI[j] = 1
				}
			}
		}
	}

	return c, nil
}
