// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for index checks used by Square accessors.
//   - Return plain sentinels wrapped with a tag so call sites stay uniform.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateIndex checks 0 ≤ i < n.
// Complexity: O(1).
func validateIndex(tag string, i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf(fmt.Sprintf("%s(%d) with order %d", tag, i, n), ErrOutOfRange)
	}

	return nil
}

// validateCell checks that both (i, j) are inside an n×n matrix.
// Complexity: O(1).
func validateCell(tag string, i, j, n int) error {
	if i < 0 || i >= n || j < 0 || j >= n {
		return validatorErrorf(fmt.Sprintf("%s(%d,%d) with order %d", tag, i, j, n), ErrOutOfRange)
	}

	return nil
}
