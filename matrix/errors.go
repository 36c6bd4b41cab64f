// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so it is easy to grep in logs.
// Callers match with errors.Is; call sites wrap with fmt.Errorf("ctx: %w", ErrX).

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested capacity hint is not positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row/Drop) return this, they do not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Square was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
