// SPDX-License-Identifier: MIT

package pqueue

import "errors"

// Sentinel errors for heap operations. Match with errors.Is.
var (
	// ErrInvalidCapacity indicates a non-positive capacity hint.
	ErrInvalidCapacity = errors.New("pqueue: capacity must be > 0")

	// ErrCapacityExceeded indicates that doubling the storage would pass the ceiling.
	ErrCapacityExceeded = errors.New("pqueue: capacity exceeded")

	// ErrNilCompare indicates a nil comparison function.
	ErrNilCompare = errors.New("pqueue: compare function is nil")

	// ErrNilKey indicates a nil-equivalent key on Push.
	ErrNilKey = errors.New("pqueue: key is nil")

	// ErrNilValue indicates a nil-equivalent value on Push.
	ErrNilValue = errors.New("pqueue: value is nil")

	// ErrOutOfRange indicates a slot index outside [0, Size()).
	ErrOutOfRange = errors.New("pqueue: index out of range")
)
