// SPDX-License-Identifier: MIT

// Package pqueue provides HeapArray, a minimal array-backed binary heap that
// pairs an ordered key with an opaque value.
//
// The heap is a max-heap under the caller-supplied comparison: Poll always
// returns the node whose key compares greatest. A min-priority queue is built
// by supplying a reversed comparison, e.g.
//
//	h, _ := pqueue.New[int, string](16, func(a, b int) int { return cmp.Compare(b, a) })
//
// Storage doubles when the next insertion would exceed capacity, up to
// MaxCapacity (or the ceiling set with WithMaxCapacity). Exceeding the ceiling
// fails with ErrCapacityExceeded before any mutation.
//
// Besides Push/Poll/Peek the heap exposes IndexFunc and RemoveAt, the two
// primitives needed to emulate decrease-key by remove-then-reinsert.
//
// HeapArray is not safe for concurrent use.
package pqueue
