// SPDX-License-Identifier: MIT

package pqueue

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
)

// Node is one heap entry: an ordered key and its payload.
type Node[K, V any] struct {
	Key   K
	Value V
}

// String renders "key=value".
func (n Node[K, V]) String() string {
	return fmt.Sprintf("%v=%v", n.Key, n.Value)
}

// HeapArray is an array-backed binary max-heap under compare.
//
// nodes[0:size] holds the heap; slots at or beyond size are zeroed and never read.
// For every i < size with a child c < size, compare(nodes[i].Key, nodes[c].Key) >= 0.
type HeapArray[K, V any] struct {
	nodes   []Node[K, V]
	size    int
	compare func(a, b K) int
	maxCap  int
}

// New creates an empty heap with room for capacity nodes.
//
// compare returns a positive number when a should be polled before b, zero
// when they tie, and a negative number otherwise.
//
// Errors:
//   - ErrInvalidCapacity: capacity <= 0.
//   - ErrCapacityExceeded: capacity > ceiling/2.
//   - ErrNilCompare: compare == nil.
func New[K, V any](capacity int, compare func(a, b K) int, opts ...Option) (*HeapArray[K, V], error) {
	cfg := newHeapConfig(opts...)
	if capacity <= 0 {
		return nil, fmt.Errorf("New(%d): %w", capacity, ErrInvalidCapacity)
	}
	if capacity > cfg.maxCapacity/2 {
		return nil, fmt.Errorf("New(%d) with ceiling %d: %w", capacity, cfg.maxCapacity, ErrCapacityExceeded)
	}
	if compare == nil {
		return nil, ErrNilCompare
	}

	return &HeapArray[K, V]{
		nodes:   make([]Node[K, V], capacity),
		compare: compare,
		maxCap:  cfg.maxCapacity,
	}, nil
}

// NewOrdered creates a heap over a naturally ordered key: the greatest key polls first.
func NewOrdered[K cmp.Ordered, V any](capacity int, opts ...Option) (*HeapArray[K, V], error) {
	return New[K, V](capacity, cmp.Compare[K], opts...)
}

// Size returns the number of nodes in the heap. O(1).
func (h *HeapArray[K, V]) Size() int { return h.size }

// IsEmpty reports whether the heap has no nodes. O(1).
func (h *HeapArray[K, V]) IsEmpty() bool { return h.size <= 0 }

// Cap returns the current storage capacity. O(1).
func (h *HeapArray[K, V]) Cap() int { return len(h.nodes) }

// Push inserts (key, value) and restores heap order.
//
// Errors:
//   - ErrNilKey / ErrNilValue: key or value is a nil pointer, map, slice, func,
//     chan or interface.
//   - ErrCapacityExceeded: growth would pass the ceiling; the heap is unchanged.
//
// Complexity: O(log n), amortized O(1) for growth.
func (h *HeapArray[K, V]) Push(key K, value V) error {
	if isNil(key) {
		return ErrNilKey
	}
	if isNil(value) {
		return ErrNilValue
	}
	if err := h.ensureCapacity(h.size + 1); err != nil {
		return err
	}
	h.nodes[h.size] = Node[K, V]{Key: key, Value: value}
	h.size++
	h.up(h.size - 1)

	return nil
}

// Peek returns the root without removing it; false if the heap is empty. O(1).
func (h *HeapArray[K, V]) Peek() (Node[K, V], bool) {
	if h.IsEmpty() {
		return Node[K, V]{}, false
	}

	return h.nodes[0], true
}

// Poll removes and returns the root; false if the heap is empty.
//
// The last node moves into the root slot, the size shrinks by one, and the
// moved node sinks by swapping with its larger child until order holds.
//
// Complexity: O(log n).
func (h *HeapArray[K, V]) Poll() (Node[K, V], bool) {
	if h.IsEmpty() {
		return Node[K, V]{}, false
	}
	root := h.nodes[0]
	h.size--
	h.nodes[0] = h.nodes[h.size]
	h.nodes[h.size] = Node[K, V]{}
	if h.size > 0 {
		h.down(0)
	}

	return root, true
}

// PollKey is Poll returning only the key.
func (h *HeapArray[K, V]) PollKey() (K, bool) {
	n, ok := h.Poll()
	return n.Key, ok
}

// PollValue is Poll returning only the value.
func (h *HeapArray[K, V]) PollValue() (V, bool) {
	n, ok := h.Poll()
	return n.Value, ok
}

// IndexFunc returns the slot of the first node (in array order) satisfying
// pred, or -1. O(n).
func (h *HeapArray[K, V]) IndexFunc(pred func(Node[K, V]) bool) int {
	var i int
	for i = 0; i < h.size; i++ {
		if pred(h.nodes[i]) {
			return i
		}
	}

	return -1
}

// RemoveAt removes the node in slot i: the last node takes its place and is
// moved down or up until heap order holds.
//
// Errors:
//   - ErrOutOfRange: i outside [0, Size()).
//
// Complexity: O(log n).
func (h *HeapArray[K, V]) RemoveAt(i int) (Node[K, V], error) {
	if i < 0 || i >= h.size {
		return Node[K, V]{}, fmt.Errorf("RemoveAt(%d) with size %d: %w", i, h.size, ErrOutOfRange)
	}
	removed := h.nodes[i]
	h.size--
	if i != h.size {
		h.nodes[i] = h.nodes[h.size]
		h.nodes[h.size] = Node[K, V]{}
		if !h.down(i) {
			h.up(i)
		}
	} else {
		h.nodes[h.size] = Node[K, V]{}
	}

	return removed, nil
}

// Nodes returns a copy of the live nodes in array (not priority) order.
func (h *HeapArray[K, V]) Nodes() []Node[K, V] {
	out := make([]Node[K, V], h.size)
	copy(out, h.nodes[:h.size])

	return out
}

// Clear drops all nodes and keeps the storage.
func (h *HeapArray[K, V]) Clear() {
	clear(h.nodes[:h.size])
	h.size = 0
}

// String renders the heap level by level, one level per line. Debug only.
func (h *HeapArray[K, V]) String() string {
	var sb strings.Builder
	var i, end int
	for start, width := 0, 1; start < h.size; start, width = end, width*2 {
		end = min(start+width, h.size)
		for i = start; i < end; i++ {
			if i > start {
				sb.WriteByte(' ')
			}
			sb.WriteString(h.nodes[i].String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// ensureCapacity makes room for target nodes, doubling past target when growing.
func (h *HeapArray[K, V]) ensureCapacity(target int) error {
	if target <= 0 || target > h.maxCap/2 {
		return fmt.Errorf("grow to %d with ceiling %d: %w", target, h.maxCap, ErrCapacityExceeded)
	}
	if target > len(h.nodes) {
		grown := make([]Node[K, V], target*2)
		copy(grown, h.nodes[:h.size])
		h.nodes = grown
	}

	return nil
}

// up moves the node at j toward the root while it compares greater than its parent.
func (h *HeapArray[K, V]) up(j int) {
	moving := h.nodes[j]
	var parent int
	for j > 0 {
		parent = (j - 1) / 2
		if h.compare(moving.Key, h.nodes[parent].Key) <= 0 {
			break
		}
		h.nodes[j] = h.nodes[parent]
		j = parent
	}
	h.nodes[j] = moving
}

// down moves the node at i0 toward the leaves, swapping with the larger child.
// It reports whether the node moved.
func (h *HeapArray[K, V]) down(i0 int) bool {
	moving := h.nodes[i0]
	i := i0
	var left, right, bigger int
	for {
		left = 2*i + 1
		if left >= h.size || left < 0 { // left < 0 after int overflow
			break
		}
		bigger = left
		if right = left + 1; right < h.size && h.compare(h.nodes[right].Key, h.nodes[left].Key) > 0 {
			bigger = right
		}
		if h.compare(moving.Key, h.nodes[bigger].Key) >= 0 {
			break
		}
		h.nodes[i] = h.nodes[bigger]
		i = bigger
	}
	h.nodes[i] = moving

	return i > i0
}

// isNil reports whether x is nil or a nil pointer, map, slice, func, chan or interface.
func isNil(x any) bool {
	if x == nil {
		return true
	}
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
