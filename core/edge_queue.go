// SPDX-License-Identifier: MIT
// File: edge_queue.go
// Role: Min-weight edge queue with one pending entry per destination.
//
// Policy:
//   - Lower weight polls first; among equal weights the earlier push wins.
//   - Decrease-key is a linear scan for the stale slot plus HeapArray.RemoveAt.

package core

import (
	"cmp"
	"fmt"

	"github.com/usun/usunplanning/pqueue"
)

// edgeRank is the heap key of a queued edge.
type edgeRank struct {
	weight int
	seq    uint64
}

// compareRanks orders ranks so the max-heap polls the lightest, oldest edge first.
func compareRanks(a, b edgeRank) int {
	if c := cmp.Compare(b.weight, a.weight); c != 0 {
		return c
	}

	return cmp.Compare(b.seq, a.seq)
}

// EdgeQueue holds candidate edges keyed by weight and keeps, for every
// destination, only the best weight pushed so far.
type EdgeQueue[K comparable] struct {
	heap *pqueue.HeapArray[edgeRank, Edge[K]]
	best map[K]int
	seq  uint64
}

// NewEdgeQueue creates an empty queue sized for capacity pending edges.
// It grows past capacity on demand.
//
// Errors:
//   - pqueue.ErrInvalidCapacity, pqueue.ErrCapacityExceeded from the heap.
func NewEdgeQueue[K comparable](capacity int) (*EdgeQueue[K], error) {
	h, err := pqueue.New[edgeRank, Edge[K]](capacity, compareRanks)
	if err != nil {
		return nil, fmt.Errorf("NewEdgeQueue(%d): %w", capacity, err)
	}

	return &EdgeQueue[K]{heap: h, best: make(map[K]int, capacity)}, nil
}

// Len returns the number of pending edges, one per destination at most.
func (q *EdgeQueue[K]) Len() int { return q.heap.Size() }

// IsEmpty reports whether no edge is pending.
func (q *EdgeQueue[K]) IsEmpty() bool { return q.heap.IsEmpty() }

// BestWeight returns the weight pending for dest, if any.
func (q *EdgeQueue[K]) BestWeight(dest K) (int, bool) {
	w, ok := q.best[dest]
	return w, ok
}

// Push offers e with the given weight; e.Weight is overwritten with weight.
//
// When nothing is pending for e.To the edge is queued. When the pending
// weight is strictly greater, the stale entry is removed and e takes its
// place. Otherwise the push is rejected and the queue is unchanged.
//
// Returns true iff e was queued.
//
// Errors:
//   - ErrNilKey: e.To is a nil key.
//   - ErrBadWeight: weight < 0.
//
// Complexity: O(n) when replacing, O(log n) otherwise.
func (q *EdgeQueue[K]) Push(weight int, e Edge[K]) (bool, error) {
	if isNilKey(e.To) {
		return false, fmt.Errorf("EdgeQueue.Push: destination: %w", ErrNilKey)
	}
	if weight < 0 {
		return false, fmt.Errorf("EdgeQueue.Push(%v, %d): %w", e.To, weight, ErrBadWeight)
	}
	if old, ok := q.best[e.To]; ok {
		if weight >= old {
			return false, nil
		}
		slot := q.heap.IndexFunc(func(n pqueue.Node[edgeRank, Edge[K]]) bool { return n.Value.To == e.To })
		if _, err := q.heap.RemoveAt(slot); err != nil {
			return false, fmt.Errorf("EdgeQueue.Push(%v): drop stale entry: %w", e.To, err)
		}
	}

	e.Weight = weight
	q.seq++
	if err := q.heap.Push(edgeRank{weight: weight, seq: q.seq}, e); err != nil {
		delete(q.best, e.To)
		return false, fmt.Errorf("EdgeQueue.Push(%v): %w", e.To, err)
	}
	q.best[e.To] = weight

	return true, nil
}

// Poll removes and returns the lightest pending edge; false when empty.
func (q *EdgeQueue[K]) Poll() (Edge[K], bool) {
	n, ok := q.heap.Poll()
	if !ok {
		return Edge[K]{}, false
	}
	delete(q.best, n.Value.To)

	return n.Value, true
}
