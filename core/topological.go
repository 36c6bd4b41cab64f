// SPDX-License-Identifier: MIT
// File: topological.go
// Role: Topological ordering by repeated sink removal.

package core

import "fmt"

// FirstNoSuccessor returns the first vertex, in position order, whose matrix
// row is all zero. false when every vertex has a successor (for example when
// the graph is empty or every vertex lies on or leads into a cycle).
//
// Complexity: O(V²) worst case.
func (g *Graph[K, V]) FirstNoSuccessor() (K, bool) {
	if i := g.firstSink(); i >= 0 {
		return g.vertices[i].Key, true
	}
	var zero K

	return zero, false
}

// KeysInTopologicalOrder returns every key ordered so that each edge points
// from an earlier key to a later one.
//
// Implementation:
//   - Stage 1: Clone g; the receiver is never touched.
//   - Stage 2: Find the first vertex without successors in the clone, remove
//     it, and prepend its key to the result. Repeat until the clone is empty.
//   - Stage 3: If vertices remain but none is a sink, the graph has a cycle.
//
// A self-loop counts as a cycle.
//
// Errors:
//   - ErrCycleDetected: the graph is not acyclic.
//
// Complexity: O(V³).
func (g *Graph[K, V]) KeysInTopologicalOrder() ([]K, error) {
	work := g.Clone()
	n := work.Size()
	order := make([]K, n)
	var sink int
	for slot := n - 1; slot >= 0; slot-- {
		if sink = work.firstSink(); sink < 0 {
			g.logger.Warn("topological sort found a cycle", "remaining", work.Size())
			return nil, fmt.Errorf("KeysInTopologicalOrder: %d vertices left without a sink: %w", work.Size(), ErrCycleDetected)
		}
		order[slot] = work.vertices[sink].Key
		if err := work.compact(sink); err != nil {
			return nil, fmt.Errorf("KeysInTopologicalOrder: %w", err)
		}
	}
	g.logger.Debug("topological order computed", "vertices", n)

	return order, nil
}

// firstSink returns the position of the first vertex without successors, or -1.
func (g *Graph[K, V]) firstSink() int {
	for i := range g.vertices {
		if !g.hasSuccessor(i) {
			return i
		}
	}

	return -1
}
