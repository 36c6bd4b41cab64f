// SPDX-License-Identifier: MIT
// File: reachability.go
// Role: Transitive closure and depth-first reachability.
//
// Policy:
//   - The closure is rebuilt from the live matrix on every call. Nothing is
//     cached, so a result always reflects the graph as it is now.
//   - Traversals are iterative; stack depth never depends on graph size.

package core

import "github.com/usun/usunplanning/matrix"

// Closure returns the reachability matrix of g in position order: cell (i, j)
// is 1 when j can be reached from i through at least one edge.
//
// Complexity: Time O(V³), Space O(V²).
func (g *Graph[K, V]) Closure() *matrix.Square {
	// g.adj is never nil, so TransitiveClosure cannot fail.
	c, _ := matrix.TransitiveClosure(g.adj)
	return c
}

// AreConnected reports whether a directed path leads from source to destination.
// A vertex is connected to itself only when it lies on a cycle.
//
// Implementation:
//   - Stage 1: Resolve both keys.
//   - Stage 2: Run Warshall over a copy of the matrix and read one cell.
//
// Errors:
//   - ErrUnknownKey: either key is not in the graph.
//
// Complexity: Time O(V³), Space O(V²).
func (g *Graph[K, V]) AreConnected(source, destination K) (bool, error) {
	i, j, err := g.positions("AreConnected", source, destination)
	if err != nil {
		return false, err
	}

	return g.Closure().Get(i, j) != notAdjacent, nil
}

// ReachableFrom returns key followed by every vertex reachable from it, in
// depth-first discovery order.
//
// Errors:
//   - ErrUnknownKey: key is not in the graph.
//
// Complexity: O(V²) per call.
func (g *Graph[K, V]) ReachableFrom(key K) ([]K, error) {
	i, err := g.position("ReachableFrom", key)
	if err != nil {
		return nil, err
	}

	return g.keysAt(g.depthFirst(i)), nil
}

// ConnectivityTable returns, for every vertex in position order, the list
// produced by ReachableFrom for that vertex.
//
// Complexity: O(V³).
func (g *Graph[K, V]) ConnectivityTable() [][]K {
	table := make([][]K, len(g.vertices))
	for i := range g.vertices {
		table[i] = g.keysAt(g.depthFirst(i))
	}

	return table
}

// depthFirst returns the positions reachable from start, start first, in the
// order they were discovered. The stack holds the current branch only.
func (g *Graph[K, V]) depthFirst(start int) []int {
	seen := newVisitSet(len(g.vertices))
	seen.mark(start)
	order := []int{start}
	stack := []int{start}
	var top, next int
	for len(stack) > 0 {
		top = stack[len(stack)-1]
		if next = g.nextUnvisitedOut(top, seen); next < 0 {
			stack = stack[:len(stack)-1] // dead end
			continue
		}
		seen.mark(next)
		order = append(order, next)
		stack = append(stack, next)
	}

	return order
}
