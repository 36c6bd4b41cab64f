// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighbor scans over the adjacency matrix and the per-call visited set.
//
// Determinism:
//   - Every scan walks positions in ascending order, so traversals that use
//     these helpers are reproducible for a given insertion order.

package core

// visitSet is the scratch "visited" state of one algorithm call, indexed by position.
// It lives on the caller's stack frame; vertices themselves carry no traversal state.
type visitSet []bool

func newVisitSet(n int) visitSet { return make(visitSet, n) }

func (s visitSet) mark(i int)          { s[i] = true }
func (s visitSet) has(i int) bool      { return s[i] }
func (s visitSet) unmarked(i int) bool { return !s[i] }

// Successors returns the keys of every vertex key points to, in position order.
//
// Errors:
//   - ErrUnknownKey: key is not in the graph.
func (g *Graph[K, V]) Successors(key K) ([]K, error) {
	i, err := g.position("Successors", key)
	if err != nil {
		return nil, err
	}

	return g.keysAt(g.outNeighbors(i, nil)), nil
}

// Predecessors returns the keys of every vertex pointing to key, in position order.
//
// Errors:
//   - ErrUnknownKey: key is not in the graph.
func (g *Graph[K, V]) Predecessors(key K) ([]K, error) {
	i, err := g.position("Predecessors", key)
	if err != nil {
		return nil, err
	}

	return g.keysAt(g.inNeighbors(i, nil)), nil
}

// outNeighbors appends to dst every j with i→j and returns it.
func (g *Graph[K, V]) outNeighbors(i int, dst []int) []int {
	n := len(g.vertices)
	for j := 0; j < n; j++ {
		if g.adj.Get(i, j) != notAdjacent {
			dst = append(dst, j)
		}
	}

	return dst
}

// inNeighbors appends to dst every j with j→i and returns it.
func (g *Graph[K, V]) inNeighbors(i int, dst []int) []int {
	n := len(g.vertices)
	for j := 0; j < n; j++ {
		if g.adj.Get(j, i) != notAdjacent {
			dst = append(dst, j)
		}
	}

	return dst
}

// nextUnvisitedOut returns the first j with i→j not in seen, or -1.
func (g *Graph[K, V]) nextUnvisitedOut(i int, seen visitSet) int {
	n := len(g.vertices)
	for j := 0; j < n; j++ {
		if g.adj.Get(i, j) != notAdjacent && seen.unmarked(j) {
			return j
		}
	}

	return -1
}

// nextUnvisitedIn returns the first j with j→i not in seen, or -1.
func (g *Graph[K, V]) nextUnvisitedIn(i int, seen visitSet) int {
	n := len(g.vertices)
	for j := 0; j < n; j++ {
		if g.adj.Get(j, i) != notAdjacent && seen.unmarked(j) {
			return j
		}
	}

	return -1
}

// hasSuccessor reports whether row i has any non-zero cell.
func (g *Graph[K, V]) hasSuccessor(i int) bool {
	n := len(g.vertices)
	for j := 0; j < n; j++ {
		if g.adj.Get(i, j) != notAdjacent {
			return true
		}
	}

	return false
}

// keysAt maps positions to keys.
func (g *Graph[K, V]) keysAt(positions []int) []K {
	keys := make([]K, len(positions))
	for k, i := range positions {
		keys[k] = g.vertices[i].Key
	}

	return keys
}

// Degree returns the number of edges leaving and entering key. A self-loop
// counts once in each direction; a bidirectional edge counts in both.
//
// Errors:
//   - ErrUnknownKey: key is not in the graph.
//
// Complexity: O(V).
func (g *Graph[K, V]) Degree(key K) (in, out int, err error) {
	i, err := g.position("Degree", key)
	if err != nil {
		return 0, 0, err
	}

	return len(g.inNeighbors(i, nil)), len(g.outNeighbors(i, nil)), nil
}

// EdgeCount returns the number of non-zero matrix cells, so a bidirectional
// edge counts twice. Complexity: O(V²).
func (g *Graph[K, V]) EdgeCount() int {
	n := len(g.vertices)
	count := 0
	for i := 0; i < n; i++ {
		count += len(g.outNeighbors(i, nil))
	}

	return count
}
