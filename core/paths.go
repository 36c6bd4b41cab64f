// SPDX-License-Identifier: MIT
// File: paths.go
// Role: Path finding between two vertices.
//
// Contract:
//   - Both searches return keys ordered from key1 to key2, and every
//     consecutive pair is joined by an edge in that direction.
//   - No path yields an empty (nil) result and a nil error.
//   - key1 == key2 yields the single-element path [key1].

package core

import "slices"

// FindPath returns some path from key1 to key2, not necessarily the shortest.
//
// Implementation:
//   - Depth-first search that starts at key2 and follows edges backwards.
//   - The explicit stack is the path: a dead end pops one vertex, pushing
//     key1 ends the search with the stack holding key2 … key1.
//   - The stack is reversed into key1 … key2.
//
// Errors:
//   - ErrUnknownKey: either key is not in the graph.
//
// Complexity: O(V²).
func (g *Graph[K, V]) FindPath(key1, key2 K) ([]K, error) {
	src, dst, err := g.positions("FindPath", key1, key2)
	if err != nil {
		return nil, err
	}
	if src == dst {
		return []K{key1}, nil
	}

	seen := newVisitSet(len(g.vertices))
	seen.mark(dst)
	stack := []int{dst}
	var top, prev int
	for len(stack) > 0 {
		top = stack[len(stack)-1]
		if prev = g.nextUnvisitedIn(top, seen); prev < 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		seen.mark(prev)
		stack = append(stack, prev)
		if prev == src {
			slices.Reverse(stack)
			return g.keysAt(stack), nil
		}
	}

	return nil, nil
}

// FindTheShortestPath returns a path from key1 to key2 with the fewest edges.
//
// Implementation:
//   - Breadth-first search forward from key1, recording for every newly
//     discovered vertex the already-visited vertex it was reached from.
//   - Once key2 is discovered the recorded predecessors are walked back to key1.
//
// Errors:
//   - ErrUnknownKey: either key is not in the graph.
//
// Complexity: O(V²); each matrix row is scanned at most once.
func (g *Graph[K, V]) FindTheShortestPath(key1, key2 K) ([]K, error) {
	src, dst, err := g.positions("FindTheShortestPath", key1, key2)
	if err != nil {
		return nil, err
	}
	if src == dst {
		return []K{key1}, nil
	}

	parent := g.breadthFirstParents(src, dst)
	if parent[dst] < 0 {
		return nil, nil
	}
	path := []int{dst}
	for at := dst; at != src; {
		at = parent[at]
		path = append(path, at)
	}
	slices.Reverse(path)

	return g.keysAt(path), nil
}

// breadthFirstParents runs BFS from src until stop is discovered or the queue
// drains. parent[i] is the position i was discovered from, or -1; parent[src]
// is src itself.
func (g *Graph[K, V]) breadthFirstParents(src, stop int) []int {
	n := len(g.vertices)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	seen := newVisitSet(n)
	seen.mark(src)
	parent[src] = src
	queue := []int{src}
	var at, next int
	for len(queue) > 0 {
		at, queue = queue[0], queue[1:]
		for next = 0; next < n; next++ {
			if g.adj.Get(at, next) == notAdjacent || seen.has(next) {
				continue
			}
			seen.mark(next)
			parent[next] = at
			if next == stop {
				return parent
			}
			queue = append(queue, next)
		}
	}

	return parent
}
