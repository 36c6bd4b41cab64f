// SPDX-License-Identifier: MIT
// File: spanning.go
// Role: Breadth-first spanning tree of an unweighted graph.

package core

import "fmt"

// MinSpanningTree returns a new graph holding a breadth-first spanning tree
// of g rooted at the vertex in position 0. Every tree edge is a bidirectional
// unit edge between a vertex and the vertex it was discovered from. Edges
// are followed in their stored direction only.
//
// An empty graph yields an empty tree. The tree shares payload values with g
// and nothing else.
//
// Errors:
//   - ErrDisconnected: some vertex is unreachable from position 0.
//
// Complexity: O(V²).
func (g *Graph[K, V]) MinSpanningTree() (*Graph[K, V], error) {
	n := len(g.vertices)
	tree := g.emptyLike(n)
	if n == 0 {
		return tree, nil
	}

	seen := newVisitSet(n)
	seen.mark(0)
	tree.appendVertex(g.vertices[0])
	queue := []int{0}
	var at, next int
	for len(queue) > 0 {
		at, queue = queue[0], queue[1:]
		for next = 0; next < n; next++ {
			if g.adj.Get(at, next) == notAdjacent || seen.has(next) {
				continue
			}
			seen.mark(next)
			queue = append(queue, next)
			child := tree.appendVertex(g.vertices[next])
			tree.setEdge(tree.mustPosition(g.vertices[at].Key), child, unitEdge, true)
		}
	}

	if tree.Size() < n {
		g.logger.Warn("spanning tree incomplete", "reached", tree.Size(), "vertices", n)
		return nil, fmt.Errorf("MinSpanningTree: reached %d of %d vertices: %w", tree.Size(), n, ErrDisconnected)
	}

	return tree, nil
}

// SpanningTree is MinSpanningTree behind the Topology interface.
func (g *Graph[K, V]) SpanningTree() (Topology[K, V], error) {
	tree, err := g.MinSpanningTree()
	if err != nil {
		return nil, err
	}

	return tree, nil
}
