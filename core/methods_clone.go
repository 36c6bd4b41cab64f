// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Structural copies and clearing.
//
// Contract:
//   - The copy owns its arena, index and matrix; payload values are shared.
//   - Positions, and therefore traversal orders, match the source.

package core

import "github.com/usun/usunplanning/matrix"

// Clone returns an independent copy of g: the vertices are re-inserted in
// position order and every matrix cell is replayed. Mutating the copy never
// affects g.
//
// Complexity: O(V²).
func (g *Graph[K, V]) Clone() *Graph[K, V] {
	c := g.cloneEmpty()
	n := len(g.vertices)
	var i, j, v int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v = g.adj.Get(i, j); v != notAdjacent {
				c.adj.Put(i, j, v)
			}
		}
	}

	return c
}

// cloneEmpty returns a copy of g with the same vertices and no edges.
func (g *Graph[K, V]) cloneEmpty() *Graph[K, V] {
	c := g.emptyLike(len(g.vertices))
	for _, v := range g.vertices {
		c.appendVertex(v)
	}

	return c
}

// emptyLike returns an empty graph sharing g's logger, sized for at least n
// vertices. Its capacity hint is never below g's.
func (g *Graph[K, V]) emptyLike(n int) *Graph[K, V] {
	// The hint is within (0, MaxVertices] because g's was and n <= g.Size().
	c, _ := NewGraph[K, V](max(g.adj.Hint(), n), WithLogger(g.logger))
	return c
}

// Clear removes every vertex and edge. The capacity hint and logger are kept.
func (g *Graph[K, V]) Clear() {
	// The hint was accepted by NewSquare once already.
	g.adj, _ = matrix.NewSquare(g.adj.Hint())
	clear(g.index)
	clear(g.vertices)
	g.vertices = g.vertices[:0]
}
