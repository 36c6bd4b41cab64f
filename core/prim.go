// SPDX-License-Identifier: MIT
// File: prim.go
// Role: Prim's minimum spanning tree over a WeightedGraph.

package core

import "fmt"

// MinSpanningTree returns a new weighted graph holding a minimum spanning
// tree of w, grown with Prim's algorithm from the vertex in position 0.
//
// Implementation:
//   - Stage 1: Put position 0 in the tree.
//   - Stage 2: Queue every edge from the newest tree vertex to a vertex not yet
//     in the tree. The EdgeQueue keeps only the lightest candidate per
//     destination; ties go to the candidate discovered first.
//   - Stage 3: Poll the lightest candidate, add its destination and the edge to
//     the tree. Repeat until the tree has V-1 edges.
//
// Edges are followed in their stored direction. A tree edge is bidirectional
// when w holds the same weight in both directions, directed otherwise.
// Self-loops are ignored. An empty graph yields an empty tree.
//
// Errors:
//   - ErrDisconnected: the queue ran dry before every vertex was reached.
//
// Complexity: O(V² log V) worst case; decrease-key scans the queue.
func (w *WeightedGraph[K, V]) MinSpanningTree() (*WeightedGraph[K, V], error) {
	n := w.Size()
	tree := &WeightedGraph[K, V]{Graph: w.emptyLike(n)}
	if n == 0 {
		return tree, nil
	}

	queue, err := NewEdgeQueue[K](n)
	if err != nil {
		return nil, fmt.Errorf("MinSpanningTree: %w", err)
	}
	inTree := newVisitSet(n)
	inTree.mark(0)
	tree.appendVertex(w.vertices[0])

	var (
		at, next, weight int
		total            int
		e                Edge[K]
		ok               bool
	)
	for edges := 0; edges < n-1; edges++ {
		for next = 0; next < n; next++ {
			if next == at || inTree.has(next) {
				continue
			}
			if weight = w.adj.Get(at, next); weight == notAdjacent {
				continue
			}
			if _, err = queue.Push(weight, Edge[K]{From: w.vertices[at].Key, To: w.vertices[next].Key}); err != nil {
				return nil, fmt.Errorf("MinSpanningTree: %w", err)
			}
		}

		if e, ok = queue.Poll(); !ok {
			w.logger.Warn("minimum spanning tree incomplete", "reached", tree.Size(), "vertices", n)
			return nil, fmt.Errorf("MinSpanningTree: reached %d of %d vertices: %w", tree.Size(), n, ErrDisconnected)
		}
		from := w.mustPosition(e.From)
		at = w.mustPosition(e.To)
		inTree.mark(at)
		child := tree.appendVertex(w.vertices[at])
		tree.setEdge(tree.mustPosition(e.From), child, e.Weight, w.adj.Get(at, from) == e.Weight)
		total += e.Weight
	}
	w.logger.Debug("minimum spanning tree built", "vertices", n, "weight", total)

	return tree, nil
}
