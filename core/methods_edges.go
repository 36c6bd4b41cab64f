// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle and adjacency queries.
//
// Contract:
//   - A directed edge sets one matrix cell; a bidirectional edge sets both.
//   - A cell value of 0 means "not adjacent".

package core

// AddEdge links key1 to key2 with a unit edge, and key2 to key1 as well when
// bidirectional is true. Re-adding an existing edge is a no-op.
//
// Errors:
//   - ErrUnknownKey: either key is not in the graph.
//
// Complexity: O(1).
func (g *Graph[K, V]) AddEdge(key1, key2 K, bidirectional bool) error {
	i, j, err := g.positions("AddEdge", key1, key2)
	if err != nil {
		return err
	}
	g.setEdge(i, j, unitEdge, bidirectional)

	return nil
}

// RemoveEdge clears key1→key2, and key2→key1 as well when bidirectional is true.
// Removing a missing edge is a no-op.
//
// Errors:
//   - ErrUnknownKey: either key is not in the graph.
//
// Complexity: O(1).
func (g *Graph[K, V]) RemoveEdge(key1, key2 K, bidirectional bool) error {
	i, j, err := g.positions("RemoveEdge", key1, key2)
	if err != nil {
		return err
	}
	g.setEdge(i, j, notAdjacent, bidirectional)

	return nil
}

// Adjacency returns the raw matrix cell for from→to: 0 when not adjacent,
// 1 for a unit edge, the weight for a weighted edge.
//
// Errors:
//   - ErrUnknownKey: either key is not in the graph.
func (g *Graph[K, V]) Adjacency(from, to K) (int, error) {
	i, j, err := g.positions("Adjacency", from, to)
	if err != nil {
		return notAdjacent, err
	}

	return g.adj.Get(i, j), nil
}

// Edges enumerates every stored edge in row-major order. A pair of opposite
// cells holding the same value is reported once, as a bidirectional edge
// at its first occurrence. Self-loops are directed.
//
// Complexity: O(V²).
func (g *Graph[K, V]) Edges() []Edge[K] {
	n := len(g.vertices)
	var (
		edges  []Edge[K]
		i, j   int
		v, rev int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v = g.adj.Get(i, j); v == notAdjacent {
				continue
			}
			rev = g.adj.Get(j, i)
			if j < i && rev == v {
				continue // already reported from row j
			}
			edges = append(edges, Edge[K]{
				From:          g.vertices[i].Key,
				To:            g.vertices[j].Key,
				Bidirectional: i != j && rev == v,
				Weight:        v,
			})
		}
	}

	return edges
}

// setEdge writes value into i→j and, when bidirectional, into j→i.
func (g *Graph[K, V]) setEdge(i, j, value int, bidirectional bool) {
	g.adj.Put(i, j, value)
	if bidirectional {
		g.adj.Put(j, i, value)
	}
}

// positions resolves both keys, reporting the first unknown one.
func (g *Graph[K, V]) positions(op string, key1, key2 K) (int, int, error) {
	i, err := g.position(op, key1)
	if err != nil {
		return -1, -1, err
	}
	j, err := g.position(op, key2)
	if err != nil {
		return -1, -1, err
	}

	return i, j, nil
}
