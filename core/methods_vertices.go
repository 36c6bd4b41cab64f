// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle and queries.
//
// Determinism:
//   - Keys() returns keys in position (insertion) order; removal shifts later
//     vertices down by one and keeps their relative order.

package core

import "fmt"

// IsEmpty reports whether the graph has no vertices. O(1).
func (g *Graph[K, V]) IsEmpty() bool { return len(g.vertices) == 0 }

// Size returns the number of vertices. O(1).
func (g *Graph[K, V]) Size() int { return len(g.vertices) }

// ContainsVertexKey reports whether key names a vertex of g. O(1).
func (g *Graph[K, V]) ContainsVertexKey(key K) bool {
	_, ok := g.index[key]
	return ok
}

// Keys returns the vertex keys in position order.
func (g *Graph[K, V]) Keys() []K {
	keys := make([]K, len(g.vertices))
	for i, v := range g.vertices {
		keys[i] = v.Key
	}

	return keys
}

// Value returns the payload stored under key.
//
// Errors:
//   - ErrUnknownKey: key is not in the graph.
func (g *Graph[K, V]) Value(key K) (V, error) {
	i, err := g.position("Value", key)
	if err != nil {
		var zero V
		return zero, err
	}

	return g.vertices[i].Value, nil
}

// AddVertexKey adds a vertex with a zero payload.
func (g *Graph[K, V]) AddVertexKey(key K) error {
	var zero V
	return g.AddVertex(key, zero)
}

// AddVertex appends a disconnected vertex at the next position.
//
// Implementation:
//   - Stage 1: Reject a nil key, a duplicate key, and a full graph.
//   - Stage 2: Append to the vertex arena, record its position, grow the matrix
//     by one zero row and column.
//
// Errors:
//   - ErrNilKey: key is nil.
//   - ErrDuplicateKey: key is already in the graph.
//   - ErrCapacityExceeded: the graph already holds MaxVertices vertices.
//
// Complexity: O(V) for the new column cell in every row.
func (g *Graph[K, V]) AddVertex(key K, value V) error {
	if isNilKey(key) {
		return fmt.Errorf("AddVertex: %w", ErrNilKey)
	}
	if g.ContainsVertexKey(key) {
		return fmt.Errorf("AddVertex(%v): %w", key, ErrDuplicateKey)
	}
	if len(g.vertices) >= MaxVertices {
		return fmt.Errorf("AddVertex(%v): graph holds %d vertices: %w", key, MaxVertices, ErrCapacityExceeded)
	}
	g.appendVertex(Vertex[K, V]{Key: key, Value: value})

	return nil
}

// RemoveVertex deletes the vertex under key together with every edge that
// touches it. Vertices after it move one position down.
//
// Errors:
//   - ErrUnknownKey: key is not in the graph.
//
// Complexity: O(V) for the matrix compaction and index rebuild.
func (g *Graph[K, V]) RemoveVertex(key K) error {
	i, err := g.position("RemoveVertex", key)
	if err != nil {
		return err
	}

	return g.compact(i)
}

// appendVertex stores v at the next position. Callers validate the key.
func (g *Graph[K, V]) appendVertex(v Vertex[K, V]) int {
	i := len(g.vertices)
	g.vertices = append(g.vertices, v)
	g.index[v.Key] = i
	g.adj.Grow()

	return i
}

// compact removes the vertex at position i: its arena slot, its index entry,
// its matrix row and column. Every later vertex is renumbered here and nowhere else.
func (g *Graph[K, V]) compact(i int) error {
	removed := g.vertices[i].Key
	if err := g.adj.Drop(i); err != nil {
		return fmt.Errorf("RemoveVertex(%v): %w", removed, err)
	}
	delete(g.index, removed)
	last := len(g.vertices) - 1
	copy(g.vertices[i:], g.vertices[i+1:])
	g.vertices[last] = Vertex[K, V]{} // drop the payload reference
	g.vertices = g.vertices[:last]
	for j := i; j < len(g.vertices); j++ {
		g.index[g.vertices[j].Key] = j
	}
	g.logger.Debug("vertex removed", "key", removed, "position", i, "shifted", len(g.vertices)-i)

	return nil
}

// position resolves key to its arena index, wrapping ErrUnknownKey with op.
func (g *Graph[K, V]) position(op string, key K) (int, error) {
	i, ok := g.index[key]
	if !ok {
		return -1, fmt.Errorf("%s(%v): %w", op, key, ErrUnknownKey)
	}

	return i, nil
}

// mustPosition is position for keys already known to be present.
func (g *Graph[K, V]) mustPosition(key K) int {
	i, ok := g.index[key]
	if !ok {
		panic(fmt.Sprintf("core: key %v vanished from index", key))
	}

	return i
}
