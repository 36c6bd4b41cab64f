// SPDX-License-Identifier: MIT
// File: weighted.go
// Role: Weighted graph variant. Edge weights live directly in the matrix cells.

package core

import "fmt"

// WeightedGraph is a Graph whose matrix cells hold positive edge weights.
// Every Graph method is available; AddEdge stores weight 1.
type WeightedGraph[K comparable, V any] struct {
	*Graph[K, V]
}

// NewWeightedGraph creates an empty weighted graph. See NewGraph.
func NewWeightedGraph[K comparable, V any](capacity int, opts ...GraphOption) (*WeightedGraph[K, V], error) {
	g, err := NewGraph[K, V](capacity, opts...)
	if err != nil {
		return nil, err
	}

	return &WeightedGraph[K, V]{Graph: g}, nil
}

// AddWeightedEdge stores e.Weight in e.From→e.To, and in e.To→e.From as well
// when e.Bidirectional is set. Weight 0 removes the edge.
//
// Errors:
//   - ErrNilKey: e.From or e.To is a nil key.
//   - ErrBadWeight: e.Weight < 0.
//   - ErrUnknownKey: either endpoint is not in the graph.
//
// Complexity: O(1).
func (w *WeightedGraph[K, V]) AddWeightedEdge(e Edge[K]) error {
	if isNilKey(e.From) || isNilKey(e.To) {
		return fmt.Errorf("AddWeightedEdge(%v): %w", e, ErrNilKey)
	}
	if e.Weight < 0 {
		return fmt.Errorf("AddWeightedEdge(%v): %w", e, ErrBadWeight)
	}
	i, j, err := w.positions("AddWeightedEdge", e.From, e.To)
	if err != nil {
		return err
	}
	w.setEdge(i, j, e.Weight, e.Bidirectional)

	return nil
}

// Weight returns the weight of from→to, 0 when there is no such edge.
//
// Errors:
//   - ErrUnknownKey: either key is not in the graph.
func (w *WeightedGraph[K, V]) Weight(from, to K) (int, error) {
	i, j, err := w.positions("Weight", from, to)
	if err != nil {
		return notAdjacent, err
	}

	return w.adj.Get(i, j), nil
}

// TotalWeight sums the weights of Edges(); a bidirectional pair counts once.
func (w *WeightedGraph[K, V]) TotalWeight() int {
	total := 0
	for _, e := range w.Edges() {
		total += e.Weight
	}

	return total
}

// Clone returns an independent copy with the same vertices and weights.
func (w *WeightedGraph[K, V]) Clone() *WeightedGraph[K, V] {
	return &WeightedGraph[K, V]{Graph: w.Graph.Clone()}
}

// SpanningTree is MinSpanningTree behind the Topology interface.
func (w *WeightedGraph[K, V]) SpanningTree() (Topology[K, V], error) {
	tree, err := w.MinSpanningTree()
	if err != nil {
		return nil, err
	}

	return tree, nil
}
