// SPDX-License-Identifier: MIT
// File: api.go
// Role: Capability interface shared by Graph and WeightedGraph.

package core

// Topology is the read-only surface both graph variants offer. Code that only
// inspects structure (reports, CLI output) accepts a Topology and works with
// either variant.
//
// SpanningTree dispatches on the variant: a breadth-first tree for *Graph,
// a Prim minimum spanning tree for *WeightedGraph.
type Topology[K comparable, V any] interface {
	IsEmpty() bool
	Size() int
	ContainsVertexKey(key K) bool
	Keys() []K
	Value(key K) (V, error)
	Adjacency(from, to K) (int, error)
	Edges() []Edge[K]

	AreConnected(source, destination K) (bool, error)
	ReachableFrom(key K) ([]K, error)
	ConnectivityTable() [][]K
	KeysInTopologicalOrder() ([]K, error)
	FirstNoSuccessor() (K, bool)
	FindPath(key1, key2 K) ([]K, error)
	FindTheShortestPath(key1, key2 K) ([]K, error)

	SpanningTree() (Topology[K, V], error)
	String() string
}

var (
	_ Topology[string, any] = (*Graph[string, any])(nil)
	_ Topology[string, any] = (*WeightedGraph[string, any])(nil)
)
