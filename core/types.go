// SPDX-License-Identifier: MIT
// Package core defines the Vertex, Edge, Graph and WeightedGraph types and the
// algorithms that run over them.
//
// This file declares the sentinel errors, Vertex, Edge, GraphOption and the
// NewGraph constructor.
//
// Errors:
//
//	ErrNilKey           - vertex key is a nil pointer, channel or interface.
//	ErrDuplicateKey     - vertex key already present.
//	ErrUnknownKey       - requested vertex does not exist.
//	ErrInvalidCapacity  - capacity hint outside (0, MaxVertices].
//	ErrCapacityExceeded - graph already holds MaxVertices vertices.
//	ErrBadWeight        - negative edge weight.
//	ErrCycleDetected    - topological order requested on a cyclic graph.
//	ErrDisconnected     - spanning tree requested on a disconnected graph.
package core

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/charmbracelet/log"

	"github.com/usun/usunplanning/matrix"
)

const (
	// MaxVertices is the largest vertex count a Graph accepts. The adjacency
	// matrix holds MaxVertices² cells, which stays below math.MaxInt32.
	MaxVertices = 23170

	// DefaultCapacity is the capacity hint used by callers that have no better estimate.
	DefaultCapacity = 8

	// notAdjacent is the matrix value for "no edge".
	notAdjacent = 0

	// unitEdge is the matrix value stored by unweighted AddEdge.
	unitEdge = 1
)

// Sentinel errors for core graph operations.
var (
	// ErrNilKey indicates a nil vertex key (nil pointer, channel or interface).
	ErrNilKey = errors.New("core: vertex key is nil")

	// ErrDuplicateKey indicates AddVertex was called with a key already in the graph.
	ErrDuplicateKey = errors.New("core: duplicate vertex key")

	// ErrUnknownKey indicates an operation referenced a vertex that is not in the graph.
	ErrUnknownKey = errors.New("core: unknown vertex key")

	// ErrInvalidCapacity indicates a capacity hint outside (0, MaxVertices].
	ErrInvalidCapacity = errors.New("core: invalid capacity")

	// ErrCapacityExceeded indicates the graph already holds MaxVertices vertices.
	ErrCapacityExceeded = errors.New("core: vertex capacity exceeded")

	// ErrBadWeight indicates a negative edge weight.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrCycleDetected indicates the graph is not acyclic.
	ErrCycleDetected = errors.New("core: graph is not acyclic")

	// ErrDisconnected indicates that not every vertex is reachable from the first one.
	ErrDisconnected = errors.New("core: graph is disconnected")
)

// Vertex is a node record: a unique key and an opaque caller payload.
type Vertex[K comparable, V any] struct {
	// Key uniquely identifies the vertex within its graph.
	Key K

	// Value is caller data. Clone shares it, it is never copied.
	Value V
}

// Edge describes a connection From→To.
//
// Bidirectional edges occupy both matrix cells. Weight is the stored cell
// value: 1 for edges added through Graph.AddEdge, the edge weight otherwise.
type Edge[K comparable] struct {
	From          K
	To            K
	Bidirectional bool
	Weight        int
}

// String renders "A->B=6" for directed and "A<->B=6" for bidirectional edges.
func (e Edge[K]) String() string {
	arrow := "->"
	if e.Bidirectional {
		arrow = "<->"
	}

	return fmt.Sprintf("%v%s%v=%d", e.From, arrow, e.To, e.Weight)
}

// GraphOption configures a Graph before creation.
type GraphOption func(cfg *graphConfig)

type graphConfig struct {
	logger *log.Logger
}

// WithLogger routes debug and warning lines to l. A nil l keeps the default
// logger, which discards everything.
func WithLogger(l *log.Logger) GraphOption {
	return func(cfg *graphConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// Graph is an unweighted graph stored as an adjacency matrix.
//
// vertices, index and adj always agree: vertices[i].Key maps to i in index,
// and adj has order len(vertices). compact is the only code that renumbers.
//
// Graph has no internal locking. Read-only queries keep their scratch state
// local, so they may run concurrently as long as nothing mutates the graph.
type Graph[K comparable, V any] struct {
	vertices []Vertex[K, V]
	index    map[K]int
	adj      *matrix.Square
	logger   *log.Logger
}

// NewGraph creates an empty graph with room for capacity vertices before the
// matrix rows need reallocation.
//
// Errors:
//   - ErrInvalidCapacity: capacity <= 0 or capacity > MaxVertices.
//
// Complexity: O(capacity) for the index map.
func NewGraph[K comparable, V any](capacity int, opts ...GraphOption) (*Graph[K, V], error) {
	if capacity <= 0 || capacity > MaxVertices {
		return nil, fmt.Errorf("NewGraph(%d): want 0 < capacity <= %d: %w", capacity, MaxVertices, ErrInvalidCapacity)
	}
	cfg := graphConfig{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&cfg)
	}
	adj, err := matrix.NewSquare(capacity)
	if err != nil {
		return nil, fmt.Errorf("NewGraph(%d): %w", capacity, err)
	}

	return &Graph[K, V]{
		vertices: make([]Vertex[K, V], 0, capacity),
		index:    make(map[K]int, capacity),
		adj:      adj,
		logger:   cfg.logger,
	}, nil
}

// isNilKey reports whether key is a nil pointer, channel or interface, or an
// interface holding a nil map, slice or func. Zero values of other kinds,
// such as 0 or "", are ordinary keys.
func isNilKey[K comparable](key K) bool {
	x := any(key)
	if x == nil {
		return true
	}
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
