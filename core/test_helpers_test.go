// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for the core tests.
//
// Purpose:
//   - Small deterministic graphs built in a fixed insertion order, so
//     positions and traversal orders are reproducible.
//   - No *testing.T use inside goroutines.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/usun/usunplanning/core"
)

// Common vertex keys used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"
	VertexF = "F"
	VertexG = "G"
	VertexH = "H"
	VertexI = "I"
	VertexX = "X"
	VertexY = "Y"
	VertexZ = "Z"
)

// Common fixture sizes.
const (
	SmallCapacity = 2
	NReaders      = 32
)

// link is one fixture edge.
type link struct {
	from, to string
	bidi     bool
	weight   int
}

// newGraph builds an unweighted graph with keys in the given order and the given edges.
func newGraph(t testing.TB, keys []string, links ...link) *core.Graph[string, string] {
	t.Helper()
	g, err := core.NewGraph[string, string](core.DefaultCapacity)
	require.NoError(t, err)
	for _, k := range keys {
		require.NoError(t, g.AddVertexKey(k))
	}
	for _, l := range links {
		require.NoError(t, g.AddEdge(l.from, l.to, l.bidi))
	}

	return g
}

// newWeighted builds a weighted graph with keys in the given order and the given edges.
func newWeighted(t testing.TB, keys []string, links ...link) *core.WeightedGraph[string, string] {
	t.Helper()
	g, err := core.NewWeightedGraph[string, string](core.DefaultCapacity)
	require.NoError(t, err)
	for _, k := range keys {
		require.NoError(t, g.AddVertexKey(k))
	}
	for _, l := range links {
		require.NoError(t, g.AddWeightedEdge(core.Edge[string]{From: l.from, To: l.to, Bidirectional: l.bidi, Weight: l.weight}))
	}

	return g
}

// primScenario is the six-vertex weighted graph whose minimum spanning tree weighs 28:
// A-D=4, C-E=5, A-B=6, C-F=6 plus one 7-weight edge bridging {A,B,D} and {C,E,F}.
func primScenario(t testing.TB) *core.WeightedGraph[string, string] {
	t.Helper()
	return newWeighted(t,
		[]string{VertexA, VertexB, VertexC, VertexD, VertexE, VertexF},
		link{VertexA, VertexB, true, 6},
		link{VertexA, VertexD, true, 4},
		link{VertexB, VertexD, true, 7},
		link{VertexB, VertexE, true, 7},
		link{VertexB, VertexC, true, 10},
		link{VertexC, VertexD, true, 8},
		link{VertexC, VertexE, true, 5},
		link{VertexC, VertexF, true, 6},
		link{VertexD, VertexE, true, 12},
		link{VertexE, VertexF, true, 7},
	)
}

// topoScenario is the DAG A→B→C→G, D→G, E→F→H→I, G→I inserted as A..I.
func topoScenario(t testing.TB) *core.Graph[string, string] {
	t.Helper()
	return newGraph(t,
		[]string{VertexA, VertexB, VertexC, VertexD, VertexE, VertexF, VertexG, VertexH, VertexI},
		link{from: VertexA, to: VertexB},
		link{from: VertexB, to: VertexC},
		link{from: VertexC, to: VertexG},
		link{from: VertexD, to: VertexG},
		link{from: VertexE, to: VertexF},
		link{from: VertexF, to: VertexH},
		link{from: VertexH, to: VertexI},
		link{from: VertexG, to: VertexI},
	)
}

// edgeStrings renders edges for compact comparisons.
func edgeStrings(edges []core.Edge[string]) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.String()
	}

	return out
}

// requirePathFollowsEdges checks that every consecutive pair of path is an edge of g.
func requirePathFollowsEdges(t testing.TB, g core.Topology[string, string], path []string) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		v, err := g.Adjacency(path[i-1], path[i])
		require.NoError(t, err)
		require.NotZero(t, v, "no edge %s→%s in path %v", path[i-1], path[i], path)
	}
}
