// SPDX-License-Identifier: MIT
package core_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usun/usunplanning/core"
)

func TestNewGraph_Capacity(t *testing.T) {
	for _, capacity := range []int{0, -1, core.MaxVertices + 1} {
		_, err := core.NewGraph[string, string](capacity)
		require.ErrorIs(t, err, core.ErrInvalidCapacity, "capacity %d", capacity)

		_, err = core.NewWeightedGraph[string, string](capacity)
		require.ErrorIs(t, err, core.ErrInvalidCapacity, "capacity %d", capacity)
	}

	g, err := core.NewGraph[string, string](1)
	require.NoError(t, err)
	assert.True(t, g.IsEmpty())
	assert.Equal(t, 0, g.Size())
	assert.Empty(t, g.Keys())
	assert.Empty(t, g.Edges())
}

func TestEdge_String(t *testing.T) {
	assert.Equal(t, "A<->B=6", core.Edge[string]{From: VertexA, To: VertexB, Bidirectional: true, Weight: 6}.String())
	assert.Equal(t, "A->B=6", core.Edge[string]{From: VertexA, To: VertexB, Weight: 6}.String())
	assert.Equal(t, "1->2=0", core.Edge[int]{From: 1, To: 2}.String())
}

func TestWithLogger_ReceivesDebugLines(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	g, err := core.NewGraph[string, string](core.DefaultCapacity, core.WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, g.AddVertexKey(VertexA))
	require.NoError(t, g.AddVertexKey(VertexB))
	require.NoError(t, g.RemoveVertex(VertexA))

	assert.Contains(t, buf.String(), "vertex removed")
}

func TestWithLogger_NilKeepsDefault(t *testing.T) {
	g, err := core.NewGraph[string, string](core.DefaultCapacity, core.WithLogger(nil))
	require.NoError(t, err)
	require.NoError(t, g.AddVertexKey(VertexA))
	require.NoError(t, g.RemoveVertex(VertexA)) // logs to the discard logger without panicking
}

func TestZeroValueKeysAreOrdinary(t *testing.T) {
	g, err := core.NewGraph[int, string](core.DefaultCapacity)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex(0, "zero"))
	require.NoError(t, g.AddVertexKey(7))
	require.NoError(t, g.AddEdge(0, 7, false))

	v, err := g.Value(0)
	require.NoError(t, err)
	assert.Equal(t, "zero", v)
	path, err := g.FindTheShortestPath(0, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 7}, path)
	require.ErrorIs(t, g.AddVertexKey(0), core.ErrDuplicateKey)
	require.NoError(t, g.RemoveVertex(0))
	assert.Equal(t, []int{7}, g.Keys())

	gs, err := core.NewGraph[string, string](core.DefaultCapacity)
	require.NoError(t, err)
	require.NoError(t, gs.AddVertexKey(""))
	assert.True(t, gs.ContainsVertexKey(""))
}

func TestNilKeyIsRejected(t *testing.T) {
	gp, err := core.NewGraph[*string, int](core.DefaultCapacity)
	require.NoError(t, err)
	require.ErrorIs(t, gp.AddVertex(nil, 1), core.ErrNilKey)
	require.ErrorIs(t, gp.RemoveVertex(nil), core.ErrUnknownKey, "an absent key is unknown, nil or not")

	ga, err := core.NewGraph[any, int](core.DefaultCapacity)
	require.NoError(t, err)
	require.ErrorIs(t, ga.AddVertexKey(nil), core.ErrNilKey)
	var nilPtr *int
	require.ErrorIs(t, ga.AddVertexKey(nilPtr), core.ErrNilKey)
	require.NoError(t, ga.AddVertexKey(0))

	gw, err := core.NewWeightedGraph[*string, int](core.DefaultCapacity)
	require.NoError(t, err)
	a := new(string)
	require.NoError(t, gw.AddVertexKey(a))
	require.ErrorIs(t, gw.AddWeightedEdge(core.Edge[*string]{From: a, To: nil, Weight: 1}), core.ErrNilKey)
	require.ErrorIs(t, gw.AddWeightedEdge(core.Edge[*string]{From: nil, To: a, Weight: 1}), core.ErrNilKey)
}
