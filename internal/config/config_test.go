// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usun/usunplanning/builder"
	"github.com/usun/usunplanning/core"
	"github.com/usun/usunplanning/internal/config"
)

const primScenario = `
capacity = 6
weighted = true
vertices = ["A", "B", "C", "D", "E", "F"]

[[edges]]
from = "A"
to = "B"
weight = 6
bidirectional = true

[[edges]]
from = "A"
to = "D"
weight = 4
bidirectional = true

[[edges]]
from = "B"
to = "C"
weight = 10
bidirectional = true

[[edges]]
from = "B"
to = "D"
weight = 7
bidirectional = true

[[edges]]
from = "B"
to = "E"
weight = 7
bidirectional = true

[[edges]]
from = "C"
to = "D"
weight = 8
bidirectional = true

[[edges]]
from = "C"
to = "E"
weight = 5
bidirectional = true

[[edges]]
from = "C"
to = "F"
weight = 6
bidirectional = true

[[edges]]
from = "D"
to = "E"
weight = 12
bidirectional = true

[[edges]]
from = "E"
to = "F"
weight = 7
bidirectional = true
`

func TestLoad_WeightedScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prim.toml")
	require.NoError(t, os.WriteFile(path, []byte(primScenario), 0o600))

	s, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, s.Weighted)
	assert.Len(t, s.Edges, 10)

	g, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, g.Keys())

	tree, err := g.MinSpanningTree()
	require.NoError(t, err)
	assert.Equal(t, 28, tree.TotalWeight())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_UnweightedForcesUnitWeights(t *testing.T) {
	s, err := config.Parse(`
[[edges]]
from = "a"
to = "b"
weight = 9
`)
	require.NoError(t, err)
	g, err := s.Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, g.Keys(), "endpoints are added on first mention")
	w, err := g.Weight("a", "b")
	require.NoError(t, err)
	assert.Equal(t, 1, w)
}

func TestParse_Shape(t *testing.T) {
	s, err := config.Parse(`
weighted = true

[shape]
kind = "grid"
rows = 2
cols = 3
seed = 5
min_weight = 2
max_weight = 9
directed = true

[[edges]]
from = "1,2"
to = "0,0"
weight = 1
`)
	require.NoError(t, err)
	g, err := s.Build()
	require.NoError(t, err)

	assert.Equal(t, 6, g.Size())
	for _, e := range g.Edges() {
		if e.From == "1,2" {
			continue
		}
		assert.False(t, e.Bidirectional)
		assert.True(t, e.Weight >= 2 && e.Weight <= 9, e.String())
	}
	_, err = g.KeysInTopologicalOrder()
	require.ErrorIs(t, err, core.ErrCycleDetected, "the back edge closes a cycle")
}

func TestParse_SymbolIDs(t *testing.T) {
	s, err := config.Parse(`
[shape]
kind = "path"
n = 3
ids = "symbol"
`)
	require.NoError(t, err)
	g, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Keys())
}

func TestParse_Rejects(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key":     `capasity = 3`,
		"negative cap":    `capacity = -1`,
		"empty vertex":    `vertices = ["a", ""]`,
		"duplicate":       `vertices = ["a", "a"]`,
		"missing to":      "[[edges]]\nfrom = \"a\"",
		"negative weight": "[[edges]]\nfrom = \"a\"\nto = \"b\"\nweight = -2",
		"unknown shape":   "[shape]\nkind = \"torus\"",
		"unknown ids":     "[shape]\nkind = \"path\"\nn = 3\nids = \"roman\"",
		"inverted range":  "[shape]\nkind = \"path\"\nn = 3\nmin_weight = 5\nmax_weight = 2",
	} {
		_, err := config.Parse(doc)
		require.ErrorIs(t, err, config.ErrInvalidScenario, name)
	}

	_, err := config.Parse(`capacity = "many"`)
	require.Error(t, err)
}

func TestBuild_ShapeErrorsSurface(t *testing.T) {
	s, err := config.Parse("[shape]\nkind = \"random\"\nn = 5\np = 0.5")
	require.NoError(t, err)

	_, err = s.Build()
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	s, err = config.Parse("[shape]\nkind = \"cycle\"\nn = 2")
	require.NoError(t, err)
	_, err = s.Build()
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}
