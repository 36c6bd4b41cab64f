// SPDX-License-Identifier: MIT
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()

	assert.Equal(t, "7", cfg.idFn(7))
	assert.Nil(t, cfg.rng)
	assert.Equal(t, DefaultEdgeWeight, cfg.weightFn(nil))
	assert.False(t, cfg.directed)
	assert.Equal(t, "L", cfg.leftPrefix)
	assert.Equal(t, "R", cfg.rightPrefix)
}

func TestIDSchemeOptions_LastWins(t *testing.T) {
	assert.Equal(t, "A", newBuilderConfig(WithSymbolIDs()).idFn(0))
	assert.Equal(t, "AB", newBuilderConfig(WithExcelColumnIDs()).idFn(27))
	assert.Equal(t, "z", newBuilderConfig(WithAlphanumericIDs()).idFn(35))
	assert.Equal(t, "ff", newBuilderConfig(WithHexIDs()).idFn(255))
	assert.Equal(t, "v3", newBuilderConfig(WithSymbNumb("v")).idFn(3))
	assert.Equal(t, "3", newBuilderConfig(WithSymbolIDs(), WithDefaultIDs()).idFn(3))
	assert.Equal(t, "5", newBuilderConfig(WithIDScheme(nil)).idFn(5), "nil scheme is ignored")
}

func TestRNGOptions(t *testing.T) {
	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(1))
	assert.Same(t, r, newBuilderConfig(WithRand(r)).rng)
	assert.Same(t, r, newBuilderConfig(WithRand(r), WithRand(nil)).rng)
}

func TestDirectedAndPrefixOptions(t *testing.T) {
	cfg := newBuilderConfig(WithDirected(), WithPartitionPrefix("src", "dst"))
	assert.True(t, cfg.directed)
	assert.Equal(t, "src", cfg.leftPrefix)
	assert.Equal(t, "dst", cfg.rightPrefix)

	assert.Panics(t, func() { WithPartitionPrefix("x", "x") })
	assert.Panics(t, func() { WithPartitionPrefix("", "R") })
	assert.Panics(t, func() { WithWeightFn(nil) })
}

func TestNilOptionIsSkipped(t *testing.T) {
	cfg := newBuilderConfig(nil, WithDirected())
	assert.True(t, cfg.directed)
}
