// SPDX-License-Identifier: MIT

// Package config loads graphplan scenarios: TOML documents describing the
// vertices and edges of one graph, optionally seeded from a builder shape.
//
// A scenario is CLI input only. It is decoded, validated and turned into a
// core.WeightedGraph; nothing is written back.
//
//	capacity = 16
//	weighted = true
//	vertices = ["fetch", "compile", "test"]
//
//	[[edges]]
//	from = "fetch"
//	to = "compile"
//	weight = 3
//
//	[shape]
//	kind = "grid"
//	rows = 2
//	cols = 3
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidScenario is wrapped by every validation failure.
var ErrInvalidScenario = errors.New("config: invalid scenario")

// Scenario is the decoded form of a scenario file.
type Scenario struct {
	// Capacity is the initial vertex capacity hint; 0 selects core.DefaultCapacity.
	Capacity int `toml:"capacity"`
	// Weighted selects Prim for "mst" and keeps edge weights; otherwise
	// every edge is stored with weight 1 and "mst" builds a BFS tree.
	Weighted bool     `toml:"weighted"`
	Vertices []string `toml:"vertices"`
	Edges    []Edge   `toml:"edges"`
	Shape    *Shape   `toml:"shape"`
}

// Edge is one [[edges]] entry. Endpoints missing from Vertices are added in
// order of first mention.
type Edge struct {
	From          string `toml:"from"`
	To            string `toml:"to"`
	Weight        int    `toml:"weight"` // 0 means 1
	Bidirectional bool   `toml:"bidirectional"`
}

// Shape seeds the graph from a builder constructor before Vertices and Edges apply.
type Shape struct {
	Kind      string  `toml:"kind"` // path, cycle, star, wheel, complete, grid, random
	N         int     `toml:"n"`
	Rows      int     `toml:"rows"`
	Cols      int     `toml:"cols"`
	P         float64 `toml:"p"`
	Seed      int64   `toml:"seed"`
	MinWeight int     `toml:"min_weight"`
	MaxWeight int     `toml:"max_weight"`
	Directed  bool    `toml:"directed"`
	IDs       string  `toml:"ids"` // decimal (default), symbol, excel, alphanumeric, hex
}

// Load reads and validates the scenario at path. Unknown keys are rejected
// so that typos do not silently change the graph.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	s, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes and validates a scenario document.
func Parse(doc string) (*Scenario, error) {
	var s Scenario
	md, err := toml.Decode(doc, &s)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), ErrInvalidScenario)
	}
	if err = s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}
