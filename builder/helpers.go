// SPDX-License-Identifier: MIT
// Package: usunplanning/builder
//
// helpers.go: vertex and edge emission shared by the constructors.

package builder

import (
	"fmt"

	"github.com/usun/usunplanning/core"
)

// ensureVertex adds id unless it is already present.
func ensureVertex(g *Graph, method, id string) error {
	if g.ContainsVertexKey(id) {
		return nil
	}
	if err := g.AddVertexKey(id); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
	}

	return nil
}

// addVertices ensures cfg.idFn(0..n-1) exist and returns those IDs in order.
func addVertices(g *Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := ensureVertex(g, method, ids[i]); err != nil {
			return nil, err
		}
	}

	return ids, nil
}

// connect draws one weight and adds u→v, plus v→u unless cfg.directed.
func connect(g *Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if w < 1 {
		return fmt.Errorf("%s: weight %d for %s→%s: %w", method, w, u, v, ErrOptionViolation)
	}
	e := core.Edge[string]{From: u, To: v, Bidirectional: !cfg.directed, Weight: w}
	if err := g.AddWeightedEdge(e); err != nil {
		return fmt.Errorf("%s: AddEdge(%s): %w", method, e, err)
	}

	return nil
}

// gridVertexID is the fixed "r,c" key scheme of Grid.
func gridVertexID(r, c int) string {
	return fmt.Sprintf("%d,%d", r, c)
}

// tooFew formats the shared size error.
func tooFew(method string, got, min int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
}
