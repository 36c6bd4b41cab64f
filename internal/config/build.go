// SPDX-License-Identifier: MIT
package config

import (
	"fmt"

	"github.com/usun/usunplanning/builder"
	"github.com/usun/usunplanning/core"
)

var shapeKinds = map[string]func(sh *Shape) builder.Constructor{
	"path":     func(sh *Shape) builder.Constructor { return builder.Path(sh.N) },
	"cycle":    func(sh *Shape) builder.Constructor { return builder.Cycle(sh.N) },
	"star":     func(sh *Shape) builder.Constructor { return builder.Star(sh.N) },
	"wheel":    func(sh *Shape) builder.Constructor { return builder.Wheel(sh.N) },
	"complete": func(sh *Shape) builder.Constructor { return builder.Complete(sh.N) },
	"grid":     func(sh *Shape) builder.Constructor { return builder.Grid(sh.Rows, sh.Cols) },
	"random":   func(sh *Shape) builder.Constructor { return builder.RandomSparse(sh.N, sh.P) },
}

var idSchemes = map[string]builder.IDFn{
	"":             builder.DefaultIDFn,
	"decimal":      builder.DefaultIDFn,
	"symbol":       builder.SymbolIDFn,
	"excel":        builder.ExcelColumnIDFn,
	"alphanumeric": builder.AlphanumericIDFn,
	"hex":          builder.HexIDFn,
}

// Build materializes the scenario: the shape first, then Vertices in order,
// then Edges. Later edges overwrite earlier cells.
func (s *Scenario) Build(opts ...core.GraphOption) (*builder.Graph, error) {
	capacity := s.Capacity
	if capacity == 0 {
		capacity = core.DefaultCapacity
	}

	var cons []builder.Constructor
	var bopts []builder.BuilderOption
	if sh := s.Shape; sh != nil {
		cons = append(cons, shapeKinds[sh.Kind](sh))
		bopts = sh.builderOptions(s.Weighted)
	}
	g, err := builder.BuildGraph(capacity, opts, bopts, cons...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	for _, v := range s.Vertices {
		if err = ensure(g, v); err != nil {
			return nil, err
		}
	}
	for _, e := range s.Edges {
		if err = ensure(g, e.From); err != nil {
			return nil, err
		}
		if err = ensure(g, e.To); err != nil {
			return nil, err
		}
		w := e.Weight
		if w == 0 || !s.Weighted {
			w = 1
		}
		ce := core.Edge[string]{From: e.From, To: e.To, Bidirectional: e.Bidirectional, Weight: w}
		if err = g.AddWeightedEdge(ce); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	return g, nil
}

func (sh *Shape) builderOptions(weighted bool) []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithIDScheme(idSchemes[sh.IDs])}
	if sh.Seed != 0 {
		opts = append(opts, builder.WithSeed(sh.Seed))
	}
	if sh.Directed {
		opts = append(opts, builder.WithDirected())
	}
	if weighted && sh.MaxWeight > 0 {
		opts = append(opts, builder.WithWeightFn(builder.UniformWeightFn(max(sh.MinWeight, 1), sh.MaxWeight)))
	}

	return opts
}

func ensure(g *builder.Graph, key string) error {
	if g.ContainsVertexKey(key) {
		return nil
	}
	if err := g.AddVertexKey(key); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}
