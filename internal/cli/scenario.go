// SPDX-License-Identifier: MIT
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/usun/usunplanning/builder"
	"github.com/usun/usunplanning/core"
	"github.com/usun/usunplanning/internal/config"
)

// loaded is a built scenario plus the variant its queries run against.
type loaded struct {
	scenario *config.Scenario
	graph    *builder.Graph
}

// topology returns the weighted graph for weighted scenarios and the plain
// graph otherwise, so SpanningTree picks Prim or the BFS tree.
func (l *loaded) topology() core.Topology[string, string] {
	if l.scenario.Weighted {
		return l.graph
	}
	return l.graph.Graph
}

func loadScenario(ctx context.Context, opts *options) (*loaded, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := loggerFromContext(ctx)
	start := time.Now()

	s, err := config.Load(opts.file)
	if err != nil {
		return nil, err
	}
	g, err := s.Build(core.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.file, err)
	}
	logger.Debug("scenario loaded",
		"file", opts.file,
		"vertices", g.Size(),
		"edges", len(g.Edges()),
		"weighted", s.Weighted,
		"took", time.Since(start).Round(time.Microsecond))

	return &loaded{scenario: s, graph: g}, nil
}
