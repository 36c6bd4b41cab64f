// SPDX-License-Identifier: MIT

// Package cli implements the graphplan command-line interface.
//
// Every command loads one scenario file (see internal/config), builds the
// graph and runs a single query against it:
//   - show: vertices, edges and the adjacency trace
//   - topo: topological order
//   - mst: minimum spanning tree (Prim when the scenario is weighted)
//   - path: depth-first or breadth-first path between two keys
//   - connected: transitive reachability between two keys
//   - reach: every key reachable from one key
//   - closure: connectivity table or the Warshall closure matrix
//
// # Logging
//
// --verbose (-v) switches the logger to debug level, which also surfaces the
// graph engine's own debug lines. The logger travels in the command context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a timestamped logger writing to w at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "graphplan",
	})
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a copy of ctx carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
