// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newShowCmd(opts *options) *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the vertices and edges of the scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := loadScenario(cmd.Context(), opts)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			t := l.topology()

			printTitle(w, "Graph")
			printKeyValue(w, "vertices", StyleNumber.Render(strconv.Itoa(t.Size())))
			printKeyValue(w, "edges", StyleNumber.Render(strconv.Itoa(len(t.Edges()))))
			printKeyValue(w, "keys", renderList(t.Keys()))
			for _, e := range t.Edges() {
				fmt.Fprintln(w, "  "+e.String())
			}
			if trace {
				fmt.Fprintln(w, StyleDim.Render(t.String()))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "also print the adjacency matrix and index")

	return cmd
}

func newTopoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "topo",
		Short: "Print the vertices in topological order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := loadScenario(cmd.Context(), opts)
			if err != nil {
				return err
			}
			order, err := l.topology().KeysInTopologicalOrder()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printTitle(w, "Topological order")
			fmt.Fprintln(w, renderKeys(order))
			return nil
		},
	}
}

func newMSTCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mst",
		Short: "Print a minimum spanning tree (Prim when weighted, BFS tree otherwise)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := loadScenario(cmd.Context(), opts)
			if err != nil {
				return err
			}
			tree, err := l.topology().SpanningTree()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printTitle(w, "Spanning tree")
			total := 0
			for _, e := range tree.Edges() {
				total += e.Weight
				fmt.Fprintln(w, "  "+e.String())
			}
			printKeyValue(w, "total", StyleNumber.Render(strconv.Itoa(total)))
			return nil
		},
	}
}

func newPathCmd(opts *options) *cobra.Command {
	var shortest bool
	cmd := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Find a path between two vertices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadScenario(cmd.Context(), opts)
			if err != nil {
				return err
			}
			find := l.topology().FindPath
			if shortest {
				find = l.topology().FindTheShortestPath
			}
			path, err := find(args[0], args[1])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(path) == 0 {
				printFailure(w, "no path from %s to %s", args[0], args[1])
				return nil
			}
			printSuccess(w, "%s (%d hops)", renderKeys(path), len(path)-1)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&shortest, "shortest", "s", false, "use breadth-first search for the fewest hops")

	return cmd
}

func newConnectedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "connected FROM TO",
		Short: "Report whether TO is reachable from FROM",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadScenario(cmd.Context(), opts)
			if err != nil {
				return err
			}
			ok, err := l.topology().AreConnected(args[0], args[1])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if ok {
				printSuccess(w, "%s reaches %s", args[0], args[1])
			} else {
				printFailure(w, "%s does not reach %s", args[0], args[1])
			}
			return nil
		},
	}
}

func newReachCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reach KEY",
		Short: "List every vertex reachable from KEY",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadScenario(cmd.Context(), opts)
			if err != nil {
				return err
			}
			keys, err := l.topology().ReachableFrom(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printTitle(w, "Reachable from "+args[0])
			fmt.Fprintln(w, renderList(keys))
			return nil
		},
	}
}

func newClosureCmd(opts *options) *cobra.Command {
	var asMatrix bool
	cmd := &cobra.Command{
		Use:   "closure",
		Short: "Print the connectivity table, or the transitive closure matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := loadScenario(cmd.Context(), opts)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asMatrix {
				printTitle(w, "Transitive closure")
				printKeyValue(w, "order", renderList(l.graph.Keys()))
				fmt.Fprint(w, l.graph.Closure().String())
				return nil
			}

			printTitle(w, "Connectivity")
			keys := l.topology().Keys()
			for i, row := range l.topology().ConnectivityTable() {
				printKeyValue(w, keys[i], renderList(row))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&asMatrix, "matrix", "m", false, "print the Warshall closure as a 0/1 matrix")

	return cmd
}
