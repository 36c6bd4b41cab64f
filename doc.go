// Package usunplanning is an in-memory graph engine for planning problems:
// dependency ordering, reachability and cheapest connection of a set of tasks
// or sites, all backed by a square adjacency matrix.
//
// What is inside:
//
//	core/     Graph and WeightedGraph over a generic key type: vertex and edge
//	          mutation, Warshall reachability, topological sort, depth-first
//	          and breadth-first paths, connectivity table, BFS spanning tree,
//	          Prim's minimum spanning tree and the EdgeQueue it relies on
//	matrix/   Square, the growable int matrix, and TransitiveClosure
//	pqueue/   HeapArray, a generic array-backed binary max-heap with
//	          positional removal
//	builder/  canonical topologies (path, cycle, star, wheel, complete,
//	          bipartite, grid, random) for tests, benchmarks and demos
//
// Commands:
//
//	cmd/graphplan   query a TOML scenario from the shell (topo, mst, path,
//	                connected, reach, closure, show)
//
// Quick start:
//
//	g, _ := core.NewWeightedGraph[string, string](core.DefaultCapacity)
//	_ = g.AddVertexKey("A")
//	_ = g.AddVertexKey("B")
//	_ = g.AddWeightedEdge(core.Edge[string]{From: "A", To: "B", Bidirectional: true, Weight: 3})
//	tree, _ := g.MinSpanningTree()
//	fmt.Println(tree.Edges()) // [A<->B=3]
//
// Graphs are not safe for concurrent mutation. Read-only queries may run
// concurrently on a graph nobody is mutating.
package usunplanning
