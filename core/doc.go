// SPDX-License-Identifier: MIT

// Package core provides an in-memory graph stored as an adjacency matrix,
// together with the ordering, reachability, path and spanning-tree
// algorithms that run over it.
//
// Two variants share one storage layout:
//
//   - Graph[K,V]: unweighted. AddEdge stores 1 in the matrix cell.
//   - WeightedGraph[K,V]: embeds Graph; AddWeightedEdge stores the edge weight.
//
// Both satisfy Topology[K,V], the read-only capability interface.
//
// Storage:
//
//	vertices []Vertex[K,V]   arena in position (insertion) order
//	index    map[K]int       key → position
//	adj      *matrix.Square  adj[i][j] != 0 ⇔ edge i→j
//
// The three always agree. RemoveVertex goes through a single compaction
// routine that drops the matrix row and column and renumbers every later
// vertex.
//
// Edge direction:
//
//	AddEdge(a, b, false)  // a→b only
//	AddEdge(a, b, true)   // a→b and b→a
//
// Algorithms:
//
//	AreConnected            Warshall closure over a copy, recomputed per call   O(V³)
//	KeysInTopologicalOrder  repeated sink removal on a clone                    O(V³)
//	ConnectivityTable       iterative DFS from every vertex                     O(V³)
//	FindPath                iterative DFS backward from the destination         O(V²)
//	FindTheShortestPath     BFS with recorded predecessors                      O(V²)
//	Graph.MinSpanningTree   BFS tree rooted at position 0                       O(V²)
//	WeightedGraph.MinSpanningTree  Prim from position 0 over an EdgeQueue       O(V² log V)
//
// Traversals keep their visited set local to the call; vertices carry no
// traversal state, so read-only queries never leave marks behind, including
// when they fail. The graph itself has no locks: callers serialize mutation.
//
// Keys are compared with ==. A nil key (nil pointer, channel or interface)
// is rejected with ErrNilKey; other zero values such as 0 or "" are ordinary keys.
//
// Limits: at most MaxVertices (23170) vertices, since the matrix holds V² cells.
package core
