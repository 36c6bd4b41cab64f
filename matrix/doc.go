// SPDX-License-Identifier: MIT

// Package matrix provides the square integer adjacency matrix that backs
// every graph in this module, plus the closure routines that operate on it.
//
// The matrix package provides:
//
//   - Square: an n×n matrix of int with a capacity hint. Rows and columns are
//     appended together (Grow) and removed together (Drop), so the shape is
//     always square and always matches the owning graph's vertex count.
//   - TransitiveClosure: Warshall's reachability closure computed over a copy.
//
// Cell semantics are owned by the caller: 0 means "not adjacent", any other
// value is either a unit edge or an edge weight.
//
// Memory is O(n²); the owning graph enforces the vertex ceiling.
package matrix
