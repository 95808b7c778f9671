// SPDX-License-Identifier: MIT

// Package skeleton provides the 1-skeleton of a simplicial complex as a
// small undirected graph, plus breadth-first search and connected components
// over it.
//
// What
//
//   - Graph: simple undirected graph with string vertex IDs. No weights, no
//     self-loops, no parallel edges (adding an existing edge is a no-op).
//   - BFS: visit order, depth and parent links from a start vertex, with
//     hooks (OnVisit), a depth limit and context cancellation.
//   - Components: vertex sets of the connected components, each sorted, the
//     list ordered by its smallest vertex.
//
// Why
//
//	The vertex and edge sets are what a renderer needs to draw the complex.
//	The number of connected components equals the Betti number β₀, which the
//	homology tests use as an independent cross-check.
//
// Determinism
//
//	Vertices, Edges and Neighbors are sorted lexicographically, and BFS
//	enqueues neighbors in that order, so every traversal is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - BFS / Components: Time O(V + E·log E), Memory O(V).
//
// Usage
//
//	g := skeleton.NewGraph()
//	_ = g.AddEdge("a", "b")
//	comps, _ := skeleton.Components(g)
package skeleton
