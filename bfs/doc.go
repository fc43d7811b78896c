// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Adjacency, returning
// hop distances, parent links and visit order, plus connected components.
//
// Within capsphere it answers questions about a built graph: the route and
// hop count between two capabilities (Result.PathTo), the neighborhood of a
// capability (WithMaxDepth) and whether the graph is connected (Components).
// Hull graphs always are; k-NN graphs over clustered nodes may split into
// several islands, and a filter over face-bearing edges splits them further
// into surface patches.
//
// Determinism
//
//	core.Adjacency.Neighbors returns neighbors sorted ascending and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//	Components are ordered by their smallest vertex ID.
//
// Options
//
//	WithFilterNeighbor skips individual edges and WithMaxDepth bounds the
//	search. A negative depth is reported as ErrOptionViolation.
//
// Complexity: O(V + E) time and memory.
package bfs
