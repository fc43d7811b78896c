// SPDX-License-Identifier: MIT

// Package core defines the data model shared by every stage of the capsphere
// pipeline: Node, Edge, Face, their canonical keys, and a hash-set Adjacency.
//
// Lifecycle:
//
//   - Nodes are supplied by the caller (see package constellation).
//   - Edges and Faces are ephemeral: recomputed from scratch whenever the node
//     set, connection mode or connection parameters change. Never mutated in place.
//
// Identity:
//
//	EdgeKey{A,B}  - unordered pair, canonicalized so A < B.
//	FaceKey[3]    - unordered triple, sorted ascending.
//
// Node IDs must be unique within one pass. This is a precondition, not a
// runtime check: duplicate IDs yield undefined (but non-panicking) results.
//
// Determinism:
//
//	Every collection-returning helper (Adjacency.Neighbors, Adjacency.Edges,
//	SortEdges, SortFaces) yields a sorted result, so downstream output is
//	stable across runs regardless of Go's randomized map iteration.
//
// Quick ASCII example (a tetrahedron seen from above):
//
//	      A
//	     /|\
//	    / D \
//	   /_/ \_\
//	  B───────C
//
// has 6 EdgeKeys {AB AC AD BC BD CD} and 4 FaceKeys {ABC ABD ACD BCD}.
package core
