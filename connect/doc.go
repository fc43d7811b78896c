// SPDX-License-Identifier: MIT

// Package connect builds a connectivity graph over capability nodes and infers
// the triangular faces of the surface spanned between them.
//
// Two interchangeable algorithms, selected by Mode:
//
//	ModeHull    - exact convex hull by brute force. Every triple (i,j,k) whose
//	              plane has all other nodes on one side (within ε) is a face;
//	              the face sides form the edge set. Requires n ≥ 4.
//	ModeNearest - each node links to its k nearest neighbors (k clamped to
//	              [1, n-1]); adjacency is made symmetric; every edge A—B with a
//	              common neighbor C closes a face {A,B,C}.
//	ModeNone    - no connectivity.
//
// Why brute force?
//
//	Capability counts stay in the tens. An O(n⁴) exact test (O(n³) triples ×
//	O(n) side checks) is simple, has no incremental state to corrupt, and
//	degrades gracefully on coplanar or coincident input.
//
// Every edge and face side also carries a quadratic-Bezier control point:
// the side's midpoint scaled radially by the Curve factor (0.7 inward,
// 1.0 straight, 1.3 outward). See ControlPoint.
//
// Determinism:
//   - Nodes are indexed by ascending ID for the duration of one pass, so the
//     result does not depend on input order.
//   - Edges are sorted by EdgeKey, faces by FaceKey.
//
// Usage:
//
//	g := connect.Build(nodes, connect.ModeNearest,
//	    connect.WithNeighbors(4),
//	    connect.WithCurve(connect.CurveOutward),
//	)
//	for _, f := range g.Faces { ... }
package connect
