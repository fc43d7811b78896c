// SPDX-License-Identifier: MIT
// Package: capsphere/connect
//
// hull.go: exact convex hull by exhaustive plane tests.
//
// Algorithm:
//  1. Index nodes by ascending ID (stable for the pass).
//  2. For every triple i<j<k:
//     a = Pj−Pi, b = Pk−Pi, n = a × b; skip if |n| ≤ degenerateSine·|a|·|b|
//     (coincident or collinear points); normalize.
//  3. For every other m: d = n·(Pm−Pi).
//     d > ε counts as "above", d < −ε as "below", |d| ≤ ε is ignored.
//     Both above and below seen → not a face (early exit).
//  4. Emit the triple as a face and its three sides into a deduplicated edge set.
//
// Complexity:
//   • Time:  O(n³) triples × O(n) side checks = O(n⁴) point-plane tests.
//   • Space: O(F + E) for the output.

package connect

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/capsphere/core"
)

// Hull computes the exact convex hull of the node positions.
// Fewer than MinHullNodes nodes yield an empty graph; degenerate triples
// are skipped silently. Coplanar inputs may produce every coplanar triple
// as a face because zero distances never disqualify a candidate.
func Hull(nodes []core.Node, opts ...Option) Graph {
	cfg := newBuildConfig(opts...)
	n := len(nodes)
	if n < MinHullNodes {
		return Graph{}
	}

	pts := byID(nodes)
	var (
		faces []core.Face
		edges = make(map[core.EdgeKey]core.Edge)
	)

	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				if !isHullFace(pts, i, j, k, cfg.epsilon) {
					continue
				}
				faces = append(faces, newFace(pts[i], pts[j], pts[k], cfg.curve))
				addEdge(edges, pts[i], pts[j], cfg.curve)
				addEdge(edges, pts[j], pts[k], cfg.curve)
				addEdge(edges, pts[k], pts[i], cfg.curve)
			}
		}
	}

	return assemble(edges, faces)
}

// isHullFace reports whether every point other than i, j, k lies on one
// side of the plane through them (within eps).
func isHullFace(pts []core.Node, i, j, k int, eps float64) bool {
	origin := pts[i].Position
	a := r3.Sub(pts[j].Position, origin)
	b := r3.Sub(pts[k].Position, origin)
	normal := r3.Cross(a, b)
	length := r3.Norm(normal)
	if length <= degenerateSine*r3.Norm(a)*r3.Norm(b) {
		return false
	}
	normal = r3.Scale(1/length, normal)

	var above, below bool
	for m := range pts {
		if m == i || m == j || m == k {
			continue
		}
		d := r3.Dot(normal, r3.Sub(pts[m].Position, origin))
		switch {
		case d > eps:
			above = true
		case d < -eps:
			below = true
		}
		if above && below {
			return false
		}
	}

	return true
}

// addEdge inserts a—b into the set if absent.
func addEdge(set map[core.EdgeKey]core.Edge, a, b core.Node, c Curve) {
	key := core.NewEdgeKey(a.ID, b.ID)
	if _, ok := set[key]; ok {
		return
	}
	set[key] = newEdge(a, b, c)
}

// assemble flattens the edge set and sorts both outputs.
func assemble(set map[core.EdgeKey]core.Edge, faces []core.Face) Graph {
	edges := make([]core.Edge, 0, len(set))
	for _, e := range set {
		edges = append(edges, e)
	}
	core.SortEdges(edges)
	core.SortFaces(faces)

	return Graph{Edges: edges, Faces: faces}
}
