// SPDX-License-Identifier: MIT
// Package: capsphere/connect
//
// knn.go: k-nearest-neighbor connectivity with inferred face closure.
//
// Algorithm:
//  1. Index nodes by ascending ID; clamp k into [1, n−1].
//  2. For each node, rank all others by squared Euclidean distance
//     (ties → smaller ID first) and connect the first k.
//     Adjacency is symmetric: A picking B yields A—B even if B never picks A.
//  3. For each edge A—B and each C ∈ adj(A) ∩ adj(B): face {A,B,C}, deduplicated.
//
// A connected but unfilled result (edges, zero faces) is valid and preserved.
//
// Complexity:
//   • Ranking:  O(n² log n).
//   • Closure:  O(E · min-degree) set lookups.

package connect

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/capsphere/core"
)

// candidate is one ranked neighbor.
type candidate struct {
	idx  int
	dist float64
}

// Nearest connects each node to its k nearest others and closes triangles.
// Coincident nodes are simply zero-distance neighbors.
func Nearest(nodes []core.Node, opts ...Option) Graph {
	cfg := newBuildConfig(opts...)
	n := len(nodes)
	k := clampNeighbors(cfg.neighbors, n)
	if k == 0 {
		return Graph{}
	}

	pts := byID(nodes)
	index := make(map[string]int, n)
	for i, p := range pts {
		index[p.ID] = i
	}

	adj := core.NewAdjacency(n)
	ranked := make([]candidate, 0, n-1)
	for i := range pts {
		ranked = ranked[:0]
		for j := range pts {
			if j == i {
				continue
			}
			ranked = append(ranked, candidate{idx: j, dist: r3.Norm2(r3.Sub(pts[j].Position, pts[i].Position))})
		}
		// pts is ID-ordered, so idx order is ID order.
		sort.Slice(ranked, func(a, b int) bool {
			if ranked[a].dist != ranked[b].dist {
				return ranked[a].dist < ranked[b].dist
			}
			return ranked[a].idx < ranked[b].idx
		})
		for _, c := range ranked[:k] {
			adj.Connect(pts[i].ID, pts[c.idx].ID)
		}
	}

	keys := adj.Edges()
	edges := make(map[core.EdgeKey]core.Edge, len(keys))
	seen := make(map[core.FaceKey]struct{})
	var faces []core.Face
	for _, key := range keys {
		edges[key] = newEdge(pts[index[key.A]], pts[index[key.B]], cfg.curve)
		for _, c := range adj.Common(key.A, key.B) {
			fk := core.NewFaceKey(key.A, key.B, c)
			if _, dup := seen[fk]; dup {
				continue
			}
			seen[fk] = struct{}{}
			faces = append(faces, newFace(pts[index[fk[0]]], pts[index[fk[1]]], pts[index[fk[2]]], cfg.curve))
		}
	}

	return assemble(edges, faces)
}
