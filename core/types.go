// SPDX-License-Identifier: MIT
// Package: capsphere/core
//
// types.go: Node, Edge, Face and their canonical keys.

package core

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"
)

// Color is a linear RGB triple with components in [0,1].
type Color = colorful.Color

// Node is one capability's tip position, color and magnitude.
type Node struct {
	// ID uniquely identifies this node within one pass.
	ID string `json:"id" yaml:"id"`

	// Position is the node's 3D position (normally its tip).
	Position r3.Vec `json:"position" yaml:"position"`

	// Color is the node's own color, used for gradients.
	Color Color `json:"color" yaml:"color"`

	// Magnitude is the node's scalar score, ≥ 0.
	Magnitude float64 `json:"magnitude" yaml:"magnitude"`
}

// EdgeKey identifies an undirected edge. A < B always holds for keys built
// with NewEdgeKey.
type EdgeKey struct {
	A, B string
}

// NewEdgeKey canonicalizes (x,y) and (y,x) into the same key.
// Complexity: O(1).
func NewEdgeKey(x, y string) EdgeKey {
	if y < x {
		x, y = y, x
	}

	return EdgeKey{A: x, B: y}
}

// Less orders keys lexicographically by (A, B).
func (k EdgeKey) Less(o EdgeKey) bool {
	if k.A != o.A {
		return k.A < o.A
	}

	return k.B < o.B
}

// Edge is a rendered connection between two distinct nodes.
type Edge struct {
	A            string `json:"a" yaml:"a"`
	B            string `json:"b" yaml:"b"`
	Start        r3.Vec `json:"start" yaml:"start"`
	End          r3.Vec `json:"end" yaml:"end"`
	ControlPoint r3.Vec `json:"control_point" yaml:"control_point"`
	Color        Color  `json:"color" yaml:"color"`
}

// Key returns the canonical key of e.
func (e Edge) Key() EdgeKey { return NewEdgeKey(e.A, e.B) }

// FaceKey identifies an unordered triangle; entries are sorted ascending.
type FaceKey [3]string

// NewFaceKey sorts (a,b,c) into canonical order.
func NewFaceKey(a, b, c string) FaceKey {
	k := FaceKey{a, b, c}
	// 3-element sorting network
	if k[1] < k[0] {
		k[0], k[1] = k[1], k[0]
	}
	if k[2] < k[1] {
		k[1], k[2] = k[2], k[1]
	}
	if k[1] < k[0] {
		k[0], k[1] = k[1], k[0]
	}

	return k
}

// Less orders face keys lexicographically.
func (k FaceKey) Less(o FaceKey) bool {
	for i := 0; i < 3; i++ {
		if k[i] != o[i] {
			return k[i] < o[i]
		}
	}

	return false
}

// Edges returns the three canonical sides of the triangle.
func (k FaceKey) Edges() [3]EdgeKey {
	return [3]EdgeKey{
		NewEdgeKey(k[0], k[1]),
		NewEdgeKey(k[1], k[2]),
		NewEdgeKey(k[2], k[0]),
	}
}

// Face is one inferred triangular patch.
//
// Corners[i] and Colors[i] belong to NodeIDs[i]. ControlPoints are ordered
// by side: [0] = corner0–corner1, [1] = corner1–corner2, [2] = corner2–corner0.
type Face struct {
	NodeIDs       FaceKey   `json:"node_ids" yaml:"node_ids"`
	Corners       [3]r3.Vec `json:"corners" yaml:"corners"`
	ControlPoints [3]r3.Vec `json:"control_points" yaml:"control_points"`
	Colors        [3]Color  `json:"colors" yaml:"colors"`
}

// Edges returns the canonical keys of the face's three sides.
func (f Face) Edges() [3]EdgeKey { return f.NodeIDs.Edges() }

// SortEdges orders edges by canonical key, in place.
// Complexity: O(E log E).
func SortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Key().Less(edges[j].Key())
	})
}

// SortFaces orders faces by key, in place.
// Complexity: O(F log F).
func SortFaces(faces []Face) {
	sort.Slice(faces, func(i, j int) bool {
		return faces[i].NodeIDs.Less(faces[j].NodeIDs)
	})
}

// Blend returns the RGB midpoint of a and b.
func Blend(a, b Color) Color {
	return a.BlendRgb(b, 0.5)
}
