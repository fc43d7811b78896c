// SPDX-License-Identifier: MIT
// Package: capsphere/connect
//
// control.go: the edge control-point rule and Edge/Face assembly.

package connect

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/capsphere/core"
)

// ControlPoint returns the quadratic-Bezier control point for side a—b:
// the midpoint of a and b scaled radially (about the origin) by c.Factor().
//
// CurveStraight leaves the midpoint unchanged, which makes the Bezier
// degenerate to the straight segment.
// Complexity: O(1).
func ControlPoint(a, b r3.Vec, c Curve) r3.Vec {
	mid := r3.Scale(0.5, r3.Add(a, b))

	return r3.Scale(c.Factor(), mid)
}

// newEdge assembles the canonical Edge between two nodes (A < B).
func newEdge(a, b core.Node, c Curve) core.Edge {
	if b.ID < a.ID {
		a, b = b, a
	}

	return core.Edge{
		A:            a.ID,
		B:            b.ID,
		Start:        a.Position,
		End:          b.Position,
		ControlPoint: ControlPoint(a.Position, b.Position, c),
		Color:        core.Blend(a.Color, b.Color),
	}
}

// newFace assembles a Face from three nodes already in ascending ID order.
func newFace(n0, n1, n2 core.Node, c Curve) core.Face {
	p0, p1, p2 := n0.Position, n1.Position, n2.Position

	return core.Face{
		NodeIDs: core.FaceKey{n0.ID, n1.ID, n2.ID},
		Corners: [3]r3.Vec{p0, p1, p2},
		ControlPoints: [3]r3.Vec{
			ControlPoint(p0, p1, c),
			ControlPoint(p1, p2, c),
			ControlPoint(p2, p0, c),
		},
		Colors: [3]core.Color{n0.Color, n1.Color, n2.Color},
	}
}
