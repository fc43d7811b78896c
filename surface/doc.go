// SPDX-License-Identifier: MIT

// Package surface turns inferred faces into a flat, renderable triangle buffer.
//
// Each face is either emitted as-is (StyleFlat, 3 vertices) or treated as a
// quadratic triangular Bezier patch (StyleCurved):
//
//	P(u,v,w) = u²·P1 + v²·P2 + w²·P3 + 2uv·E12 + 2vw·E23 + 2wu·E31,   u+v+w = 1
//
// where P1..P3 are the face corners and E12, E23, E31 the side control points
// produced by package connect. The barycentric domain is cut into Segments²
// small triangles (Segments = 12 by default → 144 triangles, 432 vertices).
//
// Colors:
//
//	ColorGradient  - u·C1 + v·C2 + w·C3 (corners reproduce their input color exactly)
//	ColorSolid     - Options.SolidColor everywhere
//	ColorReference - Options.ReferenceColor everywhere
//
// The only rendering-adjacent output is Buffer.Opaque, true when the caller's
// opacity is effectively 1, so a renderer can choose its draw order.
//
// Tessellation is pure: identical inputs give a bit-identical buffer.
package surface
