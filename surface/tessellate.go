// SPDX-License-Identifier: MIT
// Package: capsphere/surface
//
// tessellate.go: flat and curved face tessellation.
//
// Grid:
//   • Lattice points (i,j) with i,j ≥ 0, i+j ≤ n; u=(n−i−j)/n, v=i/n, w=j/n.
//   • "Up" triangle   (i,j) (i+1,j) (i,j+1)        for every i+j ≤ n−1.
//   • "Down" triangle (i+1,j) (i+1,j+1) (i,j+1)    when i+j ≤ n−2.
//   • n(n+1)/2 up + n(n−1)/2 down = n² triangles.
//
// Complexity: O(F · n²) time and output size.

package surface

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/capsphere/core"
)

// Tessellate emits all faces, in order, into one buffer.
func Tessellate(faces []core.Face, o Options) Buffer {
	per := ExpectedVertices(o.Style, o.segments())
	out := Buffer{
		Positions: make([]float32, 0, 3*per*len(faces)),
		Colors:    make([]float32, 0, 3*per*len(faces)),
		Opaque:    IsOpaque(o.Opacity),
	}
	for _, f := range faces {
		writeFace(&out, f, o)
	}

	return out
}

// TessellateFace emits a single face.
func TessellateFace(f core.Face, o Options) Buffer {
	return Tessellate([]core.Face{f}, o)
}

func writeFace(out *Buffer, f core.Face, o Options) {
	if o.Style == StyleFlat {
		for c := 0; c < 3; c++ {
			out.push(f.Corners[c], cornerColor(f, c, o))
		}
		return
	}

	n := o.segments()
	for i := 0; i < n; i++ {
		for j := 0; j < n-i; j++ {
			out.vertex(f, o, n, i, j)
			out.vertex(f, o, n, i+1, j)
			out.vertex(f, o, n, i, j+1)
			if i+j+2 <= n {
				out.vertex(f, o, n, i+1, j)
				out.vertex(f, o, n, i+1, j+1)
				out.vertex(f, o, n, i, j+1)
			}
		}
	}
}

// vertex evaluates lattice point (i,j) of an n-segment patch and appends it.
func (b *Buffer) vertex(f core.Face, o Options, n, i, j int) {
	fn := float64(n)
	u := float64(n-i-j) / fn
	v := float64(i) / fn
	w := float64(j) / fn

	b.push(EvalPatch(f, u, v, w), patchColor(f, o, u, v, w))
}

func (b *Buffer) push(p r3.Vec, c core.Color) {
	b.Positions = append(b.Positions, float32(p.X), float32(p.Y), float32(p.Z))
	b.Colors = append(b.Colors, float32(c.R), float32(c.G), float32(c.B))
}

// EvalPatch evaluates the quadratic triangular Bezier patch of f at (u,v,w).
// At a corner (e.g. u=1) it returns that corner exactly.
func EvalPatch(f core.Face, u, v, w float64) r3.Vec {
	p1, p2, p3 := f.Corners[0], f.Corners[1], f.Corners[2]
	e12, e23, e31 := f.ControlPoints[0], f.ControlPoints[1], f.ControlPoints[2]

	p := r3.Scale(u*u, p1)
	p = r3.Add(p, r3.Scale(v*v, p2))
	p = r3.Add(p, r3.Scale(w*w, p3))
	p = r3.Add(p, r3.Scale(2*u*v, e12))
	p = r3.Add(p, r3.Scale(2*v*w, e23))
	p = r3.Add(p, r3.Scale(2*w*u, e31))

	return p
}

func cornerColor(f core.Face, corner int, o Options) core.Color {
	switch o.ColorMode {
	case ColorSolid:
		return o.SolidColor
	case ColorReference:
		return o.ReferenceColor
	default:
		return f.Colors[corner]
	}
}

func patchColor(f core.Face, o Options, u, v, w float64) core.Color {
	switch o.ColorMode {
	case ColorSolid:
		return o.SolidColor
	case ColorReference:
		return o.ReferenceColor
	}
	c1, c2, c3 := f.Colors[0], f.Colors[1], f.Colors[2]

	return core.Color{
		R: u*c1.R + v*c2.R + w*c3.R,
		G: u*c1.G + v*c2.G + w*c3.G,
		B: u*c1.B + v*c2.B + w*c3.B,
	}
}
