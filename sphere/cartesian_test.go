package sphere_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/capsphere/sphere"
)

// TestToCartesian_PoleIgnoresAzimuth verifies toCartesian(r, 0, θ) == (0, r, 0).
func TestToCartesian_PoleIgnoresAzimuth(t *testing.T) {
	for _, theta := range []float64{0, 0.3, math.Pi / 2, math.Pi, 5.9} {
		got := sphere.ToCartesian(2.5, 0, theta)
		assert.Equal(t, r3.Vec{X: 0, Y: 2.5, Z: 0}, got, "θ=%v", theta)
	}
}

// TestToCartesian_Axes checks the equator and the south pole.
func TestToCartesian_Axes(t *testing.T) {
	cases := []struct {
		name       string
		phi, theta float64
		want       r3.Vec
	}{
		{"PlusX", math.Pi / 2, 0, r3.Vec{X: 1}},
		{"PlusZ", math.Pi / 2, math.Pi / 2, r3.Vec{Z: 1}},
		{"MinusX", math.Pi / 2, math.Pi, r3.Vec{X: -1}},
		{"SouthPole", math.Pi, 0, r3.Vec{Y: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sphere.ToCartesian(1, tc.phi, tc.theta)
			assert.InDelta(t, tc.want.X, got.X, eps)
			assert.InDelta(t, tc.want.Y, got.Y, eps)
			assert.InDelta(t, tc.want.Z, got.Z, eps)
		})
	}
}

// TestToCartesian_Radius ensures |ToCartesian(r,φ,θ)| == r.
func TestToCartesian_Radius(t *testing.T) {
	for _, a := range sphere.Layout(40) {
		assert.InDelta(t, 3.0, r3.Norm(a.Point(3)), 1e-9)
	}
}

// TestGeometry_TipRadius covers the tip formula and negative magnitude clamping.
func TestGeometry_TipRadius(t *testing.T) {
	g := sphere.Geometry{CoreRadius: 5, BaseOffset: 0.5, MagnitudeScale: 0.25}
	assert.Equal(t, 5.5, g.TipRadius(0))
	assert.Equal(t, 6.5, g.TipRadius(4))
	assert.Equal(t, 5.5, g.TipRadius(-3), "negative magnitude clamps to 0")
	assert.Equal(t, 5.5, g.TipRadius(math.NaN()), "NaN magnitude clamps to 0")

	a := sphere.Angles{Inclination: 0}
	assert.Equal(t, r3.Vec{Y: 5}, sphere.SurfacePosition(a, g))
	assert.Equal(t, r3.Vec{Y: 6.5}, sphere.TipPosition(a, 4, g))
}
