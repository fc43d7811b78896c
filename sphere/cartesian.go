// SPDX-License-Identifier: MIT
// Package: capsphere/sphere
//
// cartesian.go: spherical → Cartesian mapping and bar end-points.

package sphere

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ToCartesian maps (r, φ, θ) to (r·sinφ·cosθ, r·cosφ, r·sinφ·sinθ).
// The polar axis is +Y, so φ=0 yields (0, r, 0) for any θ.
// Complexity: O(1).
func ToCartesian(radius, inclination, azimuth float64) r3.Vec {
	sinPhi := math.Sin(inclination)

	return r3.Vec{
		X: radius * sinPhi * math.Cos(azimuth),
		Y: radius * math.Cos(inclination),
		Z: radius * sinPhi * math.Sin(azimuth),
	}
}

// Point returns the position of a at radius r.
func (a Angles) Point(radius float64) r3.Vec {
	return ToCartesian(radius, a.Inclination, a.Azimuth)
}

// TipRadius is CoreRadius + BaseOffset + magnitude·MagnitudeScale.
// Negative magnitudes are treated as zero.
func (g Geometry) TipRadius(magnitude float64) float64 {
	if magnitude < 0 || math.IsNaN(magnitude) {
		magnitude = 0
	}

	return g.CoreRadius + g.BaseOffset + magnitude*g.MagnitudeScale
}

// SurfacePosition is where a node's bar leaves the core sphere.
func SurfacePosition(a Angles, g Geometry) r3.Vec {
	return a.Point(g.CoreRadius)
}

// TipPosition is the outer end of a node's bar; graphs are built over tips.
func TipPosition(a Angles, magnitude float64, g Geometry) r3.Vec {
	return a.Point(g.TipRadius(magnitude))
}
