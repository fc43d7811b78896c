// SPDX-License-Identifier: MIT
// Package: capsphere/sphere
//
// types.go: angle pairs, geometry knobs and shared constants.

package sphere

import "math"

// Angles is one point on the unit sphere.
//
// Inclination is measured from the +Y pole, in [0, π].
// Azimuth is measured around the Y axis starting at +X, in [0, 2π).
type Angles struct {
	Inclination float64 `json:"inclination" yaml:"inclination"`
	Azimuth     float64 `json:"azimuth" yaml:"azimuth"`
}

// Geometry holds the radii used to place a node's bar on the sphere.
//
//   - CoreRadius: radius of the core sphere (where bars originate).
//   - BaseOffset: constant lift applied to every tip.
//   - MagnitudeScale: radius gained per unit of magnitude.
type Geometry struct {
	CoreRadius     float64 `json:"core_radius" yaml:"core_radius" mapstructure:"core_radius"`
	BaseOffset     float64 `json:"base_offset" yaml:"base_offset" mapstructure:"base_offset"`
	MagnitudeScale float64 `json:"magnitude_scale" yaml:"magnitude_scale" mapstructure:"magnitude_scale"`
}

// Deterministic defaults (named, no magic numbers).
const (
	DefaultCoreRadius     = 5.0
	DefaultBaseOffset     = 0.5
	DefaultMagnitudeScale = 0.5
)

// DefaultGeometry returns the geometry used when callers supply none.
func DefaultGeometry() Geometry {
	return Geometry{
		CoreRadius:     DefaultCoreRadius,
		BaseOffset:     DefaultBaseOffset,
		MagnitudeScale: DefaultMagnitudeScale,
	}
}

// GoldenRatio is ϕ = (1+√5)/2, the azimuth stride divisor of the spiral layout.
var GoldenRatio = (1 + math.Sqrt(5)) / 2

// TetrahedralInclination is acos(-1/3): the inclination of the three
// lower vertices of a tetrahedron standing on the +Y pole.
var TetrahedralInclination = math.Acos(-1.0 / 3.0)

// SpiralThreshold is the smallest count laid out with the Fibonacci spiral.
// Counts below it come from the fixed table in layout.go.
const SpiralThreshold = 7

const twoPi = 2 * math.Pi
