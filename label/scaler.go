// SPDX-License-Identifier: MIT
// Package: capsphere/label
//
// scaler.go: the distance-compensated font size.

package label

import "math"

// Deterministic defaults.
const (
	// DefaultDistanceConstant is the distance at which one font unit maps to
	// one on-screen unit.
	DefaultDistanceConstant = 10.0

	// DefaultCeiling bounds the font size (and so the glyph texture size).
	DefaultCeiling = 1500.0
)

// Scaler holds the projection constant and the font-size ceiling.
type Scaler struct {
	DistanceConstant float64
	Ceiling          float64
}

// DefaultScaler returns a Scaler with DefaultDistanceConstant and DefaultCeiling.
func DefaultScaler() Scaler {
	return Scaler{DistanceConstant: DefaultDistanceConstant, Ceiling: DefaultCeiling}
}

// FontSize returns max(baseSize, minScreen·distance/DistanceConstant),
// clamped to [0, Ceiling]. A non-positive or NaN distance returns baseSize
// (clamped). The result never exceeds Ceiling.
// Complexity: O(1).
func (s Scaler) FontSize(distance, baseSize, minScreen float64) float64 {
	size := baseSize
	if distance > 0 && s.DistanceConstant > 0 && !math.IsInf(distance, 1) {
		if need := minScreen * distance / s.DistanceConstant; need > size {
			size = need
		}
	} else if math.IsInf(distance, 1) {
		size = s.ceiling()
	}

	return s.clamp(size)
}

// ScreenSize returns the on-screen size of a label of font size f at distance d.
// A non-positive distance returns +Inf.
func (s Scaler) ScreenSize(fontSize, distance float64) float64 {
	if distance <= 0 {
		return math.Inf(1)
	}
	return fontSize * (s.DistanceConstant / distance)
}

func (s Scaler) ceiling() float64 {
	if s.Ceiling <= 0 || math.IsNaN(s.Ceiling) {
		return DefaultCeiling
	}
	return s.Ceiling
}

func (s Scaler) clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > s.ceiling():
		return s.ceiling()
	}
	return v
}

// FontSize is DefaultScaler().FontSize.
func FontSize(distance, baseSize, minScreen float64) float64 {
	return DefaultScaler().FontSize(distance, baseSize, minScreen)
}
