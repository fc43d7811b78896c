// SPDX-License-Identifier: MIT
// Package: capsphere/sphere
//
// layout.go: Layout(n): n indices → n angle pairs.
//
// Contract:
//   • len(Layout(n)) == max(n, 0).
//   • n ∈ 1..6 reproduces the literal table below exactly.
//   • n ≥ 7 evaluates the spiral formula in a fixed order so results are
//     bit-stable across calls (needed by fingerprint caching).

package sphere

import "math"

// smallLayout returns the fixed table entry for n = 1..6 (nil otherwise).
// A fresh slice is built on every call so callers never alias package state.
func smallLayout(n int) []Angles {
	const half = math.Pi / 2
	third := twoPi / 3

	switch n {
	case 1:
		// single pole
		return []Angles{{0, 0}}
	case 2:
		// antipodal poles
		return []Angles{{0, 0}, {math.Pi, 0}}
	case 3:
		// equilateral triangle on the equator
		return []Angles{{half, 0}, {half, third}, {half, 2 * third}}
	case 4:
		// tetrahedron: pole + three at acos(-1/3)
		t := TetrahedralInclination
		return []Angles{{0, 0}, {t, 0}, {t, third}, {t, 2 * third}}
	case 5:
		// triangular bipyramid
		return []Angles{{0, 0}, {math.Pi, 0}, {half, 0}, {half, third}, {half, 2 * third}}
	case 6:
		// octahedron
		return []Angles{
			{0, 0}, {math.Pi, 0},
			{half, 0}, {half, half}, {half, math.Pi}, {half, 3 * half},
		}
	}

	return nil
}

// Layout distributes n indices over the unit sphere.
//
// Small counts (1..6) get the vertices of a recognizable solid; larger counts
// use the Fibonacci lattice
//
//	φ_i = acos(1 − 2(i+0.5)/n)
//	θ_i = (2π·i/ϕ) mod 2π
//
// which yields near-uniform density without clustering at the poles.
// n ≤ 0 returns an empty, non-nil slice.
//
// Complexity: O(n) time and space.
func Layout(n int) []Angles {
	if n <= 0 {
		return []Angles{}
	}
	if n < SpiralThreshold {
		return smallLayout(n)
	}

	out := make([]Angles, n)
	fn := float64(n)
	for i := 0; i < n; i++ {
		fi := float64(i)
		out[i] = Angles{
			Inclination: math.Acos(1 - 2*(fi+0.5)/fn),
			Azimuth:     math.Mod(twoPi*fi/GoldenRatio, twoPi),
		}
	}

	return out
}
