// SPDX-License-Identifier: MIT

// Package sphere distributes points on a sphere and maps them to Cartesian space.
//
// 🚀 What is it for?
//
//	Every capability node lives on a sphere. Layout decides *where* on the
//	sphere (as inclination/azimuth angles), ToCartesian decides *how far*
//	from the center (radius) and yields the 3D position.
//
// ✨ Layout policy:
//   - n ≤ 0 - empty layout
//   - n = 1..6 - a fixed table of recognizable solids
//     (pole, poles, triangle, tetrahedron, bipyramid, octahedron)
//   - n ≥ 7 - Fibonacci (golden-angle) spiral, near-uniform density
//
// Coordinates follow the physics convention with Y as the polar axis:
//
//	(r·sinφ·cosθ, r·cosφ, r·sinφ·sinθ)
//
// All functions are pure and deterministic: the same n always yields the
// bit-identical sequence, which is what makes fingerprint caching upstream safe.
//
// Complexity:
//   - Layout:      O(n) time, O(n) space.
//   - ToCartesian: O(1).
package sphere
