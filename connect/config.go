// SPDX-License-Identifier: MIT
// Package: capsphere/connect
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • neighbors = DefaultNeighbors (3)
//   • epsilon   = DefaultEpsilon   (1e-4)
//   • curve     = CurveStraight

package connect

// Deterministic defaults (named, no magic numbers).
const (
	// DefaultNeighbors is k for ModeNearest when WithNeighbors is not given.
	DefaultNeighbors = 3

	// DefaultEpsilon is the hull side-test tolerance.
	DefaultEpsilon = 1e-4

	// MinHullNodes is the smallest node count with a well-defined 3D hull.
	MinHullNodes = 4

	// degenerateSine bounds |a×b| / (|a|·|b|), the sine of the corner angle,
	// below which a candidate triangle counts as collinear. It is
	// scale-free, so tiny and huge spheres behave alike.
	degenerateSine = 1e-12
)

// buildConfig aggregates all knobs used by the algorithms.
// It is passed by VALUE (immutable to callers).
type buildConfig struct {
	neighbors int
	epsilon   float64
	curve     Curve
}

// newBuildConfig applies options in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		neighbors: DefaultNeighbors,
		epsilon:   DefaultEpsilon,
		curve:     CurveStraight,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// clampNeighbors clamps k into [1, n-1]. n < 2 yields 0.
func clampNeighbors(k, n int) int {
	if n < 2 {
		return 0
	}
	if k < 1 {
		return 1
	}
	if k > n-1 {
		return n - 1
	}

	return k
}
