// SPDX-License-Identifier: MIT
// Package: capsphere/connect
//
// options.go: functional options for Build/Hull/Nearest.
//
// Contract:
//   • Option constructors PANIC on meaningless inputs (NaN/negative epsilon,
//     unknown curve). Algorithms themselves never panic.
//   • Out-of-range neighbor counts are NOT meaningless: they are clamped to
//     [1, n-1] at build time because n is only known then.

package connect

import (
	"fmt"
	"math"
)

// Option customizes one build pass.
type Option func(*buildConfig)

// WithNeighbors sets k for ModeNearest. Values outside [1, n-1] are clamped
// when the graph is built.
// Complexity: O(1).
func WithNeighbors(k int) Option {
	return func(c *buildConfig) {
		c.neighbors = k
	}
}

// WithEpsilon sets the hull side-test tolerance. Panics on eps < 0 or NaN.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic(fmt.Sprintf("connect: WithEpsilon(%v)", eps))
	}
	return func(c *buildConfig) {
		c.epsilon = eps
	}
}

// WithCurve sets the control-point style for emitted edges and faces.
// Panics on values outside the Curve enum.
// Complexity: O(1).
func WithCurve(curve Curve) Option {
	if curve < CurveStraight || curve > CurveOutward {
		panic(fmt.Sprintf("connect: WithCurve(%d)", int(curve)))
	}
	return func(c *buildConfig) {
		c.curve = curve
	}
}
