// SPDX-License-Identifier: MIT
// Package: capsphere/connect
//
// types.go: Mode, Curve and the Graph result.

package connect

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/capsphere/core"
)

// Mode selects the connectivity algorithm.
type Mode int

// Enum values (stable ordering).
const (
	ModeNone    Mode = iota // no edges, no faces
	ModeHull                // global convex hull
	ModeNearest             // local k-nearest-neighbor ("fixed") connectivity
)

// String provides a readable identifier for logs/errors (deterministic).
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeHull:
		return "hull"
	case ModeNearest:
		return "knn"
	default:
		return "unknown"
	}
}

// MarshalText encodes m by name.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText decodes a mode name (see ParseMode).
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// ParseMode accepts "none", "hull", "knn" (aliases "nearest", "fixed").
// Unknown names → ErrUnknownMode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return ModeNone, nil
	case "hull", "convex", "convex-hull":
		return ModeHull, nil
	case "knn", "nearest", "fixed":
		return ModeNearest, nil
	}

	return ModeNone, fmt.Errorf("%s: %q: %w", methodParseMode, s, ErrUnknownMode)
}

// Curve selects how far an edge's control point is pushed from the center.
type Curve int

// Enum values (stable ordering).
const (
	CurveStraight Curve = iota // midpoint unchanged; rendered as a line
	CurveInward                // midpoint × 0.7
	CurveOutward               // midpoint × 1.3
)

// Radial scale factors applied to an edge midpoint.
const (
	StraightFactor = 1.0
	InwardFactor   = 0.7
	OutwardFactor  = 1.3
)

// Factor returns the radial scale applied to an edge midpoint.
// Unknown values fall back to StraightFactor.
func (c Curve) Factor() float64 {
	switch c {
	case CurveInward:
		return InwardFactor
	case CurveOutward:
		return OutwardFactor
	default:
		return StraightFactor
	}
}

// String provides a readable identifier.
func (c Curve) String() string {
	switch c {
	case CurveStraight:
		return "straight"
	case CurveInward:
		return "inward"
	case CurveOutward:
		return "outward"
	default:
		return "unknown"
	}
}

// MarshalText encodes c by name.
func (c Curve) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText decodes a curve name (see ParseCurve).
func (c *Curve) UnmarshalText(b []byte) error {
	v, err := ParseCurve(string(b))
	if err != nil {
		return err
	}
	*c = v

	return nil
}

// ParseCurve accepts "straight", "inward", "outward" (aliases "in", "out", "none").
func ParseCurve(s string) (Curve, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "straight", "none", "":
		return CurveStraight, nil
	case "inward", "in":
		return CurveInward, nil
	case "outward", "out":
		return CurveOutward, nil
	}

	return CurveStraight, fmt.Errorf("%s: %q: %w", methodParseCurve, s, ErrUnknownCurve)
}

// Graph is the result of one build pass.
// Every face side is present in Edges; in hull mode every edge borders a face.
type Graph struct {
	Edges []core.Edge `json:"edges" yaml:"edges"`
	Faces []core.Face `json:"faces" yaml:"faces"`
}

// Empty reports whether g has neither edges nor faces.
func (g Graph) Empty() bool { return len(g.Edges) == 0 && len(g.Faces) == 0 }

// EulerCharacteristic returns V − E + F for a graph over n nodes.
// A closed convex hull (e.g. tetrahedron) yields 2.
func (g Graph) EulerCharacteristic(n int) int {
	return n - len(g.Edges) + len(g.Faces)
}
