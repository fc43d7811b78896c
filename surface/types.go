// SPDX-License-Identifier: MIT
// Package: capsphere/surface
//
// types.go: Style, ColorMode, Options and Buffer.

package surface

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/capsphere/core"
)

// Sentinel errors for name parsing.
var (
	// ErrUnknownStyle indicates a surface style name ParseStyle does not know.
	ErrUnknownStyle = errors.New("surface: unknown surface style")

	// ErrUnknownColorMode indicates a color mode name ParseColorMode does not know.
	ErrUnknownColorMode = errors.New("surface: unknown color mode")
)

// Style selects flat triangles or curved patches.
type Style int

const (
	StyleFlat   Style = iota // one triangle per face
	StyleCurved              // quadratic Bezier patch per face
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StyleFlat:
		return "flat"
	case StyleCurved:
		return "curved"
	default:
		return "unknown"
	}
}

// MarshalText encodes s by name.
func (s Style) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// ParseStyle accepts "flat" or "curved" (alias "patch").
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flat", "triangle":
		return StyleFlat, nil
	case "curved", "patch", "":
		return StyleCurved, nil
	}

	return StyleFlat, fmt.Errorf("ParseStyle: %q: %w", s, ErrUnknownStyle)
}

// ColorMode selects how vertex colors are derived.
type ColorMode int

const (
	ColorGradient  ColorMode = iota // barycentric blend of corner colors
	ColorSolid                      // Options.SolidColor
	ColorReference                  // Options.ReferenceColor
)

// String returns the color mode name.
func (m ColorMode) String() string {
	switch m {
	case ColorGradient:
		return "gradient"
	case ColorSolid:
		return "solid"
	case ColorReference:
		return "uniform-reference"
	default:
		return "unknown"
	}
}

// MarshalText encodes m by name.
func (m ColorMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// ParseColorMode accepts "gradient", "solid", "uniform-reference" (alias "reference").
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gradient", "":
		return ColorGradient, nil
	case "solid":
		return ColorSolid, nil
	case "uniform-reference", "reference", "uniform":
		return ColorReference, nil
	}

	return ColorGradient, fmt.Errorf("ParseColorMode: %q: %w", s, ErrUnknownColorMode)
}

// DefaultSegments is the number of subdivisions per patch side.
const DefaultSegments = 12

// MaxSegments bounds the subdivisions per patch side; one curved face then
// emits at most 3·MaxSegments² vertices.
const MaxSegments = 256

// OpaqueThreshold is the smallest opacity treated as fully opaque.
const OpaqueThreshold = 1 - 1e-3

// Options configures one tessellation pass.
type Options struct {
	Style          Style
	ColorMode      ColorMode
	SolidColor     core.Color
	ReferenceColor core.Color
	Opacity        float64
	// Segments ≤ 0 means DefaultSegments; values above MaxSegments are capped.
	Segments int
}

// DefaultOptions returns curved, gradient-colored, fully opaque patches.
func DefaultOptions() Options {
	return Options{
		Style:          StyleCurved,
		ColorMode:      ColorGradient,
		SolidColor:     core.Color{R: 0.5, G: 0.5, B: 0.5},
		ReferenceColor: core.Color{R: 1, G: 1, B: 1},
		Opacity:        1,
		Segments:       DefaultSegments,
	}
}

// segments resolves the effective subdivision count.
func (o Options) segments() int {
	return clampSegments(o.Segments)
}

// clampSegments maps ≤ 0 to DefaultSegments and caps at MaxSegments.
func clampSegments(n int) int {
	switch {
	case n <= 0:
		return DefaultSegments
	case n > MaxSegments:
		return MaxSegments
	}
	return n
}

// Buffer is a flat triangle list: every 3 consecutive vertices form one triangle.
// Positions holds x,y,z per vertex and Colors holds r,g,b per vertex.
type Buffer struct {
	Positions []float32 `json:"positions" yaml:"positions"`
	Colors    []float32 `json:"colors" yaml:"colors"`
	Opaque    bool      `json:"opaque" yaml:"opaque"`
}

// VertexCount returns the number of vertices in b.
func (b Buffer) VertexCount() int { return len(b.Positions) / 3 }

// Triangles returns the number of triangles in b.
func (b Buffer) Triangles() int { return b.VertexCount() / 3 }

// Append concatenates o's vertices onto b. The opaque flag is kept from b.
func (b *Buffer) Append(o Buffer) {
	b.Positions = append(b.Positions, o.Positions...)
	b.Colors = append(b.Colors, o.Colors...)
}

// IsOpaque reports whether opacity is effectively 1.
func IsOpaque(opacity float64) bool {
	return opacity >= OpaqueThreshold
}

// ExpectedVertices returns the vertex count one face produces:
// 3 for StyleFlat, 3·segments² for StyleCurved (segments clamped to
// [1, MaxSegments], ≤ 0 meaning DefaultSegments).
func ExpectedVertices(style Style, segments int) int {
	if style == StyleFlat {
		return 3
	}
	segments = clampSegments(segments)
	return 3 * segments * segments
}
