// SPDX-License-Identifier: MIT
// Package: capsphere/engine
//
// style.go: the user-facing knobs of one scene.

package engine

import (
	"fmt"
	"math"

	"github.com/katalvlaran/capsphere/connect"
	"github.com/katalvlaran/capsphere/core"
	"github.com/katalvlaran/capsphere/surface"
)

// Style gathers every setting that influences a Scene.
type Style struct {
	Mode           connect.Mode      `json:"mode" yaml:"mode"`
	Neighbors      int               `json:"neighbors" yaml:"neighbors"` // ≤ 0 → connect.DefaultNeighbors
	Curve          connect.Curve     `json:"curve" yaml:"curve"`
	Surface        surface.Style     `json:"surface" yaml:"surface"`
	ColorMode      surface.ColorMode `json:"color_mode" yaml:"color_mode"`
	SolidColor     core.Color        `json:"solid_color" yaml:"solid_color"`
	ReferenceColor core.Color        `json:"reference_color" yaml:"reference_color"`
	Opacity        float64           `json:"opacity" yaml:"opacity"`
	Segments       int               `json:"segments" yaml:"segments"` // ≤ 0 → surface.DefaultSegments
	Epsilon        float64           `json:"epsilon" yaml:"epsilon"`
}

// DefaultStyle returns hull connectivity, outward curves and curved,
// gradient-colored, opaque patches.
func DefaultStyle() Style {
	so := surface.DefaultOptions()

	return Style{
		Mode:           connect.ModeHull,
		Neighbors:      connect.DefaultNeighbors,
		Curve:          connect.CurveOutward,
		Surface:        so.Style,
		ColorMode:      so.ColorMode,
		SolidColor:     so.SolidColor,
		ReferenceColor: so.ReferenceColor,
		Opacity:        so.Opacity,
		Segments:       so.Segments,
		Epsilon:        connect.DefaultEpsilon,
	}
}

// Validate reports the first out-of-range field wrapped in ErrInvalidStyle.
// Segments ≤ 0 is valid and selects surface.DefaultSegments.
func (s Style) Validate() error {
	switch {
	case s.Mode < connect.ModeNone || s.Mode > connect.ModeNearest:
		return fmt.Errorf("%s: mode %d: %w", methodValidate, int(s.Mode), ErrInvalidStyle)
	case s.Curve < connect.CurveStraight || s.Curve > connect.CurveOutward:
		return fmt.Errorf("%s: curve %d: %w", methodValidate, int(s.Curve), ErrInvalidStyle)
	case s.Surface < surface.StyleFlat || s.Surface > surface.StyleCurved:
		return fmt.Errorf("%s: surface %d: %w", methodValidate, int(s.Surface), ErrInvalidStyle)
	case s.ColorMode < surface.ColorGradient || s.ColorMode > surface.ColorReference:
		return fmt.Errorf("%s: color mode %d: %w", methodValidate, int(s.ColorMode), ErrInvalidStyle)
	case math.IsNaN(s.Opacity) || s.Opacity < 0 || s.Opacity > 1:
		return fmt.Errorf("%s: opacity %v: %w", methodValidate, s.Opacity, ErrInvalidStyle)
	case math.IsNaN(s.Epsilon) || s.Epsilon < 0:
		return fmt.Errorf("%s: epsilon %v: %w", methodValidate, s.Epsilon, ErrInvalidStyle)
	case s.Segments > surface.MaxSegments:
		return fmt.Errorf("%s: segments %d above %d: %w", methodValidate, s.Segments, surface.MaxSegments, ErrInvalidStyle)
	}

	return nil
}

// buildOptions converts s into connect options. s must be valid.
func (s Style) buildOptions() []connect.Option {
	k := s.Neighbors
	if k <= 0 {
		k = connect.DefaultNeighbors
	}

	return []connect.Option{
		connect.WithNeighbors(k),
		connect.WithEpsilon(s.Epsilon),
		connect.WithCurve(s.Curve),
	}
}

// surfaceOptions converts s into tessellation options.
func (s Style) surfaceOptions() surface.Options {
	return surface.Options{
		Style:          s.Surface,
		ColorMode:      s.ColorMode,
		SolidColor:     s.SolidColor,
		ReferenceColor: s.ReferenceColor,
		Opacity:        s.Opacity,
		Segments:       s.Segments,
	}
}
