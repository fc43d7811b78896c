// SPDX-License-Identifier: MIT
// Package: capsphere/config
//
// convert.go: textual configuration → typed library settings.

package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/capsphere/connect"
	"github.com/katalvlaran/capsphere/engine"
	"github.com/katalvlaran/capsphere/label"
	"github.com/katalvlaran/capsphere/sphere"
	"github.com/katalvlaran/capsphere/surface"
)

// SphereGeometry returns the configured sphere.Geometry.
func (c *Config) SphereGeometry() sphere.Geometry {
	return sphere.Geometry{
		CoreRadius:     c.Geometry.CoreRadius,
		BaseOffset:     c.Geometry.BaseOffset,
		MagnitudeScale: c.Geometry.MagnitudeScale,
	}
}

// Scaler returns the configured label.Scaler.
func (c *Config) Scaler() label.Scaler {
	return label.Scaler{
		DistanceConstant: c.Label.DistanceConstant,
		Ceiling:          c.Label.Ceiling,
	}
}

// EngineStyle parses the textual style into an engine.Style.
func (c *Config) EngineStyle() (engine.Style, error) {
	s := c.Style
	var (
		out engine.Style
		err error
	)

	if out.Mode, err = connect.ParseMode(s.Mode); err != nil {
		return engine.Style{}, fmt.Errorf("%w: style.mode: %w", ErrInvalidConfig, err)
	}
	if out.Curve, err = connect.ParseCurve(s.Curve); err != nil {
		return engine.Style{}, fmt.Errorf("%w: style.curve: %w", ErrInvalidConfig, err)
	}
	if out.Surface, err = surface.ParseStyle(s.Surface); err != nil {
		return engine.Style{}, fmt.Errorf("%w: style.surface: %w", ErrInvalidConfig, err)
	}
	if out.ColorMode, err = surface.ParseColorMode(s.ColorMode); err != nil {
		return engine.Style{}, fmt.Errorf("%w: style.color_mode: %w", ErrInvalidConfig, err)
	}
	if out.SolidColor, err = colorful.Hex(s.SolidColor); err != nil {
		return engine.Style{}, fmt.Errorf("%w: style.solid_color %q: %w", ErrInvalidConfig, s.SolidColor, err)
	}
	if out.ReferenceColor, err = colorful.Hex(s.ReferenceColor); err != nil {
		return engine.Style{}, fmt.Errorf("%w: style.reference_color %q: %w", ErrInvalidConfig, s.ReferenceColor, err)
	}

	out.Neighbors = s.Neighbors
	out.Opacity = s.Opacity
	out.Segments = s.Segments
	out.Epsilon = s.Epsilon

	if err = out.Validate(); err != nil {
		return engine.Style{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return out, nil
}
