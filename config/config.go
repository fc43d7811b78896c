// SPDX-License-Identifier: MIT
// Package: capsphere/config
//
// config.go: the settings tree, defaults, loading and validation.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "CAPSPHERE"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// validate is a shared validator instance; it caches struct metadata.
var validate = validator.New()

// Config is the root of the configuration tree.
type Config struct {
	Geometry GeometryConfig `mapstructure:"geometry" json:"geometry" yaml:"geometry"`
	Style    StyleConfig    `mapstructure:"style" json:"style" yaml:"style"`
	Label    LabelConfig    `mapstructure:"label" json:"label" yaml:"label"`
	Logger   LoggerConfig   `mapstructure:"logger" json:"logger" yaml:"logger"`
}

// GeometryConfig mirrors sphere.Geometry.
type GeometryConfig struct {
	CoreRadius     float64 `mapstructure:"core_radius" json:"core_radius" yaml:"core_radius" validate:"gt=0"`
	BaseOffset     float64 `mapstructure:"base_offset" json:"base_offset" yaml:"base_offset" validate:"gte=0"`
	MagnitudeScale float64 `mapstructure:"magnitude_scale" json:"magnitude_scale" yaml:"magnitude_scale" validate:"gte=0"`
}

// StyleConfig is the textual form of engine.Style. Colors are hex strings.
type StyleConfig struct {
	Mode           string  `mapstructure:"mode" json:"mode" yaml:"mode" validate:"oneof=none hull convex knn nearest fixed"`
	Neighbors      int     `mapstructure:"neighbors" json:"neighbors" yaml:"neighbors" validate:"gte=0"`
	Curve          string  `mapstructure:"curve" json:"curve" yaml:"curve" validate:"oneof=straight inward outward"`
	Surface        string  `mapstructure:"surface" json:"surface" yaml:"surface" validate:"oneof=flat curved"`
	ColorMode      string  `mapstructure:"color_mode" json:"color_mode" yaml:"color_mode" validate:"oneof=gradient solid uniform-reference"`
	SolidColor     string  `mapstructure:"solid_color" json:"solid_color" yaml:"solid_color" validate:"hexcolor"`
	ReferenceColor string  `mapstructure:"reference_color" json:"reference_color" yaml:"reference_color" validate:"hexcolor"`
	Opacity        float64 `mapstructure:"opacity" json:"opacity" yaml:"opacity" validate:"gte=0,lte=1"`
	Segments       int     `mapstructure:"segments" json:"segments" yaml:"segments" validate:"gte=1,lte=256"`
	Epsilon        float64 `mapstructure:"epsilon" json:"epsilon" yaml:"epsilon" validate:"gte=0"`
}

// LabelConfig holds the label scaler constants and default sizes.
type LabelConfig struct {
	DistanceConstant float64 `mapstructure:"distance_constant" json:"distance_constant" yaml:"distance_constant" validate:"gt=0"`
	Ceiling          float64 `mapstructure:"ceiling" json:"ceiling" yaml:"ceiling" validate:"gt=0"`
	BaseSize         float64 `mapstructure:"base_size" json:"base_size" yaml:"base_size" validate:"gte=0"`
	MinScreenSize    float64 `mapstructure:"min_screen_size" json:"min_screen_size" yaml:"min_screen_size" validate:"gte=0"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" json:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format      string `mapstructure:"format" json:"format" yaml:"format" validate:"oneof=console json"`
	AddSource   bool   `mapstructure:"add_source" json:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" json:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" json:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" json:"max_size" yaml:"max_size" validate:"gte=0"`
	MaxBackups  int    `mapstructure:"max_backups" json:"max_backups" yaml:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" json:"max_age" yaml:"max_age" validate:"gte=0"`
	Compress    bool   `mapstructure:"compress" json:"compress" yaml:"compress"`
}

// SetDefaults registers every key with its default value on v. Registering
// all keys is also what lets AutomaticEnv reach them during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("geometry.core_radius", 5.0)
	v.SetDefault("geometry.base_offset", 0.5)
	v.SetDefault("geometry.magnitude_scale", 0.5)

	v.SetDefault("style.mode", "hull")
	v.SetDefault("style.neighbors", 3)
	v.SetDefault("style.curve", "outward")
	v.SetDefault("style.surface", "curved")
	v.SetDefault("style.color_mode", "gradient")
	v.SetDefault("style.solid_color", "#808080")
	v.SetDefault("style.reference_color", "#ffffff")
	v.SetDefault("style.opacity", 1.0)
	v.SetDefault("style.segments", 12)
	v.SetDefault("style.epsilon", 1e-4)

	v.SetDefault("label.distance_constant", 10.0)
	v.SetDefault("label.ceiling", 1500.0)
	v.SetDefault("label.base_size", 24.0)
	v.SetDefault("label.min_screen_size", 12.0)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "capsphere")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)
}

// NewViper returns a viper instance with defaults and environment overrides
// wired, ready for flag binding or ReadInConfig.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path (YAML, JSON or TOML, by extension) over the defaults and
// environment. An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %q: %w", path, err)
		}
	}

	return FromViper(v)
}

// FromViper unmarshals and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := FromViper(NewViper())
	if err != nil {
		// Defaults are static; failing here is a programming error.
		panic(err)
	}
	return cfg
}

// Validate checks cfg against its struct tags. Failures wrap ErrInvalidConfig
// and name every offending field.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError flattens validator errors into one message.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: failed %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
		} else {
			parts = append(parts, fmt.Sprintf("%s: failed %s (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
		}
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(parts, "; "))
}
