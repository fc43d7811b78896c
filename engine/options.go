// SPDX-License-Identifier: MIT
// Package: capsphere/engine
//
// options.go: functional options for New.

package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// DefaultCacheSize is the number of scenes kept by the LRU.
const DefaultCacheSize = 64

// Option customizes an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	logger    *zap.Logger
	cacheSize int
	registry  prometheus.Registerer
}

func newEngineConfig(opts ...Option) engineConfig {
	cfg := engineConfig{
		logger:    zap.NewNop(),
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	return cfg
}

// WithLogger sets the logger used for cache diagnostics. nil means no logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *engineConfig) { c.logger = l }
}

// WithCacheSize bounds the number of memoized scenes. New fails with
// ErrInvalidCacheSize when n < 1.
func WithCacheSize(n int) Option {
	return func(c *engineConfig) { c.cacheSize = n }
}

// WithRegisterer registers the engine's metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *engineConfig) { c.registry = reg }
}
