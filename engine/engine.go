// SPDX-License-Identifier: MIT
// Package: capsphere/engine
//
// engine.go: Scene, Engine and the memoized pipeline.

package engine

import (
	"fmt"
	"slices"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/capsphere/connect"
	"github.com/katalvlaran/capsphere/core"
	"github.com/katalvlaran/capsphere/surface"
)

// Scene is one computed result. Scenes returned by Compute are shared with
// the cache and every other caller that hits the same fingerprint; they are
// read-only. Use Clone before modifying one.
type Scene struct {
	Fingerprint uint64         `json:"fingerprint" yaml:"fingerprint"`
	Nodes       []core.Node    `json:"nodes" yaml:"nodes"`
	Graph       connect.Graph  `json:"graph" yaml:"graph"`
	Buffer      surface.Buffer `json:"buffer" yaml:"buffer"`
}

// Clone returns a deep copy of s that shares no slices with it.
// Complexity: O(n + E + F + vertices).
func (s *Scene) Clone() *Scene {
	return &Scene{
		Fingerprint: s.Fingerprint,
		Nodes:       slices.Clone(s.Nodes),
		Graph: connect.Graph{
			Edges: slices.Clone(s.Graph.Edges),
			Faces: slices.Clone(s.Graph.Faces),
		},
		Buffer: surface.Buffer{
			Positions: slices.Clone(s.Buffer.Positions),
			Colors:    slices.Clone(s.Buffer.Colors),
			Opaque:    s.Buffer.Opaque,
		},
	}
}

// Engine memoizes scenes by fingerprint.
type Engine struct {
	log     *zap.Logger
	cache   *lru.Cache[uint64, *Scene]
	metrics *metrics
}

// New returns an Engine configured by opts.
func New(opts ...Option) (*Engine, error) {
	cfg := newEngineConfig(opts...)
	if cfg.cacheSize < 1 {
		return nil, fmt.Errorf("%s: %d: %w", methodNew, cfg.cacheSize, ErrInvalidCacheSize)
	}

	cache, err := lru.New[uint64, *Scene](cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	return &Engine{
		log:     cfg.logger.Named("engine"),
		cache:   cache,
		metrics: newMetrics(cfg.registry),
	}, nil
}

// Compute returns the scene for nodes under style, reusing a cached scene
// when the fingerprint is unchanged. The result is shared and read-only; see
// Scene.Clone. Returns ErrInvalidStyle for bad styles.
// Complexity: O(n) on a hit; Build + Tessellate on a miss.
func (e *Engine) Compute(nodes []core.Node, style Style) (*Scene, error) {
	if err := style.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodCompute, err)
	}

	fp := Fingerprint(nodes, style)
	if s, ok := e.cache.Get(fp); ok {
		e.metrics.cacheHits.Inc()
		e.log.Debug("scene cache hit", zap.Uint64("fingerprint", fp), zap.Int("nodes", len(nodes)))
		return s, nil
	}

	e.metrics.cacheMisses.Inc()
	start := time.Now()
	s := computeScene(nodes, style, fp)
	elapsed := time.Since(start)
	e.metrics.computeSeconds.Observe(elapsed.Seconds())
	e.cache.Add(fp, s)

	e.log.Debug("scene computed",
		zap.Uint64("fingerprint", fp),
		zap.Int("nodes", len(nodes)),
		zap.Stringer("mode", style.Mode),
		zap.Int("edges", len(s.Graph.Edges)),
		zap.Int("faces", len(s.Graph.Faces)),
		zap.Int("vertices", s.Buffer.VertexCount()),
		zap.Duration("elapsed", elapsed),
	)

	return s, nil
}

// Purge drops every cached scene.
func (e *Engine) Purge() {
	e.cache.Purge()
	e.log.Debug("scene cache purged")
}

// Len returns the number of cached scenes.
func (e *Engine) Len() int { return e.cache.Len() }

// computeScene runs the pipeline without touching the cache.
func computeScene(nodes []core.Node, style Style, fp uint64) *Scene {
	snapshot := make([]core.Node, len(nodes))
	copy(snapshot, nodes)

	g := connect.Build(snapshot, style.Mode, style.buildOptions()...)
	buf := surface.Tessellate(g.Faces, style.surfaceOptions())

	return &Scene{
		Fingerprint: fp,
		Nodes:       snapshot,
		Graph:       g,
		Buffer:      buf,
	}
}
