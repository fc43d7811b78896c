// SPDX-License-Identifier: MIT
// Package engine_test verifies caching, determinism and style validation.

package engine_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/capsphere/connect"
	"github.com/katalvlaran/capsphere/core"
	"github.com/katalvlaran/capsphere/engine"
	"github.com/katalvlaran/capsphere/sphere"
	"github.com/katalvlaran/capsphere/surface"
)

// sceneNodes places n nodes with magnitude 1 at their layout tips.
func sceneNodes(n int) []core.Node {
	g := sphere.DefaultGeometry()
	out := make([]core.Node, n)
	for i, a := range sphere.Layout(n) {
		out[i] = core.Node{
			ID:        fmt.Sprintf("n%02d", i),
			Position:  sphere.TipPosition(a, 1, g),
			Color:     colorful.Hsv(float64(i)*360/float64(n), 0.8, 0.9),
			Magnitude: 1,
		}
	}
	return out
}

func newEngine(t *testing.T, opts ...engine.Option) *engine.Engine {
	t.Helper()
	e, err := engine.New(append([]engine.Option{engine.WithLogger(zaptest.NewLogger(t))}, opts...)...)
	require.NoError(t, err)
	return e
}

// TestCompute_Tetrahedron checks the end-to-end pipeline on four nodes.
func TestCompute_Tetrahedron(t *testing.T) {
	e := newEngine(t)
	s, err := e.Compute(sceneNodes(4), engine.DefaultStyle())
	require.NoError(t, err)

	assert.Len(t, s.Graph.Edges, 6)
	assert.Len(t, s.Graph.Faces, 4)
	assert.Equal(t, 4*surface.ExpectedVertices(surface.StyleCurved, surface.DefaultSegments), s.Buffer.VertexCount())
	assert.True(t, s.Buffer.Opaque)
	assert.Equal(t, 2, s.Graph.EulerCharacteristic(len(s.Nodes)))
}

// TestCompute_CacheHitAndMiss verifies memoization and the prometheus counters.
func TestCompute_CacheHitAndMiss(t *testing.T) {
	reg := prometheus.NewRegistry()
	obsCore, logs := observer.New(zapcore.DebugLevel)
	e, err := engine.New(engine.WithLogger(zap.New(obsCore)), engine.WithRegisterer(reg))
	require.NoError(t, err)

	nodes := sceneNodes(8)
	style := engine.DefaultStyle()

	s1, err := e.Compute(nodes, style)
	require.NoError(t, err)
	s2, err := e.Compute(nodes, style)
	require.NoError(t, err)
	assert.Same(t, s1, s2, "second call must be served from the cache")
	assert.Equal(t, 1, e.Len())

	style.Opacity = 0.5
	s3, err := e.Compute(nodes, style)
	require.NoError(t, err)
	assert.NotSame(t, s1, s3)
	assert.False(t, s3.Buffer.Opaque)
	assert.Equal(t, 2, e.Len())

	n, err := testutil.GatherAndCount(reg, "capsphere_engine_cache_hits_total", "capsphere_engine_cache_misses_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				values[mf.GetName()] = c.GetValue()
			}
			if h := m.GetHistogram(); h != nil {
				values[mf.GetName()] = float64(h.GetSampleCount())
			}
		}
	}
	assert.Equal(t, 1.0, values["capsphere_engine_cache_hits_total"])
	assert.Equal(t, 2.0, values["capsphere_engine_cache_misses_total"])
	assert.Equal(t, 2.0, values["capsphere_engine_compute_seconds"])

	assert.Equal(t, 1, logs.FilterMessage("scene cache hit").Len())
	assert.Equal(t, 2, logs.FilterMessage("scene computed").Len())

	e.Purge()
	assert.Equal(t, 0, e.Len())
}

// TestCompute_InvalidStyle covers every validated field.
func TestCompute_InvalidStyle(t *testing.T) {
	e := newEngine(t)
	cases := map[string]func(*engine.Style){
		"Mode":      func(s *engine.Style) { s.Mode = connect.Mode(9) },
		"Curve":     func(s *engine.Style) { s.Curve = connect.Curve(-1) },
		"Surface":   func(s *engine.Style) { s.Surface = surface.Style(7) },
		"ColorMode": func(s *engine.Style) { s.ColorMode = surface.ColorMode(5) },
		"Opacity":   func(s *engine.Style) { s.Opacity = 1.5 },
		"Epsilon":   func(s *engine.Style) { s.Epsilon = -1 },
		"Segments":  func(s *engine.Style) { s.Segments = 1 << 30 },
		"Segments+": func(s *engine.Style) { s.Segments = surface.MaxSegments + 1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			st := engine.DefaultStyle()
			mutate(&st)
			_, err := e.Compute(sceneNodes(4), st)
			assert.ErrorIs(t, err, engine.ErrInvalidStyle)
		})
	}
	assert.Equal(t, 0, e.Len())
}

// TestCompute_MaxSegmentsAccepted runs the largest accepted subdivision.
func TestCompute_MaxSegmentsAccepted(t *testing.T) {
	e := newEngine(t)
	st := engine.DefaultStyle()
	st.Segments = surface.MaxSegments
	s, err := e.Compute(sceneNodes(4), st)
	require.NoError(t, err)
	assert.Equal(t, 4*surface.ExpectedVertices(surface.StyleCurved, surface.MaxSegments), s.Buffer.VertexCount())
}

// TestNew_InvalidCacheSize rejects a non-positive cache size.
func TestNew_InvalidCacheSize(t *testing.T) {
	_, err := engine.New(engine.WithCacheSize(0))
	assert.ErrorIs(t, err, engine.ErrInvalidCacheSize)
}

// TestCompute_Eviction keeps at most the configured number of scenes.
func TestCompute_Eviction(t *testing.T) {
	e := newEngine(t, engine.WithCacheSize(2))
	for n := 4; n < 8; n++ {
		_, err := e.Compute(sceneNodes(n), engine.DefaultStyle())
		require.NoError(t, err)
	}
	assert.Equal(t, 2, e.Len())
}

// TestCompute_ModeNoneAndSmall returns empty graphs without error.
func TestCompute_ModeNoneAndSmall(t *testing.T) {
	e := newEngine(t)
	st := engine.DefaultStyle()
	st.Mode = connect.ModeNone
	s, err := e.Compute(sceneNodes(10), st)
	require.NoError(t, err)
	assert.True(t, s.Graph.Empty())
	assert.Zero(t, s.Buffer.VertexCount())

	s, err = e.Compute(nil, engine.DefaultStyle())
	require.NoError(t, err)
	assert.True(t, s.Graph.Empty())
}

// TestCompute_InputNotAliased ensures later mutation of the caller's slice
// does not leak into the cached scene.
func TestCompute_InputNotAliased(t *testing.T) {
	e := newEngine(t)
	nodes := sceneNodes(5)
	s, err := e.Compute(nodes, engine.DefaultStyle())
	require.NoError(t, err)
	nodes[0].ID = "changed"
	assert.Equal(t, "n00", s.Nodes[0].ID)
}

// TestScene_CloneIndependent edits a clone and checks that the cached scene
// served to later callers is untouched.
func TestScene_CloneIndependent(t *testing.T) {
	e := newEngine(t)
	nodes := sceneNodes(5)
	shared, err := e.Compute(nodes, engine.DefaultStyle())
	require.NoError(t, err)

	c := shared.Clone()
	require.Equal(t, shared, c)

	c.Nodes[0].ID = "edited"
	c.Graph.Edges[0].A = "edited"
	c.Graph.Faces[0].NodeIDs[0] = "edited"
	c.Buffer.Positions[0] = 1e6
	c.Buffer.Colors[0] = -1

	again, err := e.Compute(nodes, engine.DefaultStyle())
	require.NoError(t, err)
	assert.Same(t, shared, again)
	assert.Equal(t, "n00", again.Nodes[0].ID)
	assert.NotEqual(t, "edited", again.Graph.Edges[0].A)
	assert.NotEqual(t, "edited", again.Graph.Faces[0].NodeIDs[0])
	assert.NotEqual(t, float32(1e6), again.Buffer.Positions[0])
	assert.NotEqual(t, float32(-1), again.Buffer.Colors[0])
}

// TestFingerprint_Sensitivity checks that each input class changes the key.
func TestFingerprint_Sensitivity(t *testing.T) {
	nodes := sceneNodes(6)
	st := engine.DefaultStyle()
	base := engine.Fingerprint(nodes, st)
	assert.Equal(t, base, engine.Fingerprint(sceneNodes(6), engine.DefaultStyle()))

	mutations := map[string]func([]core.Node, *engine.Style){
		"Magnitude": func(n []core.Node, _ *engine.Style) { n[2].Magnitude = 3 },
		"Position":  func(n []core.Node, _ *engine.Style) { n[1].Position.X += 1e-9 },
		"Color":     func(n []core.Node, _ *engine.Style) { n[0].Color.G = 0 },
		"ID":        func(n []core.Node, _ *engine.Style) { n[3].ID = "x" },
		"Mode":      func(_ []core.Node, s *engine.Style) { s.Mode = connect.ModeNearest },
		"Curve":     func(_ []core.Node, s *engine.Style) { s.Curve = connect.CurveInward },
		"Segments":  func(_ []core.Node, s *engine.Style) { s.Segments = 4 },
		"Solid":     func(_ []core.Node, s *engine.Style) { s.SolidColor.R = 0.1 },
	}
	for name, m := range mutations {
		t.Run(name, func(t *testing.T) {
			n := sceneNodes(6)
			s := engine.DefaultStyle()
			m(n, &s)
			assert.NotEqual(t, base, engine.Fingerprint(n, s))
		})
	}
	assert.NotEqual(t, base, engine.Fingerprint(nodes[:5], st), "count")
}

// TestCompute_Concurrent runs many callers over few distinct inputs (run with -race).
func TestCompute_Concurrent(t *testing.T) {
	e := newEngine(t)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				s, err := e.Compute(sceneNodes(4+(w+i)%3), engine.DefaultStyle())
				assert.NoError(t, err)
				assert.NotNil(t, s)
			}
		}(w)
	}
	wg.Wait()
	assert.LessOrEqual(t, e.Len(), 3)
}
