package connect_test

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/capsphere/connect"
	"github.com/katalvlaran/capsphere/core"
)

// TestControlPoint covers the three curve styles.
func TestControlPoint(t *testing.T) {
	a := r3.Vec{X: 2}
	b := r3.Vec{Y: 2}
	cases := []struct {
		curve connect.Curve
		want  r3.Vec
	}{
		{connect.CurveStraight, r3.Vec{X: 1, Y: 1}},
		{connect.CurveInward, r3.Vec{X: 0.7, Y: 0.7}},
		{connect.CurveOutward, r3.Vec{X: 1.3, Y: 1.3}},
	}
	for _, tc := range cases {
		t.Run(tc.curve.String(), func(t *testing.T) {
			got := connect.ControlPoint(a, b, tc.curve)
			assert.InDelta(t, tc.want.X, got.X, 1e-12)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-12)
			assert.Equal(t, 0.0, got.Z)
		})
	}
}

// TestEdge_ColorAndEndpoints checks canonical orientation and blended color.
func TestEdge_ColorAndEndpoints(t *testing.T) {
	nodes := []core.Node{
		{ID: "b", Position: r3.Vec{X: 1}, Color: colorful.Color{R: 1}},
		{ID: "a", Position: r3.Vec{X: -1}, Color: colorful.Color{B: 1}},
	}
	g := connect.Nearest(nodes, connect.WithNeighbors(1))
	if assert.Len(t, g.Edges, 1) {
		e := g.Edges[0]
		assert.Equal(t, "a", e.A)
		assert.Equal(t, r3.Vec{X: -1}, e.Start)
		assert.Equal(t, r3.Vec{X: 1}, e.End)
		assert.Equal(t, colorful.Color{R: 0.5, B: 0.5}, e.Color)
	}
}

// TestParse covers name parsing and sentinel errors.
func TestParse(t *testing.T) {
	for in, want := range map[string]connect.Mode{"hull": connect.ModeHull, "KNN": connect.ModeNearest, "fixed": connect.ModeNearest, "none": connect.ModeNone} {
		got, err := connect.ParseMode(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := connect.ParseMode("mesh")
	assert.ErrorIs(t, err, connect.ErrUnknownMode)

	for in, want := range map[string]connect.Curve{"in": connect.CurveInward, "outward": connect.CurveOutward, "straight": connect.CurveStraight} {
		got, err := connect.ParseCurve(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err = connect.ParseCurve("wavy")
	assert.ErrorIs(t, err, connect.ErrUnknownCurve)

	var m connect.Mode
	assert.NoError(t, m.UnmarshalText([]byte("hull")))
	assert.Equal(t, connect.ModeHull, m)
	b, _ := connect.CurveInward.MarshalText()
	assert.Equal(t, "inward", string(b))
}

// TestOptions_Panics verifies option constructors fail fast.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { connect.WithEpsilon(-1) })
	assert.Panics(t, func() { connect.WithCurve(connect.Curve(9)) })
	assert.NotPanics(t, func() { connect.WithNeighbors(-1) })
}

// TestBuild_Dispatch checks Build routes by mode.
func TestBuild_Dispatch(t *testing.T) {
	nodes := layoutNodes(6, 5)
	assert.Equal(t, connect.Hull(nodes), connect.Build(nodes, connect.ModeHull))
	assert.Equal(t, connect.Nearest(nodes, connect.WithNeighbors(2)), connect.Build(nodes, connect.ModeNearest, connect.WithNeighbors(2)))
	assert.True(t, connect.Build(nodes, connect.ModeNone).Empty())
	assert.True(t, connect.Build(nodes, connect.Mode(42)).Empty())
}
