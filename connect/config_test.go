// Package connect contains unit tests for the configuration primitives
// (buildConfig and Option) to ensure correct defaults and override order.
package connect

import "testing"

// TestBuildConfig_Defaults checks deterministic defaults and last-wins semantics.
func TestBuildConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuildConfig()
	if cfg.neighbors != DefaultNeighbors || cfg.epsilon != DefaultEpsilon || cfg.curve != CurveStraight {
		t.Errorf("defaults: got %+v", cfg)
	}

	cfg = newBuildConfig(WithNeighbors(2), WithNeighbors(5), nil, WithCurve(CurveInward))
	if cfg.neighbors != 5 {
		t.Errorf("last WithNeighbors must win: got %d", cfg.neighbors)
	}
	if cfg.curve != CurveInward {
		t.Errorf("WithCurve: got %v", cfg.curve)
	}
}

// TestClampNeighbors covers the [1, n-1] clamp.
func TestClampNeighbors(t *testing.T) {
	t.Parallel()

	cases := []struct{ k, n, want int }{
		{3, 0, 0}, {3, 1, 0}, {0, 2, 1}, {-4, 5, 1}, {9, 5, 4}, {2, 5, 2},
	}
	for _, tc := range cases {
		if got := clampNeighbors(tc.k, tc.n); got != tc.want {
			t.Errorf("clampNeighbors(%d,%d) = %d; want %d", tc.k, tc.n, got, tc.want)
		}
	}
}
