// SPDX-License-Identifier: MIT
// Package: capsphere/connect
//
// api.go: single entry-point dispatching to the selected algorithm.

package connect

import (
	"sort"

	"github.com/katalvlaran/capsphere/core"
)

// Build returns the edges and inferred faces for nodes under mode.
//
// Behavior:
//   - ModeHull: exact hull; n < MinHullNodes → empty graph.
//   - ModeNearest: k-NN with face closure; n < 2 → empty graph.
//   - ModeNone or unknown modes: empty graph.
//
// Build never fails and never panics. Node IDs must be unique.
func Build(nodes []core.Node, mode Mode, opts ...Option) Graph {
	switch mode {
	case ModeHull:
		return Hull(nodes, opts...)
	case ModeNearest:
		return Nearest(nodes, opts...)
	default:
		return Graph{}
	}
}

// byID returns a copy of nodes ordered by ascending ID. The copy assigns the
// stable array indices used for the duration of one pass.
// Complexity: O(n log n).
func byID(nodes []core.Node) []core.Node {
	out := make([]core.Node, len(nodes))
	copy(out, nodes)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}
