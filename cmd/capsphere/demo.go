// SPDX-License-Identifier: MIT
// Package: capsphere/cmd/capsphere
//
// demo.go: the deterministic demo capability set.

package main

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/capsphere/constellation"
	"github.com/katalvlaran/capsphere/sphere"
)

// demoNames seeds capability names; longer sets reuse them with a suffix.
var demoNames = []string{
	"Go", "SQL", "Kubernetes", "Networking", "Rust", "Observability",
	"Security", "Design", "Testing", "Linux", "Writing", "Math",
}

// demoSet returns n capabilities with hue-spread colors and magnitudes from
// a fixed sequence in [1, 5]. IDs are cap-00, cap-01, ...
func demoSet(n int, geom sphere.Geometry) *constellation.Set {
	s := constellation.New(geom)
	for i := 0; i < n; i++ {
		name := demoNames[i%len(demoNames)]
		if i >= len(demoNames) {
			name = fmt.Sprintf("%s %d", name, i/len(demoNames)+1)
		}
		hue := 360 * float64(i) / float64(max(n, 1))
		color := colorful.Hsv(hue, 0.65, 0.9)
		magnitude := float64(1 + (i*7)%5)
		// IDs are unique by construction.
		_ = s.AddWithID(fmt.Sprintf("cap-%02d", i), name, color, magnitude)
	}

	return s
}
