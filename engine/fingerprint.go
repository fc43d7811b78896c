// SPDX-License-Identifier: MIT
// Package: capsphere/engine
//
// fingerprint.go: 64-bit cache key over nodes and style.

package engine

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/capsphere/core"
)

// Fingerprint hashes everything Compute depends on: node count, then per node
// (in the given order) ID, position, color and magnitude, then every Style
// field. Equal inputs give equal fingerprints.
// Complexity: O(n).
func Fingerprint(nodes []core.Node, style Style) uint64 {
	h := xxhash.New()
	var buf [8]byte

	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	putF := func(v float64) { putU(math.Float64bits(v)) }
	putS := func(s string) {
		putU(uint64(len(s)))
		_, _ = h.WriteString(s)
	}

	putU(uint64(len(nodes)))
	for _, n := range nodes {
		putS(n.ID)
		putF(n.Position.X)
		putF(n.Position.Y)
		putF(n.Position.Z)
		putF(n.Color.R)
		putF(n.Color.G)
		putF(n.Color.B)
		putF(n.Magnitude)
	}

	putU(uint64(style.Mode))
	putU(uint64(style.Neighbors))
	putU(uint64(style.Curve))
	putU(uint64(style.Surface))
	putU(uint64(style.ColorMode))
	putF(style.SolidColor.R)
	putF(style.SolidColor.G)
	putF(style.SolidColor.B)
	putF(style.ReferenceColor.R)
	putF(style.ReferenceColor.G)
	putF(style.ReferenceColor.B)
	putF(style.Opacity)
	putU(uint64(style.Segments))
	putF(style.Epsilon)

	return h.Sum64()
}
