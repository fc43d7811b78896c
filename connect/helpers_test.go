package connect_test

import (
	"fmt"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/capsphere/connect"
	"github.com/katalvlaran/capsphere/core"
	"github.com/katalvlaran/capsphere/sphere"
)

// layoutNodes places n nodes on a sphere of the given radius with IDs n00, n01, …
func layoutNodes(n int, radius float64) []core.Node {
	out := make([]core.Node, 0, n)
	for i, a := range sphere.Layout(n) {
		out = append(out, core.Node{
			ID:       fmt.Sprintf("n%02d", i),
			Position: a.Point(radius),
			Color:    colorful.Hsv(float64(i)*360/float64(n), 0.8, 0.9),
		})
	}
	return out
}

// lineNodes places nodes on the X axis at the given coordinates.
func lineNodes(xs ...float64) []core.Node {
	out := make([]core.Node, len(xs))
	for i, x := range xs {
		out[i] = core.Node{ID: fmt.Sprintf("p%d", i), Position: r3.Vec{X: x}}
	}
	return out
}

// shuffled returns a permuted copy of nodes.
func shuffled(nodes []core.Node, seed int64) []core.Node {
	out := append([]core.Node(nil), nodes...)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// checkConsistency returns an error description if any face side is missing
// from the edge set, or (when requireCovered) any edge borders no face.
func checkConsistency(g connect.Graph, requireCovered bool) string {
	edges := make(map[core.EdgeKey]int, len(g.Edges))
	for _, e := range g.Edges {
		if e.A == e.B {
			return fmt.Sprintf("self edge %s", e.A)
		}
		if e.B < e.A {
			return fmt.Sprintf("non-canonical edge %s-%s", e.A, e.B)
		}
		edges[e.Key()] = 0
	}
	for _, f := range g.Faces {
		for _, k := range f.Edges() {
			if _, ok := edges[k]; !ok {
				return fmt.Sprintf("face %v side %v missing from edges", f.NodeIDs, k)
			}
			edges[k]++
		}
	}
	if requireCovered {
		for k, c := range edges {
			if c == 0 {
				return fmt.Sprintf("orphan edge %v", k)
			}
		}
	}
	return ""
}
