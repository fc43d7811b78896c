package connect_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/capsphere/connect"
	"github.com/katalvlaran/capsphere/core"
)

// TestNearest_TooFewNodes verifies n < 2 yields nothing and n = 2 a single edge.
func TestNearest_TooFewNodes(t *testing.T) {
	assert.True(t, connect.Nearest(nil).Empty())
	assert.True(t, connect.Nearest(layoutNodes(1, 1)).Empty())

	g := connect.Nearest(layoutNodes(2, 1))
	assert.Len(t, g.Edges, 1)
	assert.Empty(t, g.Faces)
}

// TestNearest_CompleteGraph checks k = n-1 yields all pairs and all triples.
func TestNearest_CompleteGraph(t *testing.T) {
	for _, n := range []int{3, 4, 6, 9} {
		g := connect.Nearest(layoutNodes(n, 5), connect.WithNeighbors(n-1))
		assert.Len(t, g.Edges, n*(n-1)/2, "n=%d edges", n)
		assert.Len(t, g.Faces, n*(n-1)*(n-2)/6, "n=%d faces", n)
		assert.Empty(t, checkConsistency(g, true))
	}
}

// TestNearest_CompleteGraphProperty repeats the complete-graph check for arbitrary n.
func TestNearest_CompleteGraphProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	properties := gopter.NewProperties(parameters)

	properties.Property("k = n-1 connects every pair", prop.ForAll(
		func(n int) bool {
			g := connect.Nearest(layoutNodes(n, 3), connect.WithNeighbors(n-1))
			return len(g.Edges) == n*(n-1)/2
		},
		gen.IntRange(2, 24),
	))

	properties.TestingRun(t)
}

// TestNearest_Clamp verifies that k outside [1, n-1] is clamped, not rejected.
func TestNearest_Clamp(t *testing.T) {
	nodes := layoutNodes(6, 5)
	assert.Equal(t,
		connect.Nearest(nodes, connect.WithNeighbors(1)),
		connect.Nearest(nodes, connect.WithNeighbors(-7)),
		"k<1 clamps to 1")
	assert.Equal(t,
		connect.Nearest(nodes, connect.WithNeighbors(5)),
		connect.Nearest(nodes, connect.WithNeighbors(500)),
		"k>n-1 clamps to n-1")
}

// TestNearest_SymmetricAdjacency: node p2 picks p1 while p1 picks p0,
// yet the edge p1—p2 exists. No triangle closes, so no faces.
func TestNearest_SymmetricAdjacency(t *testing.T) {
	g := connect.Nearest(lineNodes(0, 1, 3, 6), connect.WithNeighbors(1))

	keys := make([]core.EdgeKey, 0, len(g.Edges))
	for _, e := range g.Edges {
		keys = append(keys, e.Key())
	}
	assert.Equal(t, []core.EdgeKey{{A: "p0", B: "p1"}, {A: "p1", B: "p2"}, {A: "p2", B: "p3"}}, keys)
	assert.Empty(t, g.Faces, "connected but unfilled is a valid result")
}

// TestNearest_TieBreakByID: equidistant candidates resolve to the smaller ID.
func TestNearest_TieBreakByID(t *testing.T) {
	nodes := []core.Node{
		{ID: "c", Position: r3.Vec{X: 0}},
		{ID: "b", Position: r3.Vec{X: 1}},
		{ID: "a", Position: r3.Vec{X: -1}},
	}
	g := connect.Nearest(nodes, connect.WithNeighbors(1))
	// c picks a (tie with b, a < b); a and b both pick c.
	assert.Len(t, g.Edges, 2)
	assert.Equal(t, core.EdgeKey{A: "a", B: "c"}, g.Edges[0].Key())
	assert.Equal(t, core.EdgeKey{A: "b", B: "c"}, g.Edges[1].Key())
}

// TestNearest_CoincidentNodes: zero-distance neighbors are not an error.
func TestNearest_CoincidentNodes(t *testing.T) {
	nodes := []core.Node{
		{ID: "a", Position: r3.Vec{X: 1}},
		{ID: "b", Position: r3.Vec{X: 1}},
		{ID: "c", Position: r3.Vec{X: 1}},
		{ID: "d", Position: r3.Vec{X: 4}},
	}
	var g connect.Graph
	assert.NotPanics(t, func() { g = connect.Nearest(nodes, connect.WithNeighbors(2)) })
	assert.Empty(t, checkConsistency(g, false))
	assert.NotEmpty(t, g.Faces)
}

// TestNearest_FacesAreClosedTriangles ensures every face is an adjacency triangle
// and no face is emitted twice.
func TestNearest_FacesAreClosedTriangles(t *testing.T) {
	g := connect.Nearest(layoutNodes(30, 5), connect.WithNeighbors(4))
	assert.Empty(t, checkConsistency(g, false))

	seen := make(map[core.FaceKey]bool)
	for _, f := range g.Faces {
		assert.False(t, seen[f.NodeIDs], "duplicate face %v", f.NodeIDs)
		seen[f.NodeIDs] = true
	}
}

// TestNearest_PermutationInvariant checks input order does not matter.
func TestNearest_PermutationInvariant(t *testing.T) {
	nodes := layoutNodes(20, 5)
	want := connect.Nearest(nodes, connect.WithNeighbors(3))
	for seed := int64(1); seed <= 5; seed++ {
		assert.Equal(t, want, connect.Nearest(shuffled(nodes, seed), connect.WithNeighbors(3)))
	}
}
