package core_test

import (
	"fmt"

	"github.com/katalvlaran/capsphere/core"
)

// ExampleAdjacency closes a triangle over a symmetric adjacency.
func ExampleAdjacency() {
	g := core.NewAdjacency(3)
	g.Connect("A", "B")
	g.Connect("B", "C")
	g.Connect("C", "A")

	for _, e := range g.Edges() {
		fmt.Println(e.A, e.B, g.Common(e.A, e.B))
	}

	// Output:
	// A B [C]
	// A C [B]
	// B C [A]
}

// ExampleNewFaceKey shows canonical triangle identity.
func ExampleNewFaceKey() {
	k := core.NewFaceKey("storage", "auth", "search")
	fmt.Println(k, k.Edges()[2])

	// Output:
	// [auth search storage] {auth storage}
}
