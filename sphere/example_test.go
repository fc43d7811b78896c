package sphere_test

import (
	"fmt"

	"github.com/katalvlaran/capsphere/sphere"
)

// ExampleLayout places a tetrahedron and prints its tip height.
func ExampleLayout() {
	g := sphere.DefaultGeometry()
	for i, a := range sphere.Layout(4) {
		p := sphere.TipPosition(a, 1, g)
		fmt.Printf("%d: y=%.3f\n", i, p.Y)
	}

	// Output:
	// 0: y=6.000
	// 1: y=-2.000
	// 2: y=-2.000
	// 3: y=-2.000
}
