package sphere_test

import (
	"testing"

	"github.com/katalvlaran/capsphere/sphere"
)

// BenchmarkLayout measures the spiral layout for a realistic node count.
// Complexity: O(n)
func BenchmarkLayout(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = sphere.Layout(64)
	}
}
