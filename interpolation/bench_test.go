package interpolation_test

import (
	"math"
	"testing"

	"github.com/avdeitch/cmath/interpolation"
)

// benchmarkBuild measures construction over n uniform nodes.
func benchmarkBuild(b *testing.B, n int) {
	xs := interpolation.Linspace(-1, 1, n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := interpolation.Interpolate(math.Sin, xs); err != nil {
			b.Fatalf("Interpolate failed: %v", err)
		}
	}
}

// benchmarkEvaluate measures a single off-node evaluation on a built
// n-node interpolant.
func benchmarkEvaluate(b *testing.B, n int) {
	poly, err := interpolation.Interpolate(math.Sin, interpolation.Linspace(-1, 1, n))
	if err != nil {
		b.Fatalf("Interpolate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = poly.Evaluate(0.123456)
	}
}

// BenchmarkBuild_10 benchmarks construction with 10 nodes.
func BenchmarkBuild_10(b *testing.B) { benchmarkBuild(b, 10) }

// BenchmarkBuild_100 benchmarks construction with 100 nodes.
func BenchmarkBuild_100(b *testing.B) { benchmarkBuild(b, 100) }

// BenchmarkEvaluate_10 benchmarks one evaluation on a 10-node interpolant.
func BenchmarkEvaluate_10(b *testing.B) { benchmarkEvaluate(b, 10) }

// BenchmarkEvaluate_100 benchmarks one evaluation on a 100-node interpolant.
func BenchmarkEvaluate_100(b *testing.B) { benchmarkEvaluate(b, 100) }
