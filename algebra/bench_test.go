package algebra_test

import (
	"testing"

	"github.com/avdeitch/cmath/algebra"
)

// benchMatrix builds an n×n matrix with predictable contents.
func benchMatrix(b *testing.B, n int) *algebra.Matrix {
	b.Helper()
	m, err := algebra.New(n, n)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, float64(i-j)) // deterministic fill
		}
	}

	return m
}

// benchmarkMul runs the matrix product on two n×n operands.
func benchmarkMul(b *testing.B, n int) {
	x := benchMatrix(b, n)
	y := benchMatrix(b, n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := x.Mul(y); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}

// BenchmarkMul_Small benchmarks a 16×16 product.
func BenchmarkMul_Small(b *testing.B) { benchmarkMul(b, 16) }

// BenchmarkMul_Medium benchmarks a 128×128 product.
func BenchmarkMul_Medium(b *testing.B) { benchmarkMul(b, 128) }

// BenchmarkAdd_Medium benchmarks a 256×256 element-wise sum.
func BenchmarkAdd_Medium(b *testing.B) {
	x := benchMatrix(b, 256)
	y := benchMatrix(b, 256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Add(y); err != nil {
			b.Fatalf("Add failed: %v", err)
		}
	}
}

// BenchmarkNorm_Medium benchmarks the infinity norm on 256×256.
func BenchmarkNorm_Medium(b *testing.B) {
	x := benchMatrix(b, 256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Norm()
	}
}
