package matrix_test

import (
	"testing"

	"github.com/katalvlaran/pagerank/matrix"
)

// benchmarkMul squares a deterministic n×n matrix b.N times.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkMul(b *testing.B, n int) {
	m, err := matrix.Random(n, 1)
	if err != nil {
		b.Fatalf("Random failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = matrix.Mul(m, m); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}

// BenchmarkMul_Small benchmarks the multiply kernel on a 50×50 matrix.
func BenchmarkMul_Small(b *testing.B) { benchmarkMul(b, 50) }

// BenchmarkMul_Medium benchmarks the multiply kernel on a 200×200 matrix.
func BenchmarkMul_Medium(b *testing.B) { benchmarkMul(b, 200) }

// BenchmarkMul_Large benchmarks the multiply kernel on a 500×500 matrix.
func BenchmarkMul_Large(b *testing.B) { benchmarkMul(b, 500) }

// BenchmarkColumnSums benchmarks column accumulation on a 500×500 matrix.
func BenchmarkColumnSums(b *testing.B) {
	m, err := matrix.Random(500, 1)
	if err != nil {
		b.Fatalf("Random failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = matrix.ColumnSums(m); err != nil {
			b.Fatalf("ColumnSums failed: %v", err)
		}
	}
}
