package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// benchDense builds an n×n matrix with reproducible pseudo-random content.
func benchDense(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense: %v", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = m.Set(i, j, rng.NormFloat64()); err != nil {
				b.Fatalf("Set: %v", err)
			}
		}
	}
	return m
}

func benchmarkMul(b *testing.B, n int) {
	x := benchDense(b, n)
	y := benchDense(b, n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(x, y); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}

// BenchmarkMul_Small exercises the multiplication kernel on 16×16 operands.
func BenchmarkMul_Small(b *testing.B) { benchmarkMul(b, 16) }

// BenchmarkMul_Medium exercises the multiplication kernel on 64×64 operands.
func BenchmarkMul_Medium(b *testing.B) { benchmarkMul(b, 64) }

// BenchmarkTranspose measures a full materialized transpose on 64×64 input.
func BenchmarkTranspose(b *testing.B) {
	x := benchDense(b, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Transpose(x); err != nil {
			b.Fatalf("Transpose failed: %v", err)
		}
	}
}
