// Package decomp_test contains shared test fixtures and helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures (the homework matrices A and B,
//     reproducible random matrices) for the decomposition tests.
//   - Centralize the reconstruction checks every decomposition is judged by.

package decomp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// fixtureA is the general 3×3 test matrix; det(A) = 3 by direct expansion.
func fixtureA(t *testing.T) *matrix.Dense {
	t.Helper()
	return mustFromRows(t, [][]float64{
		{2, 1, 3},
		{4, 1, 6},
		{1, -2, 0},
	})
}

// fixtureB is the symmetric positive-definite 3×3 test matrix
// (leading minors 4, 11, 19 are all positive).
func fixtureB(t *testing.T) *matrix.Dense {
	t.Helper()
	return mustFromRows(t, [][]float64{
		{4, 1, 1},
		{1, 3, 0},
		{1, 0, 2},
	})
}

// fixtureX is the 10×3 PCA sample from the reference demo.
func fixtureX(t *testing.T) *matrix.Dense {
	t.Helper()
	return mustFromRows(t, [][]float64{
		{2.5, 2.4, 0.5},
		{0.5, 0.7, 1.2},
		{2.2, 2.9, 0.3},
		{1.9, 2.2, 0.7},
		{3.1, 3.0, 0.2},
		{2.3, 2.7, 0.4},
		{2.0, 1.6, 0.9},
		{1.0, 1.1, 1.5},
		{1.5, 1.6, 1.0},
		{1.1, 0.9, 1.8},
	})
}

func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err, "NewDenseFromRows")
	return m
}

// randMatrix builds an m×n matrix with entries drawn from rng, so every test
// that needs random data stays reproducible under a fixed seed.
func randMatrix(t *testing.T, rng *rand.Rand, m, n int) *matrix.Dense {
	t.Helper()
	out, err := matrix.NewDense(m, n)
	require.NoError(t, err)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, out.Set(i, j, rng.NormFloat64()))
		}
	}
	return out
}

// randWellConditioned builds an n×n matrix that is comfortably non-singular:
// random entries plus n on the diagonal (diagonally dominant).
func randWellConditioned(t *testing.T, rng *rand.Rand, n int) *matrix.Dense {
	t.Helper()
	m := randMatrix(t, rng, n, n)
	for i := 0; i < n; i++ {
		v, err := m.At(i, i)
		require.NoError(t, err)
		require.NoError(t, m.Set(i, i, v+float64(n)))
	}
	return m
}

// requireClose asserts ‖got−want‖_F ≤ tol.
func requireClose(t *testing.T, got, want *matrix.Dense, tol float64, msg string, args ...any) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, tol)
	require.NoError(t, err)
	require.Truef(t, ok, msg, args...)
}

// requireOrthonormalCols asserts QᵀQ ≈ I within tol.
func requireOrthonormalCols(t *testing.T, q *matrix.Dense, tol float64) {
	t.Helper()
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	qtq, err := matrix.Mul(qt, q)
	require.NoError(t, err)
	id, err := matrix.Identity(q.Cols())
	require.NoError(t, err)
	requireClose(t, qtq, id, tol, "columns must be orthonormal")
}
