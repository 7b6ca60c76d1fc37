// Package decomp_test cross-checks the from-scratch decompositions against
// gonum, the ecosystem's reference implementation — the same role numpy
// plays for the original algorithms.
package decomp_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlinalg/decomp"
	"github.com/katalvlaran/lvlinalg/matrix"
)

// toGonum converts a *matrix.Dense into a *mat.Dense.
func toGonum(t *testing.T, m *matrix.Dense) *mat.Dense {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			data[i*c+j] = v
		}
	}
	return mat.NewDense(r, c, data)
}

func TestOracle_Determinant(t *testing.T) {
	rng := rand.New(rand.NewSource(31))

	for n := 1; n <= 5; n++ {
		a := randWellConditioned(t, rng, n)
		want := mat.Det(toGonum(t, a))

		got, err := decomp.DetViaLU(a)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-6*math.Max(math.Abs(want), 1.0),
			"LU determinant vs gonum at n=%d", n)

		got, err = decomp.Det(a)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-6*math.Max(math.Abs(want), 1.0),
			"cofactor determinant vs gonum at n=%d", n)
	}
}

func TestOracle_Eigenvalues(t *testing.T) {
	b := fixtureB(t)

	// gonum eigendecomposition of the symmetric fixture
	sym := mat.NewSymDense(3, []float64{
		4, 1, 1,
		1, 3, 0,
		1, 0, 2,
	})
	var es mat.EigenSym
	require.True(t, es.Factorize(sym, false), "gonum factorization must succeed")
	want := es.Values(nil)
	sort.Float64s(want)

	res, err := decomp.JacobiEigen(b)
	require.NoError(t, err)
	got := append([]float64(nil), res.Values...)
	sort.Float64s(got)

	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-8, "eigenvalue %d vs gonum", i)
	}
}

func TestOracle_SingularValues(t *testing.T) {
	rng := rand.New(rand.NewSource(37))

	for trial := 0; trial < 5; trial++ {
		m := 2 + rng.Intn(4)
		n := 2 + rng.Intn(4)
		a := randMatrix(t, rng, m, n)

		var svd mat.SVD
		require.True(t, svd.Factorize(toGonum(t, a), mat.SVDNone),
			"gonum SVD must succeed")
		want := svd.Values(nil) // descending, length min(m,n)

		res, err := decomp.SVD(a)
		require.NoError(t, err)
		got := res.SingularValues()

		require.Len(t, got, len(want))
		for i := range want {
			assert.InDelta(t, want[i], got[i], 1e-7,
				"singular value %d vs gonum (%dx%d)", i, m, n)
		}
	}
}
