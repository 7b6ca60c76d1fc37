// Package decomp_test contains unit tests for PCA.
package decomp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/decomp"
	"github.com/katalvlaran/lvlinalg/matrix"
)

// TestPCA_ReferenceSample pins the reference scenario: the 10×3 sample with
// k=2 yields 3×2 orthonormal components and a 10×2 projection.
func TestPCA_ReferenceSample(t *testing.T) {
	x := fixtureX(t)

	res, err := decomp.PCA(x, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Components.Rows())
	assert.Equal(t, 2, res.Components.Cols())
	assert.Equal(t, 10, res.Projected.Rows())
	assert.Equal(t, 2, res.Projected.Cols())
	assert.Len(t, res.Mean, 3)
	assert.Len(t, res.ExplainedVarianceRatio, 2)

	requireOrthonormalCols(t, res.Components, 1e-6)

	// ratios: non-increasing, within [0,1], summing to at most 1
	sum := 0.0
	for i, r := range res.ExplainedVarianceRatio {
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 1.0)
		if i > 0 {
			assert.GreaterOrEqual(t, res.ExplainedVarianceRatio[i-1], r)
		}
		sum += r
	}
	assert.LessOrEqual(t, sum, 1.0+1e-9)

	// the sample is strongly correlated: the first direction dominates
	assert.Greater(t, res.ExplainedVarianceRatio[0], 0.5)
}

func TestPCA_MeanCentering(t *testing.T) {
	x := fixtureX(t)

	res, err := decomp.PCA(x, 1)
	require.NoError(t, err)

	// means computed column-wise over the sample
	for j := 0; j < 3; j++ {
		want := 0.0
		for i := 0; i < 10; i++ {
			v, aerr := x.At(i, j)
			require.NoError(t, aerr)
			want += v
		}
		want /= 10
		assert.InDelta(t, want, res.Mean[j], 1e-12, "mean of feature %d", j)
	}

	// projections of centered data average to ~0 per component
	for j := 0; j < res.Projected.Cols(); j++ {
		sum := 0.0
		for i := 0; i < res.Projected.Rows(); i++ {
			v, aerr := res.Projected.At(i, j)
			require.NoError(t, aerr)
			sum += v
		}
		assert.InDelta(t, 0.0, sum/10, 1e-8, "projected component %d must be centered", j)
	}
}

func TestPCA_FullRankRecovery(t *testing.T) {
	x := fixtureX(t)

	// k = d keeps everything; ratios then sum to ~1
	res, err := decomp.PCA(x, 3)
	require.NoError(t, err)

	sum := 0.0
	for _, r := range res.ExplainedVarianceRatio {
		sum += r
	}
	assert.InDelta(t, 1.0, sum, 1e-9, "full retention must explain all variance")
}

func TestPCA_BadComponentCount(t *testing.T) {
	x := fixtureX(t)

	_, err := decomp.PCA(x, 0)
	assert.ErrorIs(t, err, decomp.ErrBadComponents)
	_, err = decomp.PCA(x, 4)
	assert.ErrorIs(t, err, decomp.ErrBadComponents)
	_, err = decomp.PCA(nil, 1)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestPCA_ZeroVariance pins the degenerate denominator policy: constant
// data has no variance, and ratios collapse to zero instead of NaN.
func TestPCA_ZeroVariance(t *testing.T) {
	x := mustFromRows(t, [][]float64{
		{1, 2},
		{1, 2},
		{1, 2},
	})

	res, err := decomp.PCA(x, 1)
	require.NoError(t, err)
	require.Len(t, res.ExplainedVarianceRatio, 1)
	assert.False(t, math.IsNaN(res.ExplainedVarianceRatio[0]), "ratio must not be NaN")
	assert.Equal(t, 0.0, res.ExplainedVarianceRatio[0])
}

func TestPCA_InputUntouched(t *testing.T) {
	x := fixtureX(t)
	orig := x.Clone()

	_, err := decomp.PCA(x, 2)
	require.NoError(t, err)
	requireClose(t, x, orig, 0, "PCA must not mutate its input")
}

// TestPCA_Idempotent verifies seed-matched repeatability end to end.
func TestPCA_Idempotent(t *testing.T) {
	x := fixtureX(t)

	r1, err := decomp.PCA(x, 2)
	require.NoError(t, err)
	r2, err := decomp.PCA(x, 2)
	require.NoError(t, err)

	assert.Equal(t, r1.Mean, r2.Mean)
	assert.Equal(t, r1.ExplainedVarianceRatio, r2.ExplainedVarianceRatio)
	requireClose(t, r1.Components, r2.Components, 0, "components must be bit-identical")
	requireClose(t, r1.Projected, r2.Projected, 0, "projections must be bit-identical")
}
