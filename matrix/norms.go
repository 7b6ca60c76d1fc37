// SPDX-License-Identifier: MIT

// Package matrix: norms and closeness helpers.
// These are the measures the iterative decompositions converge against:
// Frobenius norms (whole matrix and off-diagonal part), vector dot products
// and normalization, and tolerance-gated matrix comparison.

package matrix

import "math"

// VecNormFloor is the threshold below which NormalizeVec treats a vector as
// numerically zero and returns it unscaled instead of dividing by noise.
const VecNormFloor = 1e-10

// FrobeniusNorm returns ‖m‖_F = sqrt(Σ m[i,j]²).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func FrobeniusNorm(m *Dense) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf("FrobeniusNorm", err)
	}

	var sum float64
	for _, v := range m.data {
		sum += v * v
	}

	return math.Sqrt(sum), nil
}

// OffDiagNorm returns the Frobenius norm of the off-diagonal part of a square
// matrix — the quantity the Jacobi iteration drives to zero.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: O(n²).
func OffDiagNorm(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf("OffDiagNorm", err)
	}

	var sum, v float64
	n := m.r
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v = m.data[i*n+j]
			sum += v * v
		}
	}

	return math.Sqrt(sum), nil
}

// AllClose reports whether ‖a−b‖_F ≤ tol. It is the canonical reconstruction
// check for the decomposition invariants (PA≈LU, A≈QΛQᵀ, A≈UΣVᵀ).
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func AllClose(a, b *Dense, tol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	var sum, d float64
	for idx := 0; idx < len(a.data); idx++ {
		d = a.data[idx] - b.data[idx]
		sum += d * d
	}

	return math.Sqrt(sum) <= tol, nil
}

// Dot returns the inner product of two equal-length vectors.
// Errors: ErrNilMatrix (nil argument), ErrDimensionMismatch.
// Complexity: O(n).
func Dot(x, y []float64) (float64, error) {
	if err := ValidateVecLen(x, len(x)); err != nil {
		return 0, matrixErrorf("Dot", err)
	}
	if err := ValidateVecLen(y, len(x)); err != nil {
		return 0, matrixErrorf("Dot", err)
	}

	sum := ZeroSum
	for i := range x {
		sum += x[i] * y[i]
	}

	return sum, nil
}

// VecNorm returns the Euclidean norm of v. Complexity: O(n).
func VecNorm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// NormalizeVec returns a unit-length copy of v. A vector with norm below
// VecNormFloor is returned as an unscaled copy: scaling numerical zero would
// only amplify noise.
// Complexity: O(n).
func NormalizeVec(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	n := VecNorm(v)
	if n < VecNormFloor {
		return out
	}
	for i := range out {
		out[i] /= n
	}

	return out
}
