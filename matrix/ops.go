// SPDX-License-Identifier: MIT

// Package matrix: shared linear-algebra kernels.
// All kernels validate through the canonical validators, allocate exactly one
// result matrix, never mutate their operands, and traverse in a fixed order
// so results are stable across runs.

package matrix

// ZeroSum is the initial accumulator value for dot products and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping; no magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As still match the underlying sentinel. Call only with
// a non-nil err; wrapping nil would fabricate a non-nil error.
func matrixErrorf(tag string, err error) error {
	return validatorErrorf(tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Shared by Add and Sub to keep validation and allocation in one place.
// Determinism: single flat loop 0..n-1. Complexity: O(r*c).
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	// Validate shapes match
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result and fill in one deterministic pass
	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := 0; idx < len(res.data); idx++ {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Uses the cache-friendly i→k→j order over the flat row-major buffers and
// skips zero A[i,k] entries to avoid useless multiplies.
// Errors: ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
// Complexity: O(r*n*c) time, O(r*c) space.
func Mul(a, b *Dense) (*Dense, error) {
	// Validate inner dimensions via the canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Row-major multiplication: a.data[i*a.c+k], b.data[k*b.c+j]
	var i, j, k int
	var rowA, rowB, rowR int
	var av float64
	for i = 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result with flipped dimensions
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// data[i*c+j] → res.data[j*r+i]
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// NaN/Inf in alpha propagate; the original matrix is never mutated.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := 0; idx < len(res.data); idx++ {
		res.data[idx] = m.data[idx] * alpha
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x of length m.Cols().
// Determinism: one flat pass per row in fixed i→j order.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time, O(r) space for y.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, m.r)
	var i, j, base int
	var acc float64
	for i = 0; i < m.r; i++ {
		acc = ZeroSum
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}
