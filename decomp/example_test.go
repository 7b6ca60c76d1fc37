package decomp_test

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/decomp"
	"github.com/katalvlaran/lvlinalg/matrix"
)

// ExampleDetViaLU shows the two determinant routes agreeing on the
// reference matrix.
func ExampleDetViaLU() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{2, 1, 3},
		{4, 1, 6},
		{1, -2, 0},
	})

	cofactor, _ := decomp.Det(a)
	viaLU, _ := decomp.DetViaLU(a)

	fmt.Printf("cofactor: %.4f\n", cofactor)
	fmt.Printf("via LU:   %.4f\n", viaLU)
	// Output:
	// cofactor: 3.0000
	// via LU:   3.0000
}

// ExampleJacobiEigen diagonalizes a symmetric positive-definite matrix and
// verifies the reconstruction identity.
func ExampleJacobiEigen() {
	b, _ := matrix.NewDenseFromRows([][]float64{
		{4, 1, 1},
		{1, 3, 0},
		{1, 0, 2},
	})

	res, _ := decomp.JacobiEigen(b)
	sorted, _ := decomp.SortEigenDesc(res)

	fmt.Println("converged:", sorted.Converged)
	fmt.Printf("largest eigenvalue: %.2f\n", sorted.Values[0])

	// rebuild B from Q·diag·Qᵀ and compare
	n := len(sorted.Values)
	lam, _ := matrix.NewDense(n, n)
	for i, v := range sorted.Values {
		_ = lam.Set(i, i, v)
	}
	ql, _ := matrix.Mul(sorted.Vectors, lam)
	qt, _ := matrix.Transpose(sorted.Vectors)
	recon, _ := matrix.Mul(ql, qt)
	ok, _ := matrix.AllClose(recon, b, 1e-7)
	fmt.Println("reconstructs:", ok)
	// Output:
	// converged: true
	// largest eigenvalue: 4.88
	// reconstructs: true
}

// ExamplePCA projects the reference 10×3 sample onto its two leading
// principal directions.
func ExamplePCA() {
	x, _ := matrix.NewDenseFromRows([][]float64{
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

	res, _ := decomp.PCA(x, 2)

	fmt.Printf("components: %dx%d\n", res.Components.Rows(), res.Components.Cols())
	fmt.Printf("projected:  %dx%d\n", res.Projected.Rows(), res.Projected.Cols())
	// Output:
	// components: 3x2
	// projected:  10x2
}
