package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// The demo matrices. A is a general 3×3 with a forced pivot swap, B is
// symmetric positive definite, and sampleX is a 10×3 dataset whose first
// two features move together while the third moves against them.

func demoA() *matrix.Dense {
	m, err := matrix.NewDenseFromRows([][]float64{
		{2, 1, 3},
		{4, 1, 6},
		{1, -2, 0},
	})
	if err != nil {
		panic(err)
	}
	return m
}

func demoB() *matrix.Dense {
	m, err := matrix.NewDenseFromRows([][]float64{
		{4, 1, 1},
		{1, 3, 0},
		{1, 0, 2},
	})
	if err != nil {
		panic(err)
	}
	return m
}

func sampleX() *matrix.Dense {
	m, err := matrix.NewDenseFromRows([][]float64{
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
	if err != nil {
		panic(err)
	}
	return m
}

// formatDense renders m row by row with a fixed label and width, e.g.
//
//	U =
//	  [  4.0000   1.0000   6.0000]
func formatDense(label string, m *matrix.Dense) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s =\n", label)
	for i := 0; i < m.Rows(); i++ {
		b.WriteString("  [")
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			fmt.Fprintf(&b, "%9.4f", v)
		}
		b.WriteString("]\n")
	}
	return b.String()
}

func formatVec(label string, v []float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s = [", label)
	for _, x := range v {
		fmt.Fprintf(&b, "%9.4f", x)
	}
	b.WriteString("]")
	return b.String()
}
