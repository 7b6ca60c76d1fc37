// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test helpers: small deterministic
// constructors that fail the test on allocation errors so individual cases
// stay focused on the behavior under test.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)
	return m
}

// mustFromRows builds a *Dense from row data or fails the test.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err, "NewDenseFromRows")
	return m
}
