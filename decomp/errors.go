// SPDX-License-Identifier: MIT

// Package decomp: sentinel error set.
// Shape and symmetry violations reuse the matrix package sentinels so a
// caller can match either layer with errors.Is; decomp adds only the
// sentinels for its own contracts.

package decomp

import (
	"errors"
	"fmt"
)

var (
	// ErrBadComponents is returned by PCA when the requested component count
	// k is outside [1, features].
	ErrBadComponents = errors.New("decomp: component count out of range")
)

// decompErrorf wraps err with an operation tag, preserving the original error
// via %w. Use only when err != nil.
func decompErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Operation name constants for unified error wrapping; no magic strings.
const (
	opDet      = "Det"
	opLU       = "LU"
	opDetViaLU = "DetViaLU"
	opEigen    = "JacobiEigen"
	opSortEig  = "SortEigenDesc"
	opSVD      = "SVD"
	opPCA      = "PCA"
)
