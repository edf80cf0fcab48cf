// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; algorithms wrap these with an
// operation tag (see matrixErrorf) and callers match with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNonRectangular indicates row slices of differing lengths.
	ErrNonRectangular = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// or a non-square matrix where a square one is required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadModulus indicates a modulus smaller than 2.
	ErrBadModulus = errors.New("matrix: modulus must be >= 2")

	// ErrNotInvertible indicates that the determinant has no inverse modulo m.
	ErrNotInvertible = errors.New("matrix: matrix is not invertible modulo m")
)

// operation tags used by matrixErrorf
const (
	opTranspose   = "Transpose"
	opMinor       = "Minor"
	opDeterminant = "Determinant"
	opCofactors   = "Cofactors"
	opAdjugate    = "Adjugate"
	opReduce      = "Reduce"
	opMulMod      = "MulMod"
	opMulVecMod   = "MulVecMod"
	opInverseMod  = "InverseMod"
)

// matrixErrorf prefixes err with an operation tag; err must be non-nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
