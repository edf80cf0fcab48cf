// SPDX-License-Identifier: MIT

// Package matrix - exact integer linear algebra with modular reduction.
//
// Purpose:
//   - Transpose, Minor, Determinant, Cofactors, Adjugate over int (no float drift).
//   - Reduce/MulMod/MulVecMod/InverseMod for arithmetic in Z/mZ.
//
// Determinism & Policy:
//   - Fixed i→j→k loop orders; every reduction goes through modular.Mod so
//     negative intermediates land in [0, m).
//   - Inputs are never mutated; each kernel allocates a fresh *Dense.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/cipherlab/modular"
)

// Transpose returns mᵀ.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense(m.Cols(), m.Rows())
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			out.data[j*out.c+i] = v
		}
	}

	return out, nil
}

// Minor returns the (n-1)×(n-1) submatrix of a square m with row and col removed.
// Stage 1 (Validate): square, n >= 2, indices in range.
// Stage 2 (Execute): copy the remaining cells in row-major order.
// Complexity: O(n²).
func Minor(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	n := m.Rows()
	if n < 2 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	if row < 0 || row >= n || col < 0 || col >= n {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	out, _ := NewDense(n-1, n-1) // n-1 >= 1 already checked
	k := 0
	for i := 0; i < n; i++ {
		if i == row {
			continue
		}
		for j := 0; j < n; j++ {
			if j == col {
				continue
			}
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMinor, err)
			}
			out.data[k] = v
			k++
		}
	}

	return out, nil
}

// Determinant returns det(m) by cofactor expansion along the first row.
//
// Implementation:
//   - n == 1: the single entry.
//   - n == 2: ad − bc.
//   - n >= 3: Σ_j (−1)^j · m[0][j] · det(Minor(m, 0, j)).
//
// For the 3×3 Hill key this is exactly the textbook formula
//
//	a(ei − fh) − b(di − fg) + c(dh − eg)
//
// evaluated in int, so callers can reduce the exact value with modular.Mod.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: O(n!) time; n is tiny for every caller.
func Determinant(m Matrix) (int, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	det, err := determinant(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det, nil
}

// determinant assumes a validated square matrix.
func determinant(m Matrix) (int, error) {
	n := m.Rows()
	switch n {
	case 1:
		return m.At(0, 0)
	case 2:
		a, _ := m.At(0, 0)
		b, _ := m.At(0, 1)
		c, _ := m.At(1, 0)
		d, _ := m.At(1, 1)

		return a*d - b*c, nil
	}

	det := 0
	sign := 1
	for j := 0; j < n; j++ {
		a, err := m.At(0, j)
		if err != nil {
			return 0, err
		}
		if a != 0 {
			minor, err := Minor(m, 0, j)
			if err != nil {
				return 0, err
			}
			sub, err := determinant(minor)
			if err != nil {
				return 0, err
			}
			det += sign * a * sub
		}
		sign = -sign // checkerboard along row 0: + − + ...
	}

	return det, nil
}

// Cofactors returns the cofactor matrix C with C[i][j] = (−1)^(i+j) · det(Minor(m, i, j)).
// A 1×1 matrix has the single cofactor 1 by convention.
// Complexity: O(n² · cost(det of order n−1)).
func Cofactors(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	n := m.Rows()
	out, _ := NewDense(n, n)
	if n == 1 {
		out.data[0] = 1

		return out, nil
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			minor, err := Minor(m, i, j)
			if err != nil {
				return nil, matrixErrorf(opCofactors, err)
			}
			d, err := determinant(minor)
			if err != nil {
				return nil, matrixErrorf(opCofactors, err)
			}
			if (i+j)%2 == 1 {
				d = -d
			}
			out.data[i*n+j] = d
		}
	}

	return out, nil
}

// Adjugate returns adj(m) = Cofactors(m)ᵀ.
func Adjugate(m Matrix) (*Dense, error) {
	c, err := Cofactors(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := Transpose(c)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// Reduce returns a copy of m with every entry mapped into [0, mod).
// Complexity: O(r*c).
func Reduce(m Matrix, mod int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}
	if err := ValidateModulus(mod); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opReduce, err)
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opReduce, err)
			}
			out.data[i*out.c+j] = modular.Mod(v, mod)
		}
	}

	return out, nil
}

// MulMod returns (a · b) mod m.
// Stage 1 (Validate): non-nil, a.Cols == b.Rows, mod >= 2.
// Stage 2 (Execute): classic i→j→k triple loop, reducing each output cell once.
// Complexity: O(r·k·c).
func MulMod(a, b Matrix, mod int) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMulMod, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMulMod, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMulMod, ErrDimensionMismatch)
	}
	if err := ValidateModulus(mod); err != nil {
		return nil, matrixErrorf(opMulMod, err)
	}
	out, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMulMod, err)
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			acc := 0
			for k := 0; k < a.Cols(); k++ {
				av, err := a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMulMod, err)
				}
				bv, err := b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMulMod, err)
				}
				acc += av * bv
			}
			out.data[i*out.c+j] = modular.Mod(acc, mod)
		}
	}

	return out, nil
}

// MulVecMod computes y = (m · x) mod mod for a column vector x.
// y[i] = Σ_k m[i][k]·x[k], reduced into [0, mod).
// Complexity: O(r*c).
func MulVecMod(m Matrix, x []int, mod int) ([]int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVecMod, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMulVecMod, err)
	}
	if err := ValidateModulus(mod); err != nil {
		return nil, matrixErrorf(opMulVecMod, err)
	}
	y := make([]int, m.Rows())
	if d, ok := m.(*Dense); ok {
		for i := 0; i < d.r; i++ {
			acc, base := 0, i*d.c
			for k := 0; k < d.c; k++ {
				acc += d.data[base+k] * x[k]
			}
			y[i] = modular.Mod(acc, mod)
		}

		return y, nil
	}
	for i := 0; i < m.Rows(); i++ {
		acc := 0
		for k := 0; k < m.Cols(); k++ {
			v, err := m.At(i, k)
			if err != nil {
				return nil, matrixErrorf(opMulVecMod, err)
			}
			acc += v * x[k]
		}
		y[i] = modular.Mod(acc, mod)
	}

	return y, nil
}

// InverseMod returns A⁻¹ over Z/modZ.
//
// Implementation:
//   - Stage 1: validate square, mod >= 2.
//   - Stage 2: d = det(A) mod m; dInv = modular.Inverse(d, m) or ErrNotInvertible.
//   - Stage 3: adj = Cofactors(A)ᵀ; result[i][j] = (adj[i][j] · dInv) mod m.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrBadModulus.
//   - ErrNotInvertible (also matches modular.ErrNoInverse) when gcd(det, m) != 1.
//
// Complexity: dominated by Cofactors.
func InverseMod(m Matrix, mod int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}
	if err := ValidateModulus(mod); err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}
	det, err := determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}
	d := modular.Mod(det, mod)
	dInv, err := modular.Inverse(d, mod)
	if err != nil {
		return nil, matrixErrorf(opInverseMod, fmt.Errorf("det ≡ %d (mod %d): %w: %w", d, mod, ErrNotInvertible, err))
	}
	adj, err := Adjugate(m)
	if err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}
	for k, v := range adj.data {
		adj.data[k] = modular.Mod(modular.Mod(v, mod)*dInv, mod)
	}

	return adj, nil
}
