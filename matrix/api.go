// SPDX-License-Identifier: MIT
// Package matrix: thin facades over the canonical kernels.

package matrix

import "github.com/katalvlaran/cipherlab/modular"

// DeterminantMod returns det(m) reduced into [0, mod).
func DeterminantMod(m Matrix, mod int) (int, error) {
	if err := ValidateModulus(mod); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	det, err := Determinant(m)
	if err != nil {
		return 0, err
	}

	return modular.Mod(det, mod), nil
}

// IsIdentityMod reports whether m ≡ I (mod mod). Non-square matrices are never identity.
func IsIdentityMod(m Matrix, mod int) bool {
	if ValidateSquare(m) != nil || ValidateModulus(mod) != nil {
		return false
	}
	r, err := Reduce(m, mod)
	if err != nil {
		return false
	}
	I, _ := NewIdentity(m.Rows())

	return r.Equal(I)
}
