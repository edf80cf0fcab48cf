// SPDX-License-Identifier: MIT

package hill

import (
	"fmt"

	"github.com/katalvlaran/cipherlab/alphabet"
	"github.com/katalvlaran/cipherlab/matrix"
)

// KeyMatrix builds the forward 3×3 matrix for key.
//
// Implementation:
//   - Stage 1: parse key (a..z only).
//   - Stage 2: cell i takes key[i] while i < len(key); remaining cells take
//     a, b, c, ... from a counter that starts at 'a'.
//
// Letters past the ninth are ignored. Repeats are kept.
func KeyMatrix(key string) (*matrix.Dense, error) {
	letters, err := alphabet.Parse(key)
	if err != nil {
		return nil, fmt.Errorf("hill.KeyMatrix: %w", err)
	}
	k, err := matrix.NewDense(BlockSize, BlockSize)
	if err != nil {
		return nil, fmt.Errorf("hill.KeyMatrix: %w", err)
	}
	counter := 0
	for i := 0; i < BlockSize*BlockSize; i++ {
		v := counter
		if i < len(letters) {
			v = letters[i].Int()
		} else {
			counter++
		}
		if err = k.Set(i/BlockSize, i%BlockSize, v); err != nil {
			return nil, fmt.Errorf("hill.KeyMatrix: %w", err)
		}
	}

	return k, nil
}

// InverseKeyMatrix returns K⁻¹ (mod 26) for key.
//
// Errors: ErrInvalidKey (also matches matrix.ErrNotInvertible), alphabet.ErrInvalidCharacter.
func InverseKeyMatrix(key string) (*matrix.Dense, error) {
	k, err := KeyMatrix(key)
	if err != nil {
		return nil, err
	}
	inv, err := invert(k)
	if err != nil {
		return nil, fmt.Errorf("hill.InverseKeyMatrix: %w", err)
	}

	return inv, nil
}

// Invertible reports whether key can be used for decryption.
func Invertible(key string) bool {
	_, err := InverseKeyMatrix(key)

	return err == nil
}

func invert(k *matrix.Dense) (*matrix.Dense, error) {
	inv, err := matrix.InverseMod(k, Modulus)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return inv, nil
}

// PaddedLength is n + n mod 3, the length the text is padded to before
// splitting into blocks.
func PaddedLength(n int) int {
	return n + n%BlockSize
}

// OutputLength is the number of letters Encrypt/Decrypt emit for an n-letter input.
func OutputLength(n int, minimal bool) int {
	if minimal {
		return (n + BlockSize - 1) / BlockSize * BlockSize
	}
	p := PaddedLength(n)

	return (p + BlockSize - 1) / BlockSize * BlockSize
}

// letterRows renders a key matrix as letters for the trace.
func letterRows(m *matrix.Dense) [][]rune {
	rows := m.RowsCopy()
	out := make([][]rune, len(rows))
	for i, row := range rows {
		out[i] = make([]rune, len(row))
		for j, v := range row {
			out[i][j] = rune('a' + v)
		}
	}

	return out
}
