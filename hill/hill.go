package hill

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cipherlab/alphabet"
	"github.com/katalvlaran/cipherlab/matrix"
	"github.com/katalvlaran/cipherlab/trace"
)

// Encrypt enciphers plaintext with the forward key matrix.
//
// Errors: alphabet.ErrInvalidCharacter; ErrInvalidKey only under WithStrictKey.
func Encrypt(plaintext, key string, opts ...Option) (string, error) {
	o := buildOptions(opts)
	k, err := KeyMatrix(key)
	if err != nil {
		return "", fmt.Errorf("hill.Encrypt: %w", err)
	}
	if o.StrictKey {
		if _, err = invert(k); err != nil {
			return "", fmt.Errorf("hill.Encrypt: %w", err)
		}
	}
	out, err := transform(plaintext, k, o)
	if err != nil {
		return "", fmt.Errorf("hill.Encrypt: %w", err)
	}

	return out, nil
}

// Decrypt deciphers ciphertext with the inverse key matrix.
//
// Errors: ErrInvalidKey, alphabet.ErrInvalidCharacter.
func Decrypt(ciphertext, key string, opts ...Option) (string, error) {
	o := buildOptions(opts)
	inv, err := InverseKeyMatrix(key)
	if err != nil {
		return "", fmt.Errorf("hill.Decrypt: %w", err)
	}
	out, err := transform(ciphertext, inv, o)
	if err != nil {
		return "", fmt.Errorf("hill.Decrypt: %w", err)
	}

	return out, nil
}

// transform pads text and multiplies every block by k.
//
// Implementation:
//   - Stage 1: parse text; pad with PadLetter to OutputLength.
//   - Stage 2: for each block v emit MulVecMod(k, v, 26).
//
// Complexity: O(n).
func transform(text string, k *matrix.Dense, o Options) (string, error) {
	letters, err := alphabet.Parse(text)
	if err != nil {
		return "", err
	}
	total := OutputLength(len(letters), o.MinimalPadding)
	pad := alphabet.MustRune(PadLetter)

	v := make([]int, BlockSize)
	out := make([]alphabet.Letter, 0, total)

	em := trace.NewEmitter(o.OnTrace)
	em.Linef("Key Matrix:")
	em.Grid("\t", letterRows(k))
	em.Linef("Original Message:")
	em.Linef("\t`%s`", text)

	for i := 0; i < total; i += BlockSize {
		block := make([]alphabet.Letter, BlockSize)
		for j := 0; j < BlockSize; j++ {
			block[j] = pad
			if i+j < len(letters) {
				block[j] = letters[i+j]
			}
			v[j] = block[j].Int()
		}
		y, err := matrix.MulVecMod(k, v, Modulus)
		if err != nil {
			return "", err
		}
		res := make([]alphabet.Letter, BlockSize)
		for j, n := range y {
			if res[j], err = alphabet.FromInt(n); err != nil {
				return "", err
			}
		}
		out = append(out, res...)

		if em.Enabled() {
			em.Linef("Iteration %d:", i/BlockSize+1)
			for _, line := range iterationLines(k, block, res) {
				em.Linef("%s", line)
			}
			em.Linef("Current Result:")
			em.Linef("\t`%s`", alphabet.Format(out))
		}
	}

	return alphabet.Format(out), nil
}

// iterationLines lays out K · v = y with the operators on the middle row:
//
//	g  y  b       a       p
//	n  q  k   x   c   =   o
//	u  r  p       t       h
func iterationLines(k *matrix.Dense, in, res []alphabet.Letter) []string {
	rows := letterRows(k)
	lines := make([]string, len(rows))
	for i, row := range rows {
		var sb strings.Builder
		sb.WriteString("\t")
		for j, r := range row {
			if j > 0 {
				sb.WriteString("  ")
			}
			sb.WriteRune(r)
		}
		if i == len(rows)/2 {
			fmt.Fprintf(&sb, "   x   %c   =   %c", in[i].Rune(), res[i].Rune())
		} else {
			fmt.Fprintf(&sb, "       %c       %c", in[i].Rune(), res[i].Rune())
		}
		lines[i] = sb.String()
	}

	return lines
}
