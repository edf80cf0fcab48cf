// SPDX-License-Identifier: MIT

package playfair

import (
	"fmt"

	"github.com/katalvlaran/cipherlab/alphabet"
	"github.com/katalvlaran/cipherlab/trace"
)

// Encrypt enciphers plaintext with key.
//
// Implementation:
//   - Stage 1: build the KeyMatrix; parse plaintext (a..z only).
//   - Stage 2: append PadLetter when the length is odd.
//   - Stage 3: substitute each digraph by the first matching rule, shifting +1.
//
// Output is always even-length and never contains MergedLetter.
// Complexity: O(n).
func Encrypt(plaintext, key string, opts ...Option) (string, error) {
	out, err := run(plaintext, key, +1, buildOptions(opts))
	if err != nil {
		return "", fmt.Errorf("playfair.Encrypt: %w", err)
	}

	return out, nil
}

// Decrypt deciphers ciphertext with key. Padding added by Encrypt is kept.
//
// Errors: ErrOddLength, alphabet.ErrInvalidCharacter.
// Complexity: O(n).
func Decrypt(ciphertext, key string, opts ...Option) (string, error) {
	if len(ciphertext)%2 != 0 {
		return "", fmt.Errorf("playfair.Decrypt: length %d: %w", len(ciphertext), ErrOddLength)
	}
	out, err := run(ciphertext, key, -1, buildOptions(opts))
	if err != nil {
		return "", fmt.Errorf("playfair.Decrypt: %w", err)
	}

	return out, nil
}

// Substitute transforms one digraph and reports the rule applied.
// shift is +1 to encrypt and -1 to decrypt.
func (km KeyMatrix) Substitute(a, b alphabet.Letter, shift int) (alphabet.Letter, alphabet.Letter, Rule) {
	r1, c1 := km.Locate(a)
	r2, c2 := km.Locate(b)
	switch {
	case c1 == c2:
		return km.at(wrap(r1+shift), c1), km.at(wrap(r2+shift), c2), SameColumn
	case r1 == r2:
		return km.at(r1, wrap(c1+shift)), km.at(r2, wrap(c2+shift)), SameRow
	default:
		return km.at(r1, c2), km.at(r2, c1), Rectangle
	}
}

func wrap(i int) int {
	return ((i % Size) + Size) % Size
}

func run(text, key string, shift int, o Options) (string, error) {
	km, err := NewKeyMatrix(key)
	if err != nil {
		return "", err
	}
	letters, err := alphabet.Parse(text)
	if err != nil {
		return "", err
	}
	if len(letters)%2 != 0 {
		letters = append(letters, alphabet.MustRune(PadLetter))
	}

	em := trace.NewEmitter(o.OnTrace)
	em.Linef("Key Matrix:")
	em.Grid("\t", km.Runes())
	em.Linef("Original Message:")
	em.Linef("\t`%s`", alphabet.Format(letters))

	for i := 0; i+1 < len(letters); i += 2 {
		a, b := letters[i], letters[i+1]
		x, y, rule := km.Substitute(a, b, shift)
		letters[i], letters[i+1] = x, y
		if em.Enabled() {
			em.Linef("PASS %d:", i/2+1)
			em.Linef("  Original Sub-string: \"%c%c\"", a.Rune(), b.Rune())
			em.Linef("  Replacement String:- \"%c%c\" (%s)", x.Rune(), y.Rune(), rule)
			em.Linef("  Resultant String;")
			em.Linef("\t`%s`", alphabet.Format(letters))
		}
	}

	return alphabet.Format(letters), nil
}
