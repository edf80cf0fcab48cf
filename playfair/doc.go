// Package playfair implements the Playfair digraph substitution cipher over a
// 5×5 key matrix in which I and J share a cell.
//
// What
//
//   - NewKeyMatrix(key): key letters first (J folded into I, repeats skipped),
//     then the rest of a..z in order, row-major. Always 25 distinct letters.
//   - Encrypt: pad odd-length input with 'z', then for each digraph apply the
//     first matching rule:
//     1. same column → one row down (wrapping),
//     2. same row    → one column right (wrapping),
//     3. rectangle   → own row, partner's column.
//   - Decrypt: the same rules with row up / column left; the rectangle rule is
//     its own inverse.
//
// Determinism & state
//
//	Every call builds its own KeyMatrix value; nothing is shared between calls,
//	so Encrypt/Decrypt are safe for concurrent use.
//
// Padding
//
//	The engine never strips the trailing 'z' it added; Decrypt returns the padded
//	plaintext. A doubled letter inside a digraph ("ll") shares a column with
//	itself and is shifted by rule 1.
//
// Errors
//
//   - alphabet.ErrInvalidCharacter  key or text outside a..z.
//   - ErrOddLength                  Decrypt called on an odd-length ciphertext.
//
// Usage
//
//	ct, err := playfair.Encrypt("instruments", "monarchy")          // "gatlmzclrqtx"
//	pt, err := playfair.Decrypt(ct, "monarchy", playfair.WithTrace(fn)) // "instrumentsz"
package playfair
