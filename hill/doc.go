// Package hill implements the 3×3 Hill cipher over Z/26Z.
//
// What
//
//   - KeyMatrix(key): the first nine key letters row-major, in order and
//     without de-duplication; a short key is completed with a, b, c, ...
//   - InverseKeyMatrix(key): adj(K) · det(K)⁻¹ (mod 26), or ErrInvalidKey when
//     det(K) shares a factor with 26.
//   - Encrypt/Decrypt: split the padded text into blocks of three, treat each
//     block as a column vector v and emit K·v (mod 26).
//
// Padding
//
//	The padded length follows n + n mod 3 and every started block is processed,
//	so the output length is 3·⌈(n + n mod 3)/3⌉. For n = 4 that is 6, for n = 5
//	it is 9: one block more than strictly needed. WithMinimalPadding pads to the
//	next multiple of three instead. Both policies pad with 'x' and the engine
//	never strips padding.
//
// Keys
//
//	Encryption with a non-invertible key succeeds and yields text that no key
//	can decrypt. WithStrictKey refuses such keys up front.
//
// Errors
//
//   - ErrInvalidKey                 key matrix not invertible mod 26 (wraps matrix.ErrNotInvertible).
//   - alphabet.ErrInvalidCharacter  key or text outside a..z.
//
// Complexity: O(n) per call; the key inverse is constant work for a 3×3 matrix.
package hill
