// Package railfence implements the Rail Fence (zigzag) transposition cipher.
//
// What
//
//   - ParseKey validates a textual rail count (^[1-9]\d*$, at most MaxRails)
//     and returns a Key. Encode and Decode accept only a Key obtained this way;
//     the zero Key is rejected with ErrKeyNotValidated.
//   - PaddedLength(n, rails) is the smallest length > n whose zigzag ends on
//     the bottom rail. Encode pads the message with 'X' up to it.
//   - Encode writes the padded message along the zigzag and reads it back rail
//     by rail. Decode reverses this for a ciphertext of any length.
//
// The message keeps its case and spaces: every rune is a cell, including ' '.
//
// Complexity: O(n) time and memory per call. The verbose trace renders the full
// rails × length grid and is O(rails · n).
package railfence
