// Package alphabet is the explicit bridge between the 26 lower-case Latin
// letters and the integer range 0..25 used by the matrix ciphers.
//
// A Letter is only ever produced by FromRune, FromInt or Parse, each of which
// rejects anything outside the alphabet with ErrInvalidCharacter. Engines that
// do arithmetic on letters therefore never rely on wrap-around of byte values.
//
// Usage
//
//	ls, err := alphabet.Parse("act") // [0 2 19]
//	s := alphabet.Format(ls)         // "act"
package alphabet
