// Package cipher is the single entry point over the playfair, hill and
// railfence engines.
//
// A caller selects a Kind and a Direction, supplies text and key, and gets a
// Result carrying the output and, in verbose mode, the trace lines. Run does
// the dispatch; the per-cipher functions (PlayfairEncrypt, RailDecode, ...)
// are thin shortcuts for callers that already know the cipher.
//
// Errors from the engines are returned wrapped; Classify maps any of them onto
// the three failure classes a front end needs to distinguish: a bad key, a
// character outside the alphabet, or a violated precondition.
package cipher
