// Package cipherlab is a small laboratory of classical ciphers: Playfair,
// Hill and Rail Fence, with a command line that traces every step.
//
// These ciphers are taught, not trusted. They resist no cryptanalysis and must
// never protect real data.
//
// Packages, leaf first:
//
//	modular/    canonical modulo, gcd, modular inverse
//	alphabet/   a..z ⇄ 0..25 with rejection of anything else
//	matrix/     integer matrices: determinant, adjugate, inverse mod m
//	trace/      verbose-mode line sinks and grid formatting
//	playfair/   5×5 key matrix (I/J merged) and digraph substitution
//	hill/       3×3 key matrix, inverse mod 26, block multiplication
//	railfence/  validated rail keys, zigzag padding, encode/decode
//	cipher/     one Request/Result API over all three, error classes
//
// Every engine call builds its own key matrix; nothing is shared, so all
// operations are safe for concurrent use. Verbose traces are delivered through
// a WithTrace option and never change the result.
//
// Quick start:
//
//	res, err := cipher.Run(cipher.Request{
//		Cipher:    cipher.Playfair,
//		Direction: cipher.Encrypt,
//		Text:      "instruments",
//		Key:       "monarchy",
//	})
//	// res.Text == "gatlmzclrqtx"
//
// The cipherlab binary (cmd/cipherlab) wraps this API with flags, interactive
// prompts, TOML configuration and an optional run history.
package cipherlab
