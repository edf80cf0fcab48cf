// Package cli implements the cipherlab command line: flag parsing, interactive
// prompting for anything the flags left out, input normalisation, rendering of
// results and traces, and the run history.
//
// Usage:
//
//	cipherlab --cipher=playfair --key=monarchy --message="instruments" --encrypt
//	cipherlab --cipher=railfence --key=3 --message="we are discovered" --verbose --encrypt
//	cipherlab                       # asks for everything
//	cipherlab history -n 5
//	cipherlab config show
package cli
