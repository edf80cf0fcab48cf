// Package trace carries the human-readable verbose output of the cipher
// engines.
//
// Engines never print. In verbose mode they call a Func once per line
// (key matrix rows, per-digraph rule applications, per-block products, the
// rail grid); the caller decides where the lines go. A Recorder collects them
// for cipher.Result.Trace, Nop discards them.
//
// The trace is observational only: enabling it never changes an engine's
// returned text.
package trace
