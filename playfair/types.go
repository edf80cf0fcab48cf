package playfair

import (
	"errors"

	"github.com/katalvlaran/cipherlab/trace"
)

const (
	// Size is the edge of the key matrix.
	Size = 5

	// PadLetter is appended to odd-length plaintext.
	PadLetter = 'z'

	// MergedLetter never appears in the matrix; it is read as ReplacementLetter.
	MergedLetter = 'j'

	// ReplacementLetter stands in for MergedLetter.
	ReplacementLetter = 'i'
)

// ErrOddLength is returned by Decrypt for a ciphertext that cannot be split into digraphs.
var ErrOddLength = errors.New("playfair: ciphertext length must be even")

// Rule identifies which substitution rule transformed a digraph.
type Rule int

const (
	// SameColumn shifts both letters vertically.
	SameColumn Rule = iota + 1
	// SameRow shifts both letters horizontally.
	SameRow
	// Rectangle swaps columns between the two rows.
	Rectangle
)

// String returns the rule tag used in verbose traces.
func (r Rule) String() string {
	switch r {
	case SameColumn:
		return "Rule-01"
	case SameRow:
		return "Rule-02"
	case Rectangle:
		return "Rule-03"
	default:
		return "Rule-??"
	}
}

// Option configures an Encrypt/Decrypt call.
type Option func(*Options)

// Options holds per-call settings.
type Options struct {
	// OnTrace receives verbose trace lines; nil disables tracing.
	OnTrace trace.Func
}

// DefaultOptions returns Options with tracing disabled.
func DefaultOptions() Options {
	return Options{}
}

// WithTrace routes verbose trace lines to fn.
func WithTrace(fn trace.Func) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTrace = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
