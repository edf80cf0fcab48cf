package hill

import (
	"errors"

	"github.com/katalvlaran/cipherlab/trace"
)

const (
	// BlockSize is the key matrix order and the plaintext block length.
	BlockSize = 3

	// Modulus is the alphabet size all arithmetic reduces by.
	Modulus = 26

	// PadLetter fills the last block.
	PadLetter = 'x'
)

// ErrInvalidKey indicates a key matrix whose determinant is not coprime with 26.
var ErrInvalidKey = errors.New("hill: key matrix is not invertible modulo 26")

// Option configures an Encrypt/Decrypt call.
type Option func(*Options)

// Options holds per-call settings.
type Options struct {
	// OnTrace receives verbose trace lines; nil disables tracing.
	OnTrace trace.Func

	// StrictKey makes Encrypt reject keys that Decrypt could not use.
	StrictKey bool

	// MinimalPadding pads to the next multiple of BlockSize instead of n + n mod 3.
	MinimalPadding bool
}

// DefaultOptions returns the historical behaviour: lenient keys, n + n mod 3 padding, no trace.
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

// WithStrictKey rejects non-invertible keys on encryption too.
func WithStrictKey() Option {
	return func(o *Options) { o.StrictKey = true }
}

// WithMinimalPadding pads to the next multiple of BlockSize.
func WithMinimalPadding() Option {
	return func(o *Options) { o.MinimalPadding = true }
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
