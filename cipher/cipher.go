// SPDX-License-Identifier: MIT

package cipher

import (
	"fmt"

	"github.com/katalvlaran/cipherlab/hill"
	"github.com/katalvlaran/cipherlab/playfair"
	"github.com/katalvlaran/cipherlab/railfence"
	"github.com/katalvlaran/cipherlab/trace"
)

// Run dispatches req to its engine.
//
// Errors: ErrUnknownCipher, ErrUnknownDirection, plus whatever the engine
// returns (see Classify).
func Run(req Request) (Result, error) {
	if req.Direction != Encrypt && req.Direction != Decrypt {
		return Result{}, fmt.Errorf("Run: %q: %w", req.Direction, ErrUnknownDirection)
	}
	var rec *trace.Recorder
	var fn trace.Func
	if req.Verbose {
		rec = &trace.Recorder{}
		fn = rec.Func()
	}

	out, err := dispatch(req, fn)
	if err != nil {
		return Result{}, err
	}
	res := Result{Text: out}
	if rec != nil {
		res.Trace = rec.Lines()
	}

	return res, nil
}

func dispatch(req Request, fn trace.Func) (string, error) {
	enc := req.Direction == Encrypt
	switch req.Cipher {
	case Playfair:
		if enc {
			return playfair.Encrypt(req.Text, req.Key, playfair.WithTrace(fn))
		}

		return playfair.Decrypt(req.Text, req.Key, playfair.WithTrace(fn))

	case Hill:
		opts := []hill.Option{hill.WithTrace(fn)}
		if req.Hill.StrictKey {
			opts = append(opts, hill.WithStrictKey())
		}
		if req.Hill.MinimalPadding {
			opts = append(opts, hill.WithMinimalPadding())
		}
		if enc {
			return hill.Encrypt(req.Text, req.Key, opts...)
		}

		return hill.Decrypt(req.Text, req.Key, opts...)

	case RailFence:
		key, err := ValidateRailKey(req.Key)
		if err != nil {
			return "", err
		}
		if enc {
			return railfence.Encode(key, req.Text, railfence.WithTrace(fn))
		}

		return railfence.Decode(key, req.Text, railfence.WithTrace(fn))
	}

	return "", fmt.Errorf("Run: %q: %w", req.Cipher, ErrUnknownCipher)
}

// PlayfairEncrypt enciphers letters-only plaintext.
func PlayfairEncrypt(plaintext, key string, verbose bool) (Result, error) {
	return Run(Request{Cipher: Playfair, Direction: Encrypt, Text: plaintext, Key: key, Verbose: verbose})
}

// PlayfairDecrypt deciphers an even-length ciphertext.
func PlayfairDecrypt(ciphertext, key string, verbose bool) (Result, error) {
	return Run(Request{Cipher: Playfair, Direction: Decrypt, Text: ciphertext, Key: key, Verbose: verbose})
}

// HillEncrypt enciphers letters-only plaintext.
func HillEncrypt(plaintext, key string, verbose bool) (Result, error) {
	return Run(Request{Cipher: Hill, Direction: Encrypt, Text: plaintext, Key: key, Verbose: verbose})
}

// HillDecrypt deciphers; it fails with hill.ErrInvalidKey for a singular key.
func HillDecrypt(ciphertext, key string, verbose bool) (Result, error) {
	return Run(Request{Cipher: Hill, Direction: Decrypt, Text: ciphertext, Key: key, Verbose: verbose})
}

// ValidateRailKey must succeed before RailEncode/RailDecode.
func ValidateRailKey(key string) (railfence.Key, error) {
	return railfence.ParseKey(key)
}

// RailEncode enciphers message with a validated key.
func RailEncode(key railfence.Key, message string, verbose bool) (Result, error) {
	return runRail(key, message, verbose, railfence.Encode)
}

// RailDecode deciphers message with a validated key.
func RailDecode(key railfence.Key, message string, verbose bool) (Result, error) {
	return runRail(key, message, verbose, railfence.Decode)
}

func runRail(key railfence.Key, message string, verbose bool,
	op func(railfence.Key, string, ...railfence.Option) (string, error)) (Result, error) {
	var rec trace.Recorder
	var opts []railfence.Option
	if verbose {
		opts = append(opts, railfence.WithTrace(rec.Func()))
	}
	out, err := op(key, message, opts...)
	if err != nil {
		return Result{}, err
	}
	res := Result{Text: out}
	if verbose {
		res.Trace = rec.Lines()
	}

	return res, nil
}
