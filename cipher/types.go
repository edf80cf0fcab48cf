package cipher

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCipher indicates a Kind outside Playfair, Hill, RailFence.
	ErrUnknownCipher = errors.New("cipher: unknown cipher")

	// ErrUnknownDirection indicates a Direction other than Encrypt or Decrypt.
	ErrUnknownDirection = errors.New("cipher: unknown direction")
)

// Kind names one of the supported ciphers.
type Kind string

const (
	Playfair  Kind = "playfair"
	Hill      Kind = "hill"
	RailFence Kind = "railfence"
)

// Kinds lists every supported cipher in display order.
func Kinds() []Kind { return []Kind{Playfair, Hill, RailFence} }

// ParseKind accepts a cipher name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case Playfair, Hill, RailFence:
		return k, nil
	}

	return "", fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownCipher)
}

// NumericKey reports whether the cipher takes a rail count instead of letters.
func (k Kind) NumericKey() bool { return k == RailFence }

// Direction selects encryption or decryption.
type Direction string

const (
	Encrypt Direction = "encrypt"
	Decrypt Direction = "decrypt"
)

// ParseDirection accepts "encrypt"/"decrypt" and their first letters.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encrypt", "e":
		return Encrypt, nil
	case "decrypt", "d":
		return Decrypt, nil
	}

	return "", fmt.Errorf("ParseDirection(%q): %w", s, ErrUnknownDirection)
}

// HillOptions carries the opt-in Hill behaviours.
type HillOptions struct {
	// StrictKey rejects non-invertible keys on encryption.
	StrictKey bool
	// MinimalPadding pads to the next multiple of three.
	MinimalPadding bool
}

// Request is one cipher invocation. Text and Key must already be normalised:
// lower-case letters for Playfair and Hill, a decimal rail count for Rail Fence.
type Request struct {
	Cipher    Kind
	Direction Direction
	Text      string
	Key       string
	Verbose   bool
	Hill      HillOptions
}

// Result is the output of Run.
type Result struct {
	// Text is the ciphertext or plaintext, padding included.
	Text string
	// Trace holds the verbose report; nil unless Request.Verbose was set.
	Trace []string
}
