package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/katalvlaran/cipherlab/cipher"
)

var (
	// ErrInvalidMessage indicates a message with characters other than letters and spaces.
	ErrInvalidMessage = errors.New("invalid message: use letters and spaces only")

	// ErrInvalidKey indicates a key that is neither letters/spaces nor a number,
	// or of the wrong sort for the chosen cipher.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidAnswer indicates a yes/no prompt got something else.
	ErrInvalidAnswer = errors.New("invalid answer: expected yes or no")
)

var (
	messagePattern = regexp.MustCompile(`^[A-Za-z ]+$`)
	keyPattern     = regexp.MustCompile(`^([A-Za-z ]+|\d+)$`)
	cipherPattern  = regexp.MustCompile(`^(playfair|hill|railfence)$`)
	answerPattern  = regexp.MustCompile(`(?i)^(yes|no|true|false|y|n)$`)
)

// ParseCipher validates a cipher name as typed.
func ParseCipher(s string) (cipher.Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !cipherPattern.MatchString(s) {
		return "", fmt.Errorf("%q: %w (expected playfair, hill or railfence)", s, cipher.ErrUnknownCipher)
	}

	return cipher.ParseKind(s)
}

// ValidateMessage checks the raw message.
func ValidateMessage(s string) error {
	if !messagePattern.MatchString(s) {
		return fmt.Errorf("%q: %w", s, ErrInvalidMessage)
	}

	return nil
}

// ValidateKey checks the raw key against the sort of key kind expects.
func ValidateKey(kind cipher.Kind, s string) error {
	if !keyPattern.MatchString(s) {
		return fmt.Errorf("%q: %w: use letters and spaces, or a number", s, ErrInvalidKey)
	}
	numeric := unicode.IsDigit(rune(s[0]))
	switch {
	case kind.NumericKey() && !numeric:
		return fmt.Errorf("%q: %w: %s takes a positive number of rails", s, ErrInvalidKey, kind)
	case !kind.NumericKey() && numeric:
		return fmt.Errorf("%q: %w: %s takes letters", s, ErrInvalidKey, kind)
	}

	return nil
}

// ParseAnswer maps yes/no/true/false/y/n, in any case, to a bool.
func ParseAnswer(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if !answerPattern.MatchString(s) {
		return false, fmt.Errorf("%q: %w", s, ErrInvalidAnswer)
	}
	switch strings.ToLower(s) {
	case "yes", "true", "y":
		return true, nil
	}

	return false, nil
}

// Normalize prepares a validated message or key for kind: Playfair and Hill
// get lower-case letters only; Rail Fence input is kept as typed.
func Normalize(kind cipher.Kind, s string) string {
	if kind == cipher.RailFence {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsLetter(r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}

	return sb.String()
}
