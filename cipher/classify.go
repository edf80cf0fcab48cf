package cipher

import (
	"errors"

	"github.com/katalvlaran/cipherlab/alphabet"
	"github.com/katalvlaran/cipherlab/hill"
	"github.com/katalvlaran/cipherlab/playfair"
	"github.com/katalvlaran/cipherlab/railfence"
)

// Class groups engine errors by what the caller should do about them.
type Class int

const (
	// ClassNone is returned for a nil error.
	ClassNone Class = iota
	// ClassInvalidKey: ask for another key.
	ClassInvalidKey
	// ClassInvalidCharacter: the text or key was not normalised.
	ClassInvalidCharacter
	// ClassPrecondition: the call itself was malformed.
	ClassPrecondition
	// ClassUnknown: anything else.
	ClassUnknown
)

// String implements fmt.Stringer.
func (c Class) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassInvalidKey:
		return "invalid_key"
	case ClassInvalidCharacter:
		return "invalid_character"
	case ClassPrecondition:
		return "precondition"
	default:
		return "unknown"
	}
}

// Classify maps err onto a Class. No error is retryable without changing input.
func Classify(err error) Class {
	switch {
	case err == nil:
		return ClassNone
	case errors.Is(err, hill.ErrInvalidKey), errors.Is(err, railfence.ErrInvalidKey):
		return ClassInvalidKey
	case errors.Is(err, alphabet.ErrInvalidCharacter):
		return ClassInvalidCharacter
	case errors.Is(err, railfence.ErrKeyNotValidated),
		errors.Is(err, playfair.ErrOddLength),
		errors.Is(err, ErrUnknownCipher),
		errors.Is(err, ErrUnknownDirection):
		return ClassPrecondition
	default:
		return ClassUnknown
	}
}
