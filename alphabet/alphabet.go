package alphabet

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of letters in the alphabet.
const Size = 26

// ErrInvalidCharacter indicates a rune or integer outside the a..z / 0..25 range.
var ErrInvalidCharacter = errors.New("alphabet: invalid character")

// Letter is a lower-case Latin letter stored as its index, 'a' == 0 ... 'z' == 25.
type Letter uint8

// FromRune maps 'a'..'z' to a Letter. Upper-case and non-letters are rejected.
func FromRune(r rune) (Letter, error) {
	if r < 'a' || r > 'z' {
		return 0, fmt.Errorf("FromRune(%q): %w", r, ErrInvalidCharacter)
	}

	return Letter(r - 'a'), nil
}

// FromInt maps 0..25 to a Letter.
func FromInt(n int) (Letter, error) {
	if n < 0 || n >= Size {
		return 0, fmt.Errorf("FromInt(%d): %w", n, ErrInvalidCharacter)
	}

	return Letter(n), nil
}

// MustRune is FromRune for compile-time constants; it panics on invalid input.
func MustRune(r rune) Letter {
	l, err := FromRune(r)
	if err != nil {
		panic(err)
	}

	return l
}

// Int returns the index of l.
func (l Letter) Int() int { return int(l) }

// Rune returns the lower-case letter for l.
func (l Letter) Rune() rune { return rune('a' + l) }

// String implements fmt.Stringer.
func (l Letter) String() string { return string(l.Rune()) }

// Parse converts every rune of s into a Letter.
// The error names the offending position.
// Complexity: O(len(s)).
func Parse(s string) ([]Letter, error) {
	out := make([]Letter, 0, len(s))
	for i, r := range s {
		l, err := FromRune(r)
		if err != nil {
			return nil, fmt.Errorf("Parse: position %d: %w", i, err)
		}
		out = append(out, l)
	}

	return out, nil
}

// Format is the inverse of Parse.
func Format(ls []Letter) string {
	var b strings.Builder
	b.Grow(len(ls))
	for _, l := range ls {
		b.WriteRune(l.Rune())
	}

	return b.String()
}

// Letters returns the whole alphabet in order.
func Letters() []Letter {
	out := make([]Letter, Size)
	for i := range out {
		out[i] = Letter(i)
	}

	return out
}
