package railfence

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// MaxRails bounds the rail count accepted by ParseKey and NewKey.
const MaxRails = 1 << 16

var (
	// ErrInvalidKey indicates a rail count that is not a positive integer in 1..MaxRails.
	ErrInvalidKey = errors.New("railfence: invalid rail count")

	// ErrKeyNotValidated indicates Encode/Decode called with a zero Key.
	ErrKeyNotValidated = errors.New("railfence: key used before validation")
)

var keyPattern = regexp.MustCompile(`^[1-9]\d*$`)

// Key is a validated rail count. The zero value is not a valid key.
type Key struct {
	rails int
}

// ParseKey validates s and converts it into a Key.
// "3" is accepted; "0", "-3", "03", "abc" and "" are not.
func ParseKey(s string) (Key, error) {
	if !keyPattern.MatchString(s) {
		return Key{}, fmt.Errorf("railfence.ParseKey(%q): not a positive integer: %w", s, ErrInvalidKey)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Key{}, fmt.Errorf("railfence.ParseKey(%q): %w: %w", s, ErrInvalidKey, err)
	}

	return NewKey(n)
}

// NewKey wraps an already numeric rail count.
func NewKey(rails int) (Key, error) {
	if rails < 1 {
		return Key{}, fmt.Errorf("railfence.NewKey(%d): not a positive integer: %w", rails, ErrInvalidKey)
	}
	if rails > MaxRails {
		return Key{}, fmt.Errorf("railfence.NewKey(%d): exceeds MaxRails (%d): %w", rails, MaxRails, ErrInvalidKey)
	}

	return Key{rails: rails}, nil
}

// Rails returns the rail count, 0 for the zero Key.
func (k Key) Rails() int { return k.rails }

// Valid reports whether k came from ParseKey or NewKey.
func (k Key) Valid() bool { return k.rails > 0 }

// String implements fmt.Stringer.
func (k Key) String() string { return strconv.Itoa(k.rails) }
