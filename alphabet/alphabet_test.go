package alphabet_test

import (
	"testing"

	"github.com/katalvlaran/cipherlab/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromRune_Bounds accepts exactly 'a'..'z'.
func TestFromRune_Bounds(t *testing.T) {
	l, err := alphabet.FromRune('a')
	require.NoError(t, err)
	assert.Equal(t, 0, l.Int())

	l, err = alphabet.FromRune('z')
	require.NoError(t, err)
	assert.Equal(t, 25, l.Int())

	for _, r := range []rune{'A', 'Z', '`', '{', ' ', '0', 'é'} {
		_, err = alphabet.FromRune(r)
		assert.ErrorIsf(t, err, alphabet.ErrInvalidCharacter, "rune %q", r)
	}
}

// TestFromInt_Bounds accepts exactly 0..25.
func TestFromInt_Bounds(t *testing.T) {
	for n := 0; n < alphabet.Size; n++ {
		l, err := alphabet.FromInt(n)
		require.NoError(t, err)
		assert.Equal(t, n, l.Int())
	}
	_, err := alphabet.FromInt(-1)
	assert.ErrorIs(t, err, alphabet.ErrInvalidCharacter)
	_, err = alphabet.FromInt(26)
	assert.ErrorIs(t, err, alphabet.ErrInvalidCharacter)
}

// TestParseFormat_RoundTrip covers the bidirectional lookup over the full alphabet.
func TestParseFormat_RoundTrip(t *testing.T) {
	const all = "abcdefghijklmnopqrstuvwxyz"
	ls, err := alphabet.Parse(all)
	require.NoError(t, err)
	require.Len(t, ls, alphabet.Size)
	assert.Equal(t, alphabet.Letters(), ls)
	assert.Equal(t, all, alphabet.Format(ls))
}

// TestParse_RejectsAtPosition reports the failing rune.
func TestParse_RejectsAtPosition(t *testing.T) {
	_, err := alphabet.Parse("ab3d")
	require.ErrorIs(t, err, alphabet.ErrInvalidCharacter)
	assert.Contains(t, err.Error(), "position 2")
}

// TestMustRune panics on invalid input.
func TestMustRune(t *testing.T) {
	assert.Equal(t, "x", alphabet.MustRune('x').String())
	assert.Panics(t, func() { alphabet.MustRune('X') })
}
