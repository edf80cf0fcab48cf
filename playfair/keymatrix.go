package playfair

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cipherlab/alphabet"
)

// KeyMatrix is the 5×5 Playfair grid. It is a value type: copies are independent.
type KeyMatrix struct {
	cells [Size * Size]alphabet.Letter
	pos   [alphabet.Size]int8 // flat cell index per letter; -1 only for MergedLetter
}

var (
	merged      = alphabet.MustRune(MergedLetter)
	replacement = alphabet.MustRune(ReplacementLetter)
)

// fold maps the merged letter onto its replacement.
func fold(l alphabet.Letter) alphabet.Letter {
	if l == merged {
		return replacement
	}

	return l
}

// NewKeyMatrix builds the grid for key.
//
// Implementation:
//   - Stage 1: parse key (a..z only).
//   - Stage 2: place each folded key letter not yet placed, row-major.
//   - Stage 3: continue over a..z, skipping the merged letter and placed letters.
//
// An empty key yields the plain alphabet grid.
// Complexity: O(len(key) + 26).
func NewKeyMatrix(key string) (KeyMatrix, error) {
	letters, err := alphabet.Parse(key)
	if err != nil {
		return KeyMatrix{}, fmt.Errorf("playfair.NewKeyMatrix: %w", err)
	}

	var km KeyMatrix
	for i := range km.pos {
		km.pos[i] = -1
	}
	n := 0
	place := func(l alphabet.Letter) {
		l = fold(l)
		if km.pos[l] >= 0 {
			return
		}
		km.cells[n] = l
		km.pos[l] = int8(n)
		n++
	}
	for _, l := range letters {
		place(l)
	}
	for _, l := range alphabet.Letters() {
		if l == merged {
			continue
		}
		place(l)
	}

	return km, nil
}

// At returns the letter at (row, col).
func (km KeyMatrix) At(row, col int) (alphabet.Letter, error) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return 0, fmt.Errorf("playfair.KeyMatrix.At(%d,%d): index out of range", row, col)
	}

	return km.cells[row*Size+col], nil
}

// Locate returns the cell of l, reading the merged letter as its replacement.
func (km KeyMatrix) Locate(l alphabet.Letter) (row, col int) {
	p := int(km.pos[fold(l)])

	return p / Size, p % Size
}

// Contains reports whether l occupies a cell (false only for the merged letter).
func (km KeyMatrix) Contains(l alphabet.Letter) bool {
	return km.pos[l] >= 0
}

// Row returns row i as a string ("monar").
func (km KeyMatrix) Row(i int) string {
	var sb strings.Builder
	for j := 0; j < Size; j++ {
		sb.WriteRune(km.cells[i*Size+j].Rune())
	}

	return sb.String()
}

// Runes returns the grid as rows of runes, for trace rendering.
func (km KeyMatrix) Runes() [][]rune {
	out := make([][]rune, Size)
	for i := range out {
		out[i] = []rune(km.Row(i))
	}

	return out
}

// String renders the grid one row per line.
func (km KeyMatrix) String() string {
	rows := make([]string, Size)
	for i := range rows {
		rows[i] = km.Row(i)
	}

	return strings.Join(rows, "\n")
}

// at is the unchecked accessor used by the engine; callers keep indices in range.
func (km KeyMatrix) at(row, col int) alphabet.Letter {
	return km.cells[row*Size+col]
}
