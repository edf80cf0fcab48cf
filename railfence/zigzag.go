// SPDX-License-Identifier: MIT

package railfence

import "github.com/katalvlaran/cipherlab/modular"

// period is the zigzag cycle length: down rails-1 steps, up rails-1 steps.
func period(rails int) int {
	if rails < 2 {
		return 1
	}

	return 2 * (rails - 1)
}

// RowAt returns the rail visited at position i of the zigzag.
// The walk starts on rail 0 heading down and turns at rail 0 and rail rails-1.
func RowAt(i, rails int) int {
	p := period(rails)
	if p == 1 {
		return 0
	}
	r := i % p
	if r < rails {
		return r
	}

	return p - r
}

// PaddedLength returns the total length for an n-rune message on rails rails:
// the smallest i ≥ n with RowAt(i) == rails-1, plus one.
//
// The padded message is strictly longer than n, so a message that already ends
// on the bottom rail still receives one full cycle of padding; 25 letters on
// 3 rails pad to 27. With a single rail every position is the bottom rail and
// the result is n+1.
//
// Complexity: O(1).
func PaddedLength(n, rails int) int {
	last := rails - 1

	return n + modular.Mod(last-n, period(rails)) + 1
}

// Path returns RowAt for every position 0..total-1.
func Path(total, rails int) []int {
	out := make([]int, total)
	for i := range out {
		out[i] = RowAt(i, rails)
	}

	return out
}
