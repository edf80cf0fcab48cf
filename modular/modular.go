// SPDX-License-Identifier: MIT

package modular

import (
	"errors"
	"fmt"
)

// ErrNoInverse is returned by Inverse when the value shares a factor with the modulus.
var ErrNoInverse = errors.New("modular: no multiplicative inverse")

// ErrBadModulus is returned by Inverse when the modulus is < 2.
var ErrBadModulus = errors.New("modular: modulus must be >= 2")

// Mod returns the canonical representative of a in [0, b).
// Panics if b <= 0: a non-positive modulus is a programmer error, never user input.
// Complexity: O(1).
func Mod(a, b int) int {
	if b <= 0 {
		panic(fmt.Sprintf("modular.Mod: non-positive modulus %d", b))
	}
	r := a % b
	if r < 0 {
		r += b // shift truncated remainder into [0, b)
	}

	return r
}

// GCD returns the greatest common divisor of a and b (always >= 0).
// GCD(0, 0) == 0.
// Complexity: O(log min(|a|, |b|)).
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Coprime reports whether a and b share no factor other than 1.
func Coprime(a, b int) bool {
	return GCD(a, b) == 1
}

// Inverse returns the smallest positive integer x such that (a*x) mod m == 1.
// Stage 1 (Validate): m >= 2, a reduced into [0, m), gcd(a, m) == 1.
// Stage 2 (Execute): scan x = 1..m-1; the first hit is the smallest one.
// Complexity: O(m).
func Inverse(a, m int) (int, error) {
	if m < 2 {
		return 0, fmt.Errorf("Inverse(%d,%d): %w", a, m, ErrBadModulus)
	}
	r := Mod(a, m)
	if !Coprime(r, m) {
		return 0, fmt.Errorf("Inverse(%d,%d): %w", a, m, ErrNoInverse)
	}
	for x := 1; x < m; x++ {
		if (r*x)%m == 1 {
			return x, nil
		}
	}

	// Unreachable for coprime r; kept so every path returns.
	return 0, fmt.Errorf("Inverse(%d,%d): %w", a, m, ErrNoInverse)
}
