// Package modular provides the small integer number-theory kit shared by the
// cipher engines: canonical modulo, greatest common divisor and modular
// multiplicative inverse.
//
// What
//
//   - Mod(a, b) returns the representative of a in [0, b), also for negative a.
//     Go's % operator truncates toward zero, so -7 % 26 == -7; Mod(-7, 26) == 19.
//   - GCD(a, b) returns the non-negative greatest common divisor.
//   - Coprime(a, b) reports GCD(a, b) == 1.
//   - Inverse(a, m) returns the smallest positive x with (a*x) mod m == 1,
//     or ErrNoInverse when gcd(a, m) != 1.
//
// Why
//
//	Matrix cofactors and Rail Fence direction arithmetic produce negative
//	intermediates. Every reduction in this module goes through Mod so no
//	truncated remainder leaks into a letter lookup.
//
// Complexity
//
//   - Mod, Coprime: O(1) / O(log min(a,b)).
//   - Inverse: O(m) worst case (linear scan, m is 26 for every caller here).
//
// Usage
//
//	x := modular.Mod(-53, 26)        // 25
//	inv, err := modular.Inverse(9, 26) // 3, since 9*3 = 27 ≡ 1
//	if errors.Is(err, modular.ErrNoInverse) {
//	    // determinant shares a factor with the modulus
//	}
package modular
