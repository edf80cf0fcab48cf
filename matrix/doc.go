// Package matrix provides small integer matrices with modular arithmetic,
// the algebra behind the Hill cipher key matrix and its inverse.
//
// What
//
//   - Dense: a row-major int matrix with bounds-checked At/Set (errors, never panics).
//   - Transpose, Minor, Determinant (cofactor expansion along the first row),
//     Cofactors, Adjugate: exact integer arithmetic, no floating point.
//   - Reduce, MulMod, MulVecMod: element-wise and product reductions into [0, mod).
//   - InverseMod: adj(A) · det(A)⁻¹ (mod m), failing with ErrNotInvertible when
//     det(A) shares a factor with m.
//
// Why
//
//	A float determinant (as produced by an LU inverse) loses exactness and turns a
//	negative cofactor into a truncated remainder. Every routine here stays in int
//	and reduces with modular.Mod, so A · InverseMod(A, m) ≡ I (mod m) holds exactly.
//
// Determinism
//
//	All kernels walk rows then columns in fixed order; no maps, no randomness.
//
// Complexity (n = order of a square matrix)
//
//   - Determinant: O(n!) via Laplace expansion; intended for n ≤ 4 (Hill uses 3).
//   - Cofactors / InverseMod: O(n² · n!) for the same reason.
//   - MulMod: O(n³); MulVecMod: O(n²).
//
// Errors
//
//   - ErrInvalidDimensions  non-positive shape.
//   - ErrNonRectangular     ragged row input to NewFromRows.
//   - ErrOutOfRange         At/Set outside the matrix.
//   - ErrNilMatrix          nil operand.
//   - ErrDimensionMismatch  non-conformable operands or a non-square input where one is required.
//   - ErrBadModulus         modulus < 2.
//   - ErrNotInvertible      determinant not a unit modulo m.
package matrix
