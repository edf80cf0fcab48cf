package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cipherlab/matrix"
	"github.com/katalvlaran/cipherlab/modular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gybnqkurp is the classic Hill key "GYBNQKURP" as integers.
var gybnqkurp = [][]int{
	{6, 24, 1},
	{13, 16, 10},
	{20, 17, 15},
}

func mustDense(t *testing.T, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestTranspose swaps shape and entries.
func TestTranspose(t *testing.T) {
	m := mustDense(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, tr.RowsCopy())
}

// TestMinor removes the requested row and column.
func TestMinor(t *testing.T) {
	m := mustDense(t, gybnqkurp)
	mn, err := matrix.Minor(m, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{6, 24}, {20, 17}}, mn.RowsCopy())

	_, err = matrix.Minor(m, 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Minor(mustDense(t, [][]int{{1}}), 0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDeterminant pins small known determinants, including negative ones.
func TestDeterminant(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		want int
	}{
		{"1x1", [][]int{{-4}}, -4},
		{"2x2", [][]int{{3, 3}, {2, 5}}, 9},
		{"3x3 hill", gybnqkurp, 441},
		{"3x3 singular", [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}, 0},
		{"3x3 negative", [][]int{{2, 0, 0}, {0, 3, 0}, {0, 0, -1}}, -6},
		{"4x4 diag", [][]int{{1, 0, 0, 0}, {0, 2, 0, 0}, {0, 0, 3, 0}, {0, 0, 0, 4}}, 24},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := matrix.Determinant(mustDense(t, tc.rows))
			require.NoError(t, err)
			assert.Equal(t, tc.want, d)
		})
	}

	_, err := matrix.Determinant(mustDense(t, [][]int{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestDeterminantMod reduces negative determinants canonically.
func TestDeterminantMod(t *testing.T) {
	d, err := matrix.DeterminantMod(mustDense(t, [][]int{{2, 0, 0}, {0, 3, 0}, {0, 0, -1}}), 26)
	require.NoError(t, err)
	assert.Equal(t, 20, d)

	_, err = matrix.DeterminantMod(mustDense(t, gybnqkurp), 1)
	require.ErrorIs(t, err, matrix.ErrBadModulus)
}

// TestCofactorsCheckerboard verifies signs start positive at (0,0).
func TestCofactorsCheckerboard(t *testing.T) {
	c, err := matrix.Cofactors(mustDense(t, [][]int{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{4, -3}, {-2, 1}}, c.RowsCopy())

	adj, err := matrix.Adjugate(mustDense(t, [][]int{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{4, -2}, {-3, 1}}, adj.RowsCopy())

	one, err := matrix.Cofactors(mustDense(t, [][]int{{7}}))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}}, one.RowsCopy())
}

// TestInverseMod_Hill pins the well-known inverse of GYBNQKURP mod 26.
func TestInverseMod_Hill(t *testing.T) {
	m := mustDense(t, gybnqkurp)
	inv, err := matrix.InverseMod(m, 26)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{8, 5, 10}, {21, 8, 21}, {21, 12, 8}}, inv.RowsCopy())

	prod, err := matrix.MulMod(m, inv, 26)
	require.NoError(t, err)
	assert.True(t, matrix.IsIdentityMod(prod, 26))

	prod, err = matrix.MulMod(inv, m, 26)
	require.NoError(t, err)
	assert.True(t, matrix.IsIdentityMod(prod, 26))
}

// TestInverseMod_Exhaustive checks A·A⁻¹ ≡ I for a sweep of generated 3×3 matrices.
func TestInverseMod_Exhaustive(t *testing.T) {
	invertible := 0
	for seed := 0; seed < 400; seed++ {
		rows := make([][]int, 3)
		for i := range rows {
			rows[i] = make([]int, 3)
			for j := range rows[i] {
				rows[i][j] = (seed*7 + i*11 + j*5 + i*j*seed) % 26
			}
		}
		m := mustDense(t, rows)
		det, err := matrix.DeterminantMod(m, 26)
		require.NoError(t, err)

		inv, err := matrix.InverseMod(m, 26)
		if !modular.Coprime(det, 26) {
			require.ErrorIs(t, err, matrix.ErrNotInvertible)
			require.ErrorIs(t, err, modular.ErrNoInverse)
			continue
		}
		invertible++
		require.NoError(t, err)
		prod, err := matrix.MulMod(m, inv, 26)
		require.NoError(t, err)
		require.Truef(t, matrix.IsIdentityMod(prod, 26), "seed %d: %v", seed, rows)
	}
	assert.Greater(t, invertible, 0)
}

// TestInverseMod_NotInvertible covers determinants 0, 2 and 13 mod 26.
func TestInverseMod_NotInvertible(t *testing.T) {
	for _, rows := range [][][]int{
		{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}},  // det 0
		{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}},  // det 2
		{{13, 0, 0}, {0, 1, 0}, {0, 0, 1}}, // det 13
	} {
		_, err := matrix.InverseMod(mustDense(t, rows), 26)
		require.ErrorIs(t, err, matrix.ErrNotInvertible)
	}
}

// TestMulVecMod multiplies a key by a column vector ("act" → "poh").
func TestMulVecMod(t *testing.T) {
	y, err := matrix.MulVecMod(mustDense(t, gybnqkurp), []int{0, 2, 19}, 26)
	require.NoError(t, err)
	assert.Equal(t, []int{15, 14, 7}, y)

	_, err = matrix.MulVecMod(mustDense(t, gybnqkurp), []int{1, 2}, 26)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MulVecMod(mustDense(t, gybnqkurp), []int{1, 2, 3}, 0)
	require.ErrorIs(t, err, matrix.ErrBadModulus)
}

// TestMulMod_Mismatch rejects non-conformable operands.
func TestMulMod_Mismatch(t *testing.T) {
	_, err := matrix.MulMod(mustDense(t, [][]int{{1, 2}}), mustDense(t, [][]int{{1, 2}}), 26)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestReduce maps negatives into range.
func TestReduce(t *testing.T) {
	r, err := matrix.Reduce(mustDense(t, [][]int{{-1, 27}, {52, -53}}), 26)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{25, 1}, {0, 25}}, r.RowsCopy())
	assert.False(t, matrix.IsIdentityMod(mustDense(t, [][]int{{1, 0, 0}}), 26))
}
