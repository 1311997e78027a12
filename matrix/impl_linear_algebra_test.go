// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/deep1010/matrix"
	"github.com/stretchr/testify/require"
)

func TestMul_FastAndFallback(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})
	want := [][]float64{{58, 64}, {139, 154}}

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, want, fast)

	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	CompareExact(t, want, slow)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	var nilDense *matrix.Dense
	_, err = matrix.Mul(nilDense, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at)

	ah, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, ah)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAddScaledRow(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []float64{1, 1, 1, 2, 4, 6})
	src, err := m.Row(1)
	require.NoError(t, err)
	require.NoError(t, matrix.AddScaledRow(m, 0, 0.5, src))
	CompareExact(t, [][]float64{{2, 3, 4}, {2, 4, 6}}, m)

	require.ErrorIs(t, matrix.AddScaledRow(m, 2, 1, src), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.AddScaledRow(m, 0, 1, src[:2]), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.AddScaledRow(nil, 0, 1, src), matrix.ErrNilMatrix)
}

func TestColRowSumsAndAllClose(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	rs, err := matrix.RowSums(m)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7}, rs)
	cs, err := matrix.ColSums(m)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 6}, cs)

	n := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4.0000001})
	ok, err := matrix.AllClose(m, n, 0, 1e-6)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = matrix.AllClose(m, n, 0, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)
}
