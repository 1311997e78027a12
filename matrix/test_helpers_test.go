// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/deep1010/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At/Set fallback paths in code under test.
type hide struct{ matrix.Matrix }

// NewFilledDense builds an r×c Dense from row-major vals or fails the test.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareExact asserts m equals want element by element.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "at (%d,%d)", i, j)
		}
	}
}

// CompareClose asserts m equals want within delta.
func CompareClose(t *testing.T, want [][]float64, m matrix.Matrix, delta float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.InDelta(t, want[i][j], MustAt(t, m, i, j), delta, "at (%d,%d)", i, j)
		}
	}
}
