// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Thin public facade for reductions that callers reach for without caring
//     which file implements them.

package matrix

import "fmt"

// RowSums returns Σ_j m[i,j] for every row i.
// Complexity: O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([]float64, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf("RowSums", fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out[i] += v
		}
	}

	return out, nil
}

// ColSums returns Σ_i m[i,j] for every column j.
// Complexity: O(r*c).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ColSums", err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([]float64, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf("ColSums", fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out[j] += v
		}
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
