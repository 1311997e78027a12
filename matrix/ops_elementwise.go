// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) to avoid
//     duplicating tight loops across higher-level ops (statistics, comparison).
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels).
//   - Public API uses these via thin wrappers (impl_statistics.go, api.go).
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import (
	"fmt"
	"math"
)

// ewAffine computes out[i,j] = a*X[i,j] + b into a fresh Dense.
// Time: O(r*c). Space: O(r*c). Deterministic flat loop.
func ewAffine(X Matrix, a, b float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("affine", err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("affine", err)
	}

	// Dense fast-path: single pass over the flat row-major buffer.
	if d, ok := X.(*Dense); ok {
		for idx, v := range d.data {
			out.data[idx] = a*v + b
		}

		return out, nil
	}

	// Generic fallback via At (still deterministic).
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("affine", e)
			}
			out.data[i*c+j] = a*v + b
		}
	}

	return out, nil
}

// ewAffineRows rewrites the listed rows of X in place: X[i,:] = a*X[i,:] + b.
// Rows must be valid and unique (caller responsibility, see dedupe).
// Time: O(len(rows)*c). Space: O(1).
func ewAffineRows(X *Dense, rows []int, a, b float64) error {
	if err := ValidateRowIndices(rows, X.r); err != nil {
		return matrixErrorf("affineRows", err)
	}
	var j, base int
	for _, i := range rows {
		base = i * X.c
		for j = 0; j < X.c; j++ {
			X.data[base+j] = a*X.data[base+j] + b
		}
	}

	return nil
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf) // invalid tolerance
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Check |a-b| ≤ atol + rtol*|b|.
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil // early-exit on first violation
			}
		}
	}

	return true, nil
}
