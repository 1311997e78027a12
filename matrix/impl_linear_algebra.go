// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, transpose and row-level axpy.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Purpose:
//   - Project channel tensors through static mapping matrices (Mul) built
//     once from their weight matrix (Transpose).
//   - Mix one channel into another (AddScaledRow) without materializing copies.
//
// Notes:
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import "fmt"

// ZeroSum is the initial accumulator for dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul          = "Mul"
	opTranspose    = "Transpose"
	opAddScaledRow = "AddScaledRow"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product a×b into a fresh Dense.
// Operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate Dense(a.Rows, b.Cols).
//   - Stage 2: Fast-path i→k→j over flat buffers when both are *Dense,
//     skipping zero a[i,k] (mapping matrices are mostly zeros).
//   - Stage 3: Fallback i→j→k via At/Set.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// AddScaledRow performs the in-place row axpy m[dst,:] += alpha * src.
// src must have exactly Cols() elements and may alias another row of m.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (dst), ErrDimensionMismatch (len(src)).
//
// Complexity: O(c).
func AddScaledRow(m *Dense, dst int, alpha float64, src []float64) error {
	if m == nil {
		return matrixErrorf(opAddScaledRow, ErrNilMatrix)
	}
	if dst < 0 || dst >= m.r {
		return matrixErrorf(opAddScaledRow, fmt.Errorf("row %d: %w", dst, ErrOutOfRange))
	}
	if err := ValidateVecLen(src, m.c); err != nil {
		return matrixErrorf(opAddScaledRow, err)
	}
	if alpha == 0 {
		return nil
	}
	base := dst * m.c
	var j int
	for j = 0; j < m.c; j++ {
		m.data[base+j] += alpha * src[j]
	}

	return nil
}
