// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide whole-tensor statistics and normalizations for instance tensors
//     (z-scoring, min-max rescaling over the full tensor or a group of rows)
//     as deterministic compositions over ew* micro-kernels.
//
// Exposed API:
//   - Mean(X)                               -> mean of all elements
//   - Std(X)                                -> sample standard deviation (n-1) of all elements
//   - MinMax(X)                             -> (min, max) over all elements
//   - MinMaxRows(X, rows)                   -> (min, max) over the listed rows jointly
//   - ZScore(X)                             -> (Y, mean, std)            // degenerate std → zero tensor
//   - NormalizeMinMax(X, low, high)         -> Y in [low, high]          // zero range → zero tensor
//   - NormalizeRowsMinMax(X, rows, lo, hi)  -> copy with listed rows jointly rescaled
//
// Zero-range policy:
//   - A constant tensor (or row group) has an undefined 0/0 rescale. Every kernel
//     here defines it as zero output rather than NaN, so downstream consumers
//     never see non-finite values produced by normalization.
//
// Determinism & Performance:
//   - Fixed flat 0..n-1 or i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMean                = "Mean"
	opStd                 = "Std"
	opMinMax              = "MinMax"
	opMinMaxRows          = "MinMaxRows"
	opZScore              = "ZScore"
	opNormalizeMinMax     = "NormalizeMinMax"
	opNormalizeRowsMinMax = "NormalizeRowsMinMax"
)

// flatValues returns the row-major values of X. For *Dense this is the backing
// buffer itself (read-only use); other implementations are copied via At.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func flatValues(X Matrix) ([]float64, error) {
	if d, ok := X.(*Dense); ok {
		return d.data, nil
	}
	r, c := X.Rows(), X.Cols()
	out := make([]float64, 0, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := X.At(i, j)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// Mean returns the arithmetic mean of every element of X.
// Errors:
//   - ErrNilMatrix; wrapped At errors from the fallback path.
//
// Complexity: O(r*c).
func Mean(X Matrix) (float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return 0, matrixErrorf(opMean, err)
	}
	vals, err := flatValues(X)
	if err != nil {
		return 0, matrixErrorf(opMean, err)
	}

	return meanOf(vals), nil
}

// meanOf computes the mean of a non-empty slice (0 for empty).
func meanOf(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	s := 0.0
	for _, v := range vals {
		s += v
	}

	return s / float64(len(vals))
}

// stdOf computes the sample standard deviation (Bessel-corrected, n-1) around mean.
// Fewer than two values yield 0.
func stdOf(vals []float64, mean float64) float64 {
	n := len(vals)
	if n < 2 {
		return 0
	}
	var ss, d float64
	for _, v := range vals {
		d = v - mean
		ss += d * d
	}

	return math.Sqrt(ss / float64(n-1))
}

// Std returns the sample standard deviation (n-1 denominator) of every element.
// A single-element tensor has Std 0.
//
// Complexity: O(r*c).
func Std(X Matrix) (float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return 0, matrixErrorf(opStd, err)
	}
	vals, err := flatValues(X)
	if err != nil {
		return 0, matrixErrorf(opStd, err)
	}

	return stdOf(vals, meanOf(vals)), nil
}

// MinMax returns the smallest and largest element of X.
// Complexity: O(r*c).
func MinMax(X Matrix) (lo, hi float64, err error) {
	if err = ValidateNotNil(X); err != nil {
		return 0, 0, matrixErrorf(opMinMax, err)
	}
	vals, err := flatValues(X)
	if err != nil {
		return 0, 0, matrixErrorf(opMinMax, err)
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi, nil
}

// MinMaxRows returns the joint extremes over the listed rows of X.
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (bad row), ErrInvalidDimensions (no rows).
//
// Complexity: O(len(rows)*c).
func MinMaxRows(X *Dense, rows []int) (lo, hi float64, err error) {
	if X == nil {
		return 0, 0, matrixErrorf(opMinMaxRows, ErrNilMatrix)
	}
	if len(rows) == 0 {
		return 0, 0, matrixErrorf(opMinMaxRows, ErrInvalidDimensions)
	}
	if err = ValidateRowIndices(rows, X.r); err != nil {
		return 0, 0, matrixErrorf(opMinMaxRows, err)
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	var v float64
	for _, i := range rows {
		for _, v = range X.data[i*X.c : (i+1)*X.c] {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	return lo, hi, nil
}

// ZScore standardizes X over all of its elements: (x - mean) / std.
// Implementation:
//   - Stage 1: validate and compute mean and sample std in two flat passes.
//   - Stage 2: degenerate std (constant tensor or a single element) → zero tensor.
//   - Stage 3: ewAffine with a = 1/std, b = -mean/std.
//
// Returns:
//   - *Dense: standardized copy (same shape).
//   - mean, std: the statistics used.
//
// Complexity: O(r*c).
func ZScore(X Matrix) (*Dense, float64, float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, 0, 0, matrixErrorf(opZScore, err)
	}
	vals, err := flatValues(X)
	if err != nil {
		return nil, 0, 0, matrixErrorf(opZScore, err)
	}
	mean := meanOf(vals)
	std := stdOf(vals, mean)
	if std == 0 {
		out, err := NewDense(X.Rows(), X.Cols())
		if err != nil {
			return nil, 0, 0, matrixErrorf(opZScore, err)
		}

		return out, mean, std, nil
	}
	out, err := ewAffine(X, 1/std, -mean/std)
	if err != nil {
		return nil, 0, 0, matrixErrorf(opZScore, err)
	}

	return out, mean, std, nil
}

// NormalizeMinMax rescales all of X affinely so that min→low and max→high.
// Errors:
//   - ErrNilMatrix, ErrBadRange (low >= high or non-finite).
//
// Zero range (max == min) yields a zero tensor.
//
// Complexity: O(r*c).
func NormalizeMinMax(X Matrix, low, high float64) (*Dense, error) {
	if err := ValidateRange(low, high); err != nil {
		return nil, matrixErrorf(opNormalizeMinMax, err)
	}
	lo, hi, err := MinMax(X)
	if err != nil {
		return nil, matrixErrorf(opNormalizeMinMax, err)
	}
	if hi == lo {
		out, err := NewDense(X.Rows(), X.Cols())
		if err != nil {
			return nil, matrixErrorf(opNormalizeMinMax, err)
		}

		return out, nil
	}
	a := (high - low) / (hi - lo)
	out, err := ewAffine(X, a, low-lo*a)
	if err != nil {
		return nil, matrixErrorf(opNormalizeMinMax, err)
	}

	return out, nil
}

// NormalizeRowsMinMax returns a copy of X where the listed rows are jointly
// rescaled into [low, high] using their shared min and max; other rows are
// copied unchanged. Zero range over the group zeroes the listed rows.
// An empty row list returns a plain copy.
//
// Errors:
//   - ErrNilMatrix, ErrBadRange, ErrOutOfRange.
//
// Complexity: O(r*c).
func NormalizeRowsMinMax(X *Dense, rows []int, low, high float64) (*Dense, error) {
	if X == nil {
		return nil, matrixErrorf(opNormalizeRowsMinMax, ErrNilMatrix)
	}
	if err := ValidateRange(low, high); err != nil {
		return nil, matrixErrorf(opNormalizeRowsMinMax, err)
	}
	out := X.CloneDense()
	if len(rows) == 0 {
		return out, nil
	}
	lo, hi, err := MinMaxRows(X, rows)
	if err != nil {
		return nil, matrixErrorf(opNormalizeRowsMinMax, err)
	}
	if hi == lo {
		if err = ewAffineRows(out, dedupe(rows), 0, 0); err != nil {
			return nil, matrixErrorf(opNormalizeRowsMinMax, err)
		}

		return out, nil
	}
	a := (high - low) / (hi - lo)
	if err = ewAffineRows(out, dedupe(rows), a, low-lo*a); err != nil {
		return nil, matrixErrorf(opNormalizeRowsMinMax, fmt.Errorf("rows %v: %w", rows, err))
	}

	return out, nil
}

// dedupe drops repeated row indices, preserving first occurrence order, so an
// in-place row kernel never rescales the same row twice.
func dedupe(idx []int) []int {
	seen := make(map[int]struct{}, len(idx))
	out := make([]int, 0, len(idx))
	for _, i := range idx {
		if _, ok := seen[i]; ok {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}

	return out
}
