// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based column windows (Columns) for temporal cropping.
//   - Reject NaN/Inf on every checked write (ingestion, Set, FillRow).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row/FillRow: O(c); Columns: O(r*w).
//
// Notes:
//   - Recorded signals routinely contain flat segments and clipped rails, but
//     NaN usually means a dropped packet upstream. Ingestion rejects it so a
//     broken instance fails loudly instead of poisoning normalization
//     statistics downstream.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxRow     = "Row"     // method tag for Row/RowSlice
	ctxFillRow = "FillRow" // method tag for FillRow
	ctxColumns = "Columns" // ctor/tag for Dense.Columns
	ctxFrom    = "NewDenseFrom"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows=channels, cols=samples for instance tensors).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>0 for public constructors)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseFrom creates an r×c matrix holding a copy of data (row-major).
// MAIN DESCRIPTION:
//   - Ingestion entry point for instance tensors handed over by a dataset.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0.
//   - Stage 2: check len(data) == rows*cols.
//   - Stage 3: copy, rejecting NaN/±Inf.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape (length mismatch), ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - The caller keeps ownership of data; later mutations do not leak in.
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): len=%d: %w", ctxFrom, rows, cols, len(data), ErrBadShape)
	}

	buf := make([]float64, len(data))
	var k int
	for k = 0; k < len(data); k++ {
		if !isFinite(data[k]) {
			return nil, denseErrorf(ctxFrom, k/cols, k%cols, ErrNaNInf)
		}
		buf[k] = data[k]
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseRows creates a matrix from equally long row slices (one per channel).
// Errors:
//   - ErrInvalidDimensions (no rows or empty rows), ErrDimensionMismatch (ragged rows), ErrNaNInf.
func NewDenseRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	c := len(rows[0])
	flat := make([]float64, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseRows: row %d has %d samples, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		flat = append(flat, row...)
	}

	return NewDenseFrom(len(rows), c, flat)
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Implementation:
//   - Stage 1: validate 0 ≤ row < m.r and 0 ≤ col < m.c.
//   - Stage 2: compute row*m.c + col.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or non-finite v).
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: reject NaN/±Inf.
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	if !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer).
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	return m.CloneDense()
}

// CloneDense is Clone with the concrete return type.
// Complexity: O(r*c).
func (m *Dense) CloneDense() *Dense {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Row returns a copy of row i.
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
//
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	src, err := m.RowSlice(i)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(src))
	copy(out, src)

	return out, nil
}

// RowSlice returns row i as a slice sharing the backing buffer.
// Writes through the slice bypass the NaN/Inf check; use it only on tensors
// the caller owns (e.g. a fresh Clone inside a kernel).
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
//
// Complexity: O(1).
func (m *Dense) RowSlice(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// FillRow sets every element of row i to v.
// Errors:
//   - ErrOutOfRange, ErrNaNInf.
//
// Complexity: O(c).
func (m *Dense) FillRow(i int, v float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxFillRow, i, 0, ErrOutOfRange)
	}
	if !isFinite(v) {
		return denseErrorf(ctxFillRow, i, 0, ErrNaNInf)
	}
	row := m.data[i*m.c : (i+1)*m.c]
	for j := range row {
		row[j] = v
	}

	return nil
}

// Columns copies the contiguous column window [c0, c1) of every row.
// Used for temporal cropping of an instance.
//
// Errors:
//   - ErrBadShape when the window is empty or outside [0, Cols()].
//
// Complexity: O(r*(c1-c0)).
func (m *Dense) Columns(c0, c1 int) (*Dense, error) {
	if c0 < 0 || c1 > m.c || c1 <= c0 {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %w", ctxColumns, c0, c1, ErrBadShape)
	}
	w := c1 - c0
	res := &Dense{r: m.r, c: w, data: make([]float64, m.r*w)}
	var i int
	for i = 0; i < m.r; i++ {
		copy(res.data[i*w:(i+1)*w], m.data[i*m.c+c0:i*m.c+c1])
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
