// Package matrix provides the row-major tensor used for a single biosignal
// instance: rows are channels, columns are samples.
//
// The matrix package provides:
//
//   - Dense, a flat row-major buffer with safe accessors (At/Set never panic)
//     and row-level helpers (Row, RowSlice, FillRow, Columns) for channel work.
//   - Linear algebra kernels (Mul, Transpose, AddScaledRow) used to project
//     channels through a static mapping matrix and to mix one channel into another.
//   - Whole-tensor and row-group statistics (Mean, Std, MinMax, ZScore,
//     NormalizeMinMax, NormalizeRowsMinMax) with a defined zero-range policy.
//   - Validators and sentinel errors shared by every kernel.
//
// Tensors are small (tens of channels by a few thousand samples), so every
// kernel allocates a fresh output and never mutates its operands unless the
// method name says so (Set, FillRow, AddScaledRow).
package matrix
