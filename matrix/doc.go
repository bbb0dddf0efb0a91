// Package matrix offers a dense, bounds-checked 2-D container of float64 values.
//
// The matrix package provides:
//
//   - Dense: a row-major m×n grid with a uniform fill value at construction,
//     in-place Resize that preserves the surviving top-left block, and
//     size introspection (Size reports (0, 0) for a matrix without rows).
//   - Two orthogonal access paths: Row/RowCopy (bounds-checked row, caller
//     indexes the column) and At/Set (both indices checked, Set is fail-fast).
//   - Value-semantic operations: Equal/NotEqual (exact ==), Add (same shape
//     only) and Scale/ScaleLeft (k*A == A*k by construction).
//
// All failures are sentinel errors matched with errors.Is: ErrOutOfRange for
// indices, ErrDimensionMismatch for shape-incompatible operands.
//
// Dense is not safe for concurrent mutation; callers serialize access.
package matrix
