// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped with
// call-site context) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with fmt.Errorf("ctx: %w", ErrX);
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> negative dimension -> index/shape.

var (
	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Returned by At, Set, Row and RowCopy. Set performs no write when it is returned.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands whose shapes differ, e.g. Add of
	// a 2×3 and a 3×2 matrix. This is the invalid-argument error kind.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidDimensions indicates that a requested dimension is negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned when input rows are not rectangular (jagged literal).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNilMatrix indicates that a nil Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf tolerance passed to AllClose.
	// Cell values themselves are never rejected.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
