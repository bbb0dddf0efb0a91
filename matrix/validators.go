// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/dimension checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil (*Dense)(nil) stored in the interface is also rejected.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape runs NotNil on both operands, then SameShape.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// maxCells bounds the element count of one buffer so that its byte size
// (8 per float64) still fits in an int.
const maxCells = math.MaxInt / 8

// ValidateDims ensures each requested dimension is in [0, maxCells]. Zero is legal.
// Errors: ErrInvalidDimensions.
// Complexity: O(len(dims)).
func ValidateDims(dims ...int) error {
	for _, d := range dims {
		if d < 0 || d > maxCells {
			return validatorErrorf("ValidateDims", ErrInvalidDimensions)
		}
	}

	return nil
}

// ValidateShape ensures rows×cols is a shape whose flat buffer can be allocated:
// both dimensions pass ValidateDims and rows*cols neither overflows int nor
// exceeds maxCells. A zero dimension is always legal.
// Errors: ErrInvalidDimensions.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if err := ValidateDims(rows, cols); err != nil {
		return err
	}
	if rows > 0 && cols > 0 && rows > maxCells/cols {
		return validatorErrorf("ValidateShape", ErrInvalidDimensions)
	}

	return nil
}
