// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise arithmetic with value semantics: Add (A + B) and scalar
//     multiplication in both operand orders (A * k, k * A).
//   - Inputs are never mutated; every result is a freshly allocated *Dense.
//
// Design:
//   - Fast path when operands are *Dense: single flat loop over the row-major buffer.
//   - Generic fallback via At with fixed i→j order for any Matrix implementation.
//   - ScaleLeft is defined purely in terms of Scale so both orders share one kernel.

package matrix

import "fmt"

// operation tags used in error wrappers
const (
	opAdd       = "Add"
	opScale     = "Scale"
	opScaleLeft = "ScaleLeft"
)

// matrixErrorf wraps err with an operation tag: "<tag>: <underlying>".
// Assumes err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Behavior highlights:
//   - Deterministic loop order; no hidden aliasing; one allocation for the result.
//   - Zero-row or zero-column operands of equal shape produce an empty result of that shape.
//
// Inputs:
//   - a: left matrix operand (any Matrix).
//   - b: right matrix operand (any Matrix) with the same shape as a.
//
// Returns:
//   - *Dense with C[i,j] = A[i,j] + B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols, 0)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + bv
		}
	}

	return res, nil
}

// Scale computes m * k and returns a fresh Dense result.
// MAIN DESCRIPTION:
//   - Copy the operand, then multiply every cell of the copy by k in place.
//
// Behavior highlights:
//   - Never fails on numeric input: NaN, ±Inf and overflow propagate per IEEE-754.
//   - k = 0 yields an explicit zero matrix with the same shape (or NaN where m holds ±Inf/NaN).
//
// Errors:
//   - ErrNilMatrix only.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, k float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast path: clone the buffer and scale it in place.
	if dm, ok := m.(*Dense); ok {
		res := dm.clone()
		res.Apply(func(_, _ int, x float64) float64 { return x * k })

		return res, nil
	}

	// Fallback: copy through the interface, then scale.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols, 0)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = v
		}
	}
	res.Apply(func(_, _ int, x float64) float64 { return x * k })

	return res, nil
}

// ScaleLeft computes k * m. It delegates to Scale(m, k), so both operand
// orders always produce identical results.
func ScaleLeft(k float64, m Matrix) (*Dense, error) {
	res, err := Scale(m, k)
	if err != nil {
		return nil, matrixErrorf(opScaleLeft, err)
	}

	return res, nil
}
