// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Exact value equality (Equal / NotEqual) using native float64 ==.
//   - A separate tolerant comparison (AllClose) for callers that need one.
//
// Policy:
//   - Equal never applies an epsilon: 0.1+0.2 is not equal to 0.3, and NaN is
//     never equal to anything, including itself. Integral fixtures compare exactly.

package matrix

import "math"

// Equal reports whether a and b hold the same shape and the same values.
// Row counts must match and every row must be element-wise equal (==).
// Two nil matrices are equal; nil and non-nil are not.
// Complexity: O(r*c), early exit on the first difference.
func Equal(a, b Matrix) bool {
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return aNil == bNil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	// Dense fast-path: flat walk over both buffers.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}

			return true
		}
	}

	// Generic fallback via At; shapes already match so indices are valid.
	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if av != bv {
				return false
			}
		}
	}

	return true
}

// NotEqual is the logical negation of Equal.
func NotEqual(a, b Matrix) bool { return !Equal(a, b) }

// Equal reports whether m and o are equal in the sense of the package-level Equal.
func (m *Dense) Equal(o Matrix) bool { return Equal(m, o) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances fail with ErrNaNInf.
//   - A NaN cell never satisfies the relation.
//
// Complexity: O(r*c) time, O(1) space.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	within := func(av, bv float64) bool {
		if av == bv { // covers equal infinities
			return true
		}

		return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
	}

	// Dense fast-path.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !within(da.data[idx], db.data[idx]) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	// Generic fallback via At.
	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if !within(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
