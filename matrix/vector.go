// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// CreateVector returns a slice of size elements, each equal to value.
// It depends on no matrix instance. size == 0 yields an empty, non-nil slice.
//
// Errors:
//   - ErrInvalidDimensions when size is negative.
//
// Complexity: O(size).
func CreateVector(size int, value float64) ([]float64, error) {
	if err := ValidateDims(size); err != nil {
		return nil, fmt.Errorf("CreateVector(%d): %w", size, err)
	}
	out := make([]float64, size)
	for i := range out {
		out[i] = value
	}

	return out, nil
}
