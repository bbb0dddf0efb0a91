// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep the rectangular invariant structural: one flat buffer, one column count.
//   - Support in-place reshaping (Resize) that preserves the surviving top-left block.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) fill; At/Set/Row: O(1); RowCopy: O(c); Clone/Values: O(r*c);
//     Resize: O(r'*c') for the new buffer.

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxRow     = "Row"     // method tag used in error wrappers
	ctxRowCopy = "RowCopy" // method tag used in error wrappers
	ctxNew     = "NewDense"
	ctxResize  = "Resize"
	ctxFrom    = "FromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>"; the sentinel is preserved via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of float64 values.
//   - r,c hold dimensions (rows, cols); c is 0 whenever r is 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is a ready-to-use 0×0 matrix. A Dense exclusively owns its
// buffer: Clone, Values, RowCopy and every arithmetic result allocate fresh
// storage. Dense is not safe for concurrent mutation.
type Dense struct {
	r, c int       // row and column counts (>=0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// New returns an empty 0×0 matrix. It is equivalent to &Dense{}.
func New() *Dense { return &Dense{} }

// NewDense creates a rows×cols matrix with every cell set to fill.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with non-negative shape validation.
//
// Implementation:
//   - Stage 1: validate the shape (non-negative, rows*cols allocatable); else ErrInvalidDimensions.
//   - Stage 2: allocate the flat buffer and write fill into every cell.
//
// Behavior highlights:
//   - Zero dimensions are legal; a 0×n request yields the canonical 0×0 shape.
//
// Errors:
//   - ErrInvalidDimensions (negative rows or cols, or rows*cols too large to allocate).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, fill float64) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, denseErrorf(ctxNew, rows, cols, err)
	}
	m := &Dense{}
	m.reshape(rows, cols, fill)

	return m, nil
}

// FromRows copies a rectangular 2-D literal into a new Dense.
// Every row must have the same length; a jagged input fails with ErrBadShape.
// An empty input yields a 0×0 matrix.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return New(), nil
	}
	r, c := len(rows), len(rows[0])
	m := &Dense{}
	m.reshape(r, c, 0)
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, denseErrorf(ctxFrom, i, len(rows[i]), ErrBadShape)
		}
		copy(m.data[i*m.c:(i+1)*m.c], rows[i])
	}

	return m, nil
}

// reshape replaces the storage with a fresh rows×cols buffer filled with fill.
// Assumes validated, non-negative dimensions.
func (m *Dense) reshape(rows, cols int, fill float64) {
	if rows == 0 {
		cols = 0 // a row-less matrix has no columns to report
	}
	buf := make([]float64, rows*cols)
	if fill != 0 {
		for k := range buf {
			buf[k] = fill
		}
	}
	m.r, m.c, m.data = rows, cols, buf
}

// Resize changes the shape in place to rows×cols.
// MAIN DESCRIPTION:
//   - Cells inside both the old and the new bounds keep their value.
//   - Every other cell of the new shape (new rows, new columns of surviving
//     rows) is set to fill. Cells outside the new bounds are discarded.
//
// Implementation:
//   - Stage 1: validate dimensions; on failure the matrix is left untouched.
//   - Stage 2: allocate a new fill-initialised buffer.
//   - Stage 3: copy the min(r,r')×min(c,c') top-left block row by row.
//
// Errors:
//   - ErrInvalidDimensions (negative rows or cols, or rows*cols too large to allocate).
//
// Complexity:
//   - Time O(r'*c'), Space O(r'*c').
//
// Notes:
//   - Slices previously returned by Row no longer alias the matrix.
func (m *Dense) Resize(rows, cols int, fill float64) error {
	if err := ValidateShape(rows, cols); err != nil {
		return denseErrorf(ctxResize, rows, cols, err)
	}
	oldR, oldC, old := m.r, m.c, m.data
	m.reshape(rows, cols, fill)

	keepR, keepC := min(oldR, m.r), min(oldC, m.c)
	for i := 0; i < keepR; i++ {
		copy(m.data[i*m.c:i*m.c+keepC], old[i*oldC:i*oldC+keepC])
	}

	return nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count (0 when there are no rows).
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Size returns (rows, cols). A matrix without rows reports (0, 0).
// Complexity: O(1).
func (m *Dense) Size() (rows, cols int) { return m.r, m.c }

// Shape is an alias of Size kept for symmetry with other matrix APIs.
func (m *Dense) Shape() (rows, cols int) { return m.Size() }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Both checks run before any access so that callers never partially act.
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
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// On error nothing is written. Any float64, including NaN and ±Inf, is accepted.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns row i as a slice that aliases the matrix storage.
// MAIN DESCRIPTION:
//   - Bounds-checked first-level index; the caller indexes the column itself.
//
// Behavior highlights:
//   - Writes through the slice mutate the matrix.
//   - Capacity equals the row length, so append never spills into row i+1.
//   - The slice stops aliasing the matrix after Resize.
//
// Errors:
//   - ErrOutOfRange when i<0 or i>=Rows().
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	lo, hi := i*m.c, (i+1)*m.c

	return m.data[lo:hi:hi], nil
}

// RowCopy returns an independent copy of row i (a read-only view).
// Errors: ErrOutOfRange when i<0 or i>=Rows(). Complexity: O(c).
func (m *Dense) RowCopy(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRowCopy, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy with its own buffer.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.clone() }

// clone is the concrete-typed deep copy used by arithmetic kernels.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Values returns a row-by-row snapshot of the matrix.
// The result shares no storage with m. A matrix without rows yields an empty, non-nil slice.
// Complexity: O(r*c).
func (m *Dense) Values() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders one bracketed, comma-separated line per row, e.g. "[1, 2]\n[3, 4]\n".
// A matrix without rows renders as "". Intended for diagnostics, not hot paths.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j, v := range m.data[i*m.c : (i+1)*m.c] {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int // predeclare loop counters and base offset

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c            // compute flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, in row-major order.
// No numeric policy is enforced: NaN and ±Inf results are stored as-is.
// Complexity: O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) {
	var i, j, base int // predeclare loop counters and base offset

	for i = 0; i < m.r; i++ { // iterate rows
		base = i * m.c            // base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
