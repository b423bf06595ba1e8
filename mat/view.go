// SPDX-License-Identifier: MIT
// Package mat: View is a rectangular window into a Dense matrix sharing
// its storage. Views are dense (directly addressable) but generally not
// contiguous, which is exactly the expression class the cost model
// charges differently under linear and per-column organization.
package mat

import "fmt"

// View is a rows×cols window into a parent Dense. It keeps the parent's
// leading dimension, so it is contiguous only when it spans whole
// columns of the parent (or a single column).
type View[T Elem] struct {
	rows, cols int
	ld         int
	data       []T // parent storage starting at the window origin
}

// View returns the r×c window of m whose top-left element is (i, j).
// The window aliases m's storage: writes through the view mutate m.
// Returns ErrBadView for non-positive extents, ErrIndexOutOfBounds when
// the window escapes m.
// Complexity: O(1).
func (m *Dense[T]) View(i, j, r, c int) (*View[T], error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("View(%d,%d,%d,%d): %w", i, j, r, c, ErrBadView)
	}
	if i < 0 || j < 0 || i+r > m.rows || j+c > m.cols {
		return nil, fmt.Errorf("View(%d,%d,%d,%d): parent is %d×%d: %w",
			i, j, r, c, m.rows, m.cols, ErrIndexOutOfBounds)
	}
	off := i + j*m.ld

	return &View[T]{rows: r, cols: c, ld: m.ld, data: m.data[off:]}, nil
}

// ColView returns the single-column window m[:, j]. A single column is
// always contiguous. Complexity: O(1).
func (m *Dense[T]) ColView(j int) (*View[T], error) {
	return m.View(0, j, m.rows, 1)
}

// Rows returns the number of rows in the window. Complexity: O(1).
func (v *View[T]) Rows() int { return v.rows }

// Cols returns the number of columns in the window. Complexity: O(1).
func (v *View[T]) Cols() int { return v.cols }

// LeadDim returns the parent's leading dimension. Complexity: O(1).
func (v *View[T]) LeadDim() int { return v.ld }

// Data returns the shared storage starting at the window origin.
// Complexity: O(1).
func (v *View[T]) Data() []T { return v.data }

// IsContiguous reports whether the window elements form one unbroken
// column-major sequence. Complexity: O(1).
func (v *View[T]) IsContiguous() bool { return v.ld == v.rows || v.cols <= 1 }

// At returns the element at (i, j) within the window. Complexity: O(1).
func (v *View[T]) At(i, j int) T { return v.data[i+j*v.ld] }

// Set assigns val at (i, j) within the window, writing through to the
// parent. Complexity: O(1).
func (v *View[T]) Set(i, j int, val T) { v.data[i+j*v.ld] = val }

// Traits reports dense storage; contiguity depends on whether the
// window spans whole parent columns.
func (v *View[T]) Traits() Traits {
	return Traits{
		Rows:       Dyn(v.rows),
		Cols:       Dyn(v.cols),
		Dense:      true,
		Contiguous: v.IsContiguous(),
	}
}
