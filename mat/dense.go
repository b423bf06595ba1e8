// SPDX-License-Identifier: MIT
// Package mat: Dense is the concrete column-major matrix used both as an
// expression source and as the destination of evaluation. Elements are
// stored in a flat slice; element (i, j) lives at data[i + j*ld].
package mat

import (
	"fmt"
	"strings"
)

// Dense is a column-major matrix of T values. A freshly constructed
// Dense is always contiguous (ld == rows); strided shapes arise only
// through View.
type Dense[T Elem] struct {
	rows, cols int
	ld         int // leading dimension: stride between column starts
	data       []T // flat backing storage, length >= (cols-1)*ld + rows
}

// NewDense creates a zeroed rows×cols matrix.
// Returns ErrInvalidShape when either dimension is non-positive.
// Complexity: O(rows×cols) time and memory.
func NewDense[T Elem](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidShape)
	}

	return &Dense[T]{rows: rows, cols: cols, ld: rows, data: make([]T, rows*cols)}, nil
}

// NewDenseOf creates a rows×cols matrix from column-major data. The
// slice is copied, so the caller keeps ownership of its own storage.
// Returns ErrInvalidShape or ErrShortData on bad input.
// Complexity: O(rows×cols).
func NewDenseOf[T Elem](rows, cols int, data []T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDenseOf(%d,%d): %w", rows, cols, ErrInvalidShape)
	}
	if len(data) < rows*cols {
		return nil, fmt.Errorf("NewDenseOf(%d,%d): have %d elements: %w",
			rows, cols, len(data), ErrShortData)
	}
	d := make([]T, rows*cols)
	copy(d, data)

	return &Dense[T]{rows: rows, cols: cols, ld: rows, data: d}, nil
}

// FromColumns builds a matrix from per-column slices. All columns must
// have the same, positive length.
// Returns ErrInvalidShape for an empty input, ErrShapeMismatch for
// ragged columns.
// Complexity: O(rows×cols).
func FromColumns[T Elem](columns [][]T) (*Dense[T], error) {
	if len(columns) == 0 || len(columns[0]) == 0 {
		return nil, fmt.Errorf("FromColumns: %w", ErrInvalidShape)
	}
	rows, cols := len(columns[0]), len(columns)
	data := make([]T, rows*cols)
	for j, col := range columns {
		if len(col) != rows {
			return nil, fmt.Errorf("FromColumns: column %d has %d rows, want %d: %w",
				j, len(col), rows, ErrShapeMismatch)
		}
		copy(data[j*rows:(j+1)*rows], col)
	}

	return &Dense[T]{rows: rows, cols: cols, ld: rows, data: data}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.cols }

// LeadDim returns the stride between column starts. Complexity: O(1).
func (m *Dense[T]) LeadDim() int { return m.ld }

// NumElems returns rows×cols. Complexity: O(1).
func (m *Dense[T]) NumElems() int { return m.rows * m.cols }

// Data returns the backing slice starting at element (0, 0). The slice
// aliases the matrix storage; writes through it are visible in the
// matrix. Complexity: O(1).
func (m *Dense[T]) Data() []T { return m.data }

// IsContiguous reports whether the elements form one unbroken
// column-major sequence. Always true for matrices built by the
// constructors in this package. Complexity: O(1).
func (m *Dense[T]) IsContiguous() bool { return m.ld == m.rows || m.cols <= 1 }

// At returns the element at (i, j). Bounds are the caller's
// responsibility (out-of-range indices panic via the slice access).
// Complexity: O(1).
func (m *Dense[T]) At(i, j int) T { return m.data[i+j*m.ld] }

// Set assigns v at (i, j). Bounds are the caller's responsibility.
// Complexity: O(1).
func (m *Dense[T]) Set(i, j int, v T) { m.data[i+j*m.ld] = v }

// Traits reports dense storage with dynamic extents. Pin a shape with
// Fixed when the planner should treat it as static.
func (m *Dense[T]) Traits() Traits {
	return Traits{
		Rows:       Dyn(m.rows),
		Cols:       Dyn(m.cols),
		Dense:      true,
		Contiguous: m.IsContiguous(),
	}
}

// EqualShape reports whether m and e cover the same index space.
// Complexity: O(1).
func (m *Dense[T]) EqualShape(e Expr[T]) bool {
	return m.rows == e.Rows() && m.cols == e.Cols()
}

// Fill assigns v to every element. Complexity: O(rows×cols).
func (m *Dense[T]) Fill(v T) {
	for j := 0; j < m.cols; j++ {
		col := m.data[j*m.ld:]
		for i := 0; i < m.rows; i++ {
			col[i] = v
		}
	}
}

// Clone returns an independent, contiguous deep copy.
// Complexity: O(rows×cols).
func (m *Dense[T]) Clone() *Dense[T] {
	data := make([]T, m.rows*m.cols)
	for j := 0; j < m.cols; j++ {
		copy(data[j*m.rows:(j+1)*m.rows], m.data[j*m.ld:j*m.ld+m.rows])
	}

	return &Dense[T]{rows: m.rows, cols: m.cols, ld: m.rows, data: data}
}

// String implements fmt.Stringer for debugging.
// Complexity: O(rows×cols).
func (m *Dense[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", m.data[i+j*m.ld])
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// Materialize evaluates e into a fresh contiguous Dense in a single full
// pass. Dense sources are block-copied column by column; computed
// sources are read through At exactly once per element.
// Complexity: O(rows×cols).
func Materialize[T Elem](e Expr[T]) *Dense[T] {
	rows, cols := e.Rows(), e.Cols()
	out := &Dense[T]{rows: rows, cols: cols, ld: rows, data: make([]T, rows*cols)}

	if de, ok := e.(DenseExpr[T]); ok {
		src, ld := de.Data(), de.LeadDim()
		for j := 0; j < cols; j++ {
			copy(out.data[j*rows:(j+1)*rows], src[j*ld:j*ld+rows])
		}
		return out
	}
	for j := 0; j < cols; j++ {
		col := out.data[j*rows:]
		for i := 0; i < rows; i++ {
			col[i] = e.At(i, j)
		}
	}

	return out
}
