// SPDX-License-Identifier: MIT
// Package mat: Const is the broadcast expression: every element of its
// shape reads the same scalar. The planner routes constants through the
// dedicated constant evaluators at zero cost on every organization.
package mat

import "fmt"

// Const is a rows×cols expression whose every element equals a single
// scalar. It owns no storage and is never dense.
type Const[T Elem] struct {
	rows, cols int
	val        T
}

// NewConst returns the rows×cols broadcast of v.
// Returns ErrInvalidShape when either dimension is non-positive.
// Complexity: O(1).
func NewConst[T Elem](rows, cols int, v T) (*Const[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewConst(%d,%d): %w", rows, cols, ErrInvalidShape)
	}

	return &Const[T]{rows: rows, cols: cols, val: v}, nil
}

// Broadcast returns v broadcast over the shape of like.
// Complexity: O(1).
func Broadcast[T Elem](v T, like Expr[T]) *Const[T] {
	return &Const[T]{rows: like.Rows(), cols: like.Cols(), val: v}
}

// Rows returns the number of rows. Complexity: O(1).
func (c *Const[T]) Rows() int { return c.rows }

// Cols returns the number of columns. Complexity: O(1).
func (c *Const[T]) Cols() int { return c.cols }

// At returns the broadcast scalar for any (i, j). Complexity: O(1).
func (c *Const[T]) At(_, _ int) T { return c.val }

// Value returns the broadcast scalar. Complexity: O(1).
func (c *Const[T]) Value() T { return c.val }

// Traits reports a constant, non-dense expression with dynamic extents.
func (c *Const[T]) Traits() Traits {
	return Traits{
		Rows:  Dyn(c.rows),
		Cols:  Dyn(c.cols),
		Const: true,
	}
}
