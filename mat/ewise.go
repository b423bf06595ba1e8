// SPDX-License-Identifier: MIT
// Package mat: lazily computed element-wise expressions. Map and Zip
// never materialize anything themselves; they are the non-dense
// expression class the engine serves through its cached evaluators.
package mat

import "fmt"

// Map returns the expression f applied element-wise to e. The result is
// computed per access and carries e's extents (including staticness).
// Complexity: O(1) to build; each At costs e.At plus one f call.
func Map[T Elem](e Expr[T], f func(T) T) Expr[T] {
	return &mapExpr[T]{src: e, f: f}
}

type mapExpr[T Elem] struct {
	src Expr[T]
	f   func(T) T
}

func (m *mapExpr[T]) Rows() int      { return m.src.Rows() }
func (m *mapExpr[T]) Cols() int      { return m.src.Cols() }
func (m *mapExpr[T]) At(i, j int) T  { return m.f(m.src.At(i, j)) }
func (m *mapExpr[T]) Traits() Traits { return computedTraits(m.src.Traits()) }

// Zip returns the expression f applied element-wise to pairs from a and
// b. Shapes must match exactly; broadcast a scalar operand with
// Broadcast or Const first.
// Returns ErrShapeMismatch when the operand shapes differ.
// Complexity: O(1) to build; each At costs both operands plus one f call.
func Zip[T Elem](a, b Expr[T], f func(x, y T) T) (Expr[T], error) {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return nil, fmt.Errorf("Zip: %d×%d vs %d×%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrShapeMismatch)
	}

	return &zipExpr[T]{a: a, b: b, f: f}, nil
}

type zipExpr[T Elem] struct {
	a, b Expr[T]
	f    func(x, y T) T
}

func (z *zipExpr[T]) Rows() int     { return z.a.Rows() }
func (z *zipExpr[T]) Cols() int     { return z.a.Cols() }
func (z *zipExpr[T]) At(i, j int) T { return z.f(z.a.At(i, j), z.b.At(i, j)) }

func (z *zipExpr[T]) Traits() Traits {
	ta, tb := z.a.Traits(), z.b.Traits()
	tr := computedTraits(ta)
	// A static extent on either operand pins the common one.
	if !tr.Rows.Static && tb.Rows.Static {
		tr.Rows = tb.Rows
	}
	if !tr.Cols.Static && tb.Cols.Static {
		tr.Cols = tb.Cols
	}

	return tr
}

// computedTraits keeps the extents of tr but strips every storage
// capability: a computed expression is neither dense, contiguous, nor
// constant.
func computedTraits(tr Traits) Traits {
	return Traits{Rows: tr.Rows, Cols: tr.Cols}
}
