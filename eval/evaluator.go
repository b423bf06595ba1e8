// SPDX-License-Identifier: MIT
// Package eval: the capability contracts and the concrete evaluators
// behind them. An evaluator is constructed immediately before the loop
// and dropped immediately after; the cached variants own a private
// temporary for exactly that long, the rest own nothing.
package eval

import (
	"fmt"

	"github.com/fruityi/light-matrix/mat"
)

// LinearEvaluator produces elements in flattened column-major order.
// Value must be valid for every index in [0, rows*cols).
type LinearEvaluator[T mat.Elem] interface {
	// Value returns the i-th element of the flattened expression.
	Value(i int) T
}

// PerColEvaluator produces elements within the current column and
// advances between columns on demand. Value must be valid for every
// index in [0, rows) of the current column, accessed in increasing
// order; NextColumn must fire exactly once per column boundary, never
// skipped or doubled, and columns are never revisited.
type PerColEvaluator[T mat.Elem] interface {
	// Value returns the i-th element within the current column.
	Value(i int) T
	// NextColumn moves internal state to the next column.
	NextColumn()
}

// contiguousLinear reads a contiguous dense source flat. Zero cost.
type contiguousLinear[T mat.Elem] struct {
	data []T
}

// newContiguousLinear wraps src's raw storage. src must be stride-free
// end to end; a strided source is refused with ErrNotContiguous.
func newContiguousLinear[T mat.Elem](src mat.DenseExpr[T]) (contiguousLinear[T], error) {
	if !src.Traits().Contiguous {
		return contiguousLinear[T]{}, fmt.Errorf("%s evaluator: %w", ContinuousLinear, ErrNotContiguous)
	}

	return contiguousLinear[T]{data: src.Data()}, nil
}

func (e contiguousLinear[T]) Value(i int) T { return e.data[i] }

// densePerCol reads any dense source column by column; the C++ original
// bumps a raw pointer by the leading dimension, here the window
// re-slices instead. Zero cost.
type densePerCol[T mat.Elem] struct {
	data []T
	ld   int
}

func newDensePerCol[T mat.Elem](src mat.DenseExpr[T]) *densePerCol[T] {
	return &densePerCol[T]{data: src.Data(), ld: src.LeadDim()}
}

func (e *densePerCol[T]) Value(i int) T { return e.data[i] }

// NextColumn slides the window one leading dimension forward. The loop
// engine also advances after the final column; that trailing advance may
// run past the backing slice, so it clamps instead of slicing out of
// range.
func (e *densePerCol[T]) NextColumn() {
	if e.ld < len(e.data) {
		e.data = e.data[e.ld:]
	} else {
		e.data = nil
	}
}

// constLinear broadcasts a scalar over the flattened destination.
type constLinear[T mat.Elem] struct {
	val T
}

func newConstLinear[T mat.Elem](src mat.ConstExpr[T]) constLinear[T] {
	return constLinear[T]{val: src.Value()}
}

func (e constLinear[T]) Value(_ int) T { return e.val }

// constPerCol broadcasts a scalar column by column; advancing is free.
type constPerCol[T mat.Elem] struct {
	val T
}

func newConstPerCol[T mat.Elem](src mat.ConstExpr[T]) constPerCol[T] {
	return constPerCol[T]{val: src.Value()}
}

func (e constPerCol[T]) Value(_ int) T { return e.val }
func (e constPerCol[T]) NextColumn()   {}

// cachedLinear materializes a computed expression once at construction,
// then reads the private temporary flat. The temporary is owned by the
// evaluator and dies with it.
type cachedLinear[T mat.Elem] struct {
	cache *mat.Dense[T]
	data  []T
}

func newCachedLinear[T mat.Elem](src mat.Expr[T]) cachedLinear[T] {
	c := mat.Materialize(src)

	return cachedLinear[T]{cache: c, data: c.Data()}
}

func (e cachedLinear[T]) Value(i int) T { return e.data[i] }

// cachedPerCol materializes once, then behaves like densePerCol over the
// private temporary.
type cachedPerCol[T mat.Elem] struct {
	cache *mat.Dense[T]
	inner densePerCol[T]
}

func newCachedPerCol[T mat.Elem](src mat.Expr[T]) *cachedPerCol[T] {
	c := mat.Materialize(src)

	return &cachedPerCol[T]{cache: c, inner: densePerCol[T]{data: c.Data(), ld: c.LeadDim()}}
}

func (e *cachedPerCol[T]) Value(i int) T { return e.inner.Value(i) }
func (e *cachedPerCol[T]) NextColumn()   { e.inner.NextColumn() }
