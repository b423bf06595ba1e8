// SPDX-License-Identifier: MIT
// Package mat defines the element constraint, extent/trait metadata, and
// the expression capability interfaces consumed by package eval.
package mat

// Elem enumerates the element types the engine can evaluate.
type Elem interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Float restricts to the floating-point subset of Elem; the
// transcendental functors in funcs.go are only defined here.
type Float interface {
	~float32 | ~float64
}

// Extent describes one dimension of an expression: its current value and
// whether that value is pinned (known when the plan is built, so loop
// bounds may be baked and the short-vector rule may apply).
type Extent struct {
	N      int  // current number of rows or columns
	Static bool // true when pinned at construction
}

// Dyn returns a run-time-determined extent of size n.
func Dyn(n int) Extent { return Extent{N: n} }

// Pin returns a static extent of size n.
func Pin(n int) Extent { return Extent{N: n, Static: true} }

// Traits is the capability metadata the planner consults once per
// (expression, destination, policy) combination. It is a value snapshot:
// expressions are immutable in shape, so traits never change after
// construction.
type Traits struct {
	Rows Extent // row extent
	Cols Extent // column extent

	// Dense reports directly addressable storage (Data/LeadDim available).
	Dense bool
	// Contiguous reports that the elements form one unbroken sequence in
	// flattened column-major order (no per-column stride handling).
	// Implies Dense.
	Contiguous bool
	// Const reports a broadcast scalar (every element identical).
	Const bool
}

// Expr is a read-only producer of elements over a 2-D index space.
// At must be valid for every 0 ≤ i < Rows(), 0 ≤ j < Cols().
type Expr[T Elem] interface {
	// Rows returns the current number of rows. Complexity: O(1).
	Rows() int
	// Cols returns the current number of columns. Complexity: O(1).
	Cols() int
	// At returns the element at (i, j). Bounds are the caller's
	// responsibility. Complexity: O(1) for dense sources, O(depth of the
	// expression tree) for computed ones.
	At(i, j int) T
	// Traits returns the capability metadata for this expression.
	Traits() Traits
}

// DenseExpr is an Expr backed by directly addressable column-major
// storage. Element (i, j) lives at Data()[i + j*LeadDim()]. The returned
// slice aliases the expression's storage; writing through it mutates the
// matrix (this is how evaluation destinations receive their values).
type DenseExpr[T Elem] interface {
	Expr[T]
	// Data returns the backing storage starting at element (0, 0).
	Data() []T
	// LeadDim returns the stride, in elements, between column starts.
	LeadDim() int
}

// ConstExpr is an Expr statically known to produce a single value.
type ConstExpr[T Elem] interface {
	Expr[T]
	// Value returns the broadcast scalar.
	Value() T
}

// Fixed pins e's current shape as static extents, preserving the dense
// and constant capabilities of the wrapped expression. The planner bakes
// loop bounds from static extents and applies the short-vector rule to
// static row counts.
func Fixed[T Elem](e Expr[T]) Expr[T] {
	switch x := e.(type) {
	case DenseExpr[T]:
		return fixedDense[T]{x}
	case ConstExpr[T]:
		return fixedConst[T]{x}
	default:
		return fixedExpr[T]{e}
	}
}

// pinShape rewrites both extents of tr as static, using the live shape.
func pinShape(tr Traits, rows, cols int) Traits {
	tr.Rows = Pin(rows)
	tr.Cols = Pin(cols)
	return tr
}

type fixedExpr[T Elem] struct{ Expr[T] }

func (f fixedExpr[T]) Traits() Traits {
	return pinShape(f.Expr.Traits(), f.Expr.Rows(), f.Expr.Cols())
}

type fixedDense[T Elem] struct{ DenseExpr[T] }

func (f fixedDense[T]) Traits() Traits {
	return pinShape(f.DenseExpr.Traits(), f.DenseExpr.Rows(), f.DenseExpr.Cols())
}

type fixedConst[T Elem] struct{ ConstExpr[T] }

func (f fixedConst[T]) Traits() Traits {
	return pinShape(f.ConstExpr.Traits(), f.ConstExpr.Rows(), f.ConstExpr.Cols())
}
