// SPDX-License-Identifier: MIT
// Package eval: Plan resolves the full evaluation strategy (cost
// comparison, organization, evaluator kind, loop bounds) once per
// (expression, destination, policy) combination. This file is the one
// bounded dispatch site; nothing downstream branches on strategy again.
package eval

import (
	"fmt"

	"github.com/fruityi/light-matrix/mat"
)

// Plan is a resolved evaluation strategy. It holds no operand state, so
// one plan may run many times against operands with the shape and
// capabilities it was built for.
type Plan[T mat.Elem] struct {
	org   Organization
	means Means
	kind  EvaluatorKind
	cost  int

	// Loop bounds baked from static extents; -1 means the bound is read
	// from the destination when the plan runs.
	length     int
	rows, cols int
}

// NewPlan validates the (src, dst, policy) combination and resolves the
// strategy. Every invalid combination is rejected here, before any
// destination element can be written:
//
//   - ErrMeansUnsupported: a means other than Scalar was requested.
//   - ErrShapeMismatch: dst's shape differs from src's, or src's pinned
//     static extents disagree with its live shape.
//   - ErrNotContiguous: Linear organization with a strided destination,
//     or with a dense-but-strided expression.
//
// Complexity: O(1); trait inspection only, no element access.
func NewPlan[T mat.Elem](src mat.Expr[T], dst mat.DenseExpr[T], opts ...Option) (*Plan[T], error) {
	o := gatherOptions(opts...)
	if o.means != Scalar {
		return nil, fmt.Errorf("NewPlan: %s means: %w", o.means, ErrMeansUnsupported)
	}

	tr := src.Traits()
	if src.Rows() != dst.Rows() || src.Cols() != dst.Cols() {
		return nil, fmt.Errorf("NewPlan: %d×%d into %d×%d: %w",
			src.Rows(), src.Cols(), dst.Rows(), dst.Cols(), ErrShapeMismatch)
	}
	if (tr.Rows.Static && tr.Rows.N != src.Rows()) ||
		(tr.Cols.Static && tr.Cols.N != src.Cols()) {
		return nil, fmt.Errorf("NewPlan: static extents disagree with live shape: %w", ErrShapeMismatch)
	}

	org := o.org
	if !o.orgSet {
		org, _ = o.costs.ChooseOrganization(tr)
	}

	p := &Plan[T]{org: org, means: o.means, length: -1, rows: -1, cols: -1}
	switch org {
	case Linear:
		if !dst.Traits().Contiguous {
			return nil, fmt.Errorf("NewPlan: strided destination: %w", ErrNotContiguous)
		}
		switch {
		case tr.Const:
			p.kind = ConstantLinear
		case tr.Dense && tr.Contiguous:
			p.kind = ContinuousLinear
		case tr.Dense:
			// Dense but strided: flat reads would cross column gaps.
			return nil, fmt.Errorf("NewPlan: strided expression: %w", ErrNotContiguous)
		default:
			p.kind = CachedLinear
		}
		p.cost = o.costs.Linear(tr)
		if tr.Rows.Static && tr.Cols.Static {
			p.length = tr.Rows.N * tr.Cols.N
		}
	case PerColumn:
		switch {
		case tr.Const:
			p.kind = ConstantPerColumn
		case tr.Dense:
			p.kind = DensePerColumn
		default:
			p.kind = CachedPerColumn
		}
		p.cost = o.costs.PerColumn(tr)
		if tr.Rows.Static {
			p.rows = tr.Rows.N
		}
		if tr.Cols.Static {
			p.cols = tr.Cols.N
		}
	}

	return p, nil
}

// Organization returns the resolved traversal organization.
func (p *Plan[T]) Organization() Organization { return p.org }

// Means returns the resolved execution means.
func (p *Plan[T]) Means() Means { return p.means }

// Evaluator returns the resolved evaluator kind.
func (p *Plan[T]) Evaluator() EvaluatorKind { return p.kind }

// Cost returns the cost the model charged the resolved organization for
// this expression. Meaningful only relative to the alternative
// organization of the same expression.
func (p *Plan[T]) Cost() int { return p.cost }

// Run constructs one evaluator instance from src and drives the matching
// loop engine to fill dst. The evaluator lives exactly for this call.
// Every element of dst is overwritten. src and dst must carry the shape
// and capabilities the plan was built for; mismatches surface as
// ErrShapeMismatch, ErrNotContiguous, or ErrPlanMismatch before anything
// is written.
// Complexity: O(rows×cols); cached kinds add one materialization pass.
func (p *Plan[T]) Run(src mat.Expr[T], dst mat.DenseExpr[T]) error {
	if src.Rows() != dst.Rows() || src.Cols() != dst.Cols() {
		return fmt.Errorf("Run: %d×%d into %d×%d: %w",
			src.Rows(), src.Cols(), dst.Rows(), dst.Cols(), ErrShapeMismatch)
	}
	// Bounds baked from static extents bind every later run: operands of
	// a different size would leave part of dst unwritten.
	if p.length >= 0 && dst.Rows()*dst.Cols() != p.length {
		return fmt.Errorf("Run: %d elements against a plan for %d: %w",
			dst.Rows()*dst.Cols(), p.length, ErrShapeMismatch)
	}
	if (p.rows >= 0 && dst.Rows() != p.rows) || (p.cols >= 0 && dst.Cols() != p.cols) {
		return fmt.Errorf("Run: %d×%d against a plan for %d×%d: %w",
			dst.Rows(), dst.Cols(), p.rows, p.cols, ErrShapeMismatch)
	}
	if p.org == Linear && !dst.Traits().Contiguous {
		return fmt.Errorf("Run: strided destination: %w", ErrNotContiguous)
	}

	switch p.kind {
	case ContinuousLinear:
		de, ok := src.(mat.DenseExpr[T])
		if !ok {
			return fmt.Errorf("Run: %s needs dense storage: %w", p.kind, ErrPlanMismatch)
		}
		ev, err := newContiguousLinear(de)
		if err != nil {
			return err
		}
		runLinear[T](ev, dst, p.length)
	case DensePerColumn:
		de, ok := src.(mat.DenseExpr[T])
		if !ok {
			return fmt.Errorf("Run: %s needs dense storage: %w", p.kind, ErrPlanMismatch)
		}
		runPerCol[T](newDensePerCol(de), dst, p.rows, p.cols)
	case ConstantLinear:
		ce, ok := src.(mat.ConstExpr[T])
		if !ok {
			return fmt.Errorf("Run: %s needs a constant source: %w", p.kind, ErrPlanMismatch)
		}
		runLinear[T](newConstLinear(ce), dst, p.length)
	case ConstantPerColumn:
		ce, ok := src.(mat.ConstExpr[T])
		if !ok {
			return fmt.Errorf("Run: %s needs a constant source: %w", p.kind, ErrPlanMismatch)
		}
		runPerCol[T](newConstPerCol(ce), dst, p.rows, p.cols)
	case CachedLinear:
		runLinear[T](newCachedLinear(src), dst, p.length)
	case CachedPerColumn:
		runPerCol[T](newCachedPerCol(src), dst, p.rows, p.cols)
	}

	return nil
}
