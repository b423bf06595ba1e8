// SPDX-License-Identifier: MIT
// Package eval: the dispatch entry points tying cost-based selection,
// evaluator construction, and loop execution together.
package eval

import "github.com/fruityi/light-matrix/mat"

// Evaluate materializes src into dst under the given policy (by default:
// scalar means, cost-selected organization). The destination is fully
// overwritten on success; on error nothing has been written.
// Build a Plan directly when the same strategy will run many times.
// Complexity: O(rows×cols) plus one materialization pass for computed
// sources.
func Evaluate[T mat.Elem](src mat.Expr[T], dst mat.DenseExpr[T], opts ...Option) error {
	p, err := NewPlan(src, dst, opts...)
	if err != nil {
		return err
	}

	return p.Run(src, dst)
}

// EvaluateLinear materializes src into dst with the policy pinned to
// (linear, scalar), for call sites that already know both operands are
// contiguous. Combinations linear cannot serve fail with
// ErrNotContiguous.
func EvaluateLinear[T mat.Elem](src mat.Expr[T], dst mat.DenseExpr[T]) error {
	return Evaluate(src, dst, WithOrganization(Linear), WithMeans(Scalar))
}

// EvaluatePerColumn materializes src into dst with the policy pinned to
// (per-column, scalar). Valid for any dense destination.
func EvaluatePerColumn[T mat.Elem](src mat.Expr[T], dst mat.DenseExpr[T]) error {
	return Evaluate(src, dst, WithOrganization(PerColumn), WithMeans(Scalar))
}
