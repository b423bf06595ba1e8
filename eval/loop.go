// SPDX-License-Identifier: MIT
// Package eval: the scalar loop engines. Bounds arrive pre-resolved
// from the plan (baked when the extents were static, -1 to read from
// the destination); the loops themselves are branch-free per element.
package eval

import "github.com/fruityi/light-matrix/mat"

// runLinear writes ev's flattened output into dst. n is the baked
// element count, or -1 to take it from the destination.
func runLinear[T mat.Elem](ev LinearEvaluator[T], dst mat.DenseExpr[T], n int) {
	if n < 0 {
		n = dst.Rows() * dst.Cols()
	}
	d := dst.Data()
	for i := 0; i < n; i++ {
		d[i] = ev.Value(i)
	}
}

// runPerCol writes ev's output into dst column by column. rows and cols
// are the baked extents, each independently -1 to take from the
// destination. Rows are visited in increasing order within each column;
// NextColumn fires exactly once after each inner loop, including the
// last (matching the source pointer walking off the final column).
func runPerCol[T mat.Elem](ev PerColEvaluator[T], dst mat.DenseExpr[T], rows, cols int) {
	if rows < 0 {
		rows = dst.Rows()
	}
	if cols < 0 {
		cols = dst.Cols()
	}
	ld := dst.LeadDim()
	d := dst.Data()
	for j := 0; j < cols; j++ {
		col := d[j*ld:]
		for i := 0; i < rows; i++ {
			col[i] = ev.Value(i)
		}
		ev.NextColumn()
	}
}
