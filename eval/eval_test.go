// SPDX-License-Identifier: MIT
package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fruityi/light-matrix/eval"
	"github.com/fruityi/light-matrix/mat"
)

//----------------------------------------------------------------------------//
// End-to-End Evaluation Tests
//----------------------------------------------------------------------------//

// TestEvaluate_ContiguousLinear verifies flat equivalence for contiguous
// dense sources: dst[i] == flatten(src)[i].
func TestEvaluate_ContiguousLinear(t *testing.T) {
	src, err := mat.NewDenseOf[float64](3, 4, []float64{
		1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12,
	})
	require.NoError(t, err)
	dst, err := mat.NewDense[float64](3, 4)
	require.NoError(t, err)

	require.NoError(t, eval.Evaluate(mat.Expr[float64](src), dst))
	assert.Equal(t, src.Data(), dst.Data())
}

// TestEvaluate_StridedPerColumn verifies dst[i + j*ldim] == src(i, j) for
// a dense, non-contiguous source, and that writes stay inside a strided
// destination window.
func TestEvaluate_StridedPerColumn(t *testing.T) {
	parent, err := mat.NewDense[int](5, 3)
	require.NoError(t, err)
	for j := 0; j < 3; j++ {
		for i := 0; i < 5; i++ {
			parent.Set(i, j, 100*i+j)
		}
	}
	src, err := parent.View(1, 0, 3, 3)
	require.NoError(t, err)

	// Strided destination: a window of another matrix, pre-filled with a
	// sentinel to detect out-of-window writes.
	canvas, err := mat.NewDense[int](6, 3)
	require.NoError(t, err)
	canvas.Fill(-1)
	dst, err := canvas.View(2, 0, 3, 3)
	require.NoError(t, err)

	require.NoError(t, eval.Evaluate(mat.Expr[int](src), dst))

	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			assert.Equal(t, src.At(i, j), dst.At(i, j), "dst(%d,%d)", i, j)
		}
	}
	// Rows 0..1 and 5 of the canvas must be untouched.
	for j := 0; j < 3; j++ {
		assert.Equal(t, -1, canvas.At(0, j), "write escaped the window at (0,%d)", j)
		assert.Equal(t, -1, canvas.At(1, j), "write escaped the window at (1,%d)", j)
		assert.Equal(t, -1, canvas.At(5, j), "write escaped the window at (5,%d)", j)
	}
}

// countedExpr is a computed expression that counts element reads, so the
// tests can prove the cached evaluators materialize exactly once.
type countedExpr struct {
	src   *mat.Dense[float64]
	reads *int
}

func (c countedExpr) Rows() int { return c.src.Rows() }
func (c countedExpr) Cols() int { return c.src.Cols() }
func (c countedExpr) At(i, j int) float64 {
	*c.reads++
	return 2 * c.src.At(i, j)
}
func (c countedExpr) Traits() mat.Traits {
	return mat.Traits{Rows: mat.Dyn(c.src.Rows()), Cols: mat.Dyn(c.src.Cols())}
}

// TestEvaluate_CachedMaterializesOnce verifies the computed path: correct
// values, cached evaluator, and exactly one full materialization pass.
func TestEvaluate_CachedMaterializesOnce(t *testing.T) {
	base, err := mat.NewDenseOf[float64](4, 5, func() []float64 {
		d := make([]float64, 20)
		for i := range d {
			d[i] = float64(i)
		}
		return d
	}())
	require.NoError(t, err)
	dst, err := mat.NewDense[float64](4, 5)
	require.NoError(t, err)

	for _, org := range []eval.Organization{eval.Linear, eval.PerColumn} {
		t.Run(org.String(), func(t *testing.T) {
			reads := 0
			src := countedExpr{src: base, reads: &reads}

			require.NoError(t, eval.Evaluate(mat.Expr[float64](src), dst, eval.WithOrganization(org)))
			assert.Equal(t, 20, reads, "materialization must read each element exactly once")

			for j := 0; j < 5; j++ {
				for i := 0; i < 4; i++ {
					assert.Equal(t, 2*base.At(i, j), dst.At(i, j), "dst(%d,%d)", i, j)
				}
			}
		})
	}
}

// TestEvaluate_Constant verifies broadcast fills on every organization
// and destination shape, always through the zero-cost constant path.
func TestEvaluate_Constant(t *testing.T) {
	shapes := [][2]int{{1, 1}, {4, 1}, {1, 6}, {3, 5}}
	for _, s := range shapes {
		k, err := mat.NewConst(s[0], s[1], int64(7))
		require.NoError(t, err)
		dst, err := mat.NewDense[int64](s[0], s[1])
		require.NoError(t, err)

		for _, org := range []eval.Organization{eval.Linear, eval.PerColumn} {
			p, err := eval.NewPlan(mat.Expr[int64](k), dst, eval.WithOrganization(org))
			require.NoError(t, err)
			assert.Equal(t, 0, p.Cost(), "constants are never routed through the cache")

			dst.Fill(0)
			require.NoError(t, p.Run(mat.Expr[int64](k), dst))
			for j := 0; j < s[1]; j++ {
				for i := 0; i < s[0]; i++ {
					assert.Equal(t, int64(7), dst.At(i, j))
				}
			}
		}
	}
}

// TestEvaluate_Idempotent verifies that two successive evaluations leave
// identical destination contents (no cross-call evaluator state).
func TestEvaluate_Idempotent(t *testing.T) {
	src, err := mat.NewDenseOf[float64](3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	e := mat.Map[float64](src, mat.Sqrt[float64])
	dst, err := mat.NewDense[float64](3, 3)
	require.NoError(t, err)

	require.NoError(t, eval.Evaluate[float64](e, dst))
	first := dst.Clone()
	require.NoError(t, eval.Evaluate[float64](e, dst))
	assert.Equal(t, first.Data(), dst.Data())
}

// TestEvaluate_FourByOne is the end-to-end example: a 4×1 contiguous
// source through both convenience entry points.
func TestEvaluate_FourByOne(t *testing.T) {
	src, err := mat.NewDenseOf[float64](4, 1, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	lin, err := mat.NewDense[float64](4, 1)
	require.NoError(t, err)
	require.NoError(t, eval.EvaluateLinear(mat.Expr[float64](src), lin))
	assert.Equal(t, []float64{1, 2, 3, 4}, lin.Data())

	pc, err := mat.NewDense[float64](4, 1)
	require.NoError(t, err)
	require.NoError(t, eval.EvaluatePerColumn(mat.Expr[float64](src), pc))
	assert.Equal(t, []float64{1, 2, 3, 4}, pc.Data())
}

// TestEvaluate_ExpressionTree runs a composed expression end to end:
// clamp((a - b)², 0, 50) over mixed dense operands.
func TestEvaluate_ExpressionTree(t *testing.T) {
	a, err := mat.NewDenseOf[float64](2, 3, []float64{1, 8, 2, 9, 3, 10})
	require.NoError(t, err)
	b, err := mat.NewDenseOf[float64](2, 3, []float64{4, 0, 4, 0, 4, 0})
	require.NoError(t, err)

	diff, err := mat.Zip[float64](a, b, mat.Sub[float64])
	require.NoError(t, err)
	e := mat.Map[float64](mat.Map[float64](diff, mat.Sqr[float64]), func(x float64) float64 {
		return mat.Clamp(x, 0, 50)
	})

	dst, err := mat.NewDense[float64](2, 3)
	require.NoError(t, err)
	require.NoError(t, eval.Evaluate[float64](e, dst))

	for j := 0; j < 3; j++ {
		for i := 0; i < 2; i++ {
			d := a.At(i, j) - b.At(i, j)
			want := mat.Clamp(d*d, 0, 50)
			assert.Equal(t, want, dst.At(i, j), "dst(%d,%d)", i, j)
		}
	}
}

// TestEvaluate_Int32 exercises a non-float element type through the
// generic core.
func TestEvaluate_Int32(t *testing.T) {
	src, err := mat.NewDenseOf[int32](2, 2, []int32{1, 2, 3, 4})
	require.NoError(t, err)
	e := mat.Map[int32](src, mat.Cube[int32])
	dst, err := mat.NewDense[int32](2, 2)
	require.NoError(t, err)

	require.NoError(t, eval.Evaluate[int32](e, dst))
	assert.Equal(t, []int32{1, 8, 27, 64}, dst.Data())
}
