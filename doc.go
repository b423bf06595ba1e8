// Package lightmatrix is a dense-matrix expression evaluation engine:
// build a symbolic element-wise expression over matrices, hand it a
// destination, and the engine picks the cheapest valid way to
// materialize it, then runs that strategy with no per-element branching.
//
// 🚀 What is light-matrix?
//
//	Two packages that work together:
//		• mat/  — column-major Dense storage, strided views, broadcast
//		          constants, and lazy Map/Zip expressions with a functor set
//		• eval/ — the cost-model-driven dispatcher: linear vs. per-column
//		          traversal, direct vs. constant vs. cached evaluators,
//		          resolved once per plan and reusable across calls
//
// ✨ Why choose light-matrix?
//
//   - Strategy hoisted out of the loops – selection happens once, at plan
//     construction; the element loops stay tight
//   - Everything rejected up front – shape, layout, and policy conflicts
//     fail before a single element is written
//   - Pure Go, no cgo – generic over int and float element types
//   - Extensible – the scalar/vectorized means axis is a documented seam
//     for a future SIMD path
//
// Quick example:
//
//	a, _ := mat.NewDenseOf[float64](2, 2, []float64{1, 2, 3, 4})
//	e := mat.Map[float64](a, mat.Sqr[float64])
//	dst, _ := mat.NewDense[float64](2, 2)
//	_ = eval.Evaluate[float64](e, dst) // dst now holds 1, 4, 9, 16
package lightmatrix
