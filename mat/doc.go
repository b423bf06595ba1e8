// Package mat provides the dense-matrix storage and the symbolic
// expression types consumed by the evaluation engine in package eval.
//
// What:
//
//   - Dense[T]: concrete column-major matrix with a leading dimension,
//     usable both as an expression source and as an evaluation destination.
//   - View[T]: rectangular window into a Dense sharing its storage
//     (dense, generally non-contiguous).
//   - Const[T]: broadcast scalar expression over a fixed shape.
//   - Map / Zip: lazily computed element-wise expressions built from
//     sub-expressions and a functor.
//   - Fixed: pins an expression's current shape as static extents, which
//     lets the planner bake loop bounds and apply the short-vector rule.
//   - Materialize: evaluates any expression into a fresh contiguous Dense
//     in a single pass.
//
// Why:
//
//   - The engine selects its traversal strategy from per-expression
//     capability metadata (dense? contiguous? constant? static shape?).
//     Traits carries exactly that metadata, resolved once per plan.
//   - Column-major storage with an explicit leading dimension is what the
//     per-column evaluators and loop engine address directly.
//
// Complexity:
//
//   - All accessors are O(1); Clone, Fill, Materialize are O(rows×cols).
//
// Errors:
//
//   - ErrInvalidShape: requested dimensions are non-positive.
//   - ErrShapeMismatch: operand shapes disagree.
//   - ErrIndexOutOfBounds: window origin or extent escapes the parent.
//   - ErrBadView: requested window is degenerate.
//   - ErrShortData: supplied backing slice is too short for the shape.
package mat
