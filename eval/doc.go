// Package eval materializes symbolic matrix expressions into dense
// destinations, picking the cheapest valid traversal strategy once per
// (expression, destination, policy) combination and then running it with
// no further branching on strategy.
//
// What:
//
//   - Two capability contracts: LinearEvaluator (flattened access) and
//     PerColEvaluator (column access plus an explicit column advance).
//   - Five evaluator kinds: continuous-linear, dense-per-column,
//     constant (linear and per-column), and cached variants that
//     materialize a computed expression once into a private temporary.
//   - An integer cost model (Costs) comparing linear against per-column
//     organization, with a cache penalty for non-dense sources and a
//     short-vector penalty for statically short columns.
//   - Plan: the resolved strategy (organization, means, evaluator kind,
//     loop bounds), built once by NewPlan and reusable across calls.
//   - Evaluate / EvaluateLinear / EvaluatePerColumn: the dispatch entry
//     points.
//
// Why:
//
//   - Strategy selection is hoisted out of the element loops: Plan
//     resolution is the single bounded dispatch site, and Plan.Run
//     drives tight loops over raw storage.
//   - The means axis (scalar vs. vectorized) is part of the policy so a
//     vectorized path can be added without touching the cost model or
//     the scalar loops; only Scalar is implemented, and requesting
//     Vectorized fails plan construction.
//
// Ordering guarantees:
//
//   - Rows within a column are visited in strictly increasing order, and
//     columns are never interleaved; NextColumn fires exactly once per
//     column boundary. Per-column evaluators rely on this.
//
// Errors:
//
//   - All invalid combinations are rejected when the plan is built,
//     before any destination element is written: ErrShapeMismatch,
//     ErrNotContiguous, ErrMeansUnsupported, ErrPlanMismatch. A plan
//     that constructs successfully always evaluates successfully.
//
// Concurrency:
//
//   - The package holds no mutable state; concurrent evaluation into
//     disjoint destinations is safe by construction.
package eval
