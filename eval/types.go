// SPDX-License-Identifier: MIT
// Package eval: policy tags, evaluator kind tags, and sentinel errors.
package eval

import "errors"

// Sentinel errors for plan construction and execution.
var (
	// ErrShapeMismatch indicates the destination shape differs from the
	// expression's (or from its pinned static extents).
	ErrShapeMismatch = errors.New("eval: expression and destination shapes must match")
	// ErrNotContiguous indicates linear organization was requested for a
	// destination, or a dense expression, that is not contiguous.
	ErrNotContiguous = errors.New("eval: linear organization requires contiguous layout")
	// ErrMeansUnsupported indicates a means other than Scalar was
	// requested; the vectorized path is a reserved extension point.
	ErrMeansUnsupported = errors.New("eval: only scalar means is implemented")
	// ErrPlanMismatch indicates Plan.Run received operands whose
	// capabilities differ from those the plan was built for.
	ErrPlanMismatch = errors.New("eval: operands do not match the planned traits")
)

// Organization selects the traversal order for evaluation.
type Organization uint8

const (
	// Linear treats the whole destination as one flattened sequence.
	// Valid only when expression and destination are contiguous in the
	// same column-major order.
	Linear Organization = iota
	// PerColumn iterates columns, then rows within a column. Valid for
	// any dense destination.
	PerColumn
)

// String implements fmt.Stringer.
func (o Organization) String() string {
	switch o {
	case Linear:
		return "linear"
	case PerColumn:
		return "per-column"
	default:
		return "unknown-organization"
	}
}

// Means selects the execution mode of the element loops. The axis exists
// so a vectorized implementation can plug in later; only Scalar is
// implemented here.
type Means uint8

const (
	// Scalar evaluates one element per loop iteration.
	Scalar Means = iota
	// Vectorized is reserved for a SIMD-pack implementation. Plans
	// requesting it fail with ErrMeansUnsupported.
	Vectorized
)

// String implements fmt.Stringer.
func (m Means) String() string {
	switch m {
	case Scalar:
		return "scalar"
	case Vectorized:
		return "vectorized"
	default:
		return "unknown-means"
	}
}

// EvaluatorKind names the concrete evaluator a plan resolved to. The
// mapping from expression capabilities to kinds is closed: every
// plannable expression resolves to exactly one kind per organization.
type EvaluatorKind uint8

const (
	// ContinuousLinear reads a contiguous dense source flat.
	ContinuousLinear EvaluatorKind = iota
	// DensePerColumn reads a dense source column by column through its
	// leading dimension.
	DensePerColumn
	// ConstantLinear broadcasts a scalar over the flattened destination.
	ConstantLinear
	// ConstantPerColumn broadcasts a scalar column by column.
	ConstantPerColumn
	// CachedLinear materializes a computed source once, then reads the
	// private temporary flat.
	CachedLinear
	// CachedPerColumn materializes a computed source once, then reads
	// the private temporary column by column.
	CachedPerColumn
)

// String implements fmt.Stringer.
func (k EvaluatorKind) String() string {
	switch k {
	case ContinuousLinear:
		return "continuous-linear"
	case DensePerColumn:
		return "dense-per-column"
	case ConstantLinear:
		return "constant-linear"
	case ConstantPerColumn:
		return "constant-per-column"
	case CachedLinear:
		return "cached-linear"
	case CachedPerColumn:
		return "cached-per-column"
	default:
		return "unknown-evaluator"
	}
}
