// SPDX-License-Identifier: MIT
// Package eval: the integer cost model driving organization selection.
// Costs are only ever compared against each other for the same
// expression; absolute magnitudes carry no meaning.
package eval

import (
	"github.com/xyproto/env/v2"

	"github.com/fruityi/light-matrix/mat"
)

// Default cost constants. The magnitudes are empirically tuned in the
// tradition of size-threshold dispatch tables; treat them as tunables,
// not derived quantities.
const (
	// DefaultCacheCost is the flat penalty for materializing a computed
	// expression into a temporary before element access is cheap.
	DefaultCacheCost = 1000

	// DefaultShortVecThreshold is the static row count below which
	// per-column iteration overhead stops amortizing.
	DefaultShortVecThreshold = 4

	// DefaultShortVecPerColCost is the extra per-column penalty charged
	// when the static row count falls under the threshold.
	DefaultShortVecPerColCost = 200
)

// Environment variables overriding the default cost constants.
const (
	envCacheCost          = "LIGHTMAT_CACHE_COST"
	envShortVecThreshold  = "LIGHTMAT_SHORTVEC_THRESHOLD"
	envShortVecPerColCost = "LIGHTMAT_SHORTVEC_PERCOL_COST"
)

// Costs parameterizes the cost model. Zero values are legal (they make
// the corresponding penalty free); use DefaultCosts for the tuned set.
type Costs struct {
	// Cache is the penalty for the cached evaluator's extra pass and
	// extra storage.
	Cache int
	// ShortVecThreshold is the static row count below which ShortVecPerCol
	// applies.
	ShortVecThreshold int
	// ShortVecPerCol is the penalty added to per-column organization for
	// statically short columns.
	ShortVecPerCol int
}

// DefaultCosts returns the tuned cost constants, each overridable
// through its LIGHTMAT_* environment variable.
// Complexity: O(1).
func DefaultCosts() Costs {
	return Costs{
		Cache:             env.Int(envCacheCost, DefaultCacheCost),
		ShortVecThreshold: env.Int(envShortVecThreshold, DefaultShortVecThreshold),
		ShortVecPerCol:    env.Int(envShortVecPerColCost, DefaultShortVecPerColCost),
	}
}

// Linear returns the cost of evaluating an expression with traits tr
// under linear organization: zero for constants and for contiguous dense
// sources, the cache penalty otherwise.
// Complexity: O(1).
func (c Costs) Linear(tr mat.Traits) int {
	if tr.Const {
		return 0
	}
	if tr.Dense && tr.Contiguous {
		return 0
	}

	return c.Cache
}

// PerColumn returns the cost of evaluating an expression with traits tr
// under per-column organization: zero base for any dense source, the
// cache penalty otherwise, plus the short-vector penalty when the row
// count is statically known and under the threshold. Constants are
// exempt from every charge.
// Complexity: O(1).
func (c Costs) PerColumn(tr mat.Traits) int {
	if tr.Const {
		return 0
	}
	cost := 0
	if !tr.Dense {
		cost = c.Cache
	}
	if tr.Rows.Static && tr.Rows.N < c.ShortVecThreshold {
		cost += c.ShortVecPerCol
	}

	return cost
}

// ChooseOrganization compares both organizations for tr and returns the
// cheaper one with its cost. Ties favor Linear.
// Complexity: O(1).
func (c Costs) ChooseOrganization(tr mat.Traits) (Organization, int) {
	lin, pc := c.Linear(tr), c.PerColumn(tr)
	if lin <= pc {
		return Linear, lin
	}

	return PerColumn, pc
}
