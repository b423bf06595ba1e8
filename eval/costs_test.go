// SPDX-License-Identifier: MIT
package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xyproto/env/v2"

	"github.com/fruityi/light-matrix/eval"
	"github.com/fruityi/light-matrix/mat"
)

func contiguousTraits(rows, cols int) mat.Traits {
	return mat.Traits{Rows: mat.Dyn(rows), Cols: mat.Dyn(cols), Dense: true, Contiguous: true}
}

func stridedTraits(rows, cols int) mat.Traits {
	return mat.Traits{Rows: mat.Dyn(rows), Cols: mat.Dyn(cols), Dense: true}
}

func computedTraits(rows, cols int) mat.Traits {
	return mat.Traits{Rows: mat.Dyn(rows), Cols: mat.Dyn(cols)}
}

func constTraits(rows, cols int) mat.Traits {
	return mat.Traits{Rows: mat.Dyn(rows), Cols: mat.Dyn(cols), Const: true}
}

func pinRows(tr mat.Traits, n int) mat.Traits {
	tr.Rows = mat.Pin(n)
	return tr
}

// TestCosts_Linear checks the linear-organization cost table.
func TestCosts_Linear(t *testing.T) {
	c := eval.DefaultCosts()

	assert.Equal(t, 0, c.Linear(contiguousTraits(8, 8)), "contiguous dense is free")
	assert.Equal(t, c.Cache, c.Linear(stridedTraits(8, 8)), "strided dense pays the cache penalty")
	assert.Equal(t, c.Cache, c.Linear(computedTraits(8, 8)), "computed pays the cache penalty")
	assert.Equal(t, 0, c.Linear(constTraits(8, 8)), "constants are always free")
}

// TestCosts_PerColumn checks the per-column cost table including the
// short-vector penalty.
func TestCosts_PerColumn(t *testing.T) {
	c := eval.DefaultCosts()

	assert.Equal(t, 0, c.PerColumn(stridedTraits(8, 8)), "any dense source is free per column")
	assert.Equal(t, c.Cache, c.PerColumn(computedTraits(8, 8)))

	// Static short rows add the penalty on top of the base cost.
	assert.Equal(t, c.ShortVecPerCol, c.PerColumn(pinRows(stridedTraits(2, 8), 2)))
	assert.Equal(t, c.Cache+c.ShortVecPerCol, c.PerColumn(pinRows(computedTraits(2, 8), 2)))

	// At or above the threshold no penalty applies.
	assert.Equal(t, 0, c.PerColumn(pinRows(stridedTraits(c.ShortVecThreshold, 8), c.ShortVecThreshold)))

	// Dynamic rows never trigger the penalty, however small.
	assert.Equal(t, 0, c.PerColumn(stridedTraits(1, 8)))

	// Constants are exempt from every charge.
	assert.Equal(t, 0, c.PerColumn(pinRows(constTraits(2, 8), 2)))
}

// TestCosts_ChooseOrganization checks the selector including the
// tie-favors-linear rule.
func TestCosts_ChooseOrganization(t *testing.T) {
	c := eval.DefaultCosts()

	org, cost := c.ChooseOrganization(contiguousTraits(8, 8))
	assert.Equal(t, eval.Linear, org, "contiguous dense: both free, tie favors linear")
	assert.Equal(t, 0, cost)

	org, cost = c.ChooseOrganization(stridedTraits(8, 8))
	assert.Equal(t, eval.PerColumn, org, "strided dense: per-column is free, linear is not")
	assert.Equal(t, 0, cost)

	org, cost = c.ChooseOrganization(computedTraits(8, 8))
	assert.Equal(t, eval.Linear, org, "computed: cache penalty either way, tie favors linear")
	assert.Equal(t, c.Cache, cost)

	org, _ = c.ChooseOrganization(pinRows(contiguousTraits(2, 8), 2))
	assert.Equal(t, eval.Linear, org, "short static rows push a contiguous source to linear")
}

// TestDefaultCosts checks the documented default magnitudes.
func TestDefaultCosts(t *testing.T) {
	c := eval.DefaultCosts()
	assert.Equal(t, eval.DefaultCacheCost, c.Cache)
	assert.Equal(t, eval.DefaultShortVecThreshold, c.ShortVecThreshold)
	assert.Equal(t, eval.DefaultShortVecPerColCost, c.ShortVecPerCol)
}

// TestDefaultCosts_EnvOverride checks that the LIGHTMAT_* variables
// override the tuned constants and flow through default-policy planning.
func TestDefaultCosts_EnvOverride(t *testing.T) {
	t.Setenv("LIGHTMAT_CACHE_COST", "7")
	t.Setenv("LIGHTMAT_SHORTVEC_THRESHOLD", "9")
	t.Setenv("LIGHTMAT_SHORTVEC_PERCOL_COST", "11")
	// The env package caches the environment; Unload drops the cache and
	// reads go straight to the process environment, so the overrides (and
	// later their restoration) are seen.
	env.Unload()
	t.Cleanup(env.Unload)

	c := eval.DefaultCosts()
	assert.Equal(t, 7, c.Cache)
	assert.Equal(t, 9, c.ShortVecThreshold)
	assert.Equal(t, 11, c.ShortVecPerCol)

	// The default policy resolves the same overrides: a computed source
	// ties at the overridden cache penalty and stays linear.
	src, err := mat.NewDense[float64](3, 3)
	require.NoError(t, err)
	dst, err := mat.NewDense[float64](3, 3)
	require.NoError(t, err)
	p, err := eval.NewPlan(mat.Map[float64](src, mat.Neg[float64]), dst)
	require.NoError(t, err)
	assert.Equal(t, eval.Linear, p.Organization())
	assert.Equal(t, 7, p.Cost())
}
