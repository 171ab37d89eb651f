package deriv_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/metacalc/core"
	"github.com/katalvlaran/metacalc/deriv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// weightOf builds a core.Weight from fn, failing the test on misuse.
func weightOf(t *testing.T, fn core.Func) core.Weight {
	t.Helper()
	w, err := core.NewWeight(fn)
	require.NoError(t, err)
	return w
}

// TestMeta_UnitWeightsEqualStar ensures u ≡ v ≡ 1 makes Meta bit-identical
// to Star.
func TestMeta_UnitWeightsEqualStar(t *testing.T) {
	s := core.Geometric()
	f := func(x float64) float64 { return x * x }

	want, err := deriv.Star(s.Alpha, s.Beta, f, 3)
	require.NoError(t, err)

	got, err := deriv.Meta(s, f, 3)
	require.NoError(t, err)
	assert.Equal(t, want, got, "unit weights must be the neutral element")
}

// TestMeta_WeightScaling verifies the (v/u) prefactor with constant weights:
// u ≡ 2, v ≡ 6 must scale the classical derivative by 3.
func TestMeta_WeightScaling(t *testing.T) {
	s := core.Classical()
	s.U = weightOf(t, func(float64) float64 { return 2 })
	s.V = weightOf(t, func(float64) float64 { return 6 })
	f := func(x float64) float64 { return x * x }

	d, err := deriv.Meta(s, f, 1)
	require.NoError(t, err)
	assert.InEpsilon(t, 6, d, 1e-6, "(v/u)·f′(1) = 3·2")
}

// TestMeta_DegenerateWeight ensures a u-weight within floating tolerance of
// zero refuses the division instead of blowing up.
func TestMeta_DegenerateWeight(t *testing.T) {
	s := core.Classical()
	s.U = weightOf(t, func(float64) float64 { return 1e-15 })

	_, err := deriv.Meta(s, func(x float64) float64 { return x }, 1)
	assert.ErrorIs(t, err, deriv.ErrDegenerateWeight, "u near zero must be refused")
}

// TestMeta_NonPositiveWeight ensures weight positivity violations surface
// with core's sentinel from inside the meta-derivative.
func TestMeta_NonPositiveWeight(t *testing.T) {
	s := core.Classical()
	s.U = weightOf(t, func(x float64) float64 { return -x })

	_, err := deriv.Meta(s, func(x float64) float64 { return x }, 1)
	assert.ErrorIs(t, err, core.ErrNonPositiveWeight, "negative u(1)")

	s = core.Classical()
	s.V = weightOf(t, func(float64) float64 { return 0 })

	_, err = deriv.Meta(s, func(x float64) float64 { return x }, 1)
	assert.ErrorIs(t, err, core.ErrNonPositiveWeight, "zero v(1)")
}

// TestMeta_VariableWeights cross-checks a position-dependent weight ratio:
// classically D*_w f = (v/u)·f′, here (x²/x)·cos(x) at x=2.
func TestMeta_VariableWeights(t *testing.T) {
	s := core.Classical()
	s.U = weightOf(t, func(x float64) float64 { return x })
	s.V = weightOf(t, func(x float64) float64 { return x * x })

	d, err := deriv.Meta(s, math.Sin, 2)
	require.NoError(t, err)
	assert.InEpsilon(t, 2*math.Cos(2), d, 1e-6, "(v(2)/u(2))·cos(2)")
}
