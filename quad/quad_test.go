package quad_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/metacalc/core"
	"github.com/katalvlaran/metacalc/generator"
	"github.com/katalvlaran/metacalc/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMeta_ClassicalKnownIntegrals checks the classical degeneracy against
// closed-form values: with α = β = identity and u ≡ 1, Meta is the ordinary
// Riemann integral.
func TestMeta_ClassicalKnownIntegrals(t *testing.T) {
	sc := core.Classical()
	cases := []struct {
		name string
		f    core.Func
		r, s float64
		want float64
	}{
		{"sin over [0,π]", math.Sin, 0, math.Pi, 2},
		{"x² over [-1,2]", func(x float64) float64 { return x * x }, -1, 2, 3},
		{"x·e^{-x} over [0,1]", func(x float64) float64 { return x * math.Exp(-x) }, 0, 1, (math.E - 2) / math.E},
		{"exp over [0,1]", math.Exp, 0, 1, math.E - 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := quad.Meta(sc, tc.f, tc.r, tc.s)
			require.NoError(t, err)
			assert.InEpsilon(t, tc.want, got, 1e-8)
		})
	}
}

// TestMeta_GeometricIntegral verifies the β = exponential push-back:
// I*[0,1] eˣ = exp(∫₀¹ ln(eˣ) dx) = exp(1/2).
func TestMeta_GeometricIntegral(t *testing.T) {
	got, err := quad.Meta(core.Geometric(), math.Exp, 0, 1)
	require.NoError(t, err)
	assert.InEpsilon(t, math.Exp(0.5), got, 1e-8, "geometric integral of eˣ")
}

// TestMeta_BigeometricIntegral covers a transformed argument axis:
// with α = β = exp, I*[1,e] x = exp(∫₀¹ t dt) = exp(1/2).
func TestMeta_BigeometricIntegral(t *testing.T) {
	f := func(x float64) float64 { return x }

	got, err := quad.Meta(core.Bigeometric(), f, 1, math.E)
	require.NoError(t, err)
	assert.InEpsilon(t, math.Exp(0.5), got, 1e-8, "bigeometric integral of x over [1,e]")
}

// TestMeta_WeightedMeasure checks the u-weight reshapes the measure:
// classically ∫₁² x·1 dx = 3/2 with u(x) = x and f ≡ 1.
func TestMeta_WeightedMeasure(t *testing.T) {
	sc := core.Classical()
	u, err := core.NewWeight(func(x float64) float64 { return x })
	require.NoError(t, err)
	sc.U = u

	got, err := quad.Meta(sc, func(float64) float64 { return 1 }, 1, 2)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.5, got, 1e-8)
}

// TestMeta_Orientation ensures swapping the limits negates the inner
// integral (classically: the result itself).
func TestMeta_Orientation(t *testing.T) {
	sc := core.Classical()

	fwd, err := quad.Meta(sc, math.Sin, 0, math.Pi)
	require.NoError(t, err)
	rev, err := quad.Meta(sc, math.Sin, math.Pi, 0)
	require.NoError(t, err)
	assert.InEpsilon(t, -fwd, rev, 1e-12, "reversed orientation")
}

// TestMeta_EmptyInterval checks r = s yields the β-image of zero: 0
// classically, 1 under β = exponential (the multiplicative neutral).
func TestMeta_EmptyInterval(t *testing.T) {
	got, err := quad.Meta(core.Classical(), math.Sin, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = quad.Meta(core.Geometric(), math.Exp, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got, "β(0) = e⁰ = 1")
}

// TestMeta_NotConverged forces the subdivision budget below what the
// tolerance demands and expects a refusal, not a sloppy estimate.
func TestMeta_NotConverged(t *testing.T) {
	sc := core.Classical()
	// A needle the initial parabola cannot see: refinement is required, but
	// the budget allows a single interval.
	needle := func(x float64) float64 { return math.Exp(-1e4 * (x - 0.5) * (x - 0.5)) }

	_, err := quad.Meta(sc, needle, 0, 1,
		quad.WithTolerance(1e-12), quad.WithMaxIntervals(2))
	assert.ErrorIs(t, err, quad.ErrNotConverged, "budget of 2 refinements cannot resolve the needle")
}

// TestMeta_DepthCap exercises the per-interval depth bound separately from
// the global budget.
func TestMeta_DepthCap(t *testing.T) {
	sc := core.Classical()
	needle := func(x float64) float64 { return math.Exp(-1e4 * (x - 0.5) * (x - 0.5)) }

	_, err := quad.Meta(sc, needle, 0, 1,
		quad.WithTolerance(1e-13), quad.WithMaxDepth(2))
	assert.ErrorIs(t, err, quad.ErrNotConverged, "depth 2 cannot meet 1e-13")
}

// TestMeta_DomainViolationPropagates ensures a sample leaving β's value
// range aborts with the generator's sentinel.
func TestMeta_DomainViolationPropagates(t *testing.T) {
	// β = exponential needs f > 0, but f dips negative on [0,1].
	f := func(x float64) float64 { return x - 2 }

	_, err := quad.Meta(core.Geometric(), f, 0, 1)
	assert.ErrorIs(t, err, generator.ErrDomainViolation)
}

// TestMeta_NonPositiveWeightPropagates ensures weight violations inside the
// integrand surface with core's sentinel.
func TestMeta_NonPositiveWeightPropagates(t *testing.T) {
	sc := core.Classical()
	u, err := core.NewWeight(func(x float64) float64 { return x - 0.5 })
	require.NoError(t, err)
	sc.U = u

	_, err = quad.Meta(sc, math.Sin, 0, 1)
	assert.ErrorIs(t, err, core.ErrNonPositiveWeight, "u crosses zero inside [0,1]")
}

// TestMeta_NonFiniteSample ensures NaN from the integrand is reported, not
// summed.
func TestMeta_NonFiniteSample(t *testing.T) {
	f := func(x float64) float64 {
		if x > 0.7 {
			return math.NaN()
		}
		return x
	}
	_, err := quad.Meta(core.Classical(), f, 0, 1)
	assert.ErrorIs(t, err, quad.ErrNonFiniteSample)
}

// TestMeta_ConstructionMisuse covers nil integrand and non-finite limits.
func TestMeta_ConstructionMisuse(t *testing.T) {
	_, err := quad.Meta(core.Classical(), nil, 0, 1)
	assert.ErrorIs(t, err, quad.ErrNilFunc)

	_, err = quad.Meta(core.Classical(), math.Sin, math.Inf(1), 1)
	assert.ErrorIs(t, err, quad.ErrBadInterval)

	_, err = quad.Meta(core.Classical(), math.Sin, 0, math.NaN())
	assert.ErrorIs(t, err, quad.ErrBadInterval)
}

// TestCumulative_MatchesMeta ensures the running integral agrees with the
// direct two-limit evaluation at every probe.
func TestCumulative_MatchesMeta(t *testing.T) {
	sc := core.Geometric()

	cum, err := quad.Cumulative(sc, math.Exp, 0.5)
	require.NoError(t, err)

	for _, x := range []float64{0.5, 0.75, 1, 2} {
		want, err := quad.Meta(sc, math.Exp, 0.5, x)
		require.NoError(t, err)

		got, err := cum(x)
		require.NoError(t, err)
		assert.Equal(t, want, got, "cumulative at x=%g", x)
	}
}

// TestCumulative_ConstructionMisuse covers the anchored variant's validation.
func TestCumulative_ConstructionMisuse(t *testing.T) {
	_, err := quad.Cumulative(core.Classical(), nil, 0)
	assert.ErrorIs(t, err, quad.ErrNilFunc)

	_, err = quad.Cumulative(core.Classical(), math.Sin, math.NaN())
	assert.ErrorIs(t, err, quad.ErrBadInterval)
}

// TestMeta_Deterministic checks purity: repeated evaluation is bit-identical.
func TestMeta_Deterministic(t *testing.T) {
	sc := core.Bigeometric()
	f := func(x float64) float64 { return x * x }

	first, err := quad.Meta(sc, f, 1, 4)
	require.NoError(t, err)
	second, err := quad.Meta(sc, f, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
