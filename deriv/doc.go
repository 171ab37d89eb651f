// Package deriv computes classical, star- and meta-derivatives.
//
// 🚀 What is a star-derivative?
//
//	Given a generator pair (α, β), the star-derivative of f at a is
//
//	    D*f(a) = β( d/dt [β⁻¹ ∘ f ∘ α](t) |_{t = α⁻¹(a)} )
//
//	i.e. transform into the (α, β) arithmetic, differentiate classically,
//	transform back. The strategy stays correct even when α or β has no
//	closed-form derivative (custom generators), at the cost of one layer of
//	numerical differentiation. With α = β = identity it reduces exactly to
//	the plain central difference.
//
// ✨ Operators:
//   - Central — stable central-difference estimator (f(a+h) − f(a−h)) / 2h,
//     step chosen relative to |a| and floored near a ≈ 0
//   - Star    — transform → differentiate → transform back
//   - Meta    — weight-scaled star-derivative (v(a)/u(a)) · D*f(a)
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/metacalc/core"
//	    "github.com/katalvlaran/metacalc/deriv"
//	)
//
//	s := core.Geometric()
//	d, err := deriv.Star(s.Alpha, s.Beta, func(x float64) float64 { return x }, 2)
//	// d ≈ e^{1/2} ≈ 1.64872
//
// Errors are typed sentinels (ErrNonFiniteSample, ErrDegenerateWeight, …);
// generator domain violations propagate unchanged, so a caller sweeping many
// points can errors.Is-match, skip the pathological point and continue.
package deriv
