// Package quad evaluates meta-integrals by adaptive quadrature under the
// unified (generator + weight) measure.
//
// 🚀 What is a meta-integral?
//
//	Given a scheme (α, β, u, ·), the weighted star-integral of f over [r, s] is
//
//	    I*_w[r,s]f = β( ∫_{α⁻¹(r)}^{α⁻¹(s)} u(α(t)) · β⁻¹(f(α(t))) dt )
//
//	i.e. the classical integral of the transformed, u-weighted integrand over
//	the transformed interval, pushed back through β. With α = β = identity and
//	u ≡ 1 it reduces to the ordinary Riemann integral.
//
// ✨ Operators:
//   - Meta       — I*_w[r,s]f by adaptive Simpson subdivision
//   - Cumulative — the antiderivative-style map x ↦ I*_w[r,x]f, used by the
//     fundamental-theorem verifier
//
// The subdivision loop carries a hard budget: exceeding it without reaching
// the target tolerance yields ErrNotConverged instead of an unreliable
// estimate. Generator domain violations and non-positive weights surface as
// their own typed errors from inside the integrand.
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/metacalc/core"
//	    "github.com/katalvlaran/metacalc/quad"
//	)
//
//	val, err := quad.Meta(core.Classical(), math.Sin, 0, math.Pi)
//	// val ≈ 2
package quad
