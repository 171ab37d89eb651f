// Package generator provides the bijective scalar maps ("generators") that
// define alternative arithmetics for non-Newtonian calculus.
//
// 🚀 What is a generator?
//
//	A generator σ is a strictly monotonic bijection from ℝ (or a subset of ℝ)
//	onto its range. Pulling ordinary addition and multiplication back through
//	σ yields an alternative arithmetic, and a pair of generators (α, β)
//	defines an alternative derivative and integral.  Classical calculus is
//	the special case α = β = identity; the geometric and bigeometric calculi
//	arise from the exponential generator.
//
// ✨ Built-ins:
//   - Identity        — σ(x) = x on ℝ
//   - Exponential     — σ(x) = eˣ on ℝ, range (0, ∞)
//   - Logarithm       — σ(x) = ln x on (0, ∞)
//   - Power(p)        — σ(x) = xᵖ on (0, ∞), p ≠ 0
//   - Reciprocal      — σ(x) = 1/x on ℝ\{0}
//   - ScaleDependent  — σ(x) = ℓ·(e^{x/ℓ} − 1), a scale-ℓ blend of the
//     classical and exponential arithmetics
//   - Custom          — user-supplied forward map with optional closed-form
//     inverse and derivative; missing pieces fall back to bounded bisection
//     and central differences
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/metacalc/generator"
//
//	exp := generator.Exponential()
//	y, err := exp.Forward(2)        // e² ≈ 7.389
//	x, err := exp.Inverse(y)        // back to 2
//	d, err := exp.Derivative(2)     // e²
//
// Every operation returns a typed sentinel error instead of silently
// producing Inf or NaN:
//   - ErrDomainViolation  — input outside the generator's valid domain
//   - ErrInverseNotFound  — numeric inversion exceeded its iteration cap
//   - ErrOverflow         — a non-finite value was produced despite clipping
//   - ErrBadParameter     — invalid constructor parameter (e.g. Power(0))
//
// Generators are immutable value objects: construct once, evaluate from any
// number of goroutines without synchronization.
package generator
