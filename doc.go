// Package metacalc is a generalized calculus engine: pluggable generator
// functions, weight functions, and derivative/integral operators that
// compute alternative (non-Newtonian) derivatives and integrals — and
// numerically verify that each configured calculus obeys its own
// fundamental theorems.
//
// 🚀 What is metacalc?
//
//	A calculus scheme is the tuple (α, β, u, v): two bijective generators
//	reinterpreting the argument and value axes, and two strictly positive
//	weights rescaling the measure. Classical calculus is α = β = identity;
//	the geometric and bigeometric calculi arise from the exponential
//	generator. The engine brings together:
//	  • Generators: identity, exponential, logarithm, power, reciprocal,
//	    scale-dependent, custom — with numeric inversion fallback
//	  • Derivatives: stable central differences, star-derivatives,
//	    weight-scaled meta-derivatives
//	  • Integrals: adaptive-quadrature meta-integrals under the transformed
//	    measure, with a cumulative variant
//	  • A fundamental-theorem verifier producing structured per-point reports
//
// ✨ Why choose metacalc?
//
//   - Typed failures – domain violations, degenerate weights and exhausted
//     budgets are sentinel errors, never silent Inf/NaN
//   - Pure values – every entity is an immutable value object; sweeps
//     parallelize with zero synchronization
//   - Bounded numerics – root-finding and subdivision always terminate
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under five subpackages:
//
//	generator/ — bijective scalar maps defining alternative arithmetics
//	core/      — Func, Weight, TestFunction and the immutable Scheme tuple
//	deriv/     — Central, Star and Meta derivative estimators
//	quad/      — adaptive Simpson meta-integration + cumulative integrals
//	verify/    — the fundamental-theorem consistency oracle
//
// Quick taste:
//
//	s := core.Geometric()                       // α=id, β=exp
//	d, _ := deriv.Star(s.Alpha, s.Beta,
//	        func(x float64) float64 { return x }, 2)
//	// d ≈ e^{1/2} ≈ 1.64872: the multiplicative rate of f(x)=x at 2
//
// See each subpackage's doc.go for algorithm outlines and error taxonomies.
package metacalc
