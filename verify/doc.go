// Package verify is the numerical self-consistency oracle of the metacalc
// engine: it checks that a configured calculus scheme satisfies both
// fundamental theorems of calculus within its own arithmetic.
//
// 🚀 What is checked?
//
//	First theorem  — build the cumulative meta-integral g(x) = I*_w[r,x]f and
//	confirm MetaDerivative[g](x) ≈ v(x)·f(x) pointwise across a grid of
//	sample points strictly interior to [r, s].
//
//	Second theorem — confirm I*_w[r,s](MetaDerivative[h]) ≈ h(s) −_β h(r),
//	the β-arithmetic difference β(β⁻¹(h(s)) − β⁻¹(h(r))), for a smooth h.
//
//	Derivative cross-check — when the test function carries an analytic
//	derivative, confirm the numeric meta-derivative matches the closed-form
//	chain-rule target (v/u)·β(f′·α′/β′) on the same grid, exercising the
//	generators' own Derivative implementations.
//
// ✨ Output:
//
//	A structured Report: one PointResult per sample — pass/fail, measured
//	relative error, and the specific failure kind (tolerance mismatch vs.
//	evaluation error with its typed cause). A failing point never aborts the
//	rest of the grid, so one pathological sample does not hide the others.
//
// The oracle is the correctness gate for every new generator/weight
// combination added to the engine, and doubles as its regression harness:
// package tests across this module assert Report.Pass() on configurations
// the theory guarantees.
//
// ⚙️ Usage:
//
//	tf, _ := core.NewTestFunction(math.Sin, math.Cos)
//	rep, err := verify.Check(core.Classical(), tf, 0, 2)
//	if err != nil { ... }            // construction misuse only
//	fmt.Println(rep.Pass())          // true: classical calculus is consistent
//	for _, p := range rep.Failures() { ... }
//
// CheckMany sweeps one configuration across several schemes concurrently;
// schemes are immutable, so the sweep needs no synchronization beyond
// joining the workers.
package verify
