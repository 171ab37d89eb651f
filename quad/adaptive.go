package quad

import (
	"fmt"
	"math"
)

// integrand is the error-carrying scalar callable integrated by the adaptive
// core. Transformed pipelines report generator and weight violations through
// the error channel rather than encoding them as NaN.
type integrand func(float64) (float64, error)

// adaptive integrates f over [a, b] (signed: b < a is allowed) by adaptive
// Simpson subdivision.
//
// Algorithm outline (Simpson with Richardson acceptance):
//  1. Estimate S(a,b) by one Simpson parabola over [a, b].
//  2. Split at the midpoint, compute S(a,m) + S(m,b).
//  3. Accept when |S₂ − S₁| ≤ 15·tol (the classical error factor for
//     Simpson halving) and return S₂ + (S₂ − S₁)/15.
//  4. Otherwise recurse on both halves with tol/2, one depth level down and
//     one refinement charged against the shared interval budget.
//
// Termination: both the depth cap and the interval budget are hard bounds,
// so the loop always ends; exhausting either before the tolerance is met
// yields ErrNotConverged rather than a silently poor estimate.
//
// Complexity: O(refinements) integrand evaluations, ≤ MaxIntervals.
func adaptive(f integrand, a, b float64, o Options) (float64, error) {
	if a == b {
		return 0, nil
	}

	fa, err := sample(f, a)
	if err != nil {
		return 0, err
	}
	fb, err := sample(f, b)
	if err != nil {
		return 0, err
	}
	m := a + (b-a)/2
	fm, err := sample(f, m)
	if err != nil {
		return 0, err
	}

	budget := o.MaxIntervals
	whole := simpson(a, b, fa, fm, fb)
	return refine(f, a, b, fa, fm, fb, whole, o.Tol, o.MaxDepth, &budget)
}

// sample evaluates f at x, mapping non-finite values to ErrNonFiniteSample.
func sample(f integrand, x float64) (float64, error) {
	y, err := f(x)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("%w: integrand(%g)=%v", ErrNonFiniteSample, x, y)
	}
	return y, nil
}

// simpson is the three-point Simpson estimate over [a, b].
func simpson(a, b, fa, fm, fb float64) float64 {
	return (b - a) / 6 * (fa + 4*fm + fb)
}

// refine recursively subdivides [a, b] until the Richardson error estimate
// meets tol or a budget runs out.
func refine(f integrand, a, b, fa, fm, fb, whole, tol float64, depth int, budget *int) (float64, error) {
	if *budget <= 0 {
		return 0, fmt.Errorf("%w: interval budget exhausted on [%g, %g]", ErrNotConverged, a, b)
	}
	*budget--

	m := a + (b-a)/2
	lm := a + (m-a)/2
	rm := m + (b-m)/2

	flm, err := sample(f, lm)
	if err != nil {
		return 0, err
	}
	frm, err := sample(f, rm)
	if err != nil {
		return 0, err
	}

	left := simpson(a, m, fa, flm, fm)
	right := simpson(m, b, fm, frm, fb)
	delta := left + right - whole

	if math.Abs(delta) <= 15*tol {
		return left + right + delta/15, nil
	}
	if depth <= 0 {
		return 0, fmt.Errorf("%w: depth cap hit on [%g, %g] (|Δ|=%g)", ErrNotConverged, a, b, math.Abs(delta))
	}

	lv, err := refine(f, a, m, fa, flm, fm, left, tol/2, depth-1, budget)
	if err != nil {
		return 0, err
	}
	rv, err := refine(f, m, b, fm, frm, fb, right, tol/2, depth-1, budget)
	if err != nil {
		return 0, err
	}
	return lv + rv, nil
}
