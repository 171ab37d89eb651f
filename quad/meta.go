package quad

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metacalc/core"
)

// Meta evaluates the meta-integral of f over [r, s] under scheme sc:
//
//	I*_w[r,s]f = β( ∫_{α⁻¹(r)}^{α⁻¹(s)} u(α(t)) · β⁻¹(f(α(t))) dt )
//
// The weight u is evaluated on the argument axis, at the untransformed point
// α(t). Orientation is signed: swapping r and s negates the inner integral
// before the β push-back.
//
// Errors:
//   - ErrNilFunc / ErrBadInterval      — construction misuse.
//   - generator.ErrDomainViolation     — r, s, or a sampled point outside the
//     scheme's generators' reach.
//   - core.ErrNonPositiveWeight        — u evaluated ≤ 0 at a sample.
//   - ErrNonFiniteSample               — f non-finite at a sample.
//   - ErrNotConverged                  — subdivision budget exhausted.
//
// Complexity: one α-inverse per limit, then O(refinements) integrand
// evaluations, each one α-forward, one f call, one u and one β-inverse.
func Meta(sc core.Scheme, f core.Func, r, s float64, opts ...Option) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if math.IsNaN(r) || math.IsInf(r, 0) || math.IsNaN(s) || math.IsInf(s, 0) {
		return 0, fmt.Errorf("%w: [%g, %g]", ErrBadInterval, r, s)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Transform the limits into the α argument axis.
	tr, err := sc.Alpha.Inverse(r)
	if err != nil {
		return 0, err
	}
	ts, err := sc.Alpha.Inverse(s)
	if err != nil {
		return 0, err
	}

	// φ(t) = u(α(t)) · β⁻¹(f(α(t))), the transformed weighted integrand.
	phi := func(t float64) (float64, error) {
		x, ferr := sc.Alpha.Forward(t)
		if ferr != nil {
			return 0, ferr
		}
		u, ferr := sc.U.Eval(x)
		if ferr != nil {
			return 0, ferr
		}
		fx := f(x)
		if math.IsNaN(fx) || math.IsInf(fx, 0) {
			return 0, fmt.Errorf("%w: f(%g)=%v", ErrNonFiniteSample, x, fx)
		}
		w, ferr := sc.Beta.Inverse(fx)
		if ferr != nil {
			return 0, ferr
		}
		return u * w, nil
	}

	inner, err := adaptive(phi, tr, ts, o)
	if err != nil {
		return 0, err
	}
	return sc.Beta.Forward(inner)
}

// Cumulative builds the running meta-integral g(x) = I*_w[r,x]f as a
// callable, the meta-calculus analogue of an antiderivative anchored at r.
// Each invocation integrates from scratch; evaluations are independent and
// safe to run concurrently.
//
// The returned function reports the same errors as Meta.
func Cumulative(sc core.Scheme, f core.Func, r float64, opts ...Option) (func(x float64) (float64, error), error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return nil, fmt.Errorf("%w: r=%g", ErrBadInterval, r)
	}
	return func(x float64) (float64, error) {
		return Meta(sc, f, r, x, opts...)
	}, nil
}
