package deriv

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metacalc/core"
)

// Central estimates f′(a) by the central difference (f(a+h) − f(a−h)) / 2h.
//
// Step selection: h = relStep · max(|a|, StepFloor), i.e. relative to |a|
// when |a| is large (avoiding cancellation between nearly equal samples) and
// floored to an absolute minimum near a ≈ 0. WithStep overrides the choice.
//
// Errors:
//   - ErrNilFunc         — f is nil.
//   - ErrNonFiniteSample — f evaluated to NaN/±Inf at a ± h.
//
// Complexity: two evaluations of f.
func Central(f core.Func, a float64, opts ...Option) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return centralE(liftFunc(f), a, o)
}

// liftFunc adapts an error-less caller-supplied callable to the internal
// error-carrying form used by the transformed pipelines.
func liftFunc(f core.Func) func(float64) (float64, error) {
	return func(x float64) (float64, error) {
		return f(x), nil
	}
}

// step picks the finite-difference step for a point a under options o.
func step(a float64, o Options) float64 {
	if o.Step > 0 {
		return o.Step
	}
	floor := o.StepFloor
	if floor <= 0 {
		floor = 1
	}
	return relStep * math.Max(math.Abs(a), floor)
}

// centralE is the central-difference core over an error-carrying integrand.
// Errors from g (e.g. generator domain violations inside a transformed
// pipeline) propagate unchanged; non-finite samples become
// ErrNonFiniteSample.
func centralE(g func(float64) (float64, error), a float64, o Options) (float64, error) {
	h := step(a, o)

	up, err := g(a + h)
	if err != nil {
		return 0, err
	}
	down, err := g(a - h)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(up) || math.IsInf(up, 0) {
		return 0, fmt.Errorf("%w: f(%g)=%v", ErrNonFiniteSample, a+h, up)
	}
	if math.IsNaN(down) || math.IsInf(down, 0) {
		return 0, fmt.Errorf("%w: f(%g)=%v", ErrNonFiniteSample, a-h, down)
	}
	return (up - down) / (2 * h), nil
}
