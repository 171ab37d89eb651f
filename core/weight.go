package core

import (
	"fmt"
	"math"
)

// Weight is a strictly positive continuous scalar function u: domain → ℝ⁺
// used to reweight a derivative or integral's measure. Eval enforces
// positivity on every sample: a weight that dips to zero or below is a
// reportable condition, not something to clamp.
//
// The zero value is unusable; build weights with NewWeight or One.
type Weight struct {
	fn Func
}

// NewWeight wraps fn as a weight function. Returns ErrNilFunc when fn is nil.
// Positivity is checked per sample at evaluation time, since the domain over
// which the weight will be sampled is not known at construction.
func NewWeight(fn Func) (Weight, error) {
	if fn == nil {
		return Weight{}, ErrNilFunc
	}
	return Weight{fn: fn}, nil
}

// One returns the constant weight u ≡ 1, the neutral element: with u = v = One
// the meta-derivative coincides with the star-derivative.
func One() Weight {
	return Weight{fn: func(float64) float64 { return 1 }}
}

// Eval evaluates the weight at x, returning ErrNonPositiveWeight when the
// result is ≤ 0, NaN, or ±Inf.
func (w Weight) Eval(x float64) (float64, error) {
	if w.fn == nil {
		return 0, ErrNilFunc
	}
	u := w.fn(x)
	if math.IsNaN(u) || math.IsInf(u, 0) || u <= 0 {
		return 0, fmt.Errorf("%w: u(%g)=%g", ErrNonPositiveWeight, x, u)
	}
	return u, nil
}
