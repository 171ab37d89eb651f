package deriv

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metacalc/core"
	"github.com/katalvlaran/metacalc/generator"
)

// Star computes the star-derivative of f at a under the generator pair
// (alpha, beta).
//
// Algorithm outline:
//  1. Verify a has a preimage under α and f(a) one under β — i.e. the point
//     and value both live where the (α, β) arithmetic is defined.
//  2. Form the transformed function g(t) = β⁻¹(f(α(t))).
//  3. Estimate the classical derivative of g at t₀ = α⁻¹(a) by central
//     difference (see Central for step selection).
//  4. Push the estimate back through β: D*f(a) = β(g′(t₀)).
//
// With α = β = Identity this reduces exactly to Central.
//
// Errors:
//   - ErrNilGenerator / ErrNilFunc          — construction misuse.
//   - generator.ErrDomainViolation          — a or f(a) outside the pair's reach,
//     or a transformed sample left a generator's domain.
//   - ErrNonFiniteSample                    — f non-finite at a sampled point.
//
// Complexity: two evaluations of g, each costing one α-forward, one f call
// and one β-inverse, plus one β-forward for the push-back.
func Star(alpha, beta generator.Generator, f core.Func, a float64, opts ...Option) (float64, error) {
	if alpha == nil || beta == nil {
		return 0, ErrNilGenerator
	}
	if f == nil {
		return 0, ErrNilFunc
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Pull a into the transformed argument axis.
	t0, err := alpha.Inverse(a)
	if err != nil {
		return 0, err
	}

	// The value f(a) must be reachable by β, otherwise g is undefined at t0.
	fa := f(a)
	if math.IsNaN(fa) || math.IsInf(fa, 0) {
		return 0, fmt.Errorf("%w: f(%g)=%v", ErrNonFiniteSample, a, fa)
	}
	if _, err = beta.Inverse(fa); err != nil {
		return 0, err
	}

	// g(t) = β⁻¹(f(α(t))), the function whose classical rate we measure.
	g := func(t float64) (float64, error) {
		x, ferr := alpha.Forward(t)
		if ferr != nil {
			return 0, ferr
		}
		fx := f(x)
		if math.IsNaN(fx) || math.IsInf(fx, 0) {
			return 0, fmt.Errorf("%w: f(%g)=%v", ErrNonFiniteSample, x, fx)
		}
		return beta.Inverse(fx)
	}

	d, err := centralE(g, t0, o)
	if err != nil {
		return 0, err
	}
	return beta.Forward(d)
}
