package deriv

import (
	"fmt"

	"github.com/katalvlaran/metacalc/core"
)

// Meta computes the meta-derivative of f at a under scheme s:
//
//	[D*_w f](a) = (v(a)/u(a)) · [D*f](a)
//
// where D* is the star-derivative of the pair (s.Alpha, s.Beta) and u, v are
// the scheme's weights, both evaluated on the argument axis at a.
//
// With u ≡ v ≡ 1 the result is identical to Star.
//
// Errors:
//   - core.ErrNonPositiveWeight — u(a) or v(a) evaluated ≤ 0 or non-finite.
//   - ErrDegenerateWeight       — u(a) within floating tolerance of zero;
//     the (v/u) scaling is refused rather than divided through.
//   - anything Star returns.
func Meta(s core.Scheme, f core.Func, a float64, opts ...Option) (float64, error) {
	ua, err := s.U.Eval(a)
	if err != nil {
		return 0, err
	}
	if ua <= weightEps {
		return 0, fmt.Errorf("%w: u(%g)=%g", ErrDegenerateWeight, a, ua)
	}
	va, err := s.V.Eval(a)
	if err != nil {
		return 0, err
	}

	d, err := Star(s.Alpha, s.Beta, f, a, opts...)
	if err != nil {
		return 0, err
	}
	return va / ua * d, nil
}
