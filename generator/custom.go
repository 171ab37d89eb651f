package generator

import (
	"fmt"
	"math"
)

// CustomOption configures a custom generator built by NewCustom.
type CustomOption func(*custom)

// WithInverse supplies a closed-form inverse map. Without it, Inverse falls
// back to bounded bisection on the forward map.
func WithInverse(inv Map) CustomOption {
	return func(c *custom) { c.inv = inv }
}

// WithDerivative supplies a closed-form derivative. Without it, Derivative
// falls back to a central finite difference on the forward map.
func WithDerivative(der Map) CustomOption {
	return func(c *custom) { c.der = der }
}

// WithDomain restricts the generator's domain to the predicate contains and
// seeds the numeric inverse's bracket with [lo, hi]. The default domain is
// all finite reals with bracket seed [−1, 1].
func WithDomain(contains func(float64) bool, lo, hi float64) CustomOption {
	return func(c *custom) {
		c.contains = contains
		c.lo, c.hi = lo, hi
	}
}

// custom is a user-supplied generator. Missing inverse and derivative pieces
// are reconstructed numerically from the forward map.
type custom struct {
	fwd      Map
	inv      Map // nil ⇒ bisectInvert fallback
	der      Map // nil ⇒ central-difference fallback
	contains func(float64) bool
	lo, hi   float64 // bracket seed for numeric inversion
}

// NewCustom builds a generator from a user-supplied strictly monotonic
// forward map. The map must be a bijection on the configured domain; this is
// the caller's responsibility and is not verified at construction.
//
// Returns ErrNilFunc when forward is nil — a generator without a forward map
// is construction-time misuse, not a recoverable evaluation condition.
func NewCustom(forward Map, opts ...CustomOption) (Generator, error) {
	if forward == nil {
		return nil, ErrNilFunc
	}
	c := &custom{fwd: forward, lo: -1, hi: 1}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (*custom) Kind() Kind { return KindCustom }

func (c *custom) Contains(x float64) bool {
	if !finite(x) {
		return false
	}
	if c.contains == nil {
		return true
	}
	return c.contains(x)
}

func (c *custom) Forward(x float64) (float64, error) {
	if !c.Contains(x) {
		return 0, domainErr(KindCustom, x)
	}
	return checkResult(c.fwd(x))
}

func (c *custom) Inverse(y float64) (float64, error) {
	if !finite(y) {
		return 0, domainErr(KindCustom, y)
	}
	if c.inv != nil {
		return checkResult(c.inv(y))
	}
	return bisectInvert(c.fwd, y, c.lo, c.hi)
}

func (c *custom) Derivative(x float64) (float64, error) {
	if !c.Contains(x) {
		return 0, domainErr(KindCustom, x)
	}
	if c.der != nil {
		return checkResult(c.der(x))
	}
	// Central difference with a relative step, mirroring the deriv package
	// (not imported here to keep the dependency flow one-way).
	h := centralStep(x)
	hi, lo := c.fwd(x+h), c.fwd(x-h)
	if !finite(hi) || !finite(lo) {
		return 0, fmt.Errorf("%w: forward map non-finite near x=%g", ErrOverflow, x)
	}
	return checkResult((hi - lo) / (2 * h))
}

// centralStep picks a finite-difference step relative to |x|, floored near 0.
// cbrt(machine ε) balances truncation against cancellation for second-order
// central differences.
func centralStep(x float64) float64 {
	const rel = 6.055454452393343e-06 // cbrt(2^-52)
	return rel * math.Max(math.Abs(x), 1)
}
