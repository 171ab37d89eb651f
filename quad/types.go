// Package quad defines sentinel errors and subdivision-budget options for
// the adaptive quadrature core.
package quad

import "errors"

// Sentinel errors returned by the quadrature operators.
var (
	// ErrNilFunc indicates a nil integrand.
	ErrNilFunc = errors.New("quad: function must be non-nil")

	// ErrBadInterval indicates a non-finite integration limit.
	ErrBadInterval = errors.New("quad: integration limits must be finite")

	// ErrNonFiniteSample indicates the integrand evaluated to NaN or ±Inf.
	ErrNonFiniteSample = errors.New("quad: non-finite sample")

	// ErrNotConverged indicates adaptive subdivision exhausted its budget
	// (depth cap or interval budget) before reaching the target tolerance.
	ErrNotConverged = errors.New("quad: adaptive quadrature did not converge within budget")

	// ErrBadTolerance indicates a non-positive tolerance was configured.
	ErrBadTolerance = errors.New("quad: tolerance must be positive")

	// ErrBadBudget indicates a non-positive depth or interval budget.
	ErrBadBudget = errors.New("quad: subdivision budget must be positive")
)

// Options configures the adaptive Simpson subdivision.
//
// Tol          – absolute error target for the whole interval (default 1e-9).
// MaxDepth     – maximum recursive halvings of any subinterval (default 30).
// MaxIntervals – total budget of subinterval refinements across the whole
//
//	integration (default 1 << 20). Either cap exhausting before
//	Tol is met yields ErrNotConverged.
type Options struct {
	Tol          float64
	MaxDepth     int
	MaxIntervals int
}

// Option is a functional option for the quadrature operators.
type Option func(*Options)

// WithTolerance sets the absolute error target. Must be positive;
// non-positive values panic with ErrBadTolerance (configuration misuse).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.Tol = tol
	}
}

// WithMaxDepth caps recursive halving of any single subinterval.
// Must be positive; non-positive values panic with ErrBadBudget.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		if depth <= 0 {
			panic(ErrBadBudget.Error())
		}
		o.MaxDepth = depth
	}
}

// WithMaxIntervals caps the total number of subinterval refinements.
// Must be positive; non-positive values panic with ErrBadBudget.
func WithMaxIntervals(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadBudget.Error())
		}
		o.MaxIntervals = n
	}
}

// DefaultOptions returns the quadrature defaults: 1e-9 absolute tolerance,
// 30 levels of halving, 2²⁰ total refinements.
func DefaultOptions() Options {
	return Options{Tol: 1e-9, MaxDepth: 30, MaxIntervals: 1 << 20}
}
