// Package verify defines the verifier's report structures, failure taxonomy,
// and configuration options.
package verify

import (
	"errors"

	"github.com/katalvlaran/metacalc/deriv"
	"github.com/katalvlaran/metacalc/quad"
)

// Sentinel errors for verifier construction misuse. Evaluation-time
// conditions never surface here: they are recorded per sample point inside
// the Report.
var (
	// ErrNilFunc indicates a test function without an F callable.
	ErrNilFunc = errors.New("verify: test function must be non-nil")

	// ErrBadInterval indicates r ≥ s or a non-finite interval endpoint.
	ErrBadInterval = errors.New("verify: interval must be finite with r < s")

	// ErrBadGrid indicates a non-positive sample-grid size.
	ErrBadGrid = errors.New("verify: grid size must be positive")

	// ErrBadTolerance indicates a non-positive relative tolerance.
	ErrBadTolerance = errors.New("verify: tolerance must be positive")

	// ErrNoSchemes indicates CheckMany received an empty scheme list.
	ErrNoSchemes = errors.New("verify: at least one scheme is required")
)

// FailureKind classifies why a sample point failed its theorem check.
type FailureKind int

const (
	// FailureNone marks a passing sample.
	FailureNone FailureKind = iota

	// FailureMismatch marks a finite result whose relative error exceeded
	// the configured tolerance.
	FailureMismatch

	// FailureEvaluation marks a sample the engine refused to evaluate;
	// PointResult.Err carries the typed cause (domain violation, degenerate
	// weight, convergence budget, …) for errors.Is matching.
	FailureEvaluation
)

// String returns the canonical name of the failure kind.
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureMismatch:
		return "mismatch"
	case FailureEvaluation:
		return "evaluation"
	default:
		return "unknown"
	}
}

// PointResult is the verdict for one sample point of a theorem check.
type PointResult struct {
	// X is the sample point (for the second theorem, the interval's right end).
	X float64

	// Got is the engine's value, Want the closed-form target.
	Got, Want float64

	// RelErr is |Got−Want| relative to max(|Want|, 1e-12).
	RelErr float64

	// Pass reports whether this sample met the tolerance.
	Pass bool

	// Kind classifies the failure; FailureNone on passing samples.
	Kind FailureKind

	// Err is the typed evaluation error for Kind == FailureEvaluation.
	Err error
}

// Report is the verifier's structured output for one (scheme, test function,
// interval) configuration.
type Report struct {
	// First holds one PointResult per interior grid point of the
	// first-theorem check.
	First []PointResult

	// Derivative holds the analytic cross-check verdicts: the numeric
	// meta-derivative against the closed-form target built from the test
	// function's analytic derivative and the generators' own derivatives.
	// Empty when the test function carries no analytic derivative.
	Derivative []PointResult

	// Second is the single-interval second-theorem check.
	Second PointResult

	// Tol is the relative tolerance the verdicts were measured against.
	Tol float64
}

// Pass reports whether every sample of every check passed.
func (r Report) Pass() bool {
	for _, p := range r.First {
		if !p.Pass {
			return false
		}
	}
	for _, p := range r.Derivative {
		if !p.Pass {
			return false
		}
	}
	return r.Second.Pass
}

// Failures returns every failing sample of all checks: first-theorem grid,
// then the derivative cross-check grid, with the second-theorem verdict last.
func (r Report) Failures() []PointResult {
	var out []PointResult
	for _, p := range r.First {
		if !p.Pass {
			out = append(out, p)
		}
	}
	for _, p := range r.Derivative {
		if !p.Pass {
			out = append(out, p)
		}
	}
	if !r.Second.Pass {
		out = append(out, r.Second)
	}
	return out
}

// Options configures the verifier.
//
// GridSize – number of interior sample points for the first-theorem check
//
//	(default 9).
//
// Tol      – relative tolerance for both theorems (default 1e-4).
// Deriv    – options forwarded to every meta-derivative evaluation.
// Quad     – options forwarded to every meta-integral evaluation.
type Options struct {
	GridSize int
	Tol      float64
	Deriv    []deriv.Option
	Quad     []quad.Option
}

// Option is a functional option for Check and CheckMany.
type Option func(*Options)

// WithGridSize sets the number of interior first-theorem sample points.
// Must be positive; non-positive values panic with ErrBadGrid.
func WithGridSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadGrid.Error())
		}
		o.GridSize = n
	}
}

// WithTolerance sets the relative tolerance for both theorem checks.
// Must be positive; non-positive values panic with ErrBadTolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.Tol = tol
	}
}

// WithDerivOptions forwards options to the meta-derivative evaluations.
func WithDerivOptions(opts ...deriv.Option) Option {
	return func(o *Options) { o.Deriv = append(o.Deriv, opts...) }
}

// WithQuadOptions forwards options to the meta-integral evaluations.
func WithQuadOptions(opts ...quad.Option) Option {
	return func(o *Options) { o.Quad = append(o.Quad, opts...) }
}

// DefaultOptions returns the verifier defaults: nine interior samples at
// 1e-4 relative tolerance, engine defaults elsewhere.
func DefaultOptions() Options {
	return Options{GridSize: 9, Tol: 1e-4}
}
