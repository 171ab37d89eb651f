// Package deriv defines sentinel errors and step-sizing options shared by
// the Central, Star and Meta estimators.
package deriv

import "errors"

// Sentinel errors returned by the derivative estimators.
var (
	// ErrNilFunc indicates a nil function under test.
	ErrNilFunc = errors.New("deriv: function must be non-nil")

	// ErrNilGenerator indicates Star or Meta received a nil generator.
	ErrNilGenerator = errors.New("deriv: generator must be non-nil")

	// ErrNonFiniteSample indicates the function under test evaluated to NaN
	// or ±Inf at a sample point, so the estimate would be meaningless.
	ErrNonFiniteSample = errors.New("deriv: non-finite sample")

	// ErrDegenerateWeight indicates the meta-derivative's u-weight is within
	// floating tolerance of zero, so the (v/u) scaling would blow up.
	ErrDegenerateWeight = errors.New("deriv: weight u is degenerate (near zero)")

	// ErrBadStep indicates a non-positive step or step floor was configured.
	ErrBadStep = errors.New("deriv: step and step floor must be positive")
)

// relStep is cbrt of the double-precision machine epsilon; the optimal
// relative step for a second-order central difference, balancing truncation
// error (∝ h²) against cancellation (∝ ε/h).
const relStep = 6.055454452393343e-06

// weightEps is the floating tolerance below which a u-weight counts as zero.
const weightEps = 1e-12

// Options configures step selection for the finite-difference core.
//
// Step      – explicit step h; 0 (default) selects the step automatically as
//
//	relStep · max(|a|, StepFloor).
//
// StepFloor – absolute floor applied to |a| during automatic step selection,
//
//	preventing a vanishing step near a ≈ 0. Default 1.
type Options struct {
	Step      float64
	StepFloor float64
}

// Option is a functional option for the derivative estimators.
type Option func(*Options)

// WithStep fixes the finite-difference step to h, bypassing automatic
// selection. Must be positive; non-positive values panic with ErrBadStep
// (invalid configuration, detected at option-build time).
func WithStep(h float64) Option {
	return func(o *Options) {
		if h <= 0 {
			panic(ErrBadStep.Error())
		}
		o.Step = h
	}
}

// WithStepFloor sets the absolute floor used by automatic step selection.
// Must be positive; non-positive values panic with ErrBadStep.
func WithStepFloor(floor float64) Option {
	return func(o *Options) {
		if floor <= 0 {
			panic(ErrBadStep.Error())
		}
		o.StepFloor = floor
	}
}

// DefaultOptions returns the estimator defaults: automatic step selection
// with an absolute floor of 1.
func DefaultOptions() Options {
	return Options{Step: 0, StepFloor: 1}
}
