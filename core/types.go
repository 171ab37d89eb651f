// Package core defines the shared value types of the metacalc engine:
// scalar callables, positivity-enforced weight functions, test functions,
// and the immutable CalculusScheme tuple that fully specifies one
// derivative/integral operator pair.
//
// All types here are value objects: constructed once, evaluated many times,
// holding no mutable state between calls. A Scheme may therefore be shared
// across any number of goroutines — a parameter sweep dispatching each sample
// point to its own worker needs no synchronization.
//
// This file declares Func, TestFunction and the sentinel errors; Weight and
// Scheme live in weight.go and scheme.go.
//
// Errors:
//
//	ErrNilGenerator      - a scheme was built with a nil generator.
//	ErrNilFunc           - a weight or test function was built from nil.
//	ErrNonPositiveWeight - a weight evaluated ≤ 0 (or non-finite) at a sample.
package core

import "errors"

// Sentinel errors for core construction and evaluation.
var (
	// ErrNilGenerator indicates NewScheme received a nil alpha or beta.
	ErrNilGenerator = errors.New("core: generator must be non-nil")

	// ErrNilFunc indicates a nil scalar callable where one is required.
	ErrNilFunc = errors.New("core: function must be non-nil")

	// ErrNonPositiveWeight indicates a weight function evaluated to a value
	// ≤ 0 or non-finite. Weights must be strictly positive everywhere they
	// are sampled; a violation is reported, never silently coerced.
	ErrNonPositiveWeight = errors.New("core: weight function not strictly positive")
)

// Func is a pure scalar callable: deterministic, side-effect free, finite
// except at isolated points the caller avoids. All engine operators accept
// their function under test in this form.
type Func func(float64) float64

// TestFunction pairs a function under test with an optional closed-form
// derivative used by validation harnesses. Derivative may be nil.
type TestFunction struct {
	// F is the function under test.
	F Func

	// Derivative is the analytic derivative of F, when known.
	Derivative Func
}

// NewTestFunction wraps f (and its optional analytic derivative) for use with
// the verifier. Returns ErrNilFunc when f is nil.
func NewTestFunction(f, derivative Func) (TestFunction, error) {
	if f == nil {
		return TestFunction{}, ErrNilFunc
	}
	return TestFunction{F: f, Derivative: derivative}, nil
}
