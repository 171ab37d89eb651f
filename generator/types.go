// Package generator defines the Generator interface, its sentinel errors,
// and the configuration knobs for numeric inversion of custom generators.
package generator

import "errors"

// Sentinel errors returned by generator operations.
var (
	// ErrDomainViolation indicates an input outside the generator's valid domain
	// (e.g. Reciprocal at 0, Logarithm at x ≤ 0, or an inverse argument outside
	// the generator's range).
	ErrDomainViolation = errors.New("generator: input outside valid domain")

	// ErrInverseNotFound indicates the numeric root-finder exhausted its
	// iteration budget without bracketing the preimage to tolerance.
	ErrInverseNotFound = errors.New("generator: inverse not found within iteration budget")

	// ErrOverflow indicates a generator produced a non-finite value despite
	// argument clipping. Inputs this pathological should be skipped by callers.
	ErrOverflow = errors.New("generator: non-finite result")

	// ErrBadParameter indicates an invalid constructor parameter,
	// e.g. Power(0) or ScaleDependent with a non-positive scale.
	ErrBadParameter = errors.New("generator: invalid constructor parameter")

	// ErrNilFunc indicates a custom generator was built without a forward map.
	ErrNilFunc = errors.New("generator: forward map must be non-nil")
)

// Kind identifies a built-in generator family. The set is closed: dispatch on
// Kind is exhaustive at compile time for every built-in, and KindCustom covers
// user-supplied maps.
type Kind int

const (
	// KindIdentity is σ(x) = x.
	KindIdentity Kind = iota

	// KindExponential is σ(x) = eˣ.
	KindExponential

	// KindLogarithm is σ(x) = ln x.
	KindLogarithm

	// KindPower is σ(x) = xᵖ for a fixed p ≠ 0.
	KindPower

	// KindReciprocal is σ(x) = 1/x.
	KindReciprocal

	// KindScaleDependent is σ(x) = ℓ·(e^{x/ℓ} − 1) for a fixed scale ℓ > 0.
	KindScaleDependent

	// KindCustom is a user-supplied map.
	KindCustom
)

// String returns the canonical name of the generator family.
func (k Kind) String() string {
	switch k {
	case KindIdentity:
		return "identity"
	case KindExponential:
		return "exponential"
	case KindLogarithm:
		return "logarithm"
	case KindPower:
		return "power"
	case KindReciprocal:
		return "reciprocal"
	case KindScaleDependent:
		return "scale-dependent"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Generator is a strictly monotonic bijection σ from a subset of ℝ onto its
// range, together with its inverse and pointwise derivative.
//
// Contract:
//   - Forward is defined and strictly monotonic on every x with Contains(x).
//   - Inverse(Forward(x)) ≈ x to 1e-9 relative tolerance across the domain.
//   - Derivative(x) is the local rate dσ/dx, closed-form where available.
//   - Out-of-domain inputs yield ErrDomainViolation; non-finite results yield
//     ErrOverflow; neither condition is ever reported as a silent Inf/NaN.
//
// Implementations are immutable and safe for concurrent use.
type Generator interface {
	// Kind reports which built-in family this generator belongs to.
	Kind() Kind

	// Forward evaluates σ(x).
	Forward(x float64) (float64, error)

	// Inverse evaluates σ⁻¹(y), analytically or by bounded root-finding.
	Inverse(y float64) (float64, error)

	// Derivative evaluates dσ/dx at x.
	Derivative(x float64) (float64, error)

	// Contains reports whether x lies in the generator's valid domain.
	Contains(x float64) bool
}

// maxExpArg caps the argument of math.Exp before evaluation; math.Exp
// overflows just above 709, so ±700 keeps every intermediate finite.
const maxExpArg = 700.0

// invertTol is the relative tolerance at which numeric inversion stops.
const invertTol = 1e-12

// invertMaxIter bounds the bisection loop of numeric inversion. 200 halvings
// are far more than needed to reach invertTol from any finite bracket.
const invertMaxIter = 200
