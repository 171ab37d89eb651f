package generator

import (
	"fmt"
	"math"
)

// clipExp bounds an exponent argument to ±maxExpArg so that math.Exp never
// overflows to +Inf or underflows the result's reciprocal.
func clipExp(x float64) float64 {
	if x > maxExpArg {
		return maxExpArg
	}
	if x < -maxExpArg {
		return -maxExpArg
	}
	return x
}

// finite reports whether x is neither NaN nor ±Inf.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// checkResult maps a non-finite evaluation to ErrOverflow.
func checkResult(y float64) (float64, error) {
	if !finite(y) {
		return 0, fmt.Errorf("%w: got %v", ErrOverflow, y)
	}
	return y, nil
}

// domainErr wraps ErrDomainViolation with the offending point and family name.
func domainErr(k Kind, x float64) error {
	return fmt.Errorf("%w: %s generator at x=%g", ErrDomainViolation, k, x)
}

// identity is σ(x) = x on ℝ.
type identity struct{}

// Identity returns the identity generator σ(x) = x. Under the identity pair
// (α = β = Identity) every operator of this module reduces to classical
// calculus.
func Identity() Generator { return identity{} }

func (identity) Kind() Kind { return KindIdentity }

func (identity) Contains(x float64) bool { return finite(x) }

func (g identity) Forward(x float64) (float64, error) {
	if !g.Contains(x) {
		return 0, domainErr(KindIdentity, x)
	}
	return x, nil
}

func (g identity) Inverse(y float64) (float64, error) {
	if !finite(y) {
		return 0, domainErr(KindIdentity, y)
	}
	return y, nil
}

func (g identity) Derivative(x float64) (float64, error) {
	if !g.Contains(x) {
		return 0, domainErr(KindIdentity, x)
	}
	return 1, nil
}

// exponential is σ(x) = eˣ on ℝ, range (0, ∞).
type exponential struct{}

// Exponential returns the exponential generator σ(x) = eˣ. The pair
// α = β = Exponential yields the bigeometric calculus; α = Identity with
// β = Exponential yields the geometric calculus. The exponent argument is
// clipped to a safe magnitude before evaluation.
func Exponential() Generator { return exponential{} }

func (exponential) Kind() Kind { return KindExponential }

func (exponential) Contains(x float64) bool { return finite(x) }

func (g exponential) Forward(x float64) (float64, error) {
	if !g.Contains(x) {
		return 0, domainErr(KindExponential, x)
	}
	return checkResult(math.Exp(clipExp(x)))
}

func (g exponential) Inverse(y float64) (float64, error) {
	if !finite(y) || y <= 0 {
		return 0, domainErr(KindExponential, y)
	}
	return math.Log(y), nil
}

func (g exponential) Derivative(x float64) (float64, error) {
	if !g.Contains(x) {
		return 0, domainErr(KindExponential, x)
	}
	return checkResult(math.Exp(clipExp(x)))
}

// logarithm is σ(x) = ln x on (0, ∞), range ℝ.
type logarithm struct{}

// Logarithm returns the logarithmic generator σ(x) = ln x, defined for x > 0.
func Logarithm() Generator { return logarithm{} }

func (logarithm) Kind() Kind { return KindLogarithm }

func (logarithm) Contains(x float64) bool { return finite(x) && x > 0 }

func (g logarithm) Forward(x float64) (float64, error) {
	if !g.Contains(x) {
		return 0, domainErr(KindLogarithm, x)
	}
	return math.Log(x), nil
}

func (g logarithm) Inverse(y float64) (float64, error) {
	if !finite(y) {
		return 0, domainErr(KindLogarithm, y)
	}
	return checkResult(math.Exp(clipExp(y)))
}

func (g logarithm) Derivative(x float64) (float64, error) {
	if !g.Contains(x) {
		return 0, domainErr(KindLogarithm, x)
	}
	return 1 / x, nil
}

// power is σ(x) = xᵖ on (0, ∞) for a fixed p ≠ 0.
type power struct{ p float64 }

// Power returns the power generator σ(x) = xᵖ on (0, ∞).
// Returns ErrBadParameter when p is zero or non-finite (xᵖ would not be a
// bijection).
func Power(p float64) (Generator, error) {
	if p == 0 || !finite(p) {
		return nil, fmt.Errorf("%w: Power exponent p=%g", ErrBadParameter, p)
	}
	return power{p: p}, nil
}

func (power) Kind() Kind { return KindPower }

func (power) Contains(x float64) bool { return finite(x) && x > 0 }

func (g power) Forward(x float64) (float64, error) {
	if !g.Contains(x) {
		return 0, domainErr(KindPower, x)
	}
	return checkResult(math.Pow(x, g.p))
}

func (g power) Inverse(y float64) (float64, error) {
	if !finite(y) || y <= 0 {
		return 0, domainErr(KindPower, y)
	}
	return checkResult(math.Pow(y, 1/g.p))
}

func (g power) Derivative(x float64) (float64, error) {
	if !g.Contains(x) {
		return 0, domainErr(KindPower, x)
	}
	return checkResult(g.p * math.Pow(x, g.p-1))
}

// reciprocal is σ(x) = 1/x on ℝ\{0}. Strictly decreasing on each half-line
// and an involution: σ⁻¹ = σ.
type reciprocal struct{}

// Reciprocal returns the reciprocal generator σ(x) = 1/x, defined for x ≠ 0.
// Evaluating it at 0 returns ErrDomainViolation, never a silent Inf.
func Reciprocal() Generator { return reciprocal{} }

func (reciprocal) Kind() Kind { return KindReciprocal }

func (reciprocal) Contains(x float64) bool { return finite(x) && x != 0 }

func (g reciprocal) Forward(x float64) (float64, error) {
	if !g.Contains(x) {
		return 0, domainErr(KindReciprocal, x)
	}
	return 1 / x, nil
}

func (g reciprocal) Inverse(y float64) (float64, error) {
	if !finite(y) || y == 0 {
		return 0, domainErr(KindReciprocal, y)
	}
	return 1 / y, nil
}

func (g reciprocal) Derivative(x float64) (float64, error) {
	if !g.Contains(x) {
		return 0, domainErr(KindReciprocal, x)
	}
	return -1 / (x * x), nil
}

// scaleDependent is σ(x) = ℓ·(e^{x/ℓ} − 1) on ℝ, range (−ℓ, ∞).
type scaleDependent struct{ ell float64 }

// ScaleDependent returns the scale-ℓ generator σ(x) = ℓ·(e^{x/ℓ} − 1).
// For |x| ≪ ℓ it behaves like Identity, for x ≫ ℓ like a rescaled
// Exponential, so ℓ sets the scale at which the arithmetic turns
// multiplicative. Requires ℓ > 0; returns ErrBadParameter otherwise.
func ScaleDependent(ell float64) (Generator, error) {
	if !finite(ell) || ell <= 0 {
		return nil, fmt.Errorf("%w: ScaleDependent scale ℓ=%g", ErrBadParameter, ell)
	}
	return scaleDependent{ell: ell}, nil
}

func (scaleDependent) Kind() Kind { return KindScaleDependent }

func (scaleDependent) Contains(x float64) bool { return finite(x) }

func (g scaleDependent) Forward(x float64) (float64, error) {
	if !g.Contains(x) {
		return 0, domainErr(KindScaleDependent, x)
	}
	// Expm1 keeps precision near 0, where σ(x) ≈ x.
	return checkResult(g.ell * math.Expm1(clipExp(x/g.ell)))
}

func (g scaleDependent) Inverse(y float64) (float64, error) {
	if !finite(y) || y <= -g.ell {
		return 0, domainErr(KindScaleDependent, y)
	}
	return checkResult(g.ell * math.Log1p(y/g.ell))
}

func (g scaleDependent) Derivative(x float64) (float64, error) {
	if !g.Contains(x) {
		return 0, domainErr(KindScaleDependent, x)
	}
	return checkResult(math.Exp(clipExp(x / g.ell)))
}
