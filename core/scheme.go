package core

import (
	"github.com/katalvlaran/metacalc/generator"
)

// Scheme is an immutable calculus scheme: the tuple (α, β, u, v) that fully
// defines one meta-derivative / meta-integral operator pair.
//
//   - Alpha transforms the argument axis, Beta the value axis.
//   - U reweights the integral's measure, V scales the derivative.
//
// A Scheme is created once per experiment and never mutated, so a single
// value is safely shareable across concurrent evaluations.
type Scheme struct {
	// Alpha is the argument-axis generator α.
	Alpha generator.Generator

	// Beta is the value-axis generator β.
	Beta generator.Generator

	// U is the measure weight of the meta-integral.
	U Weight

	// V is the scaling weight of the meta-derivative.
	V Weight
}

// NewScheme builds a Scheme from the generator pair (alpha, beta) and the
// weight pair (u, v). Returns ErrNilGenerator when either generator is nil.
// Weights carrying a nil callable surface ErrNilFunc on first evaluation.
func NewScheme(alpha, beta generator.Generator, u, v Weight) (Scheme, error) {
	if alpha == nil || beta == nil {
		return Scheme{}, ErrNilGenerator
	}
	return Scheme{Alpha: alpha, Beta: beta, U: u, V: v}, nil
}

// Classical returns the scheme of ordinary calculus:
// α = β = identity, u = v = 1. Every operator of the engine degenerates to
// its textbook counterpart under this scheme.
func Classical() Scheme {
	return Scheme{
		Alpha: generator.Identity(),
		Beta:  generator.Identity(),
		U:     One(),
		V:     One(),
	}
}

// Geometric returns the geometric (multiplicative) scheme:
// α = identity, β = exponential, u = v = 1. Its derivative measures
// multiplicative rate of change, e.g. D*[x↦x](2) = e^{1/2}.
func Geometric() Scheme {
	return Scheme{
		Alpha: generator.Identity(),
		Beta:  generator.Exponential(),
		U:     One(),
		V:     One(),
	}
}

// Bigeometric returns the bigeometric scheme: α = β = exponential,
// u = v = 1. Power functions xⁿ have the constant bigeometric derivative eⁿ.
func Bigeometric() Scheme {
	return Scheme{
		Alpha: generator.Exponential(),
		Beta:  generator.Exponential(),
		U:     One(),
		V:     One(),
	}
}
