package generator_test

import (
	"fmt"

	"github.com/katalvlaran/metacalc/generator"
)

// ExampleExponential demonstrates the forward/inverse/derivative triple of
// the exponential generator, the backbone of the geometric and bigeometric
// calculi.
func ExampleExponential() {
	g := generator.Exponential()

	y, _ := g.Forward(2)
	x, _ := g.Inverse(y)
	d, _ := g.Derivative(2)

	fmt.Printf("forward(2)    = %.4f\n", y)
	fmt.Printf("inverse(e²)   = %.4f\n", x)
	fmt.Printf("derivative(2) = %.4f\n", d)
	// Output:
	// forward(2)    = 7.3891
	// inverse(e²)   = 2.0000
	// derivative(2) = 7.3891
}

// ExampleNewCustom builds a generator from a forward map alone: the inverse
// falls back to bounded bisection, the derivative to a central difference.
func ExampleNewCustom() {
	g, err := generator.NewCustom(func(x float64) float64 { return x*x*x + x })
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	y, _ := g.Forward(2) // 2³ + 2 = 10
	x, _ := g.Inverse(y) // numerically recovered

	fmt.Printf("forward(2)  = %.4f\n", y)
	fmt.Printf("inverse(10) = %.4f\n", x)
	// Output:
	// forward(2)  = 10.0000
	// inverse(10) = 2.0000
}
