package verify_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metacalc/core"
	"github.com/katalvlaran/metacalc/verify"
)

// ExampleCheck runs the oracle on ordinary calculus: both fundamental
// theorems must hold for a smooth function on [0, 2].
func ExampleCheck() {
	tf, err := core.NewTestFunction(math.Sin, math.Cos)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	rep, err := verify.Check(core.Classical(), tf, 0, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("pass=%v samples=%d failures=%d\n", rep.Pass(), len(rep.First), len(rep.Failures()))
	// Output:
	// pass=true samples=9 failures=0
}

// ExampleCheckMany sweeps one test function across the three named calculi
// concurrently; each scheme gets its own report, in input order.
func ExampleCheckMany() {
	tf, err := core.NewTestFunction(math.Exp, math.Exp)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	schemes := []core.Scheme{core.Classical(), core.Geometric(), core.Bigeometric()}
	reps, err := verify.CheckMany(schemes, tf, 0.5, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, rep := range reps {
		fmt.Printf("scheme %d: pass=%v\n", i, rep.Pass())
	}
	// Output:
	// scheme 0: pass=true
	// scheme 1: pass=true
	// scheme 2: pass=true
}
