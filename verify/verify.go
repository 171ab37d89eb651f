package verify

import (
	"math"
	"sync"

	"github.com/katalvlaran/metacalc/core"
	"github.com/katalvlaran/metacalc/deriv"
	"github.com/katalvlaran/metacalc/quad"
)

// relErrFloor guards the relative-error denominator against a zero target.
const relErrFloor = 1e-12

// cumulativeTol is the quadrature tolerance used when differentiating the
// cumulative integral. The central difference divides the integral's error
// by a step of order 1e-6, so the integral must be resolved a few orders
// tighter than the theorem tolerance; user quad options still override.
const cumulativeTol = 1e-12

// Check runs both fundamental-theorem checks for scheme sc against the test
// function tf on [r, s].
//
// Algorithm outline:
//  1. First theorem — build g(x) = I*_w[r,x]f (cumulative meta-integral,
//     resolved tighter than the theorem tolerance) and compare the
//     meta-derivative of g against v(x)·f(x) at GridSize points strictly
//     interior to [r, s].
//  2. Second theorem — meta-integrate x ↦ [D*_w tf](x) over [r, s] and
//     compare against the β-difference β(β⁻¹(f(s)) − β⁻¹(f(r))).
//  3. Derivative cross-check (only when tf carries an analytic derivative) —
//     compare the numeric meta-derivative of tf on the same grid against the
//     closed-form chain-rule target built from f′ and the generators' own
//     derivatives.
//
// Every sample yields a PointResult; an engine refusal (domain violation,
// degenerate weight, exhausted budget, …) is recorded as FailureEvaluation
// with its typed cause and the remaining grid still runs. The returned error
// covers construction misuse only (nil function, bad interval, bad options).
//
// Complexity: GridSize meta-derivative evaluations, each triggering two
// cumulative integrations, plus one meta-integral whose integrand is itself
// a meta-derivative.
func Check(sc core.Scheme, tf core.TestFunction, r, s float64, opts ...Option) (Report, error) {
	if tf.F == nil {
		return Report{}, ErrNilFunc
	}
	if math.IsNaN(r) || math.IsInf(r, 0) || math.IsNaN(s) || math.IsInf(s, 0) || r >= s {
		return Report{}, ErrBadInterval
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rep := Report{
		First: make([]PointResult, 0, o.GridSize),
		Tol:   o.Tol,
	}
	rep.first(sc, tf, r, s, o)
	if tf.Derivative != nil {
		rep.derivative(sc, tf, r, s, o)
	}
	rep.second(sc, tf, r, s, o)
	return rep, nil
}

// CheckMany runs Check for each scheme concurrently, one worker per scheme.
// Schemes are immutable value objects, so the sweep shares nothing mutable;
// results come back in input order. Every scheme is checked against the same
// construction arguments, so the first validation failure aborts the sweep
// before any worker starts.
func CheckMany(schemes []core.Scheme, tf core.TestFunction, r, s float64, opts ...Option) ([]Report, error) {
	if len(schemes) == 0 {
		return nil, ErrNoSchemes
	}
	// Validate arguments once, up front, against the first scheme's shape.
	if tf.F == nil {
		return nil, ErrNilFunc
	}
	if math.IsNaN(r) || math.IsInf(r, 0) || math.IsNaN(s) || math.IsInf(s, 0) || r >= s {
		return nil, ErrBadInterval
	}

	reports := make([]Report, len(schemes))
	var wg sync.WaitGroup
	wg.Add(len(schemes))
	for i, sc := range schemes {
		go func(i int, sc core.Scheme) {
			defer wg.Done()
			// Construction args were validated above; Check cannot fail here.
			reports[i], _ = Check(sc, tf, r, s, opts...)
		}(i, sc)
	}
	wg.Wait()
	return reports, nil
}

// first fills rep.First with the first-theorem verdicts.
func (rep *Report) first(sc core.Scheme, tf core.TestFunction, r, s float64, o Options) {
	// Resolve the cumulative integral tighter than the theorem tolerance;
	// caller-supplied quad options are appended so they win on conflict.
	qopts := append([]quad.Option{quad.WithTolerance(cumulativeTol)}, o.Quad...)
	cum, err := quad.Cumulative(sc, tf.F, r, qopts...)
	if err != nil {
		// Cannot happen past the validation in Check; record defensively.
		rep.First = append(rep.First, PointResult{Kind: FailureEvaluation, Err: err, RelErr: math.Inf(1)})
		return
	}

	step := (s - r) / float64(o.GridSize+1)
	for i := 1; i <= o.GridSize; i++ {
		x := r + float64(i)*step

		// Bridge the error-carrying cumulative into a plain callable; the
		// first engine error is captured and NaN poisons the sample so the
		// estimator reports rather than propagating it invisibly.
		var captured error
		g := core.Func(func(t float64) float64 {
			v, gerr := cum(t)
			if gerr != nil {
				if captured == nil {
					captured = gerr
				}
				return math.NaN()
			}
			return v
		})

		got, derr := deriv.Meta(sc, g, x, o.Deriv...)
		if captured != nil {
			derr = captured
		}
		if derr != nil {
			rep.First = append(rep.First, PointResult{X: x, Kind: FailureEvaluation, Err: derr, RelErr: math.Inf(1)})
			continue
		}

		vx, verr := sc.V.Eval(x)
		if verr != nil {
			rep.First = append(rep.First, PointResult{X: x, Kind: FailureEvaluation, Err: verr, RelErr: math.Inf(1)})
			continue
		}
		rep.First = append(rep.First, verdict(x, got, vx*tf.F(x), rep.Tol))
	}
}

// derivative fills rep.Derivative with the analytic cross-check verdicts on
// the same interior grid as the first-theorem check.
func (rep *Report) derivative(sc core.Scheme, tf core.TestFunction, r, s float64, o Options) {
	rep.Derivative = make([]PointResult, 0, o.GridSize)

	step := (s - r) / float64(o.GridSize+1)
	for i := 1; i <= o.GridSize; i++ {
		x := r + float64(i)*step

		got, err := deriv.Meta(sc, tf.F, x, o.Deriv...)
		if err != nil {
			rep.Derivative = append(rep.Derivative, PointResult{X: x, Kind: FailureEvaluation, Err: err, RelErr: math.Inf(1)})
			continue
		}
		want, err := analyticMeta(sc, tf, x)
		if err != nil {
			rep.Derivative = append(rep.Derivative, PointResult{X: x, Kind: FailureEvaluation, Err: err, RelErr: math.Inf(1)})
			continue
		}
		rep.Derivative = append(rep.Derivative, verdict(x, got, want, rep.Tol))
	}
}

// analyticMeta computes the closed-form meta-derivative target from the
// analytic derivative via the chain rule on g(t) = β⁻¹(f(α(t))):
//
//	[D*_w f](a) = (v(a)/u(a)) · β( f′(a)·α′(α⁻¹(a)) / β′(β⁻¹(f(a))) )
//
// β′ never vanishes on a strictly monotonic generator, so the division is
// safe; any overflow or domain escape surfaces as the generator's sentinel.
func analyticMeta(sc core.Scheme, tf core.TestFunction, a float64) (float64, error) {
	ua, err := sc.U.Eval(a)
	if err != nil {
		return 0, err
	}
	va, err := sc.V.Eval(a)
	if err != nil {
		return 0, err
	}

	t0, err := sc.Alpha.Inverse(a)
	if err != nil {
		return 0, err
	}
	ap, err := sc.Alpha.Derivative(t0)
	if err != nil {
		return 0, err
	}

	fa := tf.F(a)
	b, err := sc.Beta.Inverse(fa)
	if err != nil {
		return 0, err
	}
	bp, err := sc.Beta.Derivative(b)
	if err != nil {
		return 0, err
	}

	d, err := sc.Beta.Forward(tf.Derivative(a) * ap / bp)
	if err != nil {
		return 0, err
	}
	return va / ua * d, nil
}

// second fills rep.Second with the second-theorem verdict.
func (rep *Report) second(sc core.Scheme, tf core.TestFunction, r, s float64, o Options) {
	// Integrand: the meta-derivative of tf, bridged as in first.
	var captured error
	dh := core.Func(func(x float64) float64 {
		d, derr := deriv.Meta(sc, tf.F, x, o.Deriv...)
		if derr != nil {
			if captured == nil {
				captured = derr
			}
			return math.NaN()
		}
		return d
	})

	got, err := quad.Meta(sc, dh, r, s, o.Quad...)
	if captured != nil {
		err = captured
	}
	if err != nil {
		rep.Second = PointResult{X: s, Kind: FailureEvaluation, Err: err, RelErr: math.Inf(1)}
		return
	}

	want, err := betaDiff(sc, tf.F(s), tf.F(r))
	if err != nil {
		rep.Second = PointResult{X: s, Got: got, Kind: FailureEvaluation, Err: err, RelErr: math.Inf(1)}
		return
	}
	rep.Second = verdict(s, got, want, rep.Tol)
}

// betaDiff computes the β-arithmetic difference hs −_β hr =
// β(β⁻¹(hs) − β⁻¹(hr)).
func betaDiff(sc core.Scheme, hs, hr float64) (float64, error) {
	bs, err := sc.Beta.Inverse(hs)
	if err != nil {
		return 0, err
	}
	br, err := sc.Beta.Inverse(hr)
	if err != nil {
		return 0, err
	}
	return sc.Beta.Forward(bs - br)
}

// verdict measures got against want at tolerance tol.
func verdict(x, got, want, tol float64) PointResult {
	rel := math.Abs(got-want) / math.Max(math.Abs(want), relErrFloor)
	p := PointResult{X: x, Got: got, Want: want, RelErr: rel, Pass: rel <= tol}
	if !p.Pass {
		p.Kind = FailureMismatch
	}
	return p
}
