package generator

import (
	"fmt"
	"math"
)

// Map is a scalar callable used for custom generator pieces.
// It must be pure: deterministic and free of side effects.
type Map func(float64) float64

// bracketExpandMax bounds the geometric bracket search preceding bisection.
const bracketExpandMax = 64

// bisectInvert solves forward(x) = y for a strictly monotonic forward map by
// bracket expansion followed by bisection.
//
// Algorithm outline:
//  1. Start from the seed interval [lo, hi] (the custom generator's domain
//     bounds, or ±1 around 0 when unbounded).
//  2. Expand the interval geometrically, at most bracketExpandMax doublings,
//     until forward(lo) − y and forward(hi) − y take opposite signs.
//  3. Bisect at most invertMaxIter times until the interval shrinks below
//     invertTol relative to its midpoint.
//
// Both loops carry hard caps, so the search always terminates; exhausting
// either budget yields ErrInverseNotFound rather than a poor approximation.
//
// Complexity: O(bracketExpandMax + invertMaxIter) forward evaluations.
func bisectInvert(forward Map, y, lo, hi float64) (float64, error) {
	if lo >= hi {
		lo, hi = -1, 1
	}

	flo := forward(lo) - y
	fhi := forward(hi) - y
	if !finite(flo) || !finite(fhi) {
		return 0, fmt.Errorf("%w: forward map non-finite on bracket seed [%g, %g]", ErrInverseNotFound, lo, hi)
	}

	// Expand until the bracket straddles the target value.
	var n int
	for n = 0; flo*fhi > 0 && n < bracketExpandMax; n++ {
		width := hi - lo
		lo -= width
		hi += width
		flo = forward(lo) - y
		fhi = forward(hi) - y
		if !finite(flo) || !finite(fhi) {
			return 0, fmt.Errorf("%w: forward map non-finite while bracketing y=%g", ErrInverseNotFound, y)
		}
	}
	if flo*fhi > 0 {
		return 0, fmt.Errorf("%w: no bracket for y=%g after %d expansions", ErrInverseNotFound, y, n)
	}
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}

	// Bisection with the iteration cap from types.go.
	for i := 0; i < invertMaxIter; i++ {
		mid := lo + (hi-lo)/2
		fmid := forward(mid) - y
		if !finite(fmid) {
			return 0, fmt.Errorf("%w: forward map non-finite at x=%g", ErrInverseNotFound, mid)
		}
		if fmid == 0 {
			return mid, nil
		}
		if fmid*flo < 0 {
			hi = mid
		} else {
			lo, flo = mid, fmid
		}
		if hi-lo <= invertTol*math.Max(1, math.Abs(mid)) {
			return lo + (hi-lo)/2, nil
		}
	}
	return 0, fmt.Errorf("%w: bisection did not reach tolerance for y=%g", ErrInverseNotFound, y)
}
