package turnfunc

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/polyfold/footprint/geometry"
)

// Distance computes the turn-function distance between two rings.
//
// The result is the minimum, over every parametrization start shift t that
// aligns a breakpoint of one function with a breakpoint of the other and
// over the analytically optimal rotation offset θ*, of
//
//	L2: sqrt( ∫₀¹ (fₜ(s) − g(s) − θ*)² ds )
//	L1:       ∫₀¹ |fₜ(s) − g(s) − θ*|  ds
//
// Identical shapes — under scaling, rigid rotation, winding reversal,
// start-vertex rotation, or collinear vertex insertion — have distance
// zero. A nil opts selects the L2 norm.
//
// Complexity: O(n·m·(n+m)·log(n+m)) for rings with n and m vertices; for
// building footprints n and m are small, so alignment stays exact rather
// than sampled.
func Distance(a, b geometry.Ring, opts *Options) float64 {
	norm := L2
	if opts != nil {
		norm = opts.Norm
	}

	return FunctionDistance(New(a), New(b), norm)
}

// FunctionDistance compares two prebuilt turning functions. Use it when one
// ring is matched against many candidates and its signature can be reused.
func FunctionDistance(f, g Function, norm Norm) float64 {
	best := math.Inf(1)
	for _, i := range f.S {
		for _, j := range g.S {
			if d := alignedDistance(f, g, frac(i-j), norm); d < best {
				best = d
			}
		}
	}

	return best
}

// alignedDistance integrates the difference between f shifted by t and g
// over the merged breakpoint partition, with the rotation offset solved in
// closed form for the requested norm.
func alignedDistance(f, g Function, t float64, norm Norm) float64 {
	cuts := make([]float64, 0, len(f.S)+len(g.S)+1)
	for _, s := range f.S {
		cuts = append(cuts, frac(s-t))
	}
	cuts = append(cuts, g.S...)
	cuts = append(cuts, 1)
	sort.Float64s(cuts)

	// Piecewise-constant difference: one value and weight per interval.
	diffs := make([]float64, 0, len(cuts))
	weights := make([]float64, 0, len(cuts))
	lo := 0.0
	for _, hi := range cuts {
		if hi <= lo {
			continue
		}
		mid := (lo + hi) / 2
		diffs = append(diffs, f.evalShifted(mid, t)-g.eval(mid))
		weights = append(weights, hi-lo)
		lo = hi
	}

	if norm == L1 {
		theta := weightedMedian(diffs, weights)
		var total float64
		for k, d := range diffs {
			total += weights[k] * math.Abs(d-theta)
		}

		return total
	}

	// L2: the optimal offset is the area-weighted mean of the difference,
	// leaving the weighted variance as the integral.
	theta := floats.Dot(diffs, weights)
	var total float64
	for k, d := range diffs {
		total += weights[k] * (d - theta) * (d - theta)
	}

	return math.Sqrt(total)
}

// weightedMedian returns a value θ minimizing Σ wᵢ·|dᵢ−θ|: the point where
// the cumulative weight first reaches half of the total.
func weightedMedian(d, w []float64) float64 {
	idx := make([]int, len(d))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return d[idx[i]] < d[idx[j]] })

	half := floats.Sum(w) / 2
	var acc float64
	for _, i := range idx {
		acc += w[i]
		if acc >= half {
			return d[i]
		}
	}

	return d[idx[len(idx)-1]]
}

// frac maps x into [0, 1).
func frac(x float64) float64 {
	x -= math.Floor(x)
	if x >= 1 {
		return 0
	}

	return x
}
