package turnfunc

import (
	"math"
	"sort"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats"

	"github.com/polyfold/footprint/geometry"
)

// New builds the turning function of a ring.
//
// Clockwise rings are reversed first, so both windings of the same shape
// produce the same signature. Edge lengths are normalized by the perimeter,
// making the signature scale-invariant; measuring turns relative to the
// first edge's heading makes it rotation-invariant.
func New(r geometry.Ring) Function {
	if r.Orientation() == geometry.CW {
		r = r.Reverse()
	}

	v := r.Vertices()
	n := len(v)

	lengths := make([]float64, n)
	for i := range v {
		lengths[i] = geometry.Dist(v[i], v[(i+1)%n])
	}
	cum := make([]float64, n)
	floats.CumSum(cum, lengths)
	perimeter := cum[n-1]

	s := make([]float64, n)
	for i := 1; i < n; i++ {
		s[i] = cum[i-1]
	}
	floats.Scale(1/perimeter, s)

	theta := make([]float64, n)
	for i := 1; i < n; i++ {
		theta[i] = theta[i-1] + turnAt(v, i)
	}

	return Function{
		S:     s,
		Theta: theta,
		Total: theta[n-1] + turnAt(v, 0),
	}
}

// turnAt returns the signed exterior angle at vertex i: the heading change
// from the incoming edge to the outgoing edge, in (-π, π]. Positive turns
// are counter-clockwise; a collinear vertex turns by zero.
func turnAt(v []geom.Point, i int) float64 {
	n := len(v)
	prev := v[(i-1+n)%n]
	curr := v[i]
	next := v[(i+1)%n]

	d1 := geom.Point{X: curr.X - prev.X, Y: curr.Y - prev.Y}
	d2 := geom.Point{X: next.X - curr.X, Y: next.Y - curr.Y}

	return math.Atan2(d1.X*d2.Y-d1.Y*d2.X, d1.X*d2.X+d1.Y*d2.Y)
}

// eval returns the function value at arc-length fraction s in [0, 1).
func (f Function) eval(s float64) float64 {
	i := sort.SearchFloat64s(f.S, s)
	if i == len(f.S) || f.S[i] != s {
		i--
	}

	return f.Theta[i]
}

// evalShifted returns the value of f at fraction s after shifting the
// parametrization start forward by t: positions that wrap past the end of
// the lap carry the accumulated full-lap turn.
func (f Function) evalShifted(s, t float64) float64 {
	u := s + t
	if u >= 1 {
		return f.eval(u-1) + f.Total
	}

	return f.eval(u)
}
