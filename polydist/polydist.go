package polydist

import (
	"gonum.org/v1/gonum/floats"

	"github.com/polyfold/footprint/geometry"
)

// Hausdorff — vertex-sampled Hausdorff distance
//
// Directed measure:
//
//	h(a→b) = max over vertices v of a of the distance from v to the
//	         nearest vertex of b.
//
// The symmetric distance is max(h(a→b), h(b→a)) unless Options selects
// another combination. Only vertices are sampled, not continuous boundary
// points — the usual convention for building-footprint comparison, and the
// property that makes Hausdorff flag a single displaced corner.
//
// Complexity: O(len(a)·len(b)).
func Hausdorff(a, b geometry.Ring, opts *Options) float64 {
	mode := SymmetriseDefault
	if opts != nil {
		mode = opts.Symmetrise
	}

	return combine(DirectedHausdorff(a, b), DirectedHausdorff(b, a), mode, SymmetriseMax)
}

// DirectedHausdorff returns the one-way Hausdorff measure h(a→b).
func DirectedHausdorff(a, b geometry.Ring) float64 {
	return floats.Max(nearestVertexDistances(a, b))
}

// Chamfer — vertex-sampled Chamfer distance
//
// Directed measure:
//
//	c(a→b) = mean over vertices v of a of the distance from v to the
//	         nearest vertex of b.
//
// By default the two directed means are averaged; SymmetriseSum yields
// their sum instead (the two normalizations in common use), and min/max are
// available for asymmetric datasets.
//
// Complexity: O(len(a)·len(b)).
func Chamfer(a, b geometry.Ring, opts *Options) float64 {
	mode := SymmetriseDefault
	if opts != nil {
		mode = opts.Symmetrise
	}

	return combine(DirectedChamfer(a, b), DirectedChamfer(b, a), mode, SymmetriseAverage)
}

// DirectedChamfer returns the one-way Chamfer measure c(a→b).
func DirectedChamfer(a, b geometry.Ring) float64 {
	d := nearestVertexDistances(a, b)

	return floats.Sum(d) / float64(len(d))
}

// Polis — PoLiS distance
//
// Directed measure:
//
//	p(a→b) = mean over vertices v of a of the perpendicular distance from
//	         v to the nearest edge of b (clamped to edge endpoints).
//
// PoLiS measures against b's continuous boundary, never only against its
// vertices — that is the metric's defining property and what separates it
// from Hausdorff and Chamfer. The symmetric default is
// (p(a→b) + p(b→a)) / 2.
//
// Complexity: O(len(a)·len(b)).
func Polis(a, b geometry.Ring, opts *Options) float64 {
	mode := SymmetriseDefault
	if opts != nil {
		mode = opts.Symmetrise
	}

	return combine(DirectedPolis(a, b), DirectedPolis(b, a), mode, SymmetriseAverage)
}

// DirectedPolis returns the one-way PoLiS measure p(a→b).
func DirectedPolis(a, b geometry.Ring) float64 {
	d := make([]float64, 0, a.Len())
	for _, v := range a.Vertices() {
		d = append(d, geometry.PointToRing(v, b))
	}

	return floats.Sum(d) / float64(len(d))
}

// nearestVertexDistances collects, for each vertex of a, the distance to
// the nearest vertex of b.
func nearestVertexDistances(a, b geometry.Ring) []float64 {
	d := make([]float64, 0, a.Len())
	for _, v := range a.Vertices() {
		d = append(d, geometry.NearestVertex(v, b))
	}

	return d
}
