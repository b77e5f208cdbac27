package geometry

import (
	"math"

	"github.com/ctessum/geom"
)

// Dist returns the Euclidean distance between two points.
func Dist(a, b geom.Point) float64 {
	return dist(a, b)
}

// PointToSegment returns the distance from p to the segment [a, b]. The
// perpendicular foot is clamped to the segment's endpoints when it falls
// outside the span; a degenerate segment (a == b) reduces to plain
// point-to-point distance.
func PointToSegment(p, a, b geom.Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	norm2 := abx*abx + aby*aby
	if norm2 == 0 {
		return dist(p, a)
	}

	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / norm2
	t = math.Max(0, math.Min(1, t))

	return dist(p, geom.Point{X: a.X + t*abx, Y: a.Y + t*aby})
}

// PointToRing returns the minimum distance from p to the ring's boundary:
// the smallest PointToSegment over every edge, including the closing edge.
// A point inside the ring still measures to the boundary, not zero.
func PointToRing(p geom.Point, r Ring) float64 {
	best := math.Inf(1)
	for e := range r.Edges() {
		if d := PointToSegment(p, e.A, e.B); d < best {
			best = d
		}
	}

	return best
}

// NearestVertex returns the minimum distance from p to any vertex of the
// ring. This is the vertex-sampled kernel used by the Hausdorff and Chamfer
// metrics; PoLis deliberately uses PointToRing instead.
func NearestVertex(p geom.Point, r Ring) float64 {
	best := math.Inf(1)
	for _, v := range r.pts {
		if d := dist(p, v); d < best {
			best = d
		}
	}

	return best
}
