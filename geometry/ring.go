package geometry

import (
	"iter"
	"math"

	"github.com/ctessum/geom"
)

// NewRing builds a validated Ring from an ordered vertex sequence.
//
// The input may or may not repeat the first point at the end; an explicit
// closing duplicate is dropped. Consecutive duplicate points are collapsed.
// NewRing returns ErrEmptyInput for an empty sequence and ErrInvalidGeometry
// when fewer than three distinct vertices remain after normalization.
//
// The input slice is copied; callers may reuse it freely afterwards.
func NewRing(pts []geom.Point) (Ring, error) {
	if len(pts) == 0 {
		return Ring{}, ErrEmptyInput
	}

	clean := make([]geom.Point, 0, len(pts))
	for _, p := range pts {
		if len(clean) > 0 && p.Equals(clean[len(clean)-1]) {
			continue
		}
		clean = append(clean, p)
	}
	// Drop the explicit closing vertex, if present.
	if len(clean) > 1 && clean[0].Equals(clean[len(clean)-1]) {
		clean = clean[:len(clean)-1]
	}
	if len(clean) < 3 {
		return Ring{}, ErrInvalidGeometry
	}

	return Ring{pts: clean}, nil
}

// NewRingFromPolygon builds a Ring from the exterior ring of a geom.Polygon.
// Interior rings (holes) are ignored; footprint metrics compare outer
// boundaries only.
func NewRingFromPolygon(p geom.Polygon) (Ring, error) {
	if len(p) == 0 {
		return Ring{}, ErrEmptyInput
	}

	return NewRing(p[0])
}

// Len returns the number of vertices (equivalently, edges) of the ring.
func (r Ring) Len() int { return len(r.pts) }

// Vertices returns a copy of the ring's vertices, without the closing
// duplicate.
func (r Ring) Vertices() []geom.Point {
	out := make([]geom.Point, len(r.pts))
	copy(out, r.pts)

	return out
}

// Vertex returns the i-th vertex. Indices wrap modulo Len, so Vertex(Len())
// is the first vertex again.
func (r Ring) Vertex(i int) geom.Point {
	return r.pts[mod(i, len(r.pts))]
}

// Edge returns the i-th edge, from vertex i to vertex i+1. The last edge
// closes the ring back to the first vertex.
func (r Ring) Edge(i int) Edge {
	i = mod(i, len(r.pts))

	return Edge{A: r.pts[i], B: r.pts[(i+1)%len(r.pts)]}
}

// Edges returns a lazy, restartable sequence of the ring's edges, including
// the closing edge from the last vertex back to the first.
func (r Ring) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for i := range r.pts {
			if !yield(r.Edge(i)) {
				return
			}
		}
	}
}

// Perimeter returns the total boundary length.
func (r Ring) Perimeter() float64 {
	var total float64
	for e := range r.Edges() {
		total += e.Length()
	}

	return total
}

// MaxEdgeLength returns the length of the longest edge.
func (r Ring) MaxEdgeLength() float64 {
	var longest float64
	for e := range r.Edges() {
		if l := e.Length(); l > longest {
			longest = l
		}
	}

	return longest
}

// SignedArea returns the shoelace area of the ring: positive for
// counter-clockwise winding, negative for clockwise. A self-intersecting
// ring yields the algebraic sum of its loop areas.
func (r Ring) SignedArea() float64 {
	var sum float64
	for e := range r.Edges() {
		sum += e.A.X*e.B.Y - e.B.X*e.A.Y
	}

	return sum / 2
}

// Orientation reports the ring's winding direction via its signed area.
// A degenerate ring with zero area reports CCW.
func (r Ring) Orientation() Orientation {
	if r.SignedArea() < 0 {
		return CW
	}

	return CCW
}

// Centroid returns the area centroid of the ring. For a degenerate ring
// with zero area it falls back to the vertex mean.
func (r Ring) Centroid() geom.Point {
	a := r.SignedArea()
	if a == 0 {
		var c geom.Point
		for _, p := range r.pts {
			c.X += p.X
			c.Y += p.Y
		}
		n := float64(len(r.pts))

		return geom.Point{X: c.X / n, Y: c.Y / n}
	}

	var cx, cy float64
	for e := range r.Edges() {
		cross := e.A.X*e.B.Y - e.B.X*e.A.Y
		cx += (e.A.X + e.B.X) * cross
		cy += (e.A.Y + e.B.Y) * cross
	}

	return geom.Point{X: cx / (6 * a), Y: cy / (6 * a)}
}

// Polygon converts the ring to a geom.Polygon with an explicitly closed
// exterior ring, suitable for geom's clipping and area operations.
func (r Ring) Polygon() geom.Polygon {
	closed := make([]geom.Point, len(r.pts)+1)
	copy(closed, r.pts)
	closed[len(r.pts)] = r.pts[0]

	return geom.Polygon{closed}
}

// Reverse returns a ring with the opposite winding order, starting at the
// same vertex.
func (r Ring) Reverse() Ring {
	rev := make([]geom.Point, len(r.pts))
	rev[0] = r.pts[0]
	for i := 1; i < len(r.pts); i++ {
		rev[i] = r.pts[len(r.pts)-i]
	}

	return Ring{pts: rev}
}

// mod is the non-negative remainder of i modulo n.
func mod(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}

	return i
}

// dist is the Euclidean distance between two points.
func dist(a, b geom.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
