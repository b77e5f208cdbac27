// Package geometry defines the Ring and Edge types and the sentinel errors
// shared by every metric package in this module.
package geometry

import (
	"errors"

	"github.com/ctessum/geom"
)

// Sentinel errors for ring construction.
var (
	// ErrEmptyInput indicates an empty coordinate sequence was supplied
	// where at least one point is required.
	ErrEmptyInput = errors.New("geometry: coordinate sequence must be non-empty")

	// ErrInvalidGeometry indicates a polygon with fewer than three distinct
	// vertices, or one whose perimeter is zero.
	ErrInvalidGeometry = errors.New("geometry: polygon needs at least 3 distinct vertices and a non-zero perimeter")
)

// Orientation reports the winding direction of a ring.
type Orientation int

const (
	// CCW is counter-clockwise winding (positive signed area).
	CCW Orientation = iota
	// CW is clockwise winding (negative signed area).
	CW
)

// String returns "CCW" or "CW".
func (o Orientation) String() string {
	if o == CW {
		return "CW"
	}

	return "CCW"
}

// Edge is the directed segment between two consecutive ring vertices.
// Edges are derived on demand and never stored.
type Edge struct {
	A, B geom.Point
}

// Length returns the Euclidean length of the edge.
func (e Edge) Length() float64 {
	return dist(e.A, e.B)
}

// Ring is a closed polygon boundary: an ordered sequence of at least three
// distinct vertices, implicitly connected last-to-first. The closing
// duplicate vertex is never stored, and consecutive duplicate input points
// are collapsed at construction, so a Ring has no zero-length edges.
//
// A Ring is immutable once built; it is safe to share across goroutines.
type Ring struct {
	pts []geom.Point
}
