// Package geometry provides validated polygon rings and the planar
// primitives every footprint metric is built on.
//
// The central type is Ring: an immutable, implicitly closed sequence of at
// least three distinct 2D vertices. All validation — empty input, too few
// distinct points, zero perimeter — happens once, inside NewRing; metric
// packages consume Rings and never re-check geometry per call.
//
// Coordinates use geom.Point from github.com/ctessum/geom, so rings convert
// losslessly to and from geom.Polygon for interop with geospatial loaders,
// and the areal accuracy measures (AreaOverlap, OverlapPercent) reuse that
// package's polygon clipping.
//
// Degenerate but well-formed input is accepted: a self-intersecting ring is
// processed geometrically as-is, matching how footprint comparisons are run
// in practice.
package geometry
