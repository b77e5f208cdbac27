// Package footprint is a library of distance measures between pairs of
// matching polygons — typically building footprints coming from two
// different datasets (e.g. an OpenStreetMap extract against a cadastral
// reference).
//
// 🚀 What is footprint?
//
//	A small, stateless collection of shape and attribute metrics:
//		• Geometry primitives: validated rings, edge iteration, point↔segment distance
//		• Hausdorff distance: worst-case nearest-vertex mismatch
//		• Chamfer distance: average nearest-vertex mismatch
//		• PoLis distance: average perpendicular vertex-to-edge mismatch
//		• Turn-function distance: start- and rotation-invariant boundary signature
//		• Levenshtein distance: edit distance over thematic attributes
//		• Areal accuracy: TP/FP/FN overlap, centroid offset, perimeter ratio
//
// ✨ Why choose footprint?
//
//   - Pure functions – every metric is a deterministic function of its inputs
//   - Validated once – rings are checked at construction, never per call
//   - Concurrency-safe – immutable inputs, no global state, call from any goroutine
//   - Exact alignment – turn-function comparison integrates piecewise, no sampling
//
// Everything is organized under four subpackages:
//
//	geometry/    — Ring, Edge, point/segment/ring distances & areal overlap measures
//	polydist/    — Hausdorff, Chamfer and PoLis with symmetrisation options
//	turnfunc/    — turning functions and the turn-function distance
//	thematic/    — Levenshtein distance for attribute strings
//
// Quick ASCII example:
//
//	    ┌────┐   ┌─────┐
//	    │ A  │ ~ │  B  │ → Hausdorff(A,B), Polis(A,B), ...
//	    └────┘   └─────┘
//
// Callers own serialization: any geospatial loading, matching of footprint
// pairs, CRS handling, or plotting happens outside this module — the core
// consumes ordered vertex rings and returns scalars.
//
//	go get github.com/polyfold/footprint
package footprint
