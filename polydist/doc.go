// Package polydist computes positional distances between pairs of matching
// polygon rings: Hausdorff, Chamfer and PoLis.
//
// All three are built from directed one-way measures that are then
// symmetrised:
//
//   - Hausdorff — worst case: the largest nearest-vertex distance from one
//     ring's vertices to the other's. Sensitive to a single outlier vertex,
//     which is exactly what footprint-quality auditing wants.
//   - Chamfer — average case: the mean nearest-vertex distance. Smooths out
//     Hausdorff's sensitivity to one bad vertex.
//   - PoLis — the mean perpendicular distance from each vertex to the
//     nearest point of the other ring's boundary. Unlike the two above it
//     measures against edges (the continuous boundary), not only vertices,
//     giving a finer positional-accuracy score; see
//     https://ieeexplore.ieee.org/document/6849454.
//
// Symmetrisation is configurable through Options (average, sum, min, max).
// With nil options each metric uses its conventional default: max for
// Hausdorff, average for Chamfer and PoLis. The directed one-way measures
// are exported too.
//
// All functions are pure and safe for concurrent use.
package polydist
