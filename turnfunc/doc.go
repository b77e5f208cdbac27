// Package turnfunc compares polygon boundaries through their turning
// functions: the cumulative signed exterior angle of the boundary,
// parametrized by arc-length fraction along the perimeter.
//
// 🚀 What is a turning function?
//
//	Walk the boundary counter-clockwise at unit speed, normalized so the
//	full walk takes 1.0. Each vertex turns the heading by its signed
//	exterior angle; plotting cumulative turn against distance walked gives
//	a step function that rises by 2π over one full lap. Two shapes are
//	similar when their step functions are close — independently of where
//	the walk started, how large the shape is, and how it is rotated in the
//	plane. See https://ieeexplore.ieee.org/document/75509.
//
// The distance minimizes, over all parametrization start shifts and
// rotation offsets, the integral of the (squared or absolute) difference
// between the two step functions:
//
//   - the start shift t ranges over all breakpoint alignments of the two
//     functions — the minimum of the restricted problem is attained there,
//     so no sampling grid is involved;
//   - for each t the integral is computed exactly by merging the two
//     breakpoint partitions and integrating piecewise;
//   - the rotation offset θ is solved in closed form per candidate t: the
//     area-weighted mean of the difference for the L2 norm, the weighted
//     median for L1.
//
// Input winding order does not matter: orientation is detected from the
// signed area and clockwise rings are reversed before the signature is
// built. Collinear vertices are harmless — they split an edge without
// changing the step function.
//
// All functions are pure and safe for concurrent use.
package turnfunc
