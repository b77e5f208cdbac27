package turnfunc_test

import (
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"

	"github.com/polyfold/footprint/turnfunc"
)

// The alignment search is exact, but breakpoint fractions go through
// irrational edge lengths and trigonometry; distances that are zero in
// theory come out at accumulated float noise (observed up to ~1e-8).
const tol = 1e-6

// TestDistance_Identity verifies d(A,A) == 0 for convex and concave rings.
func TestDistance_Identity(t *testing.T) {
	sq := mustRing(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 0}, geom.Point{X: 5, Y: 5}, geom.Point{X: 0, Y: 5})
	notched := mustRing(t,
		geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 0}, geom.Point{X: 5, Y: 5},
		geom.Point{X: 4, Y: 5}, geom.Point{X: 4, Y: 6}, geom.Point{X: 2, Y: 6},
		geom.Point{X: 2, Y: 5}, geom.Point{X: 0, Y: 5})

	assert.InDelta(t, 0.0, turnfunc.Distance(sq, sq, nil), tol)
	assert.InDelta(t, 0.0, turnfunc.Distance(notched, notched, nil), tol)
}

// TestDistance_ScaleInvariance compares a square with its 10× copy:
// perimeter normalization makes the signatures identical.
func TestDistance_ScaleInvariance(t *testing.T) {
	small := mustRing(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 0}, geom.Point{X: 5, Y: 5}, geom.Point{X: 0, Y: 5})
	large := mustRing(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 50, Y: 0}, geom.Point{X: 50, Y: 50}, geom.Point{X: 0, Y: 50})

	assert.InDelta(t, 0.0, turnfunc.Distance(small, large, nil), tol)
}

// TestDistance_RotationInvariance compares an axis-aligned square with a
// 45°-rotated square of the same size: only shape matters, not the
// orientation in the plane.
func TestDistance_RotationInvariance(t *testing.T) {
	axis := mustRing(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 0}, geom.Point{X: 2, Y: 2}, geom.Point{X: 0, Y: 2})
	diamond := mustRing(t, geom.Point{X: 1, Y: 0}, geom.Point{X: 2, Y: 1}, geom.Point{X: 1, Y: 2}, geom.Point{X: 0, Y: 1})

	assert.InDelta(t, 0.0, turnfunc.Distance(axis, diamond, nil), tol)
}

// TestDistance_StartVertexInvariance rotates the vertex list of one ring:
// the choice of starting vertex must not change the result.
func TestDistance_StartVertexInvariance(t *testing.T) {
	ring := mustRing(t,
		geom.Point{X: 3, Y: 2}, geom.Point{X: 7, Y: 2}, geom.Point{X: 7, Y: 4}, geom.Point{X: 5, Y: 7},
		geom.Point{X: 7, Y: 8}, geom.Point{X: 0, Y: 8}, geom.Point{X: 0, Y: 4}, geom.Point{X: 2, Y: 4})
	// Same cycle, reversed traversal, different start vertex.
	shifted := mustRing(t,
		geom.Point{X: 7, Y: 8}, geom.Point{X: 0, Y: 8}, geom.Point{X: 0, Y: 4}, geom.Point{X: 2, Y: 4},
		geom.Point{X: 3, Y: 2}, geom.Point{X: 7, Y: 2}, geom.Point{X: 7, Y: 4}, geom.Point{X: 5, Y: 7})

	assert.InDelta(t, 0.0, turnfunc.Distance(ring, shifted, nil), tol)
}

// TestDistance_WindingInvariance compares opposite traversal directions of
// the same square.
func TestDistance_WindingInvariance(t *testing.T) {
	ccw := mustRing(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 0}, geom.Point{X: 5, Y: 5}, geom.Point{X: 0, Y: 5})
	cw := mustRing(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: 5}, geom.Point{X: 5, Y: 5}, geom.Point{X: 5, Y: 0})

	assert.InDelta(t, 0.0, turnfunc.Distance(ccw, cw, nil), tol)
}

// TestDistance_CollinearDensification compares a square with the same
// square carrying extra vertices along its edges and a different start.
func TestDistance_CollinearDensification(t *testing.T) {
	sq := mustRing(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 0}, geom.Point{X: 5, Y: 5}, geom.Point{X: 0, Y: 5})
	dense := mustRing(t,
		geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 3, Y: 0}, geom.Point{X: 5, Y: 0},
		geom.Point{X: 5, Y: 2.5}, geom.Point{X: 5, Y: 5}, geom.Point{X: 1, Y: 5}, geom.Point{X: 0, Y: 5},
		geom.Point{X: 0, Y: 2}, geom.Point{X: 0, Y: 1})
	denseShifted := mustRing(t,
		geom.Point{X: 5, Y: 2}, geom.Point{X: 5, Y: 3}, geom.Point{X: 5, Y: 5}, geom.Point{X: 3, Y: 5},
		geom.Point{X: 0, Y: 5}, geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 0}, geom.Point{X: 5, Y: 1})

	assert.InDelta(t, 0.0, turnfunc.Distance(sq, dense, nil), tol)
	assert.InDelta(t, 0.0, turnfunc.Distance(sq, denseShifted, nil), tol)
}

// TestDistance_DifferentShapes verifies that genuinely different outlines
// are kept apart: square vs. triangle and square vs. notched square.
func TestDistance_DifferentShapes(t *testing.T) {
	sq := mustRing(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 0}, geom.Point{X: 5, Y: 5}, geom.Point{X: 0, Y: 5})
	tri := mustRing(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}, geom.Point{X: 0, Y: 3})
	notched := mustRing(t,
		geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 0}, geom.Point{X: 5, Y: 5},
		geom.Point{X: 4, Y: 5}, geom.Point{X: 4, Y: 6}, geom.Point{X: 2, Y: 6},
		geom.Point{X: 2, Y: 5}, geom.Point{X: 0, Y: 5})

	assert.Greater(t, turnfunc.Distance(sq, tri, nil), 0.1)
	assert.Greater(t, turnfunc.Distance(sq, notched, nil), 0.01)
}

// TestDistance_Symmetry verifies d(A,B) == d(B,A) for both norms.
func TestDistance_Symmetry(t *testing.T) {
	sq := mustRing(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 0}, geom.Point{X: 5, Y: 5}, geom.Point{X: 0, Y: 5})
	tri := mustRing(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}, geom.Point{X: 0, Y: 3})

	for _, norm := range []turnfunc.Norm{turnfunc.L2, turnfunc.L1} {
		opts := turnfunc.Options{Norm: norm}
		assert.InDelta(t,
			turnfunc.Distance(sq, tri, &opts),
			turnfunc.Distance(tri, sq, &opts), tol)
	}
}

// TestDistance_L1Option verifies the configurable norm: L1 of identical
// shapes is zero and L1 of different shapes is positive, like L2.
func TestDistance_L1Option(t *testing.T) {
	sq := mustRing(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 0}, geom.Point{X: 5, Y: 5}, geom.Point{X: 0, Y: 5})
	diamond := mustRing(t, geom.Point{X: 1, Y: 0}, geom.Point{X: 2, Y: 1}, geom.Point{X: 1, Y: 2}, geom.Point{X: 0, Y: 1})
	tri := mustRing(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}, geom.Point{X: 0, Y: 3})

	opts := turnfunc.DefaultOptions()
	opts.Norm = turnfunc.L1
	assert.InDelta(t, 0.0, turnfunc.Distance(sq, diamond, &opts), tol)
	assert.Positive(t, turnfunc.Distance(sq, tri, &opts))
}

// TestFunctionDistance_Reuse verifies that prebuilt signatures give the
// same result as the ring-level entry point.
func TestFunctionDistance_Reuse(t *testing.T) {
	sq := mustRing(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 0}, geom.Point{X: 5, Y: 5}, geom.Point{X: 0, Y: 5})
	tri := mustRing(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}, geom.Point{X: 0, Y: 3})

	f, g := turnfunc.New(sq), turnfunc.New(tri)
	assert.Equal(t, turnfunc.Distance(sq, tri, nil), turnfunc.FunctionDistance(f, g, turnfunc.L2))
}
