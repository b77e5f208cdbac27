// Package turnfunc defines the turning-function representation and the
// options for comparing two of them.
package turnfunc

// Norm selects the integral norm used to compare two turning functions.
type Norm int

const (
	// L2 integrates the squared difference and reports its square root.
	L2 Norm = iota
	// L1 integrates the absolute difference.
	L1
)

// Options configures Distance. The zero value selects the L2 norm.
type Options struct {
	Norm Norm
}

// DefaultOptions returns Options with the L2 norm.
func DefaultOptions() Options {
	return Options{Norm: L2}
}

// Function is a polygon boundary's turning function in step-function form.
//
// S holds the breakpoint arc-length fractions in ascending order with
// S[0] == 0; Theta[i] is the cumulative signed turn, in radians, on the
// half-open interval [S[i], S[i+1]) (the last interval wraps to 1). The
// heading of the first edge is the angular reference, so Theta[0] == 0 and
// rigid rotation of the shape leaves the Function unchanged. Traversal is
// always counter-clockwise.
//
// Total is the turn accumulated over one full lap, 2π for a simple ring.
type Function struct {
	S     []float64
	Theta []float64
	Total float64
}
