// Package polydist defines the symmetrisation options shared by the
// Hausdorff, Chamfer and PoLis metrics.
package polydist

// Symmetrise selects how the two directed measures d(a→b) and d(b→a) are
// combined into one scalar.
type Symmetrise int

const (
	// SymmetriseDefault lets each metric pick its conventional combination:
	// max for Hausdorff, average for Chamfer and PoLis.
	SymmetriseDefault Symmetrise = iota
	// SymmetriseAverage returns (d(a→b) + d(b→a)) / 2.
	SymmetriseAverage
	// SymmetriseSum returns d(a→b) + d(b→a).
	SymmetriseSum
	// SymmetriseMin returns min(d(a→b), d(b→a)). Useful when one dataset is
	// densely noded: the optimistic direction ignores sampling mismatch.
	SymmetriseMin
	// SymmetriseMax returns max(d(a→b), d(b→a)).
	SymmetriseMax
)

// Options configures a metric call. The zero value (and a nil *Options)
// selects the metric's conventional symmetrisation.
type Options struct {
	Symmetrise Symmetrise
}

// DefaultOptions returns Options with SymmetriseDefault.
func DefaultOptions() Options {
	return Options{Symmetrise: SymmetriseDefault}
}

// combine folds the two directed measures according to mode, with fallback
// as the metric's conventional choice.
func combine(ab, ba float64, mode, fallback Symmetrise) float64 {
	if mode == SymmetriseDefault {
		mode = fallback
	}
	switch mode {
	case SymmetriseSum:
		return ab + ba
	case SymmetriseMin:
		return min(ab, ba)
	case SymmetriseMax:
		return max(ab, ba)
	default:
		return (ab + ba) / 2
	}
}
