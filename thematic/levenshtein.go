package thematic

// Levenshtein returns the minimum number of unit-cost single-character
// edits (insertions, deletions, substitutions) transforming a into b.
//
// The distance is symmetric, zero exactly for equal strings, and equals the
// other string's length when one side is empty. Inputs are treated as
// opaque rune sequences.
//
// Complexity: O(len(a)·len(b)) time, O(len(b)) memory (two-row DP).
func Levenshtein(a, b string) int {
	if len(a) == 0 {
		return len([]rune(b))
	}
	if len(b) == 0 {
		return len([]rune(a))
	}

	ra, rb := []rune(a), []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
