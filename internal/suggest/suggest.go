package suggest

import "strings"

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-byte insertions, deletions or substitutions turning one
// into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Closest returns the candidate nearest to name, compared case-insensitively.
// Candidates further than half of name's length are not suggestions.
func Closest(name string, candidates ...string) (string, bool) {
	limit := max(len(name)/2, 1)

	best, bestDist := "", limit+1
	for _, c := range candidates {
		d := Levenshtein(strings.ToLower(name), strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, bestDist <= limit
}

// Hint formats a "did you mean" suffix for an error message, or "".
func Hint(name string, candidates ...string) string {
	if c, ok := Closest(name, candidates...); ok && c != name {
		return "; did you mean " + c + "?"
	}

	return ""
}
