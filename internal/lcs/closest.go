package lcs

import (
	"strings"
)

// Closest finds the candidate most similar to s. Similarity is the length of
// the longest common subsequence, compared case-insensitively. A candidate is
// similar enough only if the common subsequence covers more than half of the
// longer string. Ties are broken by the longer common prefix, and then by the
// order of candidates.
func Closest(s string, candidates []string) (string, bool) {
	lower := strings.ToLower(s)

	best, bestScore, bestPrefix := "", 0, 0
	for _, c := range candidates {
		lowerC := strings.ToLower(c)
		score := Len(lower, lowerC)
		if score*2 <= max(len([]rune(s)), len([]rune(c))) {
			continue
		}

		prefix := prefixLen(lower, lowerC)
		if score > bestScore || score == bestScore && prefix > bestPrefix {
			best, bestScore, bestPrefix = c, score, prefix
		}
	}
	return best, bestScore > 0
}
