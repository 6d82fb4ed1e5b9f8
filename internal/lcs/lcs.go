// Package lcs compares identifiers by their longest common subsequences and
// splits them into words. It suggests keywords for mistyped ones.
package lcs

// Len returns the length of the longest common subsequence of a and b in
// runes.
func Len(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	// prev and curr are two rows of the dynamic programming table.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			switch {
			case ra[i-1] == rb[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// prefixLen returns the length of the common prefix of a and b in runes.
func prefixLen(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n := 0
	for n < len(ra) && n < len(rb) && ra[n] == rb[n] {
		n++
	}
	return n
}
