package lcs

import "unicode"

// class is the kind of a rune in an identifier.
type class int

const (
	none class = iota
	caseless
	lower
	upper
	digit
	underscore
)

func classOf(r rune) class {
	switch {
	case r == '_':
		return underscore
	case unicode.IsDigit(r):
		return digit
	case unicode.IsUpper(r):
		return upper
	case unicode.IsLower(r):
		return lower
	}
	return caseless
}

func (c class) letter() bool { return c == lower || c == upper || c == caseless }

// SplitWords splits an identifier into words. Runs of underscores and digits
// are words too:
//
//	SplitWords("rocketShips") => ["rocket", "Ships"]
//	SplitWords("HTTPTimeout") => ["HTTP", "Timeout"]
//	SplitWords("to_the_moon") => ["to", "_", "the", "_", "moon"]
//	SplitWords("price2Moon")  => ["price", "2", "Moon"]
func SplitWords(s string) []string {
	rs := []rune(s)
	if len(rs) == 0 {
		return nil
	}

	var words []string
	start := 0
	for i := 1; i < len(rs); i++ {
		next := none
		if i+1 < len(rs) {
			next = classOf(rs[i+1])
		}
		if breaksAt(classOf(rs[i-1]), classOf(rs[i]), next) {
			words = append(words, string(rs[start:i]))
			start = i
		}
	}
	return append(words, string(rs[start:]))
}

// breaksAt reports whether a word starts at curr.
func breaksAt(prev, curr, next class) bool {
	switch {
	case prev == lower && curr == upper:
		// rocket|Ships
		return true
	case curr == upper && next == lower:
		// HTTP|Timeout
		return true
	case (prev == underscore) != (curr == underscore):
		return true
	case prev.letter() && curr == digit, prev == digit && curr.letter():
		return true
	}
	return false
}
