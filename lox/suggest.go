package lox

import (
	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance is the maximum edit distance between a misspelled
// lexeme and a keyword to suggest.
const maxSuggestDistance = 2

// Suggest returns the keyword closest to lexeme, if lexeme looks like a
// misspelling of it. The edit distance has to be positive, at most 2, and less
// than the length of lexeme. Ties are resolved in lexical order.
func Suggest(lexeme string) (string, bool) {
	best, bestDist := "", maxSuggestDistance+1
	for _, kw := range Keywords() {
		d := levenshtein.ComputeDistance(lexeme, kw)
		if d == 0 {
			return "", false
		}
		if d < bestDist && d < len([]rune(lexeme)) {
			best, bestDist = kw, d
		}
	}
	if best == "" {
		return "", false
	}
	tracer().Debugf("suggesting %q for %q", best, lexeme)
	return best, true
}
