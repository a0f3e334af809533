package scanner

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// --- Rune classes ----------------------------------------------------------

// IsDigit is true for ASCII decimal digits.
func IsDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// IsIdentStart is true for runes which may start an identifier.
func IsIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// IsIdentPart is true for runes which may continue an identifier.
func IsIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// --- Numeric values --------------------------------------------------------

// IntegerValue converts a decimal integer lexeme, with optional sign.
func IntegerValue(lexeme string) (int64, error) {
	n, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed integer %q (%w)", lexeme, err)
	}
	return n, nil
}

// FloatValue converts a decimal floating point lexeme, with optional sign and
// exponent. A leading dot is accepted ("-.5").
func FloatValue(lexeme string) (float64, error) {
	var f float64 = 1.0
	s := lexeme
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	} else if strings.HasPrefix(s, "-") {
		f *= -1.0
		s = s[1:]
	}
	if s == "" || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("malformed number %q", lexeme)
	}
	a, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed number %q (%w)", lexeme, err)
	}
	return f * a, nil
}
