package lox

import (
	"fmt"

	"github.com/npillmayer/descent"
	"github.com/npillmayer/descent/scanner"
)

// Recognizer recognizes Lox tokens. It is stateless, a single instance may be
// shared between scanners.
type Recognizer struct{}

var _ scanner.Recognizer = Recognizer{}

// NewScanner creates a scanner for Lox, with C-style comments. Options are
// applied after the defaults.
func NewScanner(opts ...scanner.Option) *scanner.Scanner {
	defaults := []scanner.Option{
		scanner.LineComment("//"),
		scanner.MultiLineComment("/*", "*/"),
	}
	return scanner.New(Recognizer{}, append(defaults, opts...)...)
}

var singles = map[rune]descent.TokType{
	'(': LeftParen, ')': RightParen, '{': LeftBrace, '}': RightBrace,
	',': Comma, '.': Dot, '-': Minus, '+': Plus, ';': Semicolon,
	'/': Slash, '*': Star, '^': Caret, '?': Question, ':': Colon,
}

// operators which may be followed by '='
var withEqual = map[rune][2]descent.TokType{
	'!': {Bang, BangEqual},
	'=': {Equal, EqualEqual},
	'>': {Greater, GreaterEqual},
	'<': {Less, LessEqual},
}

// TryScanTokenFromCurrentPosition is part of the scanner.Recognizer interface.
func (rec Recognizer) TryScanTokenFromCurrentPosition(s *scanner.Scanner) bool {
	r := s.Peek()
	switch {
	case scanner.IsDigit(r):
		return rec.number(s)
	case r == '"':
		return rec.str(s)
	case scanner.IsIdentStart(r):
		return rec.identifier(s)
	}
	if t, ok := singles[r]; ok {
		s.Advance()
		s.AddToken(t, nil)
		return true
	}
	if t, ok := withEqual[r]; ok {
		s.Advance()
		if s.Match('=') {
			s.AddToken(t[1], nil)
		} else {
			s.AddToken(t[0], nil)
		}
		return true
	}
	return false
}

// number recognizes integers and floats. A dot has to be followed by a digit
// to be part of a number, an exponent marker has to be followed by digits.
func (rec Recognizer) number(s *scanner.Scanner) bool {
	s.AcceptWhile(scanner.IsDigit)
	isFloat := false
	if s.Peek() == '.' && scanner.IsDigit(s.PeekNext()) {
		s.Advance()
		s.AcceptWhile(scanner.IsDigit)
		isFloat = true
	}
	if r := s.Peek(); r == 'e' || r == 'E' {
		s.Advance()
		if r = s.Peek(); r == '+' || r == '-' {
			s.Advance()
		}
		if s.AcceptWhile(scanner.IsDigit) == 0 {
			s.Error(fmt.Sprintf("malformed number %q", s.TokenText()))
			return false
		}
		isFloat = true
	}
	if isFloat {
		f, err := scanner.FloatValue(s.TokenText())
		if err != nil {
			s.Error(err.Error())
			return false
		}
		s.AddToken(Float, f)
		return true
	}
	n, err := scanner.IntegerValue(s.TokenText())
	if err != nil {
		s.Error(err.Error())
		return false
	}
	s.AddToken(Integer, n)
	return true
}

// str recognizes string literals in double quotes. Strings may span lines,
// there are no escape sequences.
func (rec Recognizer) str(s *scanner.Scanner) bool {
	s.Advance()
	for !s.AtEnd() && s.Peek() != '"' {
		s.Advance()
	}
	if s.AtEnd() {
		s.Error("unterminated string")
		return false
	}
	s.Advance()
	lexeme := s.TokenText()
	s.AddToken(String, lexeme[1:len(lexeme)-1])
	return true
}

func (rec Recognizer) identifier(s *scanner.Scanner) bool {
	s.AcceptWhile(scanner.IsIdentPart)
	t, _ := Keyword(s.TokenText())
	s.AddToken(t, nil)
	return true
}
