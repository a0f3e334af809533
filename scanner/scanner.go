/*
Package scanner implements a scanner driver for hand-written grammars.

A Scanner turns a source text into a slice of tokens. It skips white space and
comments itself and delegates everything else to a Recognizer, which is the
grammar-specific part of scanning. Comment syntax is configurable: a marker
for line comments and a pair of markers for multi-line comments. Comments are
either dropped or, if configured, recorded as tokens of type descent.Comment.

	sc := scanner.New(myRecognizer, scanner.LineComment("#"),
	                                scanner.MultiLineComment("(*", "*)"))
	sc.ScanTextForTokens(input)
	if sc.HasErrors() {
		// report sc.Errors()
	}
	tokens := sc.Tokens()

A Scanner may be re-used for any number of texts. Every call to
ScanTextForTokens resets all state from the previous run.

Errors never stop a scan. They are collected and the scanner continues on a
best-effort basis.

Sub-package lexmach provides a Recognizer backed by lexmachine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/descent"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'descent.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("descent.scanner")
}

// EOFRune is returned by the rune-level cursor operations at the end of the text.
const EOFRune rune = -1

// Recognizer is the grammar-specific part of a scanner.
//
// TryScanTokenFromCurrentPosition is called with the scanner positioned at the
// start of a prospective token (never at white space or a comment). It has to
// consume at least one rune and may add any number of tokens, using the cursor
// operations of s. If it cannot recognize anything, it returns false. In this
// case it either consumes nothing and lets the scanner report the offending
// rune, or reports an error itself and consumes what it deems appropriate.
type Recognizer interface {
	TryScanTokenFromCurrentPosition(s *Scanner) bool
}

// ScanStarter may be implemented by Recognizers which keep state per text.
// OnScanBegin is called after the scanner has been reset for a new text.
type ScanStarter interface {
	OnScanBegin(s *Scanner)
}

// Scanner is a comment-aware scanner driver. Create one with New.
type Scanner struct {
	rec            Recognizer
	lineComment    string // marker for line comments, empty if none
	blockBegin     string // start marker of multi-line comments, empty if none
	blockEnd       string // end marker of multi-line comments
	recordComments bool   // emit comments as tokens
	text           string
	pos            int              // byte offset of cursor
	loc            descent.Location // location of cursor
	tokStart       int              // byte offset of current token
	tokLoc         descent.Location // location of current token
	tokens         []descent.Token
	errors         descent.ErrorList
}

// New creates a scanner for a recognizer. Without options, the scanner does
// not know of any comments.
func New(rec Recognizer, opts ...Option) *Scanner {
	if rec == nil {
		panic("scanner needs a recognizer")
	}
	s := &Scanner{rec: rec}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetLineCommentBegin sets the marker for line comments. Any occurrence of
// marker outside of a token excludes the rest of the line from scanning.
// An empty marker switches off line comments.
func (s *Scanner) SetLineCommentBegin(marker string) {
	s.lineComment = marker
}

// SetMultiLineComment sets the markers for multi-line comments. If either
// marker is empty, multi-line comments are switched off.
func (s *Scanner) SetMultiLineComment(begin, end string) {
	if begin == "" || end == "" {
		begin, end = "", ""
	}
	s.blockBegin, s.blockEnd = begin, end
}

// SetShouldRecordComments sets whether comments are recorded as tokens of
// type descent.Comment instead of being dropped.
func (s *Scanner) SetShouldRecordComments(b bool) {
	s.recordComments = b
}

// ScanTextForTokens scans a text. Tokens and errors of a previous scan are
// discarded.
func (s *Scanner) ScanTextForTokens(text string) {
	s.reset(text)
	if starter, ok := s.rec.(ScanStarter); ok {
		starter.OnScanBegin(s)
	}
	for {
		s.skipWhitespace()
		if s.AtEnd() {
			break
		}
		s.StartToken()
		if s.scanComment() {
			continue
		}
		s.recognize()
	}
	tracer().Debugf("scanned %d tokens with %d errors", len(s.tokens), s.errors.Len())
}

func (s *Scanner) reset(text string) {
	s.text = text
	s.pos = 0
	s.loc = descent.StartOfText
	s.tokStart, s.tokLoc = 0, s.loc
	s.tokens = nil
	s.errors.Reset()
}

func (s *Scanner) recognize() {
	start := s.pos
	ok := s.rec.TryScanTokenFromCurrentPosition(s)
	if s.pos > start {
		return // recognizer either succeeded or reported its error
	}
	r := s.Peek()
	if !ok {
		s.Error(fmt.Sprintf("unexpected character %q", r))
	} else {
		if gconf.GetBool("panic-on-scanner-stuck") {
			panic(fmt.Sprintf("recognizer did not consume input at %s", s.loc))
		}
		s.Error(fmt.Sprintf("scanner stuck at character %q", r))
	}
	s.Advance()
}

func (s *Scanner) skipWhitespace() {
	for !s.AtEnd() && unicode.IsSpace(s.Peek()) {
		s.Advance()
	}
}

// --- Comments --------------------------------------------------------------

func (s *Scanner) scanComment() bool {
	if len(s.blockBegin) >= len(s.lineComment) {
		return s.scanBlockComment() || s.scanLineComment()
	}
	return s.scanLineComment() || s.scanBlockComment()
}

func (s *Scanner) scanLineComment() bool {
	if s.lineComment == "" || !s.HasPrefix(s.lineComment) {
		return false
	}
	for !s.AtEnd() {
		if r := s.Peek(); r == '\n' || r == '\r' {
			break
		}
		s.Advance()
	}
	s.emitComment()
	return true
}

func (s *Scanner) scanBlockComment() bool {
	if s.blockBegin == "" || !s.HasPrefix(s.blockBegin) {
		return false
	}
	inner := s.pos + len(s.blockBegin)
	end := strings.Index(s.text[inner:], s.blockEnd)
	if end < 0 {
		s.Error("unterminated multi-line comment")
		s.AdvanceTo(inner)
		return true
	}
	s.AdvanceTo(inner + end + len(s.blockEnd))
	s.emitComment()
	return true
}

func (s *Scanner) emitComment() {
	if s.recordComments {
		s.AddToken(descent.Comment, nil)
		return
	}
	tracer().Debugf("skipping comment %q", s.TokenText())
}

// AtCommentStart is true if the cursor is positioned at a comment marker.
func (s *Scanner) AtCommentStart() bool {
	return (s.lineComment != "" && s.HasPrefix(s.lineComment)) ||
		(s.blockBegin != "" && s.HasPrefix(s.blockBegin))
}

// --- Results ---------------------------------------------------------------

// Tokens returns the tokens of the most recent scan.
func (s *Scanner) Tokens() []descent.Token {
	return s.tokens
}

// Errors returns the errors of the most recent scan.
func (s *Scanner) Errors() descent.ErrorList {
	return s.errors
}

// HasErrors is true if the most recent scan produced errors.
func (s *Scanner) HasErrors() bool {
	return s.errors.Len() > 0
}

// --- Cursor operations for recognizers -------------------------------------

// Text returns the text currently scanned.
func (s *Scanner) Text() string {
	return s.text
}

// AtEnd is true if the cursor is at the end of the text.
func (s *Scanner) AtEnd() bool {
	return s.pos >= len(s.text)
}

// Offset returns the cursor's byte offset.
func (s *Scanner) Offset() int {
	return s.pos
}

// Location returns the cursor's location.
func (s *Scanner) Location() descent.Location {
	return s.loc
}

// Peek returns the rune at the cursor, or EOFRune.
func (s *Scanner) Peek() rune {
	if s.AtEnd() {
		return EOFRune
	}
	r, _ := utf8.DecodeRuneInString(s.text[s.pos:])
	return r
}

// PeekNext returns the rune after the one at the cursor, or EOFRune.
func (s *Scanner) PeekNext() rune {
	if s.AtEnd() {
		return EOFRune
	}
	_, w := utf8.DecodeRuneInString(s.text[s.pos:])
	if s.pos+w >= len(s.text) {
		return EOFRune
	}
	r, _ := utf8.DecodeRuneInString(s.text[s.pos+w:])
	return r
}

// HasPrefix is true if the text at the cursor starts with prefix.
func (s *Scanner) HasPrefix(prefix string) bool {
	return strings.HasPrefix(s.text[s.pos:], prefix)
}

// Advance consumes one rune and returns it. At the end of the text it
// returns EOFRune and does nothing.
//
// "\n" and a lone "\r" end a line, "\r\n" counts as a single line end.
func (s *Scanner) Advance() rune {
	if s.AtEnd() {
		return EOFRune
	}
	r, w := utf8.DecodeRuneInString(s.text[s.pos:])
	s.pos += w
	if r == '\n' || (r == '\r' && !s.HasPrefix("\n")) {
		s.loc.Line++
		s.loc.Column = 1
	} else {
		s.loc.Column++
	}
	return r
}

// Match consumes the rune at the cursor if it equals r.
func (s *Scanner) Match(r rune) bool {
	if s.AtEnd() || s.Peek() != r {
		return false
	}
	s.Advance()
	return true
}

// AcceptWhile consumes runes as long as pred holds. It will never consume a
// comment marker. Returns the number of runes consumed.
func (s *Scanner) AcceptWhile(pred func(rune) bool) int {
	n := 0
	for !s.AtEnd() && !s.AtCommentStart() && pred(s.Peek()) {
		s.Advance()
		n++
	}
	return n
}

// AdvanceTo moves the cursor forward to byte offset pos (or to the end of the text).
// It will not move backwards.
func (s *Scanner) AdvanceTo(pos int) {
	for s.pos < pos && !s.AtEnd() {
		s.Advance()
	}
}

// StartToken marks the cursor position as the start of the next token.
// The scanner calls it before handing control to a recognizer, and AddToken
// calls it after a token has been added.
func (s *Scanner) StartToken() {
	s.tokStart, s.tokLoc = s.pos, s.loc
}

// TokenText returns the text from the start of the current token up to the cursor.
func (s *Scanner) TokenText() string {
	return s.text[s.tokStart:s.pos]
}

// TokenLocation returns the location of the start of the current token.
func (s *Scanner) TokenLocation() descent.Location {
	return s.tokLoc
}

// AddToken appends a token of type typ for the text from the start of the
// current token up to the cursor. literal is an optional value for the token.
func (s *Scanner) AddToken(typ descent.TokType, literal interface{}) {
	token := descent.Token{
		Type:     typ,
		Lexeme:   s.TokenText(),
		Location: s.tokLoc,
		Span:     descent.Span{s.tokStart, s.pos},
		Literal:  literal,
	}
	tracer().Debugf("token %d %q at %s", typ, token.Lexeme, token.Location)
	s.tokens = append(s.tokens, token)
	s.StartToken()
}

// Error records an error at the start of the current token.
func (s *Scanner) Error(msg string) {
	s.ErrorAt(s.tokLoc, msg)
}

// ErrorAt records an error at a given location.
func (s *Scanner) ErrorAt(loc descent.Location, msg string) {
	tracer().Errorf("scanner error at %s: %s", loc, msg)
	s.errors.Add(loc, msg)
}

// --- Scanner options -------------------------------------------------------

// Option configures a scanner.
type Option func(s *Scanner)

// LineComment sets the marker for line comments.
func LineComment(marker string) Option {
	return func(s *Scanner) {
		s.SetLineCommentBegin(marker)
	}
}

// MultiLineComment sets the markers for multi-line comments.
func MultiLineComment(begin, end string) Option {
	return func(s *Scanner) {
		s.SetMultiLineComment(begin, end)
	}
}

// RecordComments sets or clears recording of comments as tokens.
func RecordComments(b bool) Option {
	return func(s *Scanner) {
		s.SetShouldRecordComments(b)
	}
}
