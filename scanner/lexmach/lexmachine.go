package lexmach

import (
	"fmt"
	"strings"

	"github.com/npillmayer/descent"
	"github.com/npillmayer/descent/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'descent.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("descent.scanner")
}

// Recognizer is a lexmachine adapter to use a lexmachine DFA as the
// recognizer of a scanner.Scanner.
type Recognizer struct {
	Lexer *lexmachine.Lexer
	scan  *lexmachine.Scanner // DFA scanner for the current text
}

var _ scanner.Recognizer = (*Recognizer)(nil)
var _ scanner.ScanStarter = (*Recognizer)(nil)

// NewRecognizer creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …), a list of keywords ("if", "for", …) and a
// map for translating token strings to their token types.
//
// Literals and keywords are added to the DFA before the patterns of init,
// thus taking precedence over them for matches of equal length ("nil" will be
// a keyword, not an identifier).
//
// NewRecognizer will return an error if compiling the DFA failed.
func NewRecognizer(init func(*lexmachine.Lexer), literals []string, keywords []string,
	tokenIds map[string]int) (*Recognizer, error) {
	//
	rec := &Recognizer{}
	rec.Lexer = lexmachine.NewLexer()
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		rec.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		rec.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	init(rec.Lexer)
	if err := rec.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return rec, nil
}

// OnScanBegin is part of the scanner.ScanStarter interface.
func (rec *Recognizer) OnScanBegin(s *scanner.Scanner) {
	scan, err := rec.Lexer.Scanner([]byte(s.Text()))
	if err != nil {
		s.ErrorAt(descent.StartOfText, fmt.Sprintf("cannot create DFA scanner: %v", err))
		rec.scan = nil
		return
	}
	rec.scan = scan
}

// TryScanTokenFromCurrentPosition is part of the scanner.Recognizer interface.
// It runs the DFA from the scanner's current offset and appends the token found
// there. Matches of patterns with action Skip are consumed without producing a token,
// handing control back to the scanner.
//
// Patterns other than Skip-patterns are responsible for not matching across
// comment markers of the scanner.
func (rec *Recognizer) TryScanTokenFromCurrentPosition(s *scanner.Scanner) bool {
	if rec.scan == nil {
		return false
	}
	start := s.Offset()
	rec.scan.TC = start
	tok, err, eof := rec.scan.Next()
	if err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			s.Error(fmt.Sprintf("unrecognized input %q", clip(ui.Text, ui.StartTC, ui.FailTC)))
			s.AdvanceTo(ui.FailTC)
			if s.Offset() == start { // DFA failed at first byte
				s.Advance()
			}
			return false
		}
		s.Error(err.Error()) // reported by an action; the DFA has consumed the match
		s.AdvanceTo(rec.scan.TC)
		if s.Offset() == start {
			s.Advance()
		}
		return false
	}
	if eof { // only skipped input until end of text
		s.AdvanceTo(len(s.Text()))
		return true
	}
	token := tok.(*lexmachine.Token)
	if token.TC > start {
		// matches with action Skip precede the token; the scanner has to check
		// for comments before we try again from behind them
		s.AdvanceTo(token.TC)
		return true
	}
	tracer().Debugf("DFA token %d %q", token.Type, token.Lexeme)
	s.AdvanceTo(token.TC + len(token.Lexeme))
	s.AddToken(descent.TokType(token.Type), token.Value)
	return true
}

// clip returns the unrecognized part of text, at least one byte of it.
func clip(text []byte, from, to int) string {
	if from >= len(text) {
		return ""
	}
	if to <= from {
		to = from + 1
	}
	if to > len(text) {
		to = len(text)
	}
	return string(text[from:to])
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
// The token's value will be the matched text.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// MakeValueToken is a pre-defined action which wraps a scanned match into a token
// with a value computed from the matched text. If conversion fails, the error is
// reported by the scanner.
func MakeValueToken(id int, convert func(string) (interface{}, error)) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		v, err := convert(string(m.Bytes))
		if err != nil {
			return nil, err
		}
		return s.Token(id, v, m), nil
	}
}
