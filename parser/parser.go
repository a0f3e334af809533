package parser

import (
	"fmt"

	"github.com/npillmayer/descent"
	"github.com/npillmayer/schuko/gconf"
)

// Step is returned by grammars to tell the parser whether to go on.
type Step int

// Steps a grammar may signal to the parse loop.
const (
	Continue Step = iota // keep on parsing, if tokens are left
	Break                // stop parsing
)

// Grammar is the grammar-specific part of a parser. ParseFromCurrentToken is
// called as long as tokens are left and should recognize one top-level construct,
// starting at the current token. It has to consume at least one token
// unless it returns Break.
type Grammar interface {
	ParseFromCurrentToken(p *Parser) Step
}

// BeginEnder may be implemented by grammars which need to be notified
// at the start and at the end of a (non-empty) parse.
type BeginEnder interface {
	OnParseBegin(p *Parser)
	OnParseEnd(p *Parser)
}

// Parser is a grammar-agnostic parser base. It holds a cursor into a slice of
// tokens and a list of errors. Create one with New.
type Parser struct {
	grammar  Grammar
	tokens   []descent.Token   // not owned, must not change during a parse
	current  int               // cursor, 0 ≤ current ≤ len(tokens)
	errors   descent.ErrorList // errors of the current parse
	eof      descent.Token     // end-of-source sentinel
	recovery Recovery          // configuration for panic-mode recovery
}

// New creates a parser for a grammar.
func New(g Grammar, opts ...Option) *Parser {
	if g == nil {
		panic("parser needs a grammar")
	}
	p := &Parser{
		grammar: g,
		eof:     sentinel(nil),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// sentinel creates an end-of-source token, located at the last token of a
// token sequence.
func sentinel(tokens []descent.Token) descent.Token {
	eof := descent.Token{Type: descent.EOF, Location: descent.StartOfText}
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		eof.Location = last.Location
		eof.Span = descent.Span{last.Span.To(), last.Span.To()}
	}
	return eof
}

// ParseTokens parses a slice of tokens. Errors of a previous parse are discarded.
// For an empty slice of tokens, ParseTokens returns immediately without calling the
// grammar.
func (p *Parser) ParseTokens(tokens []descent.Token) {
	p.tokens = tokens
	p.current = 0
	p.errors.Reset()
	p.eof = sentinel(tokens)
	if len(tokens) == 0 {
		tracer().Debugf("no tokens to parse")
		return
	}
	be, hasHooks := p.grammar.(BeginEnder)
	if hasHooks {
		be.OnParseBegin(p)
	}
	for !p.IsAtEnd() {
		pos := p.current
		if p.grammar.ParseFromCurrentToken(p) == Break {
			tracer().Debugf("grammar requested break at token #%d", p.current)
			break
		}
		if p.current == pos {
			if gconf.GetBool("panic-on-parser-stuck") {
				panic(fmt.Sprintf("grammar did not consume token #%d", pos))
			}
			p.RecordError(p.Peek().Location, fmt.Sprintf("parser stuck at %q", p.Peek().Lexeme))
			break
		}
	}
	if hasHooks {
		be.OnParseEnd(p)
	}
	tracer().Debugf("parsed %d tokens with %d errors", len(p.tokens), p.errors.Len())
}

// --- Cursor operations -----------------------------------------------------

// IsAtEnd is true if all tokens have been consumed.
func (p *Parser) IsAtEnd() bool {
	return p.current >= len(p.tokens)
}

// Position returns the cursor position, i.e. the index of the current token.
func (p *Parser) Position() int {
	return p.current
}

// Tokens returns the tokens of the current parse.
func (p *Parser) Tokens() []descent.Token {
	return p.tokens
}

// Peek returns the current token, or the end-of-source sentinel.
func (p *Parser) Peek() descent.Token {
	return p.at(p.current)
}

// PeekNext returns the token after the current one, or the end-of-source sentinel.
func (p *Parser) PeekNext() descent.Token {
	return p.at(p.current + 1)
}

// PeekPrevious returns the most recently consumed token, or the end-of-source
// sentinel if no token has been consumed yet.
func (p *Parser) PeekPrevious() descent.Token {
	return p.at(p.current - 1)
}

func (p *Parser) at(i int) descent.Token {
	if i < 0 || i >= len(p.tokens) {
		return p.eof
	}
	return p.tokens[i]
}

// AdvanceToken consumes the current token and returns it. At the end of the
// token slice, it returns the end-of-source sentinel and does nothing.
func (p *Parser) AdvanceToken() descent.Token {
	if p.IsAtEnd() {
		return p.eof
	}
	p.current++
	return p.tokens[p.current-1]
}

// Check is true if the current token is of type t. It does not consume anything.
// At the end of the tokens, Check(descent.EOF) is true.
func (p *Parser) Check(t descent.TokType) bool {
	return p.Peek().Type == t
}

// Match consumes the current token if it is of one of the given types.
func (p *Parser) Match(types ...descent.TokType) bool {
	if p.IsAtEnd() {
		return false
	}
	for _, t := range types {
		if p.Check(t) {
			p.AdvanceToken()
			return true
		}
	}
	return false
}

// Consume consumes the current token if it is of type t, and returns true.
// Otherwise it records an error with message msg and returns false, leaving
// the cursor unchanged.
func (p *Parser) Consume(t descent.TokType, msg string) bool {
	if !p.IsAtEnd() && p.Check(t) {
		p.AdvanceToken()
		return true
	}
	p.RecordError(p.ErrorLocation(), msg)
	return false
}

// ErrorLocation is the location to report an error at the cursor: the location
// of the current token or, if all tokens are consumed, of the last one.
func (p *Parser) ErrorLocation() descent.Location {
	if p.IsAtEnd() {
		return p.PeekPrevious().Location
	}
	return p.Peek().Location
}

// --- Errors ----------------------------------------------------------------

// RecordError appends an error to the parser's error list.
func (p *Parser) RecordError(loc descent.Location, msg string) {
	tracer().Errorf("syntax error at %s: %s", loc, msg)
	p.errors.Add(loc, msg)
}

// Errors returns the errors of the current parse.
func (p *Parser) Errors() descent.ErrorList {
	return p.errors
}

// HasErrors is true if the current parse produced errors.
func (p *Parser) HasErrors() bool {
	return p.errors.Len() > 0
}

// --- Options ---------------------------------------------------------------

// Option configures a parser.
type Option func(p *Parser)

// WithRecovery sets the configuration for panic-mode error recovery.
func WithRecovery(r Recovery) Option {
	return func(p *Parser) {
		p.recovery = r
	}
}
