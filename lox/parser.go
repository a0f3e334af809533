package lox

import (
	"fmt"

	"github.com/npillmayer/descent"
	"github.com/npillmayer/descent/ast"
	"github.com/npillmayer/descent/parser"
)

// DefaultSyncKeywords are the token types which start a statement in Lox.
// After a syntax error, parsing resumes in front of one of them.
var DefaultSyncKeywords = []descent.TokType{
	KwClass, KwFor, KwFunction, KwIf, KwReturn, KwLet, KwConst, KwWhile,
}

// Parser is a parser for Lox expressions. Create one with NewParser.
type Parser struct {
	p            *parser.Parser
	statements   []*ast.ExprStmt
	syncKeywords *parser.KeywordSet
}

var _ parser.Grammar = (*Parser)(nil)
var _ parser.BeginEnder = (*Parser)(nil)

// Option configures a Lox parser.
type Option func(lp *Parser)

// SyncKeywords replaces the set of token types error recovery will stop at.
func SyncKeywords(types ...descent.TokType) Option {
	return func(lp *Parser) {
		lp.syncKeywords = parser.NewKeywordSet(types...)
	}
}

// NewParser creates a parser for Lox expressions.
func NewParser(opts ...Option) *Parser {
	lp := &Parser{
		syncKeywords: parser.NewKeywordSet(DefaultSyncKeywords...),
	}
	for _, opt := range opts {
		opt(lp)
	}
	lp.p = parser.New(lp, parser.WithRecovery(parser.Recovery{
		Terminator:      Semicolon,
		StatementStarts: lp.syncKeywords,
	}))
	return lp
}

// ParseTokens parses a sequence of Lox tokens into a list of expression
// statements. Comment tokens are ignored. Expressions with syntax errors are
// left out of the result.
func (lp *Parser) ParseTokens(tokens []descent.Token) []*ast.ExprStmt {
	lp.statements = nil
	lp.p.ParseTokens(dropComments(tokens))
	return lp.statements
}

// Statements returns the statements of the most recent parse.
func (lp *Parser) Statements() []*ast.ExprStmt {
	return lp.statements
}

// Errors returns the syntax errors of the most recent parse.
func (lp *Parser) Errors() descent.ErrorList {
	return lp.p.Errors()
}

// HasErrors is true if the most recent parse produced syntax errors.
func (lp *Parser) HasErrors() bool {
	return lp.p.HasErrors()
}

// OnParseBegin is part of the parser.BeginEnder interface.
func (lp *Parser) OnParseBegin(p *parser.Parser) {
	tracer().Debugf("parsing %d tokens", len(p.Tokens()))
}

// OnParseEnd is part of the parser.BeginEnder interface.
func (lp *Parser) OnParseEnd(p *parser.Parser) {
	tracer().Debugf("parsed %d statements", len(lp.statements))
}

// ParseFromCurrentToken is part of the parser.Grammar interface.
// It parses one expression statement.
func (lp *Parser) ParseFromCurrentToken(p *parser.Parser) parser.Step {
	if expr := lp.ParseExpression(); expr != nil {
		lp.statements = append(lp.statements, &ast.ExprStmt{Expression: expr})
		p.Match(Semicolon)
	}
	return parser.Continue
}

// ParseExpression parses an expression starting at the current token.
// On a syntax error it skips to the start of the next statement and returns nil.
func (lp *Parser) ParseExpression() ast.Expr {
	expr := lp.ternary()
	if expr == nil {
		lp.p.Synchronize()
	}
	return expr
}

func (lp *Parser) ternary() ast.Expr {
	cond := lp.equality()
	if cond == nil || !lp.p.Match(Question) {
		return cond
	}
	then := lp.ternary()
	if then == nil {
		return nil
	}
	if !lp.p.Consume(Colon, "expect ':' in conditional expression") {
		return nil
	}
	els := lp.ternary()
	if els == nil {
		return nil
	}
	return &ast.Ternary{Condition: cond, Then: then, Else: els}
}

func (lp *Parser) equality() ast.Expr {
	return lp.binary(lp.comparison, BangEqual, EqualEqual)
}

func (lp *Parser) comparison() ast.Expr {
	return lp.binary(lp.term, Greater, GreaterEqual, Less, LessEqual)
}

func (lp *Parser) term() ast.Expr {
	return lp.binary(lp.factor, Minus, Plus)
}

func (lp *Parser) factor() ast.Expr {
	return lp.binary(lp.unary, Star, Slash, Caret)
}

// binary parses a left-associative sequence of operands, separated by
// operators of equal precedence.
func (lp *Parser) binary(operand func() ast.Expr, operators ...descent.TokType) ast.Expr {
	left := operand()
	if left == nil {
		return nil
	}
	for lp.p.Match(operators...) {
		op := lp.p.PeekPrevious()
		right := operand()
		if right == nil {
			return nil
		}
		left = &ast.Binary{Left: left, Operator: op, Right: right}
	}
	return left
}

func (lp *Parser) unary() ast.Expr {
	if lp.p.Match(Bang, Minus) {
		op := lp.p.PeekPrevious()
		right := lp.unary()
		if right == nil {
			return nil
		}
		return &ast.Unary{Operator: op, Right: right}
	}
	return lp.primary()
}

func (lp *Parser) primary() ast.Expr {
	p := lp.p
	switch {
	case p.Match(KwTrue):
		return boolLiteral(p.PeekPrevious(), true)
	case p.Match(KwFalse):
		return boolLiteral(p.PeekPrevious(), false)
	case p.Match(KwNull, Integer, Float, String):
		return &ast.Literal{Token: p.PeekPrevious()}
	case p.Match(LeftParen):
		paren := p.PeekPrevious()
		expr := lp.ternary()
		if expr == nil {
			return nil
		}
		if !p.Consume(RightParen, "expect ')' after expression") {
			return nil
		}
		return &ast.Grouped{Expression: expr, Paren: paren}
	}
	if p.IsAtEnd() {
		p.RecordError(p.ErrorLocation(), "unexpected end of input, expected expression")
		return nil
	}
	tok := p.Peek()
	msg := fmt.Sprintf("unexpected token '%s', expected expression", tok.Lexeme)
	if tok.Type == Identifier {
		if kw, ok := Suggest(tok.Lexeme); ok {
			msg = fmt.Sprintf("%s; did you mean '%s'?", msg, kw)
		}
	}
	p.RecordError(tok.Location, msg)
	return nil
}

// boolLiteral creates a literal for 'true' or 'false', with the token's
// literal value set to b.
func boolLiteral(tok descent.Token, b bool) *ast.Literal {
	tok.Literal = b
	return &ast.Literal{Token: tok}
}

func dropComments(tokens []descent.Token) []descent.Token {
	n := 0
	for _, t := range tokens {
		if t.Type == descent.Comment {
			n++
		}
	}
	if n == 0 {
		return tokens
	}
	filtered := make([]descent.Token, 0, len(tokens)-n)
	for _, t := range tokens {
		if t.Type != descent.Comment {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Parse scans and parses a Lox text. All errors are returned as a
// descent.ErrorList, scanner errors first.
func Parse(text string) ([]*ast.ExprStmt, error) {
	sc := NewScanner()
	sc.ScanTextForTokens(text)
	lp := NewParser()
	stmts := lp.ParseTokens(sc.Tokens())
	var errs descent.ErrorList
	errs.Append(sc.Errors())
	errs.Append(lp.Errors())
	return stmts, errs.Err()
}
