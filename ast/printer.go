package ast

import (
	"strings"

	"github.com/npillmayer/descent"
)

// String renders an expression in parenthesized prefix notation, e.g.
//
//     (* (group (+ 1 2)) 3)
//
// Literals are rendered by their lexemes, 'null' for a literal without lexeme.
// Conditional expressions are rendered as (?: condition then else).
func String(expr Expr) string {
	if expr == nil {
		return "<nil>"
	}
	var b strings.Builder
	expr.Accept(&printer{b: &b})
	return b.String()
}

type printer struct {
	b *strings.Builder
}

var _ Visitor = (*printer)(nil)

func (p *printer) VisitLiteral(l *Literal) interface{} {
	if l.Token.Lexeme == "" {
		p.b.WriteString("null")
	} else {
		p.b.WriteString(l.Token.Lexeme)
	}
	return nil
}

func (p *printer) VisitGrouped(g *Grouped) interface{} {
	p.parenthesize("group", g.Expression)
	return nil
}

func (p *printer) VisitUnary(u *Unary) interface{} {
	p.parenthesize(u.Operator.Lexeme, u.Right)
	return nil
}

func (p *printer) VisitBinary(b *Binary) interface{} {
	p.parenthesize(b.Operator.Lexeme, b.Left, b.Right)
	return nil
}

func (p *printer) VisitTernary(t *Ternary) interface{} {
	p.parenthesize("?:", t.Condition, t.Then, t.Else)
	return nil
}

func (p *printer) parenthesize(name string, exprs ...Expr) {
	p.b.WriteByte('(')
	p.b.WriteString(name)
	for _, e := range exprs {
		p.b.WriteByte(' ')
		if e == nil {
			p.b.WriteString("<nil>")
			continue
		}
		e.Accept(p)
	}
	p.b.WriteByte(')')
}

// Label returns a short description of a single node, without its children.
// It is used for tree renderings of expressions.
func Label(expr Expr) string {
	switch e := expr.(type) {
	case *Literal:
		return "literal " + tokenLabel(e.Token)
	case *Grouped:
		return "group"
	case *Unary:
		return "unary " + e.Operator.Lexeme
	case *Binary:
		return "binary " + e.Operator.Lexeme
	case *Ternary:
		return "ternary ?:"
	}
	return "<nil>"
}

func tokenLabel(tok descent.Token) string {
	if tok.Lexeme == "" {
		return "null"
	}
	return tok.Lexeme
}
