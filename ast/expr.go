/*
Package ast holds the expression trees built by recursive-descent parsers.

Nodes are plain structs linked by pointers. Every node has exactly one
parent, sub-trees are never shared between nodes.

Clients operate on trees either by implementing Visitor or by calling Walk.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import "github.com/npillmayer/descent"

// Expr is the interface of all expression nodes.
type Expr interface {
	Accept(v Visitor) interface{}
	Location() descent.Location // source location of the leftmost token
	exprNode()
}

// Visitor has one method per node type.
type Visitor interface {
	VisitLiteral(*Literal) interface{}
	VisitGrouped(*Grouped) interface{}
	VisitUnary(*Unary) interface{}
	VisitBinary(*Binary) interface{}
	VisitTernary(*Ternary) interface{}
}

// Literal is a leaf node for number, string, boolean and null literals.
// The value, if any, is stored as the token's literal.
type Literal struct {
	Token descent.Token
}

// Grouped is a parenthesized expression.
type Grouped struct {
	Expression Expr
	Paren      descent.Token // opening parenthesis
}

// Unary is a prefix operator applied to an operand.
type Unary struct {
	Operator descent.Token
	Right    Expr
}

// Binary is an infix operator applied to two operands.
type Binary struct {
	Left     Expr
	Operator descent.Token
	Right    Expr
}

// Ternary is a conditional expression 'c ? a : b'.
type Ternary struct {
	Condition Expr
	Then      Expr
	Else      Expr
}

var _ Expr = (*Literal)(nil)
var _ Expr = (*Grouped)(nil)
var _ Expr = (*Unary)(nil)
var _ Expr = (*Binary)(nil)
var _ Expr = (*Ternary)(nil)

func (l *Literal) Accept(v Visitor) interface{} { return v.VisitLiteral(l) }
func (g *Grouped) Accept(v Visitor) interface{} { return v.VisitGrouped(g) }
func (u *Unary) Accept(v Visitor) interface{}   { return v.VisitUnary(u) }
func (b *Binary) Accept(v Visitor) interface{}  { return v.VisitBinary(b) }
func (t *Ternary) Accept(v Visitor) interface{} { return v.VisitTernary(t) }

func (l *Literal) Location() descent.Location { return l.Token.Location }
func (g *Grouped) Location() descent.Location { return g.Paren.Location }
func (u *Unary) Location() descent.Location   { return u.Operator.Location }
func (b *Binary) Location() descent.Location  { return b.Left.Location() }
func (t *Ternary) Location() descent.Location { return t.Condition.Location() }

func (*Literal) exprNode() {}
func (*Grouped) exprNode() {}
func (*Unary) exprNode()   {}
func (*Binary) exprNode()  {}
func (*Ternary) exprNode() {}

// Value returns the literal's value: int64, float64, string, bool or nil.
func (l *Literal) Value() interface{} {
	return l.Token.Literal
}

// ExprStmt is a top-level expression, i.e. an expression used as a statement.
type ExprStmt struct {
	Expression Expr
}

// --- Walking ---------------------------------------------------------------

// Children returns the direct sub-expressions of an expression, left to right.
func Children(expr Expr) []Expr {
	switch e := expr.(type) {
	case *Grouped:
		return []Expr{e.Expression}
	case *Unary:
		return []Expr{e.Right}
	case *Binary:
		return []Expr{e.Left, e.Right}
	case *Ternary:
		return []Expr{e.Condition, e.Then, e.Else}
	}
	return nil
}

// Walk traverses an expression tree depth-first in pre-order, calling f for
// each node. If f returns false, the children of the node are skipped.
func Walk(expr Expr, f func(Expr) bool) {
	if expr == nil || !f(expr) {
		return
	}
	for _, child := range Children(expr) {
		Walk(child, f)
	}
}

// Depth returns the height of an expression tree. A single literal has depth 1.
func Depth(expr Expr) int {
	if expr == nil {
		return 0
	}
	d := 0
	for _, child := range Children(expr) {
		if cd := Depth(child); cd > d {
			d = cd
		}
	}
	return d + 1
}
