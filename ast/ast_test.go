package ast

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/npillmayer/descent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tok(lexeme string, col int) descent.Token {
	return descent.Token{
		Type:     1,
		Lexeme:   lexeme,
		Location: descent.Location{Line: 1, Column: col},
		Span:     descent.Span{col - 1, col - 1 + len(lexeme)},
	}
}

func lit(lexeme string, col int) *Literal {
	return &Literal{Token: tok(lexeme, col)}
}

// (1 + 2) * 3
func sample() Expr {
	return &Binary{
		Left: &Grouped{
			Paren: tok("(", 1),
			Expression: &Binary{
				Left:     lit("1", 2),
				Operator: tok("+", 4),
				Right:    lit("2", 6),
			},
		},
		Operator: tok("*", 9),
		Right:    lit("3", 11),
	}
}

func TestPrinter(t *testing.T) {
	assert.Equal(t, "(* (group (+ 1 2)) 3)", String(sample()))
	tern := &Ternary{
		Condition: lit("c", 1),
		Then:      lit("a", 5),
		Else: &Unary{
			Operator: tok("-", 9),
			Right:    lit("b", 10),
		},
	}
	assert.Equal(t, "(?: c a (- b))", String(tern))
	assert.Equal(t, "null", String(&Literal{}))
	assert.Equal(t, "<nil>", String(nil))
}

func TestWalkPreOrder(t *testing.T) {
	var labels []string
	Walk(sample(), func(e Expr) bool {
		labels = append(labels, Label(e))
		return true
	})
	assert.Equal(t, []string{
		"binary *", "group", "binary +", "literal 1", "literal 2", "literal 3",
	}, labels)
}

func TestWalkSkipsChildren(t *testing.T) {
	n := 0
	Walk(sample(), func(e Expr) bool {
		n++
		_, isGroup := e.(*Grouped)
		return !isGroup
	})
	assert.Equal(t, 3, n, "expected group's children to be skipped")
}

func TestLocationAndDepth(t *testing.T) {
	e := sample()
	require.NotNil(t, e)
	assert.Equal(t, descent.Location{Line: 1, Column: 1}, e.Location())
	assert.Equal(t, 4, Depth(e), spew.Sdump(e))
	assert.Equal(t, 0, Depth(nil))
}

type counter struct {
	literals, operators int
}

func (c *counter) VisitLiteral(l *Literal) interface{} {
	c.literals++
	return l.Value()
}
func (c *counter) VisitGrouped(g *Grouped) interface{} { return g.Expression.Accept(c) }
func (c *counter) VisitUnary(u *Unary) interface{} {
	c.operators++
	return u.Right.Accept(c)
}
func (c *counter) VisitBinary(b *Binary) interface{} {
	c.operators++
	b.Left.Accept(c)
	return b.Right.Accept(c)
}
func (c *counter) VisitTernary(t *Ternary) interface{} {
	t.Condition.Accept(c)
	t.Then.Accept(c)
	return t.Else.Accept(c)
}

func TestVisitor(t *testing.T) {
	c := &counter{}
	sample().Accept(c)
	assert.Equal(t, 3, c.literals)
	assert.Equal(t, 2, c.operators)
}
