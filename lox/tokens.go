package lox

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/descent"
)

// Token types of Lox.
const (
	LeftParen descent.TokType = iota + 1
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star
	Caret
	Question
	Colon
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	Identifier
	String
	Integer
	Float

	KwAnd
	KwClass
	KwConst
	KwElse
	KwFalse
	KwFor
	KwFunction
	KwIf
	KwLet
	KwNull
	KwOr
	KwReturn
	KwSuper
	KwThis
	KwTrue
	KwWhile
)

var tokenNames = map[descent.TokType]string{
	LeftParen: "(", RightParen: ")", LeftBrace: "{", RightBrace: "}",
	Comma: ",", Dot: ".", Minus: "-", Plus: "+", Semicolon: ";",
	Slash: "/", Star: "*", Caret: "^", Question: "?", Colon: ":",
	Bang: "!", BangEqual: "!=", Equal: "=", EqualEqual: "==",
	Greater: ">", GreaterEqual: ">=", Less: "<", LessEqual: "<=",
	Identifier: "identifier", String: "string", Integer: "integer", Float: "float",
	descent.EOF: "<eof>", descent.Comment: "comment",
}

// keywords maps keyword lexemes to token types, in lexical order.
var keywords = treemap.NewWithStringComparator()

func init() {
	for lexeme, t := range map[string]descent.TokType{
		"and": KwAnd, "class": KwClass, "const": KwConst, "else": KwElse,
		"false": KwFalse, "for": KwFor, "function": KwFunction, "if": KwIf,
		"let": KwLet, "null": KwNull, "or": KwOr, "return": KwReturn,
		"super": KwSuper, "this": KwThis, "true": KwTrue, "while": KwWhile,
	} {
		keywords.Put(lexeme, t)
		tokenNames[t] = lexeme
	}
}

// TokenName returns a readable name for a token type. It is a descent.TokTypeStringer.
func TokenName(t descent.TokType) string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("<token %d>", t)
}

var _ descent.TokTypeStringer = TokenName

// Keyword returns the token type for a keyword lexeme.
func Keyword(lexeme string) (descent.TokType, bool) {
	if t, found := keywords.Get(lexeme); found {
		return t.(descent.TokType), true
	}
	return Identifier, false
}

// Keywords returns all keyword lexemes in lexical order.
func Keywords() []string {
	kw := make([]string, 0, keywords.Size())
	for _, k := range keywords.Keys() {
		kw = append(kw, k.(string))
	}
	return kw
}
