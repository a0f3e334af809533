/*
Package lox is a front end for the expression sub-language of Lox.

It brings together a scanner recognizer for Lox tokens and a recursive-descent
grammar for expressions, with the usual precedence levels (lowest first):

	ternary     →  equality ( "?" ternary ":" ternary )?
	equality    →  comparison ( ( "!=" | "==" ) comparison )*
	comparison  →  term ( ( ">" | ">=" | "<" | "<=" ) term )*
	term        →  factor ( ( "-" | "+" ) factor )*
	factor      →  unary ( ( "*" | "/" | "^" ) unary )*
	unary       →  ( "!" | "-" ) unary | primary
	primary     →  INTEGER | FLOAT | STRING | "true" | "false" | "null"
	            |  "(" ternary ")"

Each top-level expression may be followed by a semicolon. Binary operators
associate to the left, the conditional operator associates to the right.

Usage:

	stmts, err := lox.Parse("(1 + 2) * 3")

or, for more control:

	sc := lox.NewScanner(scanner.RecordComments(false))
	sc.ScanTextForTokens(text)
	p := lox.NewParser(lox.SyncKeywords(lox.KwIf, lox.KwWhile))
	stmts := p.ParseTokens(sc.Tokens())

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lox

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'descent.lox'.
func tracer() tracing.Trace {
	return tracing.Select("descent.lox")
}
