/*
Package parser implements a grammar-agnostic base for recursive-descent parsers.

A Parser navigates over a fixed slice of tokens and collects errors. It does
not know anything about what makes up a valid program; this is the job of a
Grammar, which is called repeatedly by the parser until all tokens are
consumed:

	type myGrammar struct { … }

	func (g *myGrammar) ParseFromCurrentToken(p *parser.Parser) parser.Step {
		// use p.Peek(), p.Match(…), p.Consume(…) etc. to recognize a construct
		return parser.Continue
	}

	p := parser.New(&myGrammar{}, parser.WithRecovery(recovery))
	p.ParseTokens(tokens)
	if p.HasErrors() {
		// report p.Errors()
	}

Cursor operations never fail: peeking beyond the token slice returns an
end-of-source sentinel token, owned by the parser instance.

The parser never aborts on errors. Deciding whether and when to skip tokens
for error recovery is up to the grammar. For panic-mode recovery, Synchronize
skips tokens up to the next statement boundary, as configured by a Recovery.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'descent.parser'.
func tracer() tracing.Trace {
	return tracing.Select("descent.parser")
}
