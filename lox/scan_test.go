package lox

import (
	"testing"

	"github.com/npillmayer/descent"
	"github.com/npillmayer/descent/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func types(tokens []descent.Token) []descent.TokType {
	tt := make([]descent.TokType, len(tokens))
	for i, t := range tokens {
		tt[i] = t.Type
	}
	return tt
}

func TestScanOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "descent.scanner")
	defer teardown()
	//
	sc := NewScanner()
	sc.ScanTextForTokens("( ) { } , . - + ; / * ^ ? : ! != = == > >= < <= !!=<=>")
	require.False(t, sc.HasErrors(), sc.Errors())
	assert.Equal(t, []descent.TokType{
		LeftParen, RightParen, LeftBrace, RightBrace, Comma, Dot, Minus, Plus,
		Semicolon, Slash, Star, Caret, Question, Colon, Bang, BangEqual, Equal,
		EqualEqual, Greater, GreaterEqual, Less, LessEqual,
		Bang, BangEqual, LessEqual, Greater,
	}, types(sc.Tokens()))
}

func TestScanNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "descent.scanner")
	defer teardown()
	//
	sc := NewScanner()
	sc.ScanTextForTokens("123 1.5 1e3 2.5E-2 1.")
	require.False(t, sc.HasErrors(), sc.Errors())
	tokens := sc.Tokens()
	require.Equal(t, []descent.TokType{Integer, Float, Float, Float, Integer, Dot}, types(tokens))
	assert.Equal(t, int64(123), tokens[0].Literal)
	assert.Equal(t, 1.5, tokens[1].Literal)
	assert.Equal(t, 1000.0, tokens[2].Literal)
	assert.InDelta(t, 0.025, tokens[3].Literal, 1e-12)
	assert.Equal(t, "1", tokens[4].Lexeme)
}

func TestMalformedNumber(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "descent.scanner")
	defer teardown()
	//
	sc := NewScanner()
	sc.ScanTextForTokens("1e")
	require.Equal(t, 1, sc.Errors().Len())
	assert.Equal(t, `malformed number "1e"`, sc.Errors().At(0).Message)
	assert.Empty(t, sc.Tokens())
	//
	sc.ScanTextForTokens("2 3e+ x")
	require.Equal(t, 1, sc.Errors().Len())
	assert.Equal(t, descent.Location{Line: 1, Column: 3}, sc.Errors().At(0).Location)
	assert.Equal(t, []descent.TokType{Integer, Identifier}, types(sc.Tokens()))
}

func TestScanStrings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "descent.scanner")
	defer teardown()
	//
	sc := NewScanner()
	sc.ScanTextForTokens("\"a // b\nc\" \"\"")
	require.False(t, sc.HasErrors(), sc.Errors())
	tokens := sc.Tokens()
	require.Len(t, tokens, 2)
	assert.Equal(t, "a // b\nc", tokens[0].Literal)
	assert.Equal(t, `""`, tokens[1].Lexeme)
	assert.Equal(t, "", tokens[1].Literal)
	assert.Equal(t, descent.Location{Line: 2, Column: 4}, tokens[1].Location)
}

func TestUnterminatedString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "descent.scanner")
	defer teardown()
	//
	sc := NewScanner()
	sc.ScanTextForTokens("1 \"abc // x\n2")
	require.Equal(t, 1, sc.Errors().Len())
	assert.Equal(t, "unterminated string", sc.Errors().At(0).Message)
	assert.Equal(t, descent.Location{Line: 1, Column: 3}, sc.Errors().At(0).Location)
	assert.Equal(t, []descent.TokType{Integer}, types(sc.Tokens()))
}

func TestScanKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "descent.scanner")
	defer teardown()
	//
	sc := NewScanner()
	sc.ScanTextForTokens("and class iff null whilst _x1 this")
	require.False(t, sc.HasErrors(), sc.Errors())
	assert.Equal(t, []descent.TokType{
		KwAnd, KwClass, Identifier, KwNull, Identifier, Identifier, KwThis,
	}, types(sc.Tokens()))
	assert.Len(t, Keywords(), 16)
	assert.Equal(t, "and", Keywords()[0])
	assert.Equal(t, "while", TokenName(KwWhile))
	assert.Equal(t, ">=", TokenName(GreaterEqual))
}

func TestScanComments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "descent.scanner")
	defer teardown()
	//
	sc := NewScanner(scanner.RecordComments(true))
	sc.ScanTextForTokens("1 / 2 // half\n/* block */ 3")
	require.False(t, sc.HasErrors(), sc.Errors())
	assert.Equal(t, []descent.TokType{
		Integer, Slash, Integer, descent.Comment, descent.Comment, Integer,
	}, types(sc.Tokens()))
}

func TestUnexpectedCharacter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "descent.scanner")
	defer teardown()
	//
	sc := NewScanner()
	sc.ScanTextForTokens("1 @ 2 #")
	require.Equal(t, 2, sc.Errors().Len())
	assert.Equal(t, "unexpected character '@'", sc.Errors().At(0).Message)
	assert.Equal(t, []descent.TokType{Integer, Integer}, types(sc.Tokens()))
}
