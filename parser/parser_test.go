package parser

import (
	"testing"

	"github.com/npillmayer/descent"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const (
	tA descent.TokType = iota + 1
	tB
	tSemi
	tKw
)

// mkTokens creates one token per type, each one column wide.
func mkTokens(types ...descent.TokType) []descent.Token {
	tokens := make([]descent.Token, len(types))
	for i, t := range types {
		tokens[i] = descent.Token{
			Type:     t,
			Lexeme:   string(rune('a' + i)),
			Location: descent.Location{Line: 1, Column: i + 1},
			Span:     descent.Span{i, i + 1},
		}
	}
	return tokens
}

// eater consumes one token per call and counts hook invocations.
type eater struct {
	calls, begins, ends int
}

func (g *eater) ParseFromCurrentToken(p *Parser) Step {
	g.calls++
	p.AdvanceToken()
	return Continue
}

func (g *eater) OnParseBegin(p *Parser) { g.begins++ }
func (g *eater) OnParseEnd(p *Parser)   { g.ends++ }

func TestParseLoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "descent.parser")
	defer teardown()
	//
	g := &eater{}
	p := New(g)
	p.ParseTokens(mkTokens(tA, tB, tA))
	if g.calls != 3 || g.begins != 1 || g.ends != 1 {
		t.Errorf("expected 3 calls and 1 begin/end, have %d, %d, %d", g.calls, g.begins, g.ends)
	}
	p.ParseTokens(nil)
	if g.calls != 3 || g.begins != 1 {
		t.Errorf("expected empty input not to call the grammar")
	}
	if !p.IsAtEnd() || p.HasErrors() {
		t.Errorf("expected empty parse to be at end without errors")
	}
}

type stopper struct{}

func (stopper) ParseFromCurrentToken(p *Parser) Step {
	if p.Match(tSemi) {
		return Break
	}
	p.AdvanceToken()
	return Continue
}

func TestBreak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "descent.parser")
	defer teardown()
	//
	p := New(stopper{})
	p.ParseTokens(mkTokens(tA, tSemi, tB))
	if p.Position() != 2 {
		t.Errorf("expected parse to stop after ';', cursor is at %d", p.Position())
	}
}

type idler struct{}

func (idler) ParseFromCurrentToken(p *Parser) Step {
	return Continue
}

func TestStuckGrammarTerminates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "descent.parser")
	defer teardown()
	//
	p := New(idler{})
	p.ParseTokens(mkTokens(tA, tB))
	if p.Errors().Len() != 1 {
		t.Fatalf("expected 1 error for stuck grammar, have %d", p.Errors().Len())
	}
	if p.Errors().At(0).Location.Column != 1 {
		t.Errorf("expected error at first token, is at %s", p.Errors().At(0).Location)
	}
}

func TestPeeking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "descent.parser")
	defer teardown()
	//
	p := New(idler{})
	p.tokens = mkTokens(tA, tB)
	p.eof = sentinel(p.tokens)
	if p.PeekPrevious().Type != descent.EOF {
		t.Errorf("expected sentinel before first token")
	}
	if p.Peek().Type != tA || p.PeekNext().Type != tB {
		t.Errorf("unexpected lookahead %v %v", p.Peek(), p.PeekNext())
	}
	if tok := p.AdvanceToken(); tok.Type != tA {
		t.Errorf("expected AdvanceToken to return consumed token, have %v", tok)
	}
	if p.PeekNext().Type != descent.EOF || !p.Check(tB) || p.Check(tA) {
		t.Errorf("unexpected lookahead at second token")
	}
	p.AdvanceToken()
	if !p.IsAtEnd() || !p.Peek().IsEOF() || !p.Check(descent.EOF) {
		t.Errorf("expected to be at end")
	}
	if eof := p.AdvanceToken(); !eof.IsEOF() || p.Position() != 2 {
		t.Errorf("expected cursor to be clamped at end")
	}
	if p.Peek().Location != (descent.Location{Line: 1, Column: 2}) {
		t.Errorf("expected sentinel at location of last token, is at %s", p.Peek().Location)
	}
}

func TestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "descent.parser")
	defer teardown()
	//
	p := New(idler{})
	p.tokens = mkTokens(tB)
	if p.Match(tA, tSemi) || p.Position() != 0 {
		t.Errorf("expected mismatch not to consume")
	}
	if !p.Match(tA, tB) || p.Position() != 1 {
		t.Errorf("expected match to consume")
	}
	if p.Match(descent.EOF) {
		t.Errorf("expected end of input never to match")
	}
}

func TestConsume(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "descent.parser")
	defer teardown()
	//
	p := New(idler{})
	p.tokens = mkTokens(tA, tB)
	if !p.Consume(tA, "expect a") || p.Position() != 1 || p.HasErrors() {
		t.Errorf("expected successful consume to advance without error")
	}
	if p.Consume(tA, "expect a") || p.Position() != 1 {
		t.Errorf("expected failing consume to leave cursor unchanged")
	}
	if p.Errors().Len() != 1 {
		t.Fatalf("expected exactly 1 error, have %d", p.Errors().Len())
	}
	if err := p.Errors().At(0); err.Location.Column != 2 || err.Message != "expect a" {
		t.Errorf("unexpected error %v", err)
	}
	p.AdvanceToken()
	p.Consume(tSemi, "expect ';'")
	if err := p.Errors().At(1); err.Location.Column != 2 {
		t.Errorf("expected error at end to be reported at last token, is at %s", err.Location)
	}
}

func TestSynchronizeAfterTerminator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "descent.parser")
	defer teardown()
	//
	p := New(idler{}, WithRecovery(Recovery{Terminator: tSemi}))
	p.tokens = mkTokens(tA, tB, tSemi, tA)
	p.Synchronize()
	if p.Position() != 3 {
		t.Errorf("expected to resume after ';', cursor is at %d", p.Position())
	}
}

func TestSynchronizeAtKeyword(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "descent.parser")
	defer teardown()
	//
	p := New(idler{}, WithRecovery(Recovery{
		Terminator:      tSemi,
		StatementStarts: NewKeywordSet(tKw),
	}))
	p.tokens = mkTokens(tKw, tA, tKw, tB)
	p.Synchronize()
	if p.Position() != 2 {
		t.Errorf("expected to stop in front of keyword, cursor is at %d", p.Position())
	}
}

func TestSynchronizeTerminates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "descent.parser")
	defer teardown()
	//
	p := New(idler{})
	tokens := mkTokens(tA, tB, tA, tB)
	for start := 0; start <= len(tokens); start++ {
		p.tokens = tokens
		p.current = start
		p.Synchronize()
		if start < len(tokens) && p.Position() <= start {
			t.Errorf("expected Synchronize to advance from %d", start)
		}
		if !p.IsAtEnd() {
			t.Errorf("expected zero-valued recovery to skip to end")
		}
	}
}

func TestKeywordSet(t *testing.T) {
	ks := NewKeywordSet(tKw, tA)
	ks.Add(tA, tB)
	if ks.Len() != 3 || !ks.Contains(tB) || ks.Contains(tSemi) {
		t.Errorf("unexpected keyword set %v", ks.Types())
	}
	types := ks.Types()
	if types[0] != tA || types[2] != tKw {
		t.Errorf("expected types in ascending order, have %v", types)
	}
	var none *KeywordSet
	if none.Contains(tA) || none.Len() != 0 {
		t.Errorf("expected nil set to be empty")
	}
}

func TestZeroRecoveryIgnoresTokenTypeZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "descent.parser")
	defer teardown()
	//
	p := New(idler{})
	p.tokens = mkTokens(tA, 0, tB, 0, tA)
	p.Synchronize()
	if !p.IsAtEnd() {
		t.Errorf("expected recovery without terminator to skip to end, cursor is at %d", p.Position())
	}
}

func TestKeywordSetAddWithoutConstructor(t *testing.T) {
	var zero KeywordSet
	zero.Add(tKw)
	if !zero.Contains(tKw) || zero.Len() != 1 {
		t.Errorf("expected zero-valued set to accept additions")
	}
	var none *KeywordSet
	ks := none.Add(tA, tB)
	if ks == nil || ks.Len() != 2 || !ks.Contains(tB) {
		t.Errorf("expected adding to a nil set to create a new set")
	}
	if (&KeywordSet{}).Types() != nil {
		t.Errorf("expected zero-valued set to have no types")
	}
}
