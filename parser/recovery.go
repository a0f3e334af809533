package parser

import (
	"sort"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/descent"
)

// Recovery configures panic-mode error recovery, i.e. which tokens delimit
// statements. Terminator is the token type ending a statement (e.g. ';'); a value
// ≤ 0 means there is no terminator. StatementStarts are the token types which may only
// occur at the start of a statement (e.g. keywords like 'if' or 'while').
//
// The zero value makes Synchronize skip all remaining tokens.
type Recovery struct {
	Terminator      descent.TokType
	StatementStarts *KeywordSet
}

// Synchronize skips tokens after a syntax error, until a point is reached
// where parsing may safely be resumed. It consumes at least one token (if any
// are left) and stops directly after a statement terminator, in front of a
// statement-start token, or at the end of the tokens.
func (p *Parser) Synchronize() {
	start := p.current
	p.AdvanceToken()
	for !p.IsAtEnd() {
		if p.recovery.Terminator > 0 && p.PeekPrevious().Type == p.recovery.Terminator {
			break
		}
		if p.recovery.StatementStarts.Contains(p.Peek().Type) {
			break
		}
		p.AdvanceToken()
	}
	tracer().Debugf("synchronized from token #%d to #%d", start, p.current)
}

// Recovery returns the parser's recovery configuration.
func (p *Parser) Recovery() Recovery {
	return p.recovery
}

// --- Keyword sets ----------------------------------------------------------

// KeywordSet is a set of token types. A nil set and the zero value are empty.
type KeywordSet struct {
	set *hashset.Set
}

// NewKeywordSet creates a set of token types.
func NewKeywordSet(types ...descent.TokType) *KeywordSet {
	ks := &KeywordSet{set: hashset.New()}
	return ks.Add(types...)
}

// Add adds token types to the set. Returns the set (for chaining).
// Adding to a nil set returns a new set.
func (ks *KeywordSet) Add(types ...descent.TokType) *KeywordSet {
	if ks == nil {
		return NewKeywordSet(types...)
	}
	if ks.set == nil {
		ks.set = hashset.New()
	}
	for _, t := range types {
		ks.set.Add(t)
	}
	return ks
}

// Contains is true if t is a member of ks.
func (ks *KeywordSet) Contains(t descent.TokType) bool {
	if ks == nil || ks.set == nil {
		return false
	}
	return ks.set.Contains(t)
}

// Len returns the number of token types in the set.
func (ks *KeywordSet) Len() int {
	if ks == nil || ks.set == nil {
		return 0
	}
	return ks.set.Size()
}

// Types returns the members of the set in ascending order.
func (ks *KeywordSet) Types() []descent.TokType {
	if ks == nil || ks.set == nil {
		return nil
	}
	types := make([]descent.TokType, 0, ks.set.Size())
	for _, v := range ks.set.Values() {
		types = append(types, v.(descent.TokType))
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
