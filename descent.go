package descent

import "fmt"

// --- Token types -----------------------------------------------------------

// TokType is a category type for a Token. Apart from the two reserved values
// below we do not define any constants here, as it is up to grammars to define them.
type TokType int

// Reserved token types. Grammars should use positive values for their own
// token categories.
const (
	EOF     TokType = -1 // end of source; used for sentinel tokens, never emitted by a scan
	Comment TokType = -8 // comment span, emitted only if a scanner records comments
)

// TokTypeStringer is a type to be provided by a scanner/parser combination to be able
// to print out token categories.
type TokTypeStringer func(TokType) string

// --- Locations -------------------------------------------------------------

// Location is a position within a source text. Lines and columns start at 1,
// columns count runes, not bytes.
type Location struct {
	Line   int
	Column int
}

// StartOfText is the location of the first rune of any text.
var StartOfText = Location{Line: 1, Column: 1}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// IsNull is true for the zero location, which does not denote a valid position.
func (l Location) IsNull() bool {
	return l.Line == 0
}

// --- Spans -----------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. A span denotes a
// start position and the position just behind the end.
type Span [2]int // (x…y)

// From returns the start value of a span.
func (s Span) From() int {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() int {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() int {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Overlaps is true if s and other share at least one position.
func (s Span) Overlaps(other Span) bool {
	return s[0] < other[1] && other[0] < s[1]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Tokens ----------------------------------------------------------------

// Token represents an input token. Tokens are produced by a scanner and
// reflect terminals of a grammar.
//
// An example would be a token for a floating point number:
//
//    Type     = Float      // identifier for this kind of tokens (grammar specific)
//    Lexeme   = "3.1416"   // lexeme as it appeared in the input text
//    Literal  = 3.1416     // a float64 value
//    Location = 2:7        // line 2, column 7
//    Span     = (67…73)    // bytes 67 to 73 of the input text
//
// Lexeme is a substring of the scanned text and shares its memory.
type Token struct {
	Type     TokType
	Lexeme   string
	Location Location
	Span     Span
	Literal  interface{}
}

// IsEOF is true for end-of-source sentinel tokens.
func (t Token) IsEOF() bool {
	return t.Type == EOF
}

func (t Token) String() string {
	if t.Type == EOF {
		return fmt.Sprintf("<eof @%s>", t.Location)
	}
	return fmt.Sprintf("<%d %q @%s>", t.Type, t.Lexeme, t.Location)
}
