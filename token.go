// token.go: token types and values produced by the Tokenizer
package kassemblix

import (
	"fmt"
	"math"
	"strings"
)

// TokenType classifies a token.
type TokenType int

const (
	// Sentinels
	TokenStart TokenType = iota // before the first read
	TokenEnd                    // end of input
	TokenSkip                   // elided input (whitespace, comments)

	// Content
	TokenNumber
	TokenWord
	TokenSymbol
	TokenQuoted
)

func (tt TokenType) String() string {
	switch tt {
	case TokenStart:
		return "start"
	case TokenEnd:
		return "end"
	case TokenSkip:
		return "skip"
	case TokenNumber:
		return "number"
	case TokenWord:
		return "word"
	case TokenSymbol:
		return "symbol"
	case TokenQuoted:
		return "quoted"
	}
	return fmt.Sprintf("tokentype(%d)", int(tt))
}

// numTolerance bounds how far apart two float values may be and still
// count as the same number token.
const numTolerance = 1e-10

// Token is one lexical element. A token carries either a string value or
// a numeric value, never both meaningfully; it is immutable once created.
type Token struct {
	typ  TokenType
	sval string
	nval float64
}

// Sentinel tokens shared by every tokenizer.
var (
	EndToken  = Token{typ: TokenEnd}
	SkipToken = Token{typ: TokenSkip}
)

// NewWordToken returns a word token with the given text.
func NewWordToken(s string) Token { return Token{typ: TokenWord, sval: s} }

// NewSymbolToken returns a symbol token with the given text.
func NewSymbolToken(s string) Token { return Token{typ: TokenSymbol, sval: s} }

// NewQuotedToken returns a quoted-string token; s includes the delimiters.
func NewQuotedToken(s string) Token { return Token{typ: TokenQuoted, sval: s} }

// NewNumberToken returns a number token with the given value.
func NewNumberToken(n float64) Token {
	return Token{typ: TokenNumber, nval: n}
}

// Type reports the token's classification.
func (t Token) Type() TokenType { return t.typ }

// Sval returns the token's text. For numbers it renders the value.
func (t Token) Sval() string {
	if t.typ == TokenNumber {
		return trimFloat(t.nval)
	}
	return t.sval
}

// Nval returns the token's numeric value (0 for non-numbers).
func (t Token) Nval() float64 { return t.nval }

func (t Token) IsNumber() bool { return t.typ == TokenNumber }
func (t Token) IsWord() bool   { return t.typ == TokenWord }
func (t Token) IsSymbol() bool { return t.typ == TokenSymbol }
func (t Token) IsQuoted() bool { return t.typ == TokenQuoted }

// Equal reports whether o is a token of the same type and value. Number
// values compare within a small tolerance; strings compare exactly.
func (t Token) Equal(o Token) bool {
	if t.typ != o.typ {
		return false
	}
	if t.typ == TokenNumber {
		return math.Abs(t.nval-o.nval) < numTolerance
	}
	return t.sval == o.sval
}

// EqualIgnoreCase is Equal with case-insensitive string comparison.
func (t Token) EqualIgnoreCase(o Token) bool {
	if t.typ != o.typ {
		return false
	}
	if t.typ == TokenNumber {
		return math.Abs(t.nval-o.nval) < numTolerance
	}
	return strings.EqualFold(t.sval, o.sval)
}

// String renders the token's content, the way it reads in diagnostics.
func (t Token) String() string {
	switch t.typ {
	case TokenEnd:
		return "EOF"
	case TokenStart:
		return ""
	case TokenSkip:
		return ""
	}
	return t.Sval()
}

// trimFloat renders whole values without a trailing ".0" so a token for
// 100 prints as "100", not "100.000000".
func trimFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return fmt.Sprintf("%.0f", f)
	}
	return fmt.Sprintf("%g", f)
}
