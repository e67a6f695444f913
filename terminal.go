// terminal.go: the leaf combinator and its stock predicates
package kassemblix

import (
	"fmt"
	"unicode"
)

// Terminal matches exactly one unconsumed item against a predicate. A
// qualifying candidate produces one successor with the cursor advanced
// and the item pushed, unless Discard was set; a candidate whose next
// item does not qualify, or that has no items left, contributes nothing.
//
// Every variation is a predicate, not a subtype: NewWord, NewSymbol and
// the rest are convenience constructors around NewTerminal.
type Terminal struct {
	parserBase
	desc      string
	qualifies func(item interface{}) bool
	discard   bool
}

// NewTerminal returns a terminal matching items the predicate accepts.
// desc is how the terminal renders in diagnostics.
func NewTerminal(desc string, pred func(item interface{}) bool) *Terminal {
	return &Terminal{desc: desc, qualifies: pred}
}

// Discard makes matched items vanish instead of landing on the stack,
// and returns the terminal. Structural noise such as parentheses and
// separators is usually discarded.
func (t *Terminal) Discard() *Terminal {
	t.discard = true
	return t
}

func (t *Terminal) Match(in []Assembly) ([]Assembly, error) {
	var out []Assembly
	for _, a := range in {
		if !a.HasMoreItems() || !t.qualifies(a.PeekItem()) {
			continue
		}
		c := a.Clone()
		item := c.NextItem()
		if !t.discard {
			c.Push(item)
		}
		out = append(out, c)
	}
	return out, nil
}

func (t *Terminal) String() string { return describe(t, nil) }

func (t *Terminal) unvisited(visited []Parser) string { return t.desc }

// --- token-level terminals ---

func tokenPred(pred func(Token) bool) func(interface{}) bool {
	return func(item interface{}) bool {
		tok, ok := item.(Token)
		return ok && pred(tok)
	}
}

// NewWord matches any word token.
func NewWord() *Terminal {
	return NewTerminal("Word", tokenPred(Token.IsWord))
}

// NewNum matches any number token.
func NewNum() *Terminal {
	return NewTerminal("Num", tokenPred(Token.IsNumber))
}

// NewQuotedString matches any quoted-string token.
func NewQuotedString() *Terminal {
	return NewTerminal("QuotedString", tokenPred(Token.IsQuoted))
}

// NewSymbol matches the symbol token with the given text.
func NewSymbol(sym string) *Terminal {
	want := NewSymbolToken(sym)
	return NewTerminal(sym, tokenPred(want.Equal))
}

// NewLiteral matches the word token with exactly the given text.
func NewLiteral(lit string) *Terminal {
	want := NewWordToken(lit)
	return NewTerminal(lit, tokenPred(want.Equal))
}

// NewCaselessLiteral matches the word token with the given text,
// ignoring case.
func NewCaselessLiteral(lit string) *Terminal {
	want := NewWordToken(lit)
	return NewTerminal(lit, tokenPred(want.EqualIgnoreCase))
}

// NewAny matches any single item, token- or char-level.
func NewAny() *Terminal {
	return NewTerminal("Any", func(interface{}) bool { return true })
}

// --- char-level terminals ---

func runePred(pred func(rune) bool) func(interface{}) bool {
	return func(item interface{}) bool {
		r, ok := item.(rune)
		return ok && pred(r)
	}
}

// NewChar matches any single character.
func NewChar() *Terminal {
	return NewTerminal("Char", runePred(func(rune) bool { return true }))
}

// NewLetter matches any letter.
func NewLetter() *Terminal {
	return NewTerminal("Letter", runePred(unicode.IsLetter))
}

// NewDigit matches any decimal digit.
func NewDigit() *Terminal {
	return NewTerminal("Digit", runePred(unicode.IsDigit))
}

// NewSpecificChar matches one particular character.
func NewSpecificChar(want rune) *Terminal {
	return NewTerminal(fmt.Sprintf("%q", want),
		runePred(func(r rune) bool { return r == want }))
}
