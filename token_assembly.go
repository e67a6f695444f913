// token_assembly.go: an Assembly over a tokenized input
package kassemblix

import (
	"strings"
)

// TokenAssemblyDelimiter joins token renderings in diagnostics.
const TokenAssemblyDelimiter = "/"

// TokenAssembly is an Assembly whose items are Tokens. The whole input
// is tokenized up front, with Skip tokens discarded, so matching never
// touches the tokenizer again.
type TokenAssembly struct {
	assemblyCore
	tokens []Token
}

// NewTokenAssembly tokenizes src with a default-dialect tokenizer. The
// error is the tokenizer's fatal error, if it raised one.
func NewTokenAssembly(src string) (*TokenAssembly, error) {
	return NewTokenAssemblyFrom(NewTokenizer(src))
}

// NewTokenAssemblyFrom drains an existing tokenizer, which lets callers
// tokenize with registered symbols or blanks-in-words enabled.
func NewTokenAssemblyFrom(t *Tokenizer) (*TokenAssembly, error) {
	var toks []Token
	for {
		tok, err := t.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type() == TokenSkip {
			continue
		}
		if tok.Type() == TokenEnd {
			return &TokenAssembly{tokens: toks}, nil
		}
		toks = append(toks, tok)
	}
}

// NewTokenAssemblyTokens wraps an already tokenized input.
func NewTokenAssemblyTokens(toks []Token) *TokenAssembly {
	return &TokenAssembly{tokens: toks}
}

func (a *TokenAssembly) NextItem() interface{} {
	if a.index >= len(a.tokens) {
		return nil
	}
	tok := a.tokens[a.index]
	a.index++
	return tok
}

func (a *TokenAssembly) PeekItem() interface{} {
	if a.index >= len(a.tokens) {
		return nil
	}
	return a.tokens[a.index]
}

func (a *TokenAssembly) HasMoreItems() bool { return a.index < len(a.tokens) }
func (a *TokenAssembly) Remaining() int     { return len(a.tokens) - a.index }
func (a *TokenAssembly) Consumed() int      { return a.index }
func (a *TokenAssembly) Length() int        { return len(a.tokens) }

func (a *TokenAssembly) Clone() Assembly {
	return &TokenAssembly{
		assemblyCore: a.cloneCore(),
		tokens:       a.tokens, // fixed at construction, safe to share
	}
}

func (a *TokenAssembly) ConsumedItems(sep string) string {
	return a.joinTokens(a.tokens[:a.index], sep)
}

func (a *TokenAssembly) RemainingItems(sep string) string {
	return a.joinTokens(a.tokens[a.index:], sep)
}

func (a *TokenAssembly) joinTokens(toks []Token, sep string) string {
	parts := make([]string, len(toks))
	for i, tok := range toks {
		parts[i] = tok.String()
	}
	return strings.Join(parts, sep)
}

func (a *TokenAssembly) String() string {
	return assemblyString(a, TokenAssemblyDelimiter)
}
