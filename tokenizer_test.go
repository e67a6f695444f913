// tokenizer_test.go
package kassemblix

import (
	"errors"
	"testing"
)

func toks(t *testing.T, src string) []Token {
	t.Helper()
	return toksFrom(t, NewTokenizer(src))
}

func toksFrom(t *testing.T, tok *Tokenizer) []Token {
	t.Helper()
	var out []Token
	for {
		tk, err := tok.NextToken()
		if err != nil {
			t.Fatalf("NextToken error: %v", err)
		}
		if tk.Type() == TokenEnd {
			return out
		}
		if tk.Type() == TokenSkip {
			continue
		}
		out = append(out, tk)
	}
}

// sameToks compares with Token.Equal, so number values may differ
// within the tokenizer's tolerance.
func sameToks(got, want []Token) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if !got[i].Equal(want[i]) {
			return false
		}
	}
	return true
}

func wantToks(t *testing.T, src string, want []Token) {
	t.Helper()
	got := toks(t, src)
	if !sameToks(got, want) {
		t.Fatalf("\nsource: %q\nwant: %v\ngot:  %v", src, want, got)
	}
}

func Test_Tokenizer_WordsQuotesSymbols(t *testing.T) {
	wantToks(t, "Let's 'rock and roll'!", []Token{
		NewWordToken("Let's"),
		NewQuotedToken("'rock and roll'"),
		NewSymbolToken("!"),
	})
}

func Test_Tokenizer_ScientificNotation(t *testing.T) {
	wantToks(t, "1e2 1e1 1e0 1e-1 1e-2", []Token{
		NewNumberToken(100),
		NewNumberToken(10),
		NewNumberToken(1),
		NewNumberToken(0.1),
		NewNumberToken(0.01),
	})
}

func Test_Tokenizer_Numbers(t *testing.T) {
	tests := []struct {
		src  string
		want []Token
	}{
		{"12.34", []Token{NewNumberToken(12.34)}},
		{"-5", []Token{NewNumberToken(-5)}},
		{"5-3", []Token{
			NewNumberToken(5), NewSymbolToken("-"), NewNumberToken(3),
		}},
		{"5 - 3", []Token{
			NewNumberToken(5), NewSymbolToken("-"), NewNumberToken(3),
		}},
		{"1.5e3", []Token{NewNumberToken(1500)}},
		{"-1.5E-2", []Token{NewNumberToken(-0.015)}},
		// comma grouping
		{"12,345,678", []Token{NewNumberToken(12345678)}},
		{"1,000, 5", []Token{
			NewNumberToken(1000), NewSymbolToken(","), NewNumberToken(5),
		}},
		// back-offs
		{"-", []Token{NewSymbolToken("-")}},
		{"- x", []Token{NewSymbolToken("-"), NewWordToken("x")}},
		{"5.", []Token{NewNumberToken(5), NewSymbolToken(".")}},
		{"5.x", []Token{
			NewNumberToken(5), NewSymbolToken("."), NewWordToken("x"),
		}},
		{"5e", []Token{NewNumberToken(5), NewWordToken("e")}},
		{"5e+", []Token{
			NewNumberToken(5), NewWordToken("e"), NewSymbolToken("+"),
		}},
	}
	for _, tc := range tests {
		wantToks(t, tc.src, tc.want)
	}
}

func Test_Tokenizer_MinusAfterNumberIsSymbol(t *testing.T) {
	// "25 - 16 - 9" must not read "- 16" as a negative number
	wantToks(t, "25 - 16 - 9", []Token{
		NewNumberToken(25), NewSymbolToken("-"),
		NewNumberToken(16), NewSymbolToken("-"),
		NewNumberToken(9),
	})
}

func Test_Tokenizer_BuiltinMultiCharSymbols(t *testing.T) {
	wantToks(t, "a != b >= c <= d > e", []Token{
		NewWordToken("a"), NewSymbolToken("!="),
		NewWordToken("b"), NewSymbolToken(">="),
		NewWordToken("c"), NewSymbolToken("<="),
		NewWordToken("d"), NewSymbolToken(">"),
		NewWordToken("e"),
	})
}

func Test_Tokenizer_RegisteredSymbol(t *testing.T) {
	tok := NewTokenizer("x =:= y = z")
	tok.RegisterSymbol("=:=")
	got := toksFrom(t, tok)
	want := []Token{
		NewWordToken("x"), NewSymbolToken("=:="),
		NewWordToken("y"), NewSymbolToken("="),
		NewWordToken("z"),
	}
	if !sameToks(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}

	// a second tokenizer is unaffected by the first one's registry
	fresh := toks(t, "x =:= y")
	wantFresh := []Token{
		NewWordToken("x"), NewSymbolToken("="), NewSymbolToken(":"),
		NewSymbolToken("="), NewWordToken("y"),
	}
	if !sameToks(fresh, wantFresh) {
		t.Fatalf("want %v, got %v", wantFresh, fresh)
	}
}

func Test_Tokenizer_BlanksInWords(t *testing.T) {
	tok := NewTokenizer("New York City, baby")
	tok.SetBlanksInWords(true)
	got := toksFrom(t, tok)
	want := []Token{
		NewWordToken("New York City"),
		NewSymbolToken(","),
		NewWordToken("baby"),
	}
	if !sameToks(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func Test_Tokenizer_Comments(t *testing.T) {
	tests := []struct {
		src  string
		want []Token
	}{
		{"8 // rest is noise\n9", []Token{NewNumberToken(8), NewNumberToken(9)}},
		{"8 /* noise\nmore noise */ 9", []Token{NewNumberToken(8), NewNumberToken(9)}},
		{"8/2", []Token{
			NewNumberToken(8), NewSymbolToken("/"), NewNumberToken(2),
		}},
	}
	for _, tc := range tests {
		wantToks(t, tc.src, tc.want)
	}
}

func Test_Tokenizer_UnmatchedQuote(t *testing.T) {
	tok := NewTokenizer("'abc")
	_, err := tok.NextToken()
	var te *TokenizerError
	if !errors.As(err, &te) {
		t.Fatalf("want *TokenizerError, got %v", err)
	}
	if te.Msg != "unmatched quote" {
		t.Fatalf("unexpected message: %q", te.Msg)
	}
}

func Test_Tokenizer_UnmatchedComment(t *testing.T) {
	tok := NewTokenizer("1 /* no terminator")
	if _, err := tok.NextToken(); err != nil {
		t.Fatalf("number: %v", err)
	}
	var err error
	for err == nil {
		_, err = tok.NextToken()
	}
	var te *TokenizerError
	if !errors.As(err, &te) {
		t.Fatalf("want *TokenizerError, got %v", err)
	}
	if te.Msg != "unmatched comment" {
		t.Fatalf("unexpected message: %q", te.Msg)
	}
}

func Test_Tokenizer_ErrorLineNumber(t *testing.T) {
	tok := NewTokenizer("one\ntwo\n'never closed")
	var err error
	for err == nil {
		var tk Token
		tk, err = tok.NextToken()
		if err == nil && tk.Type() == TokenEnd {
			t.Fatal("expected a tokenizer error before the end")
		}
	}
	var te *TokenizerError
	if !errors.As(err, &te) {
		t.Fatalf("want *TokenizerError, got %v", err)
	}
	if te.Line != 3 {
		t.Fatalf("want line 3, got %d", te.Line)
	}
}

// Re-joining the rendered non-Skip tokens of well-formed input restores
// a canonical form of that input.
func Test_Tokenizer_RoundTrip(t *testing.T) {
	src := `steaming "hot" coffee >= 2 cups`
	var rejoined string
	for i, tk := range toks(t, src) {
		if i > 0 {
			rejoined += " "
		}
		rejoined += tk.String()
	}
	if rejoined != `steaming "hot" coffee >= 2 cups` {
		t.Fatalf("round trip broke: %q", rejoined)
	}
}

func Test_Tokenizer_SetSourceResets(t *testing.T) {
	tok := NewTokenizer("5-3")
	_ = toksFrom(t, tok)
	tok.SetSource("-3")
	got := toksFrom(t, tok)
	want := []Token{NewNumberToken(-3)}
	if !sameToks(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}
