// tokenizer.go: the character tokenizer and its simple states
//
// The Tokenizer drives a 256-entry character-to-state table. Reading a
// character selects a state; the state consumes the rest of the token
// from the reader and returns it, or returns the Skip sentinel for
// elided input (whitespace and comments). Callers loop, discarding Skip;
// NewTokenAssembly does that loop once, up front.
//
// Symbol registration and the blanks-in-words flag live on the Tokenizer
// instance, not in process globals, so tokenizers with different
// dialects never interfere. One shared instance is the common case.
package kassemblix

// tokenizerState consumes the characters of one token. c is the already
// read first character.
type tokenizerState interface {
	nextToken(r *CharReader, c int, t *Tokenizer) (Token, error)
}

// Tokenizer splits a character stream into Tokens.
type Tokenizer struct {
	reader *CharReader
	table  [256]tokenizerState

	whitespace *whitespaceState
	word       *wordState
	number     *numberState
	quote      *quoteState
	slash      *slashState
	symbol     *symbolState

	// type of the last non-Skip token produced; a '-' right after a
	// number is a symbol, never the start of another number
	lastType TokenType
}

// NewTokenizer returns a tokenizer with the default state table, reading
// from src.
func NewTokenizer(src string) *Tokenizer {
	t := &Tokenizer{
		whitespace: &whitespaceState{},
		word:       &wordState{},
		number:     &numberState{},
		quote:      &quoteState{},
		slash:      &slashState{},
		symbol:     newSymbolState(),
		lastType:   TokenStart,
	}
	for i := range t.table {
		t.table[i] = t.symbol
	}
	t.setRange(0, ' ', t.whitespace)
	t.setRange('a', 'z', t.word)
	t.setRange('A', 'Z', t.word)
	t.setRange(0xc0, 0xff, t.word)
	t.setRange('0', '9', t.number)
	t.table['-'] = t.number
	t.table['"'] = t.quote
	t.table['\''] = t.quote
	t.table['/'] = t.slash
	t.SetSource(src)
	return t
}

func (t *Tokenizer) setRange(from, to int, st tokenizerState) {
	for i := from; i <= to; i++ {
		t.table[i] = st
	}
}

// SetSource resets the tokenizer to read from a new input.
func (t *Tokenizer) SetSource(src string) {
	t.reader = NewCharReader(src)
	t.lastType = TokenStart
}

// Line reports the 1-based line number of the read position.
func (t *Tokenizer) Line() int { return t.reader.Line() }

// RegisterSymbol adds a multi-character symbol, such as "=:=" or "->",
// to this tokenizer's symbol table. "!=", ">=" and "<=" are built in.
func (t *Tokenizer) RegisterSymbol(sym string) { t.symbol.add(sym) }

// SetBlanksInWords controls whether a blank embedded between word
// characters belongs to the word ("New York" as one word token).
func (t *Tokenizer) SetBlanksInWords(on bool) { t.word.allowBlanks = on }

// NextToken returns the next token, SkipToken for elided input, or
// EndToken at end of input. The only errors are fatal: an unmatched
// quote or an unmatched block comment.
func (t *Tokenizer) NextToken() (Token, error) {
	c := t.reader.Read()
	if c < 0 {
		return EndToken, nil
	}
	st := t.table[c]
	if c == '-' && t.lastType == TokenNumber {
		st = t.symbol
	}
	tok, err := st.nextToken(t.reader, c, t)
	if err != nil {
		return Token{}, err
	}
	if tok.typ != TokenSkip {
		t.lastType = tok.typ
	}
	return tok, nil
}

// whitespaceState consumes a maximal run of whitespace and control
// characters, producing Skip.
type whitespaceState struct{}

func (s *whitespaceState) nextToken(r *CharReader, c int, t *Tokenizer) (Token, error) {
	for {
		c = r.Read()
		if c < 0 {
			return SkipToken, nil
		}
		if c > ' ' {
			r.Unread(c)
			return SkipToken, nil
		}
	}
}

// wordState consumes a word: letters and digits plus apostrophe, dash
// and underscore, and the extended accented range. With allowBlanks set,
// a blank followed by another word character is part of the word too.
type wordState struct {
	allowBlanks bool
}

func (s *wordState) isWordChar(c int) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c >= 0xc0 && c <= 0xff:
		return true
	case c == '\'', c == '-', c == '_':
		return true
	}
	return false
}

func (s *wordState) nextToken(r *CharReader, c int, t *Tokenizer) (Token, error) {
	var buf []byte
	for {
		buf = append(buf, byte(c))
		c = r.Read()
		if s.isWordChar(c) {
			continue
		}
		if c == ' ' && s.allowBlanks {
			probe := r.Read()
			if s.isWordChar(probe) {
				buf = append(buf, ' ')
				c = probe
				continue
			}
			r.Unread(probe)
		}
		r.Unread(c)
		return NewWordToken(string(buf)), nil
	}
}

// quoteState consumes a quoted string. The opening character is also the
// terminator, and the returned token text includes both delimiters.
type quoteState struct{}

func (s *quoteState) nextToken(r *CharReader, c int, t *Tokenizer) (Token, error) {
	delim := c
	buf := []byte{byte(delim)}
	for {
		c = r.Read()
		if c < 0 {
			return Token{}, &TokenizerError{Line: r.Line(), Msg: "unmatched quote"}
		}
		buf = append(buf, byte(c))
		if c == delim {
			return NewQuotedToken(string(buf)), nil
		}
	}
}

// slashState handles "//" line comments and "/* */" block comments,
// producing Skip; a bare '/' falls back to the symbol state.
type slashState struct{}

func (s *slashState) nextToken(r *CharReader, c int, t *Tokenizer) (Token, error) {
	next := r.Read()
	switch next {
	case '/':
		for {
			c = r.Read()
			if c < 0 || c == '\n' {
				return SkipToken, nil
			}
		}
	case '*':
		prev := 0
		for {
			c = r.Read()
			if c < 0 {
				return Token{}, &TokenizerError{Line: r.Line(), Msg: "unmatched comment"}
			}
			if prev == '*' && c == '/' {
				return SkipToken, nil
			}
			prev = c
		}
	default:
		r.Unread(next)
		return t.symbol.nextToken(r, '/', t)
	}
}
