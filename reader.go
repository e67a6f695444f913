// reader.go: pushback-capable character source for the tokenizer
package kassemblix

// CharReader hands out characters one at a time and accepts them back.
// Tokenizer states use Unread to give up characters they consumed while
// probing past the end of a token; pushback depth is unbounded.
//
// Characters are reported as ints so the end of input can be the
// out-of-band value -1 rather than a byte a state might want to match.
type CharReader struct {
	src    string
	cur    int
	pushed []int
	line   int // 1-based
}

// NewCharReader returns a reader positioned at the start of src.
func NewCharReader(src string) *CharReader {
	return &CharReader{src: src, line: 1}
}

// Read returns the next character, or -1 at end of input.
func (r *CharReader) Read() int {
	var c int
	if n := len(r.pushed); n > 0 {
		c = r.pushed[n-1]
		r.pushed = r.pushed[:n-1]
	} else {
		if r.cur >= len(r.src) {
			return -1
		}
		c = int(r.src[r.cur])
		r.cur++
	}
	if c == '\n' {
		r.line++
	}
	return c
}

// Unread pushes c back so the next Read returns it. Pushing back -1 is a
// no-op, which lets states unread whatever Read just gave them.
func (r *CharReader) Unread(c int) {
	if c < 0 {
		return
	}
	if c == '\n' {
		r.line--
	}
	r.pushed = append(r.pushed, c)
}

// Line reports the 1-based line number of the read position.
func (r *CharReader) Line() int { return r.line }
