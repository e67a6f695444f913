// number.go: the number tokenizer state
//
// Numbers follow a distinctive discipline:
//
//   - an optional leading '-' makes the number negative ("-5"), except
//     that the Tokenizer reroutes '-' to the symbol state right after a
//     number token, so "5-3" tokenizes as 5, "-", 3;
//   - commas may group the integer digits ("1,000,000") and are ignored
//     in the value, but a comma not followed by another digit is assumed
//     to be a separator and is pushed back along with whatever follows it
//     ("1,000, " is the number 1000 and then a "," symbol);
//   - an optional '.' fraction and an optional e/E exponent with an
//     optional sign follow ("1.5e-3").
//
// Every malformed tail backs off rather than failing: a lone '-' is
// re-tokenized as a symbol, a '.' with no digit after it is pushed back
// and the mantissa returned as-is, and a malformed exponent is pushed
// back in full, returning the unscaled mantissa.
package kassemblix

type numberState struct{}

func isDigitChar(c int) bool { return c >= '0' && c <= '9' }

func (s *numberState) nextToken(r *CharReader, c int, t *Tokenizer) (Token, error) {
	negative := false
	if c == '-' {
		negative = true
		c = r.Read()
	}

	value, c, gotDigit := s.integerPart(r, c)

	if !gotDigit {
		// lone '-': give it to the symbol state so "-" (or any
		// registered symbol starting with it) comes out instead
		if negative {
			r.Unread(c)
			return t.symbol.nextToken(r, '-', t)
		}
		// unreachable: the tokenizer dispatches here only on '-' or a digit
		r.Unread(c)
		return NewSymbolToken(""), nil
	}

	if c == '.' {
		probe := r.Read()
		if isDigitChar(probe) {
			value += s.fraction(r, &probe)
			c = probe
		} else {
			// trailing '.': not ours, the mantissa stands alone
			r.Unread(probe)
		}
	}
	if c == 'e' || c == 'E' {
		value = s.exponent(r, value, &c)
	}

	r.Unread(c)
	if negative {
		value = -value
	}
	return NewNumberToken(value), nil
}

// integerPart accumulates digits, skipping comma group separators that
// are followed by more digits. It returns the value so far, the first
// unconsumed character, and whether any digit was seen.
func (s *numberState) integerPart(r *CharReader, c int) (float64, int, bool) {
	var value float64
	gotDigit := false
	for {
		if isDigitChar(c) {
			value = value*10 + float64(c-'0')
			gotDigit = true
			c = r.Read()
			continue
		}
		if c == ',' && gotDigit {
			probe := r.Read()
			if isDigitChar(probe) {
				c = probe
				continue
			}
			// trailing comma: a list separator, not grouping;
			// hand back the follower, the caller hands back the comma
			r.Unread(probe)
		}
		return value, c, gotDigit
	}
}

// fraction consumes digits after the decimal point. *c holds the first
// fraction digit on entry and the first unconsumed character on return.
func (s *numberState) fraction(r *CharReader, c *int) float64 {
	var frac float64
	place := 0.1
	for isDigitChar(*c) {
		frac += float64(*c-'0') * place
		place /= 10
		*c = r.Read()
	}
	return frac
}

// exponent applies an e/E suffix to value. On a malformed exponent (no
// digits where they are required) everything past the mantissa is pushed
// back and the unscaled value returned. *c holds the 'e' or 'E' on entry
// and the first unconsumed character on return.
func (s *numberState) exponent(r *CharReader, value float64, c *int) float64 {
	eChar := *c
	sign := 0
	probe := r.Read()
	if probe == '+' || probe == '-' {
		sign = probe
		probe = r.Read()
	}
	if !isDigitChar(probe) {
		r.Unread(probe)
		if sign != 0 {
			r.Unread(sign)
		}
		*c = eChar
		return value
	}
	exp := 0
	for isDigitChar(probe) {
		exp = exp*10 + (probe - '0')
		probe = r.Read()
	}
	scale := 1.0
	for i := 0; i < exp; i++ {
		scale *= 10
	}
	if sign == '-' {
		value /= scale
	} else {
		value *= scale
	}
	*c = probe
	return value
}
