// errors.go: the error types that cross the package boundary
//
// Only three error classes ever escape this package:
//
//   - *TokenizerError: a fatal lexing condition (unmatched quote or
//     unmatched block comment), raised while the input is materialized.
//   - *TrackError: a Track sequence failed after making progress; carries
//     what was consumed, what was expected, and what was found instead.
//   - *AmbiguityError: BestMatch found two structurally distinct parses
//     that both consume the whole input.
//
// A combinator that merely fails to apply is not an error: it returns an
// empty candidate list, and backtracking continues elsewhere. Use
// errors.As to branch on the classes above.
package kassemblix

import (
	"fmt"
)

// TokenizerError is a fatal tokenizing condition. Tokenization stops
// immediately; there is no way to resume past it.
type TokenizerError struct {
	Line int // 1-based line of the failure
	Msg  string
}

func (e *TokenizerError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at line %d: %s", e.Line, e.Msg)
}

// TrackError reports that a Track sequence failed after its first child
// had already matched, which makes the failure a malformed structure
// rather than a non-applicable alternative.
type TrackError struct {
	After    string // text consumed before the failure, "-nothing-" if none
	Expected string // description of the child that failed
	Found    string // the next unconsumed item, "-nothing-" if exhausted
}

func (e *TrackError) Error() string {
	return fmt.Sprintf("after %s, expected %s, found %s",
		e.After, e.Expected, e.Found)
}

// AmbiguityError reports two complete parses of the same input. It is a
// property of the grammar plus that input; retrying cannot help.
type AmbiguityError struct {
	First  string // rendering of one complete parse
	Second string // rendering of another
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("ambiguous input: %s and %s are both complete parses",
		e.First, e.Second)
}
