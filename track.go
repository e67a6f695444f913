// track.go: a Sequence that diagnoses failure after progress
package kassemblix

import (
	"fmt"
)

// Track matches like a Sequence until some child has matched; from then
// on a child coming up empty is no longer a quiet dead branch but a
// malformed structure, and Match returns a *TrackError saying what was
// consumed, what was expected, and what was found instead. A Track whose
// first child fails is still a plain non-match.
//
// Use Track where the grammar is committed: after "(" in a parenthesized
// list, the list and the ")" must follow, and "this alternative does not
// apply" would hide the real mistake.
type Track struct {
	Sequence
}

// NewTrack returns a track of the given parsers.
func NewTrack(ps ...Parser) *Track {
	t := &Track{}
	t.subs = ps
	return t
}

func (t *Track) Match(in []Assembly) ([]Assembly, error) {
	if len(t.subs) == 0 {
		return cloneAll(in), nil
	}
	inTrack := false
	last, out := in, in
	for _, p := range t.subs {
		var err error
		out, err = matchAndAssemble(p, last)
		if err != nil {
			return nil, err
		}
		if len(out) == 0 {
			if inTrack {
				return nil, t.trackError(last, p)
			}
			return nil, nil
		}
		inTrack = true
		last = out
	}
	return out, nil
}

// trackError describes the failure of child p against the assemblies of
// the last successful state.
func (t *Track) trackError(state []Assembly, p Parser) error {
	best := bestOf(state)
	after := best.ConsumedItems(" ")
	if after == "" {
		after = "-nothing-"
	}
	found := "-nothing-"
	if next := best.PeekItem(); next != nil {
		found = fmt.Sprint(next)
	}
	return &TrackError{
		After:    after,
		Expected: describe(p, nil),
		Found:    found,
	}
}

func (t *Track) String() string { return describe(t, nil) }
