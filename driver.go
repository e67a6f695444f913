// driver.go: top-level matching and ambiguity resolution
package kassemblix

import (
	"sort"
)

// BestMatch matches p against a and returns the resulting assembly with
// the fewest unconsumed items, or nil if p does not match at all. When
// two structurally distinct results both consume the entire input, the
// grammar is ambiguous for this input and BestMatch returns an
// *AmbiguityError; a *TrackError from a Track inside p passes through.
func BestMatch(p Parser, a Assembly) (Assembly, error) {
	out, err := matchAndAssemble(p, []Assembly{a})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Remaining() < out[j].Remaining()
	})
	if len(out) >= 2 && out[0].Remaining() == 0 && out[1].Remaining() == 0 {
		return nil, &AmbiguityError{
			First:  out[0].String(),
			Second: out[1].String(),
		}
	}
	return out[0], nil
}

// CompleteMatch is BestMatch restricted to results that consume the
// whole input; anything less returns nil.
func CompleteMatch(p Parser, a Assembly) (Assembly, error) {
	best, err := BestMatch(p, a)
	if err != nil || best == nil {
		return nil, err
	}
	if best.Remaining() > 0 {
		return nil, nil
	}
	return best, nil
}

// bestOf returns the assembly with the fewest remaining items, first
// wins on ties. Track uses it to pick the candidate worth diagnosing.
func bestOf(in []Assembly) Assembly {
	var best Assembly
	for _, a := range in {
		if best == nil || a.Remaining() < best.Remaining() {
			best = a
		}
	}
	return best
}
