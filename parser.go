// parser.go: the combinator hierarchy
//
// A Parser either matches one item (Terminal) or composes other parsers
// (Sequence, Alternation, Repetition, Empty, Track, Lazy). Matching is a
// pure mapping over candidate sets: Match takes the list of partial
// parses reached so far and returns the list reachable by additionally
// matching this parser against each. A candidate that cannot match
// contributes nothing; an empty result is ordinary backtracking, never
// an error. The error return carries only Track diagnostics.
//
// A parser tree is built once and read-only afterwards, so one grammar
// may serve concurrent parses as long as each parse owns its assemblies.
package kassemblix

import (
	"strings"
)

// Parser is a recognizer for some element of a language.
type Parser interface {
	// Match returns the assemblies that result from matching this
	// parser against every assembly of in. Assemblies in the result
	// are always clones; in is never mutated.
	Match(in []Assembly) ([]Assembly, error)

	// Name returns the parser's name, "" if unnamed. Names make Track
	// diagnostics and String renderings readable.
	Name() string

	assembler() Assembler
	// unvisited renders this parser for String(); visited carries the
	// parsers already rendered, to cut recursion in cyclic grammars.
	unvisited(visited []Parser) string
}

// parserBase carries the name and assembler every combinator owns.
type parserBase struct {
	name string
	asm  Assembler
}

func (p *parserBase) Name() string             { return p.name }
func (p *parserBase) SetName(name string)      { p.name = name }
func (p *parserBase) SetAssembler(a Assembler) { p.asm = a }
func (p *parserBase) assembler() Assembler     { return p.asm }

// describe renders p, using its name when it has one and "..." when p
// was already rendered higher up the same description.
func describe(p Parser, visited []Parser) string {
	if p.Name() != "" {
		return p.Name()
	}
	for _, seen := range visited {
		if seen == p {
			return "..."
		}
	}
	return p.unvisited(append(visited, p))
}

// matchAndAssemble matches p and applies its assembler, if any, to every
// resulting assembly.
func matchAndAssemble(p Parser, in []Assembly) ([]Assembly, error) {
	out, err := p.Match(in)
	if err != nil {
		return nil, err
	}
	if a := p.assembler(); a != nil {
		for _, as := range out {
			a.WorkOn(as)
		}
	}
	return out, nil
}

func cloneAll(in []Assembly) []Assembly {
	out := make([]Assembly, len(in))
	for i, a := range in {
		out[i] = a.Clone()
	}
	return out
}

// Sequence matches its subparsers one after another; every subparser
// must match where the previous one left off.
type Sequence struct {
	parserBase
	subs []Parser
}

// NewSequence returns a sequence of the given parsers.
func NewSequence(ps ...Parser) *Sequence {
	return &Sequence{subs: ps}
}

// Add appends subparsers and returns the sequence.
func (s *Sequence) Add(ps ...Parser) *Sequence {
	s.subs = append(s.subs, ps...)
	return s
}

func (s *Sequence) Match(in []Assembly) ([]Assembly, error) {
	if len(s.subs) == 0 {
		return cloneAll(in), nil
	}
	out := in
	for _, p := range s.subs {
		var err error
		out, err = matchAndAssemble(p, out)
		if err != nil {
			return nil, err
		}
		if len(out) == 0 {
			return nil, nil
		}
	}
	return out, nil
}

func (s *Sequence) String() string { return describe(s, nil) }

func (s *Sequence) unvisited(visited []Parser) string {
	return describeList(s.subs, " ", visited)
}

// Alternation matches any one of its subparsers. Every subparser is run
// against the same candidates; the outputs concatenate in child order.
// Alternation is the sole source of branching in a grammar.
type Alternation struct {
	parserBase
	subs []Parser
}

// NewAlternation returns an alternation of the given parsers.
func NewAlternation(ps ...Parser) *Alternation {
	return &Alternation{subs: ps}
}

// Add appends subparsers and returns the alternation.
func (a *Alternation) Add(ps ...Parser) *Alternation {
	a.subs = append(a.subs, ps...)
	return a
}

func (a *Alternation) Match(in []Assembly) ([]Assembly, error) {
	var out []Assembly
	for _, p := range a.subs {
		matched, err := matchAndAssemble(p, in)
		if err != nil {
			return nil, err
		}
		out = append(out, matched...)
	}
	return out, nil
}

func (a *Alternation) String() string { return describe(a, nil) }

func (a *Alternation) unvisited(visited []Parser) string {
	return describeList(a.subs, "|", visited)
}

// Repetition matches its subparser zero or more times. The result holds
// one candidate per achievable repeat depth: the zero-repetition clones
// seed it, and each pass of the subparser over the current frontier
// appends the deeper matches, until a pass yields nothing.
type Repetition struct {
	parserBase
	sub Parser
	pre Assembler
}

// NewRepetition returns a repetition of the given parser. sub must
// consume input to succeed: a subparser that can match without
// consuming, such as Empty, keeps the frontier nonempty forever and
// Match never returns.
func NewRepetition(sub Parser) *Repetition {
	return &Repetition{sub: sub}
}

// SetPreAssembler sets an assembler applied to every input assembly
// before any matching, typically to push a fence.
func (r *Repetition) SetPreAssembler(a Assembler) { r.pre = a }

func (r *Repetition) Match(in []Assembly) ([]Assembly, error) {
	if r.pre != nil {
		for _, a := range in {
			r.pre.WorkOn(a)
		}
	}
	out := cloneAll(in)
	frontier := in
	for len(frontier) > 0 {
		var err error
		frontier, err = matchAndAssemble(r.sub, frontier)
		if err != nil {
			return nil, err
		}
		out = append(out, frontier...)
	}
	return out, nil
}

func (r *Repetition) String() string { return describe(r, nil) }

func (r *Repetition) unvisited(visited []Parser) string {
	return describe(r.sub, visited) + "*"
}

// Empty matches no items and always succeeds, cloning every candidate
// unchanged. Inside an Alternation it expresses "this, or nothing".
type Empty struct {
	parserBase
}

// NewEmpty returns the vacuous parser.
func NewEmpty() *Empty { return &Empty{} }

func (e *Empty) Match(in []Assembly) ([]Assembly, error) {
	return cloneAll(in), nil
}

func (e *Empty) String() string { return describe(e, nil) }

func (e *Empty) unvisited(visited []Parser) string { return "empty" }

// Lazy defers building a parser until its first use, which lets a rule
// refer to itself or to a rule defined further down without recursing
// forever at construction time.
type Lazy struct {
	parserBase
	build    func() Parser
	resolved Parser
}

// NewLazy returns a parser that resolves to build() on first use. build
// runs at most once.
func NewLazy(build func() Parser) *Lazy {
	return &Lazy{build: build}
}

func (l *Lazy) resolve() Parser {
	if l.resolved == nil {
		l.resolved = l.build()
	}
	return l.resolved
}

func (l *Lazy) Match(in []Assembly) ([]Assembly, error) {
	return matchAndAssemble(l.resolve(), in)
}

func (l *Lazy) String() string { return describe(l, nil) }

func (l *Lazy) unvisited(visited []Parser) string {
	if l.resolved == nil {
		return "?"
	}
	return describe(l.resolved, visited)
}

func describeList(ps []Parser, sep string, visited []Parser) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = describe(p, visited)
	}
	return "<" + strings.Join(parts, sep) + ">"
}
