// Package kassemblix is a backtracking parser-combinator toolkit: small
// composable recognizers that match a tokenized or character-level input
// and attach semantic actions that build a result as matching proceeds.
//
// A grammar is a tree of Parser values. Terminals match one item;
// Sequence, Alternation, Repetition, Empty and Track compose them. There
// is no grammar compilation and no generated automaton: matching is a
// nondeterministic search over explicit sets of partial-parse states
// (Assemblies), each owning a cursor, a result stack and an optional
// target. BestMatch and CompleteMatch resolve the candidate set into one
// result, or report ambiguity.
//
//	adjective := kassemblix.NewAlternation(
//		kassemblix.NewLiteral("steaming"),
//		kassemblix.NewLiteral("hot"),
//	)
//	good := kassemblix.NewSequence(
//		kassemblix.NewRepetition(adjective),
//		kassemblix.NewLiteral("coffee"),
//	)
//	a, _ := kassemblix.NewTokenAssembly("hot hot steaming hot coffee")
//	best, err := kassemblix.BestMatch(good, a)
//
// The input side is a bespoke single-pass character tokenizer with a
// distinctive discipline for negative numbers, comma-grouped numbers and
// scientific notation; see Tokenizer. Character-level grammars use
// CharAssembly and the char terminals instead.
//
// Matching cost has no built-in bound: nested Alternation and Repetition
// can make it exponential in the input length. There is no memoization;
// pathological grammars are the caller's to avoid.
package kassemblix

// Version of the toolkit.
const Version = "0.4.0"
