// Package arith evaluates arithmetic with the combinator toolkit. It is
// a complete worked grammar:
//
//	expression = term (('+' | '-') term)*
//	term       = factor (('*' | '/') factor)*
//	factor     = phrase ('^' factor)?
//	phrase     = '(' expression ')' | Num
//
// '+', '-', '*' and '/' associate left; '^' associates right. Every
// operator's assembler pops its two operands and pushes the result, so a
// complete match leaves exactly one float64 on the stack.
package arith

import (
	"fmt"
	"math"

	kx "github.com/sunke/kassemblix"
)

// binary adapts a two-operand function to an Assembler. The top of the
// stack is the operand matched last.
func binary(op func(left, right float64) float64) kx.Assembler {
	return kx.AssemblerFunc(func(a kx.Assembly) {
		right, _ := a.Pop().(float64)
		left, _ := a.Pop().(float64)
		a.Push(op(left, right))
	})
}

// pushNum replaces the number token a Num terminal pushed with its value.
var pushNum = kx.AssemblerFunc(func(a kx.Assembly) {
	tok, _ := a.Pop().(kx.Token)
	a.Push(tok.Nval())
})

// NewParser builds the expression grammar. The tree is reusable and
// safe for concurrent matches.
func NewParser() kx.Parser {
	var expression, factor kx.Parser

	num := kx.NewNum()
	num.SetAssembler(pushNum)

	// '(' commits to a parenthesized expression, so a malformed one is
	// reported, not silently skipped
	phrase := kx.NewAlternation(
		kx.NewTrack(
			kx.NewSymbol("(").Discard(),
			kx.NewLazy(func() kx.Parser { return expression }),
			kx.NewSymbol(")").Discard(),
		),
		num,
	)

	expFactor := kx.NewSequence(
		kx.NewSymbol("^").Discard(),
		kx.NewLazy(func() kx.Parser { return factor }),
	)
	expFactor.SetAssembler(binary(math.Pow))

	factor = kx.NewAlternation(
		kx.NewSequence(phrase, expFactor),
		phrase,
	)

	timesFactor := kx.NewSequence(kx.NewSymbol("*").Discard(), factor)
	timesFactor.SetAssembler(binary(func(l, r float64) float64 { return l * r }))
	divideFactor := kx.NewSequence(kx.NewSymbol("/").Discard(), factor)
	divideFactor.SetAssembler(binary(func(l, r float64) float64 { return l / r }))

	term := kx.NewSequence(
		factor,
		kx.NewRepetition(kx.NewAlternation(timesFactor, divideFactor)),
	)

	plusTerm := kx.NewSequence(kx.NewSymbol("+").Discard(), term)
	plusTerm.SetAssembler(binary(func(l, r float64) float64 { return l + r }))
	minusTerm := kx.NewSequence(kx.NewSymbol("-").Discard(), term)
	minusTerm.SetAssembler(binary(func(l, r float64) float64 { return l - r }))

	expression = kx.NewSequence(
		term,
		kx.NewRepetition(kx.NewAlternation(plusTerm, minusTerm)),
	)
	return expression
}

// Value evaluates s as an arithmetic expression.
func Value(s string) (float64, error) {
	a, err := kx.NewTokenAssembly(s)
	if err != nil {
		return 0, err
	}
	out, err := kx.CompleteMatch(NewParser(), a)
	if err != nil {
		return 0, err
	}
	if out == nil {
		return 0, fmt.Errorf("not an arithmetic expression: %q", s)
	}
	v, ok := out.Pop().(float64)
	if !ok {
		return 0, fmt.Errorf("not an arithmetic expression: %q", s)
	}
	return v, nil
}
