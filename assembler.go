// assembler.go: semantic actions attached to combinators
package kassemblix

// Assembler is the callback a combinator applies to every assembly it
// successfully produces. Assemblers do the semantic work of a grammar:
// they pop what subparsers pushed, combine it, and push the result or
// update the assembly's target.
type Assembler interface {
	WorkOn(a Assembly)
}

// AssemblerFunc adapts a plain function to the Assembler interface.
type AssemblerFunc func(a Assembly)

func (f AssemblerFunc) WorkOn(a Assembly) { f(a) }

// ItemsAbove pops the stack down to (and including) the first item equal
// to fence and returns the popped items above it, topmost first. If the
// fence is absent, the whole stack is popped and returned. The fence and
// the stacked items must be comparable values, such as Tokens.
func ItemsAbove(a Assembly, fence interface{}) []interface{} {
	var items []interface{}
	for !a.StackEmpty() {
		top := a.Pop()
		if top == fence {
			break
		}
		items = append(items, top)
	}
	return items
}
