// assembly.go: the work area a parse threads through the combinators
package kassemblix

import (
	"fmt"
	"strings"
)

// Target is the optional object an Assembly builds up as matching
// proceeds. Cloning an assembly deep-clones its target, so an assembler
// that mutates the target in one branch of an Alternation can never leak
// the mutation into a sibling branch.
type Target interface {
	CloneTarget() Target
}

// Assembly is one candidate partial parse: a fixed input sequence, a
// cursor over it, a result stack, and an optional target. Combinators
// never mutate a shared assembly; every advance happens on a clone, so
// branching multiplies instances.
type Assembly interface {
	// NextItem returns the item under the cursor and advances past it,
	// or nil when the input is exhausted.
	NextItem() interface{}
	// PeekItem returns the item under the cursor without advancing.
	PeekItem() interface{}
	HasMoreItems() bool
	// Remaining counts the items at or past the cursor.
	Remaining() int
	// Consumed counts the items before the cursor.
	Consumed() int
	// Length counts all items.
	Length() int

	// Push puts a value on the result stack.
	Push(v interface{})
	// Pop removes and returns the top of the result stack, or nil when
	// the stack is empty.
	Pop() interface{}
	StackEmpty() bool

	Target() Target
	SetTarget(t Target)

	// Clone returns an independent copy: same input, copied stack and
	// cursor, deep-cloned target.
	Clone() Assembly

	// ConsumedItems renders the items before the cursor, joined by sep.
	ConsumedItems(sep string) string
	// RemainingItems renders the items at or past the cursor, joined by sep.
	RemainingItems(sep string) string

	fmt.Stringer
}

// assemblyCore carries the parts shared by token- and char-level
// assemblies: the stack, the target, and the cursor.
type assemblyCore struct {
	stack  []interface{}
	target Target
	index  int
}

func (a *assemblyCore) Push(v interface{}) { a.stack = append(a.stack, v) }

func (a *assemblyCore) Pop() interface{} {
	n := len(a.stack)
	if n == 0 {
		return nil
	}
	v := a.stack[n-1]
	a.stack = a.stack[:n-1]
	return v
}

func (a *assemblyCore) StackEmpty() bool { return len(a.stack) == 0 }

func (a *assemblyCore) Target() Target     { return a.target }
func (a *assemblyCore) SetTarget(t Target) { a.target = t }

// cloneCore copies the stack and cursor and deep-clones the target.
func (a *assemblyCore) cloneCore() assemblyCore {
	c := assemblyCore{
		stack: append([]interface{}(nil), a.stack...),
		index: a.index,
	}
	if a.target != nil {
		c.target = a.target.CloneTarget()
	}
	return c
}

// stackString renders the stack bottom-to-top, for String().
func (a *assemblyCore) stackString() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range a.stack {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}

// assemblyString is the shared [stack]consumed^remaining rendering.
func assemblyString(a Assembly, delim string) string {
	type stackRenderer interface{ stackString() string }
	stack := "[]"
	if sr, ok := a.(stackRenderer); ok {
		stack = sr.stackString()
	}
	return stack + a.ConsumedItems(delim) + "^" + a.RemainingItems(delim)
}
