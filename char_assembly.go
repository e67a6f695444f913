// char_assembly.go: an Assembly over individual characters
package kassemblix

import (
	"strings"
)

// CharAssembly is an Assembly whose items are the runes of a string,
// for character-level grammars that skip tokenizing altogether.
type CharAssembly struct {
	assemblyCore
	chars []rune
}

// NewCharAssembly returns an assembly over the runes of src.
func NewCharAssembly(src string) *CharAssembly {
	return &CharAssembly{chars: []rune(src)}
}

func (a *CharAssembly) NextItem() interface{} {
	if a.index >= len(a.chars) {
		return nil
	}
	r := a.chars[a.index]
	a.index++
	return r
}

func (a *CharAssembly) PeekItem() interface{} {
	if a.index >= len(a.chars) {
		return nil
	}
	return a.chars[a.index]
}

func (a *CharAssembly) HasMoreItems() bool { return a.index < len(a.chars) }
func (a *CharAssembly) Remaining() int     { return len(a.chars) - a.index }
func (a *CharAssembly) Consumed() int      { return a.index }
func (a *CharAssembly) Length() int        { return len(a.chars) }

func (a *CharAssembly) Clone() Assembly {
	return &CharAssembly{
		assemblyCore: a.cloneCore(),
		chars:        a.chars,
	}
}

func (a *CharAssembly) ConsumedItems(sep string) string {
	return joinRunes(a.chars[:a.index], sep)
}

func (a *CharAssembly) RemainingItems(sep string) string {
	return joinRunes(a.chars[a.index:], sep)
}

func joinRunes(rs []rune, sep string) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, sep)
}

// String renders characters without a delimiter, so the cursor reads as
// a caret in the middle of the text.
func (a *CharAssembly) String() string {
	return assemblyString(a, "")
}
