// assembly_test.go
package kassemblix

import (
	"testing"
)

func tokenAssembly(t *testing.T, src string) *TokenAssembly {
	t.Helper()
	a, err := NewTokenAssembly(src)
	if err != nil {
		t.Fatalf("NewTokenAssembly(%q): %v", src, err)
	}
	return a
}

func Test_TokenAssembly_Cursor(t *testing.T) {
	a := tokenAssembly(t, "steaming hot coffee")
	if a.Length() != 3 || a.Remaining() != 3 || a.Consumed() != 0 {
		t.Fatalf("fresh assembly: %d/%d/%d", a.Length(), a.Remaining(), a.Consumed())
	}
	first := a.NextItem().(Token)
	if !first.Equal(NewWordToken("steaming")) {
		t.Fatalf("unexpected first item %v", first)
	}
	if a.Consumed() != 1 || a.Remaining() != 2 {
		t.Fatalf("after one item: consumed %d remaining %d", a.Consumed(), a.Remaining())
	}
	if peek := a.PeekItem().(Token); !peek.Equal(NewWordToken("hot")) {
		t.Fatalf("peek %v", peek)
	}
	if a.Consumed() != 1 {
		t.Fatal("peek must not advance")
	}
	a.NextItem()
	a.NextItem()
	if a.HasMoreItems() {
		t.Fatal("assembly should be exhausted")
	}
	if a.NextItem() != nil {
		t.Fatal("NextItem past the end must be nil")
	}
}

func Test_Assembly_Stack(t *testing.T) {
	a := tokenAssembly(t, "")
	if a.Pop() != nil {
		t.Fatal("pop on empty stack must be nil")
	}
	a.Push(1.0)
	a.Push(2.0)
	if v := a.Pop(); v != 2.0 {
		t.Fatalf("want 2.0, got %v", v)
	}
	if a.StackEmpty() {
		t.Fatal("one value should remain")
	}
}

func Test_Assembly_CloneIndependence(t *testing.T) {
	a := tokenAssembly(t, "one two three")
	a.NextItem()
	a.Push("x")

	c := a.Clone()
	c.NextItem()
	c.Push("y")

	if a.Consumed() != 1 || c.Consumed() != 2 {
		t.Fatalf("cursors entangled: %d vs %d", a.Consumed(), c.Consumed())
	}
	if v := a.Pop(); v != "x" {
		t.Fatalf("original stack changed: %v", v)
	}
	if v := c.Pop(); v != "y" {
		t.Fatalf("clone stack wrong: %v", v)
	}
}

type listTarget struct {
	items []string
}

func (l *listTarget) CloneTarget() Target {
	return &listTarget{items: append([]string(nil), l.items...)}
}

func Test_Assembly_CloneDeepCopiesTarget(t *testing.T) {
	a := tokenAssembly(t, "a b")
	a.SetTarget(&listTarget{})

	c := a.Clone()
	c.Target().(*listTarget).items = append(c.Target().(*listTarget).items, "leak")

	if got := a.Target().(*listTarget).items; len(got) != 0 {
		t.Fatalf("target mutation leaked across clone: %v", got)
	}
}

func Test_Assembly_Rendering(t *testing.T) {
	a := tokenAssembly(t, "25 - 16")
	a.NextItem()
	a.NextItem()
	if got := a.ConsumedItems("/"); got != "25/-" {
		t.Fatalf("consumed: %q", got)
	}
	if got := a.RemainingItems("/"); got != "16" {
		t.Fatalf("remaining: %q", got)
	}
	a.Push(NewNumberToken(25))
	if got := a.String(); got != "[25]25/-^16" {
		t.Fatalf("String: %q", got)
	}
}

func Test_CharAssembly(t *testing.T) {
	a := NewCharAssembly("abc")
	if a.Length() != 3 {
		t.Fatalf("length %d", a.Length())
	}
	if r := a.NextItem().(rune); r != 'a' {
		t.Fatalf("want 'a', got %q", r)
	}
	c := a.Clone()
	c.NextItem()
	if a.Consumed() != 1 || c.Consumed() != 2 {
		t.Fatal("char clone not independent")
	}
	if got := c.RemainingItems(""); got != "c" {
		t.Fatalf("remaining: %q", got)
	}
	if got := c.String(); got != "[]ab^c" {
		t.Fatalf("String: %q", got)
	}
}
