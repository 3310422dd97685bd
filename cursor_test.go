package zzre

import "testing"

func TestCursor(t *testing.T) {
	c := newCursor("abc")

	if got, ok := c.peek(); !ok || got != 'a' {
		t.Errorf("c.peek() = %c, %v, want 'a', true", got, ok)
	}
	if got, ok := c.next(); !ok || got != 'a' {
		t.Errorf("c.next() = %c, %v, want 'a', true", got, ok)
	}

	// eat only consumes on a match.
	if c.eat('x') {
		t.Errorf("c.eat('x') = true, want false")
	}
	if got := c.rest(); got != "bc" {
		t.Errorf("c.rest() = %q, want %q", got, "bc")
	}
	if !c.eat('b') {
		t.Errorf("c.eat('b') = false, want true")
	}

	if c.empty() {
		t.Errorf("c.empty() = true, want false")
	}
	if got, ok := c.next(); !ok || got != 'c' {
		t.Errorf("c.next() = %c, %v, want 'c', true", got, ok)
	}
	if !c.empty() {
		t.Errorf("c.empty() = false, want true")
	}

	if _, ok := c.next(); ok {
		t.Errorf("c.next() ok = true at end of input, want false")
	}
	if _, ok := c.peek(); ok {
		t.Errorf("c.peek() ok = true at end of input, want false")
	}
}
