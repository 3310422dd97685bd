package zzre

// cursor uses a pointer to a slice as a consuming reader over a rune
// sequence. The parser reads a pattern through one, and the default
// matcher reads the subject through one. Each top-level match owns a
// private cursor over its own copy of the subject.
type cursor []rune

func newCursor(s string) *cursor {
	c := cursor(s)
	return &c
}

func (c *cursor) empty() bool { return len(*c) == 0 }

// rest returns the unconsumed remainder.
func (c *cursor) rest() string { return string(*c) }

// peek returns the front rune without consuming it.
func (c *cursor) peek() (rune, bool) {
	if len(*c) == 0 {
		return 0, false
	}
	return (*c)[0], true
}

// next consumes and returns the front rune.
func (c *cursor) next() (rune, bool) {
	if len(*c) == 0 {
		return 0, false
	}
	defer func() { *c = (*c)[1:] }()
	return (*c)[0], true
}

// eat consumes the front rune if it equals r, and reports whether it
// did.
func (c *cursor) eat(r rune) bool {
	if len(*c) == 0 || (*c)[0] != r {
		return false
	}
	*c = (*c)[1:]
	return true
}
