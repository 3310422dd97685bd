package zzre

import (
	"fmt"
)

// ParseError reports a malformed pattern.
type ParseError struct {
	// Msg describes the failure.
	Msg string

	// Rest is the unconsumed remainder of the pattern, if any.
	Rest string
}

func (e *ParseError) Error() string {
	if e.Rest == "" {
		return "parse error: " + e.Msg
	}
	return fmt.Sprintf("parse error: %s %q", e.Msg, e.Rest)
}

// Parse converts a pattern into an expression tree.
//
// Grammar:
//
//	regex  := concat ('|' regex)?
//	concat := group concat?
//	group  := '(' regex ')' | '[' chars ']' | symbol
//	chars  := symbol chars?
//
// Parsing is all-or-nothing: any failure is a *ParseError with no
// partial tree.
func Parse(pattern string) (Expr, error) {
	c := newCursor(pattern)
	e, err := parseRegex(c)
	if err != nil {
		return nil, err
	}
	if !c.empty() {
		return nil, &ParseError{Msg: "trailing input", Rest: c.rest()}
	}
	return e, nil
}

// MustParse calls Parse, and panics if unable to parse the pattern.
func MustParse(pattern string) Expr {
	e, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return e
}

// parseRegex parses a concat, optionally followed by | and another
// regex. Alternation is built binary and right-associative.
func parseRegex(c *cursor) (Expr, error) {
	left, err := parseConcat(c)
	if err != nil {
		return nil, err
	}
	r, ok := c.peek()
	if !ok {
		return left, nil
	}
	if r == '|' {
		c.next()
		right, err := parseRegex(c)
		if err != nil {
			return nil, err
		}
		return Or(left, right), nil
	}
	// r must be ')' here - the enclosing parseGroup consumes it.
	return left, nil
}

// parseConcat parses a group, optionally followed by another concat.
// Concatenation is built binary and right-associative.
func parseConcat(c *cursor) (Expr, error) {
	left, err := parseGroup(c)
	if err != nil {
		return nil, err
	}
	r, ok := c.peek()
	if !ok || r == '|' || r == ')' {
		return left, nil
	}
	right, err := parseConcat(c)
	if err != nil {
		return nil, err
	}
	return And(left, right), nil
}

// parseGroup parses a parenthesised regex, a character class, or a
// single literal symbol.
func parseGroup(c *cursor) (Expr, error) {
	r, ok := c.peek()
	if !ok {
		return nil, &ParseError{Msg: "unexpected end of pattern"}
	}
	switch r {
	case '(':
		c.next()
		e, err := parseRegex(c)
		if err != nil {
			return nil, err
		}
		// The matching ) - a group left unclosed at the end of the
		// pattern is tolerated.
		c.next()
		return e, nil

	case '[':
		c.next()
		e, err := parseChars(c)
		if err != nil {
			return nil, err
		}
		if e == nil {
			return nil, &ParseError{Msg: "empty character class"}
		}
		// The terminator - either ] or ), both end a class.
		c.next()
		return e, nil

	default:
		c.next()
		return Lit(r), nil
	}
}

// parseChars parses the symbols of a character class into a
// right-associative Or chain of literals, stopping at (and not
// consuming) ] or ). A class with a single symbol is a bare literal.
// Returns nil for an empty class; the caller rejects that.
func parseChars(c *cursor) (Expr, error) {
	r, ok := c.peek()
	if !ok {
		return nil, &ParseError{Msg: "unexpected end of pattern"}
	}
	if r == ']' || r == ')' {
		return nil, nil
	}
	c.next()
	chain, err := parseChars(c)
	if err != nil {
		return nil, err
	}
	if chain == nil {
		return Lit(r), nil
	}
	return Or(Lit(r), chain), nil
}
