package zzre

import (
	"strconv"
	"strings"
)

// Expression tree nodes
type (
	// Matches exactly this symbol.
	lit rune

	// Matches each operand in order; all must match.
	and []Expr

	// Matches the first operand that matches.
	or []Expr
)

// Lit returns an expression matching exactly the symbol r.
func Lit(r rune) Expr { return lit(r) }

// And returns an expression matching each operand in order, all of
// which must match.
func And(ops ...Expr) Expr { return and(ops) }

// Or returns an expression matching the first operand that matches.
func Or(ops ...Expr) Expr { return or(ops) }

func (lit) Kind() Kind { return KindLiteral }
func (and) Kind() Kind { return KindAnd }
func (or) Kind() Kind  { return KindOr }

func (lit) operands() []Expr   { return nil }
func (a and) operands() []Expr { return a }
func (o or) operands() []Expr  { return o }

func (l lit) Equal(other Expr) bool {
	m, ok := other.(lit)
	return ok && l == m
}

func (a and) Equal(other Expr) bool {
	b, ok := other.(and)
	return ok && equalOperands(a, b)
}

func (o or) Equal(other Expr) bool {
	p, ok := other.(or)
	return ok && equalOperands(o, p)
}

func equalOperands(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// String returns the compact pattern-algebra form of the node, e.g.
// And("a", Or("b", "c")). ParseAlgebra reads this form back in.
func (l lit) String() string { return strconv.Quote(string(rune(l))) }
func (a and) String() string { return opString(KindAnd, a) }
func (o or) String() string  { return opString(KindOr, o) }

func opString(k Kind, ops []Expr) string {
	var sb strings.Builder
	sb.WriteString(k.String())
	sb.WriteString("(")
	for i, op := range ops {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(op.String())
	}
	sb.WriteString(")")
	return sb.String()
}
