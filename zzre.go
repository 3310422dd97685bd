// Package zzre implements a miniature regular expression engine.
//
// Patterns are built from literal symbols, concatenation, alternation
// with |, character classes with [...], and grouping with (...). There
// are no quantifiers, anchors, escapes or captures. Parse converts a
// pattern into an expression tree, Simplify flattens nested same-kind
// operators in the tree, and Match evaluates a tree against a subject
// string.
//
// By default, matching consumes input through a shared cursor and never
// backtracks: a sequence or alternative that fails partway leaves the
// cursor advanced, and later alternatives see the consumed input. This
// makes nested composite alternation unreliable as a choice point. The
// Backtracking option selects an evaluation mode without this
// limitation.
package zzre

import "fmt"

// Expr is a node in a pattern's expression tree. The set of
// implementations is closed: literal, And, and Or nodes only. Trees are
// never modified after construction, so they may be shared freely,
// including by concurrent matches.
type Expr interface {
	fmt.Stringer

	// Kind reports the node variant.
	Kind() Kind

	// Equal reports whether the node is structurally equal to other:
	// the same variant, with pairwise-equal operands in the same order.
	Equal(other Expr) bool

	// match attempts to match a prefix of the remaining input,
	// consuming every symbol it matches. Consumed input is not restored
	// on failure.
	match(in *cursor) bool

	// matchAll reports every input position the node can match up to,
	// starting from pos, in increasing order.
	matchAll(in []rune, pos int) []int

	// operands returns the node's child expressions.
	operands() []Expr
}

// Kind enumerates the expression node variants.
type Kind int

const (
	KindLiteral Kind = iota
	KindAnd
	KindOr
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindAnd:
		return "And"
	case KindOr:
		return "Or"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
