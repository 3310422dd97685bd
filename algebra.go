package zzre

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

// The pattern-algebra notation is what Expr.String emits: quoted
// single-symbol literals, and And(...)/Or(...) operator applications
// with one or more comma-separated operands.
type (
	algebraNode struct {
		Literal *string    `parser:"@String"`
		Op      *algebraOp `parser:"| @@"`
	}

	algebraOp struct {
		Name     string         `parser:"@('And' | 'Or')"`
		Operands []*algebraNode `parser:"'(' @@ (',' @@)* ')'"`
	}
)

var algebraParser = participle.MustBuild[algebraNode](
	participle.Unquote("String"),
)

// ParseAlgebra parses the compact pattern-algebra form emitted by
// Expr.String back into an expression tree, so dumped trees can be
// re-ingested. For any tree e, ParseAlgebra(e.String()) is structurally
// equal to e.
func ParseAlgebra(s string) (Expr, error) {
	node, err := algebraParser.ParseString("", s)
	if err != nil {
		return nil, err
	}
	return node.expr()
}

func (n *algebraNode) expr() (Expr, error) {
	if n.Literal != nil {
		rs := []rune(*n.Literal)
		if len(rs) != 1 {
			return nil, fmt.Errorf("literal %q is not a single symbol", *n.Literal)
		}
		return Lit(rs[0]), nil
	}
	ops := make([]Expr, 0, len(n.Op.Operands))
	for _, operand := range n.Op.Operands {
		op, err := operand.expr()
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	if n.Op.Name == "And" {
		return And(ops...), nil
	}
	return Or(ops...), nil
}
