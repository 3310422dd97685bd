package zzre

import (
	"fmt"
	"io"
)

// WriteDot writes a digraph representing the expression tree to the
// writer (in GraphViz syntax). Literal nodes are boxes, operator nodes
// are circles.
func WriteDot(w io.Writer, e Expr) error {
	if _, err := fmt.Fprintln(w, "digraph {\n\trankdir=TB;"); err != nil {
		return err
	}
	next := 0
	if _, err := writeDotNode(w, e, &next); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

// writeDotNode writes e and its subtree, numbering nodes depth-first
// through next, and returns e's node number.
func writeDotNode(w io.Writer, e Expr, next *int) (int, error) {
	n := *next
	*next++

	if e.Kind() == KindLiteral {
		_, err := fmt.Fprintf(w, "\tnode_%d [label=%q, shape=box];\n", n, e)
		return n, err
	}

	if _, err := fmt.Fprintf(w, "\tnode_%d [label=%q, shape=circle];\n", n, e.Kind()); err != nil {
		return n, err
	}
	for _, op := range e.operands() {
		c, err := writeDotNode(w, op, next)
		if err != nil {
			return n, err
		}
		if _, err := fmt.Fprintf(w, "\tnode_%d -> node_%d;\n", n, c); err != nil {
			return n, err
		}
	}
	return n, nil
}
