package zzre

import (
	"fmt"
	"strings"
)

// Dump renders the expression tree in an indented multi-line form, one
// node per line, two spaces of indent per depth:
//
//	And(
//	  "a"
//	  Or(
//	    "b"
//	    "c"
//	  )
//	)
func Dump(e Expr) string {
	var sb strings.Builder
	dump(&sb, e, 0)
	return sb.String()
}

func dump(sb *strings.Builder, e Expr, depth int) {
	indent := strings.Repeat("  ", depth)
	if e.Kind() == KindLiteral {
		fmt.Fprintf(sb, "%s%s\n", indent, e)
		return
	}
	fmt.Fprintf(sb, "%s%s(\n", indent, e.Kind())
	for _, op := range e.operands() {
		dump(sb, op, depth+1)
	}
	fmt.Fprintf(sb, "%s)\n", indent)
}
