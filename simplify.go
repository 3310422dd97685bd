package zzre

// Simplify flattens same-kind operator nesting at the root of the tree:
// And nodes directly inside an And, and Or nodes directly inside an Or,
// have their operands pulled up into the parent. Passes are reapplied
// until a fixpoint, so a right-associated parse chain like
// And("a", And("b", And("c", "d"))) fully flattens to
// And("a", "b", "c", "d").
//
// Simplify is pure: it builds new nodes and never modifies its
// argument, though operands may be shared with it.
//
// Each pass keeps the non-matching operands first, followed by the
// pulled-up operands, so flattening can reorder operands when a nested
// same-kind node precedes a plain one. Under the consuming matcher that
// can change which prefix a match consumes.
func Simplify(e Expr) Expr {
	return fixpoint(e, combineOrs, combineAnds)
}

// fixpoint applies each pass in order, over and over, until a full
// round leaves the tree structurally unchanged.
func fixpoint(e Expr, passes ...func(Expr) Expr) Expr {
	for {
		next := e
		for _, pass := range passes {
			next = pass(next)
		}
		if next.Equal(e) {
			return e
		}
		e = next
	}
}

func combineAnds(e Expr) Expr { return combine(e, KindAnd) }
func combineOrs(e Expr) Expr  { return combine(e, KindOr) }

// combine removes one level of kind-in-kind nesting at the root. Nodes
// of any other kind pass through unchanged.
func combine(e Expr, kind Kind) Expr {
	if e.Kind() != kind {
		return e
	}
	ops := e.operands()
	keep := make([]Expr, 0, len(ops))
	var moved []Expr
	for _, op := range ops {
		if op.Kind() == kind {
			moved = append(moved, op.operands()...)
			continue
		}
		keep = append(keep, op)
	}
	flat := append(keep, moved...)
	if kind == KindAnd {
		return And(flat...)
	}
	return Or(flat...)
}
