package zzre

import "slices"

// Match reports whether e matches a prefix of subject. Unconsumed
// trailing input is not a failure. It is total: matching a well-formed
// tree cannot error.
//
// In the default mode every node consumes from one shared cursor and
// nothing is ever un-consumed: a failing And leaves the cursor partly
// advanced, and a later Or alternative is tried against the advanced
// cursor, not the original position. See the package comment and the
// Backtracking option.
func Match(e Expr, subject string, opts ...MatchOption) bool {
	cfg := defaultMatchConfig
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(&cfg)
	}
	if cfg.backtracking {
		return len(e.matchAll([]rune(subject), 0)) > 0
	}
	return e.match(newCursor(subject))
}

// Search reports whether e matches starting at any position in subject.
// Each start position is attempted with a fresh cursor, so consuming
// attempts do not contaminate one another.
func Search(e Expr, subject string, opts ...MatchOption) bool {
	in := []rune(subject)
	for i := 0; i <= len(in); i++ {
		if Match(e, string(in[i:]), opts...) {
			return true
		}
	}
	return false
}

// Consuming evaluation. All three share the one cursor.

func (l lit) match(in *cursor) bool { return in.eat(rune(l)) }

func (a and) match(in *cursor) bool {
	for _, op := range a {
		if !op.match(in) {
			return false
		}
	}
	return true
}

func (o or) match(in *cursor) bool {
	for _, op := range o {
		if op.match(in) {
			return true
		}
	}
	return false
}

// Backtracking evaluation: each node reports every position it can
// match up to, so alternation and concatenation become genuine choice
// points.

func (l lit) matchAll(in []rune, pos int) []int {
	if pos < len(in) && in[pos] == rune(l) {
		return []int{pos + 1}
	}
	return nil
}

func (a and) matchAll(in []rune, pos int) []int {
	ends := []int{pos}
	for _, op := range a {
		var next []int
		for _, p := range ends {
			next = append(next, op.matchAll(in, p)...)
		}
		if len(next) == 0 {
			return nil
		}
		ends = dedupe(next)
	}
	return ends
}

func (o or) matchAll(in []rune, pos int) []int {
	var ends []int
	for _, op := range o {
		ends = append(ends, op.matchAll(in, pos)...)
	}
	return dedupe(ends)
}

func dedupe(ends []int) []int {
	slices.Sort(ends)
	return slices.Compact(ends)
}
