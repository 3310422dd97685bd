package zzre

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSimplify(t *testing.T) {
	tests := []struct {
		name string
		in   Expr
		want Expr
	}{
		{
			name: "literal unchanged",
			in:   Lit('a'),
			want: Lit('a'),
		},
		{
			name: "flat And unchanged",
			in:   And(Lit('a'), Lit('b')),
			want: And(Lit('a'), Lit('b')),
		},
		{
			name: "right-associated And chain",
			in:   And(Lit('a'), And(Lit('b'), And(Lit('c'), Lit('d')))),
			want: And(Lit('a'), Lit('b'), Lit('c'), Lit('d')),
		},
		{
			name: "right-associated Or chain",
			in:   Or(Lit('a'), Or(Lit('b'), Or(Lit('c'), Lit('d')))),
			want: Or(Lit('a'), Lit('b'), Lit('c'), Lit('d')),
		},
		{
			// Non-And operands are kept first, then the pulled-up
			// operands, so a leading nested And moves behind the plain
			// operand.
			name: "left-associated And reorders",
			in:   And(And(Lit('a'), Lit('b')), Lit('c')),
			want: And(Lit('c'), Lit('a'), Lit('b')),
		},
		{
			// Flattening applies at the root only; an And nested under
			// an Or keeps its own nesting.
			name: "no flattening below a different kind",
			in:   Or(Lit('a'), And(Lit('b'), And(Lit('c'), Lit('d')))),
			want: Or(Lit('a'), And(Lit('b'), And(Lit('c'), Lit('d')))),
		},
		{
			name: "Or directly inside And unchanged",
			in:   And(Or(Lit('a'), Lit('b')), Lit('c')),
			want: And(Or(Lit('a'), Lit('b')), Lit('c')),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Simplify(test.in)
			if diff := cmp.Diff(got, test.want); diff != "" {
				t.Errorf("Simplify(%v) diff (-got +want):\n%s", test.in, diff)
			}
		})
	}
}

func TestSimplifyIsPure(t *testing.T) {
	in := And(Lit('a'), And(Lit('b'), Lit('c')))
	want := And(Lit('a'), And(Lit('b'), Lit('c')))
	_ = Simplify(in)
	if diff := cmp.Diff(in, want); diff != "" {
		t.Errorf("Simplify modified its argument, diff (-got +want):\n%s", diff)
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	patterns := []string{
		"a",
		"abcd",
		"a|b|c|d",
		"[abc]d",
		"[ab]c|de",
		"(ab)(cd)(ef)",
		"((((a))))b",
	}
	for _, pattern := range patterns {
		e, err := Parse(pattern)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", pattern, err)
		}
		once := Simplify(e)
		twice := Simplify(once)
		if diff := cmp.Diff(twice, once); diff != "" {
			t.Errorf("Simplify(Simplify(Parse(%q))) diff (-got +want):\n%s", pattern, diff)
		}
	}
}

func TestSimplifyParsedConcat(t *testing.T) {
	e, err := Parse("abcd")
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", "abcd", err)
	}
	got := Simplify(e)
	want := And(Lit('a'), Lit('b'), Lit('c'), Lit('d'))
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Simplify(Parse(%q)) diff (-got +want):\n%s", "abcd", diff)
	}
}

func TestCombineSingleLevel(t *testing.T) {
	// One pass pulls up one level of nesting; the fixpoint loop in
	// Simplify does the rest.
	in := And(Lit('a'), And(Lit('b'), And(Lit('c'), Lit('d'))))
	got := combineAnds(in)
	want := And(Lit('a'), Lit('b'), And(Lit('c'), Lit('d')))
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("combineAnds(%v) diff (-got +want):\n%s", in, diff)
	}

	// combineAnds leaves an Or root alone, and vice versa.
	orIn := Or(Lit('a'), Or(Lit('b'), Lit('c')))
	if diff := cmp.Diff(combineAnds(orIn), orIn); diff != "" {
		t.Errorf("combineAnds(%v) diff (-got +want):\n%s", orIn, diff)
	}
	if diff := cmp.Diff(combineOrs(in), in); diff != "" {
		t.Errorf("combineOrs(%v) diff (-got +want):\n%s", in, diff)
	}
}
