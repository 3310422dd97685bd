// The zzre command parses a pattern, prints its expression tree before
// and after simplification, and reports whether the pattern matches a
// prefix of the subject string.
//
// Example:
//
//	$ zzre '[ab]c' bc
//	And(
//	  Or(
//	    "a"
//	    "b"
//	  )
//	  "c"
//	)
//	...
//	true
package main

import (
	"fmt"
	"os"

	"github.com/DrJosh9000/zzre"
	"github.com/alecthomas/kong"
)

type cli struct {
	Pattern      string `arg:"" help:"Pattern to parse."`
	Subject      string `arg:"" help:"Subject string to match the pattern against."`
	Backtracking bool   `help:"Evaluate with backtracking instead of the consuming cursor."`
	NoSimplify   bool   `help:"Skip flattening the expression tree before matching."`
}

func main() {
	var params cli
	kong.Parse(&params)

	e, err := zzre.Parse(params.Pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't parse pattern %q: %v\n", params.Pattern, err)
		os.Exit(1)
	}

	fmt.Print(zzre.Dump(e))
	if !params.NoSimplify {
		e = zzre.Simplify(e)
		fmt.Print(zzre.Dump(e))
	}

	fmt.Println(zzre.Match(e, params.Subject, zzre.Backtracking(params.Backtracking)))
}
