// The zzredot command parses a pattern and writes its expression tree
// to stdout as a GraphViz digraph.
package main

import (
	"fmt"
	"os"

	"github.com/DrJosh9000/zzre"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s pattern\n", os.Args[0])
		os.Exit(1)
	}

	e, err := zzre.Parse(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't parse pattern %q: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	if err := zzre.WriteDot(os.Stdout, e); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't write Dot output: %v\n", err)
		os.Exit(1)
	}
}
