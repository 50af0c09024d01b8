// Command fsmctl is a small demonstration front end for the automaton
// library: it reads a line-oriented automaton description and
// dispatches to one of the package's transformations or to Match. The
// line format is deliberately undocumented as a stable interface — it
// exists only to give the algebra a runnable entry point, not as a
// persisted file format (see SPEC_FULL.md §6).
package main

import (
	"fmt"
	"os"

	"github.com/pviprey/Automaton"
	"github.com/spf13/pflag"
)

var (
	op      = pflag.StringP("op", "o", "match", "match|determinize|complement|mirror|complete|without-epsilon|minimize-moore|minimize-brzozowski|product|union|is-included-in")
	word    = pflag.StringP("word", "w", "", "word to test with -op=match")
	inPath  = pflag.StringP("in", "i", "", "path to the automaton description (default: stdin)")
	secPath = pflag.StringP("second", "b", "", "path to a second automaton description, for product/union/is-included-in")
)

func main() {
	pflag.Parse()

	a, err := readAutomaton(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fsmctl: %v\n", err)
		os.Exit(2)
	}

	switch *op {
	case "match":
		if a.Match(*word) {
			fmt.Println("accept")
			os.Exit(0)
		}
		fmt.Println("reject")
		os.Exit(1)

	case "determinize":
		printResult(automaton.Determinize(a))
	case "complement":
		printResult(automaton.Complement(a))
	case "mirror":
		printResult(automaton.Mirror(a))
	case "complete":
		printResult(automaton.Complete(a))
	case "without-epsilon":
		printResult(automaton.WithoutEpsilon(a))
	case "minimize-moore":
		printResult(automaton.MinimizeMoore(a))
	case "minimize-brzozowski":
		printResult(automaton.Brzozowski(a))

	case "product", "union", "is-included-in":
		b, err := readAutomaton(*secPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fsmctl: second automaton: %v\n", err)
			os.Exit(2)
		}
		switch *op {
		case "product":
			printResult(automaton.Product(a, b))
		case "union":
			printResult(automaton.Union(a, b))
		case "is-included-in":
			if a.IsIncludedIn(b) {
				fmt.Println("included")
				os.Exit(0)
			}
			fmt.Println("not included")
			os.Exit(1)
		}

	default:
		fmt.Fprintf(os.Stderr, "fsmctl: unknown -op %q\n", *op)
		os.Exit(2)
	}
}

func printResult(a *automaton.Automaton) {
	a.WriteTo(os.Stdout)
}
