package automaton

import (
	"bytes"
	"io"
	"sort"

	"github.com/cznic/strutil"
)

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// WriteTo renders a in the pretty-print form described by the external
// interfaces: a header of initial state ids, a header of final state
// ids, then a per-state section listing outgoing transitions as
// "--<symbol>--> <target>". Whitespace is not load-bearing.
//
// Grounded on the teacher's State.String()/NFA.String(), which use
// strutil.IndentFormatter for the indented transition block; generalized
// here to byte symbols and to the distilled spec's explicit
// initial/final headers.
func (a *Automaton) WriteTo(w io.Writer) (int64, error) {
	requireValid(a, "WriteTo")

	var buf bytes.Buffer
	f := strutil.IndentFormatter(&buf, "\t")

	f.Format("initial:")
	for _, s := range a.InitialStates() {
		f.Format(" %d", s)
	}
	f.Format("\nfinal:")
	for _, s := range a.FinalStates() {
		f.Format(" %d", s)
	}
	f.Format("\n")

	for _, s := range a.States() {
		f.Format("state %d\n%i", s)
		if tos := a.Successors(s, Epsilon); len(tos) > 0 {
			for _, to := range sortedKeys(tos) {
				f.Format("--ε--> %d\n", to)
			}
		}
		for _, c := range a.Alphabet() {
			for _, to := range sortedKeys(a.Successors(s, c)) {
				f.Format("--%c--> %d\n", c, to)
			}
		}
		f.Format("%u")
	}

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// String implements fmt.Stringer with the same rendering as WriteTo, for
// use in %v formatting and test failure messages.
func (a *Automaton) String() string {
	var buf bytes.Buffer
	a.WriteTo(&buf)
	return buf.String()
}
