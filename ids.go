package automaton

import "github.com/cznic/mathutil"

// nextFreshID returns an id guaranteed absent from a's current state
// set: one past the largest id in use, tracked the same way the
// teacher's Powerset tracks alphabetSize with mathutil.Max while
// scanning transitions. The design notes only promise disjointness from
// the existing set, not minimality, so this is simpler than a
// smallest-missing-id search and just as correct.
func nextFreshID(a *Automaton) int {
	next := 0
	for _, s := range a.States() {
		next = mathutil.Max(next, s+1)
	}
	return next
}
