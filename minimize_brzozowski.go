package automaton

// Brzozowski returns a complete, minimal DFA for L(a), computed as
// Complete(Determinize(Mirror(Determinize(Mirror(a))))). Both
// Determinize calls feed on epsilon-free inputs: a is assumed
// epsilon-free (mirroring an epsilon-free automaton yields an
// epsilon-free one), matching this package's Determinize precondition.
//
// This is a direct, renamed generalization of the teacher's
// NFA.MinimalDFA (Reverse().Powerset(true).Reverse().Powerset(true)),
// re-expressed over the byte-alphabet Automaton type with a mandatory
// final Complete pass, since this spec requires Brzozowski to return a
// complete DFA rather than leaving dead-state addition optional.
func Brzozowski(a *Automaton) *Automaton {
	requireValid(a, "Brzozowski")
	step1 := Determinize(Mirror(a))
	step2 := Determinize(Mirror(step1))
	return Complete(step2)
}
