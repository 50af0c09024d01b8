package automaton

// Mirror returns the automaton accepting the reverse of every word in
// L(a): the alphabet and state set are unchanged, initial and final
// flags swap, and every transition (p, c, q) becomes (q, c, p),
// including Epsilon transitions. Grounded on the teacher's NFA.Reverse,
// generalized from a single designated start state to this package's
// explicit initial/final flag model.
func Mirror(a *Automaton) *Automaton {
	requireValid(a, "Mirror")
	out := New()
	for _, c := range a.Alphabet() {
		out.AddSymbol(c)
	}
	for _, s := range a.States() {
		out.AddState(s)
		if a.IsStateFinal(s) {
			out.SetStateInitial(s)
		}
		if a.IsStateInitial(s) {
			out.SetStateFinal(s)
		}
	}
	for from, bySym := range a.fwd {
		for label, tos := range bySym {
			for to := range tos {
				out.connect(to, label, from)
			}
		}
	}
	return out
}
