package automaton

// WithoutEpsilon returns an automaton with no epsilon-transitions
// accepting the same language as a. For every non-epsilon transition
// (p, c, q), and every p' in the epsilon-reverse-closure of p, and every
// q' in the epsilon-closure of q, the result has transition (p', c, q').
// A state is final in the result iff its epsilon-closure contains a
// final state of a.
//
// Grounded on the teacher's State.closure(), applied to every state
// instead of only the NFA's start state.
func WithoutEpsilon(a *Automaton) *Automaton {
	requireValid(a, "WithoutEpsilon")
	if !a.HasEpsilonTransition() {
		return a.Clone()
	}

	closures := map[int]map[int]struct{}{}
	reverseClosures := map[int]map[int]struct{}{}
	for _, s := range a.States() {
		closures[s] = a.epsilonClosure(map[int]struct{}{s: {}})
		reverseClosures[s] = a.epsilonReverseClosure(s)
	}

	out := New()
	for _, c := range a.Alphabet() {
		out.AddSymbol(c)
	}
	for _, s := range a.States() {
		out.AddState(s)
		if a.IsStateInitial(s) {
			out.SetStateInitial(s)
		}
		for member := range closures[s] {
			if a.IsStateFinal(member) {
				out.SetStateFinal(s)
				break
			}
		}
	}

	for _, p := range a.States() {
		for _, c := range a.Alphabet() {
			for q := range a.fwd[p][c] {
				for pPrime := range reverseClosures[p] {
					for qPrime := range closures[q] {
						out.AddTransition(pPrime, c, qPrime)
					}
				}
			}
		}
	}
	return out
}
