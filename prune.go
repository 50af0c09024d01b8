package automaton

// stubAutomaton fabricates a minimal, trivially-valid automaton: a
// single state with id 42, marked initial, and a single symbol. pad
// distinguishes the caller that produced the stub in debug output
// (pruning uses 'q', builders use 'z'). The state is never also marked
// final, so the stub's language is always empty — use
// stubAcceptingEmptyWord for the one documented exception (Product,
// when both operands coincidentally accept the empty word over a
// disjoint alphabet).
func stubAutomaton(pad byte) *Automaton {
	out := New()
	out.AddSymbol(pad)
	out.AddState(42)
	out.SetStateInitial(42)
	return out
}

// stubAcceptingEmptyWord is the same shape as stubAutomaton but also
// marks the single state final, so its language is exactly {""}: the
// one state has no outgoing transition, so any non-empty word is
// rejected, while the empty word is accepted by virtue of the state
// being both initial and final.
func stubAcceptingEmptyWord(pad byte) *Automaton {
	out := stubAutomaton(pad)
	out.SetStateFinal(42)
	return out
}

// RemoveNonAccessibleStates deletes every state not forward-reachable
// from any initial state, along with its incident transitions. If this
// would leave the automaton invalid, it is replaced in place by a
// trivial empty-language stub.
func (a *Automaton) RemoveNonAccessibleStates() {
	requireValid(a, "RemoveNonAccessibleStates")
	initials := map[int]struct{}{}
	for _, s := range a.InitialStates() {
		initials[s] = struct{}{}
	}
	accessible := a.forwardReachable(initials)
	a.keepOnly(accessible)
	if !a.IsValid() {
		*a = *stubAutomaton('q')
	}
}

// RemoveNonCoAccessibleStates deletes every state that cannot reach any
// final state, along with its incident transitions. If this would leave
// the automaton invalid, it is replaced in place by a trivial
// empty-language stub.
func (a *Automaton) RemoveNonCoAccessibleStates() {
	requireValid(a, "RemoveNonCoAccessibleStates")
	finals := map[int]struct{}{}
	for _, s := range a.FinalStates() {
		finals[s] = struct{}{}
	}
	coAccessible := a.backwardReachable(finals)
	a.keepOnly(coAccessible)
	if !a.IsValid() {
		*a = *stubAutomaton('q')
	}
}

func (a *Automaton) keepOnly(keep map[int]struct{}) {
	for _, s := range a.States() {
		if _, ok := keep[s]; !ok {
			a.RemoveState(s)
		}
	}
}
