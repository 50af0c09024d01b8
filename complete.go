package automaton

// Complete returns an automaton accepting the same language as a with
// every (state, symbol) pair having at least one successor. If a is
// already complete, the result is a structural copy. Otherwise a fresh
// sink state is added for states that can still reach a final state;
// states that can no longer reach any final state redirect their
// missing transitions to themselves instead, since a run through them is
// already doomed not to accept. If every gap is covered by a
// self-redirect, the sink is never targeted and is omitted from the
// result entirely.
//
// Grounded on the teacher's Powerset(withDeadState=true) sink-adding
// loop, with the self-redirect optimization generalized from
// geange-automaton's totalize.
func Complete(a *Automaton) *Automaton {
	requireValid(a, "Complete")
	if a.IsComplete() {
		return a.Clone()
	}

	out := a.Clone()
	sink := nextFreshID(out)
	sinkUsed := false

	canReachFinal := map[int]bool{}
	for _, s := range a.States() {
		canReachFinal[s] = a.finalReachableFrom(s)
	}

	alphabet := out.Alphabet()
	for _, s := range out.States() {
		reachesFinal := canReachFinal[s]
		for _, c := range alphabet {
			if len(out.fwd[s][c]) > 0 {
				continue
			}
			if reachesFinal {
				if !sinkUsed {
					out.AddState(sink)
					sinkUsed = true
				}
				out.AddTransition(s, c, sink)
			} else {
				out.AddTransition(s, c, s)
			}
		}
	}

	if sinkUsed {
		for _, c := range alphabet {
			if len(out.fwd[sink][c]) == 0 {
				out.AddTransition(sink, c, sink)
			}
		}
	}
	return out
}
