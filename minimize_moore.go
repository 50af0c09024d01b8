package automaton

import "strconv"

// MinimizeMoore returns a minimal DFA for L(a) via Moore partition
// refinement. a is first normalized with Determinize, then Complete,
// then RemoveNonAccessibleStates, exactly as the distilled spec
// prescribes; refinement then repeatedly refines a partition by
// transition signature until it stabilizes. Class ids are renumbered in
// order of first appearance on every pass so the fixed point is
// well-defined.
//
// No teacher counterpart exists for this algorithm (cznic-fsm only
// implements Brzozowski, see minimize_brzozowski.go); the state-
// signature-as-map-key dedup below follows the same idiom as
// Determinize's macroSignature / the teacher's closure.id().
func MinimizeMoore(a *Automaton) *Automaton {
	requireValid(a, "MinimizeMoore")

	d := Complete(Determinize(a))
	d.RemoveNonAccessibleStates()

	alphabet := d.Alphabet()
	states := d.States()

	class := map[int]int{}
	for _, s := range states {
		if d.IsStateFinal(s) {
			class[s] = 2
		} else {
			class[s] = 1
		}
	}

	for {
		signatureOf := func(s int) string {
			sig := strconv.Itoa(class[s])
			for _, c := range alphabet {
				for to := range d.fwd[s][c] {
					sig += "|" + string(c) + ":" + strconv.Itoa(class[to])
				}
			}
			return sig
		}

		nextClass := map[int]int{}
		idBySignature := map[string]int{}
		nextID := 1
		for _, s := range states {
			sig := signatureOf(s)
			id, ok := idBySignature[sig]
			if !ok {
				id = nextID
				nextID++
				idBySignature[sig] = id
			}
			nextClass[s] = id
		}

		stable := true
		for _, s := range states {
			if nextClass[s] != class[s] {
				stable = false
				break
			}
		}
		class = nextClass
		if stable {
			break
		}
	}

	out := New()
	for _, c := range alphabet {
		out.AddSymbol(c)
	}

	representative := map[int]int{}
	for _, s := range states {
		cid := class[s]
		if !out.HasState(cid) {
			out.AddState(cid)
			representative[cid] = s
		}
		if d.IsStateInitial(s) {
			out.SetStateInitial(cid)
		}
		if d.IsStateFinal(s) {
			out.SetStateFinal(cid)
		}
	}

	for cid, rep := range representative {
		for _, c := range alphabet {
			for to := range d.fwd[rep][c] {
				out.AddTransition(cid, c, class[to])
			}
		}
	}

	if !out.IsValid() {
		return stubAutomaton('z')
	}
	return out
}
