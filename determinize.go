package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// macroSignature turns a state set into a canonical string key, the
// same closure.id() trick the teacher's Powerset uses to dedup
// macro-states: sort the member ids and join them.
func macroSignature(set map[int]struct{}) string {
	ids := make([]int, 0, len(set))
	for s := range set {
		ids = append(ids, s)
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// Determinize converts a possibly nondeterministic, epsilon-free
// automaton into an equivalent deterministic one via subset (powerset)
// construction. a must not have epsilon-transitions — callers that need
// to strip them first should compose WithoutEpsilon. If a is already
// deterministic, the result is a structural copy.
//
// Grounded on the teacher's NFA.Powerset, generalized from an
// always-epsilon-aware single routine to this package's explicit
// WithoutEpsilon/Determinize split.
func Determinize(a *Automaton) *Automaton {
	requireValid(a, "Determinize")
	if a.HasEpsilonTransition() {
		panic(&invalidAutomatonError{op: "Determinize: input has epsilon-transitions, compose WithoutEpsilon first"})
	}
	if a.IsDeterministic() {
		return a.Clone()
	}

	out := New()
	for _, c := range a.Alphabet() {
		out.AddSymbol(c)
	}

	initial := map[int]struct{}{}
	for _, s := range a.InitialStates() {
		initial[s] = struct{}{}
	}

	type macro struct {
		set map[int]struct{}
		id  int
	}

	bySignature := map[string]int{}
	var worklist []macro

	nextID := 0
	register := func(set map[int]struct{}) int {
		sig := macroSignature(set)
		if id, ok := bySignature[sig]; ok {
			return id
		}
		id := nextID
		nextID++
		bySignature[sig] = id
		worklist = append(worklist, macro{set: set, id: id})
		out.AddState(id)
		for s := range set {
			if a.IsStateFinal(s) {
				out.SetStateFinal(id)
				break
			}
		}
		return id
	}

	startID := register(initial)
	out.SetStateInitial(startID)

	for i := 0; i < len(worklist); i++ {
		m := worklist[i]
		for _, c := range a.Alphabet() {
			target := map[int]struct{}{}
			for s := range m.set {
				for to := range a.fwd[s][c] {
					target[to] = struct{}{}
				}
			}
			if len(target) == 0 {
				continue
			}
			targetID := register(target)
			out.AddTransition(m.id, c, targetID)
		}
	}

	if !out.IsValid() || len(out.InitialStates()) == 0 {
		return stubAutomaton('z')
	}
	return out
}
