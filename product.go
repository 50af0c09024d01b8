package automaton

// intersectAlphabets and unionAlphabets are small set operations shared
// by Product and Union below.
func intersectAlphabets(a, b *Automaton) []byte {
	var out []byte
	for _, c := range a.Alphabet() {
		if b.HasSymbol(c) {
			out = append(out, c)
		}
	}
	return out
}

func unionAlphabets(a, b *Automaton) []byte {
	seen := map[byte]struct{}{}
	var out []byte
	for _, c := range a.Alphabet() {
		seen[c] = struct{}{}
		out = append(out, c)
	}
	for _, c := range b.Alphabet() {
		if _, ok := seen[c]; !ok {
			out = append(out, c)
		}
	}
	return out
}

type pairKey struct{ p, q int }

// Product returns the synchronous intersection A x B: its language is
// L(A) ∩ L(B) restricted to words over Σ_A ∩ Σ_B. Pair-states are
// materialized lazily via a worklist, mirroring the worklist-over-
// closures shape of the teacher's Powerset, generalized to a worklist
// over pairs (the same shape geange-automaton's intersection uses with
// its statePair/Hashable map key).
func Product(a, b *Automaton) *Automaton {
	requireValid(a, "Product")
	requireValid(b, "Product")

	alphabet := intersectAlphabets(a, b)

	if len(alphabet) == 0 {
		for _, p := range a.InitialStates() {
			if !a.IsStateFinal(p) {
				continue
			}
			for _, q := range b.InitialStates() {
				if b.IsStateFinal(q) {
					return stubAcceptingEmptyWord('z')
				}
			}
		}
		return stubAutomaton('z')
	}

	out := New()
	for _, c := range alphabet {
		out.AddSymbol(c)
	}

	ids := map[pairKey]int{}
	nextID := 0
	var worklist []pairKey

	register := func(p, q int) int {
		key := pairKey{p, q}
		if id, ok := ids[key]; ok {
			return id
		}
		id := nextID
		nextID++
		ids[key] = id
		worklist = append(worklist, key)
		out.AddState(id)
		if a.IsStateFinal(p) && b.IsStateFinal(q) {
			out.SetStateFinal(id)
		}
		return id
	}

	for _, p := range a.InitialStates() {
		for _, q := range b.InitialStates() {
			id := register(p, q)
			out.SetStateInitial(id)
		}
	}

	for i := 0; i < len(worklist); i++ {
		key := worklist[i]
		fromID := ids[key]
		for _, c := range alphabet {
			for pTo := range a.fwd[key.p][c] {
				for qTo := range b.fwd[key.q][c] {
					toID := register(pTo, qTo)
					out.AddTransition(fromID, c, toID)
				}
			}
		}
	}

	if !out.IsValid() || len(out.InitialStates()) == 0 {
		return stubAutomaton('z')
	}
	return out
}

// HasEmptyIntersectionWith reports whether L(a) ∩ L(b) is empty.
func (a *Automaton) HasEmptyIntersectionWith(b *Automaton) bool {
	return Product(a, b).IsLanguageEmpty()
}
