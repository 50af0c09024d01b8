package automaton

// IsIncludedIn reports whether L(a) ⊆ L(b), computed as
// L(a) ∩ L(complement of b) = ∅. Before complementing b, its alphabet
// is widened with any symbols of a that b lacks (no transitions added
// for them) so the complement's completion step routes those symbols to
// a sink rather than silently excluding them from consideration.
func (a *Automaton) IsIncludedIn(b *Automaton) bool {
	requireValid(a, "IsIncludedIn")
	requireValid(b, "IsIncludedIn")

	widenedB := b.Clone()
	for _, c := range a.Alphabet() {
		if !widenedB.HasSymbol(c) {
			widenedB.AddSymbol(c)
		}
	}

	notB := Complement(widenedB)
	return Product(a, notB).IsLanguageEmpty()
}
