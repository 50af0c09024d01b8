package automaton

// Complement returns an automaton accepting the complement language of
// a, computed as D := Complete(Determinize(a)) with every final flag
// inverted. Grounded on geange-automaton's complement (totalize then
// determinize then flip), adapted to this package's own
// Complete/Determinize.
func Complement(a *Automaton) *Automaton {
	requireValid(a, "Complement")
	d := Complete(Determinize(a))
	out := d.Clone()
	for _, s := range out.States() {
		if out.IsStateFinal(s) {
			out.ClearStateFinal(s)
		} else {
			out.SetStateFinal(s)
		}
	}
	return out
}
