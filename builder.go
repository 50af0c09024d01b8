package automaton

// Builder is a thin, fluent wrapper over the primitive mutators for
// assembling an Automaton from a literal description in one expression,
// e.g.:
//
//	a := NewBuilder().
//		Symbols('a', 'b').
//		State(0).Initial().
//		State(1).Final().
//		Transition(0, 'a', 0).
//		Transition(0, 'b', 1).
//		Build()
//
// It performs no algorithm of its own: every method is a direct call
// into the Automaton it wraps. Grounded on the fluent
// builder-returns-self convention shared by dr-dobermann/gonfa and
// katalvlaran/lvlath, applied here to this package's own mutators.
type Builder struct {
	a    *Automaton
	last int
}

// NewBuilder returns a Builder wrapping a fresh, empty Automaton.
func NewBuilder() *Builder {
	return &Builder{a: New()}
}

// Symbols adds every symbol in cs to the alphabet.
func (b *Builder) Symbols(cs ...byte) *Builder {
	for _, c := range cs {
		b.a.AddSymbol(c)
	}
	return b
}

// State adds state s and makes it the current state for Initial/Final.
func (b *Builder) State(s int) *Builder {
	b.a.AddState(s)
	b.last = s
	return b
}

// Initial marks the current state (the one last passed to State) as
// initial.
func (b *Builder) Initial() *Builder {
	b.a.SetStateInitial(b.last)
	return b
}

// Final marks the current state as final.
func (b *Builder) Final() *Builder {
	b.a.SetStateFinal(b.last)
	return b
}

// Transition adds the triple (from, c, to), adding from and to as
// states first if necessary.
func (b *Builder) Transition(from int, c byte, to int) *Builder {
	b.a.AddState(from)
	b.a.AddState(to)
	b.a.AddTransition(from, c, to)
	return b
}

// Build returns the assembled Automaton.
func (b *Builder) Build() *Automaton {
	return b.a
}
