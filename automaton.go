// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package automaton implements finite-state automata over a finite
// alphabet of printable bytes: construction, structural queries, word
// recognition, and the language-preserving transformations
// (determinization, completion, mirroring, complementation,
// epsilon-elimination, synchronous product/union, pruning, and two
// minimization procedures) that derive new automata from existing ones.
//
// An Automaton is a plain value: nothing is shared between the inputs
// and the output of any transformation. Builders never mutate their
// arguments.
package automaton

import "sort"

// Epsilon is the reserved label used for empty-string transitions. It is
// the null byte and can never be a member of an alphabet.
const Epsilon byte = 0

// isGraphic reports whether c is a printable, non-whitespace byte — the
// only kind of byte this package allows into an alphabet.
func isGraphic(c byte) bool {
	return c > 0x20 && c < 0x7f
}

type stateFlags struct {
	initial bool
	final   bool
}

// Automaton is a finite-state automaton over a byte alphabet. The zero
// value is not usable; construct one with New. An Automaton takes no
// locks: several goroutines may read it at once only while none of them
// mutates it.
type Automaton struct {
	alphabet map[byte]struct{}
	states   map[int]*stateFlags

	// fwd[from][symbol] is the set of states reachable from from by symbol.
	fwd map[int]map[byte]map[int]struct{}
	// bwd[to][symbol] is the set of states that reach to by symbol.
	bwd map[int]map[byte]map[int]struct{}
}

// New returns an empty automaton: no states, no symbols, no transitions.
func New() *Automaton {
	return &Automaton{
		alphabet: map[byte]struct{}{},
		states:   map[int]*stateFlags{},
		fwd:      map[int]map[byte]map[int]struct{}{},
		bwd:      map[int]map[byte]map[int]struct{}{},
	}
}

// AddSymbol adds c to the alphabet. It reports whether c was effectively
// added: it fails if c is Epsilon, not printable, or already present.
func (a *Automaton) AddSymbol(c byte) bool {
	if c == Epsilon || !isGraphic(c) {
		return false
	}
	if _, ok := a.alphabet[c]; ok {
		return false
	}
	a.alphabet[c] = struct{}{}
	return true
}

// RemoveSymbol removes c from the alphabet and every transition labeled
// c. It reports whether c was present.
func (a *Automaton) RemoveSymbol(c byte) bool {
	if _, ok := a.alphabet[c]; !ok {
		return false
	}
	delete(a.alphabet, c)
	for from, bySym := range a.fwd {
		for to := range bySym[c] {
			a.disconnect(from, c, to)
		}
	}
	return true
}

// HasSymbol reports whether c belongs to the alphabet.
func (a *Automaton) HasSymbol(c byte) bool {
	_, ok := a.alphabet[c]
	return ok
}

// CountSymbols returns the number of symbols in the alphabet.
func (a *Automaton) CountSymbols() int {
	return len(a.alphabet)
}

// Alphabet returns a fresh sorted copy of the alphabet.
func (a *Automaton) Alphabet() []byte {
	out := make([]byte, 0, len(a.alphabet))
	for c := range a.alphabet {
		out = append(out, c)
	}
	sortBytes(out)
	return out
}

// AddState adds s to the set of states with both flags false. It reports
// whether s was effectively added: it fails if s < 0 or s is already
// present.
func (a *Automaton) AddState(s int) bool {
	if s < 0 {
		return false
	}
	if _, ok := a.states[s]; ok {
		return false
	}
	a.states[s] = &stateFlags{}
	return true
}

// RemoveState removes s and every transition that mentions it as source
// or target. It reports whether s was present.
func (a *Automaton) RemoveState(s int) bool {
	if _, ok := a.states[s]; !ok {
		return false
	}
	for sym, tos := range a.fwd[s] {
		for to := range tos {
			a.disconnect(s, sym, to)
		}
	}
	for sym, froms := range a.bwd[s] {
		for from := range froms {
			a.disconnect(from, sym, s)
		}
	}
	delete(a.fwd, s)
	delete(a.bwd, s)
	delete(a.states, s)
	return true
}

// HasState reports whether s is a state of a.
func (a *Automaton) HasState(s int) bool {
	_, ok := a.states[s]
	return ok
}

// CountStates returns the number of states.
func (a *Automaton) CountStates() int {
	return len(a.states)
}

// States returns a fresh sorted copy of the state ids.
func (a *Automaton) States() []int {
	out := make([]int, 0, len(a.states))
	for s := range a.states {
		out = append(out, s)
	}
	sortInts(out)
	return out
}

// SetStateInitial marks s as an initial state. It is a silent no-op if s
// is not a known state.
func (a *Automaton) SetStateInitial(s int) {
	if f, ok := a.states[s]; ok {
		f.initial = true
	}
}

// SetStateFinal marks s as a final state. It is a silent no-op if s is
// not a known state.
func (a *Automaton) SetStateFinal(s int) {
	if f, ok := a.states[s]; ok {
		f.final = true
	}
}

// ClearStateInitial un-marks s as an initial state. It is a silent
// no-op if s is not a known state.
func (a *Automaton) ClearStateInitial(s int) {
	if f, ok := a.states[s]; ok {
		f.initial = false
	}
}

// ClearStateFinal un-marks s as a final state. It is a silent no-op if s
// is not a known state.
func (a *Automaton) ClearStateFinal(s int) {
	if f, ok := a.states[s]; ok {
		f.final = false
	}
}

// IsStateInitial reports whether s is a known, initial state.
func (a *Automaton) IsStateInitial(s int) bool {
	f, ok := a.states[s]
	return ok && f.initial
}

// IsStateFinal reports whether s is a known, final state.
func (a *Automaton) IsStateFinal(s int) bool {
	f, ok := a.states[s]
	return ok && f.final
}

// InitialStates returns a fresh sorted copy of the initial state ids.
func (a *Automaton) InitialStates() []int {
	var out []int
	for s, f := range a.states {
		if f.initial {
			out = append(out, s)
		}
	}
	sortInts(out)
	return out
}

// FinalStates returns a fresh sorted copy of the final state ids.
func (a *Automaton) FinalStates() []int {
	var out []int
	for s, f := range a.states {
		if f.final {
			out = append(out, s)
		}
	}
	sortInts(out)
	return out
}

// AddTransition adds the triple (from, a, to). It reports whether the
// transition was effectively added: it fails if from or to is negative
// or unknown, if the label is not Epsilon and not in the alphabet, or if
// the triple already exists.
func (aut *Automaton) AddTransition(from int, label byte, to int) bool {
	if from < 0 || to < 0 {
		return false
	}
	if _, ok := aut.states[from]; !ok {
		return false
	}
	if _, ok := aut.states[to]; !ok {
		return false
	}
	if label != Epsilon {
		if _, ok := aut.alphabet[label]; !ok {
			return false
		}
	}
	if aut.HasTransition(from, label, to) {
		return false
	}
	aut.connect(from, label, to)
	return true
}

// RemoveTransition removes the triple (from, a, to). It reports whether
// it was present.
func (a *Automaton) RemoveTransition(from int, label byte, to int) bool {
	if !a.HasTransition(from, label, to) {
		return false
	}
	a.disconnect(from, label, to)
	return true
}

// HasTransition reports whether the triple (from, a, to) is present.
func (a *Automaton) HasTransition(from int, label byte, to int) bool {
	bySym, ok := a.fwd[from]
	if !ok {
		return false
	}
	tos, ok := bySym[label]
	if !ok {
		return false
	}
	_, ok = tos[to]
	return ok
}

// CountTransitions returns the total number of transition triples.
func (a *Automaton) CountTransitions() int {
	n := 0
	for _, bySym := range a.fwd {
		for _, tos := range bySym {
			n += len(tos)
		}
	}
	return n
}

// Successors returns the set of states reachable from s by label,
// either Epsilon or a symbol.
func (a *Automaton) Successors(s int, label byte) map[int]struct{} {
	out := map[int]struct{}{}
	for to := range a.fwd[s][label] {
		out[to] = struct{}{}
	}
	return out
}

// Predecessors returns the set of states that reach s by label.
func (a *Automaton) Predecessors(s int, label byte) map[int]struct{} {
	out := map[int]struct{}{}
	for from := range a.bwd[s][label] {
		out[from] = struct{}{}
	}
	return out
}

func (a *Automaton) connect(from int, label byte, to int) {
	if a.fwd[from] == nil {
		a.fwd[from] = map[byte]map[int]struct{}{}
	}
	if a.fwd[from][label] == nil {
		a.fwd[from][label] = map[int]struct{}{}
	}
	a.fwd[from][label][to] = struct{}{}

	if a.bwd[to] == nil {
		a.bwd[to] = map[byte]map[int]struct{}{}
	}
	if a.bwd[to][label] == nil {
		a.bwd[to][label] = map[int]struct{}{}
	}
	a.bwd[to][label][from] = struct{}{}
}

func (a *Automaton) disconnect(from int, label byte, to int) {
	if bySym, ok := a.fwd[from]; ok {
		if tos, ok := bySym[label]; ok {
			delete(tos, to)
			if len(tos) == 0 {
				delete(bySym, label)
			}
		}
	}
	if bySym, ok := a.bwd[to]; ok {
		if froms, ok := bySym[label]; ok {
			delete(froms, from)
			if len(froms) == 0 {
				delete(bySym, label)
			}
		}
	}
}

func sortBytes(s []byte) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}

func sortInts(s []int) {
	sort.Ints(s)
}
