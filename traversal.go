package automaton

import "github.com/bits-and-blooms/bitset"

// stateIndex compacts the automaton's (possibly sparse, possibly huge)
// state ids into a dense 0..n-1 index range so that a bitset.BitSet can
// be used for the visited set during reachability search instead of a map, the
// same shape geange-automaton's getLiveStates family uses over its own
// (already dense) ids.
type stateIndex struct {
	ids   []int
	index map[int]int
}

func newStateIndex(a *Automaton) *stateIndex {
	ids := a.States()
	idx := make(map[int]int, len(ids))
	for i, s := range ids {
		idx[s] = i
	}
	return &stateIndex{ids: ids, index: idx}
}

func (si *stateIndex) toSet(b *bitset.BitSet) map[int]struct{} {
	out := map[int]struct{}{}
	for i, e := b.NextSet(0); e; i, e = b.NextSet(i + 1) {
		out[si.ids[i]] = struct{}{}
	}
	return out
}

// forwardReachable returns the smallest set R containing from with
// R closed under every transition (any label, including Epsilon).
func (a *Automaton) forwardReachable(from map[int]struct{}) map[int]struct{} {
	si := newStateIndex(a)
	visited := bitset.New(uint(len(si.ids)))
	var frontier []int
	for s := range from {
		if i, ok := si.index[s]; ok && !visited.Test(uint(i)) {
			visited.Set(uint(i))
			frontier = append(frontier, s)
		}
	}
	for len(frontier) > 0 {
		s := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, bySym := range a.fwd[s] {
			for to := range bySym {
				i := si.index[to]
				if !visited.Test(uint(i)) {
					visited.Set(uint(i))
					frontier = append(frontier, to)
				}
			}
		}
	}
	return si.toSet(visited)
}

// backwardReachable returns the smallest set R containing to with
// R closed under reverse transitions. Built on the exported Predecessors
// rather than a.bwd directly, the same way forwardReachable could be
// built on Successors — kept on the raw map there for the hot inner
// loop, used here since backwardReachable is already the colder of the
// two (called once per RemoveNonCoAccessibleStates, not per BFS step).
func (a *Automaton) backwardReachable(to map[int]struct{}) map[int]struct{} {
	si := newStateIndex(a)
	visited := bitset.New(uint(len(si.ids)))
	var frontier []int
	for s := range to {
		if i, ok := si.index[s]; ok && !visited.Test(uint(i)) {
			visited.Set(uint(i))
			frontier = append(frontier, s)
		}
	}
	labels := append([]byte{Epsilon}, a.Alphabet()...)
	for len(frontier) > 0 {
		s := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, c := range labels {
			for from := range a.Predecessors(s, c) {
				i := si.index[from]
				if !visited.Test(uint(i)) {
					visited.Set(uint(i))
					frontier = append(frontier, from)
				}
			}
		}
	}
	return si.toSet(visited)
}

// finalReachableFrom reports whether any final state is forward
// reachable from s.
func (a *Automaton) finalReachableFrom(s int) bool {
	reach := a.forwardReachable(map[int]struct{}{s: {}})
	for t := range reach {
		if a.IsStateFinal(t) {
			return true
		}
	}
	return false
}

// epsilonClosure returns the smallest set C containing every state in
// seed and closed under Epsilon-successors. Self-loops on Epsilon never
// trigger recursion (a state already in the visited set is skipped).
func (a *Automaton) epsilonClosure(seed map[int]struct{}) map[int]struct{} {
	out := map[int]struct{}{}
	var stack []int
	for s := range seed {
		if _, ok := out[s]; !ok {
			out[s] = struct{}{}
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for next := range a.fwd[s][Epsilon] {
			if next == s {
				continue // self-loop on ε, ignored
			}
			if _, ok := out[next]; !ok {
				out[next] = struct{}{}
				stack = append(stack, next)
			}
		}
	}
	return out
}

// epsilonReverseClosure returns the smallest set C containing s and
// closed under "q in C and (p, ε, q) exists implies p in C".
func (a *Automaton) epsilonReverseClosure(s int) map[int]struct{} {
	out := map[int]struct{}{s: {}}
	stack := []int{s}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for prev := range a.bwd[cur][Epsilon] {
			if prev == cur {
				continue
			}
			if _, ok := out[prev]; !ok {
				out[prev] = struct{}{}
				stack = append(stack, prev)
			}
		}
	}
	return out
}
