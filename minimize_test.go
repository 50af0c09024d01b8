package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spec scenario 5: words ending in "bb" over {a,b}, built as a nine-state
// sparse automaton (deliberately redundant) that both minimizers must
// collapse to the same three-state DFA.
func endsInBB() *Automaton {
	a := New()
	a.AddSymbol('a')
	a.AddSymbol('b')
	for i := 0; i < 9; i++ {
		a.AddState(i)
	}
	a.SetStateInitial(0)
	a.SetStateFinal(2)
	a.SetStateFinal(8)

	// redundant "not seen b" cluster: 0,1,3,4,6,7 are all language-
	// equivalent to "0 b's seen yet", reachable via different paths.
	a.AddTransition(0, 'a', 0)
	a.AddTransition(0, 'a', 1)
	a.AddTransition(1, 'a', 3)
	a.AddTransition(3, 'a', 4)
	a.AddTransition(4, 'a', 6)
	a.AddTransition(6, 'a', 7)
	a.AddTransition(7, 'a', 0)

	a.AddTransition(0, 'b', 5) // 1 trailing b
	a.AddTransition(1, 'b', 5)
	a.AddTransition(3, 'b', 5)
	a.AddTransition(4, 'b', 5)
	a.AddTransition(6, 'b', 5)
	a.AddTransition(7, 'b', 5)

	a.AddTransition(5, 'a', 0) // back to "0 trailing b's"
	a.AddTransition(5, 'b', 2) // 2 trailing b's: final

	a.AddTransition(2, 'a', 0)
	a.AddTransition(2, 'b', 2) // stays final on more b's

	// 8 is unreachable dead weight, pruned by minimization.
	a.AddTransition(8, 'a', 8)
	a.AddTransition(8, 'b', 8)

	return a
}

func testWords() []string {
	return []string{"", "a", "b", "bb", "bbb", "ab", "abb", "aab", "aabb", "abab", "babba", "bbabb"}
}

func TestMinimizeMooreCollapsesEndsInBB(t *testing.T) {
	a := endsInBB()
	m := MinimizeMoore(a)
	require.True(t, m.IsDeterministic())
	require.True(t, m.IsComplete())
	assert.Equal(t, 3, m.CountStates())
	for _, w := range testWords() {
		assert.Equal(t, a.Match(w), m.Match(w), "word %q", w)
	}
}

func TestBrzozowskiCollapsesEndsInBB(t *testing.T) {
	a := endsInBB()
	b := Brzozowski(a)
	require.True(t, b.IsDeterministic())
	require.True(t, b.IsComplete())
	assert.Equal(t, 3, b.CountStates())
	for _, w := range testWords() {
		assert.Equal(t, a.Match(w), b.Match(w), "word %q", w)
	}
}

func TestMinimizeMooreAndBrzozowskiAgree(t *testing.T) {
	a := endsInBB()
	m := MinimizeMoore(a)
	b := Brzozowski(a)
	assert.Equal(t, m.CountStates(), b.CountStates())
	for _, w := range testWords() {
		assert.Equal(t, m.Match(w), b.Match(w), "word %q", w)
	}
}

func TestMinimizeMooreOnAlreadyMinimalDFA(t *testing.T) {
	a := twoStateDFA()
	m := MinimizeMoore(a)
	assert.Equal(t, a.CountStates(), m.CountStates())
	for _, w := range []string{"", "a", "aa", "aaa"} {
		assert.Equal(t, a.Match(w), m.Match(w), "word %q", w)
	}
}

func TestMinimizeMoorePanicsOnEpsilon(t *testing.T) {
	a := New()
	a.AddSymbol('a')
	a.AddState(0)
	a.AddState(1)
	a.SetStateInitial(0)
	a.AddTransition(0, Epsilon, 1)
	assert.Panics(t, func() { MinimizeMoore(a) })
}
