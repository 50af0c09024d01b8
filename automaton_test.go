package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSymbol(t *testing.T) {
	a := New()
	require.True(t, a.AddSymbol('a'))
	assert.True(t, a.HasSymbol('a'))
	assert.Equal(t, 1, a.CountSymbols())

	assert.False(t, a.AddSymbol('a'), "duplicate symbol must fail")
	assert.False(t, a.AddSymbol(Epsilon), "epsilon is never a legal symbol")
	assert.False(t, a.AddSymbol(' '), "space is not graphic")
	assert.False(t, a.AddSymbol('\t'), "tab is not graphic")
	assert.False(t, a.AddSymbol(0x7f), "DEL is not graphic")
}

func TestRemoveSymbolDropsTransitions(t *testing.T) {
	a := New()
	a.AddSymbol('a')
	a.AddSymbol('b')
	a.AddState(0)
	a.AddState(1)
	require.True(t, a.AddTransition(0, 'a', 1))
	require.True(t, a.AddTransition(0, 'b', 1))

	require.True(t, a.RemoveSymbol('a'))
	assert.False(t, a.HasSymbol('a'))
	assert.False(t, a.HasTransition(0, 'a', 1))
	assert.True(t, a.HasTransition(0, 'b', 1), "unrelated transition must survive")

	assert.False(t, a.RemoveSymbol('a'), "already removed")
}

func TestAddState(t *testing.T) {
	a := New()
	require.True(t, a.AddState(0))
	assert.True(t, a.HasState(0))
	assert.False(t, a.IsStateInitial(0))
	assert.False(t, a.IsStateFinal(0))

	assert.False(t, a.AddState(0), "duplicate state must fail")
	assert.False(t, a.AddState(-1), "negative id must fail")
}

func TestAddStateLargeID(t *testing.T) {
	a := New()
	const big = 1<<31 - 1 // math.MaxInt32
	require.True(t, a.AddState(big))
	assert.True(t, a.HasState(big))
}

func TestRemoveStateDropsIncidentTransitions(t *testing.T) {
	a := New()
	a.AddSymbol('a')
	a.AddState(0)
	a.AddState(1)
	a.AddState(2)
	a.AddTransition(0, 'a', 1)
	a.AddTransition(1, 'a', 2)

	require.True(t, a.RemoveState(1))
	assert.False(t, a.HasState(1))
	assert.False(t, a.HasTransition(0, 'a', 1))
	assert.False(t, a.HasTransition(1, 'a', 2))
	assert.Equal(t, 0, a.CountTransitions())

	assert.False(t, a.RemoveState(1), "already removed")
}

func TestSettersOnUnknownStateAreNoOps(t *testing.T) {
	a := New()
	assert.NotPanics(t, func() {
		a.SetStateInitial(99)
		a.SetStateFinal(99)
		a.ClearStateInitial(99)
		a.ClearStateFinal(99)
	})
	assert.False(t, a.IsStateInitial(99))
	assert.False(t, a.IsStateFinal(99))
}

func TestClearStateInitialAndFinal(t *testing.T) {
	a := New()
	a.AddState(0)
	a.SetStateInitial(0)
	a.SetStateFinal(0)
	require.True(t, a.IsStateInitial(0))
	require.True(t, a.IsStateFinal(0))

	a.ClearStateInitial(0)
	assert.False(t, a.IsStateInitial(0))
	assert.True(t, a.IsStateFinal(0), "clearing initial must not touch final")

	a.ClearStateFinal(0)
	assert.False(t, a.IsStateFinal(0))
}

func TestPredecessors(t *testing.T) {
	a := New()
	a.AddSymbol('a')
	a.AddState(0)
	a.AddState(1)
	a.AddState(2)
	a.AddTransition(0, 'a', 2)
	a.AddTransition(1, 'a', 2)

	pred := a.Predecessors(2, 'a')
	assert.Len(t, pred, 2)
	_, has0 := pred[0]
	_, has1 := pred[1]
	assert.True(t, has0)
	assert.True(t, has1)

	assert.Empty(t, a.Predecessors(0, 'a'), "0 has no predecessors")
}

func TestAddTransition(t *testing.T) {
	a := New()
	a.AddSymbol('a')
	a.AddState(0)
	a.AddState(1)

	assert.False(t, a.AddTransition(-1, 'a', 1), "negative from")
	assert.False(t, a.AddTransition(0, 'a', -1), "negative to")
	assert.False(t, a.AddTransition(0, 'b', 1), "symbol not in alphabet")
	assert.False(t, a.AddTransition(5, 'a', 1), "unknown from")
	assert.False(t, a.AddTransition(0, 'a', 5), "unknown to")

	require.True(t, a.AddTransition(0, 'a', 1))
	assert.True(t, a.HasTransition(0, 'a', 1))
	assert.False(t, a.AddTransition(0, 'a', 1), "duplicate triple")
	assert.Equal(t, 1, a.CountTransitions())
}

func TestAddTransitionEpsilon(t *testing.T) {
	a := New()
	a.AddSymbol('a')
	a.AddState(0)
	a.AddState(1)
	require.True(t, a.AddTransition(0, Epsilon, 1))
	assert.True(t, a.HasTransition(0, Epsilon, 1))
}

func TestNondeterministicMultiEdge(t *testing.T) {
	a := New()
	a.AddSymbol('a')
	a.AddState(0)
	a.AddState(1)
	a.AddState(2)
	require.True(t, a.AddTransition(0, 'a', 1))
	require.True(t, a.AddTransition(0, 'a', 2))
	assert.Equal(t, 2, a.CountTransitions())
	assert.Len(t, a.Successors(0, 'a'), 2)
}

func TestRemoveTransition(t *testing.T) {
	a := New()
	a.AddSymbol('a')
	a.AddState(0)
	a.AddState(1)
	a.AddTransition(0, 'a', 1)

	require.True(t, a.RemoveTransition(0, 'a', 1))
	assert.False(t, a.HasTransition(0, 'a', 1))
	assert.False(t, a.RemoveTransition(0, 'a', 1), "already removed")
}
