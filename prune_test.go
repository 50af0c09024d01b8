package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveNonAccessibleStates(t *testing.T) {
	a := New()
	a.AddSymbol('a')
	a.AddState(0)
	a.AddState(1)
	a.AddState(2) // unreachable
	a.SetStateInitial(0)
	a.SetStateFinal(1)
	a.AddTransition(0, 'a', 1)

	a.RemoveNonAccessibleStates()
	assert.True(t, a.HasState(0))
	assert.True(t, a.HasState(1))
	assert.False(t, a.HasState(2))
}

func TestRemoveNonCoAccessibleStates(t *testing.T) {
	a := New()
	a.AddSymbol('a')
	a.AddState(0)
	a.AddState(1)
	a.AddState(2) // dead end, cannot reach final
	a.SetStateInitial(0)
	a.SetStateFinal(1)
	a.AddTransition(0, 'a', 1)
	a.AddTransition(0, 'a', 2)
	a.AddTransition(2, 'a', 2) // cyclic dead end

	a.RemoveNonCoAccessibleStates()
	assert.True(t, a.HasState(0))
	assert.True(t, a.HasState(1))
	assert.False(t, a.HasState(2))
}

func TestRemoveNonAccessibleStatesStubRecovery(t *testing.T) {
	a := New()
	a.AddSymbol('a')
	a.AddState(0) // no initial state at all: nothing is accessible
	a.AddState(1)

	a.RemoveNonAccessibleStates()
	require.True(t, a.IsValid())
	assert.True(t, a.IsLanguageEmpty())
	assert.Equal(t, 1, a.CountStates())
}

func TestRemoveNonCoAccessibleStatesStubRecovery(t *testing.T) {
	a := New()
	a.AddSymbol('a')
	a.AddState(0) // no final state at all
	a.SetStateInitial(0)

	a.RemoveNonCoAccessibleStates()
	require.True(t, a.IsValid())
	assert.True(t, a.IsLanguageEmpty())
}
