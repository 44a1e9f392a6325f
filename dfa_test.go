package atn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestDFA_GetOrAddInterns(t *testing.T) {
	a := NewATN("g", 10)
	ds := &DecisionState{ATNState: newTestState(a, StateDecision)}
	dfa := NewDFA(ds)

	s := newTestState(a, StateBasic)
	configsA := NewATNConfigSet(false)
	configsA.Add(NewATNConfig(s, 1, EmptyLocal), nil)
	configsB := NewATNConfigSet(false)
	configsB.Add(NewATNConfig(s, 1, EmptyLocal), nil)

	got1 := dfa.GetOrAdd(NewDFAState(configsA))
	got2 := dfa.GetOrAdd(NewDFAState(configsB))

	assert.Same(t, got1, got2, "structurally equal config sets must intern to the same DFAState")
	assert.Equal(t, 1, dfa.NumStates())
}

func TestDFA_GetOrAdd_ConcurrentIdenticalInputsCollapse(t *testing.T) {
	a := NewATN("g", 10)
	ds := &DecisionState{ATNState: newTestState(a, StateDecision)}
	dfa := NewDFA(ds)
	s := newTestState(a, StateBasic)

	var g errgroup.Group
	results := make([]*DFAState, 32)
	for i := 0; i < 32; i++ {
		i := i
		g.Go(func() error {
			configs := NewATNConfigSet(false)
			configs.Add(NewATNConfig(s, 1, EmptyLocal), nil)
			results[i] = dfa.GetOrAdd(NewDFAState(configs))
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := 1; i < len(results); i++ {
		assert.Same(t, results[0], results[i])
	}
	assert.Equal(t, 1, dfa.NumStates())
}

func TestDFA_S0SetOnce(t *testing.T) {
	a := NewATN("g", 10)
	ds := &DecisionState{ATNState: newTestState(a, StateDecision)}
	dfa := NewDFA(ds)

	s1 := NewDFAState(NewATNConfigSet(false))
	s2 := NewDFAState(NewATNConfigSet(false))

	got1 := dfa.SetS0(s1)
	got2 := dfa.SetS0(s2)
	assert.Same(t, s1, got1)
	assert.Same(t, s1, got2, "second SetS0 must not replace an already-installed s0")
	assert.Same(t, s1, dfa.S0())
}

func TestDFA_PrecedenceS0(t *testing.T) {
	a := NewATN("g", 10)
	ds := &DecisionState{ATNState: newTestState(a, StateDecision)}
	dfa := NewDFA(ds)
	dfa.PrecedenceDfa = true

	assert.Nil(t, dfa.S0AtPrecedence(3))
	s := NewDFAState(NewATNConfigSet(false))
	dfa.SetS0AtPrecedence(3, s)
	assert.Same(t, s, dfa.S0AtPrecedence(3))
	assert.Nil(t, dfa.S0AtPrecedence(1))
}

func TestDFAState_EdgeConcurrentWrites(t *testing.T) {
	state := NewDFAState(NewATNConfigSet(false))
	targets := make([]*DFAState, 16)
	for i := range targets {
		targets[i] = NewDFAState(NewATNConfigSet(false))
	}

	var g errgroup.Group
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			state.SetEdge(i, target)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 16, state.EdgeCount())
	for i, target := range targets {
		assert.Same(t, target, state.Edge(i))
	}
}
