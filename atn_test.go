package atn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestATN_AddStateAssignsSequentialNumbers(t *testing.T) {
	a := NewATN("g", 10)
	s0 := a.AddState(&ATNState{Type: StateBasic})
	s1 := a.AddState(&ATNState{Type: StateBasic})
	assert.Equal(t, 0, s0.Number)
	assert.Equal(t, 1, s1.Number)
	assert.Len(t, a.States, 2)
}

func TestATN_AddStateRegistersDecisionStates(t *testing.T) {
	a := NewATN("g", 10)
	s := a.AddState(&ATNState{Type: StateDecision, DecisionIndex: -1})
	require.Len(t, a.DecisionToState, 1)
	assert.Same(t, s, a.DecisionToState[0].ATNState)
	assert.Equal(t, 1, a.NumberOfDecisions())
}

func TestATN_DefineRuleWiresStartAndStop(t *testing.T) {
	a := NewATN("g", 10)
	start := a.AddState(&ATNState{Type: StateRuleStart})
	stop := a.AddState(&ATNState{Type: StateRuleStop})
	a.DefineRule(0, start, stop)

	assert.Same(t, start, a.RuleToStartState[0])
	assert.Same(t, stop, a.RuleToStopState[0])
	assert.Equal(t, 0, start.RuleIndex)
	assert.Equal(t, 0, stop.RuleIndex)
}

func TestATNState_AddTransition_EpsilonOnlyTracksAllEdges(t *testing.T) {
	s := &ATNState{Type: StateBasic}
	target := &ATNState{Type: StateBasic}

	s.AddTransition(NewEpsilonTransition(target))
	assert.True(t, s.EpsilonOnly)

	s.AddTransition(NewAtomTransition(target, 5))
	assert.False(t, s.EpsilonOnly)
}
