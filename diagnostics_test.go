package atn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpDFA_RendersStatesAndEdges(t *testing.T) {
	a := NewATN("g", 10)
	ds := &DecisionState{ATNState: newTestState(a, StateDecision)}
	dfa := NewDFA(ds)

	s0 := NewDFAState(NewATNConfigSet(false))
	s1Configs := NewATNConfigSet(false)
	s1Configs.Add(NewATNConfig(newTestState(a, StateBasic), 2, EmptyLocal), nil)
	s1 := NewDFAState(s1Configs)
	s1.IsAcceptState = true
	s1.Prediction = 2
	s0.SetEdge(7, s1)

	dfa.SetS0(dfa.GetOrAdd(s0))
	dfa.GetOrAdd(s1)

	out := DumpDFA(dfa)
	assert.Contains(t, out, "decision 0")
	assert.Contains(t, out, "7->s")
	assert.Contains(t, out, "alt=2")
	assert.Contains(t, out, "*")
}

func TestDumpDFA_EmptyDFA(t *testing.T) {
	a := NewATN("g", 10)
	ds := &DecisionState{ATNState: newTestState(a, StateDecision)}
	dfa := NewDFA(ds)

	out := DumpDFA(dfa)
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "┘")
}
