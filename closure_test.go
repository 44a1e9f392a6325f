package atn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTwoAltDecision builds a decision state with two alternatives
// that each match a distinct atom, the simplest case Reach/Closure
// need to resolve unambiguously.
func buildTwoAltDecision(a *ATN, sym1, sym2 int) (decision *ATNState, stop *ATNState) {
	decision = newTestState(a, StateBlockStart)
	stop = newTestState(a, StateBasic)
	alt1 := newTestState(a, StateBasic)
	alt2 := newTestState(a, StateBasic)
	decision.AddTransition(NewEpsilonTransition(alt1))
	decision.AddTransition(NewEpsilonTransition(alt2))
	alt1.AddTransition(NewAtomTransition(stop, sym1))
	alt2.AddTransition(NewAtomTransition(stop, sym2))
	return decision, stop
}

func TestClosure_FollowsEpsilonToReachCandidates(t *testing.T) {
	a := NewATN("g", 10)
	decision, _ := buildTwoAltDecision(a, 1, 2)

	initial := NewATNConfigSet(false)
	initial.Add(NewATNConfig(decision, 1, EmptyLocal), nil)

	cc := &ClosureContext{ATN: a, FullCtx: false, Cache: NewJoinCache()}
	closed := Closure(initial, cc)

	require.Equal(t, 2, closed.Size())
}

func TestReach_DropsNonMatchingConfigs(t *testing.T) {
	a := NewATN("g", 10)
	decision, _ := buildTwoAltDecision(a, 1, 2)

	initial := NewATNConfigSet(false)
	initial.Add(NewATNConfig(decision, 1, EmptyLocal), nil)
	cc := &ClosureContext{ATN: a, FullCtx: false, Cache: NewJoinCache()}
	closed := Closure(initial, cc)

	reached := Reach(closed, 1, 0, 10, cc)
	require.Equal(t, 1, reached.Size())
	assert.Equal(t, 1, reached.Configs()[0].Alt)
}

func TestClosure_RuleTransitionPushesFollowState(t *testing.T) {
	a := NewATN("g", 10)

	calleeStart := newTestState(a, StateRuleStart)
	calleeStop := newTestState(a, StateRuleStop)
	a.DefineRule(0, calleeStart, calleeStop)
	calleeStart.AddTransition(NewAtomTransition(calleeStop, 99))

	callerFollow := newTestState(a, StateBasic)
	callerStart := newTestState(a, StateRuleStart)
	a.DefineRule(1, callerStart, newTestState(a, StateRuleStop))
	callerStart.AddTransition(NewRuleTransition(calleeStart, 0, -1, callerFollow))

	initial := NewATNConfigSet(false)
	initial.Add(NewATNConfig(callerStart, 1, EmptyLocal), nil)
	cc := &ClosureContext{ATN: a, FullCtx: false, Cache: NewJoinCache()}
	closed := Closure(initial, cc)

	// The only reach candidate should be the atom transition inside the
	// callee rule, with a context that still remembers to return to
	// callerFollow.
	require.Equal(t, 1, closed.Size())
	cfg := closed.Configs()[0]
	assert.Equal(t, calleeStart.Number, cfg.State.Number)
	require.Equal(t, 1, cfg.Context.Size())
	assert.Equal(t, callerFollow.Number, cfg.Context.GetReturnState(0))
}

func TestClosure_RuleStopWithEmptyContextDipsIntoOuterContext(t *testing.T) {
	a := NewATN("g", 10)
	stop := newTestState(a, StateRuleStop)

	initial := NewATNConfigSet(false)
	initial.Add(NewATNConfig(stop, 1, EmptyLocal), nil)
	cc := &ClosureContext{ATN: a, FullCtx: false, Cache: NewJoinCache()}
	closed := Closure(initial, cc)

	require.Equal(t, 1, closed.Size())
	assert.Equal(t, 1, closed.Configs()[0].ReachesIntoOuterContext)
	assert.True(t, closed.DipsIntoOuterContext())
}
