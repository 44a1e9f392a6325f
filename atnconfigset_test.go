package atn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(a *ATN, t StateType) *ATNState {
	return a.AddState(&ATNState{Type: t})
}

func TestATNConfigSet_AddMergesContextsOnKeyCollision(t *testing.T) {
	a := NewATN("g", 10)
	s := newTestState(a, StateBasic)

	cache := NewJoinCache()
	set := NewATNConfigSet(false)

	c1 := NewATNConfig(s, 1, EmptyLocal.GetChild(1))
	c2 := NewATNConfig(s, 1, EmptyLocal.GetChild(2))

	set.Add(c1, cache)
	set.Add(c2, cache)

	require.Equal(t, 1, set.Size(), "same (state,alt,semctx) key must merge, not duplicate")
	merged := set.Configs()[0]
	assert.Equal(t, 2, merged.Context.Size())
}

func TestATNConfigSet_UniqueAlt(t *testing.T) {
	a := NewATN("g", 10)
	s1 := newTestState(a, StateBasic)
	s2 := newTestState(a, StateBasic)

	set := NewATNConfigSet(false)
	set.Add(NewATNConfig(s1, 1, EmptyLocal), nil)
	set.Add(NewATNConfig(s2, 1, EmptyLocal), nil)
	assert.Equal(t, 1, set.UniqueAlt())

	set.Add(NewATNConfig(s2, 2, EmptyLocal), nil)
	assert.Equal(t, -1, set.UniqueAlt())
}

func TestATNConfigSet_GetConflictingAlts(t *testing.T) {
	a := NewATN("g", 10)
	s := newTestState(a, StateBasic)

	set := NewATNConfigSet(false)
	set.Add(NewATNConfig(s, 1, EmptyLocal), nil)
	set.Add(NewATNConfig(s, 2, EmptyLocal), nil)

	alts := set.GetConflictingAlts()
	require.NotNil(t, alts)
	assert.True(t, alts.Contains(1))
	assert.True(t, alts.Contains(2))
}

func TestATNConfigSet_GetConflictingAlts_DistinctContextsDoNotConflict(t *testing.T) {
	a := NewATN("g", 10)
	s := newTestState(a, StateBasic)

	set := NewATNConfigSet(false)
	set.Add(NewATNConfig(s, 1, EmptyLocal.GetChild(1)), nil)
	set.Add(NewATNConfig(s, 2, EmptyLocal.GetChild(2)), nil)

	assert.Nil(t, set.GetConflictingAlts())
}

func TestATNConfigSet_SealPreventsAdd(t *testing.T) {
	a := NewATN("g", 10)
	s := newTestState(a, StateBasic)
	set := NewATNConfigSet(false)
	set.Seal()
	ok := set.Add(NewATNConfig(s, 1, EmptyLocal), nil)
	assert.False(t, ok)
	assert.Equal(t, 0, set.Size())
}

func TestATNConfigSet_AllConfigsInRuleStopStates(t *testing.T) {
	a := NewATN("g", 10)
	stop := newTestState(a, StateRuleStop)
	basic := newTestState(a, StateBasic)

	set := NewATNConfigSet(false)
	set.Add(NewATNConfig(stop, 1, EmptyLocal), nil)
	assert.True(t, set.AllConfigsInRuleStopStates())

	set.Add(NewATNConfig(basic, 2, EmptyLocal), nil)
	assert.False(t, set.AllConfigsInRuleStopStates())
}
