package atn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAltSet(t *testing.T) {
	s := NewAltSet()
	assert.True(t, s.IsEmpty())
	s.Add(3)
	s.Add(7)
	assert.False(t, s.IsEmpty())
	assert.True(t, s.Contains(3))
	assert.True(t, s.Contains(7))
	assert.False(t, s.Contains(4))
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, 3, s.MinAlt())

	var seen []int
	s.Each(func(alt int) { seen = append(seen, alt) })
	assert.Equal(t, []int{3, 7}, seen)
}

func TestGetUniqueAlt(t *testing.T) {
	a := NewATN("g", 10)
	s := newTestState(a, StateBasic)

	same := []*ATNConfig{NewATNConfig(s, 2, EmptyLocal), NewATNConfig(s, 2, EmptyLocal)}
	assert.Equal(t, 2, getUniqueAlt(same))

	mixed := []*ATNConfig{NewATNConfig(s, 1, EmptyLocal), NewATNConfig(s, 2, EmptyLocal)}
	assert.Equal(t, -1, getUniqueAlt(mixed))
}

func TestGetConflictingAlts(t *testing.T) {
	a := NewATN("g", 10)
	s1 := newTestState(a, StateBasic)
	s2 := newTestState(a, StateBasic)

	configs := []*ATNConfig{
		NewATNConfig(s1, 1, EmptyLocal),
		NewATNConfig(s1, 2, EmptyLocal),
		NewATNConfig(s2, 3, EmptyLocal),
	}
	alts := getConflictingAlts(configs)
	require.NotNil(t, alts)
	assert.True(t, alts.Contains(1))
	assert.True(t, alts.Contains(2))
	assert.False(t, alts.Contains(3))
}
