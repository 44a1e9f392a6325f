package atn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalSet_AddRange(t *testing.T) {
	tests := []struct {
		name   string
		ranges [][2]int
		want   string
	}{
		{
			name:   "disjoint ranges stay separate",
			ranges: [][2]int{{0, 2}, {10, 12}},
			want:   "{0..2, 10..12}",
		},
		{
			name:   "adjacent ranges merge",
			ranges: [][2]int{{0, 2}, {3, 5}},
			want:   "{0..5}",
		},
		{
			name:   "overlapping ranges merge",
			ranges: [][2]int{{0, 5}, {3, 8}},
			want:   "{0..8}",
		},
		{
			name:   "out of order insertion still sorts",
			ranges: [][2]int{{10, 12}, {0, 2}, {5, 6}},
			want:   "{0..2, 5..6, 10..12}",
		},
		{
			name:   "new range absorbs multiple existing ones",
			ranges: [][2]int{{0, 1}, {3, 4}, {6, 7}, {0, 7}},
			want:   "{0..7}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewIntervalSet()
			for _, r := range tt.ranges {
				s.AddRange(r[0], r[1])
			}
			assert.Equal(t, tt.want, s.String())
		})
	}
}

func TestIntervalSet_Contains(t *testing.T) {
	s := IntervalSetOfRange('a', 'z')
	s.AddRange('0', '9')

	assert.True(t, s.Contains('m'))
	assert.True(t, s.Contains('5'))
	assert.False(t, s.Contains('_'))
	assert.False(t, s.Contains('A'))
}

func TestIntervalSet_Complement(t *testing.T) {
	s := IntervalSetOfRange(2, 4)
	comp := s.Complement(0, 6)
	require.Equal(t, "{0..1, 5..6}", comp.String())
}

func TestIntervalSet_Or(t *testing.T) {
	a := IntervalSetOfRange(0, 2)
	b := IntervalSetOfRange(5, 7)
	assert.Equal(t, "{0..2, 5..7}", a.Or(b).String())
}

func TestIntervalSet_IsEmpty(t *testing.T) {
	s := NewIntervalSet()
	assert.True(t, s.IsEmpty())
	s.AddOne(1)
	assert.False(t, s.IsEmpty())
}
