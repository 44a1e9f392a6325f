package atn

import (
	"fmt"
	"sort"
	"strings"
)

// Interval is an inclusive [Start,Stop] range of symbol codes (token
// types or Unicode code points, depending on context).
type Interval struct {
	Start, Stop int
}

func (i Interval) contains(v int) bool { return v >= i.Start && v <= i.Stop }

func (i Interval) String() string {
	if i.Start == i.Stop {
		return fmt.Sprintf("%d", i.Start)
	}
	return fmt.Sprintf("%d..%d", i.Start, i.Stop)
}

// IntervalSet is a sorted, non-overlapping list of Intervals. It backs
// set/range/not-set transitions in the ATN. Mutation always
// returns a set whose intervals are merged and sorted; the zero value
// is the empty set.
type IntervalSet struct {
	intervals []Interval
}

func NewIntervalSet() *IntervalSet { return &IntervalSet{} }

func IntervalSetOf(vs ...int) *IntervalSet {
	s := NewIntervalSet()
	for _, v := range vs {
		s.AddOne(v)
	}
	return s
}

func IntervalSetOfRange(start, stop int) *IntervalSet {
	return &IntervalSet{intervals: []Interval{{Start: start, Stop: stop}}}
}

func (s *IntervalSet) AddOne(v int) { s.AddRange(v, v) }

// AddRange merges [start,stop] into the set: every existing interval
// that overlaps or touches it is absorbed into one merged interval,
// then the result is spliced back in sorted order. IntervalSets stay
// small (a handful of intervals per transition) so this is a plain
// linear merge rather than a balanced-tree structure.
func (s *IntervalSet) AddRange(start, stop int) {
	if start > stop {
		start, stop = stop, start
	}
	add := Interval{Start: start, Stop: stop}
	out := make([]Interval, 0, len(s.intervals)+1)
	inserted := false
	for _, iv := range s.intervals {
		switch {
		case iv.Stop+1 < add.Start:
			out = append(out, iv)
		case iv.Start-1 > add.Stop:
			if !inserted {
				out = append(out, add)
				inserted = true
			}
			out = append(out, iv)
		default:
			if iv.Start < add.Start {
				add.Start = iv.Start
			}
			if iv.Stop > add.Stop {
				add.Stop = iv.Stop
			}
		}
	}
	if !inserted {
		out = append(out, add)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	s.intervals = out
}

func (s *IntervalSet) Contains(v int) bool {
	i := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].Stop >= v
	})
	return i < len(s.intervals) && s.intervals[i].contains(v)
}

func (s *IntervalSet) IsEmpty() bool { return len(s.intervals) == 0 }

func (s *IntervalSet) Len() int {
	n := 0
	for _, iv := range s.intervals {
		n += iv.Stop - iv.Start + 1
	}
	return n
}

func (s *IntervalSet) Intervals() []Interval { return s.intervals }

func (s *IntervalSet) Or(other *IntervalSet) *IntervalSet {
	out := NewIntervalSet()
	out.intervals = append(out.intervals, s.intervals...)
	for _, iv := range other.intervals {
		out.AddRange(iv.Start, iv.Stop)
	}
	return out
}

// Complement returns the intervals of [min,max] not covered by s.
func (s *IntervalSet) Complement(min, max int) *IntervalSet {
	out := NewIntervalSet()
	cur := min
	for _, iv := range s.intervals {
		if iv.Start > cur {
			out.AddRange(cur, iv.Start-1)
		}
		if iv.Stop+1 > cur {
			cur = iv.Stop + 1
		}
	}
	if cur <= max {
		out.AddRange(cur, max)
	}
	return out
}

func (s *IntervalSet) String() string {
	parts := make([]string, len(s.intervals))
	for i, iv := range s.intervals {
		parts[i] = iv.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
