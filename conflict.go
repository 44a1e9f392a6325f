package atn

import "github.com/bits-and-blooms/bitset"

// AltSet is a bitset over alternative numbers (1-based, bit 0 unused)
// used wherever the simulator needs to track "which alternatives are
// still alive" without the allocation cost of a map.
type AltSet struct {
	bits *bitset.BitSet
}

func NewAltSet() *AltSet { return &AltSet{bits: bitset.New(64)} }

func (s *AltSet) Add(alt int)      { s.bits.Set(uint(alt)) }
func (s *AltSet) Contains(alt int) bool { return s.bits.Test(uint(alt)) }
func (s *AltSet) Count() int       { return int(s.bits.Count()) }
func (s *AltSet) IsEmpty() bool    { return s.bits.Count() == 0 }

// MinAlt returns the smallest set alternative, or -1 if empty.
func (s *AltSet) MinAlt() int {
	i, ok := s.bits.NextSet(0)
	if !ok {
		return -1
	}
	return int(i)
}

// Each calls fn with every set alternative in ascending order.
func (s *AltSet) Each(fn func(alt int)) {
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		fn(int(i))
	}
}

func (s *AltSet) Clone() *AltSet {
	return &AltSet{bits: s.bits.Clone()}
}

// ConflictInfo summarizes a conflict found while computing
// alt-set-per-input-position reachability over a config set.
// Exact distinguishes a conflict where every alternative still alive
// predicts on every remaining input symbol (a genuine ambiguity) from
// one found only by the heuristic SLL "possible" check.
type ConflictInfo struct {
	Alts  *AltSet
	Exact bool
}

// getConflictingAlts computes, for a config set already partitioned by
// (state, context) equivalence, which alternatives are in conflict:
// more than one alternative reaches the same (state, context) pair.
// Semantic contexts are not consulted, so predicates do not separate
// otherwise-conflicting configs. It groups configs by
// (state, context) directly rather than building a separate
// alt-to-configs index, since "same state+context implies conflict
// between their alts" is all the structure that's needed.
func getConflictingAlts(configs []*ATNConfig) *AltSet {
	type stateCtx struct {
		state int
		ctx   uint64
	}
	seen := make(map[stateCtx]*AltSet)
	for _, c := range configs {
		var ctxHash uint64
		if c.Context != nil {
			ctxHash = c.Context.Hash()
		}
		k := stateCtx{state: c.State.Number, ctx: ctxHash}
		alts, ok := seen[k]
		if !ok {
			alts = NewAltSet()
			seen[k] = alts
		}
		alts.Add(c.Alt)
	}
	result := NewAltSet()
	for _, alts := range seen {
		if alts.Count() > 1 {
			alts.Each(result.Add)
		}
	}
	if result.IsEmpty() {
		return nil
	}
	return result
}

// getUniqueAlt returns the single alternative every config in configs
// predicts, or -1 if more than one alternative is present.
func getUniqueAlt(configs []*ATNConfig) int {
	alt := -1
	for _, c := range configs {
		if alt == -1 {
			alt = c.Alt
		} else if alt != c.Alt {
			return -1
		}
	}
	return alt
}

// allConfigsInRuleStopStates reports whether every config has come to
// rest on a rule-stop state: the decision is fully resolved by falling
// off the end of every alternative, with no wildcard alternative left
// to distinguish.
func allConfigsInRuleStopStates(configs []*ATNConfig) bool {
	for _, c := range configs {
		if c.State.Type != StateRuleStop {
			return false
		}
	}
	return true
}
