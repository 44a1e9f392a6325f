package atn

// ATNConfigSet is the mutable-then-sealed set of configs tracked at a
// single decision point during closure/reach. Configs are
// deduplicated by (state, alt, semantic context) — the prediction
// context of a colliding config is *joined* with the existing one
// rather than discarded, which is how graph-structured stacks let an
// exponential call-stack space collapse into a polynomial config set.
type ATNConfigSet struct {
	configs []*ATNConfig
	index   map[configKey]int // key -> position in configs, for merge-on-add

	// FullCtx marks a set built during LL (full-context) simulation, as
	// opposed to SLL; it controls which PredictionContext singletons
	// new configs bottom out at.
	FullCtx bool

	readOnly bool

	hasSemanticContext   bool
	dipsIntoOuterContext bool

	// conflictInfo is computed lazily by GetConflictingAlts and then
	// cached; Add invalidates it.
	conflictInfo    *ConflictInfo
	conflictDirty   bool
	uniqueAlt       int
	uniqueAltDirty  bool
}

func NewATNConfigSet(fullCtx bool) *ATNConfigSet {
	return &ATNConfigSet{
		index:          make(map[configKey]int),
		FullCtx:        fullCtx,
		uniqueAlt:      -1,
		uniqueAltDirty: true,
		conflictDirty:  true,
	}
}

// Add inserts config, merging it with any existing config sharing its
// (state, alt, semantic context) key by joining their prediction
// contexts. cache is the per-prediction-call join memo; it may be nil
// outside a Join-heavy loop. Returns false if the set is sealed.
func (s *ATNConfigSet) Add(config *ATNConfig, cache *joinCache) bool {
	if s.readOnly {
		return false
	}
	s.conflictDirty = true
	s.uniqueAltDirty = true
	if config.ReachesIntoOuterContext > 0 {
		s.dipsIntoOuterContext = true
	}
	if config.SemanticContext != nil {
		s.hasSemanticContext = true
	}

	key := config.key()
	if i, ok := s.index[key]; ok {
		existing := s.configs[i]
		merged := Join(existing.Context, config.Context, cache)
		if merged != existing.Context {
			nc := *existing
			nc.Context = merged
			if config.ReachesIntoOuterContext > existing.ReachesIntoOuterContext {
				nc.ReachesIntoOuterContext = config.ReachesIntoOuterContext
			}
			s.configs[i] = &nc
		}
		return true
	}

	s.index[key] = len(s.configs)
	s.configs = append(s.configs, config)
	return true
}

// AddAll adds every config of other to s.
func (s *ATNConfigSet) AddAll(other *ATNConfigSet, cache *joinCache) {
	for _, c := range other.configs {
		s.Add(c, cache)
	}
}

func (s *ATNConfigSet) Seal() { s.readOnly = true }
func (s *ATNConfigSet) IsReadOnly() bool { return s.readOnly }

func (s *ATNConfigSet) Size() int        { return len(s.configs) }
func (s *ATNConfigSet) IsEmpty() bool    { return len(s.configs) == 0 }
func (s *ATNConfigSet) Configs() []*ATNConfig { return s.configs }

func (s *ATNConfigSet) HasSemanticContext() bool   { return s.hasSemanticContext }
func (s *ATNConfigSet) DipsIntoOuterContext() bool { return s.dipsIntoOuterContext }

// UniqueAlt returns the single alternative shared by every config in
// the set, or -1 if more than one alternative is represented.
func (s *ATNConfigSet) UniqueAlt() int {
	if s.uniqueAltDirty {
		s.uniqueAlt = getUniqueAlt(s.configs)
		s.uniqueAltDirty = false
	}
	return s.uniqueAlt
}

// GetConflictingAlts computes which alternatives are in conflict;
// the result is cached until the next Add.
func (s *ATNConfigSet) GetConflictingAlts() *AltSet {
	if s.conflictDirty {
		s.conflictInfo = nil
		if alts := getConflictingAlts(s.configs); alts != nil {
			s.conflictInfo = &ConflictInfo{Alts: alts}
		}
		s.conflictDirty = false
	}
	if s.conflictInfo == nil {
		return nil
	}
	return s.conflictInfo.Alts
}

// RepresentedAlternatives returns the set of every alternative number
// present in the set, regardless of conflict.
func (s *ATNConfigSet) RepresentedAlternatives() *AltSet {
	out := NewAltSet()
	for _, c := range s.configs {
		out.Add(c.Alt)
	}
	return out
}

// AllConfigsInRuleStopStates reports whether every config has reached
// a rule-stop state.
func (s *ATNConfigSet) AllConfigsInRuleStopStates() bool {
	return allConfigsInRuleStopStates(s.configs)
}

// Filter returns a new, unsealed config set containing only the
// configs for which keep returns true. The simulators do not call it;
// no precedence predicate filter is applied.
func (s *ATNConfigSet) Filter(keep func(*ATNConfig) bool) *ATNConfigSet {
	out := NewATNConfigSet(s.FullCtx)
	for _, c := range s.configs {
		if keep(c) {
			out.Add(c, nil)
		}
	}
	return out
}

// Contains reports whether an equal config (full structural equality,
// not just key equality) is already present. Closure does not use it:
// its already-visited check is a separate busy set keyed by
// ATNConfig.Hash.
func (s *ATNConfigSet) Contains(config *ATNConfig) bool {
	key := config.key()
	i, ok := s.index[key]
	if !ok {
		return false
	}
	return s.configs[i].Context != nil && config.Context != nil && s.configs[i].Context.Equals(config.Context)
}
