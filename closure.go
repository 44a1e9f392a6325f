package atn

// ClosureContext carries the state threaded through one closure
// computation: the ATN it walks, whether it is building an SLL or LL
// config set, the join memo for context merges performed along the
// way, and a busy-set that stops the DFS from looping forever around
// an epsilon cycle that keeps reproducing an identical config.
type ClosureContext struct {
	ATN       *ATN
	FullCtx   bool
	Cache     *joinCache
	MaxDepth  int // 0 disables the outer-context depth cap (config.max_outer_context_depth)

	busy map[uint64]bool
}

// Closure computes the epsilon-closure of configs into a new set: every
// config already at a state with a non-epsilon transition is kept
// as-is (it's a reach candidate); every config at an epsilon-only
// state is replaced by the configs reachable by following its
// epsilon-like transitions, recursively.
func Closure(configs *ATNConfigSet, cc *ClosureContext) *ATNConfigSet {
	out := NewATNConfigSet(cc.FullCtx)
	cc.busy = make(map[uint64]bool)
	for _, c := range configs.Configs() {
		closureImpl(c, out, cc, 0)
	}
	return out
}

func closureImpl(config *ATNConfig, out *ATNConfigSet, cc *ClosureContext, depth int) {
	key := config.Hash()
	if cc.busy[key] {
		return
	}
	cc.busy[key] = true

	if config.State.Type == StateRuleStop {
		closureAtRuleStop(config, out, cc, depth)
		return
	}

	if !config.State.EpsilonOnly {
		out.Add(config, cc.Cache)
	}

	for _, t := range config.State.Transitions {
		if !t.IsEpsilon() {
			continue
		}
		next, stop := closureFollowEpsilon(config, t, cc, depth)
		if stop {
			continue
		}
		closureImpl(next, out, cc, depth)
	}
}

// closureFollowEpsilon advances config across one epsilon-like
// transition, returning the new config to recurse into.
func closureFollowEpsilon(config *ATNConfig, t Transition, cc *ClosureContext, depth int) (*ATNConfig, bool) {
	switch tt := t.(type) {
	case *EpsilonTransition:
		if tt.OutermostPrecedenceReturn >= 0 && tt.OutermostPrecedenceReturn == config.State.RuleIndex {
			nc := config.transform(tt.Target(), nil, true)
			nc.PrecedenceFilterSuppressed = true
			return nc, false
		}
		return config.transform(tt.Target(), nil, true), false

	case *RuleTransition:
		newContext := config.Context.GetChild(tt.FollowState.Number)
		nc := config.transform(tt.RuleStart, newContext, false)
		return nc, false

	case *PredicateTransition:
		nc := config.withSemanticContext(SemAnd(config.SemanticContext, SemPredicate(tt)))
		nc = nc.transform(tt.Target(), nil, true)
		return nc, false

	case *PrecedencePredicateTransition:
		nc := config.withSemanticContext(SemAnd(config.SemanticContext, SemPrecedencePredicate(tt)))
		nc = nc.transform(tt.Target(), nil, true)
		return nc, false

	case *ActionTransition:
		return config.transform(tt.Target(), nil, true), false
	}
	return nil, true
}

// closureAtRuleStop implements popping the prediction-context stack
// when a config reaches a rule's stop state: each
// (parent, returnState) edge of the context yields one continuation at
// the corresponding call site; an empty context means either the
// decision has fully resolved (LL) or the walk has "dipped into outer
// context" relative to where SLL started (SLL).
func closureAtRuleStop(config *ATNConfig, out *ATNConfigSet, cc *ClosureContext, depth int) {
	if !config.Context.IsEmpty() {
		for i := 0; i < config.Context.Size(); i++ {
			returnState := config.Context.GetReturnState(i)
			if returnState == EmptyReturnState {
				continue
			}
			followState := cc.ATN.States[returnState]
			parent := config.Context.GetParent(i)
			nc := config.transform(followState, parent, false)
			closureImpl(nc, out, cc, depth+1)
		}
		return
	}

	if cc.FullCtx {
		out.Add(config, cc.Cache)
		return
	}

	nc := *config
	if cc.MaxDepth == 0 || nc.ReachesIntoOuterContext < cc.MaxDepth {
		nc.ReachesIntoOuterContext++
	}
	out.Add(&nc, cc.Cache)
}

// Reach computes the config set reachable by consuming symbol from
// configs: every config whose state has a transition
// matching symbol advances across it; configs with no matching
// transition are dropped. The result still needs its own Closure pass
// before it is a complete decision-point config set: reach and closure
// interleave one input symbol at a time.
func Reach(configs *ATNConfigSet, symbol, minVocab, maxVocab int, cc *ClosureContext) *ATNConfigSet {
	out := NewATNConfigSet(cc.FullCtx)
	for _, c := range configs.Configs() {
		// A config already sitting at a rule-stop state (closure put it
		// there because its context bottomed out empty) has no outgoing
		// transition to reach across: it represents "this alternative is
		// already fully matched". It survives into the EOF symbol in SLL
		// mode (the implicit follow set at the true top level is {EOF})
		// and unconditionally in full-context mode, where closure has
		// already resolved the real follow set via context pops and
		// would only still show an empty bottom at genuine end of input.
		if c.State.Type == StateRuleStop {
			if cc.FullCtx || symbol == TokenEOF {
				out.Add(c, cc.Cache)
			}
			continue
		}
		for _, t := range c.State.Transitions {
			if t.IsEpsilon() {
				continue
			}
			if t.Matches(symbol, minVocab, maxVocab) {
				nc := c.transform(t.Target(), nil, true)
				out.Add(nc, cc.Cache)
				break
			}
		}
	}
	return out
}
