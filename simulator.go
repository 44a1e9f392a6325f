package atn

import "context"

// TokenStream is the minimal input surface AdaptivePredict needs: a
// cursor over token types with lookahead and mark/release/seek, the
// same shape tokenstream.go's concrete implementation provides.
// It is declared here, independent of that concrete type, so
// the simulator can be unit-tested against a fake stream.
type TokenStream interface {
	LA(i int) int
	Mark() int
	Release(marker int)
	Index() int
	Seek(index int)
}

// PredictionListener receives the advisory events AdaptivePredict can
// raise along the way; a nil listener is valid and means
// "report nothing".
type PredictionListener interface {
	ReportAmbiguity(info *AmbiguityInfo)
	ReportAttemptingFullContext(info *AttemptingFullContextInfo)
	ReportContextSensitivity(info *ContextSensitivityInfo)
}

// ParserSimulator runs the SLL-first, LL-on-conflict adaptive
// prediction algorithm against one ATN. One simulator is
// shared by every parser instance predicting through the same
// grammar; its DFAs and context cache are its only mutable state, and
// both are safe for concurrent use.
type ParserSimulator struct {
	ATN           *ATN
	DecisionToDFA []*DFA
	Contexts      *ContextCache
	Listener      PredictionListener
	Config        *Config

	evaluator PredicateEvaluator
}

// NewParserSimulator wires a simulator for atn, allocating one DFA per
// decision. evaluator resolves the application's semantic
// predicates; it may be nil if the grammar has none.
func NewParserSimulator(a *ATN, cfg *Config, evaluator PredicateEvaluator) *ParserSimulator {
	dfas := make([]*DFA, a.NumberOfDecisions())
	for i, ds := range a.DecisionToState {
		dfas[i] = NewDFA(ds)
	}
	return &ParserSimulator{
		ATN:           a,
		DecisionToDFA: dfas,
		Contexts:      NewContextCache(),
		Config:        cfg,
		evaluator:     evaluator,
	}
}

// AdaptivePredict resolves the alternative to take at decision,
// trying SLL first and only falling back to full-context LL
// simulation when SLL cannot resolve the ambiguity on its own.
// ctx must not be nil; callers outside a rule invocation pass
// context.Background().
func (s *ParserSimulator) AdaptivePredict(ctx context.Context, input TokenStream, decision int, outerContext *PredictionContext) (int, error) {
	dfa := s.DecisionToDFA[decision]
	startIndex := input.Index()

	// Prediction only looks ahead; it must never leave the stream
	// consumed past where it found it; the caller always resumes
	// ordinary one-token-at-a-time matching from startIndex.
	mark := input.Mark()
	defer func() {
		input.Seek(startIndex)
		input.Release(mark)
	}()

	s0 := dfa.S0()
	if s0 == nil {
		s0 = s.computeStartState(dfa, outerContext, false)
		s0 = dfa.SetS0(s0)
	}

	alt, conflicted, conflictConfigs, err := s.execATN(ctx, dfa, s0, input, startIndex)
	if err != nil {
		return 0, err
	}
	if !conflicted {
		return alt, nil
	}

	if s.Listener != nil {
		s.Listener.ReportAttemptingFullContext(&AttemptingFullContextInfo{
			Decision:   decision,
			StartIndex: startIndex,
			StopIndex:  input.Index(),
			Configs:    conflictConfigs,
		})
	}

	input.Seek(startIndex)
	return s.execFullContext(ctx, dfa, input, decision, startIndex, outerContext)
}

// execATN walks the SLL DFA, lazily constructing states and edges as
// needed, until it reaches an accept state or finds that the
// remaining alternatives conflict enough to need an LL retry.
// It returns conflicted=true (and the triggering config set)
// when SLL alone cannot distinguish the alternatives.
func (s *ParserSimulator) execATN(ctx context.Context, dfa *DFA, s0 *DFAState, input TokenStream, startIndex int) (alt int, conflicted bool, conflictConfigs *ATNConfigSet, err error) {
	previous := s0
	for {
		if err := ctx.Err(); err != nil {
			return 0, false, nil, err
		}

		if previous.IsAcceptState {
			if previous.PredicatesToEval != nil {
				a := s.evalAcceptPredicates(previous)
				return a, false, nil, nil
			}
			return previous.Prediction, false, nil, nil
		}

		symbol := input.LA(1)
		target := previous.Edge(symbol)
		if target == nil {
			var conf bool
			target, conf, err = s.computeTargetState(dfa, previous, symbol, false, 0)
			if err != nil {
				return 0, false, nil, err
			}
			if conf {
				return 0, true, target.Configs, nil
			}
			if target == nil {
				// SLL reach came up empty. This can mean the input is
				// genuinely invalid, but it can equally mean SLL's
				// context-free walk dipped into outer context and lost
				// the information needed to pick an alternative — only
				// a full-context retry, seeded with the caller's real
				// context, can tell the two apart.
				return 0, true, previous.Configs, nil
			}
			previous.SetEdge(symbol, target)
		}
		input.Seek(input.Index() + 1)
		previous = target
	}
}

// execFullContext re-simulates the same decision from scratch in full
// LL mode, seeding the starting context from the parser's actual call
// stack rather than the SLL EMPTY_LOCAL wildcard. It always
// runs to either a single surviving alternative (reporting context
// sensitivity whenever one alternative survives, without comparing it
// to the alternative SLL would have chosen) or a genuine ambiguity
// (reporting it with Exact=true and predicting the minimum
// alternative, the conventional ANTLR resolution policy).
func (s *ParserSimulator) execFullContext(ctx context.Context, dfa *DFA, input TokenStream, decision, startIndex int, outerContext *PredictionContext) (int, error) {
	s0Full := dfa.S0Full()
	if s0Full == nil {
		s0Full = s.computeStartState(dfa, outerContext, true)
		s0Full = dfa.SetS0Full(s0Full)
	}

	configs := s0Full.Configs
	cache := NewJoinCache()
	cc := &ClosureContext{ATN: s.ATN, FullCtx: true, Cache: cache}

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if configs.AllConfigsInRuleStopStates() || configs.UniqueAlt() != -1 {
			break
		}
		symbol := input.LA(1)
		reached := Reach(configs, symbol, 0, s.ATN.MaxTokenType, cc)
		if reached.IsEmpty() {
			return 0, &NoViableAltError{Decision: decision, StartIndex: startIndex, OffendingIdx: input.Index(), Configs: configs}
		}
		configs = Closure(reached, cc)
		input.Seek(input.Index() + 1)

		if alts := configs.GetConflictingAlts(); alts != nil && alts.Count() > 1 {
			exact := isExactConflict(configs, alts)
			if exact {
				break
			}
		}
	}

	alts := configs.RepresentedAlternatives()
	predicted := alts.MinAlt()

	if alts.Count() > 1 {
		if s.Listener != nil {
			s.Listener.ReportAmbiguity(&AmbiguityInfo{
				Decision:   decision,
				StartIndex: startIndex,
				StopIndex:  input.Index(),
				Exact:      true,
				AmbigAlts:  alts,
				Configs:    configs,
			})
		}
		return predicted, nil
	}

	if s.Listener != nil {
		s.Listener.ReportContextSensitivity(&ContextSensitivityInfo{
			Decision:     decision,
			StartIndex:   startIndex,
			StopIndex:    input.Index(),
			PredictedAlt: predicted,
			Configs:      configs,
		})
	}
	return predicted, nil
}

// isExactConflict reports whether every alternative still represented
// in configs is among the conflicting set, i.e. there is no
// alternative quietly winning outright.
func isExactConflict(configs *ATNConfigSet, alts *AltSet) bool {
	represented := configs.RepresentedAlternatives()
	return represented.Count() == alts.Count()
}

// computeStartState builds the initial config set for a decision: one
// config per alternative, at each alternative's target state, with a
// context derived from outerContext. SLL closures bottom out
// at EMPTY_LOCAL so the resulting DFA is reusable from any calling
// context; LL closures carry the real caller chain.
func (s *ParserSimulator) computeStartState(dfa *DFA, outerContext *PredictionContext, fullCtx bool) *DFAState {
	initial := NewATNConfigSet(fullCtx)
	baseCtx := EmptyLocal
	if fullCtx {
		baseCtx = outerContext
		if baseCtx == nil {
			baseCtx = EmptyFull
		}
	}
	cache := NewJoinCache()
	cc := &ClosureContext{ATN: s.ATN, FullCtx: fullCtx, Cache: cache}
	cc.busy = make(map[uint64]bool)
	for i, t := range dfa.Decision.Transitions {
		alt := i + 1
		config := NewATNConfig(t.Target(), alt, baseCtx)
		closureImpl(config, initial, cc, 0)
	}
	return NewDFAState(initial)
}

// computeTargetState computes (and interns into dfa) the DFAState
// reached from previous by consuming symbol: reach followed by
// closure, then flagged as an SLL conflict needing LL retry if
// alternatives conflict (SLL only), or classified as an accept state
// if exactly one alternative survives or every config is at a rule
// stop (predicting the first config's alternative). No predicate
// filtering is applied.
func (s *ParserSimulator) computeTargetState(dfa *DFA, previous *DFAState, symbol int, fullCtx bool, precedence int) (target *DFAState, conflicted bool, err error) {
	cache := NewJoinCache()
	cc := &ClosureContext{ATN: s.ATN, FullCtx: fullCtx, Cache: cache}

	reached := Reach(previous.Configs, symbol, 0, s.ATN.MaxTokenType, cc)
	if reached.IsEmpty() {
		return nil, false, nil
	}
	closed := Closure(reached, cc)

	if alts := closed.GetConflictingAlts(); alts != nil && alts.Count() > 1 && !fullCtx {
		candidate := NewDFAState(closed)
		return dfa.GetOrAdd(candidate), true, nil
	}

	candidate := NewDFAState(closed)
	if uniq := closed.UniqueAlt(); uniq != -1 {
		candidate.IsAcceptState = true
		candidate.Prediction = uniq
	} else if closed.AllConfigsInRuleStopStates() {
		candidate.IsAcceptState = true
		candidate.Prediction = closed.Configs()[0].Alt
	}
	return dfa.GetOrAdd(candidate), false, nil
}

// evalAcceptPredicates resolves a predicated accept state by
// evaluating each guard in order and returning the first alternative
// whose predicate holds.
func (s *ParserSimulator) evalAcceptPredicates(state *DFAState) int {
	if s.evaluator == nil {
		return state.Prediction
	}
	for _, pp := range state.PredicatesToEval {
		if pp.Pred.Eval(s.evaluator) {
			return pp.Alt
		}
	}
	return state.Prediction
}
