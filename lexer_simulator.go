package atn

// LexerCharStream is the minimal input surface the lexer mode DFA
// simulator needs; a concrete code-point-correct implementation lives
// elsewhere, and this interface lets the simulator be tested without
// it.
type LexerCharStream interface {
	LA(i int) int
	Consume()
	Index() int
	Seek(index int)
}

// LexerSimulator runs maximal-munch mode DFA simulation: one
// DFA per lexer mode, walked character by character, remembering the
// most recent accept state crossed so that on a dead end the lexer
// can roll back to the longest match found rather than the longest
// attempt.
type LexerSimulator struct {
	ATN           *ATN
	ModeToDFA     []*DFA
	ActionCache   *LexerActionExecutorCache
	CurrentMode   int
}

// NewLexerSimulator wires a simulator for atn's lexer modes.
func NewLexerSimulator(a *ATN) *LexerSimulator {
	dfas := make([]*DFA, len(a.ModeToStartState))
	for i, start := range a.ModeToStartState {
		ds := &DecisionState{ATNState: start}
		dfas[i] = NewDFA(ds)
	}
	return &LexerSimulator{ATN: a, ModeToDFA: dfas, ActionCache: NewLexerActionExecutorCache()}
}

// lexerMatch is the outcome of one Match call: the token type to emit
// and the actions, if any, to run for it.
type lexerMatch struct {
	TokenType int
	Actions   *LexerActionExecutor
}

// Match simulates the current mode's DFA over input starting at its
// current position, consuming exactly the longest prefix that matches
// any lexer rule in this mode, and returns the winning rule's token
// type and actions. Ties between rules that match the same length are
// broken in favor of the rule declared first: markAcceptState picks
// the lowest alternative among the configs at a rule stop, and the
// remembered accept is only replaced on a strictly longer match.
func (l *LexerSimulator) Match(input LexerCharStream, mode int) (lexerMatch, error) {
	dfa := l.ModeToDFA[mode]
	s0 := dfa.S0()
	if s0 == nil {
		s0 = l.computeStartState(dfa)
		s0 = dfa.SetS0(s0)
	}

	startIndex := input.Index()
	previous := s0
	var lastAccept *DFAState
	lastAcceptIndex := -1

	for {
		if previous.IsAcceptState {
			lastAccept = previous
			lastAcceptIndex = input.Index()
		}

		symbol := input.LA(1)
		if symbol == -1 { // EOF
			break
		}
		target := previous.Edge(symbol)
		if target == nil {
			var err error
			target, err = l.computeTargetState(dfa, previous, symbol)
			if err != nil {
				return lexerMatch{}, err
			}
			previous.SetEdge(symbol, target)
		}
		if target == nil {
			break
		}
		input.Consume()
		previous = target
	}

	if lastAccept == nil {
		input.Seek(startIndex)
		return lexerMatch{}, &NoViableAltError{Decision: dfa.Decision.DecisionIndex, StartIndex: startIndex, OffendingIdx: input.Index()}
	}
	input.Seek(lastAcceptIndex)
	return lexerMatch{TokenType: lastAccept.Prediction, Actions: lastAccept.LexerActionExecutor}, nil
}

func (l *LexerSimulator) computeStartState(dfa *DFA) *DFAState {
	initial := NewATNConfigSet(false)
	cc := &ClosureContext{ATN: l.ATN, FullCtx: false, Cache: NewJoinCache()}
	cc.busy = make(map[uint64]bool)
	for i, t := range dfa.Decision.Transitions {
		config := NewATNConfig(t.Target(), i+1, EmptyLocal)
		closureImpl(config, initial, cc, 0)
	}
	return l.markAcceptState(NewDFAState(Closure(initial, cc)))
}

func (l *LexerSimulator) computeTargetState(dfa *DFA, previous *DFAState, symbol int) (*DFAState, error) {
	cc := &ClosureContext{ATN: l.ATN, FullCtx: false, Cache: NewJoinCache()}
	reached := Reach(previous.Configs, symbol, 0, l.ATN.MaxTokenType, cc)
	if reached.IsEmpty() {
		return nil, nil
	}
	closed := Closure(reached, cc)
	candidate := l.markAcceptState(NewDFAState(closed))
	return dfa.GetOrAdd(candidate), nil
}

// markAcceptState picks the winning alternative for a lexer config
// set, if any config has reached its rule's stop state: the lowest
// alternative number wins (earlier-declared rule). Configs marked
// PassedThroughNonGreedyDecision are noted but do not change the
// choice: no non-greedy suppression is applied, so `.*?` is matched
// the same way as `.*`.
func (l *LexerSimulator) markAcceptState(state *DFAState) *DFAState {
	bestAlt := -1
	var bestConfig *ATNConfig
	nonGreedyStop := false
	for _, c := range state.Configs.Configs() {
		if c.State.Type != StateRuleStop {
			continue
		}
		if bestAlt == -1 || c.Alt < bestAlt {
			bestAlt = c.Alt
			bestConfig = c
		}
		if c.PassedThroughNonGreedyDecision {
			nonGreedyStop = true
		}
	}
	if bestAlt == -1 {
		return state
	}
	state.IsAcceptState = true
	state.Prediction = bestAlt
	if bestConfig != nil {
		state.LexerActionExecutor = bestConfig.LexerActionExecutor
	}
	_ = nonGreedyStop
	return state
}
