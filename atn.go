package atn

// StateType identifies the role an ATNState plays in the grammar's
// state graph.
type StateType int

const (
	StateBasic StateType = iota
	StateRuleStart
	StateRuleStop
	StateBlockStart
	StatePlusLoopBack
	StateStarLoopBack
	StateStarLoopEntry
	StateLoopEnd
	StateTokensStart
	StateDecision
)

// InvalidStateNumber marks an ATNState not yet assigned a number, and
// is also used as the sentinel "no follow state" value.
const InvalidStateNumber = -1

// ATNState is one node of the frozen ATN graph. RuleIndex identifies
// which grammar rule the state belongs to; DecisionIndex is set only
// on decision states (>=0) and indexes into ATN.DecisionToState.
type ATNState struct {
	Number        int
	Type          StateType
	RuleIndex     int
	DecisionIndex int
	Transitions   []Transition

	// EpsilonOnly is true when every outgoing transition is an
	// epsilon-like transition (epsilon/rule/predicate/action/
	// precedence-predicate); closure() uses it to short-circuit.
	EpsilonOnly bool

	// NonGreedy marks a decision state compiled from a non-greedy
	// loop (`*?`/`+?`); closure() sets passedThroughNonGreedyDecision
	// on configs that cross it.
	NonGreedy bool

	// PrecedenceRuleDecision marks the star-loop-entry of a
	// left-recursive rule.
	PrecedenceRuleDecision bool

	// endState is the rule-stop state this rule-start/rule-stop pair
	// belongs to; DefineRule records it and nothing else reads it (rule
	// returns go through RuleTransition.FollowState).
	endState *ATNState
}

func (s *ATNState) AddTransition(t Transition) {
	s.Transitions = append(s.Transitions, t)
	s.EpsilonOnly = true
	for _, tr := range s.Transitions {
		if !tr.IsEpsilon() {
			s.EpsilonOnly = false
			break
		}
	}
}

// DecisionState is an ATNState together with its ordered alternative
// entry points. Every decision in the grammar (a block, a loop, a
// left-recursive rule's precedence ladder) is represented by one of
// these; ATN.DecisionToState is indexed by decision number.
type DecisionState struct {
	*ATNState
}

// ATN is the frozen, read-only compiled grammar graph consumed by the
// simulator. It is built once, by an external grammar compiler, and
// then never mutated.
type ATN struct {
	Grammar         string
	MaxTokenType    int
	States          []*ATNState
	DecisionToState []*DecisionState
	RuleToStartState []*ATNState
	RuleToStopState  []*ATNState
	ModeToStartState []*ATNState // lexer only: one TokensStart per mode
	Modes             []string
}

func NewATN(grammar string, maxTokenType int) *ATN {
	return &ATN{Grammar: grammar, MaxTokenType: maxTokenType}
}

// AddState appends a state to the graph, assigning it the next
// sequential number, and wires decision states into DecisionToState;
// RuleToStartState/RuleToStopState are filled by DefineRule.
func (a *ATN) AddState(s *ATNState) *ATNState {
	s.Number = len(a.States)
	a.States = append(a.States, s)
	if s.Type == StateDecision || s.Type == StateBlockStart ||
		s.Type == StateStarLoopEntry || s.Type == StatePlusLoopBack {
		if s.DecisionIndex < 0 {
			s.DecisionIndex = len(a.DecisionToState)
		}
		for len(a.DecisionToState) <= s.DecisionIndex {
			a.DecisionToState = append(a.DecisionToState, nil)
		}
		a.DecisionToState[s.DecisionIndex] = &DecisionState{ATNState: s}
	}
	return s
}

func (a *ATN) DefineRule(ruleIndex int, start, stop *ATNState) {
	for len(a.RuleToStartState) <= ruleIndex {
		a.RuleToStartState = append(a.RuleToStartState, nil)
		a.RuleToStopState = append(a.RuleToStopState, nil)
	}
	start.RuleIndex = ruleIndex
	stop.RuleIndex = ruleIndex
	start.endState = stop
	a.RuleToStartState[ruleIndex] = start
	a.RuleToStopState[ruleIndex] = stop
}

func (a *ATN) NumberOfDecisions() int { return len(a.DecisionToState) }

// NextTokensInContext (used by error reporting outside the core) is
// intentionally not implemented here: computing the full expected-set
// requires the follow-set machinery that belongs to error recovery,
// not to prediction itself.
