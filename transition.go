package atn

// Transition is the common interface of every edge kind in the ATN.
// IsEpsilon distinguishes the epsilon-like kinds (epsilon, rule,
// predicate, action, precedence-predicate) that closure() follows
// without consuming input from the kinds that reach() consumes a
// symbol across.
type Transition interface {
	Target() *ATNState
	IsEpsilon() bool
	// Matches reports whether this transition admits the given
	// symbol code. Epsilon-like transitions never match (closure, not
	// reach, is how they're traversed).
	Matches(symbol, minVocab, maxVocab int) bool
}

type baseTransition struct {
	target *ATNState
}

func (t *baseTransition) Target() *ATNState { return t.target }

// EpsilonTransition connects two states with no input consumption.
type EpsilonTransition struct {
	baseTransition
	// OutermostPrecedenceReturn, when >= 0, marks this epsilon as the
	// return edge out of a left-recursive rule's outermost precedence
	// level; the simulator uses it to suppress the precedence filter
	// (ATNConfig.precedenceFilterSuppressed).
	OutermostPrecedenceReturn int
}

func NewEpsilonTransition(target *ATNState) *EpsilonTransition {
	return &EpsilonTransition{baseTransition: baseTransition{target}, OutermostPrecedenceReturn: -1}
}
func (t *EpsilonTransition) IsEpsilon() bool                              { return true }
func (t *EpsilonTransition) Matches(_, _, _ int) bool                     { return false }

// AtomTransition matches exactly one symbol code.
type AtomTransition struct {
	baseTransition
	Label int
}

func NewAtomTransition(target *ATNState, label int) *AtomTransition {
	return &AtomTransition{baseTransition{target}, label}
}
func (t *AtomTransition) IsEpsilon() bool { return false }
func (t *AtomTransition) Matches(symbol, _, _ int) bool { return symbol == t.Label }

// RangeTransition matches an inclusive [From,To] range.
type RangeTransition struct {
	baseTransition
	From, To int
}

func NewRangeTransition(target *ATNState, from, to int) *RangeTransition {
	return &RangeTransition{baseTransition{target}, from, to}
}
func (t *RangeTransition) IsEpsilon() bool { return false }
func (t *RangeTransition) Matches(symbol, _, _ int) bool { return symbol >= t.From && symbol <= t.To }

// SetTransition matches any symbol in Set.
type SetTransition struct {
	baseTransition
	Set *IntervalSet
}

func NewSetTransition(target *ATNState, set *IntervalSet) *SetTransition {
	if set == nil {
		set = NewIntervalSet()
	}
	return &SetTransition{baseTransition{target}, set}
}
func (t *SetTransition) IsEpsilon() bool { return false }
func (t *SetTransition) Matches(symbol, _, _ int) bool { return t.Set.Contains(symbol) }

// NotSetTransition matches any symbol in [minVocab,maxVocab] not in Set.
type NotSetTransition struct {
	baseTransition
	Set *IntervalSet
}

func NewNotSetTransition(target *ATNState, set *IntervalSet) *NotSetTransition {
	if set == nil {
		set = NewIntervalSet()
	}
	return &NotSetTransition{baseTransition{target}, set}
}
func (t *NotSetTransition) IsEpsilon() bool { return false }
func (t *NotSetTransition) Matches(symbol, minVocab, maxVocab int) bool {
	return symbol >= minVocab && symbol <= maxVocab && !t.Set.Contains(symbol)
}

// WildcardTransition matches any symbol in [minVocab,maxVocab].
type WildcardTransition struct {
	baseTransition
}

func NewWildcardTransition(target *ATNState) *WildcardTransition {
	return &WildcardTransition{baseTransition{target}}
}
func (t *WildcardTransition) IsEpsilon() bool { return false }
func (t *WildcardTransition) Matches(symbol, minVocab, maxVocab int) bool {
	return symbol >= minVocab && symbol <= maxVocab
}

// RuleTransition is an epsilon-like call into another rule; closure()
// pushes FollowState onto the prediction context when traversing it.
type RuleTransition struct {
	baseTransition
	RuleIndex   int
	RuleStart   *ATNState
	FollowState *ATNState
	Precedence  int
}

func NewRuleTransition(ruleStart *ATNState, ruleIndex, precedence int, followState *ATNState) *RuleTransition {
	return &RuleTransition{
		baseTransition: baseTransition{ruleStart},
		RuleIndex:      ruleIndex,
		RuleStart:      ruleStart,
		FollowState:    followState,
		Precedence:     precedence,
	}
}
func (t *RuleTransition) IsEpsilon() bool              { return true }
func (t *RuleTransition) Matches(_, _, _ int) bool      { return false }

// PredicateTransition is an epsilon-like edge guarded by a semantic
// predicate, evaluated against SemanticContext at accept time.
type PredicateTransition struct {
	baseTransition
	RuleIndex  int
	PredIndex  int
	IsCtxDep   bool
}

func NewPredicateTransition(target *ATNState, ruleIndex, predIndex int, isCtxDep bool) *PredicateTransition {
	return &PredicateTransition{baseTransition{target}, ruleIndex, predIndex, isCtxDep}
}
func (t *PredicateTransition) IsEpsilon() bool         { return true }
func (t *PredicateTransition) Matches(_, _, _ int) bool { return false }
func (t *PredicateTransition) Predicate() *Predicate {
	return &Predicate{RuleIndex: t.RuleIndex, PredIndex: t.PredIndex, IsCtxDep: t.IsCtxDep}
}

// PrecedencePredicateTransition is an epsilon-like edge guarded by
// `{precedence >= N}?` on a left-recursive rule's alternative.
type PrecedencePredicateTransition struct {
	baseTransition
	Precedence int
}

func NewPrecedencePredicateTransition(target *ATNState, precedence int) *PrecedencePredicateTransition {
	return &PrecedencePredicateTransition{baseTransition{target}, precedence}
}
func (t *PrecedencePredicateTransition) IsEpsilon() bool         { return true }
func (t *PrecedencePredicateTransition) Matches(_, _, _ int) bool { return false }
func (t *PrecedencePredicateTransition) PrecedencePredicate() *PrecedencePredicate {
	return &PrecedencePredicate{Precedence: t.Precedence}
}

// ActionTransition is an epsilon-like edge that runs an embedded
// action; outside parsing it is a no-op for prediction purposes
// beyond being traversed by closure().
type ActionTransition struct {
	baseTransition
	RuleIndex, ActionIndex int
	IsCtxDep               bool
}

func NewActionTransition(target *ATNState, ruleIndex, actionIndex int, isCtxDep bool) *ActionTransition {
	return &ActionTransition{baseTransition{target}, ruleIndex, actionIndex, isCtxDep}
}
func (t *ActionTransition) IsEpsilon() bool         { return true }
func (t *ActionTransition) Matches(_, _, _ int) bool { return false }
