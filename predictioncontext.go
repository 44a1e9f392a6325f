package atn

import (
	"github.com/cespare/xxhash/v2"
)

// PredictionContext is an immutable node of the graph-structured
// prediction stack. Every node is either one of the
// two distinguished empty terminators, or a list of (parent,
// returnState) pairs sorted by returnState.
//
// Go has no clean way to express "one of these shapes" as cheaply as
// a tagged union without allocation games, so this uses a single
// struct with the empty case represented by a nil/zero-length Parents
// slice rather than four polymorphic classes.
type PredictionContext struct {
	// Parents[i] together with ReturnStates[i] form one outgoing edge.
	// len(Parents) == len(ReturnStates) == Size(). Empty terminators
	// have both nil.
	Parents      []*PredictionContext
	ReturnStates []int

	// full is true for EMPTY_FULL and any context built from it; it
	// marks the outermost (rule-independent) lineage, as opposed to a
	// rule-local EMPTY_LOCAL lineage used during SLL closure.
	full bool

	hash uint64
}

// EmptyLocal is the rule-local empty terminator: the bottom of the
// stack while doing SLL closure inside a single rule invocation, with
// no information about what called it.
var EmptyLocal = &PredictionContext{full: false, hash: emptyHash(false)}

// EmptyFull is the outermost empty terminator: the bottom of the
// stack once full-context information has been seeded from the
// parser's actual call stack (fromRuleContext), or when a config
// reaches the start rule with no caller at all.
var EmptyFull = &PredictionContext{full: true, hash: emptyHash(true)}

func emptyHash(full bool) uint64 {
	if full {
		return xxhash.Sum64String("ctx:empty:full")
	}
	return xxhash.Sum64String("ctx:empty:local")
}

func (p *PredictionContext) IsEmpty() bool { return p == EmptyLocal || p == EmptyFull }

// HasEmpty reports whether any of this context's direct parents is an
// empty terminator (used while joining contexts that mix lengths).
func (p *PredictionContext) HasEmpty() bool {
	for _, parent := range p.Parents {
		if parent == nil {
			return true
		}
	}
	return false
}

func (p *PredictionContext) Size() int { return len(p.ReturnStates) }

func (p *PredictionContext) GetReturnState(i int) int { return p.ReturnStates[i] }

func (p *PredictionContext) GetParent(i int) *PredictionContext {
	if p.Parents[i] == nil {
		if p.full {
			return EmptyFull
		}
		return EmptyLocal
	}
	return p.Parents[i]
}

func (p *PredictionContext) FindReturnState(rs int) int {
	for i, v := range p.ReturnStates {
		if v == rs {
			return i
		}
	}
	return -1
}

func (p *PredictionContext) Hash() uint64 { return p.hash }

func computeHash(parents []*PredictionContext, returnStates []int) uint64 {
	h := xxhash.New()
	var buf [8]byte
	for i, rs := range returnStates {
		var ph uint64
		if parents[i] != nil {
			ph = parents[i].Hash()
		}
		putU64(buf[:], ph)
		h.Write(buf[:])
		putU64(buf[:], uint64(rs))
		h.Write(buf[:])
	}
	return h.Sum64()
}

func putU64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

// newSingleton builds a context with exactly one (parent,returnState)
// edge. parent == nil means "empty terminator", matching the emptiness
// encoding used throughout this file.
func newSingleton(parent *PredictionContext, returnState int, full bool) *PredictionContext {
	parents := []*PredictionContext{parent}
	returnStates := []int{returnState}
	return &PredictionContext{
		Parents:      parents,
		ReturnStates: returnStates,
		full:         full,
		hash:         computeHash(parents, returnStates),
	}
}

func newArrayContext(parents []*PredictionContext, returnStates []int, full bool) *PredictionContext {
	return &PredictionContext{
		Parents:      parents,
		ReturnStates: returnStates,
		full:         full,
		hash:         computeHash(parents, returnStates),
	}
}

// GetChild returns a new context whose sole parent is `this`, i.e.
// pushing one rule-return frame onto the stack.
func (p *PredictionContext) GetChild(returnState int) *PredictionContext {
	if p.IsEmpty() {
		return newSingleton(nil, returnState, p.full)
	}
	return newSingleton(p, returnState, p.full)
}

// Equals is structural equality: same emptiness/fullness, same sorted
// return-state list, and recursively equal parents. Identity equality
// (==) is always a safe, conservative fast path because contexts are
// hash-consed via the cache in predictioncontext_cache.go, but callers
// must never assume `p1 != p2` implies inequality without calling this.
func (p *PredictionContext) Equals(other *PredictionContext) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	if p.IsEmpty() || other.IsEmpty() {
		return p.IsEmpty() && other.IsEmpty() && p.full == other.full
	}
	if p.hash != other.hash || len(p.ReturnStates) != len(other.ReturnStates) {
		return false
	}
	for i := range p.ReturnStates {
		if p.ReturnStates[i] != other.ReturnStates[i] {
			return false
		}
		if !p.GetParent(i).Equals(other.GetParent(i)) {
			return false
		}
	}
	return true
}

// FromRuleContext lifts a parser's live rule-invocation stack into a
// PredictionContext. The caller supplies the stack as a slice
// of invoking-state numbers ordered outermost-first (index 0 is the
// outermost call, the last entry is the immediately enclosing rule
// invocation). An empty stack becomes EmptyFull when fullContext is
// true (there genuinely is no caller) or EmptyLocal otherwise.
func FromRuleContext(a *ATN, invokingStates []int, fullContext bool) *PredictionContext {
	if len(invokingStates) == 0 {
		if fullContext {
			return EmptyFull
		}
		return EmptyLocal
	}
	var ctx *PredictionContext
	if fullContext {
		ctx = EmptyFull
	} else {
		ctx = EmptyLocal
	}
	for _, invokingState := range invokingStates {
		state := a.States[invokingState]
		followState := state.Transitions[0].Target()
		if rt, ok := state.Transitions[0].(*RuleTransition); ok {
			followState = rt.FollowState
		}
		ctx = ctx.GetChild(followState.Number)
	}
	return ctx
}
