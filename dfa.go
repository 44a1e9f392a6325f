package atn

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// DFA is the lazily-built decision automaton for one decision in the
// ATN. States are interned by config-set identity in a concurrent map
// so that multiple goroutines predicting through the same decision
// concurrently converge on the same DFAState instances instead of
// racing to build duplicates; a singleflight group keyed on the
// candidate state's identity string coalesces concurrent inserts of
// the same state. Each caller still computes its own candidate (reach
// and closure) before the insert, so that work can be repeated.
type DFA struct {
	Decision *DecisionState

	// PrecedenceDfa is true for the DFA of a left-recursive rule's
	// topmost decision, which is keyed by parser precedence level
	// [0,MaxPrecedence] rather than having one shared s0.
	PrecedenceDfa bool

	states sync.Map // equalsKey() string -> *DFAState
	count  int64    // atomic: next Number to assign

	s0     atomic.Pointer[DFAState]
	s0Full atomic.Pointer[DFAState]

	// precedenceToS0 holds, for a precedence DFA, one s0 per
	// precedence level; index 0 is the lowest. The slice grows to
	// whatever level is asked for; no upper bound is enforced.
	precedenceMu  sync.Mutex
	precedenceToS0 []*DFAState

	group singleflight.Group
}

func NewDFA(decision *DecisionState) *DFA {
	return &DFA{Decision: decision}
}

// S0 returns the SLL start state, or nil if none has been installed
// yet.
func (d *DFA) S0() *DFAState { return d.s0.Load() }

// SetS0 installs the SLL start state. Only the first caller's value
// wins; later callers racing to set an equivalent s0 get the winner
// back, mirroring GetOrAdd's put-if-absent semantics.
func (d *DFA) SetS0(s *DFAState) *DFAState {
	if d.s0.CompareAndSwap(nil, s) {
		return s
	}
	return d.s0.Load()
}

func (d *DFA) S0Full() *DFAState { return d.s0Full.Load() }

func (d *DFA) SetS0Full(s *DFAState) *DFAState {
	if d.s0Full.CompareAndSwap(nil, s) {
		return s
	}
	return d.s0Full.Load()
}

// S0AtPrecedence / SetS0AtPrecedence manage the per-precedence start
// states of a precedence DFA.
func (d *DFA) S0AtPrecedence(precedence int) *DFAState {
	d.precedenceMu.Lock()
	defer d.precedenceMu.Unlock()
	if precedence < 0 || precedence >= len(d.precedenceToS0) {
		return nil
	}
	return d.precedenceToS0[precedence]
}

func (d *DFA) SetS0AtPrecedence(precedence int, s *DFAState) {
	d.precedenceMu.Lock()
	defer d.precedenceMu.Unlock()
	for len(d.precedenceToS0) <= precedence {
		d.precedenceToS0 = append(d.precedenceToS0, nil)
	}
	d.precedenceToS0[precedence] = s
}

// GetOrAdd interns candidate by config-set identity: if a structurally
// equal state already exists, it is returned and candidate is
// discarded; otherwise candidate is assigned a Number and stored.
// Concurrent callers racing on the same key are coalesced so the
// closure work that built candidate (which may have been expensive)
// is still wasted at most once, not duplicated into the table twice.
func (d *DFA) GetOrAdd(candidate *DFAState) *DFAState {
	key := candidate.equalsKey()
	v, _, _ := d.group.Do(key, func() (any, error) {
		if existing, ok := d.states.Load(key); ok {
			return existing.(*DFAState), nil
		}
		candidate.Number = int(atomic.AddInt64(&d.count, 1)) - 1
		actual, loaded := d.states.LoadOrStore(key, candidate)
		if loaded {
			return actual.(*DFAState), nil
		}
		return candidate, nil
	})
	return v.(*DFAState)
}

// Find looks up a state by its config set without installing a new
// one if absent.
func (d *DFA) Find(configs *ATNConfigSet) (*DFAState, bool) {
	v, ok := d.states.Load(dfaStateKey(configs))
	if !ok {
		return nil, false
	}
	return v.(*DFAState), true
}

// NumStates reports how many states have been constructed so far
// (diagnostics/profiling only).
func (d *DFA) NumStates() int {
	n := 0
	d.states.Range(func(_, _ any) bool { n++; return true })
	return n
}

// Each visits every installed state; order is unspecified.
func (d *DFA) Each(fn func(*DFAState)) {
	d.states.Range(func(_, v any) bool {
		fn(v.(*DFAState))
		return true
	})
}

