package atn

import "sync"

// DFAState is one node of a lazily-built decision DFA. Its identity
// for the purposes of the state table is its Configs set, not its
// Number: two DFAStates built from structurally equal config sets are
// the *same* state and must collapse, even though each one predicted
// a different alternative mid-construction before the full set was
// known. Number is assigned once, purely for diagnostics and
// serialization, and is never part of equality.
type DFAState struct {
	Number int

	Configs *ATNConfigSet

	// Prediction is the alternative this state resolves to once it is
	// known to be an accept state (no remaining ambiguity/conflict to
	// resolve against further input).
	Prediction int

	IsAcceptState bool

	// RequiresFullContext marks a state discovered only via LL
	// simulation, which must never be reused by a pure-SLL walk.
	RequiresFullContext bool

	// PredicatesToEval, when non-nil, means acceptance is gated on
	// evaluating these per-alternative predicates at runtime rather
	// than a single fixed Prediction.
	PredicatesToEval []PredPrediction

	// LexerActionExecutor carries the lexer actions to run when this
	// accept state is reached.
	LexerActionExecutor *LexerActionExecutor

	mu    sync.Mutex
	edges EdgeMap
}

// PredPrediction pairs a predicate with the alternative it guards,
// evaluated in order at an ambiguous accept state.
type PredPrediction struct {
	Pred *SemanticContext
	Alt  int
}

func NewDFAState(configs *ATNConfigSet) *DFAState {
	return &DFAState{Configs: configs, Prediction: -1, edges: NewEdgeMap()}
}

// Edge returns the target of the transition on symbol, or nil.
func (s *DFAState) Edge(symbol int) *DFAState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edges.Get(symbol)
}

// SetEdge installs (or overwrites) the transition on symbol. Safe for
// concurrent use: two goroutines racing to add the same edge both
// succeed harmlessly, the second simply overwriting with an
// equivalent target (DFAStates are hash-consed by configs, so
// "equivalent" here usually means "identical").
func (s *DFAState) SetEdge(symbol int, target *DFAState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edges = s.edges.Put(symbol, target)
}

func (s *DFAState) EachEdge(fn func(symbol int, target *DFAState)) {
	s.mu.Lock()
	edges := s.edges
	s.mu.Unlock()
	edges.Each(fn)
}

// EdgeCount reports how many outgoing transitions this state has.
func (s *DFAState) EdgeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edges.Len()
}

// equalsKey returns the structural key used for interning a new
// DFAState against the ones already present in a DFA — two states
// are the same exactly when their config sets are equal. Number must
// not participate in this key, since it is assigned only after a
// state is already known to be new.
func (s *DFAState) equalsKey() string {
	return dfaStateKey(s.Configs)
}

// dfaStateKey renders a config set's (state, alt, context-hash,
// semantic-context) identity into a comparable string, ignoring
// insertion order by sorting — two config sets built by different
// closure paths but containing the same configs must hash identically.
func dfaStateKey(configs *ATNConfigSet) string {
	type entry = sortableEntry
	entries := make([]entry, 0, configs.Size())
	for _, c := range configs.Configs() {
		var ch uint64
		if c.Context != nil {
			ch = c.Context.Hash()
		}
		sem := ""
		if c.SemanticContext != nil {
			sem = c.SemanticContext.String()
		}
		entries = append(entries, entry{c.State.Number, c.Alt, ch, sem})
	}
	sortEntries(entries)
	buf := make([]byte, 0, len(entries)*24)
	for _, e := range entries {
		buf = appendInt(buf, e.state)
		buf = append(buf, ',')
		buf = appendInt(buf, e.alt)
		buf = append(buf, ',')
		buf = appendUint(buf, e.ctxHash)
		buf = append(buf, ',')
		buf = append(buf, e.sem...)
		buf = append(buf, ';')
	}
	return string(buf)
}

type sortableEntry = struct {
	state, alt int
	ctxHash    uint64
	sem        string
}

func sortEntries(es []sortableEntry) {
	// insertion sort: decision config sets are small in practice.
	for i := 1; i < len(es); i++ {
		for j := i; j > 0 && entryLess(es[j], es[j-1]); j-- {
			es[j-1], es[j] = es[j], es[j-1]
		}
	}
}

func entryLess(a, b sortableEntry) bool {
	if a.state != b.state {
		return a.state < b.state
	}
	if a.alt != b.alt {
		return a.alt < b.alt
	}
	if a.ctxHash != b.ctxHash {
		return a.ctxHash < b.ctxHash
	}
	return a.sem < b.sem
}

func appendInt(buf []byte, v int) []byte {
	return append(buf, itoa(v)...)
}

func appendUint(buf []byte, v uint64) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(buf, tmp[i:]...)
}
