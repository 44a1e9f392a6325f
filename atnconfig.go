package atn

import "github.com/cespare/xxhash/v2"

// ATNConfig is one (state, alternative, context) hypothesis tracked
// during prediction. A single concrete struct with optional fields
// stands in for the class hierarchy other ports split this into
// (plain config vs. lexer config vs. ...), since Go has no
// inheritance to make that hierarchy pay for itself.
type ATNConfig struct {
	State   *ATNState
	Alt     int
	Context *PredictionContext

	// SemanticContext is nil when the config carries no predicate
	// obligation, which is the overwhelmingly common case.
	SemanticContext *SemanticContext

	// ReachesIntoOuterContext counts how many rule invocations this
	// config's closure has popped past the bottom of the starting
	// context; the owning config set's DipsIntoOuterContext flag is set
	// when any of its configs has it above 0.
	ReachesIntoOuterContext int

	// PrecedenceFilterSuppressed is set on configs produced by
	// following a left-recursive rule's outermost-precedence return
	// edge, which must bypass the usual precedence-predicate filter.
	PrecedenceFilterSuppressed bool

	// PassedThroughNonGreedyDecision is set once closure crosses a
	// non-greedy (`*?`/`+?`) decision state. The lexer simulator's
	// choice of accepting alternative does not depend on it.
	PassedThroughNonGreedyDecision bool

	// LexerActionExecutor is non-nil only for configs produced while
	// simulating a lexer mode DFA; parser configs leave it nil.
	LexerActionExecutor *LexerActionExecutor
}

// NewATNConfig builds a fresh config with no predicate obligation and
// no outer-context history, the common starting point for closure.
func NewATNConfig(state *ATNState, alt int, context *PredictionContext) *ATNConfig {
	return &ATNConfig{State: state, Alt: alt, Context: context}
}

// transform produces a copy of c for the given target state, optionally
// replacing the context, and always carrying forward the remaining
// fields unchanged. checkNonGreedy additionally ORs in
// PassedThroughNonGreedyDecision if target is a non-greedy decision
// state.
func (c *ATNConfig) transform(target *ATNState, context *PredictionContext, checkNonGreedy bool) *ATNConfig {
	if context == nil {
		context = c.Context
	}
	nc := &ATNConfig{
		State:                          target,
		Alt:                            c.Alt,
		Context:                        context,
		SemanticContext:                c.SemanticContext,
		ReachesIntoOuterContext:        c.ReachesIntoOuterContext,
		PrecedenceFilterSuppressed:     c.PrecedenceFilterSuppressed,
		PassedThroughNonGreedyDecision: c.PassedThroughNonGreedyDecision,
		LexerActionExecutor:            c.LexerActionExecutor,
	}
	if checkNonGreedy && target.NonGreedy {
		nc.PassedThroughNonGreedyDecision = true
	}
	return nc
}

// withSemanticContext returns a copy of c carrying sc instead of its
// current SemanticContext, used when ANDing in a newly traversed
// predicate.
func (c *ATNConfig) withSemanticContext(sc *SemanticContext) *ATNConfig {
	nc := *c
	nc.SemanticContext = sc
	return &nc
}

// configKey identifies a config for hash-table membership: (state,
// alt, semantic context text) — everything except Context, which is
// compared separately because two configs with equal key but
// different contexts must be *joined*, not treated as duplicates.
type configKey struct {
	state int
	alt   int
	sem   string
}

func (c *ATNConfig) key() configKey {
	sem := ""
	if c.SemanticContext != nil {
		sem = c.SemanticContext.String()
	}
	return configKey{state: c.State.Number, alt: c.Alt, sem: sem}
}

// Hash folds the full config identity including Context, used by
// closure's busy set to stop it revisiting an identical config.
func (c *ATNConfig) Hash() uint64 {
	h := xxhash.New()
	var buf [8]byte
	putU64(buf[:], uint64(c.State.Number))
	h.Write(buf[:])
	putU64(buf[:], uint64(c.Alt))
	h.Write(buf[:])
	if c.Context != nil {
		putU64(buf[:], c.Context.Hash())
		h.Write(buf[:])
	}
	if c.SemanticContext != nil {
		h.Write([]byte(c.SemanticContext.String()))
	}
	return h.Sum64()
}

// Equals is full structural equality (state, alt, context, semantic
// context) — the condition under which two configs are the exact same
// hypothesis rather than merely sharing a key.
func (c *ATNConfig) Equals(other *ATNConfig) bool {
	if c == other {
		return true
	}
	if c.State.Number != other.State.Number || c.Alt != other.Alt {
		return false
	}
	if (c.Context == nil) != (other.Context == nil) {
		return false
	}
	if c.Context != nil && !c.Context.Equals(other.Context) {
		return false
	}
	return c.semanticContextEquals(other)
}

func (c *ATNConfig) semanticContextEquals(other *ATNConfig) bool {
	if c.SemanticContext == nil || other.SemanticContext == nil {
		return c.SemanticContext == other.SemanticContext
	}
	return c.SemanticContext.String() == other.SemanticContext.String()
}

func (c *ATNConfig) String() string {
	s := "(" + itoa(c.State.Number) + "," + itoa(c.Alt) + ")"
	return s
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
