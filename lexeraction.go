package atn

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// LexerActionType enumerates the embedded lexer commands a grammar's
// lexer rules can attach to an alternative: `-> skip`, `-> more`,
// `-> type(X)`, `-> channel(X)`, `-> mode(X)`, `-> pushMode(X)`,
// `-> popMode`, and embedded actions.
type LexerActionType int

const (
	LexerActionSkip LexerActionType = iota
	LexerActionMore
	LexerActionType_
	LexerActionChannel
	LexerActionMode
	LexerActionPushMode
	LexerActionPopMode
	LexerActionCustom
)

// LexerActionExecutorContext is the minimal surface a LexerAction
// needs from the running lexer to take effect; the lexer package
// embedding this simulator implements it.
type LexerActionExecutorContext interface {
	Skip()
	More()
	SetType(tokenType int)
	SetChannel(channel int)
	PushMode(mode int)
	PopMode()
	SetMode(mode int)
	Custom(ruleIndex, actionIndex int)
}

// LexerAction is one embedded command. IsPositionDependent reports
// whether the action depends on the lexer's current match position
// (e.g. a custom action reading matched text) and therefore cannot be
// cached across different invocations the way a plain `-> skip` can.
type LexerAction interface {
	Type() LexerActionType
	IsPositionDependent() bool
	Execute(ctx LexerActionExecutorContext)
	hashKey() string
}

type skipAction struct{}

func NewLexerSkipAction() LexerAction               { return skipAction{} }
func (skipAction) Type() LexerActionType            { return LexerActionSkip }
func (skipAction) IsPositionDependent() bool         { return false }
func (skipAction) Execute(ctx LexerActionExecutorContext) { ctx.Skip() }
func (skipAction) hashKey() string                  { return "skip" }

type moreAction struct{}

func NewLexerMoreAction() LexerAction               { return moreAction{} }
func (moreAction) Type() LexerActionType            { return LexerActionMore }
func (moreAction) IsPositionDependent() bool         { return false }
func (moreAction) Execute(ctx LexerActionExecutorContext) { ctx.More() }
func (moreAction) hashKey() string                  { return "more" }

type typeAction struct{ tokenType int }

func NewLexerTypeAction(tokenType int) LexerAction { return typeAction{tokenType} }
func (a typeAction) Type() LexerActionType          { return LexerActionType_ }
func (typeAction) IsPositionDependent() bool        { return false }
func (a typeAction) Execute(ctx LexerActionExecutorContext) { ctx.SetType(a.tokenType) }
func (a typeAction) hashKey() string                { return "type:" + itoa(a.tokenType) }

type channelAction struct{ channel int }

func NewLexerChannelAction(channel int) LexerAction { return channelAction{channel} }
func (a channelAction) Type() LexerActionType        { return LexerActionChannel }
func (channelAction) IsPositionDependent() bool      { return false }
func (a channelAction) Execute(ctx LexerActionExecutorContext) { ctx.SetChannel(a.channel) }
func (a channelAction) hashKey() string              { return "channel:" + itoa(a.channel) }

type modeAction struct{ mode int }

func NewLexerModeAction(mode int) LexerAction  { return modeAction{mode} }
func (a modeAction) Type() LexerActionType      { return LexerActionMode }
func (modeAction) IsPositionDependent() bool     { return false }
func (a modeAction) Execute(ctx LexerActionExecutorContext) { ctx.SetMode(a.mode) }
func (a modeAction) hashKey() string            { return "mode:" + itoa(a.mode) }

type pushModeAction struct{ mode int }

func NewLexerPushModeAction(mode int) LexerAction { return pushModeAction{mode} }
func (a pushModeAction) Type() LexerActionType     { return LexerActionPushMode }
func (pushModeAction) IsPositionDependent() bool    { return false }
func (a pushModeAction) Execute(ctx LexerActionExecutorContext) { ctx.PushMode(a.mode) }
func (a pushModeAction) hashKey() string           { return "pushMode:" + itoa(a.mode) }

type popModeAction struct{}

func NewLexerPopModeAction() LexerAction           { return popModeAction{} }
func (popModeAction) Type() LexerActionType         { return LexerActionPopMode }
func (popModeAction) IsPositionDependent() bool      { return false }
func (popModeAction) Execute(ctx LexerActionExecutorContext) { ctx.PopMode() }
func (popModeAction) hashKey() string               { return "popMode" }

type customAction struct{ ruleIndex, actionIndex int }

func NewLexerCustomAction(ruleIndex, actionIndex int) LexerAction {
	return customAction{ruleIndex, actionIndex}
}
func (a customAction) Type() LexerActionType { return LexerActionCustom }
func (customAction) IsPositionDependent() bool { return true }
func (a customAction) Execute(ctx LexerActionExecutorContext) {
	ctx.Custom(a.ruleIndex, a.actionIndex)
}
func (a customAction) hashKey() string {
	return "custom:" + itoa(a.ruleIndex) + ":" + itoa(a.actionIndex)
}

// LexerActionExecutor bundles the ordered list of actions an
// accepting lexer rule runs, and is itself hash-consed: the same
// executor instance is shared by every DFAState/ATNConfig that ends up
// running the identical action sequence, so comparing two configs'
// executors for equality is a pointer comparison in the overwhelming
// common case.
type LexerActionExecutor struct {
	Actions []LexerAction
	hash    uint64
}

func newLexerActionExecutor(actions []LexerAction) *LexerActionExecutor {
	h := xxhash.New()
	for _, a := range actions {
		h.Write([]byte(a.hashKey()))
		h.Write([]byte{0})
	}
	return &LexerActionExecutor{Actions: actions, hash: h.Sum64()}
}

func (e *LexerActionExecutor) Hash() uint64 { return e.hash }

func (e *LexerActionExecutor) Equals(other *LexerActionExecutor) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil {
		return false
	}
	if e.hash != other.hash || len(e.Actions) != len(other.Actions) {
		return false
	}
	for i := range e.Actions {
		if e.Actions[i].hashKey() != other.Actions[i].hashKey() {
			return false
		}
	}
	return true
}

// Execute runs e's actions in order against ctx. Position-dependent
// actions get no offset adjustment: they run after the whole token has
// been matched.
func (e *LexerActionExecutor) Execute(ctx LexerActionExecutorContext) {
	for _, a := range e.Actions {
		a.Execute(ctx)
	}
}

// LexerActionExecutorCache interns LexerActionExecutors by content so
// that identical `-> type(X), channel(Y)` command lists compiled for
// different rules collapse to one shared instance.
type LexerActionExecutorCache struct {
	mu      sync.Mutex
	buckets map[uint64][]*LexerActionExecutor
}

func NewLexerActionExecutorCache() *LexerActionExecutorCache {
	return &LexerActionExecutorCache{buckets: make(map[uint64][]*LexerActionExecutor)}
}

func (c *LexerActionExecutorCache) Intern(actions []LexerAction) *LexerActionExecutor {
	candidate := newLexerActionExecutor(actions)
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.buckets[candidate.hash] {
		if existing.Equals(candidate) {
			return existing
		}
	}
	c.buckets[candidate.hash] = append(c.buckets[candidate.hash], candidate)
	return candidate
}

// Append returns the executor formed by running e's actions followed
// by a's, interned through cache. Closure does not call it: crossing
// an action transition leaves a config's executor unchanged.
func (e *LexerActionExecutor) Append(a LexerAction, cache *LexerActionExecutorCache) *LexerActionExecutor {
	var actions []LexerAction
	if e != nil {
		actions = append(actions, e.Actions...)
	}
	actions = append(actions, a)
	return cache.Intern(actions)
}
