package atn

// SyntaxErrorListener receives parse/lex errors surfaced outside the
// simulator's own advisory events. It mirrors the shape of the
// NoViableAltError/InputMismatchError types so an embedding parser can
// funnel its own recovery-time errors through the same listener chain
// as prediction's ambiguity/context-sensitivity reports.
type SyntaxErrorListener interface {
	SyntaxError(offendingState int, offendingIndex int, msg string, cause error)
}

// ProxyListener fans every event out to a list of delegates. A
// delegate that panics is caught and dropped from the remaining
// dispatch for that one event — these callbacks are advisory
// diagnostics, and a bug in one listener must never abort prediction
// for the parser that installed it.
type ProxyListener struct {
	delegates []interface {
		PredictionListener
		SyntaxErrorListener
	}
}

func NewProxyListener() *ProxyListener { return &ProxyListener{} }

func (p *ProxyListener) Add(d interface {
	PredictionListener
	SyntaxErrorListener
}) {
	p.delegates = append(p.delegates, d)
}

func (p *ProxyListener) ReportAmbiguity(info *AmbiguityInfo) {
	p.each(func(d interface {
		PredictionListener
		SyntaxErrorListener
	}) {
		d.ReportAmbiguity(info)
	})
}

func (p *ProxyListener) ReportAttemptingFullContext(info *AttemptingFullContextInfo) {
	p.each(func(d interface {
		PredictionListener
		SyntaxErrorListener
	}) {
		d.ReportAttemptingFullContext(info)
	})
}

func (p *ProxyListener) ReportContextSensitivity(info *ContextSensitivityInfo) {
	p.each(func(d interface {
		PredictionListener
		SyntaxErrorListener
	}) {
		d.ReportContextSensitivity(info)
	})
}

func (p *ProxyListener) SyntaxError(offendingState, offendingIndex int, msg string, cause error) {
	p.each(func(d interface {
		PredictionListener
		SyntaxErrorListener
	}) {
		d.SyntaxError(offendingState, offendingIndex, msg, cause)
	})
}

func (p *ProxyListener) each(fn func(d interface {
	PredictionListener
	SyntaxErrorListener
})) {
	for _, d := range p.delegates {
		p.dispatchSafely(d, fn)
	}
}

func (p *ProxyListener) dispatchSafely(d interface {
	PredictionListener
	SyntaxErrorListener
}, fn func(d interface {
	PredictionListener
	SyntaxErrorListener
})) {
	defer func() {
		if r := recover(); r != nil {
			Log().Warnw("prediction listener panicked; dropping for this event", "panic", r)
		}
	}()
	fn(d)
}

// LoggingListener is a PredictionListener/SyntaxErrorListener that
// writes every event through the package logger. It is not installed
// automatically: a simulator with a nil Listener reports nothing.
type LoggingListener struct{}

func (LoggingListener) ReportAmbiguity(info *AmbiguityInfo) {
	Log().Infow("ambiguity", "decision", info.Decision, "start", info.StartIndex, "stop", info.StopIndex, "exact", info.Exact)
}

func (LoggingListener) ReportAttemptingFullContext(info *AttemptingFullContextInfo) {
	Log().Debugw("attempting full context", "decision", info.Decision, "start", info.StartIndex, "stop", info.StopIndex)
}

func (LoggingListener) ReportContextSensitivity(info *ContextSensitivityInfo) {
	Log().Debugw("context sensitivity", "decision", info.Decision, "start", info.StartIndex, "stop", info.StopIndex, "alt", info.PredictedAlt)
}

func (LoggingListener) SyntaxError(offendingState, offendingIndex int, msg string, cause error) {
	Log().Warnw("syntax error", "state", offendingState, "index", offendingIndex, "msg", msg, "cause", cause)
}
