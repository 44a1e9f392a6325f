package atn

import (
	"context"
	"sync"
	"time"
)

// DecisionInfo accumulates profiling counters for one decision across
// every AdaptivePredict call that touches it.
type DecisionInfo struct {
	Decision int

	InvocationCount int64
	TotalTime       time.Duration

	SLLLookahead int64
	LLLookahead  int64

	AmbiguityCount           int64
	AttemptingFullContextCount int64
	ContextSensitivityCount  int64
	ErrorCount               int64
}

// ProfilingSimulator decorates a ParserSimulator, timing every
// AdaptivePredict call and counting the advisory events it raises.
// Timings use time.Since, whose monotonic-clock reading (every
// time.Time carries one since Go 1.9) makes TotalTime immune to wall
// clock adjustments mid-parse.
type ProfilingSimulator struct {
	*ParserSimulator

	mu        sync.Mutex
	decisions map[int]*DecisionInfo

	userListener PredictionListener
}

func NewProfilingSimulator(sim *ParserSimulator) *ProfilingSimulator {
	p := &ProfilingSimulator{
		ParserSimulator: sim,
		decisions:       make(map[int]*DecisionInfo),
		userListener:    sim.Listener,
	}
	p.ParserSimulator.Listener = p
	return p
}

func (p *ProfilingSimulator) infoFor(decision int) *DecisionInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	d, ok := p.decisions[decision]
	if !ok {
		d = &DecisionInfo{Decision: decision}
		p.decisions[decision] = d
	}
	return d
}

// AdaptivePredict times the wrapped simulator's prediction and records
// it against the decision's DecisionInfo.
func (p *ProfilingSimulator) AdaptivePredict(ctx context.Context, input TokenStream, decision int, outerContext *PredictionContext) (int, error) {
	info := p.infoFor(decision)
	start := time.Now()
	startIndex := input.Index()

	alt, err := p.ParserSimulator.AdaptivePredict(ctx, input, decision, outerContext)

	elapsed := time.Since(start)
	p.mu.Lock()
	info.InvocationCount++
	info.TotalTime += elapsed
	info.SLLLookahead += int64(input.Index() - startIndex)
	if err != nil {
		info.ErrorCount++
	}
	p.mu.Unlock()
	return alt, err
}

// Snapshot returns a copy of every decision's counters collected so
// far, safe to read while parsing continues.
func (p *ProfilingSimulator) Snapshot() []DecisionInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]DecisionInfo, 0, len(p.decisions))
	for _, d := range p.decisions {
		out = append(out, *d)
	}
	return out
}

func (p *ProfilingSimulator) ReportAmbiguity(info *AmbiguityInfo) {
	d := p.infoFor(info.Decision)
	p.mu.Lock()
	d.AmbiguityCount++
	p.mu.Unlock()
	if p.userListener != nil {
		p.userListener.ReportAmbiguity(info)
	}
}

func (p *ProfilingSimulator) ReportAttemptingFullContext(info *AttemptingFullContextInfo) {
	d := p.infoFor(info.Decision)
	p.mu.Lock()
	d.AttemptingFullContextCount++
	p.mu.Unlock()
	if p.userListener != nil {
		p.userListener.ReportAttemptingFullContext(info)
	}
}

func (p *ProfilingSimulator) ReportContextSensitivity(info *ContextSensitivityInfo) {
	d := p.infoFor(info.Decision)
	p.mu.Lock()
	d.ContextSensitivityCount++
	p.mu.Unlock()
	if p.userListener != nil {
		p.userListener.ReportContextSensitivity(info)
	}
}
