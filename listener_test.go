package atn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingListener struct {
	events []string
}

func (r *recordingListener) ReportAmbiguity(*AmbiguityInfo)                     { r.events = append(r.events, "ambiguity") }
func (r *recordingListener) ReportAttemptingFullContext(*AttemptingFullContextInfo) {
	r.events = append(r.events, "attempting")
}
func (r *recordingListener) ReportContextSensitivity(*ContextSensitivityInfo) {
	r.events = append(r.events, "sensitivity")
}
func (r *recordingListener) SyntaxError(int, int, string, error) { r.events = append(r.events, "syntax") }

type panickingListener struct{}

func (panickingListener) ReportAmbiguity(*AmbiguityInfo)                     { panic("boom") }
func (panickingListener) ReportAttemptingFullContext(*AttemptingFullContextInfo) { panic("boom") }
func (panickingListener) ReportContextSensitivity(*ContextSensitivityInfo)   { panic("boom") }
func (panickingListener) SyntaxError(int, int, string, error)                { panic("boom") }

func TestProxyListener_DispatchesToAllDelegates(t *testing.T) {
	p := NewProxyListener()
	a, b := &recordingListener{}, &recordingListener{}
	p.Add(a)
	p.Add(b)

	p.ReportAmbiguity(&AmbiguityInfo{Decision: 1})
	assert.Equal(t, []string{"ambiguity"}, a.events)
	assert.Equal(t, []string{"ambiguity"}, b.events)
}

func TestProxyListener_PanicInOneDelegateDoesNotStopOthers(t *testing.T) {
	p := NewProxyListener()
	rec := &recordingListener{}
	p.Add(panickingListener{})
	p.Add(rec)

	assert.NotPanics(t, func() {
		p.ReportContextSensitivity(&ContextSensitivityInfo{Decision: 1})
	})
	assert.Equal(t, []string{"sensitivity"}, rec.events)
}
