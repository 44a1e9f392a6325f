package atn

import (
	"fmt"
	"strings"
)

// NoViableAltError is returned when the reach set is empty (or every
// semantic predicate guarding a unique alt evaluates false) and no
// alternative can be predicted for the current input.
type NoViableAltError struct {
	Decision     int
	StartIndex   int
	OffendingIdx int
	Configs      *ATNConfigSet
}

func (e *NoViableAltError) Error() string {
	return fmt.Sprintf("no viable alternative at decision %d, input %d..%d",
		e.Decision, e.StartIndex, e.OffendingIdx)
}

// InputMismatchError is raised by a token-stream consumer (outside
// the core) when the next token does not belong to the set expected
// at the current ATN state. The core surfaces it; recovery is left to
// the caller's error strategy.
type InputMismatchError struct {
	State    int
	Found    int
	Expected *IntervalSet
}

func (e *InputMismatchError) Error() string {
	return fmt.Sprintf("mismatched input: found %d, expected %s", e.Found, e.Expected)
}

// DecodingError is surfaced by a CharStream decoder running in
// "report" mode (as opposed to "replace") when it encounters a
// malformed byte sequence.
type DecodingError struct {
	Offset int
	Reason string
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("decoding error at byte %d: %s", e.Offset, e.Reason)
}

// IllegalStateError marks a programming error. Nothing in this package
// returns it: adding to a sealed ATNConfigSet returns false, and a
// non-precedence DFA answers precedence start-state calls without
// checking.
type IllegalStateError struct {
	Message string
}

func (e *IllegalStateError) Error() string {
	return "illegal state: " + e.Message
}

// AmbiguityInfo is delivered to Listener.ReportAmbiguity. It is not an
// error: prediction still returns a usable (minimum) alternative.
type AmbiguityInfo struct {
	Decision    int
	StartIndex  int
	StopIndex   int
	Exact       bool
	AmbigAlts   *AltSet
	Configs     *ATNConfigSet
}

func (a AmbiguityInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ambiguity decision=%d alts=%v exact=%t", a.Decision, a.AmbigAlts, a.Exact)
	return b.String()
}

// ContextSensitivityInfo is delivered to Listener.ReportContextSensitivity.
type ContextSensitivityInfo struct {
	Decision   int
	StartIndex int
	StopIndex  int
	PredictedAlt int
	Configs    *ATNConfigSet
}

// AttemptingFullContextInfo is delivered to Listener.ReportAttemptingFullContext.
type AttemptingFullContextInfo struct {
	Decision   int
	StartIndex int
	StopIndex  int
	Conflict   *ConflictInfo
	Configs    *ATNConfigSet
}
