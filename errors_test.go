package atn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoViableAltError_Message(t *testing.T) {
	err := &NoViableAltError{Decision: 2, StartIndex: 0, OffendingIdx: 3}
	assert.Contains(t, err.Error(), "decision 2")
	assert.Contains(t, err.Error(), "0..3")
}

func TestInputMismatchError_Message(t *testing.T) {
	expected := NewIntervalSet()
	expected.AddRange(1, 1)
	err := &InputMismatchError{State: 5, Found: 9, Expected: expected}
	assert.Contains(t, err.Error(), "found 9")
}

func TestDecodingError_Message(t *testing.T) {
	err := &DecodingError{Offset: 4, Reason: "invalid UTF-8 byte"}
	assert.Equal(t, "decoding error at byte 4: invalid UTF-8 byte", err.Error())
}

func TestIllegalStateError_Message(t *testing.T) {
	err := &IllegalStateError{Message: "config set is sealed"}
	assert.Equal(t, "illegal state: config set is sealed", err.Error())
}

func TestAmbiguityInfo_String(t *testing.T) {
	alts := NewAltSet()
	alts.Add(1)
	alts.Add(2)
	info := AmbiguityInfo{Decision: 1, Exact: true, AmbigAlts: alts}
	assert.Contains(t, info.String(), "ambiguity decision=1")
	assert.Contains(t, info.String(), "exact=true")
}
