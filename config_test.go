package atn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Defaults(t *testing.T) {
	c := NewConfig()
	assert.True(t, c.GetBool("prediction.ll_failover"))
	assert.False(t, c.GetBool("prediction.exact_ambiguity"))
	assert.Equal(t, 200, c.GetInt("prediction.max_precedence"))
	assert.Equal(t, "replace", c.GetString("stream.decode_policy"))
}

func TestConfig_SetOverridesDefault(t *testing.T) {
	c := NewConfig()
	c.SetInt("prediction.max_precedence", 5)
	assert.Equal(t, 5, c.GetInt("prediction.max_precedence"))
}

func TestConfig_GetWrongTypePanics(t *testing.T) {
	c := NewConfig()
	assert.Panics(t, func() { c.GetString("prediction.ll_failover") })
}

func TestConfig_GetMissingKeyPanics(t *testing.T) {
	c := NewConfig()
	assert.Panics(t, func() { c.GetBool("does.not.exist") })
}
