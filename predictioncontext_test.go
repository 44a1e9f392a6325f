package atn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictionContext_GetChild(t *testing.T) {
	ctx := EmptyLocal.GetChild(5)
	require.Equal(t, 1, ctx.Size())
	assert.Equal(t, 5, ctx.GetReturnState(0))
	assert.True(t, ctx.GetParent(0).IsEmpty())
}

func TestPredictionContext_Equals(t *testing.T) {
	a := EmptyLocal.GetChild(5)
	b := EmptyLocal.GetChild(5)
	assert.True(t, a.Equals(b))
	assert.True(t, b.Equals(a))

	c := EmptyLocal.GetChild(6)
	assert.False(t, a.Equals(c))

	assert.True(t, EmptyLocal.Equals(EmptyLocal))
	assert.False(t, EmptyLocal.Equals(EmptyFull))
}

func TestJoin_IdenticalReturnsLeft(t *testing.T) {
	ctx := EmptyLocal.GetChild(1)
	cache := NewJoinCache()
	assert.Same(t, ctx, Join(ctx, ctx, cache))
}

func TestJoin_EmptyLocalAbsorbs(t *testing.T) {
	ctx := EmptyLocal.GetChild(1)
	cache := NewJoinCache()
	assert.Same(t, EmptyLocal, Join(EmptyLocal, ctx, cache))
	assert.Same(t, EmptyLocal, Join(ctx, EmptyLocal, cache))
}

func TestJoin_EmptyFullInsertsAlternative(t *testing.T) {
	ctx := newSingleton(nil, 3, true)
	cache := NewJoinCache()
	merged := Join(EmptyFull, ctx, cache)

	require.Equal(t, 2, merged.Size())
	assert.Equal(t, 3, merged.GetReturnState(0))
	assert.Equal(t, EmptyReturnState, merged.GetReturnState(1))
}

func TestJoin_DisjointReturnStatesUnion(t *testing.T) {
	a := EmptyLocal.GetChild(1)
	b := EmptyLocal.GetChild(2)
	cache := NewJoinCache()
	merged := Join(a, b, cache)

	require.Equal(t, 2, merged.Size())
	assert.Equal(t, 1, merged.GetReturnState(0))
	assert.Equal(t, 2, merged.GetReturnState(1))
}

func TestJoin_SameReturnStateMergesParents(t *testing.T) {
	grandparentA := EmptyLocal.GetChild(10)
	grandparentB := EmptyLocal.GetChild(20)
	a := grandparentA.GetChild(1)
	b := grandparentB.GetChild(1)

	cache := NewJoinCache()
	merged := Join(a, b, cache)

	require.Equal(t, 1, merged.Size())
	assert.Equal(t, 1, merged.GetReturnState(0))
	mergedParent := merged.GetParent(0)
	require.Equal(t, 2, mergedParent.Size())
}

func TestJoin_CanReturnOriginalWhenUnchanged(t *testing.T) {
	shared := EmptyLocal.GetChild(7)
	a := shared.GetChild(1)
	b := shared.GetChild(1)
	cache := NewJoinCache()
	merged := Join(a, b, cache)
	assert.True(t, merged.Equals(a))
}

func TestAppendContext_ReplacesEmptyTerminator(t *testing.T) {
	suffix := EmptyFull.GetChild(99)
	ctx := EmptyLocal.GetChild(1).GetChild(2)
	result := AppendContext(ctx, suffix, make(map[*PredictionContext]*PredictionContext))

	require.Equal(t, 1, result.Size())
	assert.Equal(t, 2, result.GetReturnState(0))
	inner := result.GetParent(0)
	require.Equal(t, 1, inner.Size())
	assert.Equal(t, 1, inner.GetReturnState(0))
	bottom := inner.GetParent(0)
	require.Equal(t, 1, bottom.Size())
	assert.Equal(t, 99, bottom.GetReturnState(0))
}

func TestContextCache_InternsStructurallyEqualContexts(t *testing.T) {
	cache := NewContextCache()
	a := EmptyLocal.GetChild(1).GetChild(2)
	b := EmptyLocal.GetChild(1).GetChild(2)
	require.False(t, a == b)

	ia := cache.GetCachedContext(a, make(map[*PredictionContext]*PredictionContext))
	ib := cache.GetCachedContext(b, make(map[*PredictionContext]*PredictionContext))
	assert.Same(t, ia, ib)
}

func TestFromRuleContext_EmptyStackIsEmptyContext(t *testing.T) {
	a := NewATN("g", 10)
	assert.Same(t, EmptyFull, FromRuleContext(a, nil, true))
	assert.Same(t, EmptyLocal, FromRuleContext(a, nil, false))
}
