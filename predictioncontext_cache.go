package atn

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// EmptyReturnState is the sentinel return-state value used when a
// full-context join has to insert an empty alternative into the
// other operand. It sorts after every real ATN state number
// so it always lands at the tail of a merged, sorted return-state list.
const EmptyReturnState = int(^uint(0) >> 1)

// joinCache memoizes (a,b) -> result for one top-level Join call: an
// identity-keyed map. The simulators create one per start-state or
// target-state computation and per full-context pass, and thread it
// through recursive parent joins.
type joinCache struct {
	m map[joinCacheKey]*PredictionContext
}

type joinCacheKey struct{ a, b *PredictionContext }

func NewJoinCache() *joinCache { return &joinCache{m: make(map[joinCacheKey]*PredictionContext)} }

func (c *joinCache) get(a, b *PredictionContext) (*PredictionContext, bool) {
	if c == nil {
		return nil, false
	}
	if v, ok := c.m[joinCacheKey{a, b}]; ok {
		return v, true
	}
	if v, ok := c.m[joinCacheKey{b, a}]; ok {
		return v, true
	}
	return nil, false
}

func (c *joinCache) put(a, b, result *PredictionContext) {
	if c == nil {
		return
	}
	c.m[joinCacheKey{a, b}] = result
}

// Join structurally merges two prediction contexts. It is the
// one operation every other PredictionContext algorithm (closure,
// ATNConfigSet.add, appendContext) is built on top of.
func Join(a, b *PredictionContext, cache *joinCache) *PredictionContext {
	if a == b {
		return a
	}
	if v, ok := cache.get(a, b); ok {
		return v
	}
	result := join(a, b, cache)
	cache.put(a, b, result)
	return result
}

func join(a, b *PredictionContext, cache *joinCache) *PredictionContext {
	if a.IsEmpty() {
		if !a.full {
			return a // empty local absorbs
		}
		return insertEmptyAlt(b)
	}
	if b.IsEmpty() {
		if !b.full {
			return b
		}
		return insertEmptyAlt(a)
	}
	return joinNonEmpty(a, b, cache)
}

// insertEmptyAlt implements "insert an empty alternative into the
// other" for a full-context join against EmptyFull: the other side's
// edges are kept and a synthetic empty branch (nil parent, sentinel
// return state) is appended at the tail, which keeps the list sorted
// because EmptyReturnState sorts after every real state number.
func insertEmptyAlt(other *PredictionContext) *PredictionContext {
	n := other.Size()
	parents := make([]*PredictionContext, n+1)
	returnStates := make([]int, n+1)
	copy(parents, other.Parents)
	copy(returnStates, other.ReturnStates)
	parents[n] = nil
	returnStates[n] = EmptyReturnState
	return newArrayContext(parents, returnStates, true)
}

func parentSlot(p *PredictionContext) *PredictionContext {
	if p.IsEmpty() {
		return nil
	}
	return p
}

// joinNonEmpty walks the two sorted return-state lists in lockstep
// like a merge-sort.
func joinNonEmpty(a, b *PredictionContext, cache *joinCache) *PredictionContext {
	i, j := 0, 0
	na, nb := a.Size(), b.Size()
	parents := make([]*PredictionContext, 0, na+nb)
	returnStates := make([]int, 0, na+nb)
	canReturnLeft, canReturnRight := true, true

	for i < na && j < nb {
		ra, rb := a.GetReturnState(i), b.GetReturnState(j)
		switch {
		case ra == rb:
			pa, pb := a.GetParent(i), b.GetParent(j)
			merged := Join(pa, pb, cache)
			parents = append(parents, parentSlot(merged))
			returnStates = append(returnStates, ra)
			if merged != pa {
				canReturnLeft = false
			}
			if merged != pb {
				canReturnRight = false
			}
			i++
			j++
		case ra < rb:
			parents = append(parents, a.Parents[i])
			returnStates = append(returnStates, ra)
			canReturnRight = false
			i++
		default:
			parents = append(parents, b.Parents[j])
			returnStates = append(returnStates, rb)
			canReturnLeft = false
			j++
		}
	}
	for ; i < na; i++ {
		parents = append(parents, a.Parents[i])
		returnStates = append(returnStates, a.GetReturnState(i))
		canReturnRight = false
	}
	for ; j < nb; j++ {
		parents = append(parents, b.Parents[j])
		returnStates = append(returnStates, b.GetReturnState(j))
		canReturnLeft = false
	}

	if canReturnLeft {
		return a
	}
	if canReturnRight {
		return b
	}
	full := a.full || b.full
	switch len(returnStates) {
	case 0:
		return EmptyFull
	case 1:
		return newSingleton(parents[0], returnStates[0], full)
	default:
		return newArrayContext(parents, returnStates, full)
	}
}

// AppendContext replaces every empty terminator reachable from ctx
// with suffix. The simulator does not call it: on LL failover it seeds
// the full-context start state with the outer context directly.
func AppendContext(ctx, suffix *PredictionContext, cache map[*PredictionContext]*PredictionContext) *PredictionContext {
	if ctx.IsEmpty() {
		return suffix
	}
	if v, ok := cache[ctx]; ok {
		return v
	}
	n := ctx.Size()
	parents := make([]*PredictionContext, n)
	for i := 0; i < n; i++ {
		parents[i] = parentSlot(AppendContext(ctx.GetParent(i), suffix, cache))
	}
	returnStates := append([]int(nil), ctx.ReturnStates...)
	var result *PredictionContext
	if n == 1 {
		result = newSingleton(parents[0], returnStates[0], ctx.full)
	} else {
		result = newArrayContext(parents, returnStates, ctx.full)
	}
	cache[ctx] = result
	return result
}

// ContextCache hash-conses PredictionContext instances so that
// structurally equal contexts built independently (e.g. by two
// concurrent parser instances) collapse to the same pointer, which is
// what lets DFAState identity rely on config-set equality instead of
// deep structural comparisons everywhere. Safe for concurrent use.
type ContextCache struct {
	mu      sync.Mutex
	buckets map[uint64][]*PredictionContext
	group   singleflight.Group
}

func NewContextCache() *ContextCache {
	return &ContextCache{buckets: make(map[uint64][]*PredictionContext)}
}

// GetCachedContext interns ctx and every context reachable through
// its parents, returning the canonical representative for ctx's shape.
// visited short-circuits re-interning of subgraphs already processed
// within this call.
func (c *ContextCache) GetCachedContext(ctx *PredictionContext, visited map[*PredictionContext]*PredictionContext) *PredictionContext {
	if ctx.IsEmpty() {
		return ctx
	}
	if cached, ok := visited[ctx]; ok {
		return cached
	}

	n := ctx.Size()
	parents := make([]*PredictionContext, n)
	changed := false
	for i := 0; i < n; i++ {
		cp := c.GetCachedContext(ctx.GetParent(i), visited)
		parents[i] = parentSlot(cp)
		if cp != ctx.GetParent(i) {
			changed = true
		}
	}

	var candidate *PredictionContext
	if !changed {
		candidate = ctx
	} else if n == 1 {
		candidate = newSingleton(parents[0], ctx.ReturnStates[0], ctx.full)
	} else {
		candidate = newArrayContext(parents, append([]int(nil), ctx.ReturnStates...), ctx.full)
	}

	interned := c.intern(candidate)
	visited[ctx] = interned
	return interned
}

func (c *ContextCache) intern(ctx *PredictionContext) *PredictionContext {
	key := ctx.Hash()
	v, _, _ := c.group.Do(groupKey(key), func() (any, error) {
		c.mu.Lock()
		defer c.mu.Unlock()
		for _, existing := range c.buckets[key] {
			if existing.Equals(ctx) {
				return existing, nil
			}
		}
		c.buckets[key] = append(c.buckets[key], ctx)
		return ctx, nil
	})
	return v.(*PredictionContext)
}

func groupKey(h uint64) string {
	const hexdigits = "0123456789abcdef"
	buf := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		buf[i] = hexdigits[h&0xF]
		h >>= 4
	}
	return string(buf)
}
