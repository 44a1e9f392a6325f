package atn

import (
	"fmt"
	"sort"
	"strings"
)

// SemanticContext is the boolean predicate expression attached to an
// ATNConfig. Leaves are Predicate/PrecedencePredicate;
// interior nodes are AND/OR. The always-true context is represented by
// a nil *SemanticContext throughout this package so that the common
// case (no predicates at all) costs nothing.
type SemanticContext struct {
	kind semCtxKind
	pred *Predicate
	prec *PrecedencePredicate
	opnds []*SemanticContext
}

type semCtxKind int

const (
	semLeafPredicate semCtxKind = iota
	semLeafPrecedence
	semAnd
	semOr
)

// PredicateEvaluator evaluates the leaf predicates of a SemanticContext
// against whatever recognizer state the embedding application carries;
// this package only walks the AND/OR structure — predicate
// bodies are opaque user code.
type PredicateEvaluator interface {
	EvalPredicate(ruleIndex, predIndex int) bool
	EvalPrecedencePredicate(precedence int) bool
}

// Predicate is a `{...}?` semantic predicate leaf.
type Predicate struct {
	RuleIndex int
	PredIndex int
	IsCtxDep  bool
}

func (p *Predicate) String() string {
	return fmt.Sprintf("{%d:%d}?", p.RuleIndex, p.PredIndex)
}

func (p *Predicate) asContext() *SemanticContext {
	return &SemanticContext{kind: semLeafPredicate, pred: p}
}

// PrecedencePredicate is a `{precedence >= N}?` leaf generated for
// left-recursive rule alternatives.
type PrecedencePredicate struct {
	Precedence int
}

func (p *PrecedencePredicate) String() string {
	return fmt.Sprintf("{%d>=prec}?", p.Precedence)
}

func (p *PrecedencePredicate) asContext() *SemanticContext {
	return &SemanticContext{kind: semLeafPrecedence, prec: p}
}

// SemAnd builds the conjunction of operands, flattening nested ANDs
// and dropping nil (always-true) operands.
func SemAnd(operands ...*SemanticContext) *SemanticContext {
	return semCombine(semAnd, operands)
}

// SemOr builds the disjunction of operands, flattening nested ORs. If
// any operand is nil (always true), the whole OR is always true (nil).
func SemOr(operands ...*SemanticContext) *SemanticContext {
	return semCombine(semOr, operands)
}

func semCombine(kind semCtxKind, operands []*SemanticContext) *SemanticContext {
	flat := make([]*SemanticContext, 0, len(operands))
	for _, o := range operands {
		if o == nil {
			if kind == semOr {
				return nil
			}
			continue
		}
		if o.kind == kind {
			flat = append(flat, o.opnds...)
		} else {
			flat = append(flat, o)
		}
	}
	switch len(flat) {
	case 0:
		if kind == semAnd {
			return nil
		}
		return nil
	case 1:
		return flat[0]
	}
	dedupeSemContexts(&flat)
	if len(flat) == 1 {
		return flat[0]
	}
	return &SemanticContext{kind: kind, opnds: flat}
}

func dedupeSemContexts(flat *[]*SemanticContext) {
	seen := make(map[string]bool, len(*flat))
	out := (*flat)[:0]
	for _, c := range *flat {
		k := c.String()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	*flat = out
}

// Eval walks the AND/OR tree, short-circuiting, dispatching leaves to
// ev. A nil receiver (always-true context) evaluates to true.
func (c *SemanticContext) Eval(ev PredicateEvaluator) bool {
	if c == nil {
		return true
	}
	switch c.kind {
	case semLeafPredicate:
		return ev.EvalPredicate(c.pred.RuleIndex, c.pred.PredIndex)
	case semLeafPrecedence:
		return ev.EvalPrecedencePredicate(c.prec.Precedence)
	case semAnd:
		for _, o := range c.opnds {
			if !o.Eval(ev) {
				return false
			}
		}
		return true
	case semOr:
		for _, o := range c.opnds {
			if o.Eval(ev) {
				return true
			}
		}
		return false
	}
	return true
}

// EvalPrecedenceOnly evaluates only the precedence-predicate leaves
// against the current precedence level, treating every plain semantic
// predicate leaf as true. The simulator does not call it; no
// precedence filtering of a DFA's config set takes place.
func (c *SemanticContext) EvalPrecedenceOnly(precedence int) bool {
	if c == nil {
		return true
	}
	switch c.kind {
	case semLeafPredicate:
		return true
	case semLeafPrecedence:
		return precedence >= c.prec.Precedence
	case semAnd:
		for _, o := range c.opnds {
			if !o.EvalPrecedenceOnly(precedence) {
				return false
			}
		}
		return true
	case semOr:
		for _, o := range c.opnds {
			if o.EvalPrecedenceOnly(precedence) {
				return true
			}
		}
		return false
	}
	return true
}

// HasPrecedencePredicates reports whether any leaf is a
// PrecedencePredicate (used to decide whether a config set needs
// precedence filtering at all).
func (c *SemanticContext) HasPrecedencePredicates() bool {
	if c == nil {
		return false
	}
	switch c.kind {
	case semLeafPrecedence:
		return true
	case semAnd, semOr:
		for _, o := range c.opnds {
			if o.HasPrecedencePredicates() {
				return true
			}
		}
	}
	return false
}

// FilterPrecedencePredicates removes every PrecedencePredicate leaf
// from an AND tree once it has been resolved against the current
// precedence level, leaving only the plain predicates still to be
// evaluated at accept time.
func (c *SemanticContext) FilterPrecedencePredicates() *SemanticContext {
	if c == nil {
		return nil
	}
	switch c.kind {
	case semLeafPrecedence:
		return nil
	case semLeafPredicate:
		return c
	case semAnd:
		kept := make([]*SemanticContext, 0, len(c.opnds))
		for _, o := range c.opnds {
			if f := o.FilterPrecedencePredicates(); f != nil {
				kept = append(kept, f)
			}
		}
		return semCombine(semAnd, kept)
	case semOr:
		kept := make([]*SemanticContext, 0, len(c.opnds))
		for _, o := range c.opnds {
			if f := o.FilterPrecedencePredicates(); f != nil {
				kept = append(kept, f)
			}
		}
		return semCombine(semOr, kept)
	}
	return c
}

func (c *SemanticContext) String() string {
	if c == nil {
		return "true"
	}
	switch c.kind {
	case semLeafPredicate:
		return c.pred.String()
	case semLeafPrecedence:
		return c.prec.String()
	case semAnd, semOr:
		parts := make([]string, len(c.opnds))
		for i, o := range c.opnds {
			parts[i] = o.String()
		}
		sort.Strings(parts)
		sep := "&&"
		if c.kind == semOr {
			sep = "||"
		}
		return "(" + strings.Join(parts, sep) + ")"
	}
	return "true"
}

// SemPredicate builds a leaf SemanticContext from a raw predicate
// transition, the common entry point from closure().
func SemPredicate(t *PredicateTransition) *SemanticContext {
	return t.Predicate().asContext()
}

// SemPrecedencePredicate builds a leaf SemanticContext from a raw
// precedence-predicate transition.
func SemPrecedencePredicate(t *PrecedencePredicateTransition) *SemanticContext {
	return t.PrecedencePredicate().asContext()
}
