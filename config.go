package atn

import (
	"fmt"
	"sort"
)

// Config is a typed key/value bag of runtime tunables, handed to
// NewParserSimulator. Shaped like a feature-flag map rather than a
// struct so that knobs can be added without growing the simulator's
// constructor signature. The simulator and the decoders read none of
// these keys: LL failover always runs after an SLL conflict, ambiguity
// reports always carry Exact=true, the caller's context is always
// polled between tokens, the closure depth cap (ClosureContext.MaxDepth)
// is not filled from config.max_outer_context_depth, no precedence
// bound is enforced, and the decode policy is whatever the caller
// passes to the Decode functions.
type Config map[string]*cfgVal

// NewConfig returns a Config primed with reasonable defaults:
// SLL-first with LL failover enabled, inexact ambiguity reporting, and
// a permissive precedence bound.
func NewConfig() *Config {
	m := make(Config)
	// if false, skip LL failover entirely and return whatever SLL found
	m.SetBool("prediction.ll_failover", true)
	// if true, only report ambiguity when every config's context union
	// is provably identical (the "exact" flag)
	m.SetBool("prediction.exact_ambiguity", false)
	// upper bound (inclusive) for a precedence DFA's precedence edge index
	m.SetInt("prediction.max_precedence", 200)
	// outerContextDepth saturation point
	m.SetInt("config.max_outer_context_depth", 127)
	// malformed bytes in a CharStream: "replace" with U+FFFD or "report" an error
	m.SetString("stream.decode_policy", "replace")
	// poll a caller-supplied deadline between token transitions
	m.SetBool("prediction.honor_deadline", false)
	return &m
}

func (c *Config) Debug() {
	fmt.Println("Configuration")

	keys := make([]string, 0, len(*c))
	width := 0
	for k := range *c {
		keys = append(keys, k)
		width = max(width, len(k))
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Printf("%s", k)
		for i := 0; i < width-len(k); i++ {
			fmt.Printf(" ")
		}
		fmt.Printf(" : ")
		fmt.Println((*c)[k].String())
	}
}

type cfgValType int

const (
	cfgValType_Undefined cfgValType = iota
	cfgValType_Bool
	cfgValType_Int
	cfgValType_String
)

func (vt cfgValType) String() string {
	return map[cfgValType]string{
		cfgValType_Undefined: "undefined",
		cfgValType_Bool:      "bool",
		cfgValType_Int:       "int",
		cfgValType_String:    "string",
	}[vt]
}

type cfgVal struct {
	typ      cfgValType
	asBool   bool
	asInt    int
	asString string
}

func (v *cfgVal) assignType(vt cfgValType) {
	if v.typ != vt && v.typ != cfgValType_Undefined {
		panic(fmt.Sprintf("can't assign `%s` to type `%s`", vt, v.typ))
	}
	v.typ = vt
}

func (v *cfgVal) checkType(vt cfgValType) {
	if v.typ != vt {
		panic(fmt.Sprintf("can't retrieve `%s` from `%s` variable", vt, v.typ))
	}
}

func (v *cfgVal) String() string {
	switch v.typ {
	case cfgValType_Bool:
		return fmt.Sprintf("%t (bool)", v.asBool)
	case cfgValType_Int:
		return fmt.Sprintf("%d (int)", v.asInt)
	case cfgValType_String:
		return fmt.Sprintf("%s (string)", v.asString)
	case cfgValType_Undefined:
		return "(undefined)"
	default:
		panic(fmt.Sprintf("unknown cfgVal type: %v", v.typ))
	}
}

func (c *Config) SetBool(path string, v bool) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValType_Bool)
	(*c)[path].asBool = v
}

func (c *Config) SetInt(path string, v int) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValType_Int)
	(*c)[path].asInt = v
}

func (c *Config) SetString(path string, v string) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValType_String)
	(*c)[path].asString = v
}

func (c *Config) GetBool(path string) bool {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_Bool)
		return val.asBool
	}
	panic(fmt.Sprintf("bool setting `%s` does not exist", path))
}

func (c *Config) GetInt(path string) int {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_Int)
		return val.asInt
	}
	panic(fmt.Sprintf("int setting `%s` does not exist", path))
}

func (c *Config) GetString(path string) string {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_String)
		return val.asString
	}
	panic(fmt.Sprintf("string setting `%s` does not exist", path))
}
