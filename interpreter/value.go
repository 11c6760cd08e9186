package interpreter

import (
	"math"
	"strconv"
)

// Value is a runtime value of the surface language. spec.md §3 closes the
// domain to exactly four alternatives — nil, boolean, number, string — and
// Go's own interface{} already models a closed four-member sum type once
// only nil, bool, float64, and string are ever stored in it: a concrete
// type switch over those four cases is exhaustive. This is what spec.md
// §9's design note means by "the boolean cast bug in the source disappears
// naturally" — the teacher's objects.GoMixObject wrapper hierarchy
// (Integer/Float/String/Boolean/Nil structs with GetType/ToString/ToObject
// methods) exists in go-mix because it needs to be open to many more
// variants (arrays, maps, functions, structs); a four-member closed
// variant doesn't need that machinery, so this package uses bare Go values
// instead of wrapping them.
type Value = interface{}

// isTruthy implements spec.md's Truthiness definition: nil and the boolean
// false are false; every other value is true, including 0, "", and NaN.
func isTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual implements spec.md §4.3's equality semantics: nil equals only
// nil, cross-kind comparisons are false, and same-kind comparisons use
// ordinary value equality.
func isEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return false
	}
}

// stringify implements spec.md §4.3's Stringification rules, including the
// Open Question decision (SPEC_FULL.md) to spell non-finite floats the way
// spec.md §8's acceptance table expects ("Infinity", not Go's "+Inf").
func stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	switch val := v.(type) {
	case bool:
		return strconv.FormatBool(val)
	case string:
		return val
	case float64:
		return stringifyNumber(val)
	default:
		return "nil"
	}
}

func stringifyNumber(n float64) string {
	if math.IsNaN(n) {
		return "NaN"
	}
	if math.IsInf(n, 1) {
		return "Infinity"
	}
	if math.IsInf(n, -1) {
		return "-Infinity"
	}
	// 'f' with shortest-round-trip precision already renders 1.0 as "1"
	// and 1.5 as "1.5" — the ".0"-stripping spec.md §4.3 calls for is a
	// property of the host language's default float formatting, which
	// Go's shortest-round-trip FormatFloat doesn't need fixing up.
	return strconv.FormatFloat(n, 'f', -1, 64)
}
