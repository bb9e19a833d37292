package main

import (
	"math"
	"math/big"
	"strings"
)

// record is what conditions are evaluated against.
type record interface {
	Lookup(key string) (interface{}, bool)
}

// keep folds the results of conds over rec from left to right, with no
// precedence and no short-circuit. The first result is and-ed into an
// initial true; each later result is combined using the connective
// carried by the condition before it. So in
//
//	a==1 or b==2 and c==3
//
// the conditions carry and, or, and and the fold is
// ((true and a==1) and b==2) or c==3, which is seldom what the
// expression reads like. No conditions keep everything.
func keep(rec record, conds []condition) bool {
	kept := true
	applied := connAnd
	for _, c := range conds {
		left, present := rec.Lookup(c.key)
		result := present && c.op.apply(left, c.value)
		if applied == connAnd {
			kept = kept && result
		} else {
			kept = kept || result
		}
		applied = c.connective
	}
	return kept
}

// apply compares a record value against a literal. Booleans count as
// the numbers 0 and 1, integers and floats compare by exact value,
// strings by code point. Any other pairing is unequal and unordered,
// and so is NaN.
func (o operator) apply(left interface{}, right value) bool {
	c, ordered := compare(left, right)
	switch o {
	case opEq:
		return ordered && c == 0
	case opNe:
		return !ordered || c != 0
	case opGe:
		return ordered && c >= 0
	case opLe:
		return ordered && c <= 0
	case opGt:
		return ordered && c > 0
	case opLt:
		return ordered && c < 0
	default:
		return false
	}
}

func compare(left interface{}, right value) (int, bool) {
	if s, ok := left.(string); ok {
		if right.kind != kindString {
			return 0, false
		}
		return strings.Compare(s, right.s), true
	}
	a, ok := numericOf(left)
	if !ok {
		return 0, false
	}
	b, ok := right.numeric()
	if !ok {
		return 0, false
	}
	return compareNumeric(a, b)
}

type numeric struct {
	isInt bool
	i     int64
	f     float64
}

func numericOf(v interface{}) (numeric, bool) {
	switch v := v.(type) {
	case bool:
		if v {
			return numeric{isInt: true, i: 1}, true
		}
		return numeric{isInt: true}, true
	case number:
		return numeric{isInt: v.isInt, i: v.i, f: v.f}, true
	default:
		return numeric{}, false
	}
}

func (v value) numeric() (numeric, bool) {
	switch v.kind {
	case kindInt:
		return numeric{isInt: true, i: v.i}, true
	case kindFloat:
		return numeric{f: v.f}, true
	case kindBool:
		return numericOf(v.b)
	default:
		return numeric{}, false
	}
}

func compareNumeric(a, b numeric) (int, bool) {
	if a.isInt && b.isInt {
		switch {
		case a.i < b.i:
			return -1, true
		case a.i > b.i:
			return 1, true
		}
		return 0, true
	}
	if (!a.isInt && math.IsNaN(a.f)) || (!b.isInt && math.IsNaN(b.f)) {
		return 0, false
	}
	if !a.isInt && !b.isInt {
		switch {
		case a.f < b.f:
			return -1, true
		case a.f > b.f:
			return 1, true
		}
		return 0, true
	}
	// Mixed: converting the integer to float64 would round above 2^53.
	return a.big().Cmp(b.big()), true
}

func (n numeric) big() *big.Float {
	if n.isInt {
		return new(big.Float).SetInt64(n.i)
	}
	return new(big.Float).SetFloat64(n.f)
}

// project returns a new object holding exactly keys, in that order, with
// null for the ones rec lacks. No keys means no projection and rec
// itself is returned.
func project(rec *object, keys []string) *object {
	if len(keys) == 0 {
		return rec
	}
	out := newObject(len(keys))
	for _, k := range keys {
		v, _ := rec.Lookup(k)
		out.set(k, v)
	}
	return out
}
