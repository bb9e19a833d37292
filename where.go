package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type operator int

const (
	opEq operator = iota
	opNe
	opGe
	opLe
	opGt
	opLt
)

// Symbols in detection order: two-character symbols first, since >=
// contains >.
var symbols = [...]struct {
	symbol string
	op     operator
}{
	{"==", opEq},
	{"!=", opNe},
	{">=", opGe},
	{"<=", opLe},
	{">", opGt},
	{"<", opLt},
}

// String implements fmt.Stringer.
func (o operator) String() string {
	for _, s := range symbols {
		if s.op == o {
			return s.symbol
		}
	}
	return fmt.Sprintf("operator(%d)", int(o))
}

type connective int

const (
	connAnd connective = iota
	connOr
)

// String implements fmt.Stringer.
func (c connective) String() string {
	if c == connOr {
		return "or"
	}
	return "and"
}

type kind int

const (
	kindInt kind = iota
	kindFloat
	kindBool
	kindString
)

// value is the typed right-hand side of a comparison. Only the field
// selected by kind is meaningful.
type value struct {
	kind kind
	i    int64
	f    float64
	b    bool
	s    string
}

// String implements fmt.Stringer.
func (v value) String() string {
	switch v.kind {
	case kindInt:
		return strconv.FormatInt(v.i, 10)
	case kindFloat:
		return formatFloat(v.f)
	case kindBool:
		return strconv.FormatBool(v.b)
	default:
		return strconv.Quote(v.s)
	}
}

// coerce types a raw literal, the first that applies wins: base-10
// integer, float, true/false in any case, otherwise the string itself.
// Digits may be grouped with single underscores, as in 1_000. A float
// literal too large for float64 is infinite rather than a string.
func coerce(raw string) value {
	if num, ok := stripDigitUnderscores(raw); ok {
		if i, err := strconv.ParseInt(num, 10, 64); err == nil {
			return value{kind: kindInt, i: i}
		}
		// ParseFloat also takes hex floats such as 0x1p4, which are not
		// decimal literals.
		if !strings.ContainsAny(num, "xX") {
			f, err := strconv.ParseFloat(num, 64)
			if err == nil || errors.Is(err, strconv.ErrRange) {
				return value{kind: kindFloat, f: f}
			}
		}
	}
	switch strings.ToLower(raw) {
	case "true":
		return value{kind: kindBool, b: true}
	case "false":
		return value{kind: kindBool, b: false}
	}
	return value{kind: kindString, s: raw}
}

// stripDigitUnderscores removes the underscores of raw that sit between
// two digits. It reports false if any other underscore is present.
func stripDigitUnderscores(raw string) (string, bool) {
	if !strings.Contains(raw, "_") {
		return raw, true
	}
	isDigit := func(i int) bool {
		return i >= 0 && i < len(raw) && '0' <= raw[i] && raw[i] <= '9'
	}
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] == '_' {
			if !isDigit(i-1) || !isDigit(i+1) {
				return "", false
			}
			continue
		}
		b.WriteByte(raw[i])
	}
	return b.String(), true
}

// condition is one key<symbol>value comparison. The connective is the
// one that was in effect when the comparison was read; the evaluator
// uses it to fold in the result of the comparison after this one.
type condition struct {
	key        string
	op         operator
	value      value
	connective connective
}

// String implements fmt.Stringer.
func (c condition) String() string {
	return fmt.Sprintf("%s %s %v (%s)", c.key, c.op, c.value, c.connective)
}

// parseWhere turns a --where expression into conditions, in order of
// appearance.
//
// The expression is split on whitespace after every AND and OR in it
// has been lowercased, a plain substring replacement that also touches
// keys and values (COLOR==RED is read as COLor==RED). A word that
// lowercases to and/or sets the connective for all the comparisons
// that follow it, until the next one; the connective starts as and.
// A word with none of the comparison symbols is ignored.
func parseWhere(expr string) []condition {
	expr = strings.ReplaceAll(expr, "AND", "and")
	expr = strings.ReplaceAll(expr, "OR", "or")

	var conds []condition
	pending := connAnd
	for _, tok := range strings.Fields(expr) {
		switch strings.ToLower(tok) {
		case "and":
			pending = connAnd
			continue
		case "or":
			pending = connOr
			continue
		}
		for _, s := range symbols {
			i := strings.Index(tok, s.symbol)
			if i < 0 {
				continue
			}
			conds = append(conds, condition{
				key:        strings.TrimSpace(tok[:i]),
				op:         s.op,
				value:      coerce(strings.TrimSpace(tok[i+len(s.symbol):])),
				connective: pending,
			})
			break
		}
	}
	return conds
}
