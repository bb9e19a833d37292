package main

import (
	"bufio"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const indent = "  "

// writeJSON pretty-prints v, a tree as built by the decoder, with a
// two-space indent and one element per line. Non-ASCII text is written
// as is and there's no trailing newline.
//
// Write errors are sticky in a bufio.Writer, callers find out about
// them when flushing.
func writeJSON(w *bufio.Writer, v interface{}) {
	writeValue(w, v, 0)
}

func writeValue(w *bufio.Writer, v interface{}, depth int) {
	switch v := v.(type) {
	case nil:
		w.WriteString("null")
	case bool:
		w.WriteString(strconv.FormatBool(v))
	case number:
		w.WriteString(v.String())
	case string:
		writeString(w, v)
	case []interface{}:
		if len(v) == 0 {
			w.WriteString("[]")
			return
		}
		w.WriteString("[\n")
		for i, elem := range v {
			writeIndent(w, depth+1)
			writeValue(w, elem, depth+1)
			if i < len(v)-1 {
				w.WriteByte(',')
			}
			w.WriteByte('\n')
		}
		writeIndent(w, depth)
		w.WriteByte(']')
	case *object:
		if v.len() == 0 {
			w.WriteString("{}")
			return
		}
		w.WriteString("{\n")
		for i, key := range v.keys {
			writeIndent(w, depth+1)
			writeString(w, key)
			w.WriteString(": ")
			writeValue(w, v.values[key], depth+1)
			if i < len(v.keys)-1 {
				w.WriteByte(',')
			}
			w.WriteByte('\n')
		}
		writeIndent(w, depth)
		w.WriteByte('}')
	default:
		panic(fmt.Sprintf("writeValue: unexpected %T", v))
	}
}

func writeIndent(w *bufio.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.WriteString(indent)
	}
}

func writeString(w *bufio.Writer, s string) {
	w.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			w.WriteString(`\"`)
		case '\\':
			w.WriteString(`\\`)
		case '\n':
			w.WriteString(`\n`)
		case '\r':
			w.WriteString(`\r`)
		case '\t':
			w.WriteString(`\t`)
		case '\b':
			w.WriteString(`\b`)
		case '\f':
			w.WriteString(`\f`)
		default:
			if c < 0x20 {
				fmt.Fprintf(w, `\u%04x`, c)
			} else {
				w.WriteByte(c)
			}
		}
	}
	w.WriteByte('"')
}

// String formats n for output: integers in full, floats as their
// shortest round-trip representation, so 2.50 comes out as 2.5.
func (n number) String() string {
	switch {
	case n.isInt:
		return strconv.FormatInt(n.i, 10)
	case !strings.ContainsAny(n.text, ".eEIN"):
		// An integer too large for int64, its text is exact.
		return n.text
	default:
		return formatFloat(n.f)
	}
}

// formatFloat renders f with the shortest digits that round-trip,
// positional between 1e-4 and 1e16 and always with a fractional
// part, in exponent notation with at least two exponent digits
// otherwise: 1.0, 0.0001, 1e-05, 1234.5, 1e+16.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exponent := s, "0"
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		mantissa, exponent = s[:i], s[i+1:]
	}
	exp, _ := strconv.Atoi(exponent)
	sign := ""
	if strings.HasPrefix(mantissa, "-") {
		sign, mantissa = "-", mantissa[1:]
	}
	ds := strings.Replace(mantissa, ".", "", 1)

	if -4 <= exp && exp < 16 {
		var whole, frac string
		switch {
		case exp < 0:
			whole, frac = "0", strings.Repeat("0", -exp-1)+ds
		case len(ds) <= exp+1:
			whole, frac = ds+strings.Repeat("0", exp+1-len(ds)), "0"
		default:
			whole, frac = ds[:exp+1], ds[exp+1:]
		}
		return sign + whole + "." + frac
	}

	out := sign + ds[:1]
	if len(ds) > 1 {
		out += "." + ds[1:]
	}
	esign := "+"
	if exp < 0 {
		esign, exp = "-", -exp
	}
	return fmt.Sprintf("%se%s%02d", out, esign, exp)
}
