package main

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var cmpConds = cmp.AllowUnexported(condition{}, value{})

func intValue(i int64) value { return value{kind: kindInt, i: i} }
func floatValue(f float64) value { return value{kind: kindFloat, f: f} }
func boolValue(b bool) value { return value{kind: kindBool, b: b} }
func stringValue(s string) value { return value{kind: kindString, s: s} }

func TestCoerce(t *testing.T) {
	tests := []struct {
		raw  string
		want value
	}{
		{"18", intValue(18)},
		{"-3", intValue(-3)},
		{"+7", intValue(7)},
		{"007", intValue(7)},
		{"9.5", floatValue(9.5)},
		{"1e3", floatValue(1000)},
		{".5", floatValue(0.5)},
		{"99999999999999999999", floatValue(1e20)},
		{"true", boolValue(true)},
		{"TRUE", boolValue(true)},
		{"False", boolValue(false)},
		{"US", stringValue("US")},
		{"us", stringValue("us")},
		{"yes", stringValue("yes")},
		{"0x10", stringValue("0x10")},
		{"1_000", intValue(1000)},
		{"-1_000_000", intValue(-1000000)},
		{"1_000.5", floatValue(1000.5)},
		{"1e1_0", floatValue(1e10)},
		{"1__000", stringValue("1__000")},
		{"_1", stringValue("_1")},
		{"1_", stringValue("1_")},
		{"1_.5", stringValue("1_.5")},
		{"", stringValue("")},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, coerce(tt.raw), cmpConds); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
	if v := coerce("inf"); v.kind != kindFloat || !math.IsInf(v.f, 1) {
		t.Errorf("inf: got %v", v)
	}
	for _, raw := range []string{"1e500", "-1e500"} {
		if v := coerce(raw); v.kind != kindFloat || !math.IsInf(v.f, 0) {
			t.Errorf("%s: got %v, want an infinite float", raw, v)
		}
	}
	if v := coerce("nan"); v.kind != kindFloat || !math.IsNaN(v.f) {
		t.Errorf("nan: got %v", v)
	}
}

func TestParseWhere(t *testing.T) {
	tests := []struct {
		expr string
		want []condition
	}{
		{"", nil},
		{"   ", nil},
		{"no comparison here", nil},
		{
			"age>=18",
			[]condition{{"age", opGe, intValue(18), connAnd}},
		},
		{
			"age>=18 and country==IL",
			[]condition{
				{"age", opGe, intValue(18), connAnd},
				{"country", opEq, stringValue("IL"), connAnd},
			},
		},
		{
			// The connective is sticky: it stays until the next one.
			"a==1 or b==2 c==3 and d==4",
			[]condition{
				{"a", opEq, intValue(1), connAnd},
				{"b", opEq, intValue(2), connOr},
				{"c", opEq, intValue(3), connOr},
				{"d", opEq, intValue(4), connAnd},
			},
		},
		{
			"a==1 or b==2 and c==3",
			[]condition{
				{"a", opEq, intValue(1), connAnd},
				{"b", opEq, intValue(2), connOr},
				{"c", opEq, intValue(3), connAnd},
			},
		},
		{
			"x!=1 y<=2 z>3 w<4.5",
			[]condition{
				{"x", opNe, intValue(1), connAnd},
				{"y", opLe, intValue(2), connAnd},
				{"z", opGt, intValue(3), connAnd},
				{"w", opLt, floatValue(4.5), connAnd},
			},
		},
		{
			"a==1 OR b==2 Or c==3 AND d==4",
			[]condition{
				{"a", opEq, intValue(1), connAnd},
				{"b", opEq, intValue(2), connOr},
				{"c", opEq, intValue(3), connOr},
				{"d", opEq, intValue(4), connAnd},
			},
		},
		{
			// Uppercase AND/OR is lowercased inside comparisons too.
			"COLOR==RED BRAND==ANDROID",
			[]condition{
				{"COLor", opEq, stringValue("RED"), connAnd},
				{"BRand", opEq, stringValue("andROID"), connAnd},
			},
		},
		{
			// Symbols are tried in a fixed order, the first one present
			// splits the token at its first occurrence.
			"a<=b==c x=>1 p>q>r k==",
			[]condition{
				{"a<=b", opEq, stringValue("c"), connAnd},
				{"x=", opGt, intValue(1), connAnd},
				{"p", opGt, stringValue("q>r"), connAnd},
				{"k", opEq, stringValue(""), connAnd},
			},
		},
		{
			"==5 stray active==true",
			[]condition{
				{"", opEq, intValue(5), connAnd},
				{"active", opEq, boolValue(true), connAnd},
			},
		},
		{
			"\tname!=Anonymous\n",
			[]condition{{"name", opNe, stringValue("Anonymous"), connAnd}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, parseWhere(tt.expr), cmpConds); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestConditionString(t *testing.T) {
	got := parseWhere("score<=9.5 or name==Dana")
	want := []string{"score <= 9.5 (and)", `name == "Dana" (or)`}
	for i, c := range got {
		if c.String() != want[i] {
			t.Errorf("got %q, want %q", c.String(), want[i])
		}
	}
}
