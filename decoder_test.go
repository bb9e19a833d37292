package main

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// obj builds an object from alternating keys and values.
func obj(kv ...interface{}) *object {
	o := newObject(len(kv) / 2)
	for i := 0; i+1 < len(kv); i += 2 {
		o.set(kv[i].(string), kv[i+1])
	}
	return o
}

func integer(i int64, text string) number {
	return number{text: text, isInt: true, i: i}
}

var cmpDoc = cmp.AllowUnexported(object{}, number{})

func decodeString(t *testing.T, s string) interface{} {
	t.Helper()
	v, err := newDecoder(strings.NewReader(s)).decode()
	if err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return v
}

func TestDecode(t *testing.T) {
	tests := []struct {
		input string
		want  interface{}
	}{
		{"null", nil},
		{"true", true},
		{" false ", false},
		{`"plain"`, "plain"},
		{`"tab\there é 😀 \/"`, "tab\there é 😀 /"},
		{"-12", integer(-12, "-12")},
		{"1.5", number{text: "1.5", f: 1.5}},
		{"1e3", number{text: "1e3", f: 1000}},
		{"[]", []interface{}{}},
		{"{}", newObject(0)},
		{
			`[1, "two", [true], {"k": null}]`,
			[]interface{}{integer(1, "1"), "two", []interface{}{true}, obj("k", nil)},
		},
		{
			`{"z": 1, "a": 2, "m": 3}`,
			obj("z", integer(1, "1"), "a", integer(2, "2"), "m", integer(3, "3")),
		},
		{
			// A repeated key keeps its first position and its last value.
			`{"a": 1, "b": 2, "a": 3}`,
			obj("a", integer(3, "3"), "b", integer(2, "2")),
		},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := decodeString(t, tt.input)
			if diff := cmp.Diff(tt.want, got, cmpDoc); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeKeyOrder(t *testing.T) {
	got := decodeString(t, `{"name": "Dana", "id": 5, "age": 30}`).(*object)
	if diff := cmp.Diff([]string{"name", "id", "age"}, got.keys); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDecodeNumbers(t *testing.T) {
	tests := []struct {
		input string
		isInt bool
		i     int64
		f     float64
	}{
		{"0", true, 0, 0},
		{"-0", true, 0, 0},
		{"9223372036854775807", true, math.MaxInt64, 0},
		{"9223372036854775808", false, 0, 9223372036854775808},
		{"2.50", false, 0, 2.5},
		{"1E400", false, 0, math.Inf(1)},
		{"Infinity", false, 0, math.Inf(1)},
		{"-Infinity", false, 0, math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, ok := decodeString(t, tt.input).(number)
			if !ok {
				t.Fatalf("got %T, want number", n)
			}
			if n.isInt != tt.isInt || n.i != tt.i || n.f != tt.f {
				t.Errorf("got %+v, want isInt=%v i=%v f=%v", n, tt.isInt, tt.i, tt.f)
			}
		})
	}
	n := decodeString(t, "NaN").(number)
	if !math.IsNaN(n.f) {
		t.Errorf("got %v, want NaN", n.f)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "expecting value, got EOF"},
		{"[1, 2", "expecting comma or right bracket"},
		{"[1 2]", "expecting comma or right bracket"},
		{"[1,]", "expecting value"},
		{`{"a" 1}`, "expecting colon"},
		{`{1: 2}`, "expecting quoted string for key"},
		{`{"a": 1,}`, "expecting quoted string for key"},
		{`{"a": 1 "b": 2}`, "expecting comma or right curly brace"},
		{"[] []", "extra data"},
		{"[nope]", `invalid literal "nope"`},
		{`{"a": "unfinished}`, "unfinished quoted string"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := newDecoder(strings.NewReader(tt.input)).decode()
			if err == nil {
				t.Fatal("got nil error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestDecodeArray(t *testing.T) {
	elems, err := newDecoder(strings.NewReader(`[{"a": 1}, 2]`)).decodeArray()
	if err != nil {
		t.Fatal(err)
	}
	if len(elems) != 2 {
		t.Errorf("got %d elements, want 2", len(elems))
	}
	for _, input := range []string{`{"a": 1}`, `"text"`, `3`, `null`} {
		_, err := newDecoder(strings.NewReader(input)).decodeArray()
		if !errors.Is(err, errNotArray) {
			t.Errorf("%s: got %v, want %v", input, err, errNotArray)
		}
	}
}
