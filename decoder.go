package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// object is a decoded JSON object. Keys are kept in order of first
// appearance so that records come out the way they went in.
type object struct {
	keys   []string
	values map[string]interface{}
}

func newObject(size int) *object {
	return &object{
		keys:   make([]string, 0, size),
		values: make(map[string]interface{}, size),
	}
}

// set adds or replaces a key. A replaced key keeps its position.
func (o *object) set(key string, value interface{}) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Lookup implements record.
func (o *object) Lookup(key string) (interface{}, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o *object) len() int {
	return len(o.keys)
}

// number is a decoded JSON number. Integers that fit in an int64 are
// kept exact, anything else is a float.
type number struct {
	text  string
	isInt bool
	i     int64
	f     float64
}

func parseNumber(text string) (number, error) {
	n := number{text: text}
	switch text {
	case "NaN":
		n.f = math.NaN()
		return n, nil
	case "Infinity":
		n.f = math.Inf(1)
		return n, nil
	case "-Infinity":
		n.f = math.Inf(-1)
		return n, nil
	}
	if !strings.ContainsAny(text, ".eE") {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			n.isInt = true
			n.i = i
			return n, nil
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return n, err
	}
	n.f = f
	return n, nil
}

// decoder is a recursive-descent parser over the lexer's items that
// builds the document tree: *object, []interface{}, string, number,
// bool and nil for null.
type decoder struct {
	l      *lexer
	last   item // Last item got from the lexer.
	repeat bool // Whether fetching the next item returns last or reads a new one from the lexer.
}

func newDecoder(r io.Reader) *decoder {
	return &decoder{l: newLexer(r)}
}

// decode reads exactly one value and expects the input to end after it.
func (d *decoder) decode() (interface{}, error) {
	v, err := d.decodeValue()
	if err != nil {
		return nil, err
	}
	switch it := d.nextItem(); it.typ {
	case itemEOF:
		return v, nil
	case itemError:
		return nil, errors.New(it.val)
	default:
		return nil, fmt.Errorf("extra data: %v", it)
	}
}

// decodeArray decodes a document whose top-level value must be an array.
func (d *decoder) decodeArray() ([]interface{}, error) {
	v, err := d.decode()
	if err != nil {
		return nil, err
	}
	elems, ok := v.([]interface{})
	if !ok {
		return nil, errNotArray
	}
	return elems, nil
}

var errNotArray = errors.New("top-level value is not an array")

func (d *decoder) nextItem() item {
	if !d.repeat {
		d.last = d.l.nextItem()
	} else {
		d.repeat = false
	}
	return d.last
}

// Only call once per call to nextItem.
func (d *decoder) backup() {
	d.repeat = true
}

func (d *decoder) decodeValue() (interface{}, error) {
	switch it := d.nextItem(); it.typ {
	case itemError:
		return nil, errors.New(it.val)
	case itemEOF:
		return nil, fmt.Errorf("%d:%d: expecting value, got EOF", it.line, it.col)
	case itemLeftCurlyBrace:
		return d.decodeObject()
	case itemLeftBracket:
		return d.decodeArrayElems()
	case itemString:
		return unquote(it)
	case itemNumber:
		n, err := parseNumber(it.val)
		if err != nil {
			return nil, fmt.Errorf("%d:%d: %w", it.line, it.col, err)
		}
		return n, nil
	case itemLiteral:
		switch it.val {
		case "true":
			return true, nil
		case "false":
			return false, nil
		case "null":
			return nil, nil
		}
		n, _ := parseNumber(it.val)
		return n, nil
	default:
		return nil, fmt.Errorf("expecting value, got %v", it)
	}
}

func (d *decoder) decodeObject() (interface{}, error) {
	o := newObject(8)
	if d.nextItem().typ == itemRightCurlyBrace {
		return o, nil
	}
	d.backup()
	for {
		it := d.nextItem()
		if it.typ == itemError {
			return nil, errors.New(it.val)
		}
		if it.typ != itemString {
			return nil, fmt.Errorf("expecting quoted string for key, got %v", it)
		}
		key, err := unquote(it)
		if err != nil {
			return nil, err
		}
		if it := d.nextItem(); it.typ != itemColon {
			return nil, fmt.Errorf("expecting colon after key, got %v", it)
		}
		v, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		o.set(key, v)
		// Either the object is complete, or there's a comma and another key-value pair.
		it = d.nextItem()
		if it.typ == itemRightCurlyBrace {
			return o, nil
		}
		if it.typ != itemComma {
			return nil, fmt.Errorf("expecting comma or right curly brace after key-value pair, got %v", it)
		}
	}
}

func (d *decoder) decodeArrayElems() (interface{}, error) {
	elems := []interface{}{}
	if d.nextItem().typ == itemRightBracket {
		return elems, nil
	}
	d.backup()
	for {
		v, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
		// Either the array is complete, or there's a comma and another value.
		it := d.nextItem()
		if it.typ == itemRightBracket {
			return elems, nil
		}
		if it.typ != itemComma {
			return nil, fmt.Errorf("expecting comma or right bracket after value, got %v", it)
		}
	}
}

// The lexer has already checked the escapes, what's left is turning
// them into runes, including surrogate pairs.
func unquote(it item) (string, error) {
	if !strings.ContainsRune(it.val, '\\') {
		return it.val[1 : len(it.val)-1], nil
	}
	var s string
	if err := json.Unmarshal([]byte(it.val), &s); err != nil {
		return "", fmt.Errorf("%d:%d: %w", it.line, it.col, err)
	}
	return s, nil
}
