package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

type itemType int

const (
	itemError itemType = iota
	itemEOF

	itemColon
	itemComma

	itemLeftBracket
	itemRightBracket
	itemLeftCurlyBrace
	itemRightCurlyBrace

	itemString  // Quoted, escapes still in place.
	itemNumber  // JSON number grammar.
	itemLiteral // true, false, null, NaN, Infinity, -Infinity.
)

const (
	eof       rune = -1
	digits         = "0123456789"
	hexDigits      = "0123456789abcdefABCDEF"
)

type item struct {
	typ  itemType
	val  string
	line int
	col  int
}

// String implements fmt.Stringer.
func (i item) String() string {
	switch i.typ {
	case itemEOF:
		return "EOF"
	case itemError:
		return i.val
	}
	if len(i.val) > 10 {
		return fmt.Sprintf("%.10q... at %d:%d", i.val, i.line, i.col)
	}
	return fmt.Sprintf("%q at %d:%d", i.val, i.line, i.col)
}

type stateFn func(*lexer) stateFn

// lexer tokenizes the input document for the decoder (see decoder.go).
// It reads from a stream rather than from a string holding the whole
// document, and unlike a lexer that only needs to locate values it
// rejects anything that isn't JSON: malformed numbers, bare words,
// bad escapes and raw control characters inside strings.
//
// Every state function emits at most one item before returning, the
// items channel has room for exactly one.
type lexer struct {
	input  *bufio.Reader
	buffer bytes.Buffer
	width  int  // The width of last rune read from input and written to the buffer.
	last   rune // The last rune read, to undo line accounting in backup.
	items  chan item
	state  stateFn
	err    error // First read error other than io.EOF.

	line, col           int // Position of the next rune.
	prevCol             int
	startLine, startCol int // Position of the first rune in buffer.
}

func newLexer(r io.Reader) *lexer {
	bio, ok := r.(*bufio.Reader)
	if !ok {
		bio = bufio.NewReader(r)
	}
	l := &lexer{
		input:     bio,
		items:     make(chan item, 1),
		state:     lexWhitespace,
		line:      1,
		col:       1,
		startLine: 1,
		startCol:  1,
	}
	return l
}

func (l *lexer) nextItem() item {
	for {
		select {
		case it := <-l.items:
			return it
		default:
			if l.state == nil {
				l.items <- item{typ: itemEOF, line: l.line, col: l.col}
			} else {
				l.state = l.state(l)
			}
		}
	}
}

func (l *lexer) emit(t itemType) {
	l.items <- item{t, l.buffer.String(), l.startLine, l.startCol}
	l.ignore()
}

func (l *lexer) next() (r rune) {
	var err error
	r, l.width, err = l.input.ReadRune()
	if err != nil {
		if err != io.EOF && l.err == nil {
			l.err = err
		}
		l.width = 0
		return eof
	}
	l.buffer.WriteRune(r)
	l.last = r
	l.prevCol = l.col
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *lexer) ignore() {
	l.buffer.Reset()
	l.startLine, l.startCol = l.line, l.col
}

// Can be called only once per call of next.
func (l *lexer) backup() {
	if l.width > 0 {
		// An error would be returned if ReadRune wasn't the previous
		// operation on l.input.
		_ = l.input.UnreadRune()
		l.buffer.Truncate(l.buffer.Len() - l.width)
		if l.last == '\n' {
			l.line--
		}
		l.col = l.prevCol
		l.width = 0
	}
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

func (l *lexer) acceptRun(valid string) {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.backup()
}

func (l *lexer) acceptRunFunc(valid func(rune) bool) {
	for r := l.next(); r != eof && valid(r); r = l.next() {
	}
	l.backup()
}

func (l *lexer) errorf(format string, a ...interface{}) stateFn {
	l.items <- item{
		itemError,
		fmt.Sprintf("%d:%d: ", l.line, l.col) + fmt.Sprintf(format, a...),
		l.line,
		l.col,
	}
	return nil
}

// A value must be followed by whitespace, punctuation or the end of
// input, so that e.g. 12abc or nulls is not taken as two tokens.
func (l *lexer) atDelimiter() bool {
	r := l.peek()
	return r == eof || strings.ContainsRune(" \t\r\n{}[]:,", r)
}

func lexWhitespace(l *lexer) stateFn {
	l.acceptRun(" \t\r\n")
	l.ignore()

	switch r := l.peek(); {
	case r == eof:
		if l.err != nil {
			return l.errorf("read error: %v", l.err)
		}
		return nil
	case r == ':':
		return lexColon
	case r == ',':
		return lexComma
	case r == '{':
		return lexLeftCurlyBrace
	case r == '[':
		return lexLeftBracket
	case r == '}':
		return lexRightCurlyBrace
	case r == ']':
		return lexRightBracket
	case r == '"':
		return lexQuotedString
	case r == '-' || ('0' <= r && r <= '9'):
		return lexNumber
	case unicode.IsLetter(r):
		return lexLiteral
	default:
		return l.errorf("unexpected character %q", r)
	}
}

func lexColon(l *lexer) stateFn {
	l.accept(":")
	l.emit(itemColon)
	return lexWhitespace
}

func lexComma(l *lexer) stateFn {
	l.accept(",")
	l.emit(itemComma)
	return lexWhitespace
}

func lexLeftBracket(l *lexer) stateFn {
	l.accept("[")
	l.emit(itemLeftBracket)
	return lexWhitespace
}

func lexRightBracket(l *lexer) stateFn {
	l.accept("]")
	l.emit(itemRightBracket)
	return lexWhitespace
}

func lexLeftCurlyBrace(l *lexer) stateFn {
	l.accept("{")
	l.emit(itemLeftCurlyBrace)
	return lexWhitespace
}

func lexRightCurlyBrace(l *lexer) stateFn {
	l.accept("}")
	l.emit(itemRightCurlyBrace)
	return lexWhitespace
}

func lexQuotedString(l *lexer) stateFn {
	l.accept(`"`)
	for {
		switch r := l.next(); {
		case r == '\\':
			switch l.next() {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			case 'u':
				for i := 0; i < 4; i++ {
					if !l.accept(hexDigits) {
						return l.errorf("invalid \\u escape in string")
					}
				}
			default:
				return l.errorf("invalid escape in string")
			}
		case r == '"':
			l.emit(itemString)
			return lexWhitespace
		case r == eof:
			return l.errorf("unfinished quoted string")
		case r < 0x20:
			return l.errorf("invalid control character %q in string", r)
		case r == utf8.RuneError && l.width == 1:
			return l.errorf("invalid UTF-8 in string")
		}
	}
}

// Numbers follow the JSON grammar:
//
//	-? (0 | [1-9][0-9]*) (. [0-9]+)? ([eE] [+-]? [0-9]+)?
//
// A minus sign followed by a letter is handed over to lexLiteral for
// -Infinity.
func lexNumber(l *lexer) stateFn {
	l.accept("-")
	if unicode.IsLetter(l.peek()) {
		return lexLiteral
	}
	if !l.accept("0") {
		if !l.accept("123456789") {
			return l.errorf("malformed number %q", l.buffer.String())
		}
		l.acceptRun(digits)
	}
	if l.accept(".") {
		if !l.accept(digits) {
			return l.errorf("malformed number %q", l.buffer.String())
		}
		l.acceptRun(digits)
	}
	if l.accept("eE") {
		l.accept("+-")
		if !l.accept(digits) {
			return l.errorf("malformed number %q", l.buffer.String())
		}
		l.acceptRun(digits)
	}
	if !l.atDelimiter() {
		return l.errorf("unexpected %q after number %q", l.peek(), l.buffer.String())
	}
	l.emit(itemNumber)
	return lexWhitespace
}

func lexLiteral(l *lexer) stateFn {
	l.acceptRunFunc(unicode.IsLetter)
	switch word := l.buffer.String(); word {
	case "true", "false", "null", "NaN", "Infinity", "-Infinity":
	default:
		return l.errorf("invalid literal %q", word)
	}
	if !l.atDelimiter() {
		return l.errorf("unexpected %q after literal %q", l.peek(), l.buffer.String())
	}
	l.emit(itemLiteral)
	return lexWhitespace
}
