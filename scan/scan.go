// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan breaks the text of a function of x into tokens.
package scan // import "robpike.io/quad/scan"

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type   Type   // The type of this item.
	Offset int    // Byte offset of the item in the input.
	Text   string // The text of this item.
	Err    string // For Error tokens, what is wrong with Text.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF        Type = iota // zero value so an empty scanner delivers EOF
	Error                  // error occurred; Text is the offending input
	Number                 // simple number: 3, .5, 1.5e-3
	Identifier             // alphanumeric identifier
	Operator               // + - * / **
	LeftParen              // '('
	RightParen             // ')'
	Comma                  // ','
)

var typeNames = [...]string{
	EOF:        "EOF",
	Error:      "Error",
	Number:     "Number",
	Identifier: "Identifier",
	Operator:   "Operator",
	LeftParen:  "LeftParen",
	RightParen: "RightParen",
	Comma:      "Comma",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case i.Type == Error:
		return fmt.Sprintf("error: %q: %s", i.Text, i.Err)
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

const eof = -1

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	input     string    // the text being scanned.
	trace     io.Writer // if non-nil, every token is logged here
	lastRune  rune      // most recent return from next()
	lastWidth int       // size of that rune
	pos       int       // current position in the input
	start     int       // start position of this item
	token     Token
}

// New creates and returns a new scanner for the text.
func New(input string) *Scanner {
	return &Scanner{input: input}
}

// SetTrace arranges for each token to be printed to w as it is emitted.
func (l *Scanner) SetTrace(w io.Writer) {
	l.trace = w
}

// Next returns the next token. After EOF or an Error it keeps returning EOF.
func (l *Scanner) Next() Token {
	l.lastRune = eof
	l.lastWidth = 0
	l.token = Token{Type: EOF, Offset: l.pos, Text: "EOF"}
	state := lexAny
	for {
		state = state(l)
		if state == nil {
			return l.token
		}
	}
}

// All scans the whole input. The returned slice ends with the first
// EOF or Error token.
func (l *Scanner) All() []Token {
	var toks []Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Type == EOF || tok.Type == Error {
			return toks
		}
	}
}

// next returns the next rune in the input.
func (l *Scanner) next() rune {
	if l.pos >= len(l.input) {
		l.lastRune, l.lastWidth = eof, 0
		return eof
	}
	l.lastRune, l.lastWidth = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.lastWidth
	return l.lastRune
}

// peek returns but does not consume the next rune in the input.
func (l *Scanner) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// peek2 returns the next two runes ahead, but does not consume anything.
func (l *Scanner) peek2() (rune, rune) {
	pos := l.pos
	r1 := l.next()
	r2 := l.next()
	l.pos = pos
	return r1, r2
}

// backup steps back one rune. Should only be called once per call of next.
func (l *Scanner) backup() {
	if l.lastRune == eof {
		return
	}
	l.pos -= l.lastWidth
}

// emit passes an item back to the client.
func (l *Scanner) emit(t Type) stateFn {
	l.token = Token{Type: t, Offset: l.start, Text: l.input[l.start:l.pos]}
	if l.trace != nil {
		fmt.Fprintf(l.trace, "%d: emit %s\n", l.start, l.token)
	}
	l.start = l.pos
	return nil
}

// accept consumes the next rune if it's from the valid set.
func (l *Scanner) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

// acceptRun consumes a run of runes from the valid set.
func (l *Scanner) acceptRun(valid string) {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.backup()
}

// errorf returns an error token for the input consumed so far and
// empties the rest of the input.
func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.token = Token{
		Type:   Error,
		Offset: l.start,
		Text:   l.input[l.start:l.pos],
		Err:    fmt.Sprintf(format, args...),
	}
	l.start = len(l.input)
	l.pos = len(l.input)
	return nil
}

// state functions

// lexAny scans non-space items.
func lexAny(l *Scanner) stateFn {
	switch r := l.next(); {
	case r == eof:
		return nil
	case isSpace(r):
		return lexSpace
	case r == '.' || isDigit(r):
		l.backup()
		return lexNumber
	case isAlphaNumeric(r):
		l.backup()
		return lexIdentifier
	case r == '*':
		l.accept("*")
		return l.emit(Operator)
	case r == '+' || r == '-' || r == '/':
		return l.emit(Operator)
	case r == '(':
		return l.emit(LeftParen)
	case r == ')':
		return l.emit(RightParen)
	case r == ',':
		return l.emit(Comma)
	case r == '^':
		return l.errorf("operator ^ is not allowed; use **")
	case r == '\'' || r == '"' || r == '`':
		return lexQuote
	case r == '[' || r == ']' || r == '{' || r == '}':
		return l.errorf("subscripts, lists and sets are not allowed")
	case r == '=' || r == ';' || r == ':':
		return l.errorf("statements are not allowed")
	default:
		return l.errorf("unrecognized character %#U", r)
	}
}

// lexSpace scans a run of space characters.
// One space has already been seen.
func lexSpace(l *Scanner) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	// Skips over the pending input.
	l.start = l.pos
	return lexAny
}

// lexIdentifier scans an alphanumeric.
// A following '.' would be attribute access, which is never allowed.
func lexIdentifier(l *Scanner) stateFn {
	for isAlphaNumeric(l.peek()) {
		l.next()
	}
	if l.peek() == '.' {
		l.next()
		return l.errorf("attribute access is not allowed")
	}
	return l.emit(Identifier)
}

// lexNumber scans a decimal number with optional fraction and exponent.
// An 'e' is taken as an exponent only if digits follow, optionally after
// a sign, so 2e is the number 2 followed by the constant e.
func lexNumber(l *Scanner) stateFn {
	l.acceptRun(decimal)
	if l.accept(".") {
		l.acceptRun(decimal)
	}
	if l.input[l.start:l.pos] == "." {
		return l.errorf("attribute access is not allowed")
	}
	if r1, r2 := l.peek2(); (r1 == 'e' || r1 == 'E') && (isDigit(r2) || r2 == '+' || r2 == '-') {
		pos := l.pos
		l.next()
		l.accept("+-")
		if !isDigit(l.peek()) {
			// Not an exponent after all: 2e+x.
			l.pos = pos
			return l.emit(Number)
		}
		l.acceptRun(decimal)
	}
	if l.peek() == '.' {
		l.next()
		return l.errorf("bad number syntax")
	}
	return l.emit(Number)
}

// lexQuote scans a quoted string so the error names all of it.
// The opening quote has been consumed.
func lexQuote(l *Scanner) stateFn {
	quote := l.lastRune
	for {
		switch l.next() {
		case eof:
			return l.errorf("string literals are not allowed")
		case quote:
			return l.errorf("string literals are not allowed")
		}
	}
}

const decimal = "0123456789"

// isSpace reports whether r is a space character.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// isAlphaNumeric reports whether r is an alphabetic, digit, or underscore.
func isAlphaNumeric(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
