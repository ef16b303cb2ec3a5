// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"bytes"
	"strings"
	"testing"
)

func texts(toks []Token) string {
	var s []string
	for _, tok := range toks {
		if tok.Type == EOF {
			break
		}
		s = append(s, tok.Text)
	}
	return strings.Join(s, " ")
}

func TestScan(t *testing.T) {
	var tests = []struct {
		input string
		types []Type
		text  string
	}{
		{"", []Type{EOF}, ""},
		{"x", []Type{Identifier, EOF}, "x"},
		{"  x  ", []Type{Identifier, EOF}, "x"},
		{"2*x+1", []Type{Number, Operator, Identifier, Operator, Number, EOF}, "2 * x + 1"},
		{"x**2", []Type{Identifier, Operator, Number, EOF}, "x ** 2"},
		{"sin(x)", []Type{Identifier, LeftParen, Identifier, RightParen, EOF}, "sin ( x )"},
		{"1.5e-3", []Type{Number, EOF}, "1.5e-3"},
		{".5", []Type{Number, EOF}, ".5"},
		{"3.", []Type{Number, EOF}, "3."},
		{"2e+1", []Type{Number, EOF}, "2e+1"},
		{"2E5", []Type{Number, EOF}, "2E5"},
		{"2e", []Type{Number, Identifier, EOF}, "2 e"},
		{"2ex", []Type{Number, Identifier, EOF}, "2 ex"},
		{"2e+x", []Type{Number, Identifier, Operator, Identifier, EOF}, "2 e + x"},
		{"f(x, y)", []Type{Identifier, LeftParen, Identifier, Comma, Identifier, RightParen, EOF}, "f ( x , y )"},
		{"π/2", []Type{Identifier, Operator, Number, EOF}, "π / 2"},
		{"x_1", []Type{Identifier, EOF}, "x_1"},
	}
	for _, test := range tests {
		toks := New(test.input).All()
		if len(toks) != len(test.types) {
			t.Errorf("%q: expected %d tokens; got %d: %v", test.input, len(test.types), len(toks), toks)
			continue
		}
		for i, tok := range toks {
			if tok.Type != test.types[i] {
				t.Errorf("%q: token %d: expected %s; got %s", test.input, i, test.types[i], tok.Type)
			}
		}
		if got := texts(toks); got != test.text {
			t.Errorf("%q: expected %q; got %q", test.input, test.text, got)
		}
	}
}

func TestOffsets(t *testing.T) {
	toks := New("3 *  sin(x)").All()
	want := []int{0, 2, 5, 8, 9, 10, 11}
	for i, tok := range toks {
		if tok.Offset != want[i] {
			t.Errorf("token %d (%s): expected offset %d; got %d", i, tok, want[i], tok.Offset)
		}
	}
}

func TestScanError(t *testing.T) {
	var tests = []struct {
		input  string
		text   string
		offset int
		err    string
	}{
		{"x^2", "^", 1, "operator ^ is not allowed"},
		{"x = 1", "=", 2, "statements are not allowed"},
		{"x; 1", ";", 1, "statements are not allowed"},
		{"'abc' + x", "'abc'", 0, "string literals are not allowed"},
		{`"x`, `"x`, 0, "string literals are not allowed"},
		{"x[0]", "[", 1, "subscripts, lists and sets are not allowed"},
		{"{x}", "{", 0, "subscripts, lists and sets are not allowed"},
		{"os.system", "os.", 0, "attribute access is not allowed"},
		{"x + . 5", ".", 4, "attribute access is not allowed"},
		{"1.2.3", "1.2.", 0, "bad number syntax"},
		{"x # comment", "#", 2, "unrecognized character"},
		{"x < 1", "<", 2, "unrecognized character"},
		{"@", "@", 0, "unrecognized character"},
	}
	for _, test := range tests {
		toks := New(test.input).All()
		tok := toks[len(toks)-1]
		if tok.Type != Error {
			t.Errorf("%q: expected error; got %v", test.input, toks)
			continue
		}
		if tok.Text != test.text || tok.Offset != test.offset {
			t.Errorf("%q: expected %q at %d; got %q at %d", test.input, test.text, test.offset, tok.Text, tok.Offset)
		}
		if !strings.Contains(tok.Err, test.err) {
			t.Errorf("%q: expected error %q; got %q", test.input, test.err, tok.Err)
		}
	}
}

func TestAfterError(t *testing.T) {
	s := New("x ^ 2")
	for i := 0; i < 2; i++ {
		s.Next()
	}
	for i := 0; i < 3; i++ {
		if tok := s.Next(); tok.Type != EOF {
			t.Fatalf("expected EOF after error; got %s", tok)
		}
	}
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	s := New("x+1")
	s.SetTrace(&buf)
	s.All()
	want := "0: emit Identifier: \"x\"\n1: emit Operator: \"+\"\n2: emit Number: \"1\"\n"
	if buf.String() != want {
		t.Errorf("expected trace %q; got %q", want, buf.String())
	}
}
