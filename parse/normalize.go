// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"strings"

	"robpike.io/quad/expr"
	"robpike.io/quad/scan"
)

// Normalize rewrites loosely written input into the form Parse accepts:
// ^ becomes **, and a * is inserted for implicit multiplication, as in
// 2x, 2(x+1), 2pi, (x+1)(x-1), (x+1)x, (x+1)2 and x(x+1). Spacing is otherwise
// preserved. Normalize is idempotent. Input it cannot scan is copied
// through unchanged from the bad character on, so Parse can report it.
func Normalize(src string) string {
	src = strings.TrimSpace(src)
	src = strings.ReplaceAll(src, "^", "**")
	var b strings.Builder
	s := scan.New(src)
	end := 0
	var prev scan.Token
	for {
		tok := s.Next()
		if tok.Type == scan.EOF || tok.Type == scan.Error {
			b.WriteString(src[end:])
			return b.String()
		}
		if endsOperand(prev) && startsOperand(prev, tok) {
			b.WriteString("*")
		}
		b.WriteString(src[end:tok.Offset])
		b.WriteString(tok.Text)
		end = tok.Offset + len(tok.Text)
		prev = tok
	}
}

// endsOperand reports whether tok can be the last token of a factor.
// Builtin names cannot; they must be followed by their argument list.
func endsOperand(tok scan.Token) bool {
	switch tok.Type {
	case scan.Number, scan.RightParen:
		return true
	case scan.Identifier:
		return tok.Text == "x" || tok.Text == "π" || expr.IsConstant(tok.Text)
	}
	return false
}

// startsOperand reports whether tok can begin a factor that follows
// prev without an operator. A number starts one only after a closing
// parenthesis; two adjacent numbers are left alone.
func startsOperand(prev, tok scan.Token) bool {
	switch tok.Type {
	case scan.LeftParen, scan.Identifier:
		return true
	case scan.Number:
		return prev.Type == scan.RightParen
	}
	return false
}
