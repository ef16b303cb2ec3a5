// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse turns the text of a function of x into an expression tree.
// Only numbers, x, the constants pi and e, the operators + - * / ** and
// the builtins listed in package expr are accepted. Anything else is
// rejected before any evaluation happens.
package parse // import "robpike.io/quad/parse"

import (
	"fmt"
	"io"
	"strconv"

	"robpike.io/quad/expr"
	"robpike.io/quad/scan"
)

// InvalidExpressionError reports text that is not an acceptable expression.
type InvalidExpressionError struct {
	Source    string // The full input.
	Offset    int    // Byte offset of the offending construct.
	Construct string // The offending token or construct.
	Reason    string
}

func (e *InvalidExpressionError) Error() string {
	if e.Construct == "" {
		return fmt.Sprintf("invalid expression %q: %s", e.Source, e.Reason)
	}
	return fmt.Sprintf("invalid expression %q: %q at offset %d: %s", e.Source, e.Construct, e.Offset, e.Reason)
}

// Tree formats an expression in an unambiguous form for debugging.
// It generates the output for the parse command.
func Tree(e expr.Expr) string {
	switch e := e.(type) {
	case expr.Number:
		return fmt.Sprintf("<num %s>", e.ProgString())
	case expr.Var:
		return "<var x>"
	case expr.Const:
		return fmt.Sprintf("<const %s>", string(e))
	case *expr.Unary:
		return fmt.Sprintf("(%s %s)", e.Op, Tree(e.Right))
	case *expr.Binary:
		return fmt.Sprintf("(%s %s %s)", Tree(e.Left), e.Op, Tree(e.Right))
	case *expr.Call:
		return fmt.Sprintf("<call %s %s>", e.Name, Tree(e.Arg))
	default:
		return fmt.Sprintf("%T", e)
	}
}

// Parser stores the state for the expression parser.
type Parser struct {
	source  string
	scanner *scan.Scanner
	tokens  []scan.Token
}

// NewParser returns a new parser for the source text.
func NewParser(source string) *Parser {
	return &Parser{
		source:  source,
		scanner: scan.New(source),
	}
}

// SetTrace arranges for the scanner to print each token to w.
func (p *Parser) SetTrace(w io.Writer) {
	p.scanner.SetTrace(w)
}

// Parse parses src, which must already be in normal form; see Normalize.
func Parse(src string) (expr.Expr, error) {
	return NewParser(src).Parse()
}

// Function normalizes and parses src and returns the callable function.
func Function(src string) (expr.Func, error) {
	e, err := Parse(Normalize(src))
	if err != nil {
		return nil, err
	}
	return expr.Compile(e), nil
}

// Constant normalizes, parses and evaluates src, which must not mention x.
func Constant(src string) (float64, error) {
	e, err := Parse(Normalize(src))
	if err != nil {
		return 0, err
	}
	if expr.ContainsVar(e) {
		return 0, &InvalidExpressionError{Source: src, Reason: "constant expression must not mention x"}
	}
	return expr.Eval(e, 0), nil
}

// Parse parses the whole input as a single expression.
// All tokens are read before parsing starts, so a bad character anywhere
// in the input is reported even if the text before it would parse.
func (p *Parser) Parse() (e expr.Expr, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if perr, ok := r.(*InvalidExpressionError); ok {
			e, err = nil, perr
			return
		}
		panic(r)
	}()
	p.tokens = p.scanner.All()
	if tok := p.tokens[len(p.tokens)-1]; tok.Type == scan.Error {
		p.errorf(tok, "%s", tok.Err)
	}
	if p.peek().Type == scan.EOF {
		p.errorf(scan.Token{}, "empty expression")
	}
	e = p.expression()
	switch tok := p.peek(); tok.Type {
	case scan.EOF:
	case scan.Number, scan.Identifier, scan.LeftParen:
		p.errorf(tok, "missing operator")
	default:
		p.errorf(tok, "unexpected %s", tok.Type)
	}
	return e, nil
}

func (p *Parser) next() scan.Token {
	tok := p.peek()
	if tok.Type != scan.EOF {
		p.tokens = p.tokens[1:]
	}
	return tok
}

func (p *Parser) peek() scan.Token {
	if len(p.tokens) == 0 {
		return scan.Token{Type: scan.EOF, Offset: len(p.source)}
	}
	return p.tokens[0]
}

// errorf halts parsing by panicking with an InvalidExpressionError
// that names tok. The panic is recovered in Parse.
func (p *Parser) errorf(tok scan.Token, format string, args ...interface{}) {
	text := tok.Text
	if tok.Type == scan.EOF {
		text = ""
	}
	panic(&InvalidExpressionError{
		Source:    p.source,
		Offset:    tok.Offset,
		Construct: text,
		Reason:    fmt.Sprintf(format, args...),
	})
}

func (p *Parser) isOp(ops ...string) bool {
	tok := p.peek()
	if tok.Type != scan.Operator {
		return false
	}
	for _, op := range ops {
		if tok.Text == op {
			return true
		}
	}
	return false
}

// expression:
//
//	term
//	expression '+' term
//	expression '-' term
func (p *Parser) expression() expr.Expr {
	e := p.term()
	for p.isOp("+", "-") {
		op := p.next().Text
		e = &expr.Binary{Op: op, Left: e, Right: p.term()}
	}
	return e
}

// term:
//
//	unary
//	term '*' unary
//	term '/' unary
func (p *Parser) term() expr.Expr {
	e := p.unary()
	for p.isOp("*", "/") {
		op := p.next().Text
		e = &expr.Binary{Op: op, Left: e, Right: p.unary()}
	}
	return e
}

// unary:
//
//	'+' unary
//	'-' unary
//	power
func (p *Parser) unary() expr.Expr {
	if p.isOp("+", "-") {
		op := p.next().Text
		return &expr.Unary{Op: op, Right: p.unary()}
	}
	return p.power()
}

// power:
//
//	primary
//	primary '**' unary
//
// The exponent is a unary, so ** is right associative and binds tighter
// than a unary minus on its left: -x**2 is -(x**2).
func (p *Parser) power() expr.Expr {
	e := p.primary()
	if p.isOp("**") {
		p.next()
		return &expr.Binary{Op: "**", Left: e, Right: p.unary()}
	}
	return e
}

// primary:
//
//	number
//	'x' | 'pi' | 'e'
//	builtin '(' expression ')'
//	'(' expression ')'
func (p *Parser) primary() expr.Expr {
	tok := p.next()
	switch tok.Type {
	case scan.Number:
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			p.errorf(tok, "bad number syntax")
		}
		return expr.Number(v)
	case scan.Identifier:
		return p.identifier(tok)
	case scan.LeftParen:
		e := p.expression()
		p.expect(scan.RightParen, tok, "unmatched (")
		return e
	case scan.EOF:
		p.errorf(tok, "unexpected end of expression")
	}
	p.errorf(tok, "unexpected %s", tok.Type)
	panic("not reached")
}

func (p *Parser) identifier(tok scan.Token) expr.Expr {
	name := tok.Text
	switch {
	case name == "x":
		return expr.Var{}
	case name == "π":
		return expr.Const("pi")
	case expr.IsConstant(name):
		return expr.Const(name)
	case expr.IsBuiltin(name):
		open := p.peek()
		if open.Type != scan.LeftParen {
			p.errorf(tok, "function %s must be called with an argument", name)
		}
		p.next()
		if p.peek().Type == scan.RightParen {
			p.errorf(tok, "%s takes exactly one argument", name)
		}
		arg := p.expression()
		if comma := p.peek(); comma.Type == scan.Comma {
			p.errorf(tok, "%s takes exactly one argument", name)
		}
		p.expect(scan.RightParen, open, "unmatched (")
		return &expr.Call{Name: name, Arg: arg}
	case p.peek().Type == scan.LeftParen:
		p.errorf(tok, "call of unknown function")
	}
	p.errorf(tok, "unknown name")
	panic("not reached")
}

// expect consumes a token of type t or reports an error about from.
func (p *Parser) expect(t scan.Type, from scan.Token, reason string) {
	if tok := p.next(); tok.Type != t {
		if tok.Type == scan.EOF {
			p.errorf(from, "%s", reason)
		}
		p.errorf(tok, "%s", reason)
	}
}
