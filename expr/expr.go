// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr holds the parsed form of a function of one variable.
// The set of node types is closed: every Expr is one of Number, Var,
// Const, Unary, Binary or Call, and evaluation is a type switch over
// exactly those types.
package expr // import "robpike.io/quad/expr"

import (
	"fmt"
	"math"
	"strconv"
)

// Func is a real function of one real variable. Domain problems such as
// log of a negative number are reported as NaN or ±Inf at that point.
type Func func(x float64) float64

// Expr is the interface for a parsed expression.
type Expr interface {
	// ProgString returns the unambiguous, fully parenthesized
	// representation of the expression.
	ProgString() string

	node()
}

// Number is a numeric literal.
type Number float64

// Var is the variable x.
type Var struct{}

// Const is a named constant: pi or e.
type Const string

// Unary is a prefix + or -.
type Unary struct {
	Op    string
	Right Expr
}

// Binary is one of + - * / **.
type Binary struct {
	Op    string
	Left  Expr
	Right Expr
}

// Call applies a builtin to a single argument.
type Call struct {
	Name string
	Arg  Expr
}

func (Number) node()  {}
func (Var) node()     {}
func (Const) node()   {}
func (*Unary) node()  {}
func (*Binary) node() {}
func (*Call) node()   {}

func (n Number) ProgString() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func (Var) ProgString() string { return "x" }

func (c Const) ProgString() string { return string(c) }

func (u *Unary) ProgString() string {
	return fmt.Sprintf("(%s%s)", u.Op, u.Right.ProgString())
}

func (b *Binary) ProgString() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.ProgString(), b.Op, b.Right.ProgString())
}

func (c *Call) ProgString() string {
	return fmt.Sprintf("%s(%s)", c.Name, c.Arg.ProgString())
}

// Compile returns e as a Func.
func Compile(e Expr) Func {
	return func(x float64) float64 {
		return Eval(e, x)
	}
}

// Eval interprets e with the variable bound to x.
func Eval(e Expr, x float64) float64 {
	switch e := e.(type) {
	case Number:
		return float64(e)
	case Var:
		return x
	case Const:
		if v, ok := Constants[string(e)]; ok {
			return v
		}
	case *Unary:
		v := Eval(e.Right, x)
		if e.Op == "-" {
			return -v
		}
		return v
	case *Binary:
		l, r := Eval(e.Left, x), Eval(e.Right, x)
		switch e.Op {
		case "+":
			return l + r
		case "-":
			return l - r
		case "*":
			return l * r
		case "/":
			return l / r
		case "**":
			return math.Pow(l, r)
		}
	case *Call:
		if fn, ok := Builtins[e.Name]; ok {
			return fn(Eval(e.Arg, x))
		}
	}
	return math.NaN()
}

// ContainsVar reports whether e mentions x.
func ContainsVar(e Expr) bool {
	switch e := e.(type) {
	case Var:
		return true
	case *Unary:
		return ContainsVar(e.Right)
	case *Binary:
		return ContainsVar(e.Left) || ContainsVar(e.Right)
	case *Call:
		return ContainsVar(e.Arg)
	}
	return false
}
