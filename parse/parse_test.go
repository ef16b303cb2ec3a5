// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/Knetic/govaluate"

	"robpike.io/quad/expr"
)

func TestParse(t *testing.T) {
	var tests = []struct {
		input string
		prog  string
	}{
		{"x", "x"},
		{"(x)", "x"},
		{"2*x+1", "((2 * x) + 1)"},
		{"x-1-2", "((x - 1) - 2)"},
		{"x/2/3", "((x / 2) / 3)"},
		{"1+2*3", "(1 + (2 * 3))"},
		{"-x**2", "(-(x ** 2))"},
		{"2**3**2", "(2 ** (3 ** 2))"},
		{"2**-1", "(2 ** (-1))"},
		{"+x", "(+x)"},
		{"--x", "(-(-x))"},
		{"sin(x)/x", "(sin(x) / x)"},
		{"exp(-x**2)", "exp((-(x ** 2)))"},
		{"pi*x", "(pi * x)"},
		{"π", "pi"},
		{"e", "e"},
		{"1e3", "1000"},
		{"1.5", "1.5"},
		{"1e21", "1e+21"},
		{"sqrt(abs(log(x)))", "sqrt(abs(log(x)))"},
	}
	for _, test := range tests {
		e, err := Parse(test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if got := e.ProgString(); got != test.prog {
			t.Errorf("%q: expected %q; got %q", test.input, test.prog, got)
		}
	}
}

func TestTree(t *testing.T) {
	e, err := Parse("-sin(2*x)+pi")
	if err != nil {
		t.Fatal(err)
	}
	const want = "((- <call sin (<num 2> * <var x>)>) + <const pi>)"
	if got := Tree(e); got != want {
		t.Errorf("expected %q; got %q", want, got)
	}
}

func TestParseError(t *testing.T) {
	var tests = []struct {
		input     string
		construct string
		offset    int
		reason    string
	}{
		{"", "", 0, "empty expression"},
		{"   ", "", 0, "empty expression"},
		{"import os", "import", 0, "unknown name"},
		{"y", "y", 0, "unknown name"},
		{"x y", "y", 2, "missing operator"},
		{"2 3", "3", 2, "missing operator"},
		{"x (1)", "(", 2, "missing operator"},
		{"sin x", "sin", 0, "must be called with an argument"},
		{"sin", "sin", 0, "must be called with an argument"},
		{"sin()", "sin", 0, "exactly one argument"},
		{"sin(x, 1)", "sin", 0, "exactly one argument"},
		{"foo(x)", "foo", 0, "call of unknown function"},
		{"(x+1", "(", 0, "unmatched ("},
		{"sin(x", "(", 3, "unmatched ("},
		{"x+", "", 2, "unexpected end of expression"},
		{"x)", ")", 1, "unexpected RightParen"},
		{"*x", "*", 0, "unexpected Operator"},
		{"x,1", ",", 1, "unexpected Comma"},
		{"x^2", "^", 1, "operator ^ is not allowed"},
		{"__import__('os')", "'os'", 11, "string literals are not allowed"},
		{"x.real", "x.", 0, "attribute access is not allowed"},
		{"lambda: 0", ":", 6, "statements are not allowed"},
		{"[x for x in y]", "[", 0, "subscripts, lists and sets are not allowed"},
		{"x if x else 1", "if", 2, "missing operator"},
	}
	for _, test := range tests {
		_, err := Parse(test.input)
		if err == nil {
			t.Errorf("%q: expected error", test.input)
			continue
		}
		var perr *InvalidExpressionError
		if !errors.As(err, &perr) {
			t.Errorf("%q: expected InvalidExpressionError; got %T", test.input, err)
			continue
		}
		if perr.Construct != test.construct || perr.Offset != test.offset {
			t.Errorf("%q: expected %q at %d; got %q at %d", test.input, test.construct, test.offset, perr.Construct, perr.Offset)
		}
		if !strings.Contains(perr.Reason, test.reason) {
			t.Errorf("%q: expected reason %q; got %q", test.input, test.reason, perr.Reason)
		}
		if perr.Source != test.input {
			t.Errorf("%q: error names source %q", test.input, perr.Source)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := Parse("import os")
	const want = `invalid expression "import os": "import" at offset 0: unknown name`
	if err == nil || err.Error() != want {
		t.Errorf("expected %q; got %v", want, err)
	}
	_, err = Parse("")
	const empty = `invalid expression "": empty expression`
	if err == nil || err.Error() != empty {
		t.Errorf("expected %q; got %v", empty, err)
	}
}

func TestNormalize(t *testing.T) {
	var tests = []struct {
		input  string
		output string
	}{
		{"2x+1", "2*x+1"},
		{"2(x+1)", "2*(x+1)"},
		{"2pi", "2*pi"},
		{"2π", "2*π"},
		{"2e", "2*e"},
		{"(x+1)(x-1)", "(x+1)*(x-1)"},
		{"(x+1)x", "(x+1)*x"},
		{"(x+1)2", "(x+1)*2"},
		{"(x+1) 2", "(x+1)* 2"},
		{"(x)(2)3", "(x)*(2)*3"},
		{"x(x+1)", "x*(x+1)"},
		{"pi x", "pi* x"},
		{"x^2", "x**2"},
		{"3x^2 - 2x", "3*x**2 - 2*x"},
		{"  2 x  ", "2* x"},
		{"sin(x)", "sin(x)"},
		{"sin(2x)", "sin(2*x)"},
		{"2sin(x)", "2*sin(x)"},
		{"2 3", "2 3"},
		{"ex", "ex"},
		{"x2", "x2"},
		{"2*x", "2*x"},
		{"x'", "x'"},
		{"2x'", "2*x'"},
	}
	for _, test := range tests {
		got := Normalize(test.input)
		if got != test.output {
			t.Errorf("Normalize(%q): expected %q; got %q", test.input, test.output, got)
		}
		if again := Normalize(got); again != got {
			t.Errorf("Normalize not idempotent on %q: %q then %q", test.input, got, again)
		}
	}
}

func TestFunction(t *testing.T) {
	var tests = []struct {
		input string
		x     float64
		y     float64
	}{
		{"2x+1", 3, 7},
		{"x^2", 3, 9},
		{"-x^2", 3, -9},
		{"(x+1)(x-1)", 3, 8},
		{"2pi", 0, 2 * math.Pi},
		{"abs(x - 1)", -1, 2},
		{"sqrt(x)", 4, 2},
		{"exp(x)", 0, 1},
		{"1/x", 0, math.Inf(1)},
	}
	for _, test := range tests {
		f, err := Function(test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if got := f(test.x); got != test.y {
			t.Errorf("%q at %g: expected %g; got %g", test.input, test.x, test.y, got)
		}
	}
}

func TestFunctionDomain(t *testing.T) {
	for _, input := range []string{"log(x)", "sqrt(x)"} {
		f, err := Function(input)
		if err != nil {
			t.Fatal(err)
		}
		if v := f(-1); !math.IsNaN(v) {
			t.Errorf("%q at -1: expected NaN; got %g", input, v)
		}
	}
	f, _ := Function("tan(x)")
	if v := f(math.Pi / 2); !math.IsInf(v, 0) {
		t.Errorf("tan at pi/2: expected infinity; got %g", v)
	}
}

func TestConstant(t *testing.T) {
	var tests = []struct {
		input string
		value float64
	}{
		{"0", 0},
		{"-1", -1},
		{"pi", math.Pi},
		{"-pi", -math.Pi},
		{"pi/2", math.Pi / 2},
		{"2pi", 2 * math.Pi},
		{"e", math.E},
		{"sqrt(2)", math.Sqrt2},
	}
	for _, test := range tests {
		v, err := Constant(test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if v != test.value {
			t.Errorf("%q: expected %g; got %g", test.input, test.value, v)
		}
	}
	if _, err := Constant("2x"); err == nil {
		t.Error("constant mentioning x: expected error")
	}
	if _, err := Constant("pie"); err == nil {
		t.Error("unknown name: expected error")
	}
}

// TestOracle compares the evaluator with an independent one.
func TestOracle(t *testing.T) {
	unary := func(f func(float64) float64) govaluate.ExpressionFunction {
		return func(args ...interface{}) (interface{}, error) {
			return f(args[0].(float64)), nil
		}
	}
	functions := map[string]govaluate.ExpressionFunction{
		"sin":  unary(math.Sin),
		"cos":  unary(math.Cos),
		"tan":  unary(math.Tan),
		"exp":  unary(math.Exp),
		"log":  unary(math.Log),
		"sqrt": unary(math.Sqrt),
		"abs":  unary(math.Abs),
	}
	inputs := []string{
		"x**2 + 3*x - 1",
		"sin(x)/(1 + x*x)",
		"exp(-(x*x))",
		"sqrt(abs(x)) + log(x + 10)",
		"(x + 1)*(x - 2)/(x + 3)",
		"2**x - x**3",
		"cos(3*x) - tan(x/4)",
		"x*pi - e",
	}
	xs := []float64{-2.5, -1, -0.25, 0, 0.5, 1, 1.75, 3}
	for _, input := range inputs {
		oracle, err := govaluate.NewEvaluableExpressionWithFunctions(input, functions)
		if err != nil {
			t.Fatalf("%q: oracle: %v", input, err)
		}
		e, err := Parse(input)
		if err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		f := expr.Compile(e)
		for _, x := range xs {
			want, err := oracle.Evaluate(map[string]interface{}{"x": x, "pi": math.Pi, "e": math.E})
			if err != nil {
				t.Fatalf("%q at %g: oracle: %v", input, x, err)
			}
			w := want.(float64)
			got := f(x)
			if math.Abs(got-w) > 1e-12*math.Max(1, math.Abs(w)) {
				t.Errorf("%q at %g: expected %g; got %g", input, x, w, got)
			}
		}
	}
}
