// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine is the narrow functional interface to the integration
// packages, suitable for wrapping in a request handler or a UI.
// It holds no state: every call allocates its own data, so any number of
// goroutines may call it at once.
package engine // import "robpike.io/quad/engine"

import (
	"encoding/json"
	"math"

	"robpike.io/quad/analysis"
	"robpike.io/quad/catalog"
	"robpike.io/quad/expr"
	"robpike.io/quad/parse"
	"robpike.io/quad/quad"
	"robpike.io/quad/shape"
)

// EvaluateExpression compiles the text of a function of x. Implicit
// multiplication and ^ are accepted. The error is a
// *parse.InvalidExpressionError.
func EvaluateExpression(source string) (expr.Func, error) {
	return parse.Function(source)
}

// ResolveCatalogFunction returns the catalog function with the given id.
// The error is a *catalog.UnknownFunctionError.
func ResolveCatalogFunction(id string) (expr.Func, catalog.Descriptor, error) {
	return catalog.Resolve(id)
}

// Resolve treats source as a catalog id if there is one by that name,
// and as an expression otherwise. The descriptor is nil for expressions.
func Resolve(source string) (expr.Func, *catalog.Descriptor, error) {
	if catalog.Has(source) {
		f, d, err := catalog.Resolve(source)
		if err != nil {
			return nil, nil, err
		}
		return f, &d, nil
	}
	f, err := parse.Function(source)
	if err != nil {
		return nil, nil, err
	}
	return f, nil, nil
}

// Integrate applies method m to f over [a, b] with n subintervals.
func Integrate(m quad.Method, f expr.Func, a, b float64, n int) (quad.Result, error) {
	return quad.Integrate(m, f, a, b, n)
}

// ReferenceIntegral returns the reference value of the integral of f over
// [a, b] and its estimated absolute error.
func ReferenceIntegral(f expr.Func, a, b float64) (value, errorEstimate float64, err error) {
	est, err := quad.Reference(f, a, b)
	if err != nil {
		return 0, 0, err
	}
	return est.Value, est.Error, nil
}

// RunConvergenceAnalysis compares methods over the counts ns.
func RunConvergenceAnalysis(f expr.Func, a, b float64, methods []quad.Method, ns []int) (*analysis.Result, error) {
	return analysis.Analyze(f, a, b, methods, ns)
}

// BuildVisualization returns the drawing of method m with n subintervals.
func BuildVisualization(f expr.Func, a, b float64, n int, m quad.Method) (*shape.Data, error) {
	return shape.Build(f, a, b, n, m)
}

// Calculation is a single approximation compared with the reference value,
// together with its drawing.
type Calculation struct {
	Source          string
	Function        *catalog.Descriptor // Nil unless Source is a catalog id.
	A, B            float64
	Result          quad.Result
	Exact           float64
	ExactError      float64
	AbsoluteError   float64
	RelativeError   float64
	RelativeDefined bool
	Shapes          *shape.Data
}

// Calculate resolves source, applies method m to it with n subintervals,
// and compares the approximation with the reference value. A curvePoints
// of zero selects the default curve resolution.
func Calculate(source string, m quad.Method, a, b float64, n, curvePoints int) (*Calculation, error) {
	f, desc, err := Resolve(source)
	if err != nil {
		return nil, err
	}
	var opts []shape.Option
	if curvePoints != 0 {
		opts = append(opts, shape.WithCurvePoints(curvePoints))
	}
	data, err := shape.Build(f, a, b, n, m, opts...)
	if err != nil {
		return nil, err
	}
	est, err := quad.Reference(f, a, b)
	if err != nil {
		return nil, err
	}
	c := &Calculation{
		Source:     source,
		Function:   desc,
		A:          a,
		B:          b,
		Exact:      est.Value,
		ExactError: est.Error,
		Shapes:     data,
		Result: quad.Result{
			Method:    data.Method,
			Requested: data.Requested,
			N:         data.N,
			H:         data.H,
			Value:     data.Value,
			Domain:    data.Domain,
		},
	}
	c.AbsoluteError, c.RelativeError, c.RelativeDefined = analysis.Errors(data.Value, est.Value)
	return c, nil
}

// Degenerate reports whether the approximation or the reference value
// met a non-finite sample.
func (c *Calculation) Degenerate() bool {
	return c.Result.Degenerate() || math.IsNaN(c.Exact)
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// MarshalJSON writes the calculation in the layout of the /calculate
// response, with null for values that are not finite.
func (c *Calculation) MarshalJSON() ([]byte, error) {
	out := struct {
		ID              string        `json:"function_id,omitempty"`
		Name            string        `json:"function_name"`
		LaTeX           string        `json:"function_latex"`
		Method          quad.Method   `json:"method"`
		A               float64       `json:"a"`
		B               float64       `json:"b"`
		Requested       int           `json:"requested_n"`
		N               int           `json:"n"`
		H               float64       `json:"h"`
		Approximation   *float64      `json:"approximation"`
		Exact           *float64      `json:"exact_value"`
		ExactError      *float64      `json:"exact_error_estimate"`
		AbsoluteError   *float64      `json:"absolute_error"`
		RelativeError   *float64      `json:"relative_error"`
		RelativeDefined bool          `json:"relative_defined"`
		Degenerate      bool          `json:"degenerate"`
		Curve           []shape.Point `json:"curve"`
		Shapes          []shape.Shape `json:"shapes"`
	}{
		Name:            c.Source,
		LaTeX:           c.Source,
		Method:          c.Result.Method,
		A:               c.A,
		B:               c.B,
		Requested:       c.Result.Requested,
		N:               c.Result.N,
		H:               c.Result.H,
		Approximation:   finite(c.Result.Value),
		Exact:           finite(c.Exact),
		ExactError:      finite(c.ExactError),
		AbsoluteError:   finite(c.AbsoluteError),
		RelativeError:   finite(c.RelativeError),
		RelativeDefined: c.RelativeDefined,
		Degenerate:      c.Degenerate(),
		Curve:           c.Shapes.Curve,
		Shapes:          c.Shapes.Shapes,
	}
	if c.Function != nil {
		out.ID = c.Function.ID
		out.Name = c.Function.Name
		out.LaTeX = c.Function.LaTeX
	}
	return json.Marshal(out)
}
