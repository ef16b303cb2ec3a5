// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package analysis measures how the error of each quadrature rule falls
// as the subdivision count grows.
//
// For each requested method and each n, Analyze computes the rule's
// approximation, its absolute and relative error against the reference
// integral, and the experimental order of convergence (EOC) between
// consecutive counts:
//
//	eoc = ln(E1/E2) / ln(n2/n1)
//
// On smooth integrands the EOC approaches 2 for the trapezoidal and
// midpoint rules and 4 for Simpson's rule.
package analysis // import "robpike.io/quad/analysis"

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"robpike.io/quad/quad"
)

// Record is one row of a convergence table.
type Record struct {
	Requested       int      `json:"requested_n"`
	N               int      `json:"n"` // Effective count.
	H               float64  `json:"h"`
	Approximation   float64  `json:"approx"`
	AbsoluteError   float64  `json:"abs_error"`
	RelativeError   float64  `json:"rel_error"`
	RelativeDefined bool     `json:"rel_defined"` // False when the exact value is 0.
	EOC             *float64 `json:"eoc"`
	Degenerate      bool     `json:"degenerate"`
}

// Series is the convergence table of one method.
type Series struct {
	Method           quad.Method `json:"method"`
	Records          []Record    `json:"records"`
	TheoreticalOrder float64     `json:"theoretical_eoc"`
	// FittedOrder is the least-squares slope of -ln(error) against ln(n)
	// over the records with finite positive error.
	FittedOrder *float64 `json:"fitted_eoc"`
}

// Result is the outcome of Analyze.
type Result struct {
	A               float64                 `json:"a"`
	B               float64                 `json:"b"`
	Exact           float64                 `json:"exact_value"`
	ExactError      float64                 `json:"exact_error_estimate"`
	ExactConverged  bool                    `json:"exact_converged"`
	ExactDegenerate bool                    `json:"exact_degenerate"`
	Series          []Series                `json:"results"`
	Winner          quad.Method             `json:"winner,omitempty"` // Zero if no method has a finite error.
	Improvements    map[quad.Method]float64 `json:"improvements"`
	WinCounts       map[quad.Method]int     `json:"win_counts"`
}

// Lookup returns the series for m, or nil.
func (r *Result) Lookup(m quad.Method) *Series {
	for i := range r.Series {
		if r.Series[i].Method == m {
			return &r.Series[i]
		}
	}
	return nil
}

// Degenerate reports whether any record or the reference value involved
// a non-finite sample.
func (r *Result) Degenerate() bool {
	if r.ExactDegenerate {
		return true
	}
	for _, s := range r.Series {
		for _, rec := range s.Records {
			if rec.Degenerate {
				return true
			}
		}
	}
	return false
}

type options struct {
	tol quad.Tolerance
}

// Option configures Analyze.
type Option func(*options)

// WithTolerance sets the tolerance of the reference integrator.
func WithTolerance(tol quad.Tolerance) Option {
	return func(o *options) {
		o.tol = tol
	}
}

var (
	ErrNoMethods = errors.New("analysis: no methods requested")
	ErrNoCounts  = errors.New("analysis: no subdivision counts requested")
)

// Analyze runs each of methods over each of ns and compares the results
// with the reference integral of f over [a, b].
//
// Repeated methods are analyzed once, at their first position. The counts
// are sorted ascending; repeats are kept and yield no EOC.
func Analyze(f func(float64) float64, a, b float64, methods []quad.Method, ns []int, opts ...Option) (*Result, error) {
	o := options{tol: quad.DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}
	if err := quad.CheckInterval(a, b); err != nil {
		return nil, err
	}
	methods = dedup(methods)
	if len(methods) == 0 {
		return nil, ErrNoMethods
	}
	for _, m := range methods {
		if !m.Valid() {
			return nil, &quad.UnknownMethodError{Name: m.String()}
		}
	}
	if len(ns) == 0 {
		return nil, ErrNoCounts
	}
	ns = append([]int(nil), ns...)
	sort.Ints(ns)
	if ns[0] < 1 {
		return nil, &quad.CountError{N: ns[0]}
	}

	ref, err := quad.ReferenceWith(f, a, b, o.tol)
	if err != nil {
		return nil, fmt.Errorf("reference integral: %w", err)
	}
	res := &Result{
		A:               a,
		B:               b,
		Exact:           ref.Value,
		ExactError:      ref.Error,
		ExactConverged:  ref.Converged,
		ExactDegenerate: ref.Degenerate,
		Improvements:    make(map[quad.Method]float64),
		WinCounts:       make(map[quad.Method]int),
	}
	for _, m := range methods {
		s := Series{
			Method:           m,
			TheoreticalOrder: float64(m.Order()),
		}
		for i, n := range ns {
			qr, err := quad.Integrate(m, f, a, b, n)
			if err != nil {
				return nil, err
			}
			rec := record(qr, ref.Value)
			if i > 0 {
				prev := s.Records[i-1]
				rec.EOC = EOC(prev.AbsoluteError, rec.AbsoluteError, prev.N, rec.N)
			}
			s.Records = append(s.Records, rec)
		}
		s.FittedOrder = fit(s.Records)
		res.Series = append(res.Series, s)
	}
	res.pickWinner()
	return res, nil
}

func dedup(methods []quad.Method) []quad.Method {
	var out []quad.Method
	seen := make(map[quad.Method]bool)
	for _, m := range methods {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

func record(qr quad.Result, exact float64) Record {
	abs, rel, ok := Errors(qr.Value, exact)
	return Record{
		Requested:       qr.Requested,
		N:               qr.N,
		H:               qr.H,
		Approximation:   qr.Value,
		AbsoluteError:   abs,
		RelativeError:   rel,
		RelativeDefined: ok,
		Degenerate:      qr.Degenerate(),
	}
}

// Errors returns the absolute and relative error of approx. If exact is
// zero (or NaN) the relative error is undefined: it is +Inf when the absolute
// error is positive, NaN otherwise, and ok is false.
func Errors(approx, exact float64) (abs, rel float64, ok bool) {
	abs = math.Abs(approx - exact)
	switch {
	case math.IsNaN(exact):
		return abs, math.NaN(), false
	case exact != 0:
		return abs, abs / math.Abs(exact), true
	case abs > 0:
		return abs, math.Inf(1), false
	}
	// 0/0, including a NaN absolute error.
	return abs, math.NaN(), false
}

// EOC returns the experimental order of convergence between error e1 at
// n1 subintervals and e2 at n2. It is nil if either error is zero or not
// finite, or if n1 == n2.
func EOC(e1, e2 float64, n1, n2 int) *float64 {
	if !usable(e1) || !usable(e2) || n1 < 1 || n2 < 1 || n1 == n2 {
		return nil
	}
	v := math.Log(e1/e2) / math.Log(float64(n2)/float64(n1))
	return &v
}

// usable reports whether e is a positive finite error.
func usable(e float64) bool {
	return e > 0 && !math.IsInf(e, 1)
}

func fit(recs []Record) *float64 {
	var xs, ys []float64
	for _, r := range recs {
		if usable(r.AbsoluteError) {
			xs = append(xs, math.Log(float64(r.N)))
			ys = append(ys, -math.Log(r.AbsoluteError))
		}
	}
	if len(xs) < 2 || xs[0] == xs[len(xs)-1] {
		return nil
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	return &slope
}

// pickWinner sets Winner, Improvements and WinCounts. At each count the
// smallest absolute error wins; NaN never wins and an exact tie goes to
// the method listed first. The overall winner is the one at the largest
// count.
func (r *Result) pickWinner() {
	last := len(r.Series[0].Records) - 1
	for i := 0; i <= last; i++ {
		if w, ok := r.best(i); ok {
			r.WinCounts[r.Series[w].Method]++
			if i == last {
				r.Winner = r.Series[w].Method
			}
		}
	}
	if r.Winner == 0 {
		return
	}
	we := r.Lookup(r.Winner).Records[last].AbsoluteError
	if we <= 0 {
		return
	}
	for _, s := range r.Series {
		if s.Method == r.Winner {
			continue
		}
		if ratio := s.Records[last].AbsoluteError / we; !math.IsNaN(ratio) && !math.IsInf(ratio, 0) {
			r.Improvements[s.Method] = ratio
		}
	}
}

// best returns the index of the series with the smallest error at
// position i.
func (r *Result) best(i int) (int, bool) {
	win := -1
	for j, s := range r.Series {
		e := s.Records[i].AbsoluteError
		if math.IsNaN(e) {
			continue
		}
		if win < 0 || e < r.Series[win].Records[i].AbsoluteError {
			win = j
		}
	}
	return win, win >= 0
}
