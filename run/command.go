// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"encoding/json"
	"strconv"
	"strings"

	"robpike.io/quad/analysis"
	"robpike.io/quad/catalog"
	"robpike.io/quad/chart"
	"robpike.io/quad/engine"
	"robpike.io/quad/expr"
	"robpike.io/quad/parse"
	"robpike.io/quad/quad"
	"robpike.io/quad/shape"
)

type command func(s *session, args string) error

var commands = map[string]command{
	"analyze":   (*session).analyze,
	"calculate": (*session).calculate,
	"exact":     (*session).exact,
	"functions": (*session).functions,
	"integrate": (*session).integrate,
	"normalize": (*session).normalize,
	"parse":     (*session).parse,
	"shapes":    (*session).shapes,
}

// function resolves source as a catalog id or an expression.
func (s *session) function(source string) (expr.Func, *catalog.Descriptor, error) {
	if source == "" {
		errorf("missing function")
	}
	if catalog.Has(source) {
		return engine.Resolve(source)
	}
	e, err := s.expression(source)
	if err != nil {
		return nil, nil, err
	}
	return expr.Compile(e), nil, nil
}

func (s *session) expression(source string) (expr.Expr, error) {
	p := parse.NewParser(parse.Normalize(source))
	if s.conf.Debug("tokens") {
		p.SetTrace(s.conf.Output())
	}
	e, err := p.Parse()
	if err != nil {
		return nil, err
	}
	if s.conf.Debug("parse") {
		s.Println(parse.Tree(e))
	}
	return e, nil
}

// bound parses an integration limit, which may be any constant expression.
func (s *session) bound(text string) float64 {
	v, err := parse.Constant(text)
	if err != nil {
		errorf("bad bound %q: %v", text, err)
	}
	return v
}

func count(text string) int {
	n, err := strconv.Atoi(text)
	if err != nil {
		errorf("bad subdivision count %q", text)
	}
	return n
}

func method(text string) quad.Method {
	m, err := quad.ParseMethod(text)
	if err != nil {
		errorf("%v", err)
	}
	return m
}

func (s *session) printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	s.Println(string(data))
	return nil
}

// functions lists the catalog.
func (s *session) functions(args string) error {
	if args != "" {
		errorf("usage: functions")
	}
	if s.conf.JSON() {
		return s.printJSON(catalog.All())
	}
	for _, cat := range catalog.Categories() {
		s.Println(cat)
		for _, d := range catalog.InCategory(cat) {
			s.Printf("\t%s\t%s\t[%s, %s]\n", d.ID, d.Name, s.num(d.A), s.num(d.B))
		}
	}
	return nil
}

func (s *session) normalize(args string) error {
	s.Println(parse.Normalize(args))
	return nil
}

// parse prints the canonical, fully parenthesized form of an expression.
func (s *session) parse(args string) error {
	e, err := s.expression(args)
	if err != nil {
		return err
	}
	s.Println(e.ProgString())
	return nil
}

const integrateUsage = "integrate <method> <a> <b> <n> <function>"

func (s *session) integrate(args string) error {
	ws, source := words(args, 4, integrateUsage)
	m, a, b, n := method(ws[0]), s.bound(ws[1]), s.bound(ws[2]), count(ws[3])
	f, _, err := s.function(source)
	if err != nil {
		return err
	}
	r, err := engine.Integrate(m, f, a, b, n)
	if err != nil {
		return err
	}
	if s.conf.JSON() {
		return s.printJSON(r)
	}
	s.printResult(r)
	return nil
}

func (s *session) printResult(r quad.Result) {
	if r.N != r.Requested {
		s.Printf("%s n=%d (requested %d) h=%s: %s\n", r.Method, r.N, r.Requested, s.num(r.H), s.num(r.Value))
	} else {
		s.Printf("%s n=%d h=%s: %s\n", r.Method, r.N, s.num(r.H), s.num(r.Value))
	}
	if r.Domain != nil {
		s.log.WithField("first", r.Domain.First).Debug("degenerate result")
		s.Printf("degenerate: %v\n", r.Domain)
	}
}

func (s *session) exact(args string) error {
	ws, source := words(args, 2, "exact <a> <b> <function>")
	a, b := s.bound(ws[0]), s.bound(ws[1])
	f, _, err := s.function(source)
	if err != nil {
		return err
	}
	est, err := quad.ReferenceWith(f, a, b, s.conf.Tolerance())
	if err != nil {
		return err
	}
	if s.conf.JSON() {
		return s.printJSON(est)
	}
	s.printEstimate(est)
	return nil
}

func (s *session) printEstimate(est quad.Estimate) {
	switch {
	case est.Degenerate:
		s.log.Debug("degenerate reference value")
		s.Printf("%s (degenerate: non-finite sample)\n", s.num(est.Value))
	case !est.Converged:
		s.Printf("%s ± %s (not converged, %d intervals)\n", s.num(est.Value), s.num(est.Error), est.Intervals)
	default:
		s.Printf("%s ± %s\n", s.num(est.Value), s.num(est.Error))
	}
}

func (s *session) calculate(args string) error {
	ws, source := words(args, 4, "calculate <method> <a> <b> <n> <function>")
	m, a, b, n := method(ws[0]), s.bound(ws[1]), s.bound(ws[2]), count(ws[3])
	if source == "" {
		errorf("missing function")
	}
	c, err := engine.Calculate(source, m, a, b, n, s.conf.CurvePoints())
	if err != nil {
		return err
	}
	if err := s.plotShapes(c.Shapes); err != nil {
		return err
	}
	if s.conf.JSON() {
		return s.printJSON(c)
	}
	if c.Function != nil {
		s.Printf("%s: %s\n", c.Function.ID, c.Function.Name)
	}
	s.printResult(c.Result)
	s.Printf("exact: %s ± %s\n", s.num(c.Exact), s.num(c.ExactError))
	s.Printf("absolute error: %s\n", s.num(c.AbsoluteError))
	if c.RelativeDefined {
		s.Printf("relative error: %s\n", s.num(c.RelativeError))
	} else {
		s.Printf("relative error: undefined\n")
	}
	s.Printf("shapes: %d\n", len(c.Shapes.Shapes))
	return nil
}

func (s *session) analyze(args string) error {
	ws, source := words(args, 2, "analyze <a> <b> <function>")
	a, b := s.bound(ws[0]), s.bound(ws[1])
	f, _, err := s.function(source)
	if err != nil {
		return err
	}
	res, err := analysis.Analyze(f, a, b, s.conf.Methods(), s.conf.NValues(), analysis.WithTolerance(s.conf.Tolerance()))
	if err != nil {
		return err
	}
	if s.conf.Plot() != "" {
		if err := chart.Convergence(res, s.conf.Plot()); err != nil {
			return err
		}
		s.log.WithField("path", s.conf.Plot()).Debug("wrote plot")
	}
	if s.conf.JSON() {
		return s.printJSON(res)
	}
	s.printAnalysis(res)
	return nil
}

func (s *session) printAnalysis(res *analysis.Result) {
	s.Printf("exact: %s ± %s\n", s.num(res.Exact), s.num(res.ExactError))
	if res.Degenerate() {
		s.log.Debug("degenerate analysis")
	}
	for _, ser := range res.Series {
		fitted := "-"
		if ser.FittedOrder != nil {
			fitted = s.num(*ser.FittedOrder)
		}
		s.Printf("%s: order %s, fitted %s\n", ser.Method, s.num(ser.TheoreticalOrder), fitted)
		s.Println("\tn\th\tapprox\tabs error\trel error\teoc")
		for _, r := range ser.Records {
			n := strconv.Itoa(r.N)
			if r.N != r.Requested {
				n += "(" + strconv.Itoa(r.Requested) + ")"
			}
			rel := "-"
			if r.RelativeDefined {
				rel = s.num(r.RelativeError)
			}
			eoc := "-"
			if r.EOC != nil {
				eoc = s.num(*r.EOC)
			}
			line := strings.Join([]string{n, s.num(r.H), s.num(r.Approximation), s.num(r.AbsoluteError), rel, eoc}, "\t")
			if r.Degenerate {
				line += "\tdegenerate"
			}
			s.Printf("\t%s\n", line)
		}
	}
	if res.Winner == 0 {
		s.Println("winner: none")
		return
	}
	s.Printf("winner: %s\n", res.Winner)
	for _, ser := range res.Series {
		if ratio, ok := res.Improvements[ser.Method]; ok {
			s.Printf("improvement over %s: %s\n", ser.Method, s.num(ratio))
		}
	}
	var wins []string
	for _, ser := range res.Series {
		wins = append(wins, ser.Method.String()+" "+strconv.Itoa(res.WinCounts[ser.Method]))
	}
	s.Printf("wins: %s\n", strings.Join(wins, ", "))
}

func (s *session) shapes(args string) error {
	ws, source := words(args, 4, "shapes <method> <a> <b> <n> <function>")
	m, a, b, n := method(ws[0]), s.bound(ws[1]), s.bound(ws[2]), count(ws[3])
	f, _, err := s.function(source)
	if err != nil {
		return err
	}
	data, err := shape.Build(f, a, b, n, m, shape.WithCurvePoints(s.conf.CurvePoints()))
	if err != nil {
		return err
	}
	if err := s.plotShapes(data); err != nil {
		return err
	}
	if s.conf.JSON() {
		return s.printJSON(data)
	}
	s.printResult(quad.Result{
		Method:    data.Method,
		Requested: data.Requested,
		N:         data.N,
		H:         data.H,
		Value:     data.Value,
		Domain:    data.Domain,
	})
	for _, sh := range data.Shapes {
		switch sh.Kind {
		case shape.Trapezoid:
			s.Printf("\ttrapezoid [%s, %s] y0=%s y1=%s area=%s\n",
				s.num(sh.X0), s.num(sh.X1), s.num(sh.Y0), s.num(sh.Y1), s.num(sh.Area))
		case shape.Rectangle:
			s.Printf("\trectangle [%s, %s] y=%s area=%s\n",
				s.num(sh.X0), s.num(sh.X1), s.num(sh.Y0), s.num(sh.Area))
		case shape.Parabola:
			s.Printf("\tparabola [%s, %s, %s] y=%s,%s,%s area=%s\n",
				s.num(sh.X0), s.num(sh.X1), s.num(sh.X2), s.num(sh.Y0), s.num(sh.Y1), s.num(sh.Y2), s.num(sh.Area))
		}
	}
	s.Printf("curve: %d points\n", len(data.Curve))
	return nil
}

func (s *session) plotShapes(data *shape.Data) error {
	if s.conf.Plot() == "" {
		return nil
	}
	if err := chart.Shapes(data, s.conf.Plot()); err != nil {
		return err
	}
	s.log.WithField("path", s.conf.Plot()).Debug("wrote plot")
	return nil
}
