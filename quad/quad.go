// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quad implements the composite trapezoidal, midpoint and Simpson
// rules on equally spaced points, and an adaptive Gauss-Kronrod integrator
// that serves as the reference value.
//
// All functions are pure: they share no state and may be called
// concurrently. A sample that is NaN or infinite does not stop the
// computation; it makes the value NaN and is reported in Result.Domain.
package quad // import "robpike.io/quad/quad"

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Result is the outcome of one application of a rule.
type Result struct {
	Method    Method
	Requested int          // The n the caller asked for.
	N         int          // The n actually used; see Method.Effective.
	H         float64      // Step (b-a)/N.
	Value     float64      // The approximation; NaN if Domain is set.
	Domain    *DomainError // Non-nil if any sample was not finite.
}

// Degenerate reports whether some sample was not finite, so Value is
// meaningless.
func (r Result) Degenerate() bool {
	return r.Domain != nil
}

// DegenerateIntervalError reports bounds that do not define an interval.
type DegenerateIntervalError struct {
	A, B float64
}

func (e *DegenerateIntervalError) Error() string {
	switch {
	case e.A == e.B:
		return fmt.Sprintf("degenerate interval: a = b = %g", e.A)
	case !math.IsNaN(e.A) && !math.IsNaN(e.B) && !math.IsInf(e.A, 0) && !math.IsInf(e.B, 0):
		return fmt.Sprintf("degenerate interval: width of [%g, %g] overflows", e.A, e.B)
	}
	return fmt.Sprintf("degenerate interval: bounds must be finite, have [%g, %g]", e.A, e.B)
}

// CountError reports an unusable subdivision count.
type CountError struct {
	N int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("subdivision count %d: must be at least 1", e.N)
}

// DomainError records samples at which the integrand was NaN or infinite.
// It is carried in results rather than returned, since the computation
// still completes.
type DomainError struct {
	Method Method
	N      int
	Bad    int     // How many samples were not finite.
	First  float64 // The first abscissa with a bad sample.
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s rule, n=%d: %d non-finite sample(s), first at x=%g", e.Method, e.N, e.Bad, e.First)
}

// CheckInterval returns a DegenerateIntervalError unless a and b are
// finite and distinct and b-a does not overflow. a > b is fine.
func CheckInterval(a, b float64) error {
	if a == b || math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || math.IsInf(b-a, 0) {
		return &DegenerateIntervalError{A: a, B: b}
	}
	return nil
}

// Nodes returns the n+1 equally spaced points x_0 = a, ..., x_n = b.
// The endpoints are exact.
func Nodes(a, b float64, n int) []float64 {
	xs := floats.Span(make([]float64, n+1), a, b)
	xs[n] = b
	return xs
}

// Midpoints returns the centers a + (i+½)h of the n subintervals.
func Midpoints(a, b float64, n int) []float64 {
	h := (b - a) / float64(n)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = a + (float64(i)+0.5)*h
	}
	return xs
}

// samples evaluates f at xs, counting the values that are not finite.
func samples(f func(float64) float64, xs []float64) (ys []float64, bad int, first float64) {
	ys = make([]float64, len(xs))
	for i, x := range xs {
		y := f(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			if bad == 0 {
				first = x
			}
			bad++
		}
		ys[i] = y
	}
	return ys, bad, first
}

// TrapezoidRule returns h/2 (f(x_0) + 2 Σ f(x_i) + f(x_n)).
// The rule functions do not validate their arguments; n must be at least
// 1 or the result is NaN. Integrate reports bad arguments as errors.
func TrapezoidRule(f func(float64) float64, a, b float64, n int) float64 {
	if n < 1 {
		return math.NaN()
	}
	v, _, _ := trapezoid(f, a, b, n)
	return v
}

// MidpointRule returns h Σ f(a + (i+½)h).
func MidpointRule(f func(float64) float64, a, b float64, n int) float64 {
	if n < 1 {
		return math.NaN()
	}
	v, _, _ := midpoint(f, a, b, n)
	return v
}

// SimpsonRule returns h/3 (f(x_0) + 4 Σ odd + 2 Σ even interior + f(x_n)).
// An odd n is first raised to n+1.
func SimpsonRule(f func(float64) float64, a, b float64, n int) float64 {
	if n < 1 {
		return math.NaN()
	}
	v, _, _ := simpson(f, a, b, Simpson.Effective(n))
	return v
}

func trapezoid(f func(float64) float64, a, b float64, n int) (float64, int, float64) {
	ys, bad, first := samples(f, Nodes(a, b, n))
	if bad > 0 {
		return math.NaN(), bad, first
	}
	h := (b - a) / float64(n)
	return h / 2 * (ys[0] + 2*floats.Sum(ys[1:n]) + ys[n]), 0, 0
}

func midpoint(f func(float64) float64, a, b float64, n int) (float64, int, float64) {
	ys, bad, first := samples(f, Midpoints(a, b, n))
	if bad > 0 {
		return math.NaN(), bad, first
	}
	h := (b - a) / float64(n)
	return h * floats.Sum(ys), 0, 0
}

// simpson requires n even.
func simpson(f func(float64) float64, a, b float64, n int) (float64, int, float64) {
	ys, bad, first := samples(f, Nodes(a, b, n))
	if bad > 0 {
		return math.NaN(), bad, first
	}
	var odd, even float64
	for i := 1; i < n; i++ {
		if i%2 == 1 {
			odd += ys[i]
		} else {
			even += ys[i]
		}
	}
	h := (b - a) / float64(n)
	return h / 3 * (ys[0] + 4*odd + 2*even + ys[n]), 0, 0
}

// Integrate applies method m to f over [a, b] with n subintervals.
// The returned Result reports the count actually used, which differs
// from n only for Simpson's rule with odd n.
func Integrate(m Method, f func(float64) float64, a, b float64, n int) (Result, error) {
	if err := CheckInterval(a, b); err != nil {
		return Result{}, err
	}
	if n < 1 {
		return Result{}, &CountError{N: n}
	}
	eff := m.Effective(n)
	var (
		v     float64
		bad   int
		first float64
	)
	switch m {
	case Trapezoidal:
		v, bad, first = trapezoid(f, a, b, eff)
	case Midpoint:
		v, bad, first = midpoint(f, a, b, eff)
	case Simpson:
		v, bad, first = simpson(f, a, b, eff)
	default:
		return Result{}, &UnknownMethodError{Name: m.String()}
	}
	r := Result{
		Method:    m,
		Requested: n,
		N:         eff,
		H:         (b - a) / float64(eff),
		Value:     v,
	}
	if bad > 0 {
		r.Domain = &DomainError{Method: m, N: eff, Bad: bad, First: first}
	}
	return r, nil
}
