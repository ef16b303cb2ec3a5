// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape produces the geometry needed to draw a quadrature rule:
// a dense sampling of the integrand and one primitive per subinterval
// (trapezoid or rectangle) or per pair of subintervals (parabola).
//
// The primitives are laid out on exactly the points package quad samples,
// so a picture built from them always matches the reported value.
package shape // import "robpike.io/quad/shape"

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"robpike.io/quad/quad"
)

// DefaultCurvePoints is the resolution of Data.Curve.
const DefaultCurvePoints = 200

// Kind identifies a primitive.
type Kind string

const (
	Trapezoid Kind = "trapezoid"
	Rectangle Kind = "rectangle"
	Parabola  Kind = "parabola"
)

// Point is a sample of the integrand.
type Point struct {
	X, Y float64
}

// Shape is one primitive. A trapezoid uses X0, X1 and the heights Y0, Y1
// at those points. A rectangle spans X0 to X1 with height Y0, taken at
// the midpoint. A parabola passes through (X0,Y0), (X1,Y1) and (X2,Y2),
// with X1 the midpoint of X0 and X2. Area is the primitive's (signed)
// contribution to the rule's value.
type Shape struct {
	Kind       Kind
	X0, X1, X2 float64
	Y0, Y1, Y2 float64
	Area       float64
}

// Data is the drawing of one rule application.
type Data struct {
	Method    quad.Method
	Requested int
	N         int // Effective count.
	H         float64
	Value     float64
	Domain    *quad.DomainError
	Curve     []Point
	Shapes    []Shape
}

// Sum returns the total area of the shapes, which equals the rule's value
// up to rounding.
func (d *Data) Sum() float64 {
	s := make([]float64, len(d.Shapes))
	for i, sh := range d.Shapes {
		s[i] = sh.Area
	}
	return floats.Sum(s)
}

type options struct {
	points int
}

// Option configures Build.
type Option func(*options)

// WithCurvePoints sets how many samples Data.Curve holds.
func WithCurvePoints(n int) Option {
	return func(o *options) {
		o.points = n
	}
}

// PointsError reports an unusable curve resolution.
type PointsError struct {
	Points int
}

func (e *PointsError) Error() string {
	return fmt.Sprintf("curve resolution %d: must be at least 2", e.Points)
}

// Build samples f over [a, b] and lays out the primitives of method m
// with n subintervals. For Simpson's rule an odd n is raised to n+1.
func Build(f func(float64) float64, a, b float64, n int, m quad.Method, opts ...Option) (*Data, error) {
	o := options{points: DefaultCurvePoints}
	for _, opt := range opts {
		opt(&o)
	}
	if o.points < 2 {
		return nil, &PointsError{Points: o.points}
	}
	r, err := quad.Integrate(m, f, a, b, n)
	if err != nil {
		return nil, err
	}
	d := &Data{
		Method:    m,
		Requested: r.Requested,
		N:         r.N,
		H:         r.H,
		Value:     r.Value,
		Domain:    r.Domain,
		Curve:     curve(f, a, b, o.points),
	}
	switch m {
	case quad.Trapezoidal:
		d.Shapes = trapezoids(f, quad.Nodes(a, b, r.N))
	case quad.Midpoint:
		d.Shapes = rectangles(f, quad.Nodes(a, b, r.N), quad.Midpoints(a, b, r.N))
	case quad.Simpson:
		d.Shapes = parabolas(f, quad.Nodes(a, b, r.N))
	default:
		return nil, errors.New("shape: unreachable method")
	}
	return d, nil
}

func curve(f func(float64) float64, a, b float64, points int) []Point {
	xs := floats.Span(make([]float64, points), a, b)
	c := make([]Point, points)
	for i, x := range xs {
		c[i] = Point{X: x, Y: f(x)}
	}
	return c
}

func trapezoids(f func(float64) float64, xs []float64) []Shape {
	shapes := make([]Shape, len(xs)-1)
	y0 := f(xs[0])
	for i := range shapes {
		y1 := f(xs[i+1])
		shapes[i] = Shape{
			Kind: Trapezoid,
			X0:   xs[i],
			X1:   xs[i+1],
			Y0:   y0,
			Y1:   y1,
			Area: (xs[i+1] - xs[i]) / 2 * (y0 + y1),
		}
		y0 = y1
	}
	return shapes
}

func rectangles(f func(float64) float64, xs, mids []float64) []Shape {
	shapes := make([]Shape, len(mids))
	for i, mid := range mids {
		y := f(mid)
		shapes[i] = Shape{
			Kind: Rectangle,
			X0:   xs[i],
			X1:   xs[i+1],
			Y0:   y,
			Area: (xs[i+1] - xs[i]) * y,
		}
	}
	return shapes
}

// parabolas requires len(xs)-1 even.
func parabolas(f func(float64) float64, xs []float64) []Shape {
	shapes := make([]Shape, (len(xs)-1)/2)
	y0 := f(xs[0])
	for i := range shapes {
		x0, x1, x2 := xs[2*i], xs[2*i+1], xs[2*i+2]
		y1, y2 := f(x1), f(x2)
		shapes[i] = Shape{
			Kind: Parabola,
			X0:   x0,
			X1:   x1,
			X2:   x2,
			Y0:   y0,
			Y1:   y1,
			Y2:   y2,
			Area: (x2 - x0) / 6 * (y0 + 4*y1 + y2),
		}
		y0 = y2
	}
	return shapes
}

// At evaluates the top edge of the shape at x: the line through
// (X0, Y0) and (X1, Y1) for a trapezoid, Y0 for a rectangle, and the
// parabola through the three control points for a parabola.
func (s Shape) At(x float64) float64 {
	switch s.Kind {
	case Trapezoid:
		t := (x - s.X0) / (s.X1 - s.X0)
		return s.Y0 + t*(s.Y1-s.Y0)
	case Rectangle:
		return s.Y0
	}
	// Lagrange form.
	l0 := (x - s.X1) * (x - s.X2) / ((s.X0 - s.X1) * (s.X0 - s.X2))
	l1 := (x - s.X0) * (x - s.X2) / ((s.X1 - s.X0) * (s.X1 - s.X2))
	l2 := (x - s.X0) * (x - s.X1) / ((s.X2 - s.X0) * (s.X2 - s.X1))
	return s.Y0*l0 + s.Y1*l1 + s.Y2*l2
}
