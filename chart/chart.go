// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws convergence tables and rule geometry.
// The image format is chosen by the extension of the output path
// (.png, .svg, .pdf, ...).
package chart // import "robpike.io/quad/chart"

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"robpike.io/quad/analysis"
	"robpike.io/quad/shape"
)

const (
	width  = 6 * vg.Inch
	height = 4 * vg.Inch
)

// ErrNothingToPlot is returned by Convergence when no series has a
// positive finite error.
var ErrNothingToPlot = errors.New("chart: no positive finite errors to plot")

// Convergence writes a log-log plot of absolute error against n, one line
// per method. Records whose error is zero or not finite are left out.
func Convergence(res *analysis.Result, path string) error {
	p, err := convergencePlot(res)
	if err != nil {
		return err
	}
	return p.Save(width, height, path)
}

func convergencePlot(res *analysis.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Convergence on [%g, %g]", res.A, res.B)
	p.X.Label.Text = "n"
	p.Y.Label.Text = "absolute error"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true

	var lines []interface{}
	for _, s := range res.Series {
		var xys plotter.XYs
		for _, r := range s.Records {
			if r.AbsoluteError > 0 && !math.IsInf(r.AbsoluteError, 0) {
				xys = append(xys, plotter.XY{X: float64(r.N), Y: r.AbsoluteError})
			}
		}
		if len(xys) == 0 {
			continue
		}
		lines = append(lines, s.Method.String(), xys)
	}
	if len(lines) == 0 {
		return nil, ErrNothingToPlot
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return nil, err
	}
	return p, nil
}

// Shapes writes the integrand and the rule's primitives.
func Shapes(data *shape.Data, path string) error {
	p, err := shapesPlot(data)
	if err != nil {
		return err
	}
	return p.Save(width, height, path)
}

var fill = color.RGBA{R: 70, G: 130, B: 180, A: 96}

func shapesPlot(data *shape.Data) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s rule, n = %d", data.Method, data.N)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"

	for _, s := range data.Shapes {
		poly, err := plotter.NewPolygon(outline(s))
		if err != nil {
			// Shapes with non-finite heights are not drawn.
			continue
		}
		poly.Color = fill
		poly.LineStyle.Width = vg.Points(0.5)
		p.Add(poly)
	}

	var curve plotter.XYs
	for _, pt := range data.Curve {
		if !math.IsNaN(pt.Y) && !math.IsInf(pt.Y, 0) {
			curve = append(curve, plotter.XY{X: pt.X, Y: pt.Y})
		}
	}
	if len(curve) > 0 {
		line, err := plotter.NewLine(curve)
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(0)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add("f", line)
	}
	return p, nil
}

// parabolaSamples is the number of points used to outline a parabola.
const parabolaSamples = 16

// outline returns the closed boundary of the area a shape covers,
// between the x axis and its top edge.
func outline(s shape.Shape) plotter.XYs {
	switch s.Kind {
	case shape.Trapezoid:
		return plotter.XYs{{X: s.X0, Y: 0}, {X: s.X0, Y: s.Y0}, {X: s.X1, Y: s.Y1}, {X: s.X1, Y: 0}}
	case shape.Rectangle:
		return plotter.XYs{{X: s.X0, Y: 0}, {X: s.X0, Y: s.Y0}, {X: s.X1, Y: s.Y0}, {X: s.X1, Y: 0}}
	case shape.Parabola:
		xys := plotter.XYs{{X: s.X0, Y: 0}}
		for i := 0; i <= parabolaSamples; i++ {
			x := s.X0 + (s.X2-s.X0)*float64(i)/parabolaSamples
			xys = append(xys, plotter.XY{X: x, Y: s.At(x)})
		}
		return append(xys, plotter.XY{X: s.X2, Y: 0})
	}
	return nil
}
