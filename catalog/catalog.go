// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog holds the fixed directory of named test functions.
// The directory is built at initialization and never modified, so it may
// be read from any number of goroutines.
package catalog // import "robpike.io/quad/catalog"

import (
	"fmt"
	"math"

	"robpike.io/quad/expr"
)

// Descriptor describes a catalog function. BestMethod records which rule
// theory favors for the function; it is documentation only and plays no
// part in choosing a winner.
type Descriptor struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	LaTeX       string  `json:"latex" yaml:"latex"`
	Category    string  `json:"category" yaml:"category"`
	BestMethod  string  `json:"best_method,omitempty" yaml:"best_method,omitempty"`
	A           float64 `json:"default_a" yaml:"default_a"`
	B           float64 `json:"default_b" yaml:"default_b"`
	Description string  `json:"description" yaml:"description"`
}

// Entry is a function together with its descriptor.
type Entry struct {
	Descriptor
	Func expr.Func
}

// UnknownFunctionError reports a catalog id that does not exist.
type UnknownFunctionError struct {
	ID string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function id %q", e.ID)
}

// Categories, in display order.
const (
	Smooth          = "Smooth"
	MildCurvature   = "Mild Curvature"
	TurningPoints   = "Turning Points"
	TrapezoidalBest = "Trapezoidal Best"
	MidpointBest    = "Midpoint Best"
	Challenging     = "Challenging"
)

var categories = []string{Smooth, MildCurvature, TurningPoints, TrapezoidalBest, MidpointBest, Challenging}

var directory = []*Entry{
	{
		Descriptor: Descriptor{
			ID:          "smooth_sin",
			Name:        "sin(x)",
			LaTeX:       `\sin(x)`,
			Category:    Smooth,
			BestMethod:  "simpson",
			A:           0,
			B:           math.Pi,
			Description: "Classic smooth periodic function",
		},
		Func: math.Sin,
	},
	{
		Descriptor: Descriptor{
			ID:          "smooth_exp",
			Name:        "e^x",
			LaTeX:       `e^x`,
			Category:    Smooth,
			BestMethod:  "simpson",
			A:           0,
			B:           1,
			Description: "Exponential growth, infinitely differentiable",
		},
		Func: math.Exp,
	},
	{
		Descriptor: Descriptor{
			ID:          "mild_rational",
			Name:        "1/(1+x²)",
			LaTeX:       `\frac{1}{1+x^2}`,
			Category:    MildCurvature,
			BestMethod:  "simpson",
			A:           0,
			B:           1,
			Description: "Rational function with a gentle curve",
		},
		Func: func(x float64) float64 { return 1 / (1 + x*x) },
	},
	{
		Descriptor: Descriptor{
			ID:          "mild_sqrt",
			Name:        "√(1+x)",
			LaTeX:       `\sqrt{1+x}`,
			Category:    MildCurvature,
			BestMethod:  "simpson",
			A:           0,
			B:           3,
			Description: "Square root, smooth with a decreasing derivative",
		},
		Func: func(x float64) float64 { return math.Sqrt(1 + x) },
	},
	{
		Descriptor: Descriptor{
			ID:          "turning_cubic",
			Name:        "x³ - 3x",
			LaTeX:       `x^3 - 3x`,
			Category:    TurningPoints,
			BestMethod:  "simpson",
			A:           -2,
			B:           2,
			Description: "Cubic with a local maximum and minimum",
		},
		Func: func(x float64) float64 { return x*x*x - 3*x },
	},
	{
		Descriptor: Descriptor{
			ID:          "turning_cos5x",
			Name:        "cos(5x)",
			LaTeX:       `\cos(5x)`,
			Category:    TurningPoints,
			BestMethod:  "simpson",
			A:           0,
			B:           math.Pi,
			Description: "High frequency oscillation, needs more intervals",
		},
		Func: func(x float64) float64 { return math.Cos(5 * x) },
	},
	{
		Descriptor: Descriptor{
			ID:          "trap_linear",
			Name:        "2x + 1",
			LaTeX:       `2x + 1`,
			Category:    TrapezoidalBest,
			BestMethod:  "trapezoidal",
			A:           0,
			B:           5,
			Description: "Linear function; the trapezoidal rule is exact for it",
		},
		Func: func(x float64) float64 { return 2*x + 1 },
	},
	{
		Descriptor: Descriptor{
			ID:          "trap_piecewise",
			Name:        "|x - 1|",
			LaTeX:       `|x - 1|`,
			Category:    TrapezoidalBest,
			BestMethod:  "trapezoidal",
			A:           0,
			B:           2,
			Description: "Piecewise linear V shape with a corner on a node",
		},
		Func: func(x float64) float64 { return math.Abs(x - 1) },
	},
	{
		Descriptor: Descriptor{
			ID:          "mid_quadratic",
			Name:        "x² - 2x",
			LaTeX:       `x^2 - 2x`,
			Category:    MidpointBest,
			BestMethod:  "midpoint",
			A:           0,
			B:           3,
			Description: "Quadratic; midpoint error is half the trapezoidal error",
		},
		Func: func(x float64) float64 { return x*x - 2*x },
	},
	{
		Descriptor: Descriptor{
			ID:          "mid_symmetric",
			Name:        "x⁴ - x²",
			LaTeX:       `x^4 - x^2`,
			Category:    MidpointBest,
			BestMethod:  "midpoint",
			A:           -1,
			B:           1,
			Description: "Symmetric function; errors cancel at midpoints",
		},
		Func: func(x float64) float64 { return x*x*x*x - x*x },
	},
	{
		Descriptor: Descriptor{
			ID:          "disc_step",
			Name:        "step(x-0.5)",
			LaTeX:       `\text{step}(x - 0.5)`,
			Category:    Challenging,
			BestMethod:  "midpoint",
			A:           0,
			B:           1,
			Description: "Step function; every rule struggles with the jump",
		},
		Func: func(x float64) float64 {
			if x < 0.5 {
				return 0
			}
			return 1
		},
	},
	{
		Descriptor: Descriptor{
			ID:          "disc_sawtooth",
			Name:        "x mod 0.5",
			LaTeX:       `x \bmod 0.5`,
			Category:    Challenging,
			BestMethod:  "trapezoidal",
			A:           0,
			B:           2,
			Description: "Sawtooth wave, periodic with jumps",
		},
		Func: sawtooth,
	},
}

// sawtooth is x mod 0.5 with the sign convention of a floored modulus,
// so the result is always in [0, 0.5).
func sawtooth(x float64) float64 {
	m := math.Mod(x, 0.5)
	if m < 0 {
		m += 0.5
	}
	return m
}

var byID = func() map[string]*Entry {
	m := make(map[string]*Entry, len(directory))
	for _, e := range directory {
		m[e.ID] = e
	}
	return m
}()

// Lookup returns a copy of the entry with the given id.
func Lookup(id string) (Entry, error) {
	e, ok := byID[id]
	if !ok {
		return Entry{}, &UnknownFunctionError{ID: id}
	}
	return *e, nil
}

// Resolve returns the callable and descriptor for id.
func Resolve(id string) (expr.Func, Descriptor, error) {
	e, err := Lookup(id)
	if err != nil {
		return nil, Descriptor{}, err
	}
	return e.Func, e.Descriptor, nil
}

// Has reports whether id names a catalog function.
func Has(id string) bool {
	_, ok := byID[id]
	return ok
}

// All returns the descriptors in directory order. The slice is a copy.
func All() []Descriptor {
	d := make([]Descriptor, len(directory))
	for i, e := range directory {
		d[i] = e.Descriptor
	}
	return d
}

// Categories returns the category names in display order.
func Categories() []string {
	return append([]string(nil), categories...)
}

// InCategory returns the descriptors in the named category.
func InCategory(category string) []Descriptor {
	var d []Descriptor
	for _, e := range directory {
		if e.Category == category {
			d = append(d, e.Descriptor)
		}
	}
	return d
}
