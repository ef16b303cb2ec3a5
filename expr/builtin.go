// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"math"
	"sort"
)

// Builtins is the complete set of functions an expression may call.
// It is never modified.
var Builtins = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  tan,
	"exp":  math.Exp,
	"log":  math.Log,
	"sqrt": math.Sqrt,
	"abs":  math.Abs,
}

// Constants holds the named constants.
var Constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// tan reports ±Inf at the poles odd*π/2 rather than the huge finite
// value math.Tan returns for the nearest float64.
func tan(x float64) float64 {
	if c := math.Cos(x); math.Abs(c) < 1e-15 {
		return math.Copysign(math.Inf(1), math.Sin(x)*c)
	}
	return math.Tan(x)
}

// IsBuiltin reports whether name is a callable builtin.
func IsBuiltin(name string) bool {
	_, ok := Builtins[name]
	return ok
}

// IsConstant reports whether name is a named constant.
func IsConstant(name string) bool {
	_, ok := Constants[name]
	return ok
}

// BuiltinNames returns the builtin names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(Builtins))
	for name := range Builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
