// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

// Help returns the help text printed by )help.
func Help() string {
	return help
}

const help = `Commands:
	functions
		List the catalog of test functions.
	normalize <expr>
		Print the expression after implicit multiplication is made explicit.
	parse <expr>
		Print the expression fully parenthesized.
	integrate <method> <a> <b> <n> <function>
		Apply one rule with n subintervals.
	exact <a> <b> <function>
		Print the reference integral and its error estimate.
	calculate <method> <a> <b> <n> <function>
		Compare one rule with the reference integral.
	analyze <a> <b> <function>
		Tabulate errors and convergence orders for each method and n.
	shapes <method> <a> <b> <n> <function>
		Print the primitives that draw the rule.

A function is a catalog id such as smooth_sin or an expression in x
using + - * / ** (or ^), parentheses, pi, e, and the functions
sin cos tan exp log sqrt abs. Implicit multiplication is allowed: 2x, 3(x+1).
Bounds may be constant expressions such as pi/2.
Methods are trapezoidal, midpoint and simpson; Simpson's rule raises an
odd n to n+1.

Special commands:
	)debug [<flag> [0|1]]          show or set debug flags
	)demo                          step through a demonstration
	)format ["<verb>"]             number format, default "%.10g"
	)get ["<file>"]                load settings (default quad.yaml)
	)help                          print this text
	)json [0|1]                    print results as JSON
	)methods [<list>]              methods analyzed, comma separated
	)n [<list>]                    subdivision counts analyzed
	)plot ["<file>"]               write a chart of each result to file
	)points [<k>]                  samples in a drawn curve
	)prompt ["<text>"]             interactive prompt
	)save ["<file>"]               save settings (default quad.yaml)
	)settings                      print settings as YAML
	)tolerance [<abs> <rel> [<n>]] reference integrator tolerance and interval limit
`
