// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Quad computes definite integrals of functions of one variable by the
composite trapezoidal, midpoint and Simpson rules, compares them with an
adaptive Gauss-Kronrod reference value, and measures how fast each rule
converges as the number of subintervals grows.

Without arguments it reads commands from standard input, one per line,
printing a prompt if the input is a terminal. With arguments, the
arguments form a single command.

Functions are named either by an id from the built-in catalog (see the
functions command) or by an expression in x:

	x**2 + 1
	3x^2 - 2x + 1        implicit multiplication, ^ for powers
	sin(x)/x
	exp(-x**2)
	abs(x - 1)

Only numbers, x, the constants pi and e, the operators + - * / ** and
the functions sin, cos, tan, exp, log, sqrt and abs are accepted.
Anything else is rejected before evaluation. A point where the function
is not defined, such as log(0), makes the rule's result NaN and marks
it degenerate; it is not an error.

Commands:

	functions
	normalize <expr>
	parse <expr>
	integrate <method> <a> <b> <n> <function>
	exact <a> <b> <function>
	calculate <method> <a> <b> <n> <function>
	analyze <a> <b> <function>
	shapes <method> <a> <b> <n> <function>

The bounds a and b may be constant expressions such as pi/2; a > b
gives the negated integral. Simpson's rule needs an even n, so an odd n
is raised to n+1 and the count actually used is reported.

For example,

	integrate trapezoidal 0 2 1 2x+1
		trapezoidal n=1 h=2: 6
	integrate simpson 0 1 5 x**3
		simpson n=6 (requested 5) h=0.1666666667: 0.25

The analyze command tabulates, for each method and each n, the
approximation, the absolute and relative errors, and the experimental
order of convergence

	eoc = ln(E1/E2) / ln(n2/n1)

between consecutive counts, then names the method with the smallest
error at the largest n.

Special commands, which begin with a right parenthesis, show or change
settings: )format, )methods, )n, )points, )tolerance, )json, )plot,
)prompt, )debug, )settings, )save, )get, )demo and )help. Settings are also
read at startup from quad.yaml if it exists (see the -config flag):

	format: '%.10g'
	curve_points: 200
	methods: [trapezoidal, midpoint, simpson]
	n_values: [4, 8, 16, 32, 64, 128, 256, 512, 1024]
	tolerance:
	    abs_tol: 1.49e-08
	    rel_tol: 1.49e-08
	    limit: 50
	json: false

Usage:

	quad [flags] [command]

The flags are:

	-config file
		settings file (default quad.yaml)
	-format string
		format for printing numbers
	-json
		print results as JSON
	-plot file
		write a chart of each analysis or drawing to file
	-points k
		samples in a drawn curve
	-methods list
		methods to analyze
	-n list
		subdivision counts to analyze
	-debug names
		debug settings to enable: log, panic, parse, tokens
	-prompt string
		interactive prompt
*/
package main
