// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the run-time settings of the quad command.
// The zero Config is ready to use and reports the defaults.
package config // import "robpike.io/quad/config"

import (
	"io"
	"os"
	"sort"

	"github.com/sirupsen/logrus"

	"robpike.io/quad/quad"
	"robpike.io/quad/shape"
)

// DebugFlags lists the names accepted by SetDebug.
var DebugFlags = []string{
	"log",    // log at debug level
	"panic",  // let panics propagate rather than reporting them
	"parse",  // print the parse tree of each expression
	"tokens", // print each token as it is scanned
}

// DefaultNValues are the counts analyzed when none are given.
var DefaultNValues = []int{4, 8, 16, 32, 64, 128, 256, 512, 1024}

type Config struct {
	prompt    string
	format    string
	points    int
	methods   []quad.Method
	nValues   []int
	tolerance *quad.Tolerance
	plot      string
	json      bool
	debug     map[string]bool
	output    io.Writer
	errOutput io.Writer
	logger    *logrus.Logger
}

// Format returns the fmt verb used to print numbers.
func (c *Config) Format() string {
	if c.format == "" {
		return "%.10g"
	}
	return c.format
}

func (c *Config) SetFormat(s string) {
	c.format = s
}

// CurvePoints returns the resolution of sampled curves.
func (c *Config) CurvePoints() int {
	if c.points == 0 {
		return shape.DefaultCurvePoints
	}
	return c.points
}

func (c *Config) SetCurvePoints(n int) {
	c.points = n
}

// Methods returns the methods analyzed by default.
func (c *Config) Methods() []quad.Method {
	if len(c.methods) == 0 {
		return quad.Methods()
	}
	return append([]quad.Method(nil), c.methods...)
}

func (c *Config) SetMethods(ms []quad.Method) {
	c.methods = append([]quad.Method(nil), ms...)
}

// NValues returns the subdivision counts analyzed by default.
func (c *Config) NValues() []int {
	if len(c.nValues) == 0 {
		return append([]int(nil), DefaultNValues...)
	}
	return append([]int(nil), c.nValues...)
}

func (c *Config) SetNValues(ns []int) {
	c.nValues = append([]int(nil), ns...)
	sort.Ints(c.nValues)
}

// Tolerance returns the settings of the reference integrator.
func (c *Config) Tolerance() quad.Tolerance {
	if c.tolerance == nil {
		return quad.DefaultTolerance
	}
	return *c.tolerance
}

func (c *Config) SetTolerance(tol quad.Tolerance) {
	c.tolerance = &tol
}

// Plot returns the path to which charts are written, or "" for none.
func (c *Config) Plot() string {
	return c.plot
}

func (c *Config) SetPlot(path string) {
	c.plot = path
}

// JSON reports whether results are printed as JSON.
func (c *Config) JSON() bool {
	return c.json
}

func (c *Config) SetJSON(on bool) {
	c.json = on
}

func (c *Config) Debug(s string) bool {
	return c.debug[s]
}

// SetDebug sets the named debug switch. It reports whether the name is
// one of DebugFlags.
func (c *Config) SetDebug(s string, state bool) bool {
	if !knownDebug(s) {
		return false
	}
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
	return true
}

func (c *Config) Prompt() string {
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Output returns the writer to be used for program output.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

// SetOutput sets the writer to which program output is printed; default is os.Stdout.
func (c *Config) SetOutput(output io.Writer) {
	c.output = output
}

// ErrOutput returns the writer to be used for error output.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

// SetErrOutput sets the writer to which error output is printed; default is os.Stderr.
// It also redirects the logger.
func (c *Config) SetErrOutput(output io.Writer) {
	c.errOutput = output
	if c.logger != nil {
		c.logger.SetOutput(c.ErrOutput())
	}
}

// Logger returns the logger, which writes to ErrOutput. Its level is Warn,
// or Debug when the "log" debug switch is set.
func (c *Config) Logger() *logrus.Logger {
	if c.logger == nil {
		c.logger = logrus.New()
		c.logger.SetOutput(c.ErrOutput())
		c.logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
			DisableColors:    true,
		})
	}
	if c.Debug("log") {
		c.logger.SetLevel(logrus.DebugLevel)
	} else {
		c.logger.SetLevel(logrus.WarnLevel)
	}
	return c.logger
}
