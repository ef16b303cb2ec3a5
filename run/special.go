// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"robpike.io/quad/config"
	"robpike.io/quad/quad"
)

const defaultFile = config.DefaultSettingsPath

func truth(x bool) int {
	if x {
		return 1
	}
	return 0
}

// integer returns the text as a non-negative int.
func integer(text string) int {
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		errorf("value must be a non-negative integer: %s", text)
	}
	return n
}

func number(text string) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		errorf("bad number %q", text)
	}
	return v
}

// unquote strips the quotes from a Go-quoted or single-quoted string,
// accepting bare text too.
func unquote(text string) string {
	if s, err := strconv.Unquote(text); err == nil {
		return s
	}
	if len(text) >= 2 && text[0] == '\'' && text[len(text)-1] == '\'' {
		return text[1 : len(text)-1]
	}
	return text
}

// special executes a command beginning with ')'.
func (s *session) special(name, args string) error {
	conf := s.conf
Switch:
	switch name {
	case "debug":
		if args == "" {
			for _, f := range config.DebugFlags {
				s.Printf("%s\t%d\n", f, truth(conf.Debug(f)))
			}
			break Switch
		}
		flag, val := word(args)
		var state bool
		if val == "" {
			// Toggle the value
			state = !conf.Debug(flag)
		} else {
			state = integer(val) != 0
		}
		if !conf.SetDebug(flag, state) {
			s.Println("no such debug flag:", flag)
			break Switch
		}
		if val == "" {
			s.Println(truth(conf.Debug(flag)))
		}
	case "demo":
		if args != "" {
			errorf("usage: )demo")
		}
		if err := s.runDemo(); err != nil {
			return err
		}
		s.Println("Demo finished")
	case "format":
		if args == "" {
			s.Printf("%q\n", conf.Format())
			break Switch
		}
		conf.SetFormat(unquote(args))
	case "get":
		path := defaultFile
		if args != "" {
			path = unquote(args)
		}
		settings, err := config.Load(path)
		if err != nil {
			return err
		}
		if err := conf.Apply(settings); err != nil {
			return err
		}
	case "help":
		s.Printf("%s", help)
	case "json":
		if args == "" {
			s.Println(truth(conf.JSON()))
			break Switch
		}
		conf.SetJSON(integer(args) != 0)
	case "methods":
		if args == "" {
			var names []string
			for _, m := range conf.Methods() {
				names = append(names, m.String())
			}
			s.Println(strings.Join(names, ","))
			break Switch
		}
		ms, err := quad.ParseMethods(args)
		if err != nil {
			errorf("%v", err)
		}
		if len(ms) == 0 {
			errorf("no methods given")
		}
		conf.SetMethods(ms)
	case "n":
		if args == "" {
			var ns []string
			for _, n := range conf.NValues() {
				ns = append(ns, strconv.Itoa(n))
			}
			s.Println(strings.Join(ns, ","))
			break Switch
		}
		var ns []int
		for _, f := range strings.FieldsFunc(args, func(r rune) bool { return r == ',' || r == ' ' }) {
			n := integer(f)
			if n < 1 {
				errorf("subdivision count must be at least 1: %d", n)
			}
			ns = append(ns, n)
		}
		conf.SetNValues(ns)
	case "plot":
		if args == "" {
			s.Printf("%q\n", conf.Plot())
			break Switch
		}
		conf.SetPlot(unquote(args))
	case "points":
		if args == "" {
			s.Println(conf.CurvePoints())
			break Switch
		}
		n := integer(args)
		if n < 2 {
			errorf("curve needs at least 2 points")
		}
		conf.SetCurvePoints(n)
	case "prompt":
		if args == "" {
			s.Printf("%q\n", conf.Prompt())
			break Switch
		}
		conf.SetPrompt(unquote(args))
	case "save":
		path := defaultFile
		if args != "" {
			path = unquote(args)
		}
		return conf.Settings().Save(path)
	case "settings":
		data, err := yaml.Marshal(conf.Settings())
		if err != nil {
			return err
		}
		s.Printf("%s", data)
	case "tolerance":
		tol := conf.Tolerance()
		if args == "" {
			s.Printf("%g %g %d\n", tol.AbsTol, tol.RelTol, tol.Limit)
			break Switch
		}
		ws, rest := words(args, 2, ")tolerance <abs> <rel> [<limit>]")
		tol.AbsTol, tol.RelTol = number(ws[0]), number(ws[1])
		if tol.AbsTol < 0 || tol.RelTol < 0 {
			errorf("tolerance must not be negative")
		}
		if rest != "" {
			tol.Limit = integer(rest)
			if tol.Limit < 1 {
				errorf("interval limit must be at least 1")
			}
		}
		conf.SetTolerance(tol)
	default:
		errorf(")%s: unknown special command; try )help", name)
	}
	return nil
}
