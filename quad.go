// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"robpike.io/quad/config"
	"robpike.io/quad/quad"
	"robpike.io/quad/run"
)

var (
	configFile = flag.String("config", config.DefaultSettingsPath, "settings `file`; ignored if it does not exist")
	format     = flag.String("format", "", "format `string` for printing numbers; default %.10g")
	jsonOut    = flag.Bool("json", false, "print results as JSON")
	plotFile   = flag.String("plot", "", "write a chart of each result to `file` (.png, .svg, .pdf)")
	points     = flag.Int("points", 0, "number of samples in a drawn curve")
	methods    = flag.String("methods", "", "comma-separated `list` of methods to analyze")
	nValues    = flag.String("n", "", "comma-separated `list` of subdivision counts to analyze")
	debugFlag  = flag.String("debug", "", "comma-separated `names` of debug settings to enable")
	prompt     = flag.String("prompt", "", "command `prompt` when reading a terminal")
)

var conf config.Config

func main() {
	flag.Usage = usage
	flag.Parse()

	log := conf.Logger()
	settings, err := config.LoadOrDefault(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if err := conf.Apply(settings); err != nil {
		log.Fatal(err)
	}
	if err := applyFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "quad: %s\n", err)
		usage()
	}

	if flag.NArg() > 0 {
		if err := run.Execute(&conf, strings.Join(flag.Args(), " ")); err != nil {
			fmt.Fprintln(conf.ErrOutput(), err)
			os.Exit(1)
		}
		return
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive && conf.Prompt() == "" {
		conf.SetPrompt("quad> ")
	}
	lines := bufio.NewScanner(os.Stdin)
	ok := true
	for !run.Run(&conf, lines, interactive) {
		ok = false
	}
	if !ok && !interactive {
		os.Exit(1)
	}
}

// applyFlags overrides the settings file with the flags that were set.
func applyFlags() error {
	var err error
	flag.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "format":
			conf.SetFormat(*format)
		case "json":
			conf.SetJSON(*jsonOut)
		case "plot":
			conf.SetPlot(*plotFile)
		case "points":
			if *points < 2 {
				err = fmt.Errorf("-points must be at least 2")
				return
			}
			conf.SetCurvePoints(*points)
		case "methods":
			var ms []quad.Method
			ms, err = quad.ParseMethods(*methods)
			if err == nil && len(ms) == 0 {
				err = fmt.Errorf("-methods: no methods given")
			}
			conf.SetMethods(ms)
		case "n":
			var ns []int
			for _, s := range strings.Split(*nValues, ",") {
				n, e := strconv.Atoi(strings.TrimSpace(s))
				if e != nil || n < 1 {
					err = fmt.Errorf("-n: bad subdivision count %q", s)
					return
				}
				ns = append(ns, n)
			}
			conf.SetNValues(ns)
		case "debug":
			for _, name := range strings.Split(*debugFlag, ",") {
				if !conf.SetDebug(strings.TrimSpace(name), true) {
					err = fmt.Errorf("-debug: no such debug flag %q", name)
					return
				}
			}
		case "prompt":
			conf.SetPrompt(*prompt)
		}
	})
	return err
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: quad [options] [command]\n")
	fmt.Fprintf(os.Stderr, "With no command, commands are read from standard input; try )help.\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
