// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"robpike.io/quad/config"
	"robpike.io/quad/demo"
	"robpike.io/quad/quad"
)

// execute runs input with a fresh configuration and returns its output.
func execute(t *testing.T, input string) (stdout, stderr string, conf *config.Config) {
	t.Helper()
	conf = new(config.Config)
	var out, errs bytes.Buffer
	Quad(conf, input, &out, &errs)
	return out.String(), errs.String(), conf
}

func TestWord(t *testing.T) {
	var tests = []struct {
		text, first, rest string
	}{
		{"", "", ""},
		{"exact", "exact", ""},
		{"  exact 0 1   x + 1 ", "exact", "0 1   x + 1"},
		{"a\tb", "a", "b"},
	}
	for _, test := range tests {
		first, rest := word(test.text)
		if first != test.first || rest != test.rest {
			t.Errorf("word(%q) = %q, %q; expected %q, %q", test.text, first, rest, test.first, test.rest)
		}
	}
}

func TestExecuteErrors(t *testing.T) {
	var conf config.Config
	conf.SetOutput(new(bytes.Buffer))
	err := Execute(&conf, "frobnicate now")
	if !IsError(err) {
		t.Fatalf("expected command error; got %v", err)
	}
	err = Execute(&conf, "integrate trapezoidal 0 1 4 y")
	if err == nil || IsError(err) {
		t.Fatalf("expected expression error; got %v", err)
	}
	err = Execute(&conf, "integrate trapezoidal 0 1 0 x")
	var ce *quad.CountError
	if !errors.As(err, &ce) {
		t.Fatalf("expected count error; got %v", err)
	}
	if err := Execute(&conf, "   "); err != nil {
		t.Fatal(err)
	}
	if err := Execute(&conf, "# integrate"); err != nil {
		t.Fatal(err)
	}
}

func TestPanicFlag(t *testing.T) {
	var conf config.Config
	conf.SetOutput(new(bytes.Buffer))
	conf.SetDebug("panic", true)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic with debug panic set")
		}
	}()
	Execute(&conf, "frobnicate")
}

func TestRunContinues(t *testing.T) {
	out, errs, _ := execute(t, "integrate trapezoidal 0 2 1 2x+1\nbogus\nintegrate midpoint 0 2 1 2x+1\n")
	want := "trapezoidal n=1 h=2: 6\nmidpoint n=1 h=2: 6\n"
	if out != want {
		t.Errorf("expected %q; got %q", want, out)
	}
	if !strings.Contains(errs, `unknown command "bogus"`) {
		t.Errorf("unexpected error output %q", errs)
	}
}

func TestInteractive(t *testing.T) {
	var conf config.Config
	var out bytes.Buffer
	conf.SetOutput(&out)
	conf.SetErrOutput(new(bytes.Buffer))
	conf.SetPrompt("> ")
	lines := bufio.NewScanner(strings.NewReader("integrate trapezoidal 0 2 1 2x+1\n"))
	if !Run(&conf, lines, true) {
		t.Fatal("run failed")
	}
	want := "> trapezoidal n=1 h=2: 6\n> "
	if out.String() != want {
		t.Errorf("expected %q; got %q", want, out.String())
	}
}

func TestDebugLog(t *testing.T) {
	_, errs, _ := execute(t, ")debug log 1\nintegrate trapezoidal 0 1 2 log(x)\n")
	if !strings.Contains(errs, "level=debug msg=execute") || !strings.Contains(errs, "command=integrate") {
		t.Errorf("missing execute log in %q", errs)
	}
	if !strings.Contains(errs, "msg=\"degenerate result\"") {
		t.Errorf("missing degenerate log in %q", errs)
	}
	_, errs, _ = execute(t, "integrate trapezoidal 0 1 2 log(x)\n")
	if errs != "" {
		t.Errorf("unexpected log output %q", errs)
	}
}

func TestTokens(t *testing.T) {
	out, errs, _ := execute(t, ")debug tokens 1\nparse x+1\n")
	if errs != "" {
		t.Fatal(errs)
	}
	want := "0: emit Identifier: \"x\"\n1: emit Operator: \"+\"\n2: emit Number: \"1\"\n(x + 1)\n"
	if out != want {
		t.Errorf("expected %q; got %q", want, out)
	}
}

func TestSettings(t *testing.T) {
	out, errs, _ := execute(t, ")format %.4g\n)methods simpson\n)json 1\n)settings\n")
	if errs != "" {
		t.Fatal(errs)
	}
	var s config.Settings
	if err := yaml.Unmarshal([]byte(out), &s); err != nil {
		t.Fatalf("settings output is not YAML: %v\n%s", err, out)
	}
	if s.Format != "%.4g" || !s.JSON || len(s.Methods) != 1 || s.Methods[0] != "simpson" {
		t.Errorf("unexpected settings %+v", s)
	}
	if s.Tolerance != quad.DefaultTolerance {
		t.Errorf("tolerance %+v; expected default", s.Tolerance)
	}
}

func TestSaveGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	_, errs, _ := execute(t, ")n 3,6\n)points 17\n)tolerance 1e-9 1e-9 80\n)save "+path+"\n")
	if errs != "" {
		t.Fatal(errs)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
	out, errs, conf := execute(t, ")get \""+path+"\"\n)n\n)points\n)tolerance\n")
	if errs != "" {
		t.Fatal(errs)
	}
	want := "3,6\n17\n1e-09 1e-09 80\n"
	if out != want {
		t.Errorf("expected %q; got %q", want, out)
	}
	if conf.CurvePoints() != 17 {
		t.Errorf("points %d; expected 17", conf.CurvePoints())
	}
}

func TestJSON(t *testing.T) {
	out, errs, _ := execute(t, ")json 1\n)n 8,16\nanalyze 0 1 log(x)\n")
	if errs != "" {
		t.Fatal(errs)
	}
	if strings.Contains(out, "NaN") {
		t.Errorf("JSON contains NaN:\n%s", out)
	}
	var res struct {
		Exact   float64 `json:"exact_value"`
		Winner  string  `json:"winner"`
		Results []struct {
			Method string `json:"method"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("bad JSON: %v\n%s", err, out)
	}
	if len(res.Results) != 3 || res.Winner != "midpoint" {
		t.Errorf("unexpected analysis %+v", res)
	}

	for _, cmd := range []string{
		"calculate simpson 0 1 4 smooth_exp",
		"shapes midpoint 0 1 4 x",
		"exact 0 1 x",
		"functions",
	} {
		out, errs, _ := execute(t, ")json 1\n)points 3\n"+cmd+"\n")
		if errs != "" {
			t.Fatalf("%s: %s", cmd, errs)
		}
		if !json.Valid([]byte(out)) {
			t.Errorf("%s: invalid JSON:\n%s", cmd, out)
		}
	}
}

func TestPlot(t *testing.T) {
	dir := t.TempDir()
	for _, cmd := range []string{
		"analyze 0 pi sin(x)",
		"shapes simpson 0 pi 4 sin(x)",
		"calculate midpoint 0 1 4 exp(x)",
	} {
		path := filepath.Join(dir, strings.Fields(cmd)[0]+".png")
		_, errs, _ := execute(t, ")n 4,8\n)plot "+path+"\n"+cmd+"\n")
		if errs != "" {
			t.Fatalf("%s: %s", cmd, errs)
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s: no plot written: %v", cmd, err)
		}
	}
}

func TestHelp(t *testing.T) {
	out, _, _ := execute(t, ")help\n")
	for _, cmd := range []string{"analyze", "calculate", ")tolerance", ")settings"} {
		if !strings.Contains(out, cmd) {
			t.Errorf("help does not mention %s", cmd)
		}
	}
	if out != Help() {
		t.Error(")help output differs from Help")
	}
}

func TestDemo(t *testing.T) {
	defer func(r io.Reader) { demoInput = r }(demoInput)
	demoInput = strings.NewReader("\n\n\nquit\n")
	out, errs, conf := execute(t, ")demo\n")
	if errs != "" {
		t.Fatal(errs)
	}
	lines := strings.SplitAfter(demo.Text(), "\n")
	want := lines[0] + lines[1] + lines[2] + "trapezoidal n=1 h=2: 6\n" + lines[3] + "Demo finished\n"
	if out != want {
		t.Errorf("expected %q; got %q", want, out)
	}
	if conf.Format() != "%.10g" {
		t.Errorf("demo changed the format to %q", conf.Format())
	}
}
