// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The mobile package provides a very narrow interface to quad,
// suitable for wrapping in a UI for mobile applications.
// It is designed to work well with the gomobile tool by exposing
// only primitive types. It's also handy for testing.
//
// The settings changed by special commands are global, so only
// one execution stream (Eval or Demo) should be active at a time.
package mobile // import "robpike.io/quad/mobile"

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"robpike.io/quad/config"
	"robpike.io/quad/demo"
	"robpike.io/quad/run"
)

var conf config.Config

func init() {
	Reset()
}

// Eval executes the input, which may hold several lines of commands,
// and returns its output. If execution caused errors, they will be
// returned concatenated together in the error value returned.
func Eval(input string) (result string, errors error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	run.Quad(&conf, input, stdout, stderr)
	var err error
	if stderr.Len() > 0 {
		err = fmt.Errorf("%s", stderr)
	}
	return stdout.String(), err
}

// Demo represents a running line-by-line demonstration.
type Demo struct {
	scanner *bufio.Scanner
}

// NewDemo returns a new Demo that will scan the input text line by line.
func NewDemo(input string) *Demo {
	Reset()
	return &Demo{
		scanner: bufio.NewScanner(strings.NewReader(input)),
	}
}

// DemoText returns the script of the standard demo, for use with NewDemo.
func DemoText() string {
	return demo.Text()
}

// Next returns the result (and error) produced by the next line of
// input. It returns ("", io.EOF) at EOF.
func (d *Demo) Next() (result string, err error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return Eval(d.scanner.Text())
}

// Reset clears all settings to the initial value.
func Reset() {
	conf = config.Config{}
}

// Help returns the help text.
func Help() string {
	return run.Help()
}
