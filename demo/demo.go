// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo implements the I/O for running the )demo
// special command. The script for the demo is in demo.quad
// in this directory and is embedded in the package.
package demo

import (
	"bufio"
	"bytes"
	"io"

	_ "embed"
)

//go:embed demo.quad
var script []byte

// Text returns the input text for the standard demo.
func Text() string {
	return string(script)
}

// Run steps through the demo script. Each line of the script is echoed
// to output and then written to toQuad, which is expected to execute it.
// A blank line from the user advances the script. A line with text is
// sent to toQuad in its place and the script does not advance; "quit"
// ends the demo. The first line, which holds the instructions, is shown
// before any input is read. A nil user runs the whole script unattended.
func Run(user io.Reader, toQuad, output io.Writer) error {
	text := script
	next := func() []byte {
		nl := bytes.IndexByte(text, '\n')
		if nl < 0 {
			return nil
		}
		var line []byte
		line, text = text[:nl+1], text[nl+1:]
		return line
	}
	output.Write(next())
	var scan *bufio.Scanner
	if user != nil {
		scan = bufio.NewScanner(user)
	}
	for scan == nil || scan.Scan() {
		if scan != nil {
			if typed := bytes.TrimSpace(scan.Bytes()); len(typed) > 0 {
				if string(typed) == "quit" {
					break
				}
				line := append(append([]byte(nil), typed...), '\n')
				if _, err := toQuad.Write(line); err != nil {
					return err
				}
				continue
			}
		}
		line := next()
		if line == nil {
			break
		}
		output.Write(line)
		if _, err := toQuad.Write(line); err != nil {
			return err
		}
	}
	if scan == nil {
		return nil
	}
	return scan.Err()
}
