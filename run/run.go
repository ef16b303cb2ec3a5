// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for quad.
// It is factored out of main so it can be used for tests.
// This layout also helps out quad/mobile.
package run // import "robpike.io/quad/run"

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"robpike.io/quad/config"
)

// Error is the type reported for a malformed command line.
type Error string

func (err Error) Error() string {
	return string(err)
}

func errorf(format string, args ...interface{}) {
	panic(Error(fmt.Sprintf(format, args...)))
}

// Quad runs the input text, sending output to stdout and errors to
// stderr. It reports whether every command succeeded.
func Quad(conf *config.Config, input string, stdout, stderr io.Writer) bool {
	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)
	lines := bufio.NewScanner(strings.NewReader(input))
	ok := true
	for !Run(conf, lines, false) {
		ok = false
	}
	return ok
}

// Run runs commands read from lines until EOF or error.
// The return value says whether we completed without error. If the return
// value is true, it means we ran out of data (EOF) and the run was successful.
// Typical execution is therefore to loop calling Run until it succeeds.
// Error details are reported to the configured error output stream.
func Run(conf *config.Config, lines *bufio.Scanner, interactive bool) (success bool) {
	writer := conf.Output()
	for {
		if interactive {
			fmt.Fprint(writer, conf.Prompt())
		}
		if !lines.Scan() {
			if err := lines.Err(); err != nil {
				fmt.Fprintln(conf.ErrOutput(), err)
				return false
			}
			return true
		}
		if err := Execute(conf, lines.Text()); err != nil {
			fmt.Fprintln(conf.ErrOutput(), err)
			if interactive {
				fmt.Fprintln(writer)
			}
			return false
		}
	}
}

// Execute runs a single command line. Blank lines and lines beginning
// with # do nothing.
func Execute(conf *config.Config, line string) (err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	name, rest := word(line)
	log := conf.Logger().WithFields(logrus.Fields{
		"command": name,
		"args":    rest,
	})
	log.Debug("execute")
	defer func() {
		if conf.Debug("panic") {
			return
		}
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(Error); ok {
			err = e
			return
		}
		panic(r)
	}()
	s := &session{conf: conf, log: log}
	if strings.HasPrefix(name, ")") {
		return s.special(strings.TrimPrefix(name, ")"), rest)
	}
	cmd, ok := commands[name]
	if !ok {
		errorf("unknown command %q; try )help", name)
	}
	if err := cmd(s, rest); err != nil {
		log.WithError(err).Debug("command failed")
		return err
	}
	return nil
}

// session is the state of one command's execution.
type session struct {
	conf *config.Config
	log  *logrus.Entry
}

func (s *session) Printf(format string, args ...interface{}) {
	fmt.Fprintf(s.conf.Output(), format, args...)
}

func (s *session) Println(args ...interface{}) {
	fmt.Fprintln(s.conf.Output(), args...)
}

// num formats a number with the configured format.
func (s *session) num(v float64) string {
	return fmt.Sprintf(s.conf.Format(), v)
}

// word splits off the first space-separated word of text.
func word(text string) (first, rest string) {
	text = strings.TrimSpace(text)
	i := strings.IndexAny(text, " \t")
	if i < 0 {
		return text, ""
	}
	return text[:i], strings.TrimSpace(text[i:])
}

// words splits off the first n words of text, which must exist, and
// returns them and the remaining text. usage describes the command.
func words(text string, n int, usage string) ([]string, string) {
	ws := make([]string, n)
	for i := range ws {
		ws[i], text = word(text)
		if ws[i] == "" {
			errorf("usage: %s", usage)
		}
	}
	return ws, text
}

// IsError reports whether err is a command syntax error.
func IsError(err error) bool {
	var e Error
	return errors.As(err, &e)
}
