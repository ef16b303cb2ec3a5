// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"robpike.io/quad/config"
	"robpike.io/quad/demo"
)

// demoInput is where )demo reads the user's typing.
var demoInput io.Reader = os.Stdin

// lineRunner executes each complete line written to it.
type lineRunner struct {
	conf *config.Config
	buf  []byte
}

func (w *lineRunner) Write(b []byte) (int, error) {
	w.buf = append(w.buf, b...)
	for {
		nl := bytes.IndexByte(w.buf, '\n')
		if nl < 0 {
			return len(b), nil
		}
		line := string(w.buf[:nl])
		w.buf = w.buf[nl+1:]
		if err := Execute(w.conf, line); err != nil {
			fmt.Fprintln(w.conf.ErrOutput(), err)
		}
	}
}

// runDemo steps through the demo with a default configuration that
// writes where conf does.
func (s *session) runDemo() error {
	var dconf config.Config
	dconf.SetOutput(s.conf.Output())
	dconf.SetErrOutput(s.conf.ErrOutput())
	return demo.Run(demoInput, &lineRunner{conf: &dconf}, s.conf.Output())
}
