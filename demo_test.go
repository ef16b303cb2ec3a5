// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"testing"

	"robpike.io/quad/config"
	"robpike.io/quad/demo"
	"robpike.io/quad/run"
)

/*
To update demo/demo.out:

	quad < demo/demo.quad > demo/demo.out
*/
func TestDemo(t *testing.T) {
	var conf config.Config
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	if !run.Quad(&conf, demo.Text(), stdout, stderr) {
		t.Fatalf("demo execution error:\n%s", stderr)
	}
	data, err := os.ReadFile("demo/demo.out")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != stdout.String() {
		err = os.WriteFile("demo.bad", stdout.Bytes(), 0666)
		t.Fatal("test output differs; run\n\tdiff demo/demo.out demo.bad\nfor details")
	}
}
