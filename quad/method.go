// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"fmt"
	"strings"
)

// Method identifies a quadrature rule. The set is closed.
type Method int

const (
	Trapezoidal Method = iota + 1
	Midpoint
	Simpson
)

var methodNames = map[Method]string{
	Trapezoidal: "trapezoidal",
	Midpoint:    "midpoint",
	Simpson:     "simpson",
}

// aliases maps accepted spellings to methods.
var aliases = map[string]Method{
	"trapezoidal": Trapezoidal,
	"trapezoid":   Trapezoidal,
	"trap":        Trapezoidal,
	"midpoint":    Midpoint,
	"mid":         Midpoint,
	"simpson":     Simpson,
	"simpsons":    Simpson,
	"simpson's":   Simpson,
}

// Methods returns every method in canonical order.
func Methods() []Method {
	return []Method{Trapezoidal, Midpoint, Simpson}
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Valid reports whether m is one of the defined methods.
func (m Method) Valid() bool {
	_, ok := methodNames[m]
	return ok
}

// Order returns the theoretical order of convergence on smooth integrands.
func (m Method) Order() int {
	switch m {
	case Trapezoidal, Midpoint:
		return 2
	case Simpson:
		return 4
	}
	return 0
}

// Effective returns the subdivision count the method actually uses for a
// request of n. Simpson's rule needs an even count, so an odd n becomes n+1.
func (m Method) Effective(n int) int {
	if m == Simpson && n%2 != 0 {
		return n + 1
	}
	return n
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, &UnknownMethodError{Name: m.String()}
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	v, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// UnknownMethodError reports a method name that is not recognized.
type UnknownMethodError struct {
	Name string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown method %q: must be one of trapezoidal, midpoint, simpson", e.Name)
}

// ParseMethod returns the method with the given name. Case is ignored and
// a few common abbreviations are accepted.
func ParseMethod(name string) (Method, error) {
	if m, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m, nil
	}
	return 0, &UnknownMethodError{Name: name}
}

// ParseMethods parses a comma-separated list of method names.
func ParseMethods(list string) ([]Method, error) {
	var ms []Method
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		m, err := ParseMethod(name)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, nil
}
