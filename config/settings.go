// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"robpike.io/quad/quad"
	"robpike.io/quad/shape"
)

// DefaultSettingsPath is the settings file read when no -config is given.
const DefaultSettingsPath = "quad.yaml"

// Settings is the on-disk form of the configuration.
type Settings struct {
	Format      string         `yaml:"format"`
	CurvePoints int            `yaml:"curve_points"`
	Methods     []string       `yaml:"methods"`
	NValues     []int          `yaml:"n_values"`
	Tolerance   quad.Tolerance `yaml:"tolerance"`
	Plot        string         `yaml:"plot,omitempty"`
	JSON        bool           `yaml:"json"`
	Debug       []string       `yaml:"debug,omitempty"`
}

// Default returns the default settings.
func Default() *Settings {
	s := &Settings{
		Format:      "%.10g",
		CurvePoints: shape.DefaultCurvePoints,
		NValues:     append([]int(nil), DefaultNValues...),
		Tolerance:   quad.DefaultTolerance,
	}
	for _, m := range quad.Methods() {
		s.Methods = append(s.Methods, m.String())
	}
	return s
}

// Load loads settings from a file. Keys missing from the file keep their
// default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	return s, nil
}

// LoadOrDefault loads settings from path, or returns the default if the
// file does not exist.
func LoadOrDefault(path string) (*Settings, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	return Load(path)
}

// Save saves settings to a file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Validate checks the settings without applying them.
func (s *Settings) Validate() error {
	var c Config
	return c.Apply(s)
}

// Apply copies the settings into c. Nothing is changed if the settings
// are invalid.
func (c *Config) Apply(s *Settings) error {
	methods, err := quad.ParseMethods(strings.Join(s.Methods, ","))
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	for _, n := range s.NValues {
		if n < 1 {
			return fmt.Errorf("settings: n_values: %w", &quad.CountError{N: n})
		}
	}
	if s.CurvePoints != 0 && s.CurvePoints < 2 {
		return fmt.Errorf("settings: curve_points: %w", &shape.PointsError{Points: s.CurvePoints})
	}
	tol := s.Tolerance
	if tol.AbsTol < 0 || tol.RelTol < 0 || tol.Limit < 0 {
		return fmt.Errorf("settings: tolerance must not be negative")
	}
	if tol.Limit == 0 {
		tol.Limit = quad.DefaultTolerance.Limit
	}
	var debug []string
	for _, name := range s.Debug {
		if !knownDebug(name) {
			return fmt.Errorf("settings: unknown debug flag %q", name)
		}
		debug = append(debug, name)
	}
	c.SetFormat(s.Format)
	c.SetCurvePoints(s.CurvePoints)
	c.SetMethods(methods)
	c.SetNValues(s.NValues)
	c.SetTolerance(tol)
	c.SetPlot(s.Plot)
	c.SetJSON(s.JSON)
	for _, name := range debug {
		c.SetDebug(name, true)
	}
	return nil
}

// Settings returns the current configuration in its on-disk form.
func (c *Config) Settings() *Settings {
	s := &Settings{
		Format:      c.Format(),
		CurvePoints: c.CurvePoints(),
		NValues:     c.NValues(),
		Tolerance:   c.Tolerance(),
		Plot:        c.Plot(),
		JSON:        c.JSON(),
	}
	for _, m := range c.Methods() {
		s.Methods = append(s.Methods, m.String())
	}
	for _, name := range DebugFlags {
		if c.Debug(name) {
			s.Debug = append(s.Debug, name)
		}
	}
	return s
}

func knownDebug(name string) bool {
	for _, f := range DebugFlags {
		if f == name {
			return true
		}
	}
	return false
}
