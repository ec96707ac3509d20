// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package config loads the configuration file for the checker.
//
// A configuration file is YAML, for example:
//
//	name: my-project
//	allowComments: true
//	conformance: classes.yaml
//	rules:
//	  geometry-wgs84-range:
//	    severity: warning
//	  place-geometry-distinctness:
//	    severity: off
//
// Rules not mentioned have severity "error". A relative conformance path is
// resolved relative to the directory containing the configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/creachadair/jsonfg/catalog"
	"github.com/creachadair/jsonfg/conformance"
	"github.com/creachadair/jsonfg/diag"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the conventional name of a configuration file.
const DefaultPath = ".fglint.yaml"

// Config is the contents of a configuration file.
type Config struct {
	Name string `yaml:"name,omitempty"`

	// Accept comments and trailing commas in the input (JWCC).
	AllowComments bool `yaml:"allowComments,omitempty"`

	// If set, the path of a file of conformance classes that replaces the
	// built-in classes.
	Conformance string `yaml:"conformance,omitempty"`

	Rules map[string]Rule `yaml:"rules,omitempty"`

	dir string // the directory containing the file, if any
}

// Rule is the configuration of a single rule.
type Rule struct {
	Severity diag.Severity `yaml:"severity"`
}

// Default returns the configuration used when no file is given.
func Default() *Config { return &Config{Name: "fglint"} }

// Load reads the configuration file at path. If path == "", Load returns the
// default configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Parse parses the contents of a configuration file. It reports an error for
// rules that are not in the catalog.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	var errs []error
	for name := range cfg.Rules {
		if _, ok := catalog.Lookup(name); !ok {
			errs = append(errs, fmt.Errorf("unknown rule %q", name))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Levels returns the severities of the configured rules.
func (c *Config) Levels() diag.Levels {
	lv := make(diag.Levels, len(c.Rules))
	for name, r := range c.Rules {
		lv[name] = r.Severity
	}
	return lv
}

// Classes returns the conformance classes selected by c: those loaded from
// c.Conformance if it is set, otherwise the built-in classes.
func (c *Config) Classes() (*conformance.Classes, error) {
	if c.Conformance == "" {
		return conformance.Default(), nil
	}
	path := c.Conformance
	if !filepath.IsAbs(path) && c.dir != "" {
		path = filepath.Join(c.dir, path)
	}
	return conformance.Load(path)
}

// Write writes c to a new file at path in YAML format.
func (c *Config) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
