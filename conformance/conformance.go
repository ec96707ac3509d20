// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package conformance defines the JSON-FG conformance classes and reference
// systems recognized by the rule catalog.
//
// The default classes are compiled into the program and decoded once, on
// first use. A Classes value is never modified after it is constructed, so it
// may be shared freely among concurrent checks.
package conformance

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/creachadair/jsonfg/feature"
	"github.com/creachadair/mds/mapset"
	"gopkg.in/yaml.v3"
)

//go:embed classes.yaml
var classesYAML []byte

// A Class is a set of equivalent identifiers (URIs and CURIEs) for a single
// conformance class or reference system.
type Class struct{ ids mapset.Set[string] }

// Has reports whether id is one of the identifiers of c.
func (c Class) Has(id string) bool { return c.ids.Has(id) }

// DeclaredBy reports whether any element of conformsTo is a string naming c.
// Elements of other types are ignored.
func (c Class) DeclaredBy(conformsTo []any) bool {
	for _, v := range conformsTo {
		if s, ok := v.(string); ok && c.ids.Has(s) {
			return true
		}
	}
	return false
}

// Classes is the collection of conformance classes used by the catalog.
type Classes struct {
	Core         Class // the JSON-FG core class
	ThreeD       Class // 3D geometries
	TypesSchemas Class // feature types and schemas

	// Reference systems equivalent to CRS84 (including CRS84h).
	CRS84 Class
}

// IsCRS84 reports whether the coordRefSys value v denotes a reference system
// equivalent to CRS84. That is the case if v is one of the CRS84 identifiers,
// or a reference object with one of those identifiers as its href and no
// epoch.
func (c *Classes) IsCRS84(v any) bool {
	switch t := v.(type) {
	case string:
		return c.CRS84.Has(t)
	default:
		obj, ok := feature.AsObject(v)
		if !ok || obj.Type() != "Reference" || obj.Has("epoch") {
			return false
		}
		href, ok := obj.Text("href")
		return ok && c.CRS84.Has(href)
	}
}

// wireClasses is the encoded format of a classes file.
type wireClasses struct {
	Core         []string `yaml:"core"`
	ThreeD       []string `yaml:"3d"`
	TypesSchemas []string `yaml:"types-schemas"`
	CRS84        []string `yaml:"crs84"`
}

// Parse decodes a YAML classes file. Every class must have at least one
// identifier.
func Parse(data []byte) (*Classes, error) {
	var w wireClasses
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode classes: %w", err)
	}
	var errs []error
	class := func(name string, ids []string) Class {
		if len(ids) == 0 {
			errs = append(errs, fmt.Errorf("class %q has no identifiers", name))
		}
		return Class{ids: mapset.New(ids...)}
	}
	c := &Classes{
		Core:         class("core", w.Core),
		ThreeD:       class("3d", w.ThreeD),
		TypesSchemas: class("types-schemas", w.TypesSchemas),
		CRS84:        class("crs84", w.CRS84),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads and parses the classes file at path.
func Load(path string) (*Classes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

var defaultClasses = sync.OnceValue(func() *Classes {
	c, err := Parse(classesYAML)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in classes: %v", err))
	}
	return c
})

// Default returns the built-in conformance classes.
func Default() *Classes { return defaultClasses() }
