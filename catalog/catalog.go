// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package catalog implements the JSON-FG conformance rules.
//
// Each rule expresses one normative requirement of JSON-FG. Rules are pure
// functions of the document: they do not retain or modify their input, and
// they skip members whose values do not have the expected type rather than
// report them. A rule that does not apply to a document reports nothing.
package catalog

import (
	"slices"

	"github.com/creachadair/jsonfg/conformance"
	"github.com/creachadair/jsonfg/rule"
)

// Rules returns the complete catalog of rules using the given conformance
// classes, in a stable order. If cls == nil, the built-in classes are used.
func Rules(cls *conformance.Classes) []rule.Rule {
	if cls == nil {
		cls = conformance.Default()
	}
	return []rule.Rule{
		metadata(cls),
		intervalOrdering(),
		instantAndInterval(),
		coordinateDimension(),
		geometryRange(),
		placeCRS(cls),
		embeddedCRS(),
		placeGeometryDistinct(),
		threeD(cls),
		typesSchemasMetadata(cls),
		typesSchemasPlacement(cls),
		geometryDimension(),
	}
}

// All returns the complete catalog of rules using the built-in conformance
// classes.
func All() []rule.Rule { return Rules(nil) }

// Lookup returns the rule with the given name from the built-in catalog.
func Lookup(name string) (rule.Rule, bool) {
	rs := All()
	i := slices.IndexFunc(rs, func(r rule.Rule) bool { return r.Name == name })
	if i < 0 {
		return rule.Rule{}, false
	}
	return rs[i], true
}

// Names returns the names of the rules in the catalog, in catalog order.
func Names() []string {
	var names []string
	for _, r := range All() {
		names = append(names, r.Name)
	}
	return names
}
