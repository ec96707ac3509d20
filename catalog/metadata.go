// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package catalog

import (
	"github.com/creachadair/jsonfg/conformance"
	"github.com/creachadair/jsonfg/feature"
	"github.com/creachadair/jsonfg/pointer"
	"github.com/creachadair/jsonfg/rule"
)

var conformsTo = pointer.New("conformsTo")

// checkRootConformance reports whether obj, the top-level value of a
// document, declares conformance to the core class.
func checkRootConformance(cls *conformance.Classes, obj feature.Object) *rule.Violation {
	if !obj.Has("conformsTo") {
		return rule.At(pointer.Root, "the document must declare conformsTo")
	}
	decl, _ := obj.Array("conformsTo")
	if !cls.Core.DeclaredBy(decl) {
		return rule.At(conformsTo, "conformsTo must include the JSON-FG core conformance class")
	}
	return nil
}

func metadata(cls *conformance.Classes) rule.Rule {
	return rule.Rule{
		Name:        "metadata",
		Description: "The root object declares the core class in conformsTo; member features do not declare conformsTo",
		Feature: func(f *feature.Feature, isRoot bool) *rule.Violation {
			if isRoot {
				return checkRootConformance(cls, f.Object)
			}
			if f.Has("conformsTo") {
				return rule.At(conformsTo, "conformsTo is only allowed on the top-level object")
			}
			return nil
		},
		Collection: func(c *feature.Collection) *rule.Violation {
			return checkRootConformance(cls, c.Object)
		},
	}
}

var solidTypes = newTypeSet("Polyhedron", "MultiPolyhedron", "Prism", "MultiPrism")

func threeD(cls *conformance.Classes) rule.Rule {
	return rule.Rule{
		Name:        "3d-conformance",
		Description: "A feature with a 3D place declares the 3D conformance class",
		Feature: func(f *feature.Feature, _ bool) *rule.Violation {
			place, ok := f.Place()
			if !ok || !solidTypes.Has(place.Type()) {
				return nil
			}
			decl, _ := f.ConformsTo()
			if !cls.ThreeD.DeclaredBy(decl) {
				return rule.At(conformsTo, "a %s place requires the 3D conformance class", place.Type())
			}
			return nil
		},
	}
}

func typesSchemasMetadata(cls *conformance.Classes) rule.Rule {
	const msg = "featureType and featureSchema require the types and schemas conformance class"
	return rule.Rule{
		Name:        "types-schemas-metadata",
		Description: "A document using featureType or featureSchema declares the types and schemas class",
		Feature: func(f *feature.Feature, isRoot bool) *rule.Violation {
			if !isRoot || !f.HasTypeInfo() {
				return nil // members are handled with their collection
			}
			decl, _ := f.ConformsTo()
			if !cls.TypesSchemas.DeclaredBy(decl) {
				return rule.At(conformsTo, msg)
			}
			return nil
		},
		Collection: func(c *feature.Collection) *rule.Violation {
			uses := c.Has("featureType") || c.Has("featureSchema")
			for _, f := range c.Features {
				uses = uses || f.HasTypeInfo()
			}
			if !uses {
				return nil
			}
			decl, _ := c.Array("conformsTo")
			if !cls.TypesSchemas.DeclaredBy(decl) {
				return rule.At(conformsTo, msg)
			}
			return nil
		},
	}
}

func typesSchemasPlacement(cls *conformance.Classes) rule.Rule {
	return rule.Rule{
		Name:        "types-schemas-placement",
		Description: "A collection declares featureType either once for the collection or on every member, not both",
		Collection: func(c *feature.Collection) *rule.Violation {
			decl, _ := c.Array("conformsTo")
			if !cls.TypesSchemas.DeclaredBy(decl) {
				return nil
			}
			var typed int
			for _, f := range c.Features {
				if f.Has("featureType") {
					typed++
				}
			}
			onRoot := c.Has("featureType")
			switch {
			case onRoot && typed > 0:
				return rule.At(conformsTo, "featureType is declared on both the collection and its members")
			case !onRoot && typed == 0:
				return rule.At(conformsTo, "featureType must be declared on the collection or on every member")
			case !onRoot && typed < len(c.Features):
				return rule.At(conformsTo, "featureType is declared on %d of %d members", typed, len(c.Features))
			}
			return nil
		},
	}
}
