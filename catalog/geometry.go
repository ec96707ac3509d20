// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package catalog

import (
	"github.com/creachadair/jsonfg/conformance"
	"github.com/creachadair/jsonfg/feature"
	"github.com/creachadair/jsonfg/pointer"
	"github.com/creachadair/jsonfg/rule"
	"github.com/creachadair/mds/mapset"
)

var (
	placePointer    = pointer.New("place")
	geometryPointer = pointer.New("geometry")
	dimPointer      = pointer.New("geometryDimension")
)

type typeSet = mapset.Set[string]

func newTypeSet(names ...string) typeSet { return mapset.New(names...) }

// GeoJSON geometry types, which are always in CRS84 when used as geometry.
var geoJSONTypes = newTypeSet(
	"Point", "MultiPoint", "LineString", "MultiLineString",
	"Polygon", "MultiPolygon", "GeometryCollection",
)

// Permitted primary geometry types for each value of geometryDimension.
var dimensionTypes = [...]typeSet{
	0: newTypeSet("Point", "MultiPoint"),
	1: newTypeSet("LineString", "CircularString", "CompoundCurve", "MultiLineString", "MultiCurve"),
	2: newTypeSet("Polygon", "CurvePolygon", "MultiPolygon", "MultiSurface"),
	3: solidTypes,
}

// dimensions appends to dims the lengths of the positions in a nested array of
// coordinates. An array is a position if any of its elements is not an array.
// Empty arrays contain no positions.
func dimensions(v any, dims []int) []int {
	arr, ok := v.([]any)
	if !ok || len(arr) == 0 {
		return dims
	} else if isPosition(arr) {
		return append(dims, len(arr))
	}
	for _, elt := range arr {
		dims = dimensions(elt, dims)
	}
	return dims
}

// isPosition reports whether arr is a position rather than an array of
// further coordinate arrays.
func isPosition(arr []any) bool {
	for _, elt := range arr {
		if _, ok := elt.([]any); !ok {
			return true
		}
	}
	return false
}

// placeCoordinates returns the coordinate arrays of a place geometry. For a
// Prism these are the coordinates of its base; for a MultiPrism, those of the
// bases of each of its prisms.
func placeCoordinates(place feature.Object) []any {
	switch place.Type() {
	case "Prism":
		if c, ok := feature.Lookup[[]any](place, "base", "coordinates"); ok {
			return []any{c}
		}
		return nil
	case "MultiPrism":
		prisms, _ := place.Array("prisms")
		var out []any
		for _, p := range prisms {
			if c, ok := feature.Lookup[[]any](p, "base", "coordinates"); ok {
				out = append(out, c)
			}
		}
		return out
	default:
		if c, ok := place.Array("coordinates"); ok {
			return []any{c}
		}
		return nil
	}
}

// uniform reports whether all the elements of dims are equal.
func uniform(dims []int) bool {
	for _, d := range dims {
		if d != dims[0] {
			return false
		}
	}
	return true
}

func coordinateDimension() rule.Rule {
	return rule.Rule{
		Name:        "coordinate-dimension",
		Description: "All positions of a geometry have the same number of coordinates",
		Feature: func(f *feature.Feature, _ bool) *rule.Violation {
			if g, ok := f.Geometry(); ok {
				if !uniform(dimensions(g["coordinates"], nil)) {
					return rule.At(geometryPointer, "positions of the geometry have different dimensions")
				}
			}
			if p, ok := f.Place(); ok {
				var dims []int
				for _, c := range placeCoordinates(p) {
					dims = dimensions(c, dims)
				}
				if !uniform(dims) {
					return rule.At(placePointer, "positions of the place have different dimensions")
				}
			}
			return nil
		},
	}
}

// positions calls visit with each position in the coordinates of g, and of
// the members of g if it is a GeometryCollection. It stops and reports false
// if visit returns false.
func positions(g feature.Object, visit func([]any) bool) bool {
	if g.Type() == "GeometryCollection" {
		geoms, _ := g.Array("geometries")
		for _, elt := range geoms {
			if sub, ok := feature.AsObject(elt); ok && !positions(sub, visit) {
				return false
			}
		}
		return true
	}
	var walk func(v any) bool
	walk = func(v any) bool {
		arr, ok := v.([]any)
		if !ok || len(arr) == 0 {
			return true
		}
		if isPosition(arr) {
			return visit(arr)
		}
		for _, elt := range arr {
			if !walk(elt) {
				return false
			}
		}
		return true
	}
	return walk(g["coordinates"])
}

// inRange reports whether the i-th element of pos, if it is a number, lies in
// the closed interval [-lim, lim].
func inRange(pos []any, i int, lim float64) bool {
	if i >= len(pos) {
		return true
	}
	v, ok := feature.Float(pos[i])
	return !ok || (v >= -lim && v <= lim)
}

func geometryRange() rule.Rule {
	return rule.Rule{
		Name:        "geometry-wgs84-range",
		Description: "Positions of the geometry member are valid WGS 84 longitude and latitude",
		Feature: func(f *feature.Feature, _ bool) *rule.Violation {
			g, ok := f.Geometry()
			if !ok {
				return nil
			}
			valid := positions(g, func(pos []any) bool {
				return inRange(pos, 0, 180) && inRange(pos, 1, 90)
			})
			if !valid {
				return rule.At(geometryPointer, "geometry coordinates are outside the WGS 84 range")
			}
			return nil
		},
	}
}

func placeCRS(cls *conformance.Classes) rule.Rule {
	return rule.Rule{
		Name:        "place-crs-legality",
		Description: "A GeoJSON geometry in place uses a reference system other than CRS84",
		Feature: func(f *feature.Feature, _ bool) *rule.Violation {
			place, ok := f.Place()
			if !ok || !geoJSONTypes.Has(place.Type()) {
				return nil
			}
			if crs, ok := effectiveCRS(f, place); !ok || cls.IsCRS84(crs) {
				return rule.At(placePointer, "a %s in CRS84 must be given as geometry, not place", place.Type())
			}
			return nil
		},
	}
}

// effectiveCRS returns the coordRefSys in effect for place: its own, else that
// of its feature, else that of the feature's collection. It reports false if
// none of these is present, in which case the implicit CRS84 applies.
func effectiveCRS(f *feature.Feature, place feature.Object) (any, bool) {
	for _, obj := range []feature.Object{place, f.Object, collectionOf(f)} {
		if v, ok := obj["coordRefSys"]; ok {
			return v, true
		}
	}
	return nil, false
}

func collectionOf(f *feature.Feature) feature.Object {
	if f.Collection == nil {
		return nil
	}
	return f.Collection.Object
}

// embedsCRS reports whether any geometry embedded in g declares coordRefSys.
// Only the members of a GeometryCollection, the base of a Prism, and the
// prisms of a MultiPrism are embedded; g itself is not.
func embedsCRS(g feature.Object) bool {
	var inner []any
	switch g.Type() {
	case "GeometryCollection":
		inner, _ = g.Array("geometries")
	case "Prism":
		inner = []any{g["base"]}
	case "MultiPrism":
		inner, _ = g.Array("prisms")
	}
	for _, elt := range inner {
		if sub, ok := feature.AsObject(elt); ok && (sub.Has("coordRefSys") || embedsCRS(sub)) {
			return true
		}
	}
	return false
}

func embeddedCRS() rule.Rule {
	return rule.Rule{
		Name:        "embedded-crs-prohibition",
		Description: "Geometries embedded in another geometry do not declare coordRefSys",

		// A feature yields at most one violation. If both place and geometry
		// embed a coordRefSys, only place is reported.
		Feature: func(f *feature.Feature, _ bool) *rule.Violation {
			if p, ok := f.Place(); ok && embedsCRS(p) {
				return rule.At(placePointer, "an embedded geometry of place must not declare coordRefSys")
			}
			if g, ok := f.Geometry(); ok && embedsCRS(g) {
				return rule.At(geometryPointer, "an embedded geometry must not declare coordRefSys")
			}
			return nil
		},
	}
}

func placeGeometryDistinct() rule.Rule {
	return rule.Rule{
		Name:        "place-geometry-distinctness",
		Description: "The place and geometry of a feature are not identical",
		Feature: func(f *feature.Feature, _ bool) *rule.Violation {
			p, pok := f.Place()
			g, gok := f.Geometry()
			if pok && gok && equal(p, g) {
				return rule.At(pointer.Root, "place and geometry must not be the same; use geometry alone")
			}
			return nil
		},
	}
}

func geometryDimension() rule.Rule {
	return rule.Rule{
		Name:        "geometry-dimension-agreement",
		Description: "The primary geometry of every member agrees with the geometryDimension of the collection",
		Collection: func(c *feature.Collection) *rule.Violation {
			dim, ok := c.GeometryDimension()
			if !ok || dim < 0 || dim >= len(dimensionTypes) {
				return nil
			}
			want := dimensionTypes[dim]
			for _, f := range c.Features {
				g, ok := f.PrimaryGeometry()
				if !ok {
					continue
				}
				if !want.Has(g.Type()) {
					return rule.At(dimPointer, "feature %d has a %s, which is not of dimension %d",
						f.Index, g.Type(), dim)
				}
			}
			return nil
		},
	}
}
