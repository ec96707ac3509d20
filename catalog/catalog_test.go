// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package catalog_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jsonfg/catalog"
	"github.com/creachadair/jsonfg/feature"
	"github.com/creachadair/jsonfg/pointer"
	"github.com/creachadair/jsonfg/rule"
	"github.com/google/go-cmp/cmp"
)

const (
	core   = "http://www.opengis.net/spec/json-fg-1/0.2/conf/core"
	threeD = "http://www.opengis.net/spec/json-fg-1/0.2/conf/3d"
	tsURI  = "http://www.opengis.net/spec/json-fg-1/0.2/conf/types-schemas"
)

// expand replaces $CORE, $3D, and $TS in src with class identifiers.
func expand(src string) string {
	return strings.NewReplacer(`$CORE`, core, `$3D`, threeD, `$TS`, tsURI).Replace(src)
}

// check applies the named rule to src and returns the pointers of the
// violations it reports.
func check(t *testing.T, name, src string) []pointer.Pointer {
	t.Helper()
	r, ok := catalog.Lookup(name)
	if !ok {
		t.Fatalf("Lookup %q: rule not found", name)
	}
	doc, err := feature.DecodeDocument([]byte(expand(src)), nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	vs, err := rule.Apply(r, doc)
	if err != nil {
		t.Fatalf("Apply %q: %v", name, err)
	}
	var out []pointer.Pointer
	for _, v := range vs {
		if v.Rule != name {
			t.Errorf("Violation has rule %q, want %q", v.Rule, name)
		}
		if v.Message == "" {
			t.Errorf("Violation at %q has no message", v.Pointer)
		}
		out = append(out, v.Pointer)
	}
	return out
}

type ruleTest struct {
	desc  string
	input string
	want  []pointer.Pointer
}

func runTests(t *testing.T, name string, tests []ruleTest) {
	t.Helper()
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			got := check(t, name, tc.input)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Violations: (-want, +got)\n%s", diff)
			}
		})
	}
}

func ptrs(ps ...pointer.Pointer) []pointer.Pointer { return ps }

func TestCatalog(t *testing.T) {
	names := catalog.Names()
	want := []string{
		"metadata",
		"interval-ordering",
		"instant-and-interval",
		"coordinate-dimension",
		"geometry-wgs84-range",
		"place-crs-legality",
		"embedded-crs-prohibition",
		"place-geometry-distinctness",
		"3d-conformance",
		"types-schemas-metadata",
		"types-schemas-placement",
		"geometry-dimension-agreement",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Names: (-want, +got)\n%s", diff)
	}
	for _, r := range catalog.All() {
		if r.Description == "" {
			t.Errorf("Rule %q has no description", r.Name)
		}
		if r.Feature == nil && r.Collection == nil {
			t.Errorf("Rule %q has no capabilities", r.Name)
		}
	}
	if _, ok := catalog.Lookup("no-such-rule"); ok {
		t.Error("Lookup: found a nonexistent rule")
	}
}

func TestMetadata(t *testing.T) {
	runTests(t, "metadata", []ruleTest{
		{"FeatureOK", `{"type": "Feature", "conformsTo": ["$CORE"]}`, nil},
		{"FeatureCURIE", `{"type": "Feature", "conformsTo": ["[ogc-json-fg-1-0.2:core]"]}`, nil},
		{"FeatureMissing", `{"type": "Feature"}`, ptrs(pointer.Root)},
		{"FeatureNoCore", `{"type": "Feature", "conformsTo": ["$3D"]}`, ptrs("/conformsTo")},
		{"FeatureWrongType", `{"type": "Feature", "conformsTo": "$CORE"}`, ptrs("/conformsTo")},
		{"CollectionOK", `{"type": "FeatureCollection", "conformsTo": ["$CORE"], "features": []}`, nil},
		{"CollectionMissing", `{"type": "FeatureCollection", "features": []}`, ptrs(pointer.Root)},
		{"MemberDeclares", `{
  "type": "FeatureCollection",
  "conformsTo": ["$CORE"],
  "features": [{"type": "Feature"}, {"type": "Feature", "conformsTo": ["$CORE"]}]
}`, ptrs("/features/1/conformsTo")},
		{"Both", `{
  "type": "FeatureCollection",
  "features": [{"type": "Feature", "conformsTo": []}]
}`, ptrs(pointer.Root, "/features/0/conformsTo")},
	})
}

func TestIntervalOrdering(t *testing.T) {
	runTests(t, "interval-ordering", []ruleTest{
		{"StartAfterEnd", `{"type": "Feature", "conformsTo": ["$CORE"],
  "time": {"interval": ["2024-02-28", "2024-02-27"]}}`, ptrs("/time")},
		{"Ordered", `{"type": "Feature", "time": {"interval": ["2024-02-27", "2024-02-28"]}}`, nil},
		{"Equal", `{"type": "Feature", "time": {"interval": ["2024-02-27", "2024-02-27"]}}`, nil},
		{"Timestamps", `{"type": "Feature",
  "time": {"interval": ["2024-02-27T12:00:00Z", "2024-02-27T11:59:59.5Z"]}}`, ptrs("/time")},
		{"TimestampsOK", `{"type": "Feature",
  "time": {"interval": ["2024-02-27T11:00:00Z", "2024-02-27T11:00:00.25Z"]}}`, nil},
		{"DateThenTimestamp", `{"type": "Feature",
  "time": {"interval": ["2024-02-27", "2024-03-01T00:00:00Z"]}}`, ptrs("/time")},
		{"TimestampThenDate", `{"type": "Feature",
  "time": {"interval": ["2024-02-27T00:00:00Z", "2024-03-01"]}}`, ptrs("/time")},
		{"OpenStart", `{"type": "Feature", "time": {"interval": ["..", "2024-02-27"]}}`, nil},
		{"OpenEnd", `{"type": "Feature", "time": {"interval": ["2024-02-27T00:00:00Z", ".."]}}`, nil},
		{"BadBound", `{"type": "Feature", "time": {"interval": ["yesterday", "2024-02-27"]}}`, nil},
		{"WrongLength", `{"type": "Feature", "time": {"interval": ["2024-02-28"]}}`, nil},
		{"NotArray", `{"type": "Feature", "time": {"interval": "2024-02-28/2024-02-27"}}`, nil},
		{"NoTime", `{"type": "Feature", "time": null}`, nil},
		{"Member", `{"type": "FeatureCollection", "features": [
  {"type": "Feature"},
  {"type": "Feature", "time": {"interval": ["2024-02-28", "2024-02-27"]}}
]}`, ptrs("/features/1/time")},
	})
}

func TestInstantAndInterval(t *testing.T) {
	feat := func(tm string) string { return `{"type": "Feature", "time": ` + tm + `}` }
	runTests(t, "instant-and-interval", []ruleTest{
		{"DateAndTimestamp", feat(`{"date": "2024-02-27", "timestamp": "2024-02-27T23:59:59Z"}`), nil},
		{"DateAndTimestampMismatch", feat(`{"date": "2024-02-27", "timestamp": "2024-02-28T00:00:00Z"}`), ptrs("/time")},
		{"TimestampInDateInterval", feat(`{"timestamp": "2024-02-27T18:00:00Z", "interval": ["2024-02-27", "2024-02-27"]}`), nil},
		{"TimestampAfterDateInterval", feat(`{"timestamp": "2024-02-28T00:00:01Z", "interval": ["2024-02-26", "2024-02-27"]}`), ptrs("/time")},
		{"TimestampInStampInterval", feat(`{"timestamp": "2024-02-27T12:00:00Z", "interval": ["2024-02-27T12:00:00Z", "2024-02-27T12:00:00Z"]}`), nil},
		{"TimestampBeforeStampInterval", feat(`{"timestamp": "2024-02-27T11:00:00Z", "interval": ["2024-02-27T12:00:00Z", ".."]}`), ptrs("/time")},
		{"TimestampOpenInterval", feat(`{"timestamp": "1970-01-01T00:00:00Z", "interval": ["..", ".."]}`), nil},
		{"DateInDateInterval", feat(`{"date": "2024-02-27", "interval": ["2024-02-01", "2024-02-29"]}`), nil},
		{"DateBeforeDateInterval", feat(`{"date": "2024-01-31", "interval": ["2024-02-01", ".."]}`), ptrs("/time")},
		{"DateOverlapsStampStart", feat(`{"date": "2024-02-27", "interval": ["2024-02-27T23:00:00Z", ".."]}`), nil},
		{"DateBeforeStampStart", feat(`{"date": "2024-02-26", "interval": ["2024-02-27T00:00:00Z", ".."]}`), ptrs("/time")},
		{"DateOverlapsStampEnd", feat(`{"date": "2024-02-27", "interval": ["..", "2024-02-27T00:00:00Z"]}`), nil},
		{"DateAfterStampEnd", feat(`{"date": "2024-02-28", "interval": ["..", "2024-02-27T23:59:59Z"]}`), ptrs("/time")},
		{"OnlyDate", feat(`{"date": "2024-02-27"}`), nil},
		{"InvalidDate", feat(`{"date": "2024-02-30", "timestamp": "2024-02-27T00:00:00Z"}`), nil},
		{"LocalTimestamp", feat(`{"date": "2024-02-27", "timestamp": "2024-02-28T00:30:00+01:00"}`), nil},
		{"WrongTypes", feat(`{"date": 20240227, "timestamp": true, "interval": {}}`), nil},
	})
}

func TestCoordinateDimension(t *testing.T) {
	runTests(t, "coordinate-dimension", []ruleTest{
		{"Point", `{"type": "Feature", "geometry": {"type": "Point", "coordinates": [1, 2]}}`, nil},
		{"UniformPolygon", `{"type": "Feature", "geometry": {"type": "Polygon",
  "coordinates": [[[0, 0, 1], [1, 0, 1], [1, 1, 1], [0, 0, 1]]]}}`, nil},
		{"MixedPolygon", `{"type": "Feature", "geometry": {"type": "Polygon",
  "coordinates": [[[0, 0], [1, 0, 1], [1, 1], [0, 0]]]}}`, ptrs("/geometry")},
		{"MixedPlace", `{"type": "Feature", "place": {"type": "LineString",
  "coordinates": [[0, 0], [1, 0, 1]]}}`, ptrs("/place")},
		{"GeometryFirst", `{"type": "Feature",
  "geometry": {"type": "LineString", "coordinates": [[0, 0], [1]]},
  "place": {"type": "LineString", "coordinates": [[0, 0], [1]]}}`, ptrs("/geometry")},
		{"Prism", `{"type": "Feature", "place": {"type": "Prism",
  "base": {"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [0, 0, 5]]]}, "upper": 10}}`, ptrs("/place")},
		{"MultiPrism", `{"type": "Feature", "place": {"type": "MultiPrism", "prisms": [
  {"type": "Prism", "base": {"type": "Point", "coordinates": [0, 0]}},
  {"type": "Prism", "base": {"type": "Point", "coordinates": [0, 0, 0]}}
]}}`, ptrs("/place")},
		{"MultiPrismUniform", `{"type": "Feature", "place": {"type": "MultiPrism", "prisms": [
  {"type": "Prism", "base": {"type": "Point", "coordinates": [0, 0]}},
  {"type": "Prism", "base": {"type": "LineString", "coordinates": [[0, 0], [1, 1]]}}
]}}`, nil},
		{"Empty", `{"type": "Feature", "geometry": {"type": "Polygon", "coordinates": [[], [[1, 2]]]}}`, nil},
		{"NoCoordinates", `{"type": "Feature", "geometry": {"type": "Point"}}`, nil},
	})
}

// nest wraps the coordinates of pos in depth levels of arrays, using n copies
// at each level.
func nest(pos string, depth, n int) string {
	s := pos
	for range depth {
		s = "[" + strings.TrimSuffix(strings.Repeat(s+", ", n), ", ") + "]"
	}
	return s
}

func TestCoordinateDimension_uniform(t *testing.T) {
	positions := []string{"[1]", "[1, 2]", "[1, 2, 3]", "[1, 2, 3, 4]"}
	for _, pos := range positions {
		for depth := range 4 {
			for _, odd := range positions {
				coords := nest(pos, depth, 3)
				src := `{"type": "Feature", "geometry": {"type": "X", "coordinates": ` + coords + `}}`
				if got := check(t, "coordinate-dimension", src); len(got) != 0 {
					t.Errorf("Uniform %s: got %v, want none", coords, got)
				}

				if odd == pos || depth == 0 {
					continue
				}
				// Replace the last position with one of a different length.
				i := strings.LastIndex(coords, pos)
				bad := coords[:i] + odd + coords[i+len(pos):]
				src = `{"type": "Feature", "geometry": {"type": "X", "coordinates": ` + bad + `}}`
				if got := check(t, "coordinate-dimension", src); len(got) != 1 {
					t.Errorf("Mixed %s: got %v, want one violation", bad, got)
				}
			}
		}
	}
}

func TestGeometryRange(t *testing.T) {
	runTests(t, "geometry-wgs84-range", []ruleTest{
		{"InRange", `{"type": "Feature", "geometry": {"type": "LineString",
  "coordinates": [[-180, -90], [180, 90], [0, 0, 10000]]}}`, nil},
		{"Longitude", `{"type": "Feature", "geometry": {"type": "Point", "coordinates": [180.5, 0]}}`, ptrs("/geometry")},
		{"Latitude", `{"type": "Feature", "geometry": {"type": "MultiPoint", "coordinates": [[0, 0], [0, -91]]}}`, ptrs("/geometry")},
		{"Collection", `{"type": "Feature", "geometry": {"type": "GeometryCollection", "geometries": [
  {"type": "Point", "coordinates": [0, 0]},
  {"type": "Point", "coordinates": [500000, 6000000]}
]}}`, ptrs("/geometry")},
		{"PlaceIgnored", `{"type": "Feature", "place": {"type": "Point", "coordinates": [500000, 6000000]}}`, nil},
		{"NonNumeric", `{"type": "Feature", "geometry": {"type": "Point", "coordinates": ["east", "north"]}}`, nil},
		{"Members", `{"type": "FeatureCollection", "features": [
  {"type": "Feature", "geometry": {"type": "Point", "coordinates": [200, 0]}},
  {"type": "Feature", "geometry": null},
  {"type": "Feature", "geometry": {"type": "Point", "coordinates": [0, 100]}}
]}`, ptrs("/features/0/geometry", "/features/2/geometry")},
	})
}

func TestPlaceCRS(t *testing.T) {
	const point = `{"type": "Point", "coordinates": [10, 10]}`
	withCRS := `{"type": "Point", "coordinates": [10, 10], "coordRefSys": "[EPSG:25832]"}`
	runTests(t, "place-crs-legality", []ruleTest{
		{"Implicit", `{"type": "Feature", "conformsTo": ["$CORE"], "place": ` + point + `}`, ptrs("/place")},
		{"OnPlace", `{"type": "Feature", "conformsTo": ["$CORE"], "place": ` + withCRS + `}`, nil},
		{"OnFeature", `{"type": "Feature", "coordRefSys": "http://www.opengis.net/def/crs/EPSG/0/3857",
  "place": ` + point + `}`, nil},
		{"OnCollection", `{"type": "FeatureCollection", "conformsTo": ["$CORE"], "coordRefSys": "[EPSG:25832]",
  "features": [{"type": "Feature", "place": ` + point + `}]}`, nil},
		{"CollectionImplicit", `{"type": "FeatureCollection", "features": [
  {"type": "Feature", "place": null},
  {"type": "Feature", "place": ` + point + `}
]}`, ptrs("/features/1/place")},
		{"ExplicitCRS84", `{"type": "Feature", "place": {"type": "Point", "coordinates": [1, 1],
  "coordRefSys": "[OGC:CRS84]"}}`, ptrs("/place")},
		{"CRS84h", `{"type": "Feature", "coordRefSys": "http://www.opengis.net/def/crs/OGC/0/CRS84h",
  "place": ` + point + `}`, ptrs("/place")},
		{"ReferenceCRS84", `{"type": "Feature", "coordRefSys": {"type": "Reference", "href": "[OGC:CRS84]"},
  "place": ` + point + `}`, ptrs("/place")},
		{"ReferenceWithEpoch", `{"type": "Feature",
  "coordRefSys": {"type": "Reference", "href": "[OGC:CRS84]", "epoch": 2016.47},
  "place": ` + point + `}`, nil},
		{"PlaceOverridesFeature", `{"type": "Feature", "coordRefSys": "[EPSG:25832]",
  "place": {"type": "Point", "coordinates": [1, 1], "coordRefSys": "[OGC:CRS84]"}}`, ptrs("/place")},
		{"NotGeoJSON", `{"type": "Feature", "place": {"type": "Polyhedron", "coordinates": []}}`, nil},
	})
}

func TestEmbeddedCRS(t *testing.T) {
	runTests(t, "embedded-crs-prohibition", []ruleTest{
		{"TopLevelAllowed", `{"type": "Feature", "place": {"type": "Point", "coordinates": [0, 0],
  "coordRefSys": "[EPSG:25832]"}}`, nil},
		{"GeometryCollection", `{"type": "Feature", "coordRefSys": "[EPSG:25832]", "place": {
  "type": "GeometryCollection",
  "geometries": [
    {"type": "Point", "coordinates": [0, 0], "coordRefSys": "[EPSG:25832]"},
    {"type": "Point", "coordinates": [1, 1], "coordRefSys": "[EPSG:25832]"}
  ]}}`, ptrs("/place")},
		{"Prism", `{"type": "Feature", "place": {"type": "Prism", "upper": 10,
  "base": {"type": "Polygon", "coordinates": [], "coordRefSys": "[EPSG:25832]"}}}`, ptrs("/place")},
		{"MultiPrism", `{"type": "Feature", "place": {"type": "MultiPrism", "prisms": [
  {"type": "Prism", "base": {"type": "Point", "coordinates": [0, 0]}},
  {"type": "Prism", "base": {"type": "Point", "coordinates": [0, 0], "coordRefSys": "[EPSG:25832]"}}
]}}`, ptrs("/place")},
		{"MultiPrismMember", `{"type": "Feature", "place": {"type": "MultiPrism", "prisms": [
  {"type": "Prism", "coordRefSys": "[EPSG:25832]", "base": {"type": "Point", "coordinates": [0, 0]}}
]}}`, ptrs("/place")},
		{"Geometry", `{"type": "Feature", "geometry": {"type": "GeometryCollection",
  "geometries": [{"type": "Point", "coordinates": [0, 0], "coordRefSys": "[OGC:CRS84]"}]}}`, ptrs("/geometry")},
		{"Clean", `{"type": "Feature", "place": {"type": "GeometryCollection",
  "geometries": [{"type": "Point", "coordinates": [0, 0]}]}}`, nil},
		{"BothPlaceFirst", `{"type": "Feature",
  "place": {"type": "GeometryCollection", "geometries": [{"type": "Point", "coordinates": [0, 0], "coordRefSys": "[EPSG:25832]"}]},
  "geometry": {"type": "GeometryCollection", "geometries": [{"type": "Point", "coordinates": [0, 0], "coordRefSys": "[OGC:CRS84]"}]}}`, ptrs("/place")},
	})
}

func TestPlaceGeometryDistinct(t *testing.T) {
	runTests(t, "place-geometry-distinctness", []ruleTest{
		{"Same", `{"type": "Feature",
  "place": {"type": "Point", "coordinates": [1, 2]},
  "geometry": {"coordinates": [1.0, 2e0], "type": "Point"}}`, ptrs(pointer.Root)},
		{"Different", `{"type": "Feature",
  "place": {"type": "Point", "coordinates": [1, 2], "coordRefSys": "[EPSG:4326]"},
  "geometry": {"type": "Point", "coordinates": [1, 2]}}`, nil},
		{"NullPlace", `{"type": "Feature", "place": null, "geometry": {"type": "Point", "coordinates": [1, 2]}}`, nil},
		{"Member", `{"type": "FeatureCollection", "features": [
  {"type": "Feature", "place": {"type": "Point", "coordinates": [0, 0]}, "geometry": {"type": "Point", "coordinates": [0, 0]}}
]}`, ptrs("/features/0")},
	})
}

func TestThreeD(t *testing.T) {
	runTests(t, "3d-conformance", []ruleTest{
		{"Missing", `{"type": "Feature", "place": {"type": "Polyhedron"}, "conformsTo": ["$CORE"]}`, ptrs("/conformsTo")},
		{"URI", `{"type": "Feature", "place": {"type": "Polyhedron"}, "conformsTo": ["$CORE", "$3D"]}`, nil},
		{"CURIE", `{"type": "Feature", "place": {"type": "Polyhedron"},
  "conformsTo": ["$CORE", "[ogc-json-fg-1-0.2:3d]"]}`, nil},
		{"Flat", `{"type": "Feature", "place": {"type": "Polygon"}, "conformsTo": ["$CORE"]}`, nil},
		{"MemberUsesCollection", `{"type": "FeatureCollection", "conformsTo": ["$CORE", "$3D"], "features": [
  {"type": "Feature", "place": {"type": "Prism"}}
]}`, nil},
		{"MemberMissing", `{"type": "FeatureCollection", "conformsTo": ["$CORE"], "features": [
  {"type": "Feature", "place": {"type": "MultiPrism"}}
]}`, ptrs("/features/0/conformsTo")},
	})
}

func TestTypesSchemasMetadata(t *testing.T) {
	runTests(t, "types-schemas-metadata", []ruleTest{
		{"Feature", `{"type": "Feature", "featureType": "Building", "conformsTo": ["$CORE"]}`, ptrs("/conformsTo")},
		{"FeatureOK", `{"type": "Feature", "featureSchema": "https://example.com/s", "conformsTo": ["$CORE", "$TS"]}`, nil},
		{"Unused", `{"type": "Feature", "conformsTo": ["$CORE"]}`, nil},
		{"Collection", `{"type": "FeatureCollection", "featureType": "Building", "features": []}`, ptrs("/conformsTo")},
		{"MembersOnly", `{"type": "FeatureCollection", "conformsTo": ["$CORE"], "features": [
  {"type": "Feature"},
  {"type": "Feature", "featureType": "Building"},
  {"type": "Feature", "featureType": "Building"}
]}`, ptrs("/conformsTo")},
		{"MembersOK", `{"type": "FeatureCollection", "conformsTo": ["$TS"], "features": [
  {"type": "Feature", "featureType": "Building"}
]}`, nil},
	})
}

func TestTypesSchemasPlacement(t *testing.T) {
	runTests(t, "types-schemas-placement", []ruleTest{
		{"OnCollection", `{"type": "FeatureCollection", "conformsTo": ["$TS"], "featureType": "B", "features": [
  {"type": "Feature"}, {"type": "Feature"}
]}`, nil},
		{"OnEveryMember", `{"type": "FeatureCollection", "conformsTo": ["$TS"], "features": [
  {"type": "Feature", "featureType": "B"}, {"type": "Feature", "featureType": "C"}
]}`, nil},
		{"Both", `{"type": "FeatureCollection", "conformsTo": ["$TS"], "featureType": "B", "features": [
  {"type": "Feature", "featureType": "B"}
]}`, ptrs("/conformsTo")},
		{"Subset", `{"type": "FeatureCollection", "conformsTo": ["$TS"], "features": [
  {"type": "Feature", "featureType": "B"}, {"type": "Feature"}
]}`, ptrs("/conformsTo")},
		{"Neither", `{"type": "FeatureCollection", "conformsTo": ["$TS"], "features": [{"type": "Feature"}]}`, ptrs("/conformsTo")},
		{"NotDeclared", `{"type": "FeatureCollection", "conformsTo": ["$CORE"], "features": [
  {"type": "Feature", "featureType": "B"}, {"type": "Feature"}
]}`, nil},
		{"Feature", `{"type": "Feature", "conformsTo": ["$TS"]}`, nil},
	})
}

func TestGeometryDimension(t *testing.T) {
	coll := func(dim, members string) string {
		return `{"type": "FeatureCollection", "conformsTo": ["$CORE"], "geometryDimension": ` + dim +
			`, "features": [` + members + `]}`
	}
	runTests(t, "geometry-dimension-agreement", []ruleTest{
		{"PolygonNotPoint", coll("0", `{"type": "Feature", "place": {"type": "Polygon", "coordinates": []}}`),
			ptrs("/geometryDimension")},
		{"Points", coll("0", `{"type": "Feature", "geometry": {"type": "Point"}},
  {"type": "Feature", "place": {"type": "MultiPoint"}}`), nil},
		{"PlaceIsPrimary", coll("1", `{"type": "Feature",
  "place": {"type": "CircularString"}, "geometry": {"type": "Point"}}`), nil},
		{"NullPlace", coll("1", `{"type": "Feature", "place": null, "geometry": {"type": "Point"}}`),
			ptrs("/geometryDimension")},
		{"OnePerCollection", coll("2", `{"type": "Feature", "geometry": {"type": "Point"}},
  {"type": "Feature", "geometry": {"type": "LineString"}}`), ptrs("/geometryDimension")},
		{"Solids", coll("3", `{"type": "Feature", "place": {"type": "Prism"}}`), nil},
		{"NoGeometry", coll("2", `{"type": "Feature", "place": null, "geometry": null}`), nil},
		{"OutOfRange", coll("4", `{"type": "Feature", "geometry": {"type": "Point"}}`), nil},
		{"NotInteger", coll(`"0"`, `{"type": "Feature", "geometry": {"type": "Polygon"}}`), nil},
		{"Absent", `{"type": "FeatureCollection", "features": [{"type": "Feature", "geometry": {"type": "Point"}}]}`, nil},
	})
}

func TestAllRules_quietDocument(t *testing.T) {
	const src = `{
  "type": "FeatureCollection",
  "conformsTo": ["$CORE", "$3D", "$TS"],
  "featureType": "Building",
  "geometryDimension": 3,
  "coordRefSys": "[EPSG:25832]",
  "features": [{
    "type": "Feature",
    "id": 1,
    "time": {"date": "2024-02-27", "interval": ["2024-02-01", ".."]},
    "place": {"type": "Prism", "upper": 10,
      "base": {"type": "Polygon", "coordinates": [[[0, 0], [10, 0], [10, 10], [0, 0]]]}},
    "geometry": {"type": "Polygon", "coordinates": [[[7, 50], [7.1, 50], [7.1, 50.1], [7, 50]]]},
    "properties": {}
  }]
}`
	doc, err := feature.DecodeDocument([]byte(expand(src)), nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	vs, err := rule.ApplyAll(catalog.All(), doc)
	if err != nil {
		t.Fatalf("ApplyAll: %v", err)
	}
	if len(vs) != 0 {
		t.Errorf("ApplyAll: got %v, want no violations", vs)
	}
}
