// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package feature defines the logical model of a JSON-FG document, and
// classifies decoded JSON values as a Feature, a FeatureCollection, or
// neither.
//
// The model keeps the decoded members of each object, and every accessor
// reports whether the requested member is present with the expected type.
// A member that is absent or has the wrong type is simply not there as far
// as the accessors are concerned; callers never need to guard a type
// assertion.
package feature

// An Object is a decoded JSON object.
type Object map[string]any

// Has reports whether o has a member named key, whatever its value.
func (o Object) Has(key string) bool { _, ok := o[key]; return ok }

// IsNull reports whether o has a member named key whose value is null.
func (o Object) IsNull(key string) bool {
	v, ok := o[key]
	return ok && v == nil
}

// Text returns the value of member key if it is a string.
func (o Object) Text(key string) (string, bool) { return As[string](o[key]) }

// Child returns the value of member key if it is an object.
func (o Object) Child(key string) (Object, bool) { return AsObject(o[key]) }

// Array returns the value of member key if it is an array.
func (o Object) Array(key string) ([]any, bool) { return As[[]any](o[key]) }

// Type returns the value of the "type" member of o, or "".
func (o Object) Type() string { s, _ := o.Text("type"); return s }

// A Feature is a JSON-FG Feature. A feature is either the root of its
// document, or a member of a FeatureCollection.
type Feature struct {
	Object

	Collection *Collection // the owning collection, or nil if root
	Index      int         // offset in Collection.Features, or -1
}

// IsRoot reports whether f is the top-level value of its document.
func (f *Feature) IsRoot() bool { return f.Collection == nil }

// Time returns the "time" member of f, if it is an object.
func (f *Feature) Time() (Object, bool) { return f.Child("time") }

// Place returns the "place" member of f, if it is a (non-null) object.
func (f *Feature) Place() (Object, bool) { return f.Child("place") }

// Geometry returns the "geometry" member of f, if it is a (non-null) object.
func (f *Feature) Geometry() (Object, bool) { return f.Child("geometry") }

// PrimaryGeometry returns the place of f if it is not null, otherwise the
// geometry of f.
func (f *Feature) PrimaryGeometry() (Object, bool) {
	if p, ok := f.Place(); ok {
		return p, true
	}
	return f.Geometry()
}

// ConformsTo returns the conformance declarations of the document containing
// f: those of f itself if it is the root, otherwise those of its collection.
func (f *Feature) ConformsTo() ([]any, bool) {
	if f.Collection != nil {
		return f.Collection.Array("conformsTo")
	}
	return f.Array("conformsTo")
}

// HasTypeInfo reports whether f declares a feature type or schema.
func (f *Feature) HasTypeInfo() bool { return f.Has("featureType") || f.Has("featureSchema") }

// A Collection is a JSON-FG FeatureCollection.
type Collection struct {
	Object

	// The members of "features" that are objects. Elements of other types
	// are omitted, but the Index of each Feature is its original offset.
	Features []*Feature
}

// GeometryDimension returns the "geometryDimension" member of c if it is an
// integer.
func (c *Collection) GeometryDimension() (int, bool) {
	n, ok := As[Number](c.Object["geometryDimension"])
	if !ok {
		return 0, false
	}
	v, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// A Document is a classified JSON-FG document. Exactly one of its fields is
// non-nil.
type Document struct {
	Feature    *Feature
	Collection *Collection
}

// Classify classifies a decoded JSON value by its "type" member. It returns
// nil if v is not an object whose type is "Feature" or "FeatureCollection".
func Classify(v any) *Document {
	obj, ok := AsObject(v)
	if !ok {
		return nil
	}
	switch obj.Type() {
	case "Feature":
		return &Document{Feature: &Feature{Object: obj, Index: -1}}
	case "FeatureCollection":
		c := &Collection{Object: obj}
		elts, _ := obj.Array("features")
		for i, elt := range elts {
			if m, ok := AsObject(elt); ok {
				c.Features = append(c.Features, &Feature{Object: m, Collection: c, Index: i})
			}
		}
		return &Document{Collection: c}
	default:
		return nil
	}
}

// As reports whether v has type T, and if so returns it as a T.
func As[T any](v any) (T, bool) {
	t, ok := v.(T)
	return t, ok
}

// AsObject reports whether v is a decoded JSON object.
func AsObject(v any) (Object, bool) {
	switch t := v.(type) {
	case map[string]any:
		return Object(t), true
	case Object:
		return t, true
	}
	return nil, false
}

// Float returns the value of v as a float64, if v is a number.
func Float(v any) (float64, bool) {
	switch t := v.(type) {
	case Number:
		f, err := t.Float64()
		return f, err == nil
	case float64:
		return t, true
	case int:
		return float64(t), true
	}
	return 0, false
}
