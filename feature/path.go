// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package feature

import "fmt"

// Path traverses a sequential path into the structure of a decoded value v,
// where path elements are either strings (denoting object keys) or integers
// (denoting offsets into arrays). If the path is valid, the value reached is
// returned. Otherwise Path reports an error describing the first step that
// could not be taken.
func Path(v any, path ...any) (any, error) {
	cur := v
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			obj, ok := AsObject(cur)
			if !ok {
				return nil, fmt.Errorf("cannot traverse %T with %q", cur, t)
			}
			next, ok := obj[t]
			if !ok {
				return nil, fmt.Errorf("key %q not found", t)
			}
			cur = next

		case int:
			arr, ok := cur.([]any)
			if !ok {
				return nil, fmt.Errorf("cannot traverse %T with %v", cur, t)
			}
			if t < 0 || t >= len(arr) {
				return nil, fmt.Errorf("array index %d out of bounds (n=%d)", t, len(arr))
			}
			cur = arr[t]

		default:
			return nil, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}

// Lookup is a convenience wrapper for Path that reports whether the value at
// the end of path exists and has type T.
func Lookup[T any](v any, path ...any) (T, bool) {
	var zero T
	got, err := Path(v, path...)
	if err != nil {
		return zero, false
	}
	if m, ok := got.(map[string]any); ok {
		got = Object(m) // so that T may be Object
	}
	t, ok := got.(T)
	return t, ok
}
