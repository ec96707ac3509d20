// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package catalog

import "github.com/creachadair/jsonfg/feature"

// equal reports whether two decoded JSON values are structurally equal.
// Numbers are equal if they have the same value, regardless of spelling, so
// that 1 and 1.0 agree.
func equal(a, b any) bool {
	if an, ok := feature.Float(a); ok {
		bn, ok := feature.Float(b)
		return ok && an == bn
	}
	if ao, ok := feature.AsObject(a); ok {
		bo, ok := feature.AsObject(b)
		if !ok || len(ao) != len(bo) {
			return false
		}
		for k, av := range ao {
			bv, ok := bo[k]
			if !ok || !equal(av, bv) {
				return false
			}
		}
		return true
	}
	switch at := a.(type) {
	case []any:
		bt, ok := b.([]any)
		if !ok || len(at) != len(bt) {
			return false
		}
		for i := range at {
			if !equal(at[i], bt[i]) {
				return false
			}
		}
		return true
	case string, bool, nil:
		return a == b
	}
	return false
}
