// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package index

import (
	"slices"

	"github.com/creachadair/jsonfg/pointer"
)

// Pointers returns the pointers recorded in x, in order of their position
// in the source.
func (x *Index) Pointers() []pointer.Pointer {
	out := make([]pointer.Pointer, 0, len(x.ranges))
	for p := range x.ranges {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b pointer.Pointer) int {
		ra, rb := x.ranges[a].Span(), x.ranges[b].Span()
		if ra.Pos != rb.Pos {
			return ra.Pos - rb.Pos
		}
		return rb.End - ra.End
	})
	return out
}
