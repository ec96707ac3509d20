// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package index builds a mapping from JSON Pointers to the source ranges of
// the values they address, using only the shape of a concrete syntax tree.
//
// The index has no knowledge of any schema. A pointer is reconstructed for a
// node by ascending from the node to the root of the tree, so the same index
// serves any JSON document, including one that is only partly well-formed.
package index

import (
	"strings"

	"github.com/creachadair/jsonfg/pointer"
	"github.com/creachadair/jsonfg/syntax"
)

// A Range records the source location of a value in the index. The key range
// is present only for object members.
type Range struct {
	HasKey             bool
	KeyFrom, KeyTo     int
	ValueFrom, ValueTo int
}

// Span returns the span to highlight for r: from the start of the key (if
// any) to the end of the value.
func (r Range) Span() syntax.Span {
	if r.HasKey {
		return syntax.Span{Pos: r.KeyFrom, End: r.ValueTo}
	}
	return syntax.Span{Pos: r.ValueFrom, End: r.ValueTo}
}

// An Index maps pointers to source ranges.
type Index struct {
	ranges map[pointer.Pointer]Range
	size   int
}

// Build constructs an index from t. For each object member whose value is
// present, the index records the ranges of the key and the value. For each
// element of an array, it records the range of the value. The root value
// itself has no entry.
//
// If a pointer occurs more than once, as for duplicate member names, the
// last occurrence in source order wins, as it does when the document is
// decoded. Entries beneath a superseded member are discarded.
func Build(t *syntax.Tree) *Index {
	x := &Index{ranges: make(map[pointer.Pointer]Range), size: t.Src.Len()}
	a := newAscender(t)
	t.Walk(func(n *syntax.Node) bool {
		switch {
		case n.Kind == syntax.NameNode:
			if v := n.Next(); v != nil {
				x.add(a.pointerOf(n), Range{
					HasKey:    true,
					KeyFrom:   n.From,
					KeyTo:     n.To,
					ValueFrom: v.From,
					ValueTo:   v.To,
				})
			}
		case n.Kind.IsValue() && n.Parent != nil && n.Parent.Kind == syntax.ArrayNode:
			x.add(a.pointerOf(n), Range{ValueFrom: n.From, ValueTo: n.To})
		}
		return true
	})
	return x
}

func (x *Index) add(p pointer.Pointer, r Range) {
	if _, ok := x.ranges[p]; ok {
		pfx := string(p) + "/"
		for q := range x.ranges {
			if strings.HasPrefix(string(q), pfx) {
				delete(x.ranges, q)
			}
		}
	}
	x.ranges[p] = r
}

// Lookup reports the range recorded for p, if any.
func (x *Index) Lookup(p pointer.Pointer) (Range, bool) {
	r, ok := x.ranges[p]
	return r, ok
}

// Nearest returns the range recorded for p or, if there is none, for the
// nearest ancestor of p that has one. If no ancestor of p has an entry,
// Nearest returns the whole-document range and the root pointer, with false.
func (x *Index) Nearest(p pointer.Pointer) (pointer.Pointer, Range, bool) {
	for _, q := range p.Ancestors() {
		if r, ok := x.ranges[q]; ok {
			return q, r, true
		}
	}
	return pointer.Root, x.Document(), false
}

// Document returns the range of the whole source text.
func (x *Index) Document() Range { return Range{ValueFrom: 0, ValueTo: x.size} }

// Len reports the number of entries in x.
func (x *Index) Len() int { return len(x.ranges) }

// PointerOf returns the pointer to n in t, reconstructed from the structure
// of the tree. For a property name or a property value, the pointer addresses
// the member. Nodes that do not correspond to a value, such as a property
// node itself, share the pointer of their nearest addressable ancestor.
func PointerOf(t *syntax.Tree, n *syntax.Node) pointer.Pointer {
	return newAscender(t).pointerOf(n)
}
