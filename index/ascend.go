// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package index

import (
	"github.com/creachadair/jsonfg/pointer"
	"github.com/creachadair/jsonfg/syntax"
)

// An ascender computes pointers by recursive ascent, memoizing the results
// for nodes already visited so that indexing a whole tree is linear.
type ascender struct {
	t    *syntax.Tree
	memo map[*syntax.Node]pointer.Pointer
	ord  map[*syntax.Node]int  // ordinals of array elements
	done map[*syntax.Node]bool // arrays whose ordinals are in ord
}

func newAscender(t *syntax.Tree) *ascender {
	return &ascender{
		t:    t,
		memo: make(map[*syntax.Node]pointer.Pointer),
		ord:  make(map[*syntax.Node]int),
		done: make(map[*syntax.Node]bool),
	}
}

// pointerOf walks from n up to the root. At each step, if the parent is a
// property, the name of that property is prepended; if the parent is an
// array and n is a value, the ordinal of n among the values of the array is
// prepended; otherwise the level contributes nothing.
func (a *ascender) pointerOf(n *syntax.Node) pointer.Pointer {
	if p, ok := a.memo[n]; ok {
		return p
	}
	par := n.Parent
	if par == nil {
		return pointer.Root
	}
	p := a.pointerOf(par)
	switch par.Kind {
	case syntax.PropertyNode:
		if name, ok := a.memberName(par); ok {
			p = p.Field(name)
		}
	case syntax.ArrayNode:
		if n.Kind.IsValue() {
			p = p.Index(a.ordinal(par, n))
		}
	}
	a.memo[n] = p
	return p
}

// memberName returns the decoded name of property node prop. If the name
// cannot be decoded, its text is used with the quotes removed.
func (a *ascender) memberName(prop *syntax.Node) (string, bool) {
	nn := prop.Child(syntax.NameNode)
	if nn == nil {
		return "", false
	}
	raw := a.t.Text(nn)
	if name, err := syntax.Unquote(raw); err == nil {
		return name, true
	}
	s := raw.StringCopy()
	if len(s) >= 2 && s[0] == '"' {
		s = s[1:]
	}
	if n := len(s); n > 0 && s[n-1] == '"' {
		s = s[:n-1]
	}
	return s, true
}

// ordinal returns the 0-based position of n among the value children of the
// array node arr.
func (a *ascender) ordinal(arr, n *syntax.Node) int {
	if !a.done[arr] {
		k := 0
		for _, c := range arr.Children {
			if c.Kind.IsValue() {
				a.ord[c] = k
				k++
			}
		}
		a.done[arr] = true
	}
	return a.ord[n]
}
