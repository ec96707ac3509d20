// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package pointer implements JSON Pointers (RFC 6901) as used to address
// locations within a JSON document.
//
// Member names are escaped when a pointer is constructed and unescaped when
// it is split, so a Pointer is always in its encoded form.
package pointer

import (
	"strconv"
	"strings"

	"github.com/creachadair/jsonfg/internal/escape"
)

// A Pointer is an encoded JSON Pointer. The root is the empty string, so
// "/" addresses a member with an empty name.
type Pointer string

// Root is the pointer to the whole document.
const Root Pointer = ""

// New constructs a pointer from the given path elements. Each element must be
// a string (an object member name) or an int (an array index).
func New(path ...any) Pointer {
	var p Pointer = Root
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			p = p.Field(t)
		case int:
			p = p.Index(t)
		default:
			panic("pointer: invalid path element")
		}
	}
	return p
}

// Field returns the pointer to member name of the value at p.
func (p Pointer) Field(name string) Pointer {
	return p.append(escape.Token(name))
}

// Index returns the pointer to element i of the array at p.
func (p Pointer) Index(i int) Pointer { return p.append(strconv.Itoa(i)) }

func (p Pointer) append(tok string) Pointer { return p + Pointer("/"+tok) }

// Join returns the pointer formed by resolving the relative pointer q under
// p. For example, "/features/1" joined with "/conformsTo" is
// "/features/1/conformsTo". Joining with the root pointer returns p.
func (p Pointer) Join(q Pointer) Pointer { return p + q }

// IsRoot reports whether p is the root pointer.
func (p Pointer) IsRoot() bool { return p == Root }

// Parent returns the pointer to the value containing p, and true; or Root and
// false if p is already the root.
func (p Pointer) Parent() (Pointer, bool) {
	if p.IsRoot() {
		return Root, false
	}
	i := strings.LastIndexByte(string(p), '/')
	if i < 0 {
		return Root, true
	}
	return p[:i], true
}

// Split returns the decoded reference tokens of p. The root has none.
func (p Pointer) Split() []string {
	if p.IsRoot() {
		return nil
	}
	toks := strings.Split(string(p[1:]), "/")
	for i, tok := range toks {
		toks[i] = escape.Untoken(tok)
	}
	return toks
}

// Ancestors returns p followed by each of its proper ancestors in order of
// increasing distance, ending with the root.
func (p Pointer) Ancestors() []Pointer {
	out := []Pointer{p}
	for cur, ok := p.Parent(); ok; cur, ok = cur.Parent() {
		out = append(out, cur)
	}
	return out
}

// String renders p for display, showing the root as "/". Use the string
// conversion of p where the encoded form is required.
func (p Pointer) String() string {
	if p.IsRoot() {
		return "/"
	}
	return string(p)
}
