// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package syntax

import (
	"errors"
	"io"

	"go4.org/mem"
)

// A Kind identifies the syntactic category of a Node.
type Kind byte

// Constants defining the node kinds of a syntax tree.
const (
	InvalidNode  Kind = iota // not produced by Parse; ignored by consumers
	RootNode                 // the whole document
	ObjectNode               // { ... }
	ArrayNode                // [ ... ]
	PropertyNode             // "key": value
	NameNode                 // the "key" of a property
	StringNode
	NumberNode
	TrueNode
	FalseNode
	NullNode
)

var kindStr = [...]string{
	InvalidNode:  "Invalid",
	RootNode:     "Root",
	ObjectNode:   "Object",
	ArrayNode:    "Array",
	PropertyNode: "Property",
	NameNode:     "PropertyName",
	StringNode:   "String",
	NumberNode:   "Number",
	TrueNode:     "True",
	FalseNode:    "False",
	NullNode:     "Null",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[InvalidNode]
	}
	return kindStr[k]
}

// IsValue reports whether k is the kind of a JSON value: an object, array,
// string, number, or constant.
func (k Kind) IsValue() bool {
	switch k {
	case ObjectNode, ArrayNode, StringNode, NumberNode, TrueNode, FalseNode, NullNode:
		return true
	}
	return false
}

// A Node is a node of a concrete syntax tree. Each node covers the half-open
// byte range [From, To) of the source text.
type Node struct {
	Kind     Kind
	From, To int
	Parent   *Node
	Children []*Node

	pos int // offset of this node in Parent.Children
}

// Span returns the span of source text covered by n.
func (n *Node) Span() Span { return Span{Pos: n.From, End: n.To} }

// Next returns the sibling following n in its parent, or nil.
func (n *Node) Next() *Node {
	if n.Parent == nil || n.pos+1 >= len(n.Parent.Children) {
		return nil
	}
	return n.Parent.Children[n.pos+1]
}

// Child returns the first child of n having the given kind, or nil.
func (n *Node) Child(kind Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

func (n *Node) add(c *Node) *Node {
	c.Parent = n
	c.pos = len(n.Children)
	n.Children = append(n.Children, c)
	return c
}

// A Tree is a concrete syntax tree for a JSON text.
type Tree struct {
	Root *Node  // a RootNode covering the whole input
	Src  mem.RO // the source text
}

// Text returns a view of the source text covered by n.
func (t *Tree) Text(n *Node) mem.RO {
	from, to := max(n.From, 0), min(n.To, t.Src.Len())
	if from > to {
		return mem.S("")
	}
	return t.Src.Slice(from, to)
}

// Walk calls f for each node of t in pre-order. If f returns false, the
// children of that node are not visited.
func (t *Tree) Walk(f func(*Node) bool) { walk(t.Root, f) }

func walk(n *Node, f func(*Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range n.Children {
		walk(c, f)
	}
}

// Options control the syntax accepted by Parse. A nil *Options is valid and
// selects strict JSON.
type Options struct {
	// Accept comments and trailing commas (JWCC).
	AllowComments bool
}

func (o *Options) allowComments() bool { return o != nil && o.AllowComments }

// Parse constructs a syntax tree for the JSON value in src.
//
// Parse always returns a tree. If src is malformed, the tree contains every
// node completed before the error, and any nodes still open at the point of
// the error are closed there; the error, of concrete type [*SyntaxError], is
// returned alongside. Empty input yields a Root with no children and no
// error.
func Parse(src []byte, opts *Options) (*Tree, error) {
	ro := mem.B(src)
	root := &Node{Kind: RootNode, To: ro.Len()}
	b := &builder{stk: []*Node{root}}

	st := NewStream(ro)
	st.AllowComments(opts.allowComments())
	st.AllowTrailingCommas(opts.allowComments())

	err := st.Parse(b)
	if err == io.EOF {
		err = nil // empty input
	}
	if err != nil {
		var serr *SyntaxError
		at := ro.Len()
		if errors.As(err, &serr) {
			at = serr.Offset
		}
		b.closeAll(at)
	}
	return &Tree{Root: root, Src: ro}, err
}

// builder implements the Handler interface to construct a syntax tree.
type builder struct {
	stk []*Node // open nodes; stk[0] is the root
}

func (b *builder) top() *Node { return b.stk[len(b.stk)-1] }

func (b *builder) open(kind Kind, span Span) *Node {
	n := b.top().add(&Node{Kind: kind, From: span.Pos, To: span.End})
	b.stk = append(b.stk, n)
	return n
}

func (b *builder) close(end int) {
	b.top().To = end
	b.stk = b.stk[:len(b.stk)-1]
}

// closeAll closes all the nodes remaining open, other than the root, as of
// offset at. A property ends where its last child ends; a container extends
// to the point of the error.
func (b *builder) closeAll(at int) {
	for len(b.stk) > 1 {
		n := b.top()
		end := max(n.From, at)
		if n.Kind == PropertyNode {
			end = n.Children[len(n.Children)-1].To
		}
		b.close(end)
	}
}

func (b *builder) BeginObject(loc Anchor) error {
	b.open(ObjectNode, loc.Span())
	return nil
}

func (b *builder) EndObject(loc Anchor) error {
	b.close(loc.Span().End)
	return nil
}

func (b *builder) BeginArray(loc Anchor) error {
	b.open(ArrayNode, loc.Span())
	return nil
}

func (b *builder) EndArray(loc Anchor) error {
	b.close(loc.Span().End)
	return nil
}

func (b *builder) BeginMember(loc Anchor) error {
	span := loc.Span()
	p := b.open(PropertyNode, span)
	p.add(&Node{Kind: NameNode, From: span.Pos, To: span.End})
	return nil
}

func (b *builder) EndMember(loc Anchor) error {
	p := b.top()
	b.close(p.Children[len(p.Children)-1].To)
	return nil
}

func (b *builder) Value(loc Anchor) error {
	var kind Kind
	switch loc.Token() {
	case String:
		kind = StringNode
	case Integer, Number:
		kind = NumberNode
	case True:
		kind = TrueNode
	case False:
		kind = FalseNode
	case Null:
		kind = NullNode
	default:
		return nil // not a value; ignore it
	}
	span := loc.Span()
	b.top().add(&Node{Kind: kind, From: span.Pos, To: span.End})
	return nil
}

func (b *builder) EndOfInput(Anchor) {}
