// Package fakenode provides a minimal nodetype.NodeType/Fragment/Node
// implementation shared by this module's test files, so every package
// that exercises the engine (nfa, dfa, parser, contentexpr) builds its
// fixture schemas the same way instead of each inventing its own mock.
package fakenode

import "github.com/coregx/contentexpr/nodetype"

// Type is a fake schema node type for tests.
type Type struct {
	NameV        string
	GroupsV      []string
	InlineV      bool
	LeafV        bool
	TextV        bool
	TextblockV   bool
	RequiredAttr bool
	Match        nodetype.Match
	Creatable    bool
}

// New returns a plain block-level, generatable node type with the given
// name and no groups.
func New(name string) *Type {
	return &Type{NameV: name, Creatable: true}
}

// WithGroups returns a copy of t tagged with the given groups.
func (t *Type) WithGroups(groups ...string) *Type {
	c := *t
	c.GroupsV = groups
	return &c
}

// Inline returns a copy of t marked as inline.
func (t *Type) Inline() *Type {
	c := *t
	c.InlineV = true
	return &c
}

// Leaf returns a copy of t marked as a leaf (no content expression).
func (t *Type) Leaf() *Type {
	c := *t
	c.LeafV = true
	return &c
}

// Text returns a copy of t marked as the built-in text node type.
func (t *Type) Text() *Type {
	c := *t
	c.TextV = true
	c.Creatable = false
	return &c
}

// Textblock returns a copy of t marked as a textblock (inline content).
func (t *Type) Textblock() *Type {
	c := *t
	c.TextblockV = true
	return &c
}

// Required returns a copy of t with a required attribute, making it
// non-generatable.
func (t *Type) Required() *Type {
	c := *t
	c.RequiredAttr = true
	c.Creatable = false
	return &c
}

// WithContentMatch returns a copy of t whose ContentMatch is m.
func (t *Type) WithContentMatch(m nodetype.Match) *Type {
	c := *t
	c.Match = m
	return &c
}

func (t *Type) Name() string            { return t.NameV }
func (t *Type) Groups() []string        { return t.GroupsV }
func (t *Type) IsInline() bool          { return t.InlineV }
func (t *Type) IsLeaf() bool            { return t.LeafV }
func (t *Type) IsText() bool            { return t.TextV }
func (t *Type) IsTextblock() bool       { return t.TextblockV }
func (t *Type) HasRequiredAttrs() bool  { return t.RequiredAttr }
func (t *Type) ContentMatch() nodetype.Match { return t.Match }

// CreateAndFill synthesizes a Node of this type iff Creatable.
func (t *Type) CreateAndFill() (nodetype.Node, bool) {
	if !t.Creatable {
		return nil, false
	}
	return &Node{TypeV: t}, true
}

// Node is a fake document node.
type Node struct {
	TypeV nodetype.NodeType
}

func (n *Node) Type() nodetype.NodeType { return n.TypeV }

// Fragment is a fake, fixed child sequence.
type Fragment struct {
	Children []nodetype.Node
}

// Frag builds a Fragment from a list of types, synthesizing a Node for
// each via CreateAndFill (panics if any type cannot be created — tests
// should only use generatable types here).
func Frag(types ...*Type) *Fragment {
	f := &Fragment{Children: make([]nodetype.Node, len(types))}
	for i, t := range types {
		n, ok := t.CreateAndFill()
		if !ok {
			panic("fakenode: Frag given a non-generatable type " + t.NameV)
		}
		f.Children[i] = n
	}
	return f
}

func (f *Fragment) ChildCount() int           { return len(f.Children) }
func (f *Fragment) Child(i int) nodetype.Node { return f.Children[i] }
