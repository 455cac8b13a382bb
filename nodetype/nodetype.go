// Package nodetype defines the contract the content-expression engine
// consumes from a surrounding schema. It has no dependencies of its own:
// nfa, dfa, parser, and the root contentexpr facade all take the
// node-type contract from here, so none of the inner packages needs to
// import the root facade and the dependency graph stays acyclic.
package nodetype

// NodeType is a single node type declared by a schema. The engine treats
// values as opaque except for the accessors below; it never constructs a
// NodeType itself.
type NodeType interface {
	// Name is unique within the schema.
	Name() string

	// Groups lists the group tags this type belongs to, in the order the
	// schema declared them. Membership is the only thing the engine tests.
	Groups() []string

	// IsInline reports whether this type renders inline (as opposed to
	// block-level).
	IsInline() bool

	// IsLeaf reports whether this type can have no children of its own.
	IsLeaf() bool

	// IsText reports whether this is the built-in text node type.
	IsText() bool

	// IsTextblock reports whether this type's content is inline content.
	IsTextblock() bool

	// HasRequiredAttrs reports whether at least one attribute has no
	// default value, meaning CreateAndFill cannot synthesize an instance.
	HasRequiredAttrs() bool

	// ContentMatch is the DFA root for this type's own content expression.
	// It is set once, after the whole schema has compiled, and is used
	// transitively by FindWrapping.
	ContentMatch() Match

	// CreateAndFill attempts to build a default instance of this type,
	// filling any required content with its own fillBefore. It returns
	// (nil, false) when no such instance can be synthesized.
	CreateAndFill() (Node, bool)
}

// Node is an opaque document node. The engine never inspects a Node's
// content; it only needs to recover the node's type when walking a
// Fragment, and to produce one from CreateAndFill.
type Node interface {
	Type() NodeType
}

// Fragment is an opaque ordered sequence of child nodes. The engine only
// ever asks for its length and for the type of the child at an index.
type Fragment interface {
	ChildCount() int
	Child(i int) Node
}

// Match is the subset of the DFA state API that findWrapping needs when
// it walks a wrapper type's own content expression. It is declared here,
// rather than in the dfa package, because NodeType.ContentMatch returns it
// and dfa itself imports nodetype — the concrete implementation,
// *dfa.Match, satisfies this interface alongside its full public API.
type Match interface {
	ValidEnd() bool
	EdgeCount() int
	Edge(i int) (NodeType, Match)
	MatchType(t NodeType) (Match, bool)
}
