// Package ast defines the content-expression tree produced by the
// parser. It is a closed tagged variant, not an inheritance hierarchy —
// the nfa builder compiles it with a single type switch rather than a
// visitor pattern, per the spec's design notes.
package ast

import "github.com/coregx/contentexpr/nodetype"

// Expr is any node of the expression tree. It is a marker interface
// implemented only by the types in this file; callers compile it with a
// type switch.
type Expr interface {
	isExpr()
}

// Name is an atom resolved from an identifier: the ordered set of
// NodeTypes it denotes. A single resolved type is stored directly; a
// group tag that expands to several types is wrapped by the parser in a
// Choice of single-type Names (see resolveName in the parser package), so
// Name itself always holds exactly one type.
type Name struct {
	Type nodetype.NodeType
}

func (*Name) isExpr() {}

// Sequence is the concatenation of two or more expressions, read
// left to right. Always has at least two children — a single-child
// sequence collapses to its child at parse time.
type Sequence struct {
	Children []Expr
}

func (*Sequence) isExpr() {}

// Choice is an alternation of two or more expressions. Always has at
// least two children, for the same reason as Sequence.
type Choice struct {
	Children []Expr
}

func (*Choice) isExpr() {}

// Star is zero or more repetitions of Child.
type Star struct {
	Child Expr
}

func (*Star) isExpr() {}

// Plus is one or more repetitions of Child.
type Plus struct {
	Child Expr
}

func (*Plus) isExpr() {}

// Optional is zero or one repetition of Child.
type Optional struct {
	Child Expr
}

func (*Optional) isExpr() {}

// Unbounded marks Range.Max as having no upper bound ({min,}).
const Unbounded = -1

// Range is Child repeated between Min and Max times inclusive. Max is
// Unbounded for an open upper bound. Min <= Max always holds when Max is
// bounded; the parser enforces this at parse time.
type Range struct {
	Min, Max int
	Child    Expr
}

func (*Range) isExpr() {}
