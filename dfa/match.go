package dfa

import (
	"fmt"

	"github.com/coregx/contentexpr/config"
	"github.com/coregx/contentexpr/nodetype"
)

type edge struct {
	Label  nodetype.NodeType
	Target *Match
}

// Match is one state of the compiled content-expression automaton. The
// zero value is not meaningful; every Match is produced by Build.
type Match struct {
	edges     []edge
	validEnd  bool
	cfg       config.Config
	wrapCache []wrapCacheEntry
}

// ValidEnd reports whether this state accepts, i.e. a child sequence
// ending here is a complete match.
func (m *Match) ValidEnd() bool { return m.validEnd }

// EdgeCount returns the number of outgoing transitions.
func (m *Match) EdgeCount() int { return len(m.edges) }

// Edge returns the i-th outgoing (type, next-state) pair, in the order
// the source expression declared it. It panics if i is out of range.
func (m *Match) Edge(i int) (nodetype.NodeType, nodetype.Match) {
	if i < 0 || i >= len(m.edges) {
		panic(fmt.Sprintf("dfa: Edge index %d out of range [0, %d)", i, len(m.edges)))
	}
	e := m.edges[i]
	return e.Label, e.Target
}

// MatchType returns the state reached by consuming a child of type t, if
// any outgoing edge carries exactly that label.
func (m *Match) MatchType(t nodetype.NodeType) (nodetype.Match, bool) {
	next, ok := m.matchType(t)
	if !ok {
		return nil, false
	}
	return next, true
}

func (m *Match) matchType(t nodetype.NodeType) (*Match, bool) {
	for _, e := range m.edges {
		if e.Label == t {
			return e.Target, true
		}
	}
	return nil, false
}

// MatchFragment walks matchType over frag.Child(start)..frag.Child(end-1)
// in order, returning the resulting state or false if any child is
// rejected.
func (m *Match) MatchFragment(frag nodetype.Fragment, start, end int) (*Match, bool) {
	cur := m
	for i := start; i < end; i++ {
		next, ok := cur.matchType(frag.Child(i).Type())
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// DefaultType returns the first outgoing label that is neither a text
// type nor carries required attributes — a type CreateAndFill can
// synthesize. It is the "fill me in" choice for callers with no better
// preference.
func (m *Match) DefaultType() (nodetype.NodeType, bool) {
	for _, e := range m.edges {
		if !e.Label.IsText() && !e.Label.HasRequiredAttrs() {
			return e.Label, true
		}
	}
	return nil, false
}

// InlineContent reports whether this position accepts inline children,
// judged from its first outgoing label.
func (m *Match) InlineContent() bool {
	return len(m.edges) > 0 && m.edges[0].Label.IsInline()
}

// Compatible reports whether m and other share any outgoing label.
func (m *Match) Compatible(other *Match) bool {
	for _, e := range m.edges {
		for _, o := range other.edges {
			if e.Label == o.Label {
				return true
			}
		}
	}
	return false
}
