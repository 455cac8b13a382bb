package dfa

import "github.com/coregx/contentexpr/nodetype"

// FillBefore searches for a fragment F such that F followed by
// after.Child(startIndex...) is accepted by m, materializing F by
// creating a default instance of every node type the search passes
// through. If toEnd, the state reached after F and after must also be
// ValidEnd. It returns false when no such F exists.
func (m *Match) FillBefore(after nodetype.Fragment, toEnd bool, startIndex int) (nodetype.Fragment, bool) {
	seen := make(map[*Match]bool)
	return m.fillBefore(after, toEnd, startIndex, nil, seen)
}

// fillBefore is the DFS from the spec: try matching the remainder of
// after directly at m first (so real content always wins over a
// synthesized filler), then walk generatable outgoing edges in source
// order, never re-entering a state already on this search.
func (m *Match) fillBefore(after nodetype.Fragment, toEnd bool, startIndex int, types []nodetype.NodeType, seen map[*Match]bool) (nodetype.Fragment, bool) {
	if result, ok := m.MatchFragment(after, startIndex, after.ChildCount()); ok {
		if !toEnd || result.validEnd {
			return materialize(types)
		}
	}

	for _, e := range m.edges {
		if e.Label.IsText() || e.Label.HasRequiredAttrs() {
			continue
		}
		if seen[e.Target] {
			continue
		}
		seen[e.Target] = true

		next := make([]nodetype.NodeType, len(types)+1)
		copy(next, types)
		next[len(types)] = e.Label

		if frag, ok := e.Target.fillBefore(after, toEnd, startIndex, next, seen); ok {
			return frag, true
		}
	}
	return nil, false
}

func materialize(types []nodetype.NodeType) (nodetype.Fragment, bool) {
	children := make([]nodetype.Node, 0, len(types))
	for _, t := range types {
		if n, ok := t.CreateAndFill(); ok {
			children = append(children, n)
		}
	}
	return &fragment{children: children}, true
}

// fragment is the concrete nodetype.Fragment FillBefore returns.
type fragment struct {
	children []nodetype.Node
}

func (f *fragment) ChildCount() int           { return len(f.children) }
func (f *fragment) Child(i int) nodetype.Node { return f.children[i] }
