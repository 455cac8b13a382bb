package dfa

import "github.com/coregx/contentexpr/nodetype"

// wrapCacheEntry memoizes one FindWrapping(target) result on the
// originating Match. ok distinguishes a memoized "no wrapping" (false)
// from "not yet computed" (absent from the slice).
type wrapCacheEntry struct {
	target nodetype.NodeType
	chain  []nodetype.NodeType
	ok     bool
}

// candidate is one node of the breadth-first wrapping search: an
// explored Match paired with the wrapper type that admitted entering it
// (nil at the seed) and a back-link for reconstructing the chain. depth
// is the number of wrapper types on the chain so far (0 at the seed).
type candidate struct {
	match        nodetype.Match
	wrappingType nodetype.NodeType
	via          *candidate
	seed         bool
	depth        int
}

// FindWrapping searches for a chain of wrapper types [W1..Wk] such that
// target fits inside a freshly created Wk inside ... inside W1, and W1
// fits at m directly. It returns (nil, true) when target fits at m with
// no wrapping at all, and (nil, false) when no wrapping exists.
// Results, including failures, are memoized per target via a linear scan
// of wrapCache — small by construction, so a map buys nothing here.
func (m *Match) FindWrapping(target nodetype.NodeType) ([]nodetype.NodeType, bool) {
	for _, c := range m.wrapCache {
		if c.target == target {
			return c.chain, c.ok
		}
	}
	chain, ok := m.searchWrapping(target)
	m.wrapCache = append(m.wrapCache, wrapCacheEntry{target: target, chain: chain, ok: ok})
	return chain, ok
}

func (m *Match) searchWrapping(target nodetype.NodeType) ([]nodetype.NodeType, bool) {
	seed := &candidate{match: m, seed: true}
	queue := []*candidate{seed}
	visitedNames := map[string]bool{}

	maxDepth := m.cfg.MaxWrapDepth
	if maxDepth <= 0 {
		maxDepth = 1
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if _, ok := cur.match.MatchType(target); ok {
			return reconstructChain(cur), true
		}
		if cur.depth >= maxDepth {
			continue
		}

		for i := 0; i < cur.match.EdgeCount(); i++ {
			t, next := cur.match.Edge(i)
			if t.IsLeaf() || t.HasRequiredAttrs() {
				continue
			}
			if visitedNames[t.Name()] {
				continue
			}
			if !cur.seed && !next.ValidEnd() {
				continue
			}
			visitedNames[t.Name()] = true
			queue = append(queue, &candidate{match: t.ContentMatch(), wrappingType: t, via: cur, depth: cur.depth + 1})
		}
	}
	return nil, false
}

func reconstructChain(c *candidate) []nodetype.NodeType {
	var chain []nodetype.NodeType
	for ; c.wrappingType != nil; c = c.via {
		chain = append([]nodetype.NodeType{c.wrappingType}, chain...)
	}
	return chain
}
