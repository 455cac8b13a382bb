// Package dfa turns a compiled nfa.NFA into the Match graph schemas query
// at runtime: a deterministic automaton whose states are Match values and
// whose transitions are labeled by nodetype.NodeType. Subset construction
// is grounded on the teacher's composite_dfa.go powerset-construction
// shape, adapted from byte ranges to NodeType labels.
package dfa

import (
	"encoding/binary"
	"sort"

	"github.com/coregx/contentexpr/config"
	"github.com/coregx/contentexpr/internal/sparse"
	"github.com/coregx/contentexpr/nfa"
	"github.com/coregx/contentexpr/nodetype"
)

// Build runs subset construction over n and returns the entry Match,
// i.e. explore(nullFrom(0)). cfg is retained on every Match in the graph
// so FindWrapping can bound its search.
func Build(n *nfa.NFA, cfg config.Config) *Match {
	b := &builder{n: n, cfg: cfg, memo: make(map[string]*Match)}
	return b.explore(b.nullFrom(0))
}

type builder struct {
	n    *nfa.NFA
	cfg  config.Config
	memo map[string]*Match
}

// nullFrom returns the epsilon-closure of start, sorted ascending. A
// state with exactly one outgoing edge that is itself an epsilon edge is
// elided from the result (though still traversed through) — this is the
// one non-textbook twist subset construction needs here. visited is a
// SparseSet over the NFA's own dense StateID universe, the exact case
// it's built for.
func (b *builder) nullFrom(start nfa.StateID) []nfa.StateID {
	visited := sparse.NewSparseSet(uint32(b.n.NumStates()))
	var result []nfa.StateID

	var walk func(id nfa.StateID)
	walk = func(id nfa.StateID) {
		if visited.Contains(uint32(id)) {
			return
		}
		visited.Insert(uint32(id))
		s := b.n.State(id)
		if !(len(s.Edges) == 1 && s.Edges[0].IsEpsilon()) {
			result = append(result, id)
		}
		for _, e := range s.Edges {
			if e.IsEpsilon() {
				walk(e.Target)
			}
		}
	}
	walk(start)

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// explore memoizes stateSet -> Match on a canonical byte encoding of the
// sorted state-ID slice, not a decimal-digit string join, so that e.g.
// [1,23] and [12,3] can never collide.
func (b *builder) explore(stateSet []nfa.StateID) *Match {
	key := encodeStateSet(stateSet)
	if m, ok := b.memo[key]; ok {
		return m
	}

	m := &Match{cfg: b.cfg}
	b.memo[key] = m // inserted before recursing: the DFA may be cyclic

	for _, s := range stateSet {
		if s == b.n.Accept {
			m.validEnd = true
			break
		}
	}

	var order []nodetype.NodeType
	targets := make(map[nodetype.NodeType][]nfa.StateID)
	gathered := sparse.NewSparseSet(uint32(b.n.NumStates()))
	for _, sid := range stateSet {
		b.gatherEdges(sid, gathered, &order, targets)
	}

	m.edges = make([]edge, 0, len(order))
	for _, label := range order {
		seen := sparse.NewSparseSet(uint32(b.n.NumStates()))
		var closure []nfa.StateID
		for _, t := range targets[label] {
			for _, c := range b.nullFrom(t) {
				if !seen.Contains(uint32(c)) {
					seen.Insert(uint32(c))
					closure = append(closure, c)
				}
			}
		}
		sort.Slice(closure, func(i, j int) bool { return closure[i] < closure[j] })
		m.edges = append(m.edges, edge{Label: label, Target: b.explore(closure)})
	}
	return m
}

// gatherEdges walks sid's edges in order, recording each labeled edge at
// the position it is encountered and inlining an epsilon edge's target
// at that same position instead of appending it afterwards. This is what
// lets a skip edge's eventual labeled successor outrank a sibling label
// that only comes later in source order — the mechanism fillBefore's
// "prefer skipping Optional" behavior rests on (see nfa.compile's
// Optional case, which places the skip edge first for exactly this
// reason).
func (b *builder) gatherEdges(sid nfa.StateID, gathered *sparse.SparseSet, order *[]nodetype.NodeType, targets map[nodetype.NodeType][]nfa.StateID) {
	if gathered.Contains(uint32(sid)) {
		return
	}
	gathered.Insert(uint32(sid))
	for _, e := range b.n.State(sid).Edges {
		if e.IsEpsilon() {
			b.gatherEdges(e.Target, gathered, order, targets)
			continue
		}
		if _, seen := targets[e.Label]; !seen {
			*order = append(*order, e.Label)
		}
		targets[e.Label] = append(targets[e.Label], e.Target)
	}
}

func encodeStateSet(ids []nfa.StateID) string {
	buf := make([]byte, len(ids)*4)
	for i, id := range ids {
		binary.BigEndian.PutUint32(buf[i*4:], uint32(id))
	}
	return string(buf)
}
