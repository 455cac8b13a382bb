package nfa

import (
	"fmt"

	"github.com/coregx/contentexpr/nodetype"
)

// StateID uniquely identifies an NFA state.
type StateID uint32

// InvalidState marks an unset or not-yet-patched target.
const InvalidState StateID = 0xFFFFFFFF

// Edge is a single outgoing transition from a state: Label is nil for an
// epsilon edge, or the NodeType a child must have to take this edge.
// Edge order within a State is preserved from the source expression.
type Edge struct {
	Label  nodetype.NodeType
	Target StateID
}

// IsEpsilon reports whether this edge consumes no input.
func (e Edge) IsEpsilon() bool {
	return e.Label == nil
}

// State is a single NFA state: an ordered list of outgoing edges.
type State struct {
	Edges []Edge
}

// String is for debugging only.
func (s State) String() string {
	return fmt.Sprintf("State(%d edges)", len(s.Edges))
}

// NFA is an ordered sequence of states. State 0 is the entry; the last
// state appended is the unique accepting state.
type NFA struct {
	States []State
	Accept StateID
}

// State returns the state with the given ID, or nil if out of range.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.States) {
		return nil
	}
	return &n.States[id]
}

// NumStates returns the number of states in the NFA.
func (n *NFA) NumStates() int {
	return len(n.States)
}
