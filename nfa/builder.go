package nfa

import (
	"github.com/coregx/contentexpr/internal/conv"
	"github.com/coregx/contentexpr/nodetype"
)

// Builder constructs an NFA incrementally. AddState appends a new state
// and returns its ID; AddEdge appends an edge to an existing state and
// returns a "dangling" reference to it, whose target the caller patches
// once the successor state is known —
// the same forward-patching discipline the teacher's nfa.Builder uses
// for regex alternation and repetition.
type Builder struct {
	states []State

	unrollBudget int // remaining Range repetitions this compile may unroll
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{states: make([]State, 0, 16)}
}

// Dangling is a reference to one not-yet-patched edge: state Edges[idx].
type Dangling struct {
	State StateID
	Idx   int
}

// NumStates returns the number of states allocated so far.
func (b *Builder) NumStates() int {
	return len(b.states)
}

// AddState allocates a new, empty state and returns its ID.
func (b *Builder) AddState() StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{})
	return id
}

// AddEdge appends an edge labeled with typ (nil for an epsilon edge) to
// from's edge list, in order, and returns it as a dangling reference
// whose Target is still InvalidState.
func (b *Builder) AddEdge(from StateID, typ nodetype.NodeType) Dangling {
	idx := len(b.states[from].Edges)
	b.states[from].Edges = append(b.states[from].Edges, Edge{Label: typ, Target: InvalidState})
	return Dangling{State: from, Idx: idx}
}

// chargeUnroll debits n repetitions from the remaining unroll budget,
// returning a BuildError once the budget is exhausted.
func (b *Builder) chargeUnroll(n int) error {
	b.unrollBudget -= n
	if b.unrollBudget < 0 {
		return &BuildError{Message: "range unrolling exceeds configured limit", StateID: InvalidState}
	}
	return nil
}

// Patch sets the target of a previously returned dangling edge.
func (b *Builder) Patch(d Dangling, target StateID) {
	b.states[d.State].Edges[d.Idx].Target = target
}

// PatchAll patches every dangling edge in ds to target.
func (b *Builder) PatchAll(ds []Dangling, target StateID) {
	for _, d := range ds {
		b.Patch(d, target)
	}
}

// Build finalizes the NFA: it allocates the unique accepting state,
// patches every still-dangling edge in danglers to it, and returns the
// finished graph.
func (b *Builder) Build(danglers []Dangling) *NFA {
	accept := b.AddState()
	b.PatchAll(danglers, accept)
	return &NFA{States: b.states, Accept: accept}
}
