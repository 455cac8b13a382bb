// Package nfa compiles an ast.Expr into an ordered Thompson NFA whose
// states carry nodetype.NodeType labels instead of bytes. Edge order is
// semantically significant: it is preserved all the way from the source
// expression through to the DFA's Match.next lists, which is what lets
// fillBefore and findWrapping prefer the leftmost admissible alternative.
package nfa

import "fmt"

// BuildError represents an error during NFA construction, grounded on
// the teacher's nfa/error.go BuildError: a message plus the offending
// state, when one is known.
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("nfa build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("nfa build error: %s", e.Message)
}
