// Package contentexpr compiles schema content expressions — the
// regex-like strings node types declare for their allowed child
// sequences — into a Match automaton that answers validity,
// auto-completion, and wrapping questions at edit time.
//
// Basic usage:
//
//	match, err := contentexpr.ParsePattern("paragraph horizontal_rule paragraph", types, contentexpr.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if next, ok := match.MatchType(paragraphType); ok {
//	    // next is the state reached after a paragraph child
//	}
//
// ParsePattern is the engine's one compile-time entry point: it
// tokenizes, parses, compiles an NFA, runs subset construction, and
// checks for dead ends, in that order. Everything downstream of a
// successful ParsePattern — MatchType, MatchFragment, FillBefore,
// FindWrapping — is a pure query over the returned *Match and never
// fails on user data; mismatches are reported as a false second return
// value, not an error.
package contentexpr

import (
	"github.com/coregx/contentexpr/cerr"
	"github.com/coregx/contentexpr/config"
	"github.com/coregx/contentexpr/dfa"
	"github.com/coregx/contentexpr/nfa"
	"github.com/coregx/contentexpr/nodetype"
	"github.com/coregx/contentexpr/parser"
)

// Re-exported so callers need only import this one package for the
// common path; cerr and config remain importable directly for callers
// that want to type-switch on error kinds or build a custom Config.
type (
	SyntaxError  = cerr.SyntaxError
	DeadEndError = cerr.DeadEndError
	Config       = config.Config
	Match        = dfa.Match
	NodeType     = nodetype.NodeType
	Node         = nodetype.Node
	Fragment     = nodetype.Fragment
)

// DefaultConfig returns the engine's default compile-time limits.
func DefaultConfig() Config {
	return config.DefaultConfig()
}

// ParsePattern compiles source against the given node types and returns
// the entry Match. types must list every node type the schema declares;
// name resolution considers both exact names and group tags. Returns a
// *SyntaxError for a malformed expression or a *DeadEndError if schema
// compilation reaches a required state with no generatable way forward.
// Range unrolling beyond cfg.MaxRangeUnroll returns an *nfa.BuildError.
func ParsePattern(source string, types []NodeType, cfg Config) (*Match, error) {
	expr, err := parser.Parse(source, types, cfg)
	if err != nil {
		return nil, err
	}
	n, err := nfa.Compile(expr, cfg)
	if err != nil {
		return nil, err
	}
	root := dfa.Build(n, cfg)
	if err := dfa.CheckDeadEnds(root, source); err != nil {
		return nil, err
	}
	return root, nil
}
