package nfa

import (
	"github.com/coregx/contentexpr/ast"
	"github.com/coregx/contentexpr/config"
)

// Compile builds the NFA for the whole expression tree and returns it,
// with the unique accepting state allocated and every dangling edge from
// compiling the root patched to it. A nil expr (empty source) compiles
// to the canonical empty NFA: one state, no edges, immediately
// accepting. Compile fails if a Range's unrolling would exceed
// cfg.MaxRangeUnroll total repetitions.
func Compile(expr ast.Expr, cfg config.Config) (*NFA, error) {
	b := NewBuilder()
	b.unrollBudget = cfg.MaxRangeUnroll
	start := b.AddState()
	if expr == nil {
		return &NFA{States: b.states, Accept: start}, nil
	}
	danglers, err := compile(b, expr, start)
	if err != nil {
		return nil, err
	}
	return b.Build(danglers), nil
}

// compile implements the Thompson construction rules from the spec. It
// returns the set of dangling edges whose target the caller must patch.
// Edge order within every touched state is insertion order, and
// insertion order here mirrors the expression's left-to-right source
// order — this is the invariant fillBefore and findWrapping depend on.
func compile(b *Builder, expr ast.Expr, from StateID) ([]Dangling, error) {
	switch e := expr.(type) {
	case *ast.Name:
		return []Dangling{b.AddEdge(from, e.Type)}, nil

	case *ast.Sequence:
		cur := from
		var out []Dangling
		for i, child := range e.Children {
			if i > 0 {
				next := b.AddState()
				b.PatchAll(out, next)
				cur = next
			}
			var err error
			out, err = compile(b, child, cur)
			if err != nil {
				return nil, err
			}
		}
		return out, nil

	case *ast.Choice:
		var out []Dangling
		for _, child := range e.Children {
			d, err := compile(b, child, from)
			if err != nil {
				return nil, err
			}
			out = append(out, d...)
		}
		return out, nil

	case *ast.Star:
		loop := b.AddState()
		epsilon := b.AddEdge(from, nil)
		b.Patch(epsilon, loop)
		d, err := compile(b, e.Child, loop)
		if err != nil {
			return nil, err
		}
		b.PatchAll(d, loop)
		return []Dangling{b.AddEdge(loop, nil)}, nil

	case *ast.Plus:
		loop := b.AddState()
		d1, err := compile(b, e.Child, from)
		if err != nil {
			return nil, err
		}
		b.PatchAll(d1, loop)
		d2, err := compile(b, e.Child, loop)
		if err != nil {
			return nil, err
		}
		b.PatchAll(d2, loop)
		return []Dangling{b.AddEdge(loop, nil)}, nil

	case *ast.Optional:
		skip := b.AddEdge(from, nil)
		d, err := compile(b, e.Child, from)
		if err != nil {
			return nil, err
		}
		return append([]Dangling{skip}, d...), nil

	case *ast.Range:
		return compileRange(b, e, from)

	default:
		panic("nfa: unknown ast.Expr case")
	}
}

// compileRange unrolls Range{min,max,child}: min mandatory copies, then
// either a self-loop (max == Unbounded) or max-min skippable copies.
// Every unrolled copy is charged against the builder's unroll budget so
// a pattern like x{1,1000000} cannot build an unbounded NFA.
func compileRange(b *Builder, r *ast.Range, from StateID) ([]Dangling, error) {
	copies := r.Min
	if r.Max != ast.Unbounded {
		copies = r.Max
	} else {
		copies = r.Min + 1 // the self-loop still counts as one copy
	}
	if err := b.chargeUnroll(copies); err != nil {
		return nil, err
	}

	count := from
	for i := 0; i < r.Min; i++ {
		next := b.AddState()
		d, err := compile(b, r.Child, count)
		if err != nil {
			return nil, err
		}
		b.PatchAll(d, next)
		count = next
	}
	if r.Max == ast.Unbounded {
		d, err := compile(b, r.Child, count)
		if err != nil {
			return nil, err
		}
		b.PatchAll(d, count)
	} else {
		for i := r.Min; i < r.Max; i++ {
			next := b.AddState()
			skip := b.AddEdge(count, nil)
			b.Patch(skip, next)
			d, err := compile(b, r.Child, count)
			if err != nil {
				return nil, err
			}
			b.PatchAll(d, next)
			count = next
		}
	}
	return []Dangling{b.AddEdge(count, nil)}, nil
}
