package dfa

import (
	"testing"

	"github.com/coregx/contentexpr/ast"
	"github.com/coregx/contentexpr/config"
	"github.com/coregx/contentexpr/internal/fakenode"
	"github.com/coregx/contentexpr/nfa"
	"github.com/coregx/contentexpr/nodetype"
)

func buildMatch(t *testing.T, expr ast.Expr) *Match {
	t.Helper()
	cfg := config.DefaultConfig()
	n, err := nfa.Compile(expr, cfg)
	if err != nil {
		t.Fatalf("nfa.Compile: %v", err)
	}
	return Build(n, cfg)
}

// A target with no relation to the schema at all — not a direct edge,
// and not reachable by wrapping in anything the schema admits — reports
// ok == false with a nil chain.
func TestFindWrappingReturnsFalseWhenNoWrappingExists(t *testing.T) {
	image := fakenode.New("image").Inline().Leaf()
	paragraph := fakenode.New("paragraph")

	root := buildMatch(t, &ast.Name{Type: image})

	chain, ok := root.FindWrapping(paragraph)
	if ok {
		t.Fatalf("expected no wrapping to exist, got chain %v", chain)
	}
	if chain != nil {
		t.Fatalf("expected a nil chain on failure, got %v", chain)
	}
}

// A second FindWrapping call for the same target must be served from
// wrapCache rather than appending a fresh entry.
func TestFindWrappingCachesResultAcrossCalls(t *testing.T) {
	image := fakenode.New("image").Inline().Leaf()
	paragraph := fakenode.New("paragraph")

	root := buildMatch(t, &ast.Name{Type: image})

	chain1, ok1 := root.FindWrapping(paragraph)
	if len(root.wrapCache) != 1 {
		t.Fatalf("expected one memoized entry after the first call, got %d", len(root.wrapCache))
	}
	chain2, ok2 := root.FindWrapping(paragraph)
	if len(root.wrapCache) != 1 {
		t.Fatalf("a repeated call for the same target must not grow wrapCache, got %d entries", len(root.wrapCache))
	}
	if ok1 != ok2 || !equalChains(chain1, chain2) {
		t.Fatalf("cached result diverged: (%v,%v) vs (%v,%v)", chain1, ok1, chain2, ok2)
	}
}

// Distinct targets each get their own wrapCache entry.
func TestFindWrappingCachesEachTargetSeparately(t *testing.T) {
	p := fakenode.New("paragraph")
	h := fakenode.New("heading")
	root := buildMatch(t, &ast.Choice{Children: []ast.Expr{&ast.Name{Type: p}, &ast.Name{Type: h}}})

	if _, ok := root.FindWrapping(p); !ok {
		t.Fatalf("paragraph should fit directly")
	}
	if _, ok := root.FindWrapping(h); !ok {
		t.Fatalf("heading should fit directly")
	}
	if len(root.wrapCache) != 2 {
		t.Fatalf("expected a separate memoized entry per target, got %d", len(root.wrapCache))
	}
}

func equalChains(a, b []nodetype.NodeType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
