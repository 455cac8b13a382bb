package parser_test

import (
	"errors"
	"testing"

	"github.com/coregx/contentexpr/ast"
	"github.com/coregx/contentexpr/cerr"
	"github.com/coregx/contentexpr/config"
	"github.com/coregx/contentexpr/internal/fakenode"
	"github.com/coregx/contentexpr/nodetype"
	"github.com/coregx/contentexpr/parser"
)

func allTypes(ts ...*fakenode.Type) []nodetype.NodeType {
	out := make([]nodetype.NodeType, len(ts))
	for i, t := range ts {
		out[i] = t
	}
	return out
}

// A group tag with no exact-name type of the same name expands to a
// Choice over every type carrying it, in schema order.
func TestResolveNameExpandsGroupTagToChoiceInSchemaOrder(t *testing.T) {
	heading := fakenode.New("heading").WithGroups("block")
	paragraph := fakenode.New("paragraph").WithGroups("block")
	image := fakenode.New("image").Inline().Leaf()

	expr, err := parser.Parse("block", allTypes(heading, paragraph, image), config.DefaultConfig())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	choice, ok := expr.(*ast.Choice)
	if !ok {
		t.Fatalf("expected *ast.Choice, got %T", expr)
	}
	if len(choice.Children) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(choice.Children))
	}
	first, ok := choice.Children[0].(*ast.Name)
	if !ok || first.Type.Name() != "heading" {
		t.Fatalf("expected first alternative heading, got %#v", choice.Children[0])
	}
	second, ok := choice.Children[1].(*ast.Name)
	if !ok || second.Type.Name() != "paragraph" {
		t.Fatalf("expected second alternative paragraph, got %#v", choice.Children[1])
	}
}

// An exact type name wins outright even when the same string also
// happens to be a group tag carried by other types.
func TestResolveNameExactMatchBeatsGroupTag(t *testing.T) {
	paragraph := fakenode.New("paragraph").WithGroups("block")
	block := fakenode.New("block").WithGroups("block")

	expr, err := parser.Parse("block", allTypes(paragraph, block), config.DefaultConfig())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	name, ok := expr.(*ast.Name)
	if !ok {
		t.Fatalf("expected *ast.Name (exact match), got %T", expr)
	}
	if name.Type.Name() != "block" {
		t.Fatalf("expected exact match to resolve to the 'block' type itself, got %q", name.Type.Name())
	}
}

// An unknown identifier that matches neither a type name nor a group tag
// is a syntax error.
func TestResolveNameUnknownIdentifierIsSyntaxError(t *testing.T) {
	paragraph := fakenode.New("paragraph")

	_, err := parser.Parse("nonexistent", allTypes(paragraph), config.DefaultConfig())
	if err == nil {
		t.Fatalf("expected a syntax error for an unresolvable identifier")
	}
	var syn *cerr.SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("expected *cerr.SyntaxError, got %T", err)
	}
	if syn.Source != "nonexistent" {
		t.Fatalf("SyntaxError.Source = %q, want the full source", syn.Source)
	}
}

// Mixing an inline type and a block type anywhere in the same expression
// is rejected, regardless of which one appears first.
func TestParseRejectsMixedInlineAndBlockContent(t *testing.T) {
	paragraph := fakenode.New("paragraph")
	image := fakenode.New("image").Inline().Leaf()

	_, err := parser.Parse("paragraph image", allTypes(paragraph, image), config.DefaultConfig())
	if err == nil {
		t.Fatalf("expected a syntax error mixing inline and block content")
	}
	var syn *cerr.SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("expected *cerr.SyntaxError, got %T", err)
	}
	if syn.Reason != "Mixing inline and block content" {
		t.Fatalf("SyntaxError.Reason = %q, want the inline/block lock message", syn.Reason)
	}
}

// A group tag that expands to a mix of inline and block types trips the
// same lock, even though the source names only one identifier.
func TestParseRejectsGroupTagExpandingToMixedContent(t *testing.T) {
	paragraph := fakenode.New("paragraph").WithGroups("mixed")
	image := fakenode.New("image").Inline().Leaf().WithGroups("mixed")

	_, err := parser.Parse("mixed", allTypes(paragraph, image), config.DefaultConfig())
	if err == nil {
		t.Fatalf("expected a syntax error: the 'mixed' group itself spans inline and block")
	}
	var syn *cerr.SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("expected *cerr.SyntaxError, got %T", err)
	}
}

// An all-inline expression, and an all-block expression, both parse
// cleanly: the lock only fires on an actual mismatch.
func TestParseAcceptsConsistentInlineOrBlockContent(t *testing.T) {
	image := fakenode.New("image").Inline().Leaf()
	hardBreak := fakenode.New("hard_break").Inline().Leaf()

	if _, err := parser.Parse("image hard_break", allTypes(image, hardBreak), config.DefaultConfig()); err != nil {
		t.Fatalf("expected an all-inline sequence to parse, got %v", err)
	}

	paragraph := fakenode.New("paragraph")
	heading := fakenode.New("heading")
	if _, err := parser.Parse("paragraph heading", allTypes(paragraph, heading), config.DefaultConfig()); err != nil {
		t.Fatalf("expected an all-block sequence to parse, got %v", err)
	}
}
