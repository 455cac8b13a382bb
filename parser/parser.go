// Package parser implements a recursive-descent parser that turns a
// content-expression source string into an ast.Expr tree, resolving
// identifiers against a schema's node types along the way.
package parser

import (
	"strconv"

	"github.com/coregx/contentexpr/ast"
	"github.com/coregx/contentexpr/cerr"
	"github.com/coregx/contentexpr/config"
	"github.com/coregx/contentexpr/nodetype"
	"github.com/coregx/contentexpr/token"
)

// inlineState tracks whether the expression has committed to inline or
// block content, enforcing the homogeneity rule from the spec.
type inlineState int

const (
	inlineUnset inlineState = iota
	inlineYes
	inlineNo
)

type parser struct {
	stream  *token.Stream
	types   []nodetype.NodeType
	byName  map[string]nodetype.NodeType
	inline  inlineState
	cfg     config.Config
	depth   int
}

// Parse tokenizes and parses source against the given node types,
// returning the resolved expression tree. types must include every node
// type the schema declares; resolution considers both exact names and
// group tags.
func Parse(source string, types []nodetype.NodeType, cfg config.Config) (ast.Expr, error) {
	byName := make(map[string]nodetype.NodeType, len(types))
	for _, t := range types {
		byName[t.Name()] = t
	}
	p := &parser{stream: token.New(source), types: types, byName: byName, cfg: cfg}

	if p.stream.AtEnd() {
		return nil, nil // empty source: canonical empty expression
	}

	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.stream.AtEnd() {
		return nil, p.stream.Errorf("Unexpected trailing text")
	}
	return e, nil
}

// parseExpr := seq ('|' seq)*
func (p *parser) parseExpr() (ast.Expr, error) {
	first, err := p.parseSeq()
	if err != nil {
		return nil, err
	}
	children := []ast.Expr{first}
	for p.stream.Eat("|") {
		next, err := p.parseSeq()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return &ast.Choice{Children: children}, nil
}

// parseSeq := subscript+
func (p *parser) parseSeq() (ast.Expr, error) {
	first, err := p.parseSubscript()
	if err != nil {
		return nil, err
	}
	children := []ast.Expr{first}
	for {
		tok, ok := p.stream.Peek()
		if !ok || tok == "|" || tok == ")" {
			break
		}
		next, err := p.parseSubscript()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return &ast.Sequence{Children: children}, nil
}

// parseSubscript := atom ('+' | '*' | '?' | '{' range '}')*
func (p *parser) parseSubscript() (ast.Expr, error) {
	e, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.stream.Eat("+"):
			e = &ast.Plus{Child: e}
		case p.stream.Eat("*"):
			e = &ast.Star{Child: e}
		case p.stream.Eat("?"):
			e = &ast.Optional{Child: e}
		case p.stream.Eat("{"):
			min, max, err := p.parseRange()
			if err != nil {
				return nil, err
			}
			if !p.stream.Eat("}") {
				return nil, p.stream.Errorf("Unclosed range (missing '}')")
			}
			e = &ast.Range{Min: min, Max: max, Child: e}
		default:
			return e, nil
		}
	}
}

// parseRange := INT (',' (INT)?)?
func (p *parser) parseRange() (min, max int, err error) {
	min, err = p.parseInt()
	if err != nil {
		return 0, 0, err
	}
	max = min
	if p.stream.Eat(",") {
		if tok, ok := p.stream.Peek(); ok && tok != "}" {
			max, err = p.parseInt()
			if err != nil {
				return 0, 0, err
			}
		} else {
			max = ast.Unbounded
		}
	}
	if max != ast.Unbounded && min > max {
		return 0, 0, p.stream.Errorf("Range lower bound %d greater than upper bound %d", min, max)
	}
	return min, max, nil
}

func (p *parser) parseInt() (int, error) {
	tok, ok := p.stream.Peek()
	if !ok {
		return 0, p.stream.Errorf("Expected a number")
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, p.stream.Errorf("Expected a number, got '%s'", tok)
	}
	p.stream.Next()
	return n, nil
}

// parseAtom := '(' expr ')' | NAME
func (p *parser) parseAtom() (ast.Expr, error) {
	if p.stream.Eat("(") {
		p.depth++
		if p.depth > p.cfg.MaxRecursionDepth {
			return nil, p.stream.Errorf("Expression nested too deeply (max depth %d)", p.cfg.MaxRecursionDepth)
		}
		e, err := p.parseExpr()
		p.depth--
		if err != nil {
			return nil, err
		}
		if !p.stream.Eat(")") {
			return nil, p.stream.Errorf("Unclosed group (missing ')')")
		}
		return e, nil
	}

	tok, ok := p.stream.Peek()
	if !ok {
		return nil, p.stream.Errorf("Unexpected end of content expression")
	}
	if !token.IsIdent(tok) {
		return nil, p.stream.Errorf("Unexpected token '%s'", tok)
	}
	p.stream.Next()
	return p.resolveName(tok)
}

// resolveName implements the spec's name resolver: an exact type name
// wins outright; otherwise every type carrying the identifier as a group
// tag, in schema order; otherwise a syntax error. Multiple results are
// wrapped in a synthetic Choice of single-type Names.
func (p *parser) resolveName(name string) (ast.Expr, error) {
	types, err := p.resolve(name)
	if err != nil {
		return nil, err
	}
	if err := p.lockInline(types); err != nil {
		return nil, err
	}
	if len(types) == 1 {
		return &ast.Name{Type: types[0]}, nil
	}
	children := make([]ast.Expr, len(types))
	for i, t := range types {
		children[i] = &ast.Name{Type: t}
	}
	return &ast.Choice{Children: children}, nil
}

func (p *parser) resolve(name string) ([]nodetype.NodeType, error) {
	if t, ok := p.byName[name]; ok {
		return []nodetype.NodeType{t}, nil
	}
	var group []nodetype.NodeType
	for _, t := range p.types {
		for _, g := range t.Groups() {
			if g == name {
				group = append(group, t)
				break
			}
		}
	}
	if len(group) == 0 {
		return nil, p.stream.Errorf("No node type or group '%s' found", name)
	}
	return group, nil
}

// lockInline enforces that every atom in the expression agrees on
// inline-vs-block, per the spec's "inline/block lock".
func (p *parser) lockInline(types []nodetype.NodeType) error {
	for _, t := range types {
		want := inlineNo
		if t.IsInline() {
			want = inlineYes
		}
		switch p.inline {
		case inlineUnset:
			p.inline = want
		case want:
			// consistent
		default:
			return cerr.NewSyntaxError(p.stream.Source(), "Mixing inline and block content")
		}
	}
	return nil
}
