package javaparser

import (
	"github.com/dhamidi/jparse/internal/arena"
	"github.com/dhamidi/jparse/internal/token"
)

// looksLikePattern decides whether a switch label or instanceof
// right-hand-side begins a pattern (type pattern, record pattern, or
// primitive type pattern — JEP 455/JDK 25 preview) rather than a plain
// constant expression. `_` alone is the match-all pattern; anything
// starting with a type followed by an identifier or a record pattern's
// `(` is a pattern.
func (p *parser) looksLikePattern() bool {
	if p.contextualTextIs("_") {
		return true
	}
	save := p.pos
	defer func() { p.pos = save }()

	if p.isPrimitiveType() {
		p.advance()
		for p.check(token.LBracket) && p.peekNKind(1) == token.RBracket {
			p.advance()
			p.advance()
		}
		return p.isIdentifierLike()
	}

	if !p.isIdentifierLike() {
		return false
	}
	p.parseType()
	if p.check(token.LParen) {
		return true // record pattern: Type(...)
	}
	return p.isIdentifierLike()
}

// parsePattern parses a type pattern, record pattern, primitive type
// pattern, or unnamed variable (spec §4.3.5, §9 — primitive type patterns
// are JDK 25 preview).
func (p *parser) parsePattern() arena.NodeIndex {
	start := p.startPos()

	if p.isPrimitiveType() {
		typ := p.parseType()
		name, _ := p.expect(token.Identifier)
		return p.allocateAttr(arena.KindPrimitiveTypePattern, start, p.lastEnd(), []arena.NodeIndex{typ}, arena.IdentifierAttr{Name: name.Text})
	}

	typ := p.parseType()

	if p.check(token.LParen) {
		p.advance()
		var components []arena.NodeIndex
		for !p.check(token.RParen) && !p.check(token.EOF) {
			components = append(components, p.parseNestedPattern())
			if p.check(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		p.expect(token.RParen)
		return p.allocate(arena.KindRecordPattern, start, p.lastEnd(), append([]arena.NodeIndex{typ}, components...))
	}

	if p.contextualTextIs("_") {
		p.advance()
		return p.allocate(arena.KindUnnamedVariable, start, p.lastEnd(), []arena.NodeIndex{typ})
	}

	name, _ := p.expect(token.Identifier)
	return p.allocateAttr(arena.KindTypePattern, start, p.lastEnd(), []arena.NodeIndex{typ}, arena.IdentifierAttr{Name: name.Text})
}

// parseNestedPattern parses one component of a record pattern: another
// (possibly var-typed) nested pattern.
func (p *parser) parseNestedPattern() arena.NodeIndex {
	start := p.startPos()
	if p.contextualTextIs("var") {
		p.advance()
		if p.contextualTextIs("_") {
			p.advance()
			return p.allocate(arena.KindUnnamedVariable, start, p.lastEnd(), nil)
		}
		name, _ := p.expect(token.Identifier)
		return p.allocateAttr(arena.KindTypePattern, start, p.lastEnd(), nil, arena.IdentifierAttr{Name: name.Text})
	}
	return p.parsePattern()
}
