package javaparser

import (
	"github.com/dhamidi/jparse/internal/arena"
	"github.com/dhamidi/jparse/internal/token"
)

func (p *parser) parseBlock() arena.NodeIndex {
	start := p.startPos()
	p.expect(token.LBrace)
	var children []arena.NodeIndex
	p.collectLeadingComments(&children)
	progress := p.mustProgress()
	for !p.check(token.RBrace) && !p.check(token.EOF) {
		children = append(children, p.parseStatement())
		p.collectLeadingComments(&children)
		if !progress() {
			break
		}
	}
	p.expect(token.RBrace)
	return p.allocate(arena.KindBlock, start, p.lastEnd(), children)
}

// parseStatement dispatches on the current token to one of Java's
// statement forms (spec §4.3.4). Local class/interface/record
// declarations and local variable declarations are recognized by
// lookahead before falling back to an expression statement.
func (p *parser) parseStatement() arena.NodeIndex {
	switch {
	case p.check(token.LBrace):
		return p.parseBlock()
	case p.check(token.Semicolon):
		start := p.startPos()
		p.advance()
		return p.allocate(arena.KindEmptyStmt, start, p.lastEnd(), nil)
	case p.check(token.If):
		return p.parseIfStmt()
	case p.check(token.While):
		return p.parseWhileStmt()
	case p.check(token.Do):
		return p.parseDoStmt()
	case p.check(token.For):
		return p.parseForStmt()
	case p.check(token.Switch):
		return p.parseSwitchStmt()
	case p.check(token.Return):
		return p.parseReturnStmt()
	case p.check(token.Break):
		return p.parseBreakStmt()
	case p.check(token.Continue):
		return p.parseContinueStmt()
	case p.check(token.Throw):
		return p.parseThrowStmt()
	case p.check(token.Try):
		return p.parseTryStmt()
	case p.check(token.Synchronized):
		return p.parseSynchronizedStmt()
	case p.check(token.Assert):
		return p.parseAssertStmt()
	case p.contextualTextIs("yield") && p.inSwitchExpr > 0:
		return p.parseYieldStmt()
	case p.startsTypeDecl():
		return p.parseLocalClassDecl()
	case p.isIdentifierLike() && p.peekNKind(1) == token.Colon:
		return p.parseLabeledStmt()
	case p.looksLikeLocalVarDecl():
		return p.parseLocalVarDecl()
	default:
		return p.parseExprStmt()
	}
}

func (p *parser) parseIfStmt() arena.NodeIndex {
	start := p.startPos()
	p.advance() // if
	p.expect(token.LParen)
	cond := p.parseExpression()
	p.expect(token.RParen)
	then := p.parseStatement()
	children := []arena.NodeIndex{cond, then}
	if p.check(token.Else) {
		p.advance()
		children = append(children, p.parseStatement())
	}
	return p.allocate(arena.KindIfStmt, start, p.lastEnd(), children)
}

func (p *parser) parseWhileStmt() arena.NodeIndex {
	start := p.startPos()
	p.advance() // while
	p.expect(token.LParen)
	cond := p.parseExpression()
	p.expect(token.RParen)
	body := p.parseStatement()
	return p.allocate(arena.KindWhileStmt, start, p.lastEnd(), []arena.NodeIndex{cond, body})
}

func (p *parser) parseDoStmt() arena.NodeIndex {
	start := p.startPos()
	p.advance() // do
	body := p.parseStatement()
	p.expect(token.While)
	p.expect(token.LParen)
	cond := p.parseExpression()
	p.expect(token.RParen)
	p.expect(token.Semicolon)
	return p.allocate(arena.KindDoStmt, start, p.lastEnd(), []arena.NodeIndex{body, cond})
}

// parseForStmt disambiguates the classic for(init;cond;update) form from
// the enhanced for(Type name : expr) form by speculatively scanning past
// the init clause for a top-level `:` (spec §4.3.4).
func (p *parser) parseForStmt() arena.NodeIndex {
	start := p.startPos()
	p.advance() // for
	p.expect(token.LParen)
	if p.looksLikeEnhancedFor() {
		mods := p.parseModifiers()
		typ := p.parseType()
		name, _ := p.expect(token.Identifier)
		p.expect(token.Colon)
		iterable := p.parseExpression()
		p.expect(token.RParen)
		body := p.parseStatement()
		nameNode := p.allocateAttr(arena.KindIdentifier, name.Span.Start, name.Span.End, nil, arena.IdentifierAttr{Name: name.Text})
		return p.allocate(arena.KindEnhancedForStmt, start, p.lastEnd(), []arena.NodeIndex{mods, typ, nameNode, iterable, body})
	}

	var initChildren []arena.NodeIndex
	if !p.check(token.Semicolon) {
		if p.looksLikeLocalVarDecl() {
			initChildren = append(initChildren, p.parseLocalVarDeclNoSemi())
		} else {
			initChildren = append(initChildren, p.parseExpression())
			for p.check(token.Comma) {
				p.advance()
				initChildren = append(initChildren, p.parseExpression())
			}
		}
	}
	initStart := start
	forInit := p.allocate(arena.KindForInit, initStart, p.lastEnd(), initChildren)
	p.expect(token.Semicolon)

	var cond arena.NodeIndex
	if !p.check(token.Semicolon) {
		cond = p.parseExpression()
	}
	p.expect(token.Semicolon)

	var updateChildren []arena.NodeIndex
	if !p.check(token.RParen) {
		updateChildren = append(updateChildren, p.parseExpression())
		for p.check(token.Comma) {
			p.advance()
			updateChildren = append(updateChildren, p.parseExpression())
		}
	}
	forUpdate := p.allocate(arena.KindForUpdate, p.startPos(), p.lastEnd(), updateChildren)
	p.expect(token.RParen)
	body := p.parseStatement()

	children := []arena.NodeIndex{forInit}
	if cond != 0 {
		children = append(children, cond)
	}
	children = append(children, forUpdate, body)
	return p.allocate(arena.KindForStmt, start, p.lastEnd(), children)
}

// looksLikeEnhancedFor speculatively scans `(` Modifiers Type name `:` —
// the only way to tell the two for-loop forms apart without full
// expression parsing.
func (p *parser) looksLikeEnhancedFor() bool {
	save := p.pos
	defer func() { p.pos = save }()

	for p.check(token.Final) || p.check(token.At) {
		if p.check(token.At) {
			p.skipAnnotation()
		} else {
			p.advance()
		}
	}
	if !p.isPrimitiveType() && !p.isIdentifierLike() {
		return false
	}
	p.parseType()
	if !p.isIdentifierLike() {
		return false
	}
	p.advance()
	return p.check(token.Colon)
}

// looksLikeLocalVarDecl speculatively scans for Type identifier followed
// by one of `=`, `,`, `;`, `[` (a `:` after that shape does not count)
// to decide whether a statement starting position begins a local variable
// declaration rather than an expression statement.
func (p *parser) looksLikeLocalVarDecl() bool {
	if p.contextualTextIs("var") {
		return true
	}
	if p.check(token.Final) {
		return true
	}
	save := p.pos
	defer func() { p.pos = save }()
	for p.check(token.At) {
		p.skipAnnotation()
	}
	if !p.isPrimitiveType() && !p.isIdentifierLike() {
		return false
	}
	p.parseType()
	if !p.isIdentifierLike() {
		return false
	}
	switch p.peekNKind(1) {
	case token.Assign, token.Comma, token.Semicolon, token.LBracket, token.Colon:
		return p.peekNKind(1) != token.Colon
	}
	return false
}

func (p *parser) parseLocalVarDecl() arena.NodeIndex {
	n := p.parseLocalVarDeclNoSemi()
	p.expect(token.Semicolon)
	return n
}

func (p *parser) parseLocalVarDeclNoSemi() arena.NodeIndex {
	start := p.startPos()
	mods := p.parseModifiers()
	typ := p.parseType()
	children := []arena.NodeIndex{mods, typ}
	name, _ := p.expect(token.Identifier)
	children = append(children, p.finishVariableDeclarator(name))
	for p.check(token.Comma) {
		p.advance()
		n, _ := p.expect(token.Identifier)
		children = append(children, p.finishVariableDeclarator(n))
	}
	return p.allocate(arena.KindLocalVarDecl, start, p.lastEnd(), children)
}

func (p *parser) parseLocalClassDecl() arena.NodeIndex {
	start := p.startPos()
	decl := p.parseTypeDecl()
	return p.allocate(arena.KindLocalClassDecl, start, p.lastEnd(), []arena.NodeIndex{decl})
}

func (p *parser) parseLabeledStmt() arena.NodeIndex {
	start := p.startPos()
	label, _ := p.expect(token.Identifier)
	p.expect(token.Colon)
	stmt := p.parseStatement()
	return p.allocateAttr(arena.KindLabeledStmt, start, p.lastEnd(), []arena.NodeIndex{stmt}, arena.LabelAttr{Name: label.Text})
}

func (p *parser) parseReturnStmt() arena.NodeIndex {
	start := p.startPos()
	p.advance() // return
	var children []arena.NodeIndex
	if !p.check(token.Semicolon) {
		children = append(children, p.parseExpression())
	}
	p.expect(token.Semicolon)
	return p.allocate(arena.KindReturnStmt, start, p.lastEnd(), children)
}

func (p *parser) parseYieldStmt() arena.NodeIndex {
	start := p.startPos()
	p.advance() // yield
	expr := p.parseExpression()
	p.expect(token.Semicolon)
	return p.allocate(arena.KindYieldStmt, start, p.lastEnd(), []arena.NodeIndex{expr})
}

func (p *parser) parseBreakStmt() arena.NodeIndex {
	start := p.startPos()
	p.advance() // break
	var attr arena.LabelAttr
	if p.isIdentifierLike() {
		t := p.advance()
		attr.Name = t.Text
	}
	p.expect(token.Semicolon)
	return p.allocateAttr(arena.KindBreakStmt, start, p.lastEnd(), nil, attr)
}

func (p *parser) parseContinueStmt() arena.NodeIndex {
	start := p.startPos()
	p.advance() // continue
	var attr arena.LabelAttr
	if p.isIdentifierLike() {
		t := p.advance()
		attr.Name = t.Text
	}
	p.expect(token.Semicolon)
	return p.allocateAttr(arena.KindContinueStmt, start, p.lastEnd(), nil, attr)
}

func (p *parser) parseThrowStmt() arena.NodeIndex {
	start := p.startPos()
	p.advance() // throw
	expr := p.parseExpression()
	p.expect(token.Semicolon)
	return p.allocate(arena.KindThrowStmt, start, p.lastEnd(), []arena.NodeIndex{expr})
}

func (p *parser) parseAssertStmt() arena.NodeIndex {
	start := p.startPos()
	p.advance() // assert
	cond := p.parseExpression()
	children := []arena.NodeIndex{cond}
	if p.check(token.Colon) {
		p.advance()
		children = append(children, p.parseExpression())
	}
	p.expect(token.Semicolon)
	return p.allocate(arena.KindAssertStmt, start, p.lastEnd(), children)
}

func (p *parser) parseSynchronizedStmt() arena.NodeIndex {
	start := p.startPos()
	p.advance() // synchronized
	p.expect(token.LParen)
	lock := p.parseExpression()
	p.expect(token.RParen)
	body := p.parseBlock()
	return p.allocate(arena.KindSynchronizedStmt, start, p.lastEnd(), []arena.NodeIndex{lock, body})
}

func (p *parser) parseExprStmt() arena.NodeIndex {
	start := p.startPos()
	expr := p.parseExpression()
	p.expect(token.Semicolon)
	return p.allocate(arena.KindExprStmt, start, p.lastEnd(), []arena.NodeIndex{expr})
}

// parseTryStmt handles plain try/catch/finally and try-with-resources,
// including multi-catch union types (spec §4.3.4).
func (p *parser) parseTryStmt() arena.NodeIndex {
	start := p.startPos()
	p.advance() // try
	var children []arena.NodeIndex
	if p.check(token.LParen) {
		children = append(children, p.parseResourceList())
	}
	children = append(children, p.parseBlock())
	for p.check(token.Catch) {
		children = append(children, p.parseCatchClause())
	}
	if p.check(token.Finally) {
		fstart := p.startPos()
		p.advance()
		body := p.parseBlock()
		children = append(children, p.allocate(arena.KindFinallyClause, fstart, p.lastEnd(), []arena.NodeIndex{body}))
	}
	return p.allocate(arena.KindTryStmt, start, p.lastEnd(), children)
}

func (p *parser) parseResourceList() arena.NodeIndex {
	start := p.startPos()
	p.expect(token.LParen)
	var children []arena.NodeIndex
	progress := p.mustProgress()
	for !p.check(token.RParen) && !p.check(token.EOF) {
		children = append(children, p.parseResource())
		if p.check(token.Semicolon) {
			p.advance()
			if p.check(token.RParen) {
				break
			}
			if !progress() {
				break
			}
			continue
		}
		break
	}
	p.expect(token.RParen)
	return p.allocate(arena.KindBlock, start, p.lastEnd(), children)
}

func (p *parser) parseResource() arena.NodeIndex {
	start := p.startPos()
	if p.looksLikeLocalVarDecl() {
		mods := p.parseModifiers()
		typ := p.parseType()
		name, _ := p.expect(token.Identifier)
		p.expect(token.Assign)
		init := p.parseExpression()
		nameNode := p.allocateAttr(arena.KindIdentifier, name.Span.Start, name.Span.End, nil, arena.IdentifierAttr{Name: name.Text})
		return p.allocate(arena.KindResource, start, p.lastEnd(), []arena.NodeIndex{mods, typ, nameNode, init})
	}
	expr := p.parseExpression()
	return p.allocate(arena.KindResource, start, p.lastEnd(), []arena.NodeIndex{expr})
}

// parseCatchClause parses `catch (Mods Type1 | Type2 name) Block`,
// representing a multi-catch union as a KindUnionType wrapping each
// alternative.
func (p *parser) parseCatchClause() arena.NodeIndex {
	start := p.startPos()
	p.advance() // catch
	p.expect(token.LParen)
	mods := p.parseModifiers()
	tstart := p.startPos()
	types := []arena.NodeIndex{p.parseType()}
	for p.check(token.BitOr) {
		p.advance()
		types = append(types, p.parseType())
	}
	var typ arena.NodeIndex
	if len(types) == 1 {
		typ = types[0]
	} else {
		typ = p.allocate(arena.KindUnionType, tstart, p.lastEnd(), types)
	}
	name, _ := p.expect(token.Identifier)
	p.expect(token.RParen)
	body := p.parseBlock()
	nameNode := p.allocateAttr(arena.KindIdentifier, name.Span.Start, name.Span.End, nil, arena.IdentifierAttr{Name: name.Text})
	return p.allocate(arena.KindCatchClause, start, p.lastEnd(), []arena.NodeIndex{mods, typ, nameNode, body})
}
