package javaparser

import (
	"github.com/dhamidi/jparse/internal/arena"
	"github.com/dhamidi/jparse/internal/token"
)

// parseSwitchStmt and parseSwitchExpr share one body-parsing routine that
// walks a small state machine over each case group: a label (one or more
// `case ...:`/`case ... ->` or `default`), followed by either an arrow
// right-hand-side (a single expression, block, or throw statement) or a
// colon body (a fall-through statement list), repeating until `}` (spec
// §4.3.5).

func (p *parser) parseSwitchStmt() arena.NodeIndex {
	start := p.startPos()
	p.advance() // switch
	p.expect(token.LParen)
	selector := p.parseExpression()
	p.expect(token.RParen)
	children := append([]arena.NodeIndex{selector}, p.parseSwitchBody(false)...)
	return p.allocate(arena.KindSwitchStmt, start, p.lastEnd(), children)
}

func (p *parser) parseSwitchExpr() arena.NodeIndex {
	start := p.startPos()
	p.advance() // switch
	p.expect(token.LParen)
	selector := p.parseExpression()
	p.expect(token.RParen)
	p.inSwitchExpr++
	children := append([]arena.NodeIndex{selector}, p.parseSwitchBody(true)...)
	p.inSwitchExpr--
	return p.allocate(arena.KindSwitchExpr, start, p.lastEnd(), children)
}

func (p *parser) parseSwitchBody(isExpr bool) []arena.NodeIndex {
	p.expect(token.LBrace)
	var cases []arena.NodeIndex
	progress := p.mustProgress()
	for !p.check(token.RBrace) && !p.check(token.EOF) {
		cases = append(cases, p.parseSwitchCase(isExpr))
		if !progress() {
			break
		}
	}
	p.expect(token.RBrace)
	return cases
}

// parseSwitchCase parses one label (possibly comma-separated pattern or
// constant labels with an optional `when` guard) and its body.
func (p *parser) parseSwitchCase(isExpr bool) arena.NodeIndex {
	start := p.startPos()
	label := p.parseSwitchLabel()

	if p.check(token.Arrow) {
		p.advance()
		var rhs arena.NodeIndex
		switch {
		case p.check(token.LBrace):
			rhs = p.parseBlock()
		case p.check(token.Throw):
			rhs = p.parseThrowStmt()
		default:
			expr := p.parseExpression()
			p.expect(token.Semicolon)
			rhs = p.allocate(arena.KindExprStmt, p.arenaStart(expr), p.lastEnd(), []arena.NodeIndex{expr})
		}
		return p.allocate(arena.KindSwitchCase, start, p.lastEnd(), []arena.NodeIndex{label, rhs})
	}

	p.expect(token.Colon)
	children := []arena.NodeIndex{label}
	progress := p.mustProgress()
	for !p.isSwitchCaseBoundary() {
		children = append(children, p.parseStatement())
		if !progress() {
			break
		}
	}
	return p.allocate(arena.KindSwitchCase, start, p.lastEnd(), children)
}

func (p *parser) isSwitchCaseBoundary() bool {
	return p.check(token.Case) || p.check(token.Default) || p.check(token.RBrace) || p.check(token.EOF)
}

// parseSwitchLabel parses `case <pattern-or-expr-list> [when guard]` or
// `default`, or the `case null[, default]` label.
func (p *parser) parseSwitchLabel() arena.NodeIndex {
	start := p.startPos()
	if p.check(token.Default) {
		p.advance()
		return p.allocate(arena.KindSwitchLabel, start, p.lastEnd(), nil)
	}
	p.expect(token.Case)
	if p.check(token.NullLiteral) {
		t := p.advance()
		children := []arena.NodeIndex{p.allocateAttr(arena.KindLiteral, t.Span.Start, t.Span.End, nil, arena.LiteralAttr{Text: t.Text})}
		if p.check(token.Comma) {
			p.advance()
			p.expect(token.Default)
		}
		return p.allocate(arena.KindSwitchLabel, start, p.lastEnd(), children)
	}
	var children []arena.NodeIndex
	if p.looksLikePattern() {
		children = append(children, p.parsePattern())
	} else {
		children = append(children, p.parseCaseExpression())
		for p.check(token.Comma) {
			p.advance()
			children = append(children, p.parseCaseExpression())
		}
	}
	if p.contextualTextIs("when") {
		p.advance()
		guardStart := p.startPos()
		guard := p.parseExpression()
		children = append(children, p.allocate(arena.KindGuard, guardStart, p.lastEnd(), []arena.NodeIndex{guard}))
	}
	return p.allocate(arena.KindSwitchLabel, start, p.lastEnd(), children)
}
