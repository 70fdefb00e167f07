package javaparser

import (
	"github.com/dhamidi/jparse/internal/arena"
	"github.com/dhamidi/jparse/internal/token"
)

// parseExpression is the full expression entry point: assignment is the
// lowest-precedence production (spec §4.3.6).
func (p *parser) parseExpression() arena.NodeIndex {
	if !p.enterRecursion() {
		return p.allocate(arena.KindError, p.startPos(), p.startPos(), nil)
	}
	defer p.exitRecursion()
	return p.parseAssignment()
}

// parseCaseExpression parses a switch-label constant expression: same
// grammar as parseConditional (assignment is not a valid case label), so
// that a trailing `:` is never mistaken for part of the expression.
func (p *parser) parseCaseExpression() arena.NodeIndex {
	if !p.enterRecursion() {
		return p.allocate(arena.KindError, p.startPos(), p.startPos(), nil)
	}
	defer p.exitRecursion()
	return p.parseConditional()
}

var assignOps = map[token.Kind]bool{
	token.Assign: true, token.PlusAssign: true, token.MinusAssign: true, token.StarAssign: true,
	token.SlashAssign: true, token.PercentAssign: true, token.AndAssign: true, token.OrAssign: true,
	token.XorAssign: true, token.ShlAssign: true, token.ShrAssign: true, token.UShrAssign: true,
}

func (p *parser) parseAssignment() arena.NodeIndex {
	if p.isLambda() {
		return p.parseLambda()
	}
	start := p.startPos()
	lhs := p.parseConditional()
	if assignOps[p.peek().Kind] {
		op := p.advance()
		rhs := p.parseAssignment()
		return p.allocateAttr(arena.KindAssignExpr, start, p.lastEnd(), []arena.NodeIndex{lhs, rhs}, arena.OperatorAttr{Operator: op.Text})
	}
	return lhs
}

// parseConditional parses the ternary `?:` operator. A lambda is
// permitted directly after the `:` (spec scenario E — `cond ? a : () ->
// b` parses the lambda as the else-branch, not as a dangling expression).
func (p *parser) parseConditional() arena.NodeIndex {
	start := p.startPos()
	cond := p.parseBinary(0)
	if !p.check(token.Question) {
		return cond
	}
	p.advance()
	thenExpr := p.parseExpression()
	p.expect(token.Colon)
	var elseExpr arena.NodeIndex
	if p.isLambda() {
		elseExpr = p.parseLambda()
	} else if p.check(token.Question) || true {
		elseExpr = p.parseConditionalOrLambdaElse()
	}
	return p.allocate(arena.KindConditionalExpr, start, p.lastEnd(), []arena.NodeIndex{cond, thenExpr, elseExpr})
}

func (p *parser) parseConditionalOrLambdaElse() arena.NodeIndex {
	return p.parseAssignment()
}

// binaryPrecedence assigns each binary operator a level: higher binds
// tighter. instanceof is folded into relational level and may be followed
// by a pattern (JDK pattern matching for instanceof).
var binaryPrecedence = []map[token.Kind]bool{
	{token.OrOr: true},
	{token.AndAnd: true},
	{token.BitOr: true},
	{token.BitXor: true},
	{token.BitAnd: true},
	{token.Eq: true, token.Ne: true},
	{token.Lt: true, token.Le: true, token.Gt: true, token.Ge: true, token.Instanceof: true},
	{token.Shl: true, token.Shr: true, token.UShr: true},
	{token.Plus: true, token.Minus: true},
	{token.Star: true, token.Slash: true, token.Percent: true},
}

func (p *parser) parseBinary(level int) arena.NodeIndex {
	if level >= len(binaryPrecedence) {
		return p.parseUnary()
	}
	start := p.startPos()
	lhs := p.parseBinary(level + 1)
	for {
		k := p.peek().Kind
		if k == token.Gt && p.isClosingAngleBracketContext() {
			break
		}
		if !binaryPrecedence[level][k] {
			break
		}
		if k == token.Instanceof {
			p.advance()
			if p.looksLikePattern() {
				pat := p.parsePattern()
				lhs = p.allocate(arena.KindInstanceofExpr, start, p.lastEnd(), []arena.NodeIndex{lhs, pat})
			} else {
				typ := p.parseType()
				lhs = p.allocate(arena.KindInstanceofExpr, start, p.lastEnd(), []arena.NodeIndex{lhs, typ})
			}
			continue
		}
		op := p.advance()
		rhs := p.parseBinary(level + 1)
		lhs = p.allocateAttr(arena.KindBinaryExpr, start, p.lastEnd(), []arena.NodeIndex{lhs, rhs}, arena.OperatorAttr{Operator: op.Text})
	}
	return lhs
}

// isClosingAngleBracketContext is a conservative hook for contexts where a
// bare `>` should never be treated as relational `>` (kept for symmetry
// with the type-argument disambiguation machinery; expression parsing
// never enters an open angle-bracket region here since parseType consumes
// its own `<...>`).
func (p *parser) isClosingAngleBracketContext() bool { return false }

var unaryOps = map[token.Kind]bool{
	token.Plus: true, token.Minus: true, token.Not: true, token.BitNot: true,
	token.Increment: true, token.Decrement: true,
}

func (p *parser) parseUnary() arena.NodeIndex {
	start := p.startPos()
	if unaryOps[p.peek().Kind] {
		op := p.advance()
		operand := p.parseUnary()
		return p.allocateAttr(arena.KindUnaryExpr, start, p.lastEnd(), []arena.NodeIndex{operand}, arena.OperatorAttr{Operator: op.Text})
	}
	if p.check(token.LParen) && p.isCast() {
		return p.parseCast()
	}
	return p.parsePostfix()
}

// isCast speculatively decides whether `(` opens a cast expression: `(`
// Type `)` followed by a token that can start a unary expression, and NOT
// an operator that would make `(Type)` a parenthesized expression instead
// (spec §4.3.6, scenario D).
func (p *parser) isCast() bool {
	save := p.pos
	defer func() { p.pos = save }()

	p.advance() // (
	if p.isPrimitiveType() {
		p.parseType()
		return p.check(token.RParen)
	}
	if !p.isIdentifierLike() {
		return false
	}
	p.parseType()
	for p.check(token.BitAnd) {
		p.advance()
		p.parseType()
	}
	if !p.check(token.RParen) {
		return false
	}
	p.advance() // )
	switch p.peek().Kind {
	case token.Identifier, token.LParen, token.This, token.Super, token.New, token.NullLiteral,
		token.TrueLiteral, token.FalseLiteral, token.IntLiteral, token.LongLiteral, token.FloatLiteral,
		token.DoubleLiteral, token.CharLiteral, token.StringLiteral, token.TextBlockLiteral,
		token.Not, token.BitNot:
		return true
	}
	return false
}

func (p *parser) parseCast() arena.NodeIndex {
	start := p.startPos()
	p.advance() // (
	types := []arena.NodeIndex{p.parseType()}
	for p.check(token.BitAnd) {
		p.advance()
		types = append(types, p.parseType())
	}
	p.expect(token.RParen)
	var typ arena.NodeIndex
	if len(types) == 1 {
		typ = types[0]
	} else {
		typ = p.allocate(arena.KindUnionType, start, p.lastEnd(), types)
	}
	operand := p.parseUnary()
	return p.allocate(arena.KindCastExpr, start, p.lastEnd(), []arena.NodeIndex{typ, operand})
}

func (p *parser) parsePostfix() arena.NodeIndex {
	start := p.startPos()
	expr := p.parsePrimary()
	progress := p.mustProgress()
	for {
		switch p.peek().Kind {
		case token.Dot:
			p.advance()
			if p.check(token.Lt) {
				p.parseTypeArguments()
			}
			if p.check(token.New) {
				expr = p.parseQualifiedObjectCreation(start, expr)
				continue
			}
			if p.check(token.This) {
				p.advance()
				expr = p.allocate(arena.KindThisExpr, start, p.lastEnd(), []arena.NodeIndex{expr})
				continue
			}
			if p.check(token.Class) {
				p.advance()
				expr = p.allocate(arena.KindClassLiteral, start, p.lastEnd(), []arena.NodeIndex{expr})
				continue
			}
			name, _ := p.expect(token.Identifier)
			nameNode := p.allocateAttr(arena.KindIdentifier, name.Span.Start, name.Span.End, nil, arena.IdentifierAttr{Name: name.Text})
			if p.check(token.LParen) {
				args := p.parseArguments()
				expr = p.allocateAttr(arena.KindMethodInvocation, start, p.lastEnd(), []arena.NodeIndex{expr, args}, arena.IdentifierAttr{Name: name.Text})
			} else {
				expr = p.allocate(arena.KindFieldAccess, start, p.lastEnd(), []arena.NodeIndex{expr, nameNode})
			}
		case token.LBracket:
			p.advance()
			idx := p.parseExpression()
			p.expect(token.RBracket)
			expr = p.allocate(arena.KindArrayAccess, start, p.lastEnd(), []arena.NodeIndex{expr, idx})
		case token.ColonColon:
			p.advance()
			var attr arena.IdentifierAttr
			if p.check(token.New) {
				p.advance()
				attr.Name = "new"
			} else {
				name, _ := p.expect(token.Identifier)
				attr.Name = name.Text
			}
			expr = p.allocateAttr(arena.KindMethodReference, start, p.lastEnd(), []arena.NodeIndex{expr}, attr)
		case token.Increment, token.Decrement:
			op := p.advance()
			expr = p.allocateAttr(arena.KindUnaryExpr, start, p.lastEnd(), []arena.NodeIndex{expr}, arena.OperatorAttr{Operator: "post" + op.Text})
		default:
			return expr
		}
		if !progress() {
			return expr
		}
	}
}

func (p *parser) parseArguments() arena.NodeIndex {
	start := p.startPos()
	p.expect(token.LParen)
	var children []arena.NodeIndex
	for !p.check(token.RParen) && !p.check(token.EOF) {
		children = append(children, p.parseExpression())
		if p.check(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RParen)
	return p.allocate(arena.KindArgumentList, start, p.lastEnd(), children)
}

func (p *parser) parsePrimary() arena.NodeIndex {
	start := p.startPos()
	switch p.peek().Kind {
	case token.IntLiteral, token.LongLiteral, token.FloatLiteral, token.DoubleLiteral,
		token.CharLiteral, token.StringLiteral, token.TextBlockLiteral,
		token.TrueLiteral, token.FalseLiteral, token.NullLiteral:
		t := p.advance()
		return p.allocateAttr(arena.KindLiteral, start, p.lastEnd(), nil, arena.LiteralAttr{Text: t.Text})
	case token.This:
		p.advance()
		if p.check(token.LParen) {
			args := p.parseArguments()
			return p.allocate(arena.KindMethodInvocation, start, p.lastEnd(), []arena.NodeIndex{args})
		}
		return p.allocate(arena.KindThisExpr, start, p.lastEnd(), nil)
	case token.Super:
		p.advance()
		if p.check(token.Dot) {
			p.advance()
			name, _ := p.expect(token.Identifier)
			base := p.allocate(arena.KindSuperExpr, start, p.lastEnd(), nil)
			if p.check(token.LParen) {
				args := p.parseArguments()
				return p.allocateAttr(arena.KindMethodInvocation, start, p.lastEnd(), []arena.NodeIndex{base, args}, arena.IdentifierAttr{Name: name.Text})
			}
			nameNode := p.allocateAttr(arena.KindIdentifier, name.Span.Start, name.Span.End, nil, arena.IdentifierAttr{Name: name.Text})
			return p.allocate(arena.KindFieldAccess, start, p.lastEnd(), []arena.NodeIndex{base, nameNode})
		}
		if p.check(token.ColonColon) {
			p.advance()
			name, _ := p.expect(token.Identifier)
			base := p.allocate(arena.KindSuperExpr, start, p.lastEnd(), nil)
			return p.allocateAttr(arena.KindMethodReference, start, p.lastEnd(), []arena.NodeIndex{base}, arena.IdentifierAttr{Name: name.Text})
		}
		return p.allocate(arena.KindSuperExpr, start, p.lastEnd(), nil)
	case token.New:
		return p.parseObjectOrArrayCreation()
	case token.LParen:
		return p.parseParenOrLambda()
	case token.Switch:
		return p.parseSwitchExpr()
	case token.Identifier:
		return p.parseIdentifierPrimary()
	case token.Boolean, token.Byte, token.Char, token.Short, token.Int, token.Long, token.Float, token.Double, token.Void:
		return p.parseTypeOrClassLiteral()
	default:
		return p.errorNode("expected expression", token.Semicolon, token.RParen, token.RBrace, token.Comma)
	}
}

// parseIdentifierPrimary handles a bare identifier, a qualified name,
// method invocation, method reference, or (inside parsePostfix's dot
// loop) the start of a longer chain. Single-identifier lambda parameters
// are handled earlier in isLambda/parseLambda.
func (p *parser) parseIdentifierPrimary() arena.NodeIndex {
	start := p.startPos()
	name, _ := p.expect(token.Identifier)
	if p.check(token.LParen) {
		args := p.parseArguments()
		return p.allocateAttr(arena.KindMethodInvocation, start, p.lastEnd(), []arena.NodeIndex{args}, arena.IdentifierAttr{Name: name.Text})
	}
	if p.check(token.ColonColon) {
		p.advance()
		var attr arena.IdentifierAttr
		if p.check(token.New) {
			p.advance()
			attr.Name = "new"
		} else {
			m, _ := p.expect(token.Identifier)
			attr.Name = m.Text
		}
		base := p.allocateAttr(arena.KindIdentifier, start, name.Span.End, nil, arena.IdentifierAttr{Name: name.Text})
		return p.allocateAttr(arena.KindMethodReference, start, p.lastEnd(), []arena.NodeIndex{base}, attr)
	}
	return p.allocateAttr(arena.KindIdentifier, start, p.lastEnd(), nil, arena.IdentifierAttr{Name: name.Text})
}

// parseTypeOrClassLiteral handles `int.class`, `int[].class` and the
// primitive-array-creation form `new int[...]` is routed separately.
func (p *parser) parseTypeOrClassLiteral() arena.NodeIndex {
	start := p.startPos()
	typ := p.parseType()
	p.expect(token.Dot)
	p.expect(token.Class)
	return p.allocate(arena.KindClassLiteral, start, p.lastEnd(), []arena.NodeIndex{typ})
}

func (p *parser) parseParenOrLambda() arena.NodeIndex {
	start := p.startPos()
	p.advance() // (
	expr := p.parseExpression()
	p.expect(token.RParen)
	return p.allocate(arena.KindParenExpr, start, p.lastEnd(), []arena.NodeIndex{expr})
}

// parseObjectOrArrayCreation parses `new Type(args) [ClassBody]?` or
// `new Type[dims]... [ArrayInitializer]?`.
func (p *parser) parseObjectOrArrayCreation() arena.NodeIndex {
	start := p.startPos()
	p.advance() // new
	if p.check(token.Lt) {
		p.parseTypeParameters()
	}
	typ := p.parseBaseTypeForCreation()
	if p.check(token.LBracket) {
		return p.finishArrayCreation(start, typ)
	}
	args := p.parseArguments()
	children := []arena.NodeIndex{typ, args}
	if p.check(token.LBrace) {
		children = append(children, p.parseClassBody()...)
	}
	return p.allocate(arena.KindObjectCreation, start, p.lastEnd(), children)
}

func (p *parser) parseQualifiedObjectCreation(start token.Position, outer arena.NodeIndex) arena.NodeIndex {
	p.advance() // new
	if p.check(token.Lt) {
		p.parseTypeParameters()
	}
	typ := p.parseBaseTypeForCreation()
	args := p.parseArguments()
	children := []arena.NodeIndex{outer, typ, args}
	if p.check(token.LBrace) {
		children = append(children, p.parseClassBody()...)
	}
	return p.allocate(arena.KindObjectCreation, start, p.lastEnd(), children)
}

// parseBaseTypeForCreation parses the type named after `new`, without
// consuming a trailing `[]` array-dimension suffix (that belongs to
// finishArrayCreation, which needs the dimension expressions, not just
// empty brackets).
func (p *parser) parseBaseTypeForCreation() arena.NodeIndex {
	start := p.startPos()
	if p.isPrimitiveType() {
		t := p.advance()
		return p.allocateAttr(arena.KindPrimitiveType, start, p.lastEnd(), nil, arena.IdentifierAttr{Name: t.Kind.String()})
	}
	return p.parseQualifiedOrParameterizedType(start, nil)
}

func (p *parser) finishArrayCreation(start token.Position, typ arena.NodeIndex) arena.NodeIndex {
	children := []arena.NodeIndex{typ}
	hasExpr := false
	for p.check(token.LBracket) {
		p.advance()
		if !p.check(token.RBracket) {
			children = append(children, p.parseExpression())
			hasExpr = true
		}
		p.expect(token.RBracket)
	}
	if !hasExpr && p.check(token.LBrace) {
		children = append(children, p.parseArrayInitializer())
	}
	return p.allocate(arena.KindArrayCreation, start, p.lastEnd(), children)
}

// isLambda speculatively decides whether the current position begins a
// lambda expression: `identifier ->`, `() ->`, or `(params) ->` (spec
// §4.3.6, scenario B — a single untyped identifier followed by `->`).
func (p *parser) isLambda() bool {
	if p.isIdentifierLike() && p.peekNKind(1) == token.Arrow {
		return true
	}
	if !p.check(token.LParen) {
		return false
	}
	save := p.pos
	defer func() { p.pos = save }()
	p.advance() // (
	depth := 1
	progress := p.mustProgress()
	for depth > 0 {
		switch p.peek().Kind {
		case token.EOF:
			return false
		case token.LParen:
			depth++
			p.advance()
		case token.RParen:
			depth--
			p.advance()
		default:
			p.advance()
		}
		if !progress() {
			return false
		}
	}
	return p.check(token.Arrow)
}

func (p *parser) parseLambda() arena.NodeIndex {
	start := p.startPos()
	params := p.parseLambdaParams()
	p.expect(token.Arrow)
	var body arena.NodeIndex
	if p.check(token.LBrace) {
		body = p.parseBlock()
	} else {
		body = p.parseExpression()
	}
	return p.allocate(arena.KindLambdaExpr, start, p.lastEnd(), []arena.NodeIndex{params, body})
}

func (p *parser) parseLambdaParams() arena.NodeIndex {
	start := p.startPos()
	if p.isIdentifierLike() {
		name := p.advance()
		param := p.allocateAttr(arena.KindParameter, name.Span.Start, name.Span.End, nil, arena.ParameterAttr{Name: name.Text})
		return p.allocate(arena.KindParameters, start, p.lastEnd(), []arena.NodeIndex{param})
	}
	p.expect(token.LParen)
	var children []arena.NodeIndex
	for !p.check(token.RParen) && !p.check(token.EOF) {
		children = append(children, p.parseLambdaParam())
		if p.check(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RParen)
	return p.allocate(arena.KindParameters, start, p.lastEnd(), children)
}

// parseLambdaParam parses one lambda parameter: untyped (bare
// identifier, possibly `var`), or explicitly typed like an ordinary
// method parameter.
func (p *parser) parseLambdaParam() arena.NodeIndex {
	start := p.startPos()
	if p.contextualTextIs("var") {
		p.advance()
		name, _ := p.expect(token.Identifier)
		return p.allocateAttr(arena.KindParameter, start, p.lastEnd(), nil, arena.ParameterAttr{Name: name.Text})
	}
	if p.isIdentifierLike() && (p.peekNKind(1) == token.Comma || p.peekNKind(1) == token.RParen) {
		name := p.advance()
		return p.allocateAttr(arena.KindParameter, start, p.lastEnd(), nil, arena.ParameterAttr{Name: name.Text})
	}
	return p.parseParameter()
}
