package javaparser

import (
	"github.com/dhamidi/jparse/internal/arena"
	"github.com/dhamidi/jparse/internal/token"
)

func (p *parser) parseClassDecl(mods arena.NodeIndex) arena.NodeIndex {
	start := p.arenaStartOrCurrent(mods)
	p.advance() // class
	name, _ := p.expect(token.Identifier)
	children := []arena.NodeIndex{mods}
	if p.check(token.Lt) {
		children = append(children, p.parseTypeParameters())
	}
	if p.check(token.Extends) {
		children = append(children, p.parseExtendsClause())
	}
	if p.check(token.Implements) {
		children = append(children, p.parseImplementsClause())
	}
	if p.contextualTextIs("permits") {
		children = append(children, p.parsePermitsClause())
	}
	children = append(children, p.parseClassBody()...)
	return p.allocateAttr(arena.KindClassDecl, start, p.lastEnd(), children, arena.TypeNameAttr{Name: name.Text})
}

func (p *parser) parseInterfaceDecl(mods arena.NodeIndex) arena.NodeIndex {
	start := p.arenaStartOrCurrent(mods)
	p.advance() // interface
	name, _ := p.expect(token.Identifier)
	children := []arena.NodeIndex{mods}
	if p.check(token.Lt) {
		children = append(children, p.parseTypeParameters())
	}
	if p.check(token.Extends) {
		children = append(children, p.parseExtendsClause())
	}
	if p.contextualTextIs("permits") {
		children = append(children, p.parsePermitsClause())
	}
	children = append(children, p.parseClassBody()...)
	return p.allocateAttr(arena.KindInterfaceDecl, start, p.lastEnd(), children, arena.TypeNameAttr{Name: name.Text})
}

func (p *parser) parseAnnotationDecl(mods arena.NodeIndex) arena.NodeIndex {
	start := p.arenaStartOrCurrent(mods)
	p.advance() // @
	p.advance() // interface
	name, _ := p.expect(token.Identifier)
	children := []arena.NodeIndex{mods}
	children = append(children, p.parseClassBody()...)
	return p.allocateAttr(arena.KindAnnotationDecl, start, p.lastEnd(), children, arena.TypeNameAttr{Name: name.Text})
}

func (p *parser) parseEnumDecl(mods arena.NodeIndex) arena.NodeIndex {
	start := p.arenaStartOrCurrent(mods)
	p.advance() // enum
	name, _ := p.expect(token.Identifier)
	children := []arena.NodeIndex{mods}
	if p.check(token.Implements) {
		children = append(children, p.parseImplementsClause())
	}
	p.expect(token.LBrace)
	progress := p.mustProgress()
	for p.isIdentifierLike() || p.check(token.At) {
		children = append(children, p.parseEnumConstant())
		if p.check(token.Comma) {
			p.advance()
			if !progress() {
				break
			}
			continue
		}
		break
	}
	if p.check(token.Semicolon) {
		p.advance()
		for !p.check(token.RBrace) && !p.check(token.EOF) {
			children = append(children, p.parseClassMember())
			if !progress() {
				break
			}
		}
	}
	p.expect(token.RBrace)
	return p.allocateAttr(arena.KindEnumDecl, start, p.lastEnd(), children, arena.TypeNameAttr{Name: name.Text})
}

func (p *parser) parseEnumConstant() arena.NodeIndex {
	start := p.startPos()
	var annotations []arena.NodeIndex
	for p.check(token.At) {
		annotations = append(annotations, p.parseAnnotation())
	}
	name, _ := p.expect(token.Identifier)
	children := annotations
	if p.check(token.LParen) {
		children = append(children, p.parseArguments())
	}
	if p.check(token.LBrace) {
		children = append(children, p.parseClassBody()...)
	}
	return p.allocateAttr(arena.KindEnumConstant, start, p.lastEnd(), children, arena.TypeNameAttr{Name: name.Text})
}

func (p *parser) parseRecordDecl(mods arena.NodeIndex) arena.NodeIndex {
	start := p.arenaStartOrCurrent(mods)
	p.advance() // record
	name, _ := p.expect(token.Identifier)
	children := []arena.NodeIndex{mods}
	if p.check(token.Lt) {
		children = append(children, p.parseTypeParameters())
	}
	children = append(children, p.parseParameters())
	if p.check(token.Implements) {
		children = append(children, p.parseImplementsClause())
	}
	children = append(children, p.parseClassBody()...)
	return p.allocateAttr(arena.KindRecordDecl, start, p.lastEnd(), children, arena.TypeNameAttr{Name: name.Text})
}

func (p *parser) arenaStartOrCurrent(i arena.NodeIndex) token.Position {
	n := p.arena.Get(i)
	if n.Start == 0 && n.End == 0 {
		return p.startPos()
	}
	return token.Position{Offset: n.Start}
}

func (p *parser) parseClassBody() []arena.NodeIndex {
	p.expect(token.LBrace)
	var members []arena.NodeIndex
	p.collectLeadingComments(&members)
	progress := p.mustProgress()
	for !p.check(token.RBrace) && !p.check(token.EOF) {
		if p.check(token.Semicolon) {
			p.advance()
			p.collectLeadingComments(&members)
			if !progress() {
				break
			}
			continue
		}
		members = append(members, p.parseClassMember())
		p.collectLeadingComments(&members)
		if !progress() {
			break
		}
	}
	p.expect(token.RBrace)
	return members
}

// parseClassMember dispatches a member: nested type, static/instance
// initializer block, constructor, compact constructor, field, or method.
func (p *parser) parseClassMember() arena.NodeIndex {
	if p.startsTypeDecl() {
		return p.parseTypeDecl()
	}
	mods := p.parseModifiers()

	if p.check(token.LBrace) {
		start := p.arenaStartOrCurrent(mods)
		isStatic := modifiersHave(p, mods, "static")
		block := p.parseBlock()
		kind := arena.KindInstanceInitializer
		if isStatic {
			kind = arena.KindStaticInitializer
		}
		return p.allocate(kind, start, p.lastEnd(), []arena.NodeIndex{mods, block})
	}

	if p.startsTypeDecl() {
		return p.parseTypeDeclWithMods(mods)
	}

	// Constructor / compact constructor: Identifier( or Identifier{ followed
	// by a body, with the identifier equal to... we can't check equality to
	// enclosing class name without extra context, so any
	// `Identifier (` at this position followed by a body is treated as a
	// constructor (the only other grammar form here, method, requires a
	// return type before the name).
	if p.isIdentifierLike() && p.peekNKind(1) == token.LParen {
		return p.parseConstructor(mods)
	}
	if p.isIdentifierLike() && p.peekNKind(1) == token.LBrace {
		return p.parseCompactConstructor(mods)
	}
	if p.check(token.Lt) {
		return p.parseGenericMethod(mods)
	}

	return p.parseFieldOrMethod(mods)
}

func (p *parser) parseTypeDeclWithMods(mods arena.NodeIndex) arena.NodeIndex {
	switch {
	case p.check(token.Class):
		return p.parseClassDecl(mods)
	case p.check(token.Interface):
		return p.parseInterfaceDecl(mods)
	case p.check(token.Enum):
		return p.parseEnumDecl(mods)
	case p.isAnnotationTypeDecl():
		return p.parseAnnotationDecl(mods)
	case p.contextualTextIs("record"):
		return p.parseRecordDecl(mods)
	default:
		return p.errorNode("expected nested type declaration", token.Semicolon, token.RBrace)
	}
}

func modifiersHave(p *parser, mods arena.NodeIndex, word string) bool {
	attr, _ := p.arena.Attribute(mods)
	m, ok := attr.(arena.ModifiersAttr)
	if !ok {
		return false
	}
	for _, w := range m.Keywords {
		if w == word {
			return true
		}
	}
	return false
}

func (p *parser) parseGenericMethod(mods arena.NodeIndex) arena.NodeIndex {
	start := p.arenaStartOrCurrent(mods)
	typeParams := p.parseTypeParameters()
	if p.isIdentifierLike() && p.peekNKind(1) == token.LParen {
		return p.finishConstructor(mods, typeParams, start)
	}
	return p.finishMethod(mods, typeParams, start)
}

func (p *parser) parseConstructor(mods arena.NodeIndex) arena.NodeIndex {
	return p.finishConstructor(mods, 0, p.arenaStartOrCurrent(mods))
}

func (p *parser) finishConstructor(mods, typeParams arena.NodeIndex, start token.Position) arena.NodeIndex {
	name, _ := p.expect(token.Identifier)
	children := []arena.NodeIndex{mods}
	if typeParams != 0 {
		children = append(children, typeParams)
	}
	children = append(children, p.parseParameters())
	if p.check(token.Throws) {
		children = append(children, p.parseThrowsList())
	}
	children = append(children, p.parseConstructorBody())
	return p.allocateAttr(arena.KindConstructorDecl, start, p.lastEnd(), children, arena.TypeNameAttr{Name: name.Text})
}

func (p *parser) parseCompactConstructor(mods arena.NodeIndex) arena.NodeIndex {
	start := p.arenaStartOrCurrent(mods)
	name, _ := p.expect(token.Identifier)
	children := []arena.NodeIndex{mods, p.parseConstructorBody()}
	return p.allocateAttr(arena.KindCompactConstructorDecl, start, p.lastEnd(), children, arena.TypeNameAttr{Name: name.Text})
}

// parseConstructorBody parses a constructor block allowing flexible
// constructor bodies (JEP 513, JDK 25): prologue statements are permitted
// before an explicit this(...)/super(...) invocation, which then appears
// as an ordinary statement within the block rather than as a mandatory
// first child (spec scenario F).
func (p *parser) parseConstructorBody() arena.NodeIndex {
	start := p.startPos()
	p.expect(token.LBrace)
	var children []arena.NodeIndex
	p.collectLeadingComments(&children)
	progress := p.mustProgress()
	for !p.check(token.RBrace) && !p.check(token.EOF) {
		if p.isExplicitConstructorInvocation() {
			children = append(children, p.parseExplicitConstructorInvocation())
		} else {
			children = append(children, p.parseStatement())
		}
		p.collectLeadingComments(&children)
		if !progress() {
			break
		}
	}
	p.expect(token.RBrace)
	return p.allocate(arena.KindBlock, start, p.lastEnd(), children)
}

func (p *parser) isExplicitConstructorInvocation() bool {
	if (p.check(token.This) || p.check(token.Super)) && p.peekNKind(1) == token.LParen {
		return true
	}
	// qualified super invocation: Outer.this.super(...) / expr.super(...)
	if p.isQualifiedSuperInvocation() {
		return true
	}
	return false
}

func (p *parser) isQualifiedSuperInvocation() bool {
	if !p.isIdentifierLike() {
		return false
	}
	save := p.pos
	defer func() { p.pos = save }()
	for p.isIdentifierLike() {
		p.advance()
		if p.check(token.Dot) {
			p.advance()
			continue
		}
		break
	}
	return p.check(token.Super) && p.peekNKind(1) == token.LParen
}

func (p *parser) parseExplicitConstructorInvocation() arena.NodeIndex {
	start := p.startPos()
	var qualifier arena.NodeIndex
	if !p.check(token.This) && !p.check(token.Super) {
		qualifier, _ = p.parseQualifiedName()
		p.expect(token.Dot)
	}
	isSuper := p.check(token.Super)
	p.advance() // this / super
	args := p.parseArguments()
	p.expect(token.Semicolon)
	children := []arena.NodeIndex{args}
	if qualifier != 0 {
		children = append([]arena.NodeIndex{qualifier}, children...)
	}
	attr := arena.IdentifierAttr{Name: "this"}
	if isSuper {
		attr = arena.IdentifierAttr{Name: "super"}
	}
	return p.allocateAttr(arena.KindExplicitConstructorInvocation, start, p.lastEnd(), children, attr)
}

// parseFieldOrMethod parses a declaration headed by a type: either a
// method (Type name(params) ...) or a field (Type name(=init)?(,name...)?;).
func (p *parser) parseFieldOrMethod(mods arena.NodeIndex) arena.NodeIndex {
	start := p.arenaStartOrCurrent(mods)
	typ := p.parseType()
	name, _ := p.expect(token.Identifier)
	if p.check(token.LParen) {
		return p.finishMethodAfterName(mods, 0, typ, name, start)
	}
	return p.finishField(mods, typ, name, start)
}

func (p *parser) finishMethod(mods, typeParams arena.NodeIndex, start token.Position) arena.NodeIndex {
	typ := p.parseType()
	name, _ := p.expect(token.Identifier)
	return p.finishMethodAfterName(mods, typeParams, typ, name, start)
}

func (p *parser) finishMethodAfterName(mods, typeParams arena.NodeIndex, typ arena.NodeIndex, name token.Token, start token.Position) arena.NodeIndex {
	children := []arena.NodeIndex{mods}
	if typeParams != 0 {
		children = append(children, typeParams)
	}
	children = append(children, typ, p.parseParameters())
	for p.check(token.LBracket) && p.peekNKind(1) == token.RBracket {
		p.advance()
		p.advance()
	}
	if p.check(token.Throws) {
		children = append(children, p.parseThrowsList())
	}
	if p.check(token.Default) {
		// annotation element default value
		p.advance()
		children = append(children, p.parseAnnotationValue())
	}
	if p.check(token.LBrace) {
		children = append(children, p.parseBlock())
	} else {
		p.expect(token.Semicolon)
	}
	return p.allocateAttr(arena.KindMethodDecl, start, p.lastEnd(), children, arena.TypeNameAttr{Name: name.Text})
}

func (p *parser) finishField(mods, typ arena.NodeIndex, name token.Token, start token.Position) arena.NodeIndex {
	children := []arena.NodeIndex{mods, typ}
	children = append(children, p.finishVariableDeclarator(name))
	for p.check(token.Comma) {
		p.advance()
		n, _ := p.expect(token.Identifier)
		children = append(children, p.finishVariableDeclarator(n))
	}
	p.expect(token.Semicolon)
	return p.allocate(arena.KindFieldDecl, start, p.lastEnd(), children)
}

func (p *parser) finishVariableDeclarator(name token.Token) arena.NodeIndex {
	start := name.Span.Start
	for p.check(token.LBracket) && p.peekNKind(1) == token.RBracket {
		p.advance()
		p.advance()
	}
	var children []arena.NodeIndex
	if p.check(token.Assign) {
		p.advance()
		children = append(children, p.parseVarInitializer())
	}
	return p.allocateAttr(arena.KindVariableDeclarator, start, p.lastEnd(), children, arena.IdentifierAttr{Name: name.Text})
}

func (p *parser) parseVarInitializer() arena.NodeIndex {
	if p.check(token.LBrace) {
		return p.parseArrayInitializer()
	}
	return p.parseExpression()
}

func (p *parser) parseArrayInitializer() arena.NodeIndex {
	start := p.startPos()
	p.expect(token.LBrace)
	var children []arena.NodeIndex
	progress := p.mustProgress()
	for !p.check(token.RBrace) && !p.check(token.EOF) {
		children = append(children, p.parseVarInitializer())
		if p.check(token.Comma) {
			p.advance()
			if !progress() {
				break
			}
			continue
		}
		break
	}
	p.expect(token.RBrace)
	return p.allocate(arena.KindArrayInitializer, start, p.lastEnd(), children)
}

func (p *parser) parseThrowsList() arena.NodeIndex {
	start := p.startPos()
	p.advance() // throws
	var children []arena.NodeIndex
	children = append(children, p.parseType())
	for p.check(token.Comma) {
		p.advance()
		children = append(children, p.parseType())
	}
	return p.allocate(arena.KindThrowsList, start, p.lastEnd(), children)
}

func (p *parser) parseParameters() arena.NodeIndex {
	start := p.startPos()
	p.expect(token.LParen)
	var children []arena.NodeIndex
	if p.isReceiverParameter() {
		children = append(children, p.parseReceiverParameter())
		if p.check(token.Comma) {
			p.advance()
		}
	}
	for !p.check(token.RParen) && !p.check(token.EOF) {
		children = append(children, p.parseParameter())
		if p.check(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RParen)
	return p.allocate(arena.KindParameters, start, p.lastEnd(), children)
}

func (p *parser) isReceiverParameter() bool {
	save := p.pos
	defer func() { p.pos = save }()
	for p.check(token.At) {
		p.parseAnnotation()
	}
	if !p.isPrimitiveType() && !p.isIdentifierLike() {
		return false
	}
	p.parseType()
	if p.check(token.This) {
		return true
	}
	if p.isIdentifierLike() && p.peekNKind(1) == token.Dot {
		for p.isIdentifierLike() && p.peekNKind(1) == token.Dot {
			p.advance()
			p.advance()
		}
		return p.check(token.This)
	}
	return false
}

func (p *parser) parseReceiverParameter() arena.NodeIndex {
	start := p.startPos()
	typ := p.parseType()
	var qualifier string
	for p.isIdentifierLike() && p.peekNKind(1) == token.Dot {
		id := p.advance()
		p.advance()
		qualifier += id.Text + "."
	}
	p.expect(token.This)
	return p.allocateAttr(arena.KindReceiverParameter, start, p.lastEnd(), []arena.NodeIndex{typ},
		arena.ParameterAttr{Name: qualifier + "this", IsReceiver: true})
}

func (p *parser) parseParameter() arena.NodeIndex {
	start := p.startPos()
	var children []arena.NodeIndex
	isFinal := false
	for p.check(token.At) || p.check(token.Final) {
		if p.check(token.Final) {
			isFinal = true
			p.advance()
			continue
		}
		children = append(children, p.parseAnnotation())
	}
	children = append(children, p.parseType())
	isVarargs := false
	if p.check(token.Ellipsis) {
		isVarargs = true
		p.advance()
	}
	name, _ := p.expect(token.Identifier)
	for p.check(token.LBracket) && p.peekNKind(1) == token.RBracket {
		p.advance()
		p.advance()
	}
	return p.allocateAttr(arena.KindParameter, start, p.lastEnd(), children,
		arena.ParameterAttr{Name: name.Text, IsVarargs: isVarargs, IsFinal: isFinal})
}
