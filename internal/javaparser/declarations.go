package javaparser

import (
	"github.com/dhamidi/jparse/internal/arena"
	"github.com/dhamidi/jparse/internal/token"
)

// parseCompilationUnit is the grammar's entry production (spec §4.3.1).
// It allocates the compilation-unit node last, satisfying invariant 4
// (the root is always the last-allocated, highest-indexed node).
func (p *parser) parseCompilationUnit() (arena.NodeIndex, bool) {
	start := p.startPos()
	var children []arena.NodeIndex

	p.collectLeadingComments(&children)

	if pkg, ok := p.tryParsePackageDecl(); ok {
		children = append(children, pkg)
		p.collectLeadingComments(&children)
	}

	for p.check(token.Import) {
		children = append(children, p.parseImportDecl())
		p.collectLeadingComments(&children)
	}

	switch {
	case p.isModuleDecl():
		children = append(children, p.parseModuleDecl())
	case p.cfg.languageLevel >= 25 && p.isImplicitCompilationUnit():
		implicitStart := p.startPos()
		var members []arena.NodeIndex
		progress := p.mustProgress()
		for !p.check(token.EOF) {
			members = append(members, p.parseClassMember())
			if !progress() {
				break
			}
		}
		children = append(children, p.allocate(arena.KindImplicitClassDecl, implicitStart, p.lastEnd(), members))
	default:
		progress := p.mustProgress()
		for !p.check(token.EOF) {
			if p.check(token.Semicolon) {
				p.advance()
				if !progress() {
					break
				}
				continue
			}
			children = append(children, p.parseTypeDecl())
			if !progress() {
				break
			}
		}
	}

	if p.fatal != nil {
		return 0, false
	}
	end := p.lastEnd()
	if len(p.tokens) > 0 {
		end = p.tokens[len(p.tokens)-1].Span.End
	}
	return p.allocate(arena.KindCompilationUnit, start, end, children), true
}

func (p *parser) collectLeadingComments(children *[]arena.NodeIndex) {
	for p.pos < len(p.tokens) && p.tokens[p.pos].IsTrivia() {
		if p.tokens[p.pos].IsComment() {
			*children = append(*children, p.allocateComment(p.tokens[p.pos]))
		}
		p.pos++
	}
}

func (p *parser) allocateComment(t token.Token) arena.NodeIndex {
	kind := arena.KindLineComment
	switch t.Kind {
	case token.Comment:
		kind = arena.KindBlockComment
	case token.JavadocComment:
		kind = arena.KindJavadocComment
	}
	if kind == arena.KindJavadocComment {
		return p.allocateAttr(kind, t.Span.Start, t.Span.End, nil, parseJavadocAttr(t.Text))
	}
	return p.allocate(kind, t.Span.Start, t.Span.End, nil)
}

// isImplicitCompilationUnit detects a JEP 512 implicit top-level class: a
// compilation unit consisting of top-level members (fields/methods) with
// no enclosing class declaration, signalled by not matching a type
// declaration start.
func (p *parser) isImplicitCompilationUnit() bool {
	if p.check(token.EOF) {
		return false
	}
	return !p.startsTypeDecl()
}

func (p *parser) startsTypeDecl() bool {
	save := p.pos
	defer func() { p.pos = save }()
	for {
		if p.check(token.At) && !p.isAnnotationTypeDecl() {
			p.skipAnnotation()
		} else if p.matchModifierKeyword() {
			p.advance()
		} else {
			break
		}
	}
	switch p.peek().Kind {
	case token.Class, token.Interface, token.Enum, token.At:
		return true
	}
	return p.contextualTextIs("record") && p.peekNKind(1) == token.Identifier
}

func (p *parser) peekNKind(n int) token.Kind { return p.peekN(n).Kind }

func (p *parser) isAnnotationTypeDecl() bool {
	return p.check(token.At) && p.peekNKind(1) == token.Interface
}

func (p *parser) tryParsePackageDecl() (arena.NodeIndex, bool) {
	save := p.pos
	var annotations []arena.NodeIndex
	for p.check(token.At) && !p.isAnnotationTypeDecl() {
		annotations = append(annotations, p.parseAnnotation())
	}
	if !p.check(token.Package) {
		p.pos = save
		return 0, false
	}
	start := p.startPos()
	if len(annotations) > 0 {
		start = p.arenaStart(annotations[0])
	}
	p.advance()
	name, _ := p.parseQualifiedName()
	p.expect(token.Semicolon)
	children := append(annotations, name)
	return p.allocateAttr(arena.KindPackageDecl, start, p.lastEnd(), children, arena.PackageAttr{Name: p.qualifiedNameText(name)}), true
}

func (p *parser) arenaStart(i arena.NodeIndex) token.Position {
	n := p.arena.Get(i)
	return token.Position{Offset: n.Start}
}

// qualifiedNameText recovers the dotted text of a previously-allocated
// qualified-name/identifier node from its attribute.
func (p *parser) qualifiedNameText(i arena.NodeIndex) string {
	attr, _ := p.arena.Attribute(i)
	if a, ok := attr.(arena.IdentifierAttr); ok {
		return a.Name
	}
	return ""
}

func (p *parser) parseQualifiedName() (arena.NodeIndex, string) {
	start := p.startPos()
	first, ok := p.expect(token.Identifier)
	if !ok {
		return p.errorNode("expected identifier", token.Semicolon), ""
	}
	text := first.Text
	for p.check(token.Dot) && p.peekNKind(1) == token.Identifier {
		p.advance()
		id, _ := p.expect(token.Identifier)
		text += "." + id.Text
	}
	kind := arena.KindIdentifier
	if len(text) > len(first.Text) {
		kind = arena.KindQualifiedName
	}
	return p.allocateAttr(kind, start, p.lastEnd(), nil, arena.IdentifierAttr{Name: text}), text
}

func (p *parser) parseImportDecl() arena.NodeIndex {
	start := p.startPos()
	p.advance() // import
	isModule := p.cfg.languageLevel >= 25 && p.contextualTextIs("module") && p.peekNKind(1) == token.Identifier
	if isModule {
		p.advance()
		_, name := p.parseQualifiedName()
		p.expect(token.Semicolon)
		return p.allocateAttr(arena.KindModuleImportDecl, start, p.lastEnd(), nil, arena.ModuleImportAttr{ModuleName: name})
	}
	isStatic := false
	if p.check(token.Static) {
		isStatic = true
		p.advance()
	}
	_, name := p.parseQualifiedName()
	if p.check(token.Dot) && p.peekNKind(1) == token.Star {
		p.advance()
		p.advance()
		name += ".*"
	}
	p.expect(token.Semicolon)
	return p.allocateAttr(arena.KindImportDecl, start, p.lastEnd(), nil, arena.ImportAttr{Name: name, IsStatic: isStatic})
}

func (p *parser) isModuleDecl() bool {
	save := p.pos
	defer func() { p.pos = save }()
	if p.contextualTextIs("open") {
		p.advance()
	}
	return p.contextualTextIs("module")
}

func (p *parser) parseModuleDecl() arena.NodeIndex {
	start := p.startPos()
	if p.contextualTextIs("open") {
		p.advance()
	}
	p.advance() // module
	_, name := p.parseQualifiedName()
	var children []arena.NodeIndex
	p.expect(token.LBrace)
	progress := p.mustProgress()
	for !p.check(token.RBrace) && !p.check(token.EOF) {
		children = append(children, p.parseModuleDirective())
		if !progress() {
			break
		}
	}
	p.expect(token.RBrace)
	return p.allocateAttr(arena.KindModuleDecl, start, p.lastEnd(), children, arena.ModuleImportAttr{ModuleName: name})
}

func (p *parser) parseModuleDirective() arena.NodeIndex {
	start := p.startPos()
	switch {
	case p.contextualTextIs("requires"):
		p.advance()
		transitive, static := false, false
		for p.contextualTextIs("transitive") || p.check(token.Static) {
			if p.check(token.Static) {
				static = true
				p.advance()
			} else {
				transitive = true
				p.advance()
			}
		}
		_, name := p.parseQualifiedName()
		p.expect(token.Semicolon)
		_ = transitive
		_ = static
		return p.allocateAttr(arena.KindRequiresDirective, start, p.lastEnd(), nil, arena.ModuleImportAttr{ModuleName: name})
	case p.contextualTextIs("exports"), p.contextualTextIs("opens"):
		kind := arena.KindExportsDirective
		if p.contextualTextIs("opens") {
			kind = arena.KindOpensDirective
		}
		p.advance()
		_, name := p.parseQualifiedName()
		if p.contextualTextIs("to") {
			p.advance()
			_, _ = p.parseQualifiedName()
			for p.check(token.Comma) {
				p.advance()
				_, _ = p.parseQualifiedName()
			}
		}
		p.expect(token.Semicolon)
		return p.allocateAttr(kind, start, p.lastEnd(), nil, arena.ModuleImportAttr{ModuleName: name})
	case p.contextualTextIs("uses"):
		p.advance()
		_, name := p.parseQualifiedName()
		p.expect(token.Semicolon)
		return p.allocateAttr(arena.KindUsesDirective, start, p.lastEnd(), nil, arena.ModuleImportAttr{ModuleName: name})
	case p.contextualTextIs("provides"):
		p.advance()
		_, name := p.parseQualifiedName()
		if p.contextualTextIs("with") {
			p.advance()
			_, _ = p.parseQualifiedName()
			for p.check(token.Comma) {
				p.advance()
				_, _ = p.parseQualifiedName()
			}
		}
		p.expect(token.Semicolon)
		return p.allocateAttr(arena.KindProvidesDirective, start, p.lastEnd(), nil, arena.ModuleImportAttr{ModuleName: name})
	default:
		return p.errorNode("expected module directive", token.Semicolon, token.RBrace)
	}
}

func (p *parser) parseTypeDecl() arena.NodeIndex {
	mods := p.parseModifiers()
	switch {
	case p.check(token.Class):
		return p.parseClassDecl(mods)
	case p.check(token.Interface):
		return p.parseInterfaceDecl(mods)
	case p.check(token.Enum):
		return p.parseEnumDecl(mods)
	case p.isAnnotationTypeDecl():
		return p.parseAnnotationDecl(mods)
	case p.contextualTextIs("record") && p.peekNKind(1) == token.Identifier:
		return p.parseRecordDecl(mods)
	default:
		return p.errorNode("expected type declaration", token.Semicolon, token.RBrace)
	}
}

var modifierKeywords = map[token.Kind]string{
	token.Public: "public", token.Protected: "protected", token.Private: "private",
	token.Static: "static", token.Final: "final", token.Abstract: "abstract",
	token.Default: "default", token.Synchronized: "synchronized", token.Native: "native",
	token.Strictfp: "strictfp", token.Transient: "transient", token.Volatile: "volatile",
}

func (p *parser) matchModifierKeyword() bool {
	if _, ok := modifierKeywords[p.peek().Kind]; ok {
		return true
	}
	return p.isSealedModifier()
}

func (p *parser) isSealedModifier() bool {
	return p.check(token.NonSealed) || p.contextualTextIs("sealed")
}

// parseModifiers consumes annotations and modifier keywords in any order,
// allocating a single KindModifiers node (empty span collapses to the
// position right before whatever follows).
func (p *parser) parseModifiers() arena.NodeIndex {
	start := p.startPos()
	var children []arena.NodeIndex
	var words []string
	progress := p.mustProgress()
	for {
		if p.check(token.At) && !p.isAnnotationTypeDecl() {
			children = append(children, p.parseAnnotation())
		} else if name, ok := modifierKeywords[p.peek().Kind]; ok {
			words = append(words, name)
			p.advance()
		} else if p.check(token.NonSealed) {
			words = append(words, "non-sealed")
			p.advance()
		} else if p.contextualTextIs("sealed") {
			words = append(words, "sealed")
			p.advance()
		} else {
			break
		}
		if !progress() {
			break
		}
	}
	return p.allocateAttr(arena.KindModifiers, start, p.lastEnd(), children, arena.ModifiersAttr{Keywords: words})
}

func (p *parser) skipAnnotation() {
	p.parseAnnotation()
}

func (p *parser) parseAnnotation() arena.NodeIndex {
	start := p.startPos()
	p.expect(token.At)
	nameIdx, _ := p.parseQualifiedName()
	children := []arena.NodeIndex{nameIdx}
	if p.check(token.LParen) {
		p.advance()
		if !p.check(token.RParen) {
			children = append(children, p.parseAnnotationElement())
			for p.check(token.Comma) {
				p.advance()
				children = append(children, p.parseAnnotationElement())
			}
		}
		p.expect(token.RParen)
	}
	return p.allocate(arena.KindAnnotation, start, p.lastEnd(), children)
}

func (p *parser) parseAnnotationElement() arena.NodeIndex {
	start := p.startPos()
	if p.isIdentifierLike() && p.peekNKind(1) == token.Assign {
		name, _ := p.expect(token.Identifier)
		p.advance() // =
		val := p.parseAnnotationValue()
		return p.allocateAttr(arena.KindAnnotationElement, start, p.lastEnd(), []arena.NodeIndex{val}, arena.IdentifierAttr{Name: name.Text})
	}
	val := p.parseAnnotationValue()
	return p.allocate(arena.KindAnnotationElement, start, p.lastEnd(), []arena.NodeIndex{val})
}

func (p *parser) parseAnnotationValue() arena.NodeIndex {
	start := p.startPos()
	if p.check(token.LBrace) {
		p.advance()
		var children []arena.NodeIndex
		for !p.check(token.RBrace) && !p.check(token.EOF) {
			children = append(children, p.parseAnnotationValue())
			if p.check(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		p.expect(token.RBrace)
		return p.allocate(arena.KindArrayInitializer, start, p.lastEnd(), children)
	}
	if p.check(token.At) {
		return p.parseAnnotation()
	}
	return p.parseExpression()
}
